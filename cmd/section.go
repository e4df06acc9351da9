package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/config"
	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/is456"
	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/optimizer"
)

var (
	// Demand inputs
	sectionSpan  float64
	sectionMu    float64
	sectionVu    float64
	sectionCover float64

	// Search options
	sectionConfig  string
	sectionTopN    int
	sectionWorkers int
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Search widths × depths × grades for the minimum-cost section",
	Long: `Enumerate standard width, depth and material-grade combinations,
check each candidate against IS 456:2000 flexure and shear provisions,
price the valid ones, and report the minimum-cost design with ranked
alternatives and savings against a conservative baseline.

The search grid, cost profile and baseline come from the built-in
defaults or a YAML config file.

Examples:
  # Optimize a 6 m beam for Mu=180 kN-m, Vu=120 kN
  beamopt section --span 6000 --mu 180 --vu 120

  # Use project rates and a wider grid
  beamopt section --span 6000 --mu 180 --vu 120 --config rates.yaml --top 5`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().Float64VarP(&sectionSpan, "span", "s", 0, "Clear span (mm) [required]")
	sectionCmd.Flags().Float64VarP(&sectionMu, "mu", "m", 0, "Factored moment Mu (kN-m) [required]")
	sectionCmd.Flags().Float64Var(&sectionVu, "vu", 0, "Factored shear Vu (kN)")
	sectionCmd.Flags().Float64VarP(&sectionCover, "cover", "c", 0, "Effective cover to steel centroid (mm); 0 uses the config value")
	sectionCmd.Flags().StringVar(&sectionConfig, "config", "", "Design config YAML (grids, rates, baseline)")
	sectionCmd.Flags().IntVar(&sectionTopN, "top", 0, "Alternatives to report; 0 uses the config value")
	sectionCmd.Flags().IntVar(&sectionWorkers, "workers", 0, "Parallel candidate evaluations; 0 uses the config value")

	sectionCmd.MarkFlagRequired("span")
	sectionCmd.MarkFlagRequired("mu")
}

func runSection(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(sectionConfig)
	if err != nil {
		return err
	}
	if sectionCover > 0 {
		cfg.CoverMM = sectionCover
	}
	if sectionTopN > 0 {
		cfg.TopN = sectionTopN
	}
	if sectionWorkers > 0 {
		cfg.Workers = sectionWorkers
	}

	search := &optimizer.Search{
		Grid:      cfg.Grid,
		Profile:   cfg.Cost,
		CoverMM:   cfg.CoverMM,
		Evaluator: is456.Engine{},
		Baseline:  cfg.Baseline,
		Workers:   cfg.Workers,
		TopN:      cfg.TopN,
	}

	// Ctrl-C aborts the grid search cleanly.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result, err := search.Run(ctx, optimizer.Demand{
		SpanMM: sectionSpan,
		MuKNM:  sectionMu,
		VuKN:   sectionVu,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SECTION/MATERIAL OPTIMIZATION - IS 456:2000")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span:\t%.0f mm\n", sectionSpan)
	fmt.Fprintf(w, "  Factored Moment (Mu):\t%.2f kN-m\n", sectionMu)
	fmt.Fprintf(w, "  Factored Shear (Vu):\t%.2f kN\n", sectionVu)
	fmt.Fprintf(w, "  Effective Cover:\t%.0f mm\n", cfg.CoverMM)
	fmt.Fprintf(w, "  Grid Points:\t%d\n", cfg.Grid.Size())
	w.Flush()
	fmt.Println()

	if result.Optimal == nil {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  NO VALID SECTION IN GRID               ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		fmt.Printf("  %s\n", result.Remark)
		fmt.Println()
		return nil
	}

	opt := result.Optimal
	fmt.Println("OPTIMAL SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  %.0f × %.0f mm, M%d / Fe%d             \n", opt.BMM, opt.DMM, opt.Fck, opt.Fy)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Effective Depth (d):\t%.0f mm\n", opt.DEffMM)
	fmt.Fprintf(w, "  Required Ast:\t%.2f mm²\n", opt.AstRequiredMM2)
	fmt.Fprintf(w, "  Steel Percentage (pt):\t%.2f %%\n", opt.Pt)
	fmt.Fprintf(w, "  Steel Weight:\t%.2f kg\n", opt.SteelWeightKg)
	w.Flush()
	fmt.Println()

	fmt.Println("COST BREAKDOWN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Concrete:\t%.2f %s\n", opt.Cost.Concrete, opt.Cost.Currency)
	fmt.Fprintf(w, "  Steel:\t%.2f %s\n", opt.Cost.Steel, opt.Cost.Currency)
	fmt.Fprintf(w, "  Formwork:\t%.2f %s\n", opt.Cost.Formwork, opt.Cost.Currency)
	fmt.Fprintf(w, "  Labor Adjustment:\t%.2f %s\n", opt.Cost.LaborAdjustment, opt.Cost.Currency)
	fmt.Fprintf(w, "  TOTAL:\t%.2f %s\n", opt.Cost.Total, opt.Cost.Currency)
	w.Flush()
	fmt.Println()

	if result.BaselineCost > 0 {
		fmt.Println("SAVINGS vs BASELINE:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Baseline Cost:\t%.2f %s\n", result.BaselineCost, opt.Cost.Currency)
		fmt.Fprintf(w, "  Savings:\t%.2f %s\t(%.1f%%)\n", result.SavingsAmount, opt.Cost.Currency, result.SavingsPercent)
		w.Flush()
		fmt.Println()
	}

	if len(result.Alternatives) > 0 {
		fmt.Println("ALTERNATIVES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Section\tGrades\tAst\tCost\n")
		fmt.Fprintf(w, "  ───────\t──────\t───\t────\n")
		for _, alt := range result.Alternatives {
			fmt.Fprintf(w, "  %.0f×%.0f\tM%d/Fe%d\t%.0f mm²\t%.2f %s\n",
				alt.BMM, alt.DMM, alt.Fck, alt.Fy, alt.AstRequiredMM2, alt.Cost.Total, alt.Cost.Currency)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Printf("  Evaluated %d candidates (%d valid) in %.3f s\n",
		result.CandidatesEvaluated, result.CandidatesValid, result.ComputationTimeSec)
	fmt.Println()

	return nil
}
