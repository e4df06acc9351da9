package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/rebar"
)

var (
	// Arrangement inputs
	arrangeAst        float64
	arrangeWidth      float64
	arrangeCover      float64
	arrangeStirrupDia float64
	arrangeDiameters  []float64
	arrangeMaxLayers  int
	arrangeObjective  string
	arrangeAggSize    float64
	arrangeMinBars    int
	arrangeMaxPerRow  int
)

var arrangeCmd = &cobra.Command{
	Use:   "arrange",
	Short: "Find a constructible bar layout for a required steel area",
	Long: `Search the bar catalog for a layout (diameter × count × layers)
providing at least the required tension steel area while satisfying
IS 456:2000 spacing and cover rules.

Clear spacing between bars follows Clause 26.3.2: at least the bar
diameter, the nominal aggregate size + 5 mm, and 25 mm.

Examples:
  # Arrange 804 mm² in a 300 mm wide beam
  beamopt arrange --ast 804 --width 300 --cover 40 --stirrup 8

  # Restrict diameters and optimize for minimum steel area
  beamopt arrange --ast 1500 --width 300 --dia 16,20,25 --objective min_area`,
	RunE: runArrange,
}

func init() {
	rootCmd.AddCommand(arrangeCmd)

	arrangeCmd.Flags().Float64VarP(&arrangeAst, "ast", "a", 0, "Required steel area (mm²) [required]")
	arrangeCmd.Flags().Float64VarP(&arrangeWidth, "width", "b", 0, "Beam width (mm) [required]")
	arrangeCmd.Flags().Float64VarP(&arrangeCover, "cover", "c", 40, "Clear cover to stirrup (mm)")
	arrangeCmd.Flags().Float64Var(&arrangeStirrupDia, "stirrup", 8, "Stirrup diameter (mm)")
	arrangeCmd.Flags().Float64SliceVar(&arrangeDiameters, "dia", []float64{12, 16, 20, 25, 32}, "Allowed bar diameters (mm)")
	arrangeCmd.Flags().IntVar(&arrangeMaxLayers, "max-layers", 2, "Maximum bar layers")
	arrangeCmd.Flags().StringVar(&arrangeObjective, "objective", "min_bar_count", "Selection objective: min_bar_count or min_area")
	arrangeCmd.Flags().Float64Var(&arrangeAggSize, "agg", 20, "Nominal coarse aggregate size (mm)")
	arrangeCmd.Flags().IntVar(&arrangeMinBars, "min-bars", 3, "Minimum total bars")
	arrangeCmd.Flags().IntVar(&arrangeMaxPerRow, "max-per-layer", 6, "Maximum bars per layer")

	arrangeCmd.MarkFlagRequired("ast")
	arrangeCmd.MarkFlagRequired("width")
}

func runArrange(cmd *cobra.Command, args []string) error {
	objective, err := rebar.ParseObjective(arrangeObjective)
	if err != nil {
		return err
	}

	result, err := rebar.Arrange(rebar.StandardCatalog(), rebar.Input{
		AstRequiredMM2:     arrangeAst,
		WidthMM:            arrangeWidth,
		CoverMM:            arrangeCover,
		StirrupDiaMM:       arrangeStirrupDia,
		AllowedDiametersMM: arrangeDiameters,
		MaxLayers:          arrangeMaxLayers,
		Objective:          objective,
		AggSizeMM:          arrangeAggSize,
		MinTotalBars:       arrangeMinBars,
		MaxBarsPerLayer:    arrangeMaxPerRow,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BAR ARRANGEMENT - IS 456:2000")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Required Ast:\t%.2f mm²\n", arrangeAst)
	fmt.Fprintf(w, "  Beam Width (b):\t%.0f mm\n", arrangeWidth)
	fmt.Fprintf(w, "  Clear Cover:\t%.0f mm\n", arrangeCover)
	fmt.Fprintf(w, "  Stirrup Diameter:\t%.0f mm\n", arrangeStirrupDia)
	fmt.Fprintf(w, "  Max Layers:\t%d\n", arrangeMaxLayers)
	fmt.Fprintf(w, "  Objective:\t%s\n", objective)
	w.Flush()
	fmt.Println()

	if !result.Feasible {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  NO FEASIBLE ARRANGEMENT                ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		fmt.Printf("  %s\n", result.Remarks)
		fmt.Println()
		return nil
	}

	c := result.Chosen
	fmt.Println("CHOSEN ARRANGEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  %d - φ%.0fmm in %d layer(s)              \n", c.Count, c.DiameterMM, c.Layers)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area Provided:\t%.2f mm²\t(%.2f× required)\n", c.AreaProvidedMM2, c.AreaProvidedMM2/arrangeAst)
	fmt.Fprintf(w, "  Bars per Layer:\t%d\n", c.BarsPerLayer)
	fmt.Fprintf(w, "  Clear Spacing:\t%.0f mm\n", c.SpacingMM)
	w.Flush()
	fmt.Println()

	if len(result.Alternatives) > 0 {
		fmt.Println("ALTERNATIVES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Bars\tLayers\tAs Provided\tRatio\n")
		fmt.Fprintf(w, "  ────\t──────\t───────────\t─────\n")
		for _, alt := range result.Alternatives {
			fmt.Fprintf(w, "  %d - φ%.0fmm\t%d\t%.2f mm²\t%.2f\n",
				alt.Count, alt.DiameterMM, alt.Layers, alt.AreaProvidedMM2, alt.AreaProvidedMM2/arrangeAst)
		}
		w.Flush()
		fmt.Println()
	}

	return nil
}
