package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/bbs"
	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/config"
	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/export"
)

var (
	bbsJobFile string
	bbsConfig  string
	bbsXLSXOut string
	bbsCSVOut  string
)

var bbsCmd = &cobra.Command{
	Use:   "bbs",
	Short: "Generate the bar bending schedule and cutting plan",
	Long: `Read a reinforcement job file (YAML), compute fabrication cut
lengths with bend and hook allowances, group identical bars into marks,
and pack the required lengths onto standard stock bars.

Example job file:

  bend_policy:
    hook_angle_deg: 135
    hook_length_factor: 9
    min_hook_length_mm: 75
  elements:
    - zone: "B1 bottom"
      shape: straight
      diameter_mm: 20
      count: 3
      length_mm: 6000
      anchorage_mm: 400
    - zone: "B1 stirrups"
      shape: stirrup
      diameter_mm: 8
      count: 38
      member_width_mm: 300
      member_depth_mm: 500
      cover_mm: 40

Examples:
  beamopt bbs --job beam1.yaml
  beamopt bbs --job beam1.yaml --xlsx schedule.xlsx --csv schedule.csv`,
	RunE: runBBS,
}

func init() {
	rootCmd.AddCommand(bbsCmd)

	bbsCmd.Flags().StringVarP(&bbsJobFile, "job", "j", "", "Reinforcement job file (YAML) [required]")
	bbsCmd.Flags().StringVar(&bbsConfig, "config", "", "Design config YAML (stock lengths)")
	bbsCmd.Flags().StringVar(&bbsXLSXOut, "xlsx", "", "Write the schedule workbook to this path")
	bbsCmd.Flags().StringVar(&bbsCSVOut, "csv", "", "Write the bar-mark table as CSV to this path")

	bbsCmd.MarkFlagRequired("job")
}

func runBBS(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(bbsConfig)
	if err != nil {
		return err
	}

	elements, policy, err := bbs.LoadJob(bbsJobFile)
	if err != nil {
		return err
	}

	schedule, err := bbs.Generate(elements, policy, cfg.StockLengthsMM)
	if err != nil {
		return err
	}

	printSchedule(schedule)

	if bbsXLSXOut != "" {
		if err := export.WriteXLSX(schedule, bbsXLSXOut); err != nil {
			return err
		}
		fmt.Printf("  Schedule workbook written to: %s\n\n", bbsXLSXOut)
	}
	if bbsCSVOut != "" {
		f, err := os.Create(bbsCSVOut)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		if err := export.WriteCSV(schedule, f); err != nil {
			return err
		}
		fmt.Printf("  Bar-mark CSV written to: %s\n\n", bbsCSVOut)
	}

	return nil
}

func printSchedule(s *bbs.Schedule) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BAR BENDING SCHEDULE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("BAR MARKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Mark\tZone\tShape\tDia\tCount\tCut Length\tTotal Wt\tRemarks\n")
	fmt.Fprintf(w, "  ────\t────\t─────\t───\t─────\t──────────\t────────\t───────\n")
	for _, m := range s.Marks {
		fmt.Fprintf(w, "  %s\t%s\t%s\tφ%.0f\t%d\t%.0f mm\t%.2f kg\t%s\n",
			m.ID, m.Zone, m.ShapeCode, m.DiameterMM, m.Count, m.CutLengthMM, m.TotalWeightKg, m.Remarks)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("CUTTING PLAN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bar\tStock\tPieces\tOffcut\n")
	fmt.Fprintf(w, "  ───\t─────\t──────\t──────\n")
	for i, a := range s.Plan.Assignments {
		pieces := ""
		for k, p := range a.Pieces {
			if k > 0 {
				pieces += " + "
			}
			pieces += fmt.Sprintf("%.0f", p.LengthMM)
		}
		fmt.Fprintf(w, "  %d\t%.0f mm\t%s\t%.0f mm\n", i+1, a.StockLengthMM, pieces, a.OffcutMM)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total Bars:\t%d (%d marks)\n", s.Summary.TotalBars, s.Summary.TotalMarks)
	fmt.Fprintf(w, "  Total Weight:\t%.2f kg\n", s.Summary.TotalWeightKg)
	fmt.Fprintf(w, "  Stock Bars Used:\t%d\n", s.Summary.StockBarsUsed)
	fmt.Fprintf(w, "  Total Waste:\t%.0f mm\n", s.Summary.TotalWasteMM)
	fmt.Fprintf(w, "  Utilization:\t%.1f %%\n", s.Summary.UtilizationPercent)
	if s.Summary.UnfabricableMarks > 0 {
		fmt.Fprintf(w, "  UNFABRICABLE MARKS:\t%d (see remarks)\n", s.Summary.UnfabricableMarks)
	}
	w.Flush()
	fmt.Println()
}
