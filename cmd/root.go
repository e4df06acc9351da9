package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/logging"
	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "beamopt",
	Short: "Reinforced Concrete Beam Optimization Tool",
	Long: `beamopt - RC Beam Optimization and Fabrication Planning

A CLI tool for reinforced concrete beam design based on IS 456:2000.

This tool helps structural engineers perform:
  - Bar arrangement optimization (diameter × count × layers)
  - Minimum-cost section and material selection
  - Bar bending schedules with cutting-stock plans
  - Governing factored demand from IS 456 load combinations

All calculations follow IS 456:2000 limit state provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("  beamopt v%s — RC Beam Optimization Tool (IS 456:2000)\n", version.Version)
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    arrange   Find a constructible bar layout for a required steel area")
		fmt.Println("    section   Search widths × depths × grades for the minimum-cost section")
		fmt.Println("    bbs       Generate the bar bending schedule and cutting plan")
		fmt.Println("    loads     Governing factored Mu/Vu from IS 456 load combinations")
		fmt.Println()
		fmt.Println("  Use 'beamopt --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(logging.Init)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
