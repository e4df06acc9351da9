package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beamopt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beamopt v%s\n", version.Version)
		fmt.Println("RC Beam Optimization and Fabrication Planning Tool")
		fmt.Println("Based on IS 456:2000 (Indian Standard, Plain and Reinforced Concrete)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
