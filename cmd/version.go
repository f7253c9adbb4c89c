package cmd

import (
	"fmt"

	"github.com/Klassiq901/ThermoApp/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of thermoapp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("thermoapp v%s\n", version.Version)
		fmt.Println("Thermodynamic State and Process Calculator")
		fmt.Println("Water/steam properties per IAPWS-IF97 with saturation-table fallback")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
