package cmd

import (
	"fmt"
	"os"

	"github.com/Klassiq901/ThermoApp/internal/version"
	"github.com/spf13/cobra"
)

var sessionFile string

var rootCmd = &cobra.Command{
	Use:   "thermoapp",
	Short: "Thermodynamic State and Process Calculator",
	Long: `thermoapp - Thermodynamic State and Process Calculator

A CLI tool for computing thermodynamic state properties of water/steam
and calorically-ideal gases, and for evaluating simple closed-system
processes between two states.

This tool helps students and engineers perform:
  - Water/steam property resolution (IAPWS-IF97 with table fallback)
  - Saturation temperature and pressure lookups
  - Ideal-gas state calculation from P, v and gas constants
  - Process evaluation (isobaric, isochoric, isothermal, adiabatic,
    polytropic) with work, heat and property deltas
  - P-v and T-s diagram rendering (terminal and image export)`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   thermoapp v%-45s║\n", version.Version)
		fmt.Println("  ║   Thermodynamic State and Process Calculator              ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for thermodynamic state properties and simple")
		fmt.Println("  closed-system process analysis.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Water/steam states via IAPWS-IF97 or table interpolation")
		fmt.Println("    • Ideal-gas states for air, nitrogen, methane, oxygen, custom")
		fmt.Println("    • Saturation line lookups in both directions")
		fmt.Println("    • Process work, heat and entropy analysis")
		fmt.Println("    • P-v and T-s diagrams with saturation dome")
		fmt.Println()
		fmt.Println("  Use 'thermoapp --help' to see available commands.")
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
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session", "thermoapp-session.json", "Session file holding the stored states")
}
