package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	satPressure float64
	satTemp     float64
)

var satCmd = &cobra.Command{
	Use:   "sat",
	Short: "Saturation line lookups for water",
	Long: `Look up the water saturation line in either direction using
piecewise-linear interpolation over the saturation table.

Subcommands:
  tsat  - Saturation temperature (°C) at a given pressure (bar)
  psat  - Saturation pressure (bar) at a given temperature (°C)

Lookups outside the tabulated range are clamped to the nearest table
bound and flagged as such.`,
}

var satTsatCmd = &cobra.Command{
	Use:   "tsat",
	Short: "Saturation temperature at a given pressure",
	Long: `Interpolate the saturation temperature (°C) at a pressure (bar).

Examples:
  thermoapp sat tsat --pressure 1.014
  thermoapp sat tsat -p 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		tsat, clamped, err := table.SaturationTemperature(satPressure)
		if err != nil {
			return err
		}
		fmt.Printf("Tsat(%.4f bar) = %.5f °C\n", satPressure, tsat)
		if clamped {
			fmt.Println("note: pressure was outside the table range and was clamped")
		}
		return nil
	},
}

var satPsatCmd = &cobra.Command{
	Use:   "psat",
	Short: "Saturation pressure at a given temperature",
	Long: `Interpolate the saturation pressure (bar) at a temperature (°C).

Examples:
  thermoapp sat psat --temp 100
  thermoapp sat psat -t 250`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		psat, clamped, err := table.SaturationPressure(satTemp)
		if err != nil {
			return err
		}
		fmt.Printf("Psat(%.2f °C) = %.5f bar\n", satTemp, psat)
		if clamped {
			fmt.Println("note: temperature was outside the table range and was clamped")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(satCmd)
	satCmd.AddCommand(satTsatCmd)
	satCmd.AddCommand(satPsatCmd)

	satTsatCmd.Flags().Float64VarP(&satPressure, "pressure", "p", 0, "Pressure (bar) [required]")
	satTsatCmd.MarkFlagRequired("pressure")

	satPsatCmd.Flags().Float64VarP(&satTemp, "temp", "t", 0, "Temperature (°C) [required]")
	satPsatCmd.MarkFlagRequired("temp")
}
