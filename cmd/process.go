package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Klassiq901/ThermoApp/internal/diagram"
	"github.com/Klassiq901/ThermoApp/internal/process"
	"github.com/Klassiq901/ThermoApp/internal/session"
	"github.com/Klassiq901/ThermoApp/internal/state"
	"github.com/spf13/cobra"
)

var (
	processKind   string
	processN      float64
	processVRatio float64
	processPRatio float64
	showDiagram   bool
	pvExportFile  string
	tsExportFile  string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Evaluate a process between the stored states",
	Long: `Evaluate a simple closed-system process and report boundary work,
heat transfer and property deltas.

For an ideal gas, state 2 is derived from state 1 and the declared
process (volume ratio, pressure ratio or polytropic exponent). For
water, both state 1 and state 2 must have been stored first and the
work formula is selected per process kind.

Process kinds: isochoric, isobaric, isothermal, adiabatic, polytropic.

Examples:
  thermoapp process --kind isothermal --v-ratio 2
  thermoapp process --kind polytropic -n 1.25 --v-ratio 2 --diagram
  thermoapp process --kind isobaric --output pv.png --ts-output ts.png`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&processKind, "kind", "k", "", "Process kind [required]")
	processCmd.Flags().Float64VarP(&processN, "exponent", "n", 0, "Polytropic exponent (polytropic only)")
	processCmd.Flags().Float64Var(&processVRatio, "v-ratio", 1, "Volume ratio v2/v1 (ideal gas)")
	processCmd.Flags().Float64Var(&processPRatio, "p-ratio", 1, "Pressure ratio P2/P1 (ideal gas, isochoric)")
	processCmd.Flags().BoolVar(&showDiagram, "diagram", false, "Show ASCII P-v and T-s diagrams")
	processCmd.Flags().StringVarP(&pvExportFile, "output", "o", "", "Export P-v diagram to file (png, svg, pdf)")
	processCmd.Flags().StringVar(&tsExportFile, "ts-output", "", "Export T-s diagram to file (png, svg, pdf)")
	processCmd.MarkFlagRequired("kind")
}

func runProcess(cmd *cobra.Command, args []string) error {
	kind, err := process.ParseKind(processKind)
	if err != nil {
		return err
	}
	decl := process.Declaration{
		Kind:          kind,
		N:             processN,
		VolumeRatio:   processVRatio,
		PressureRatio: processPRatio,
	}

	store := session.NewFileStore(sessionFile)
	s1, ok, err := store.LoadState(session.StageState1)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no state stored under %q; run 'thermoapp state' first", session.StageState1)
	}

	var result *process.Result
	if s1.IsWater() {
		s2, ok, err := store.LoadState(session.StageState2)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("water processes need a second state; store one under %q first", session.StageState2)
		}
		table, err := loadTable()
		if err != nil {
			return err
		}
		result, err = process.EvaluateWater(&s1, &s2, decl, table)
		if err != nil {
			return err
		}
	} else {
		result, err = process.EvaluateIdealGas(&s1, decl)
		if err != nil {
			return err
		}
	}

	if err := store.SaveDeclaration(decl); err != nil {
		return fmt.Errorf("saving process declaration: %w", err)
	}

	printProcessResult(result, s1.IsWater())

	if showDiagram || pvExportFile != "" || tsExportFile != "" {
		data := diagramData(result, s1.IsWater())

		if showDiagram {
			fmt.Println(diagram.DrawASCIIPVDiagram(data))
			fmt.Println(diagram.DrawASCIITSDiagram(data))
		}
		if pvExportFile != "" {
			if err := diagram.ExportPVDiagram(data, pvExportFile); err != nil {
				return fmt.Errorf("exporting P-v diagram: %w", err)
			}
			fmt.Printf("  P-v diagram exported to: %s\n", pvExportFile)
		}
		if tsExportFile != "" {
			if err := diagram.ExportTSDiagram(data, tsExportFile); err != nil {
				return fmt.Errorf("exporting T-s diagram: %w", err)
			}
			fmt.Printf("  T-s diagram exported to: %s\n", tsExportFile)
		}
	}

	return nil
}

func diagramData(res *process.Result, isWater bool) diagram.ProcessDiagramData {
	return diagram.ProcessDiagramData{
		Kind:    res.Kind,
		PVPath:  res.PVPath,
		TSPath:  res.TSPath,
		Dome:    res.Dome,
		IsWater: isWater,
		V1:      res.State1.V,
		P1:      res.State1.P,
		S1:      res.State1.S,
		T1:      res.State1.T,
		V2:      res.State2.V,
		P2:      res.State2.P,
		S2:      res.State2.S,
		T2:      res.State2.T,
	}
}

func printProcessResult(res *process.Result, isWater bool) {
	pUnit, tUnit := "kPa", "K"
	if isWater {
		pUnit, tUnit = "bar", "°C"
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     PROCESS EVALUATION — %s\n", res.Kind)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printState := func(label string, st *state.State) {
		fmt.Printf("%s:\n", label)
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  T:\t%.3f %s\n", st.T, tUnit)
		fmt.Fprintf(w, "  P:\t%.3f %s\n", st.P, pUnit)
		fmt.Fprintf(w, "  v:\t%.6f m³/kg\n", st.V)
		fmt.Fprintf(w, "  u:\t%.2f kJ/kg\n", st.U)
		fmt.Fprintf(w, "  h:\t%.2f kJ/kg\n", st.H)
		fmt.Fprintf(w, "  s:\t%.5f kJ/(kg·K)\n", st.S)
		if isWater {
			fmt.Fprintf(w, "  x:\t%.4f\n", st.X)
		}
		w.Flush()
		fmt.Println()
	}

	printState("STATE 1", &res.State1)
	printState("STATE 2", &res.State2)

	fmt.Println("ENERGY BALANCE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Δu:\t%.3f kJ/kg\n", res.DeltaU)
	fmt.Fprintf(w, "  Δh:\t%.3f kJ/kg\n", res.DeltaH)
	fmt.Fprintf(w, "  Δs:\t%.5f kJ/(kg·K)\n", res.DeltaS)
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("W = %.3f kJ/kg", res.Work),
		fmt.Sprintf("Q = %.3f kJ/kg", res.Heat),
	}))
}
