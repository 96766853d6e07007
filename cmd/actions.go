package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
	"github.com/spf13/cobra"
)

var (
	// Unfactored shear forces (kN)
	actionVg, actionVq, actionVe float64

	// Unfactored moments (kN-m)
	actionMg, actionMq, actionMe float64

	showAllCombinations bool
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Calculate design shear and moment from ULS combinations",
	Long: `Calculate the design shear force VEd and moment MEd from unfactored
action effects using the fib Model Code 2010 ultimate limit state
combinations.

Action Types:
  G - Permanent action
  Q - Leading variable action
  E - Seismic action

Examples:
  mcshear actions --vg 50 --vq 30
  mcshear actions --vg 50 --vq 30 --mg 80 --mq 45 --all`,
	Run: runActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)

	actionsCmd.Flags().Float64Var(&actionVg, "vg", 0, "Shear due to permanent action (kN)")
	actionsCmd.Flags().Float64Var(&actionVq, "vq", 0, "Shear due to variable action (kN)")
	actionsCmd.Flags().Float64Var(&actionVe, "ve", 0, "Shear due to seismic action (kN)")
	actionsCmd.Flags().Float64Var(&actionMg, "mg", 0, "Moment due to permanent action (kN-m)")
	actionsCmd.Flags().Float64Var(&actionMq, "mq", 0, "Moment due to variable action (kN-m)")
	actionsCmd.Flags().Float64Var(&actionMe, "me", 0, "Moment due to seismic action (kN-m)")

	actionsCmd.Flags().BoolVarP(&showAllCombinations, "all", "a", false, "Show all load combination results")
}

func runActions(cmd *cobra.Command, args []string) {
	shearActions := mc2010.Actions{Permanent: actionVg, Variable: actionVq, Seismic: actionVe}
	momentActions := mc2010.Actions{Permanent: actionMg, Variable: actionMq, Seismic: actionMe}

	if shearActions == (mc2010.Actions{}) && momentActions == (mc2010.Actions{}) {
		fmt.Println("Error: Please provide at least one unfactored action effect.")
		fmt.Println("Use 'mcshear actions --help' for usage information.")
		return
	}

	combinations := mc2010.ULSCombinations

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          fib MODEL CODE 2010 DESIGN ACTION EFFECTS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	ved, vCombo := mc2010.Governing(shearActions, combinations)
	med, mCombo := mc2010.Governing(momentActions, combinations)

	if showAllCombinations {
		fmt.Println("LOAD COMBINATIONS (fib Model Code 2010 Section 4.5.1.4):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tVEd (kN)\tMEd (kN-m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t────────\t──────────\n")
		for _, combo := range combinations {
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\n", combo.ID, combo.Description,
				combo.Factored(shearActions), combo.Factored(momentActions))
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if shearActions != (mc2010.Actions{}) {
		fmt.Fprintf(w, "  VEd:\t%.2f kN\t(%s: %s)\n", ved, vCombo.ID, vCombo.Description)
	}
	if momentActions != (mc2010.Actions{}) {
		fmt.Fprintf(w, "  MEd:\t%.2f kN-m\t(%s: %s)\n", med, mCombo.ID, mCombo.Description)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Pass these as --ved and --med to the shear commands.")
	fmt.Println()
}
