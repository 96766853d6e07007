package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/mcshear/internal/diagram"
	"github.com/spf13/cobra"
)

var designFlags memberFlags

var shearDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Calculate the maximum stirrup spacing for VEd",
	Long: `Calculate the maximum spacing of stirrups of area Asw that carries the
design shear force VEd.

At Levels I and II the stirrups carry VEd alone. At Level III the
concrete contribution VRd,c is deducted first. The section is reported
inadequate when VEd exceeds the crushing resistance VRd,max.

Examples:
  mcshear shear design --fck 35 -z 450 -b 300 --ved 250 --asw 157 --theta 30
  mcshear shear design -f b1.json --steel-level 3 --concrete-level 2`,
	Run: runShearDesign,
}

func init() {
	shearCmd.AddCommand(shearDesignCmd)

	bindMemberFlags(shearDesignCmd, &designFlags)
}

func runShearDesign(cmd *cobra.Command, args []string) {
	m, err := resolveMember(cmd, &designFlags)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := m.Design()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STIRRUP DESIGN - fib MODEL CODE 2010")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printMemberInput(m)

	fmt.Println("SHEAR DEMAND:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  VEd:\t%.2f kN\n", result.VEd/1e3)
	if result.VRdc > 0 {
		fmt.Fprintf(w, "  Concrete contribution (VRd,c):\t%.2f kN\n", result.VRdc/1e3)
	}
	fmt.Fprintf(w, "  Carried by stirrups:\t%.2f kN\n", result.VSteel/1e3)
	fmt.Fprintf(w, "  Strut crushing (VRd,max):\t%.2f kN\n", result.VRdMax/1e3)
	w.Flush()
	fmt.Println()

	printWarnings(result.Warnings)

	if result.StirrupsRequired {
		fmt.Print(diagram.DrawSummaryBox("STIRRUP DESIGN", []string{
			fmt.Sprintf("Asw              = %.0f mm²", m.Section.Asw),
			fmt.Sprintf("Maximum spacing  = %.0f mm", result.SwMax),
			fmt.Sprintf("Asw/sw required  = %.3f mm²/mm", result.AswPerSw),
		}))
		fmt.Println()
	}

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s\n", result.Message)
	fmt.Println()
}
