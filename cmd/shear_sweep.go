package cmd

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/mcshear/internal/diagram"
	"github.com/alexiusacademia/mcshear/internal/mc2010"
	"github.com/alexiusacademia/mcshear/internal/shear"
	"github.com/spf13/cobra"
)

var (
	sweepFlags      memberFlags
	sweepFrom       float64
	sweepTo         float64
	sweepStep       float64
	sweepExportFile string
	sweepPlot       bool
)

var shearSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate VRd,s and VRd,max over the strut inclination",
	Long: `Evaluate the stirrup resistance VRd,s and the crushing resistance
VRd,max of a reinforced member over a range of compression field
inclinations θ, and report the θ giving the largest VRd.

Examples:
  mcshear shear sweep --fck 35 -z 450 -b 300 --asw 157 -s 200 --steel-level 1
  mcshear shear sweep -f b1.json --step 2.5 --diagram -o theta.svg`,
	Run: runShearSweep,
}

func init() {
	shearCmd.AddCommand(shearSweepCmd)

	bindMemberFlags(shearSweepCmd, &sweepFlags)

	shearSweepCmd.Flags().Float64Var(&sweepFrom, "from", mc2010.ThetaLowerLimit, "First θ (degrees)")
	shearSweepCmd.Flags().Float64Var(&sweepTo, "to", mc2010.ThetaUpperLimit, "Last θ (degrees)")
	shearSweepCmd.Flags().Float64Var(&sweepStep, "step", 5, "θ increment (degrees)")
	shearSweepCmd.Flags().BoolVar(&sweepPlot, "diagram", false, "Show ASCII plot of the resistance curves")
	shearSweepCmd.Flags().StringVarP(&sweepExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runShearSweep(cmd *cobra.Command, args []string) {
	m, err := resolveMember(cmd, &sweepFlags)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	points, err := m.ThetaSweep(sweepFrom, sweepTo, sweepStep)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	curve := diagram.ThetaCurve{}
	for _, p := range points {
		curve.Theta = append(curve.Theta, p.Theta)
		curve.VRds = append(curve.VRds, p.VRds)
		curve.VRdMax = append(curve.VRdMax, p.VRdMax)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     θ SWEEP - %s\n", m.SteelLevel)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	table, err := diagram.DrawThetaTable(curve)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Print(table)
	fmt.Println()

	if sweepPlot {
		graph, err := diagram.DrawThetaCurve(curve)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(graph)
		fmt.Println()
	}

	if best, ok := shear.Optimum(points); ok {
		fmt.Printf("  Largest VRd = %.2f kN at θ = %.1f°\n\n", min(best.VRds, best.VRdMax)/1e3, best.Theta)
	}

	if sweepExportFile != "" {
		if err := diagram.ExportThetaDiagram(curve, math.Abs(m.Section.Ved), sweepExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Diagram exported to %s\n\n", sweepExportFile)
	}
}
