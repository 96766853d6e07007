package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/mcshear/internal/diagram"
	"github.com/alexiusacademia/mcshear/internal/report"
	"github.com/alexiusacademia/mcshear/internal/shear"
	"github.com/spf13/cobra"
)

var (
	checkFlags       memberFlags
	checkShowDiagram bool
	checkExportFile  string
	checkReportFile  string
)

var shearCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the design shear resistance of a member",
	Long: `Calculate the design shear resistance VRd of a web or slab strip and
compare it with the design shear force VEd.

The check follows fib Model Code 2010 provisions:
  - Section 7.3.3.2: Members without shear reinforcement (VRd,c)
  - Section 7.3.3.3: Members with shear reinforcement (VRd,s, VRd,max)
  - Levels of Approximation I, II and III

Examples:
  # Unreinforced slab strip, Level I
  mcshear shear check --fck 35 -z 180 -b 1000 --ved 150

  # Web with 2-leg 10mm stirrups at 200 mm, Level II
  mcshear shear check --fck 35 -z 450 -b 300 --as 1800 --med 200 --ved 250 \
      --asw 157 -s 200 --theta 30 --concrete-level 2 --steel-level 2

  # From a JSON file, with diagram
  mcshear shear check -f b1.json --diagram -o b1.png --report b1.pdf`,
	Run: runShearCheck,
}

func init() {
	shearCmd.AddCommand(shearCheckCmd)

	bindMemberFlags(shearCheckCmd, &checkFlags)

	// Diagram options
	shearCheckCmd.Flags().BoolVar(&checkShowDiagram, "diagram", false, "Show ASCII resistance diagram")
	shearCheckCmd.Flags().StringVarP(&checkExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	shearCheckCmd.Flags().StringVar(&checkReportFile, "report", "", "Write a calculation sheet (pdf or xlsx)")
}

func runShearCheck(cmd *cobra.Command, args []string) {
	m, err := resolveMember(cmd, &checkFlags)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := m.Check()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHEAR RESISTANCE CHECK - fib MODEL CODE 2010")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printMemberInput(m)

	if result.EpsilonX > 0 {
		fmt.Println("STRAIN STATE:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Longitudinal strain (εx):\t%.6f\n", result.EpsilonX)
		fmt.Fprintf(w, "  Minimum inclination (θmin):\t%.2f°\n", result.ThetaMin)
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESISTANCE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if result.VRdc > 0 {
		fmt.Fprintf(w, "  Concrete (VRd,c):\t%.2f kN\n", result.VRdc/1e3)
	}
	if m.Reinforced {
		fmt.Fprintf(w, "  Stirrups (VRd,s):\t%.2f kN\n", result.VRds/1e3)
		fmt.Fprintf(w, "  Strut crushing (VRd,max):\t%.2f kN\n", result.VRdMax/1e3)
	}
	fmt.Fprintf(w, "  Governing:\t%s\n", result.Governing)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("DESIGN RESISTANCE", []string{
		fmt.Sprintf("VRd = %.2f kN", result.VRd/1e3),
	}))
	fmt.Println()

	printWarnings(result.Warnings)

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	status := "✓ ADEQUATE"
	if !result.IsAdequate {
		status = "✗ NOT ADEQUATE"
	}
	fmt.Printf("  Utilization VEd/VRd: %.3f  %s\n", result.Utilization, status)
	fmt.Printf("  %s\n", result.Message)
	fmt.Println()

	data := resistanceData(m, result)
	if checkShowDiagram {
		fmt.Print(diagram.DrawASCIIResistanceDiagram(data))
		fmt.Println()
	}
	if checkExportFile != "" {
		if err := diagram.ExportResistanceDiagram(data, checkExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Diagram exported to %s\n\n", checkExportFile)
	}
	if checkReportFile != "" {
		write := report.WriteCheckPDF
		if strings.EqualFold(filepath.Ext(checkReportFile), ".xlsx") {
			write = report.WriteCheckWorkbook
		}
		if err := write(checkReportFile, m, result); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
			return
		}
		fmt.Printf("  Calculation sheet written to %s\n\n", checkReportFile)
	}
}

func resistanceData(m *shear.Member, r *shear.CheckResult) diagram.ResistanceDiagramData {
	title := "SHEAR RESISTANCE"
	if m.Name != "" {
		title += " - " + m.Name
	}
	return diagram.ResistanceDiagramData{
		Title:      title,
		VEd:        r.VEd,
		VRdc:       r.VRdc,
		VRds:       r.VRds,
		VRdMax:     r.VRdMax,
		VRd:        r.VRd,
		Governing:  r.Governing,
		IsAdequate: r.IsAdequate,
	}
}
