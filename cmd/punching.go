package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
	"github.com/spf13/cobra"
)

var (
	punchingSlab     mc2010.Slab
	punchingPosition string
	punchingVEd      float64
	punchingEu       float64
	punchingLevel    int
)

var columnPositions = map[string]mc2010.ColumnPosition{
	"inner":         mc2010.InnerColumn,
	"edge-parallel": mc2010.EdgeColumnParallel,
	"edge-perp":     mc2010.EdgeColumnPerpendicular,
	"corner":        mc2010.CornerColumn,
}

var punchingCmd = &cobra.Command{
	Use:   "punching",
	Short: "Calculate the slab rotation ψ at a column for punching",
	Long: `Calculate the rotation ψ of a flat slab around the supported area,
fib Model Code 2010 Section 7.3.5.4.

  Level I:  ψ = 1.5·rs/d·fyd/Es
  Level II: ψ = 1.5·rs/d·fyd/Es·((mEd − mPd)/(mRd − mPd))^1.5

Column positions: inner, edge-parallel, edge-perp, corner.

Examples:
  mcshear punching --lx 6000 --ly 6000 --lmin 6000 -d 200 --level 1
  mcshear punching --lx 6000 --ly 5000 --lmin 5000 -d 200 --level 2 \
      --ved 500 --eu 50 --mrd 150 --position edge-parallel`,
	Run: runPunching,
}

func init() {
	rootCmd.AddCommand(punchingCmd)

	punchingCmd.Flags().Float64Var(&punchingSlab.Lx, "lx", 0, "Span in x (mm) [required]")
	punchingCmd.Flags().Float64Var(&punchingSlab.Ly, "ly", 0, "Span in y (mm) [required]")
	punchingCmd.Flags().Float64Var(&punchingSlab.Lmin, "lmin", 0, "Shorter span limiting bs (mm) [required]")
	punchingCmd.Flags().Float64VarP(&punchingSlab.D, "d", "d", 0, "Effective depth d (mm) [required]")
	punchingCmd.Flags().Float64Var(&punchingSlab.Fyd, "fyd", 434, "Design yield strength fyd (MPa)")
	punchingCmd.Flags().Float64Var(&punchingSlab.Es, "es", mc2010.SteelModulus, "Elastic modulus Es (MPa)")
	punchingCmd.Flags().Float64Var(&punchingSlab.MRd, "mrd", 0, "Design flexural strength mRd (kN-m/m)")
	punchingCmd.Flags().Float64Var(&punchingSlab.MPd, "mpd", 0, "Decompression moment mPd (kN-m/m)")
	punchingCmd.Flags().StringVar(&punchingPosition, "position", "inner", "Column position")
	punchingCmd.Flags().Float64Var(&punchingVEd, "ved", 0, "Column reaction VEd (kN)")
	punchingCmd.Flags().Float64Var(&punchingEu, "eu", 0, "Load eccentricity eu (mm)")
	punchingCmd.Flags().IntVar(&punchingLevel, "level", 1, "Approximation level (1 or 2)")

	punchingCmd.MarkFlagRequired("lx")
	punchingCmd.MarkFlagRequired("ly")
	punchingCmd.MarkFlagRequired("lmin")
	punchingCmd.MarkFlagRequired("d")
}

func runPunching(cmd *cobra.Command, args []string) {
	position, ok := columnPositions[strings.ToLower(punchingPosition)]
	if !ok {
		fmt.Printf("Error: unknown column position %q\n", punchingPosition)
		return
	}

	// kN-m/m and kN to Nmm/mm and N
	slab := punchingSlab
	slab.Position = position
	slab.MRd *= 1e3
	slab.MPd *= 1e3
	vEd := punchingVEd * 1e3

	level := mc2010.Level(punchingLevel)
	psi, err := slab.Psi(level, vEd, punchingEu)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PUNCHING SLAB ROTATION - fib MODEL CODE 2010")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Column position:\t%s\n", slab.Position)
	fmt.Fprintf(w, "  Level:\t%s\n", level)
	fmt.Fprintf(w, "  Contraflexure radius (rs):\t%.1f mm\n", slab.Rs())
	if level == mc2010.Level2 {
		med, err := slab.MEd(vEd, punchingEu)
		if err != nil {
			w.Flush()
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Fprintf(w, "  Support strip moment (mEd):\t%.2f kN-m/m\n", med/1e3)
	}
	fmt.Fprintf(w, "  Rotation (ψ):\t%.5f rad\n", psi)
	w.Flush()
	fmt.Println()
}
