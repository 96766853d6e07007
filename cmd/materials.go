package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
	"github.com/spf13/cobra"
)

var (
	materialFck    float64
	materialFyk    float64
	materialGammaC float64
	materialGammaS float64
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Calculate concrete and reinforcement design properties",
	Long: `Calculate the material properties used by the shear formulas from the
characteristic strengths, fib Model Code 2010 Chapter 5.

Examples:
  mcshear materials --fck 35
  mcshear materials --fck 60 --fyk 500 --gamma-c 1.5 --gamma-s 1.15`,
	Run: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)

	materialsCmd.Flags().Float64Var(&materialFck, "fck", 0, "Characteristic concrete strength fck (MPa) [required]")
	materialsCmd.Flags().Float64Var(&materialFyk, "fyk", 500, "Characteristic yield strength of reinforcement fyk (MPa)")
	materialsCmd.Flags().Float64Var(&materialGammaC, "gamma-c", mc2010.DefaultGammaC, "Concrete safety factor γc")
	materialsCmd.Flags().Float64Var(&materialGammaS, "gamma-s", mc2010.DefaultGammaS, "Steel safety factor γs")

	materialsCmd.MarkFlagRequired("fck")
}

func runMaterials(cmd *cobra.Command, args []string) {
	fctm, err := mc2010.Fctm(materialFck)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fctk, _ := mc2010.FctkMin(materialFck)
	fcd, err := mc2010.Fcd(materialFck, materialGammaC)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fctd, _ := mc2010.Fctd(materialFck, materialGammaC)
	eci, _ := mc2010.Eci(materialFck)
	nfc, _ := mc2010.Nfc(materialFck)
	fsqr, _ := mc2010.Fsqr(materialFck)
	fyd, err := mc2010.Fyd(materialFyk, materialGammaS)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MATERIAL PROPERTIES - fib MODEL CODE 2010")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CONCRETE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  fck:\t%.1f MPa\n", materialFck)
	fmt.Fprintf(w, "  Mean strength (fcm):\t%.1f MPa\n", mc2010.Fcm(materialFck))
	fmt.Fprintf(w, "  Mean tensile strength (fctm):\t%.2f MPa\n", fctm)
	fmt.Fprintf(w, "  fctk,min:\t%.2f MPa\n", fctk)
	fmt.Fprintf(w, "  Design strength (fcd):\t%.2f MPa\n", fcd)
	fmt.Fprintf(w, "  Design tensile strength (fctd):\t%.2f MPa\n", fctd)
	fmt.Fprintf(w, "  Modulus (Eci):\t%.0f MPa\n", eci)
	fmt.Fprintf(w, "  Brittleness factor (ηfc):\t%.4f\n", nfc)
	fmt.Fprintf(w, "  √fck (capped at %.0f):\t%.3f MPa\n", mc2010.SqrtFckMax, fsqr)
	w.Flush()
	fmt.Println()

	fmt.Println("REINFORCEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  fyk:\t%.0f MPa\n", materialFyk)
	fmt.Fprintf(w, "  Design yield strength (fyd):\t%.1f MPa\n", fyd)
	fmt.Fprintf(w, "  Modulus (Es):\t%.0f MPa\n", mc2010.SteelModulus)
	fmt.Fprintf(w, "  Yield strain (εyd):\t%.5f\n", fyd/mc2010.SteelModulus)
	w.Flush()
	fmt.Println()
}
