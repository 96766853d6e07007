package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
	"github.com/spf13/cobra"
)

var (
	strainEs     float64
	strainAs     float64
	strainMed    float64
	strainVed    float64
	strainNed    float64
	strainZ      float64
	strainDeltaE float64
	strainTheta  float64
)

var strainCmd = &cobra.Command{
	Use:   "strain",
	Short: "Calculate the longitudinal strain εx at mid-depth",
	Long: `Calculate the longitudinal strain εx at the mid-depth of the effective
shear depth, the minimum compression field inclination θmin and,
for a given θ, the principal tensile strain ε1 and the factor kε.

Examples:
  mcshear strain --es 200000 --as 2000 --med 100 --ved 200 -z 400
  mcshear strain --as 2000 --ved 2 -z 180 --ned 50 --delta-e 20 --theta 40`,
	Run: runStrain,
}

func init() {
	rootCmd.AddCommand(strainCmd)

	strainCmd.Flags().Float64Var(&strainEs, "es", mc2010.SteelModulus, "Elastic modulus of longitudinal steel Es (MPa)")
	strainCmd.Flags().Float64Var(&strainAs, "as", 0, "Longitudinal tension steel area As (mm²) [required]")
	strainCmd.Flags().Float64Var(&strainMed, "med", 0, "Design moment MEd (kN-m)")
	strainCmd.Flags().Float64Var(&strainVed, "ved", 0, "Design shear force VEd (kN)")
	strainCmd.Flags().Float64Var(&strainNed, "ned", 0, "Design axial force NEd (kN), tension positive")
	strainCmd.Flags().Float64VarP(&strainZ, "z", "z", 0, "Internal lever arm z (mm) [required]")
	strainCmd.Flags().Float64Var(&strainDeltaE, "delta-e", 0, "Axial load eccentricity Δe (mm)")
	strainCmd.Flags().Float64Var(&strainTheta, "theta", 0, "Compression field inclination θ for ε1 (degrees)")

	strainCmd.MarkFlagRequired("as")
	strainCmd.MarkFlagRequired("z")
}

func runStrain(cmd *cobra.Command, args []string) {
	ex, err := mc2010.EpsilonX(strainEs, strainAs, strainMed*1e6, strainVed*1e3, strainNed*1e3, strainZ, strainDeltaE)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     LONGITUDINAL STRAIN - fib MODEL CODE 2010")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Longitudinal strain (εx):\t%.6f\n", ex)
	fmt.Fprintf(w, "  Minimum inclination (θmin):\t%.2f°\n", mc2010.ThetaMin(ex))
	if strainTheta > 0 {
		e1, err := mc2010.Epsilon1(ex, strainTheta)
		if err != nil {
			w.Flush()
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Fprintf(w, "  Principal tensile strain (ε1):\t%.6f\n", e1)
		fmt.Fprintf(w, "  Strength reduction (kε):\t%.4f\n", mc2010.KEpsilon(e1))
	}
	w.Flush()
	fmt.Println()

	if mc2010.ThetaMin(ex) > mc2010.ThetaUpperLimit {
		fmt.Printf("  ⚠ θmin exceeds %.0f°, reduce εx\n\n", mc2010.ThetaUpperLimit)
	}
}
