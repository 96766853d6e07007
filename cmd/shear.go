package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
	"github.com/alexiusacademia/mcshear/internal/report"
	"github.com/alexiusacademia/mcshear/internal/shear"
	"github.com/spf13/cobra"
)

var shearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Shear check and stirrup design of webs and slab strips",
	Long: `Check and design reinforced concrete members for shear
based on fib Model Code 2010 Section 7.3.3.

Subcommands:
  check   - Calculate the design shear resistance VRd and compare with VEd
  design  - Calculate the maximum stirrup spacing for VEd
  sweep   - Tabulate VRd,s and VRd,max over the strut inclination θ

Forces are entered in kN and moments in kN-m. Member files (JSON, or
xlsx with key/value rows) use N and Nmm.`,
}

// memberFlags holds the member inputs shared by the shear subcommands
type memberFlags struct {
	file string

	// Concrete and geometry
	fck, gammaC, dg float64
	z, bw           float64

	// Longitudinal reinforcement
	es, as float64

	// Internal forces (kN, kN-m, mm)
	med, ved, ned, deltaE float64

	// Shear reinforcement
	asw, sw, fywd, alfa, theta float64

	// Approximation levels
	concreteLevel, steelLevel int
	reinforced                bool
}

func bindMemberFlags(cmd *cobra.Command, f *memberFlags) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Path to member file, JSON or xlsx (level flags still apply)")

	// Material and geometry flags
	cmd.Flags().Float64Var(&f.fck, "fck", 0, "Characteristic concrete strength fck (MPa) [required without --file]")
	cmd.Flags().Float64Var(&f.gammaC, "gamma-c", mc2010.DefaultGammaC, "Concrete safety factor γc")
	cmd.Flags().Float64Var(&f.dg, "dg", 16, "Maximum aggregate size dg (mm)")
	cmd.Flags().Float64VarP(&f.z, "z", "z", 0, "Internal lever arm z (mm) [required without --file]")
	cmd.Flags().Float64VarP(&f.bw, "bw", "b", 0, "Web width bw (mm) [required without --file]")

	// Longitudinal reinforcement flags
	cmd.Flags().Float64Var(&f.es, "es", mc2010.SteelModulus, "Elastic modulus of longitudinal steel Es (MPa)")
	cmd.Flags().Float64Var(&f.as, "as", 0, "Longitudinal tension steel area As (mm²)")

	// Force flags
	cmd.Flags().Float64Var(&f.med, "med", 0, "Design moment MEd (kN-m)")
	cmd.Flags().Float64Var(&f.ved, "ved", 0, "Design shear force VEd (kN)")
	cmd.Flags().Float64Var(&f.ned, "ned", 0, "Design axial force NEd (kN), tension positive")
	cmd.Flags().Float64Var(&f.deltaE, "delta-e", 0, "Axial load eccentricity Δe (mm)")

	// Shear reinforcement flags
	cmd.Flags().Float64Var(&f.asw, "asw", 0, "Stirrup area per spacing Asw (mm²)")
	cmd.Flags().Float64VarP(&f.sw, "sw", "s", 0, "Stirrup spacing sw (mm)")
	cmd.Flags().Float64Var(&f.fywd, "fywd", 434, "Stirrup design yield strength fywd (MPa)")
	cmd.Flags().Float64Var(&f.alfa, "alfa", mc2010.DefaultAlfa, "Stirrup inclination α (degrees)")
	cmd.Flags().Float64Var(&f.theta, "theta", 36, "Compression field inclination θ (degrees)")

	// Level flags
	cmd.Flags().IntVar(&f.concreteLevel, "concrete-level", 1, "Approximation level for VRd,c (0-3)")
	cmd.Flags().IntVar(&f.steelLevel, "steel-level", 1, "Approximation level for VRd,s and VRd,max (0-3)")
	cmd.Flags().BoolVar(&f.reinforced, "reinforced", false, "Member has shear reinforcement")
}

// resolveMember builds the member from --file or from the flags. With a
// file, explicitly set level flags still apply.
func resolveMember(cmd *cobra.Command, f *memberFlags) (*shear.Member, error) {
	var m *shear.Member
	if f.file != "" {
		load := shear.LoadFromFile
		if strings.EqualFold(filepath.Ext(f.file), ".xlsx") {
			load = report.ReadMember
		}
		loaded, err := load(f.file)
		if err != nil {
			return nil, fmt.Errorf("loading member: %w", err)
		}
		m = loaded
	} else {
		m = &shear.Member{
			Section: mc2010.Section{
				Fck: f.fck, GammaC: f.gammaC, Dg: f.dg,
				Z: f.z, Bw: f.bw,
				Es: f.es, As: f.as,
				Med: f.med * 1e6, Ved: f.ved * 1e3, Ned: f.ned * 1e3, DeltaE: f.deltaE,
				Asw: f.asw, Sw: f.sw, Fywd: f.fywd, Alfa: f.alfa, Theta: f.theta,
			},
			ConcreteLevel: mc2010.Level(f.concreteLevel),
			SteelLevel:    mc2010.Level(f.steelLevel),
			Reinforced:    f.reinforced || f.asw > 0,
		}
	}

	if cmd.Flags().Changed("concrete-level") {
		m.ConcreteLevel = mc2010.Level(f.concreteLevel)
	}
	if cmd.Flags().Changed("steel-level") {
		m.SteelLevel = mc2010.Level(f.steelLevel)
	}
	if cmd.Flags().Changed("reinforced") {
		m.Reinforced = f.reinforced
	}

	return m, nil
}

func printMemberInput(m *shear.Member) {
	if m.Name != "" {
		fmt.Printf("  Member: %s\n", m.Name)
	}
	if m.Description != "" {
		fmt.Printf("  Description: %s\n", m.Description)
	}

	s := m.Section
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  fck:\t%.1f MPa\n", s.Fck)
	fmt.Fprintf(w, "  γc:\t%.2f\n", s.GammaC)
	fmt.Fprintf(w, "  Lever arm (z):\t%.0f mm\n", s.Z)
	fmt.Fprintf(w, "  Web width (bw):\t%.0f mm\n", s.Bw)
	if s.As > 0 {
		fmt.Fprintf(w, "  Longitudinal steel (As):\t%.0f mm², Es = %.0f MPa\n", s.As, s.Es)
	}
	fmt.Fprintf(w, "  MEd / VEd / NEd:\t%.2f kN-m / %.2f kN / %.2f kN\n", s.Med/1e6, s.Ved/1e3, s.Ned/1e3)
	if m.Reinforced {
		fmt.Fprintf(w, "  Stirrups (Asw / sw):\t%.0f mm² @ %.0f mm, fywd = %.0f MPa\n", s.Asw, s.Sw, s.Fywd)
		fmt.Fprintf(w, "  θ / α:\t%.1f° / %.1f°\n", s.Theta, s.Alfa)
	}
	fmt.Fprintf(w, "  Concrete level:\t%s\n", m.ConcreteLevel)
	fmt.Fprintf(w, "  Steel level:\t%s\n", m.SteelLevel)
	w.Flush()
	fmt.Println()
}

func printWarnings(warnings []mc2010.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("WARNINGS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, warning := range warnings {
		fmt.Fprintf(w, "  ⚠ %s:\t%s\n", warning.Code, warning.Message)
	}
	w.Flush()
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(shearCmd)
}
