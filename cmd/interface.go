package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
	"github.com/spf13/cobra"
)

var (
	ifaceJoint mc2010.Interface
	ifaceBeta  float64
	ifaceVEd   float64
	ifaceZ     float64
	ifaceBi    float64
)

var interfaceCmd = &cobra.Command{
	Use:   "interface",
	Short: "Check shear at the interface between concretes cast at different times",
	Long: `Calculate the interface shear stress τEdi and the interface shear
resistance τRdi with and without reinforcement crossing the joint,
fib Model Code 2010 Section 7.3.5.

Examples:
  mcshear interface --beta 1 --ved 200 -z 400 --bi 300 \
      --ca 0.2 --cr 0.1 --mu 0.6 --fck 35 --fyd 434 --rho 0.002`,
	Run: runInterface,
}

func init() {
	rootCmd.AddCommand(interfaceCmd)

	interfaceCmd.Flags().Float64Var(&ifaceBeta, "beta", 1, "Ratio of longitudinal force in the new concrete β")
	interfaceCmd.Flags().Float64Var(&ifaceVEd, "ved", 0, "Design shear force VEd (kN) [required]")
	interfaceCmd.Flags().Float64VarP(&ifaceZ, "z", "z", 0, "Internal lever arm z (mm) [required]")
	interfaceCmd.Flags().Float64Var(&ifaceBi, "bi", 0, "Interface width bi (mm) [required]")

	// Joint coefficients
	interfaceCmd.Flags().Float64Var(&ifaceJoint.Ca, "ca", 0.2, "Adhesion coefficient ca")
	interfaceCmd.Flags().Float64Var(&ifaceJoint.Cr, "cr", 0.1, "Aggregate interlock coefficient cr")
	interfaceCmd.Flags().Float64Var(&ifaceJoint.Mu, "mu", 0.6, "Friction coefficient μ")
	interfaceCmd.Flags().Float64Var(&ifaceJoint.K1, "k1", 0.5, "Interaction coefficient k1")
	interfaceCmd.Flags().Float64Var(&ifaceJoint.K2, "k2", 0.9, "Interaction coefficient k2")
	interfaceCmd.Flags().Float64Var(&ifaceJoint.BetaC, "beta-c", 0.5, "Strut strength reduction βc")
	interfaceCmd.Flags().Float64Var(&ifaceJoint.SigmaN, "sigma-n", 0, "Normal stress on the interface σn (MPa)")
	interfaceCmd.Flags().Float64Var(&ifaceJoint.Rho, "rho", 0, "Reinforcement ratio crossing the interface ρ")
	interfaceCmd.Flags().Float64Var(&ifaceJoint.Alfa, "alfa", 90, "Inclination of the interface reinforcement (degrees)")

	// Material flags
	interfaceCmd.Flags().Float64Var(&ifaceJoint.Fck, "fck", 0, "Characteristic concrete strength fck (MPa) [required]")
	interfaceCmd.Flags().Float64Var(&ifaceJoint.Fcd, "fcd", 0, "Design concrete strength fcd (MPa), default fck/γc")
	interfaceCmd.Flags().Float64Var(&ifaceJoint.Fctd, "fctd", 0, "Design tensile strength fctd (MPa), default fctk,min/γc")
	interfaceCmd.Flags().Float64Var(&ifaceJoint.Fyd, "fyd", 434, "Design yield strength of the reinforcement fyd (MPa)")

	interfaceCmd.MarkFlagRequired("ved")
	interfaceCmd.MarkFlagRequired("z")
	interfaceCmd.MarkFlagRequired("bi")
	interfaceCmd.MarkFlagRequired("fck")
}

func runInterface(cmd *cobra.Command, args []string) {
	joint := ifaceJoint
	var err error
	if joint.Fcd == 0 {
		if joint.Fcd, err = mc2010.Fcd(joint.Fck, mc2010.DefaultGammaC); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}
	if joint.Fctd == 0 {
		if joint.Fctd, err = mc2010.Fctd(joint.Fck, mc2010.DefaultGammaC); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	tauEdi, err := mc2010.TauEdi(ifaceBeta, ifaceVEd*1e3, ifaceZ, ifaceBi)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	plain, err := joint.TauRdiWithoutReinforcement()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	resistance := plain
	label := "without reinforcement"
	var reinforced float64
	if joint.Rho > 0 {
		reinforced, err = joint.TauRdiWithReinforcement()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		resistance = reinforced
		label = "with reinforcement"
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     INTERFACE SHEAR - fib MODEL CODE 2010")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Interface shear stress (τEdi):\t%.3f MPa\n", tauEdi)
	fmt.Fprintf(w, "  τRdi without reinforcement:\t%.3f MPa\n", plain)
	if joint.Rho > 0 {
		fmt.Fprintf(w, "  τRdi with reinforcement:\t%.3f MPa\n", reinforced)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if tauEdi <= resistance {
		fmt.Printf("  ✓ τEdi ≤ τRdi %s\n", label)
	} else {
		fmt.Printf("  ✗ τEdi > τRdi %s\n", label)
	}
	fmt.Println()
}
