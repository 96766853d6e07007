package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/mcshear/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcshear",
	Short: "Concrete Shear Resistance Tool",
	Long: `mcshear - Concrete Shear Resistance per fib Model Code 2010

A CLI tool for the shear verification of reinforced concrete members
based on the fib Model Code for Concrete Structures 2010.

This tool helps structural engineers perform:
  - Longitudinal strain (εx) evaluation
  - Shear resistance checks at Levels of Approximation I, II and III
  - Stirrup spacing design
  - Torsion, interface shear and punching checks

All calculations follow fib Model Code 2010 Section 7.3 provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   mcshear v%-47s║\n", version.Version)
		fmt.Printf("  ║   Concrete Shear Resistance, %-29s║\n", version.Code)
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the shear verification of reinforced concrete")
		fmt.Println("  members based on the fib Model Code 2010.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Longitudinal strain and minimum strut inclination")
		fmt.Println("    • Shear check with and without shear reinforcement")
		fmt.Println("    • Stirrup spacing design and θ sweep")
		fmt.Println("    • Torsion, interface shear and punching rotation")
		fmt.Println()
		fmt.Println("  Use 'mcshear --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
