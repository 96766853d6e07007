package cmd

import (
	"fmt"

	"github.com/alexiusacademia/mcshear/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mcshear",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mcshear v%s\n", version.Version)
		fmt.Println("Concrete Shear Resistance Tool")
		fmt.Printf("Based on %s\n", version.Code)
		fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
