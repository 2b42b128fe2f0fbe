// Package main is the powderline command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "powderline",
	Short: "Headless top-down skiing simulation",
	Long: `Powderline runs the skiing simulation core without a renderer:
skiers descend the slope, dodge obstacles, crash and recover while the
weather engine works against them.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
}
