package main

import (
	"fmt"

	"github.com/automoto/powderline/systems"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored run history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := systems.InitPersistence(); err != nil {
			return err
		}
		stats, err := systems.LoadRunStats()
		if err != nil {
			return err
		}
		if stats == nil {
			fmt.Println("no runs recorded yet")
			return nil
		}
		fmt.Printf("runs         %d\n", stats.TotalRuns)
		fmt.Printf("best         %.0f\n", stats.BestDistance)
		fmt.Printf("collisions   %d\n", stats.TotalCollisions)
		fmt.Printf("crashes      %d\n", stats.TotalCrashes)
		return nil
	},
}
