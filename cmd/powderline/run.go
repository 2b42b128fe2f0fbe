package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/powderline/sim"
	"github.com/automoto/powderline/systems"
	"github.com/spf13/cobra"
)

var (
	runSeed       int64
	runTicks      int
	runDifficulty int
	runSpeed      float64
	runCourse     string
	runObstacles  int
	runAuto       bool
	runRealtime   bool
	runTickRate   int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one headless session and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := runSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		s, err := sim.New(sim.Config{
			Seed:       seed,
			Difficulty: runDifficulty,
			BaseSpeed:  runSpeed,
			CoursePath: runCourse,
			Obstacles:  runObstacles,
		})
		if err != nil {
			return err
		}

		// Best-effort history; Init logs its own warning on failure.
		persisted := systems.InitPersistence() == nil
		stored, _ := systems.LoadRunStats()

		if runRealtime {
			loop := sim.NewLoop(s, runTickRate)
			go loop.Run()
			time.Sleep(time.Duration(runTicks) * time.Second / time.Duration(runTickRate))
			loop.Stop()
		} else {
			// The input layer lives out here: a little autopilot nudging the
			// player left and right so headless runs still hit obstacles at
			// realistic angles.
			pilot := rand.New(rand.NewSource(seed + 1))
			for t := 0; t < runTicks; t++ {
				if runAuto && t%45 == 0 {
					if pilot.Float64() < 0.5 {
						s.TurnLeft()
					} else {
						s.TurnRight()
					}
				}
				s.Step()
			}
		}

		stats := s.Stats()
		weather := s.Weather()
		fmt.Printf("seed         %d\n", seed)
		fmt.Printf("ticks        %d\n", s.Tick())
		fmt.Printf("distance     %.0f\n", stats.Distance)
		fmt.Printf("collisions   %d\n", stats.Collisions)
		fmt.Printf("crashes      %d\n", stats.Crashes)
		fmt.Printf("weather      %s (events: %d)\n", weather.State, weather.Events)

		if persisted {
			stored = systems.RecordRun(stored, stats)
			if err := systems.SaveRunStats(stored); err == nil {
				fmt.Printf("best         %.0f over %d runs\n", stored.BestDistance, stored.TotalRuns)
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "random seed (0 = time-based)")
	runCmd.Flags().IntVar(&runTicks, "ticks", 3600, "ticks to simulate")
	runCmd.Flags().IntVar(&runDifficulty, "difficulty", 50, "difficulty level 0-100")
	runCmd.Flags().Float64Var(&runSpeed, "speed", 3.0, "player base speed")
	runCmd.Flags().StringVar(&runCourse, "course", "", "TMX course file (procedural slope when empty)")
	runCmd.Flags().IntVar(&runObstacles, "obstacles", 0, "procedural obstacle count (0 = default)")
	runCmd.Flags().BoolVar(&runAuto, "auto", true, "steer the player automatically")
	runCmd.Flags().BoolVar(&runRealtime, "realtime", false, "pace the run at the tick rate instead of running flat out")
	runCmd.Flags().IntVar(&runTickRate, "tick-rate", 60, "ticks per second in realtime mode")
}
