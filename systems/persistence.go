package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/powderline/components"
	"github.com/quasilyte/gdata"
)

// RunStats is the cumulative session history stored on disk.
type RunStats struct {
	BestDistance    float64 `json:"bestDistance"`
	TotalRuns       int     `json:"totalRuns"`
	TotalCollisions int     `json:"totalCollisions"`
	TotalCrashes    int     `json:"totalCrashes"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for run-stats storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "powderline",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRunStats loads stored stats from disk. Missing or unreadable data is
// not an error for the caller; the run just starts from zero history.
func LoadRunStats() (*RunStats, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("runstats")
	if err != nil {
		log.Printf("Warning: Could not load run stats: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var stats RunStats
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("Warning: Could not parse saved run stats: %v", err)
		return nil, err
	}

	return &stats, nil
}

// RecordRun folds one finished session into the stored history and saves it.
func RecordRun(stored *RunStats, session components.SessionStats) *RunStats {
	if stored == nil {
		stored = &RunStats{}
	}
	stored.TotalRuns++
	stored.TotalCollisions += session.Collisions
	stored.TotalCrashes += session.Crashes
	if session.Distance > stored.BestDistance {
		stored.BestDistance = session.Distance
	}
	return stored
}

// SaveRunStats writes stats to disk, logging and continuing on failure.
func SaveRunStats(s *RunStats) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize run stats: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("runstats", data); err != nil {
		log.Printf("Warning: Could not save run stats: %v", err)
		return err
	}
	return nil
}
