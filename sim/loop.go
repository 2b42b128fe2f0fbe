package sim

import (
	"log"
	"time"
)

// Loop paces a session at a fixed tick rate for interactive front ends.
// Batch runs should use Sim.RunTicks instead.
type Loop struct {
	sim      *Sim
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewLoop(sim *Sim, tickRate int) *Loop {
	return &Loop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (l *Loop) Run() {
	l.running = true
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Simulation loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			l.running = false
			log.Println("Simulation loop stopped")
			return
		case <-ticker.C:
			l.sim.Step()
		}
	}
}

func (l *Loop) Stop() {
	close(l.stopChan)
}
