package sim

import (
	"log"
	"sync"
	"time"
)

// Loop steps a simulation in real time.
type Loop struct {
	sim         *Simulation
	tickRate    int
	maxTicks    int
	reportEvery int
	report      func(*Simulation)
	stopChan    chan struct{}
	stopOnce    sync.Once
}

// NewLoop returns a loop running sim at tickRate. report, when set, is
// called every reportEvery ticks. A positive maxTicks ends the loop after
// that many ticks.
func NewLoop(sim *Simulation, tickRate, maxTicks, reportEvery int, report func(*Simulation)) *Loop {
	return &Loop{
		sim:         sim,
		tickRate:    tickRate,
		maxTicks:    maxTicks,
		reportEvery: reportEvery,
		report:      report,
		stopChan:    make(chan struct{}),
	}
}

// Run blocks until Stop is called or maxTicks is reached.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("[sim] loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("[sim] loop stopped")
			return
		case <-ticker.C:
			if l.tick() {
				log.Printf("[sim] loop finished after %d ticks", l.sim.Ticks())
				return
			}
		}
	}
}

// RunFast steps through maxTicks without waiting between ticks. It does
// nothing for an unbounded loop.
func (l *Loop) RunFast() {
	if l.maxTicks <= 0 {
		return
	}
	done := false
	for !done {
		done = l.tick()
	}
}

func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

// tick steps once and reports whether the loop is done.
func (l *Loop) tick() bool {
	l.sim.Step()

	n := l.sim.Ticks()
	if l.report != nil && l.reportEvery > 0 && n%l.reportEvery == 0 {
		l.report(l.sim)
	}
	return l.maxTicks > 0 && n >= l.maxTicks
}
