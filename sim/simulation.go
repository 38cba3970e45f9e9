package sim

import (
	"fmt"
	"log"

	"github.com/automoto/stride/shared/distmatch"
	"github.com/automoto/stride/systems"
	"github.com/automoto/stride/systems/factory"
	"github.com/yohamta/donburi"
)

// Simulation runs the character systems over a world at a fixed step.
type Simulation struct {
	world donburi.World
	lib   distmatch.Library
	dt    float64
	ticks int
}

// New returns a simulation stepping tickRate times per simulated second
// with the demo characters spawned.
func New(lib distmatch.Library, tickRate int) (*Simulation, error) {
	s, err := NewEmpty(lib, tickRate)
	if err != nil {
		return nil, err
	}
	if err := factory.CreateDemo(s.world); err != nil {
		return nil, fmt.Errorf("spawn demo: %w", err)
	}
	return s, nil
}

// Restart returns a fresh demo simulation. When it cannot be built the error
// is logged and prev is returned unchanged.
func Restart(prev *Simulation, lib distmatch.Library, tickRate int) *Simulation {
	s, err := New(lib, tickRate)
	if err != nil {
		log.Printf("[sim] restart failed, keeping current simulation: %v", err)
		return prev
	}
	return s
}

// NewEmpty returns a simulation over an empty world.
func NewEmpty(lib distmatch.Library, tickRate int) (*Simulation, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %d", tickRate)
	}
	return &Simulation{
		world: donburi.NewWorld(),
		lib:   lib,
		dt:    1 / float64(tickRate),
	}, nil
}

// Step advances every system by one tick.
func (s *Simulation) Step() {
	systems.UpdateSpeedProfiles(s.world, s.dt)
	systems.UpdateLocomotion(s.world, s.dt)
	systems.UpdateBlendWeights(s.world)
	systems.UpdateDistanceMatching(s.world, s.lib, s.dt)
	systems.UpdateAnimations(s.world)
	s.ticks++
}

func (s *Simulation) World() donburi.World { return s.world }

func (s *Simulation) DeltaTime() float64 { return s.dt }

func (s *Simulation) Ticks() int { return s.ticks }

// Snapshots returns the state of every node after the last step.
func (s *Simulation) Snapshots() []distmatch.Snapshot {
	return systems.Snapshots(s.world)
}
