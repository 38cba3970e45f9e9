package factory

import (
	cfg "github.com/automoto/stride/config"
	"github.com/automoto/stride/shared/distmatch"
	"github.com/yohamta/donburi"
)

// CreateDemo spawns the showcase characters. Moving characters all follow
// the configured speed profile so their nodes can be compared side by side.
func CreateDemo(w donburi.World) error {
	scripted := []struct {
		node      distmatch.Node
		loop      bool
		positions []float64
	}{
		{node: SequenceNode("Walk", "walk", true, true), loop: true},
		{node: SequenceNode("Run", "run", true, true), loop: true},
		{
			node:      BlendNode("Locomotion", "walk", "run"),
			loop:      true,
			positions: []float64{cfg.Locomotion.WalkSpeed, cfg.Locomotion.RunSpeed},
		},
		// Absolute distance without looping: holds the last frame once the
		// clip's distance is covered.
		{node: SequenceNode("Start", "run_start", false, false)},
	}

	for _, s := range scripted {
		if _, err := CreateScriptedCharacter(w, s.node, cfg.Locomotion.Profile, s.loop, s.positions...); err != nil {
			return err
		}
	}

	CreateCharacter(w, ClockNode("Idle", "idle"))
	return nil
}
