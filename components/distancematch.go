package components

import (
	"github.com/automoto/stride/shared/distmatch"
	"github.com/yohamta/donburi"
)

type DistanceMatchData struct {
	Node   distmatch.Node
	State  distmatch.MatchState
	Output distmatch.Output

	// BlendPositions holds the speed each blend sample is authored for, in
	// the order of Node.Source.Samples. Empty for single clip nodes.
	BlendPositions []float64

	// ExplicitTime is the input when distance matching is disabled.
	// ExplicitClock advances it by the tick's delta time.
	ExplicitTime  float64
	ExplicitClock bool

	FallbackLogged bool
}

// Activate re-triggers the node on its next evaluation.
func (d *DistanceMatchData) Activate() {
	d.State = d.State.Reinitialize()
	d.FallbackLogged = false
}

var DistanceMatch = donburi.NewComponentType[DistanceMatchData]()
