package distmatch

// MatchState is the per-node state carried between ticks.
type MatchState struct {
	// CurrentTime is the last resolved playback time: absolute seconds for a
	// single clip, normalized [0,1] for a blend.
	CurrentTime float64
	// InputAccumulatedValue is the last input value (distance or explicit time).
	InputAccumulatedValue float64
	// Reinitialized is set when the node was (re)activated and cleared by the
	// first Evaluate afterwards.
	Reinitialized bool
}

// NewMatchState returns the state of a freshly activated node.
func NewMatchState() MatchState {
	return MatchState{Reinitialized: true}
}

// Reinitialize marks the node as re-triggered. The next Evaluate applies the
// node's reinitialization policy.
func (s MatchState) Reinitialize() MatchState {
	s.Reinitialized = true
	return s
}
