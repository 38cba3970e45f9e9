package distmatch

import "fmt"

// SourceKind selects how a node produces its distance curve.
type SourceKind int

const (
	// SingleClip matches against one clip's own distance curve and produces
	// absolute clip time.
	SingleClip SourceKind = iota
	// BlendedComposite matches against the blend of several clips' curves and
	// produces normalized time.
	BlendedComposite
)

func (k SourceKind) String() string {
	switch k {
	case SingleClip:
		return "SingleClip"
	case BlendedComposite:
		return "BlendedComposite"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// WeightedClip is a clip sampled by a blend with the given weight.
type WeightedClip struct {
	Clip   string
	Weight float64
}

// Source is the animation a node plays: a single clip or a weighted set of
// clips.
type Source struct {
	Kind    SourceKind
	Clip    string
	Samples []WeightedClip
}

// ReinitBehavior selects the accumulator value used when an explicit-time
// node is (re)activated.
type ReinitBehavior int

const (
	ReinitStartPosition ReinitBehavior = iota
	ReinitExplicitTime
)

// Node is the static configuration of a distance-matching evaluator.
type Node struct {
	Name     string
	Source   Source
	Skeleton string

	// DistanceMatching enables the distance lookup. When false, or when the
	// curve is missing, the input is treated as an explicit time.
	DistanceMatching bool
	DistanceCurve    string
	Loop             bool
	// DeltaDistance treats the input as a per-tick increment added to the
	// distance at the previous time.
	DeltaDistance bool

	// StartPosition is the time adopted on (re)activation: the accumulator
	// for explicit-time playback and the delta origin for distance matching.
	StartPosition float64
	Reinit        ReinitBehavior
	// TeleportToExplicitTime jumps straight to the requested time instead of
	// synthesizing a play rate, unless the node is in a sync group.
	TeleportToExplicitTime bool
	SyncGroup              string
}

// Input is the per-tick input of a node.
type Input struct {
	// Value is a distance when distance matching, otherwise an explicit time
	// (normalized for blends).
	Value     float64
	DeltaTime float64
}

// Output is the per-tick result handed to the pose sampler.
type Output struct {
	Time float64
	// Length is the duration Time is expressed in: the clip length for a
	// single clip, 1 for a blend.
	Length     float64
	Normalized bool
	// Matched reports whether distance matching produced Time this tick.
	Matched bool
	// Tick is set when the explicit-time path synthesized a play rate.
	Tick     *TickRecord
	Snapshot Snapshot
}

// Progress returns Time as a fraction of Length.
func (o Output) Progress() float64 {
	if o.Length <= 0 {
		return 0
	}
	return o.Time / o.Length
}

// Evaluate advances a node by one tick. It never fails: missing clips,
// curves or incompatible skeletons degrade to a plausible time.
func Evaluate(lib Library, n Node, s MatchState, in Input) (MatchState, Output) {
	switch n.Source.Kind {
	case BlendedComposite:
		return evaluateBlendSpace(lib, n, s, in)
	default:
		return evaluateSequence(lib, n, s, in)
	}
}
