package distmatch

import (
	"math"

	"github.com/automoto/stride/mathutil"
	"github.com/automoto/stride/shared/animcurve"
)

func evaluateSequence(lib Library, n Node, s MatchState, in Input) (MatchState, Output) {
	out := Output{Snapshot: Snapshot{Node: n.Name, InputTime: in.Value}}

	clip, ok := lib.Clip(n.Source.Clip)
	if !ok {
		// Nothing to sample; hold the last time.
		s.Reinitialized = false
		out.Time = s.CurrentTime
		out.Snapshot.Time = s.CurrentTime
		return s, out
	}
	if clip.Name == "" {
		clip.Name = n.Source.Clip
	}
	out.Length = clip.Length
	out.Snapshot.Clip = clip.Name

	skeletonOK := compatible(n.Skeleton, clip)
	if n.DistanceMatching && skeletonOK {
		if curve, found := lib.Curve(clip.Name, n.DistanceCurve); found && curve.Len() > 0 {
			s = matchSequence(n, clip, curve, s, in)
			out.Matched = true
			return s, finish(s, out)
		}
	}

	s, out.Tick = explicitTime(n, clip, s, in, skeletonOK)
	return s, finish(s, out)
}

func finish(s MatchState, out Output) Output {
	out.Time = s.CurrentTime
	out.Snapshot.Time = s.CurrentTime
	out.Snapshot.Matched = out.Matched
	return out
}

// matchSequence resolves the clip time for the input distance. A
// non-looping overshoot pins the time to the end of the clip.
func matchSequence(n Node, clip Clip, curve animcurve.Curve, s MatchState, in Input) MatchState {
	if s.Reinitialized {
		s.CurrentTime = mathutil.ClampFloat(n.StartPosition, 0, clip.Length)
	}

	res, _ := Resolve(curve, Request{
		Target:       in.Value,
		Loop:         n.Loop,
		UseDelta:     n.DeltaDistance,
		PreviousTime: s.CurrentTime,
	})

	t := res.Time
	if !n.Loop && overshoots(curve, res.Distance) {
		t = clip.Length
	}

	s.CurrentTime = mathutil.ClampFloat(t, 0, clip.Length)
	s.InputAccumulatedValue = in.Value
	s.Reinitialized = false
	return s
}

func overshoots(c animcurve.Curve, distance float64) bool {
	maxDistance := c.Last().Value
	return maxDistance > c.First().Value && distance >= maxDistance
}

// explicitTime plays the clip at the requested time. Unless teleporting or
// the skeleton is incompatible, the jump from the accumulator is turned into
// a play rate and applied through a TickRecord.
func explicitTime(n Node, clip Clip, s MatchState, in Input, skeletonOK bool) (MatchState, *TickRecord) {
	length := clip.Length
	explicit := mathutil.ClampFloat(in.Value, 0, length)

	s.InputAccumulatedValue = in.Value

	if (n.TeleportToExplicitTime && n.SyncGroup == "") || !skeletonOK {
		s.CurrentTime = explicit
		s.Reinitialized = false
		return s, nil
	}

	acc := s.CurrentTime
	if s.Reinitialized {
		switch n.Reinit {
		case ReinitExplicitTime:
			acc = explicit
		default:
			acc = n.StartPosition
		}
		acc = mathutil.ClampFloat(acc, 0, length)
	}

	jump := explicit - acc
	if n.Loop && math.Abs(jump) > length*0.5 {
		if jump > 0 {
			jump -= length
		} else {
			jump += length
		}
	}

	// Jumping exactly one loop around the seam cancels to zero; snap to the
	// requested time so the accumulator does not stay behind.
	if jump == 0 {
		acc = explicit
	}

	rate := 0.0
	if !mathutil.IsNearlyZero(in.DeltaTime) && !mathutil.IsNearlyZero(clip.RateScale) {
		rate = jump / (in.DeltaTime * clip.RateScale)
	}

	tick := &TickRecord{Clip: clip.Name, Loop: n.Loop, PlayRate: rate}
	s.CurrentTime = tick.Advance(acc, in.DeltaTime, clip.RateScale, length)
	s.Reinitialized = false
	return s, tick
}
