package distmatch

import (
	"math"

	"github.com/automoto/stride/mathutil"
	"github.com/automoto/stride/shared/animcurve"
)

// Request is the input of a single distance-to-time lookup.
type Request struct {
	// Target is the absolute distance, or the per-tick increment when
	// UseDelta is set.
	Target   float64
	Loop     bool
	UseDelta bool
	// PreviousTime is the last resolved time; only read when UseDelta is set.
	PreviousTime float64
}

// Result is the outcome of a lookup.
type Result struct {
	Time float64
	// Distance is the effective distance after delta accumulation and loop
	// wrapping. It is not clamped to the curve's range.
	Distance float64
}

// Resolve finds the time at which c reaches the requested distance.
//
// Distances at or beyond the curve's last value resolve to the last key's
// time, distances at or before the first value resolve to the first key's
// time. When looping, a distance above the range becomes min + d mod delta
// and one below it becomes max - d mod delta before clamping. A curve whose last value does not exceed its first value always
// resolves to the first key's time.
func Resolve(c animcurve.Curve, req Request) (Result, error) {
	if c.Len() == 0 {
		return Result{}, animcurve.ErrEmptyCurve
	}

	first, last := c.First(), c.Last()
	minDistance, maxDistance := first.Value, last.Value
	deltaDistance := maxDistance - minDistance

	distance := req.Target
	if req.UseDelta {
		prev, _ := c.Evaluate(req.PreviousTime)
		distance = prev + req.Target
	}

	if deltaDistance <= 0 || !mathutil.IsFinite(distance) {
		return Result{Time: first.Time, Distance: distance}, nil
	}

	if req.Loop {
		switch {
		case distance > maxDistance:
			distance = minDistance + math.Mod(distance, deltaDistance)
		case distance < minDistance:
			distance = maxDistance - math.Mod(distance, deltaDistance)
		}
	}

	switch {
	case distance >= maxDistance:
		return Result{Time: last.Time, Distance: distance}, nil
	case distance <= minDistance:
		return Result{Time: first.Time, Distance: distance}, nil
	}

	return Result{Time: timeAtDistance(c, distance), Distance: distance}, nil
}

// timeAtDistance scans for the first key whose value exceeds distance and
// interpolates time between it and its predecessor. The caller guarantees
// first value < distance < last value, so a bracketing pair exists.
func timeAtDistance(c animcurve.Curve, distance float64) float64 {
	prev := c.First()
	for i := 1; i < c.Len(); i++ {
		k := c.Key(i)
		if k.Value > distance {
			alpha := mathutil.SafeDiv(distance-prev.Value, k.Value-prev.Value)
			return prev.Time + alpha*(k.Time-prev.Time)
		}
		prev = k
	}
	return c.Last().Time
}
