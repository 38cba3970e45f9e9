// Package animcurve implements the piecewise-linear float curves embedded in
// animation clips, such as the per-clip distance curve.
package animcurve

import (
	"errors"
	"fmt"

	"github.com/automoto/stride/mathutil"
)

var (
	ErrEmptyCurve     = errors.New("animcurve: curve has no keys")
	ErrUnorderedKeys  = errors.New("animcurve: key times must be strictly increasing")
	ErrNonFiniteValue = errors.New("animcurve: key time or value is not finite")
)

// Keyframe is a single (time, value) point on a curve.
type Keyframe struct {
	Time  float64
	Value float64
}

// Curve is an immutable, time-ordered sequence of keyframes evaluated with
// linear interpolation. The zero Curve has no keys.
type Curve struct {
	keys []Keyframe
}

// NewCurve copies keys into a new Curve. Keys must be non-empty and strictly
// increasing in time. Values are not required to be monotonic.
func NewCurve(keys ...Keyframe) (Curve, error) {
	if len(keys) == 0 {
		return Curve{}, ErrEmptyCurve
	}
	for i, k := range keys {
		if !mathutil.IsFinite(k.Time) || !mathutil.IsFinite(k.Value) {
			return Curve{}, fmt.Errorf("key %d: %w", i, ErrNonFiniteValue)
		}
		if i > 0 && k.Time <= keys[i-1].Time {
			return Curve{}, fmt.Errorf("key %d at %v: %w", i, k.Time, ErrUnorderedKeys)
		}
	}
	c := Curve{keys: make([]Keyframe, len(keys))}
	copy(c.keys, keys)
	return c, nil
}

// MustCurve is like NewCurve but panics on invalid keys. It is meant for
// curve literals in configuration and tests.
func MustCurve(keys ...Keyframe) Curve {
	c, err := NewCurve(keys...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of keys.
func (c Curve) Len() int { return len(c.keys) }

// Key returns the i-th key in time order.
func (c Curve) Key(i int) Keyframe { return c.keys[i] }

// First returns the earliest key. It panics on an empty curve.
func (c Curve) First() Keyframe { return c.keys[0] }

// Last returns the latest key. It panics on an empty curve.
func (c Curve) Last() Keyframe { return c.keys[len(c.keys)-1] }

// Keys returns a copy of the curve's keys.
func (c Curve) Keys() []Keyframe {
	out := make([]Keyframe, len(c.keys))
	copy(out, c.keys)
	return out
}

// Domain returns the time range covered by the keys.
func (c Curve) Domain() (start, end float64) {
	if len(c.keys) == 0 {
		return 0, 0
	}
	return c.First().Time, c.Last().Time
}

// Evaluate returns the value at t, linearly interpolated between the two
// bracketing keys. Times outside the key range return the nearest end value.
func (c Curve) Evaluate(t float64) (float64, error) {
	if len(c.keys) == 0 {
		return 0, ErrEmptyCurve
	}
	if t <= c.keys[0].Time {
		return c.keys[0].Value, nil
	}
	prev := c.keys[0]
	for _, k := range c.keys[1:] {
		if t < k.Time {
			return lerpKeys(prev, k, t), nil
		}
		prev = k
	}
	return prev.Value, nil
}

func lerpKeys(k0, k1 Keyframe, t float64) float64 {
	dt := k1.Time - k0.Time
	if dt == 0 {
		return k0.Value
	}
	return k0.Value + (k1.Value-k0.Value)*(t-k0.Time)/dt
}

// String formats the curve's keys for debugging.
func (c Curve) String() string {
	return fmt.Sprintf("Curve%v", c.keys)
}
