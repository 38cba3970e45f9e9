package distmatch

import "github.com/automoto/stride/mathutil"

// TickRecord is the play instruction produced by explicit-time playback.
// Jumps to a requested time are expressed as a play rate so the sampler can
// treat them like regular playback.
type TickRecord struct {
	Clip     string
	Loop     bool
	PlayRate float64
}

// Advance moves t forward by PlayRate over dt, scaled by rateScale. Looping
// records wrap into [0, length); others clamp to [0, length]. A time already
// inside [0, length] is never wrapped, so a zero rate leaves t untouched.
func (r TickRecord) Advance(t, dt, rateScale, length float64) float64 {
	next := t + r.PlayRate*dt*rateScale
	if next >= 0 && next <= length {
		return next
	}
	if r.Loop && length > 0 {
		return mathutil.WrapFloat(next, 0, length)
	}
	return mathutil.ClampFloat(next, 0, length)
}
