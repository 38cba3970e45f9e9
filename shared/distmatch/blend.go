package distmatch

import "github.com/automoto/stride/shared/animcurve"

// BlendSampleCount is the fixed resolution of a blended distance curve:
// normalized times 0.0, 0.1, ..., 1.0.
const BlendSampleCount = 11

// BlendSample is one weighted contributor to a blended distance curve.
// A nil Curve means the clip has no distance curve.
type BlendSample struct {
	Curve        *animcurve.Curve
	Weight       float64
	ClipDuration float64
}

// Blend resamples every sample's curve onto BlendSampleCount normalized
// times, scales the time axis by the clip duration and sums the values
// weighted by the sample weight. Samples without a curve contribute nothing.
// Weights are used as given; they need not sum to one.
func Blend(samples []BlendSample) animcurve.Curve {
	keys := make([]animcurve.Keyframe, BlendSampleCount)
	for i := range keys {
		keys[i].Time = float64(i) / float64(BlendSampleCount-1)
	}

	for _, s := range samples {
		if s.Curve == nil || s.Curve.Len() == 0 {
			continue
		}
		for i := range keys {
			v, _ := s.Curve.Evaluate(keys[i].Time * s.ClipDuration)
			keys[i].Value += v * s.Weight
		}
	}

	return animcurve.MustCurve(keys...)
}
