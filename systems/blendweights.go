package systems

import (
	"math"

	"github.com/automoto/stride/components"
	"github.com/automoto/stride/shared/distmatch"
	"github.com/yohamta/donburi"
)

// BlendWeights1D returns the weights of a one dimensional blend at x. The two
// positions bracketing x share the weight linearly; outside the covered range
// the nearest position takes it all. Positions need not be sorted.
func BlendWeights1D(positions []float64, x float64) []float64 {
	weights := make([]float64, len(positions))
	if len(positions) == 0 {
		return weights
	}
	if math.IsNaN(x) {
		x = 0
	}

	lo, hi := -1, -1
	for i, p := range positions {
		if p <= x && (lo < 0 || p > positions[lo]) {
			lo = i
		}
		if p >= x && (hi < 0 || p < positions[hi]) {
			hi = i
		}
	}

	switch {
	case lo < 0:
		weights[hi] = 1
	case hi < 0:
		weights[lo] = 1
	case positions[lo] == positions[hi]:
		weights[lo] = 1
	default:
		alpha := (x - positions[lo]) / (positions[hi] - positions[lo])
		weights[lo] = 1 - alpha
		weights[hi] = alpha
	}
	return weights
}

// UpdateBlendWeights sets the sample weights of blended nodes from the
// entity's current speed.
func UpdateBlendWeights(w donburi.World) {
	components.DistanceMatch.Each(w, func(e *donburi.Entry) {
		dm := components.DistanceMatch.Get(e)
		if dm.Node.Source.Kind != distmatch.BlendedComposite || len(dm.BlendPositions) == 0 {
			return
		}
		if !e.HasComponent(components.Locomotion) {
			return
		}

		weights := BlendWeights1D(dm.BlendPositions, components.Locomotion.Get(e).Speed)
		samples := dm.Node.Source.Samples
		for i := range samples {
			if i < len(weights) {
				samples[i].Weight = weights[i]
			} else {
				samples[i].Weight = 0
			}
		}
	})
}
