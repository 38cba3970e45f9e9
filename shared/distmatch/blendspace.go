package distmatch

import (
	"strings"

	"github.com/automoto/stride/mathutil"
)

func evaluateBlendSpace(lib Library, n Node, s MatchState, in Input) (MatchState, Output) {
	out := Output{
		Length:     1,
		Normalized: true,
		Snapshot:   Snapshot{Node: n.Name, Clip: blendName(n.Source), InputTime: in.Value},
	}

	if n.DistanceMatching {
		samples, found := blendSamples(lib, n)
		if s.Reinitialized {
			s.CurrentTime = mathutil.ClampFloat(n.StartPosition, 0, 1)
		}
		res, _ := Resolve(Blend(samples), Request{
			Target:       in.Value,
			Loop:         n.Loop,
			UseDelta:     n.DeltaDistance,
			PreviousTime: s.CurrentTime,
		})
		s.CurrentTime = res.Time
		out.Matched = found
	} else {
		s.CurrentTime = mathutil.ClampFloat(in.Value, 0, 1)
	}

	s.InputAccumulatedValue = in.Value
	s.Reinitialized = false
	return s, finish(s, out)
}

// blendSamples gathers the blend inputs for the node's clips. Unknown or
// incompatible clips are dropped; clips without the distance curve are kept
// with a nil curve. found reports whether any clip supplied a curve.
func blendSamples(lib Library, n Node) (samples []BlendSample, found bool) {
	samples = make([]BlendSample, 0, len(n.Source.Samples))
	for _, wc := range n.Source.Samples {
		clip, ok := lib.Clip(wc.Clip)
		if !ok || !compatible(n.Skeleton, clip) {
			continue
		}
		bs := BlendSample{Weight: wc.Weight, ClipDuration: clip.Length}
		if c, ok := lib.Curve(wc.Clip, n.DistanceCurve); ok && c.Len() > 0 {
			bs.Curve = &c
			found = true
		}
		samples = append(samples, bs)
	}
	return samples, found
}

func blendName(src Source) string {
	names := make([]string, len(src.Samples))
	for i, wc := range src.Samples {
		names[i] = wc.Clip
	}
	return strings.Join(names, "+")
}
