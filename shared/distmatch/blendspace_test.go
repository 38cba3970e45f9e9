package distmatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strideLibrary() *fakeLibrary {
	return newFakeLibrary().
		add(Clip{Name: "walk", Length: 1}, curve(0, 0, 1, 100)).
		add(Clip{Name: "run", Length: 0.5}, curve(0, 0, 0.5, 100)).
		add(Clip{Name: "idle", Length: 2}, nil)
}

func blendNode(samples ...WeightedClip) Node {
	return Node{
		Name:             "locomotion",
		Source:           Source{Kind: BlendedComposite, Samples: samples},
		DistanceMatching: true,
		DistanceCurve:    "Distance",
	}
}

func TestBlendSpaceMatchesBlendedCurve(t *testing.T) {
	n := blendNode(WeightedClip{"walk", 0.5}, WeightedClip{"run", 0.5})
	s, out := Evaluate(strideLibrary(), n, NewMatchState(), Input{Value: 50, DeltaTime: frameDT})
	assert.True(t, out.Matched)
	assert.True(t, out.Normalized)
	assert.Equal(t, 1.0, out.Length)
	assert.InDelta(t, 0.5, out.Time, 1e-9)
	assert.InDelta(t, 0.5, s.CurrentTime, 1e-9)
	assert.Equal(t, "walk+run", out.Snapshot.Clip)
}

func TestBlendSpaceMissingCurveContributesNothing(t *testing.T) {
	n := blendNode(WeightedClip{"walk", 0.5}, WeightedClip{"idle", 0.5}, WeightedClip{"ghost", 1})
	_, out := Evaluate(strideLibrary(), n, NewMatchState(), Input{Value: 25, DeltaTime: frameDT})
	assert.True(t, out.Matched)
	assert.InDelta(t, 0.5, out.Time, 1e-9)
}

func TestBlendSpaceWithoutCurvesIsSafe(t *testing.T) {
	n := blendNode(WeightedClip{"idle", 1})
	n.Loop = true
	_, out := Evaluate(strideLibrary(), n, NewMatchState(), Input{Value: 25, DeltaTime: frameDT})
	assert.False(t, out.Matched)
	assert.Equal(t, 0.0, out.Time)
	assert.False(t, math.IsNaN(out.Time))
}

func TestBlendSpaceLoops(t *testing.T) {
	n := blendNode(WeightedClip{"walk", 1})
	n.Loop = true
	_, out := Evaluate(strideLibrary(), n, NewMatchState(), Input{Value: 110, DeltaTime: frameDT})
	assert.InDelta(t, 0.1, out.Time, 1e-9)
}

func TestBlendSpaceDeltaDistance(t *testing.T) {
	n := blendNode(WeightedClip{"walk", 1})
	n.DeltaDistance = true
	n.Loop = true
	lib := strideLibrary()

	s, out := Evaluate(lib, n, NewMatchState(), Input{Value: 40, DeltaTime: frameDT})
	assert.InDelta(t, 0.4, out.Time, 1e-9)
	s, out = Evaluate(lib, n, s, Input{Value: 40, DeltaTime: frameDT})
	assert.InDelta(t, 0.8, out.Time, 1e-9)
	_, out = Evaluate(lib, n, s, Input{Value: 40, DeltaTime: frameDT})
	assert.InDelta(t, 0.2, out.Time, 1e-9)
}

func TestBlendSpaceWithoutMatchingClampsNormalizedTime(t *testing.T) {
	n := blendNode(WeightedClip{"walk", 1})
	n.DistanceMatching = false
	_, out := Evaluate(strideLibrary(), n, NewMatchState(), Input{Value: 1.7})
	assert.Equal(t, 1.0, out.Time)
	assert.Nil(t, out.Tick)
	_, out = Evaluate(strideLibrary(), n, NewMatchState(), Input{Value: 0.25})
	assert.Equal(t, 0.25, out.Time)
}
