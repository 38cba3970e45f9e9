package distmatch

import (
	"math"
	"testing"

	"github.com/automoto/stride/shared/animcurve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInverseRoundTrip(t *testing.T) {
	c := *curve(0, 0, 0.25, 10, 0.5, 30, 1, 50)
	for tm := 0.05; tm < 1; tm += 0.05 {
		d, err := c.Evaluate(tm)
		require.NoError(t, err)
		res, err := Resolve(c, Request{Target: d})
		require.NoError(t, err)
		assert.InDelta(t, tm, res.Time, 1e-9, "time %v", tm)
		assert.Equal(t, d, res.Distance)
	}
}

func TestResolveLoopWrapsAboveMax(t *testing.T) {
	c := *curve(0, 0, 1, 100)
	res, err := Resolve(c, Request{Target: 110, Loop: true})
	require.NoError(t, err)
	assert.InDelta(t, 10, res.Distance, 1e-9)
	assert.InDelta(t, 0.1, res.Time, 1e-9)
}

func TestResolveLoopWrapsAboveMaxWithOffsetMin(t *testing.T) {
	c := *curve(0, 5, 1, 105)
	res, err := Resolve(c, Request{Target: 110, Loop: true})
	require.NoError(t, err)
	assert.InDelta(t, 15, res.Distance, 1e-9)
	assert.InDelta(t, 0.1, res.Time, 1e-9)
}

func TestResolveLoopWrapsBelowMin(t *testing.T) {
	c := *curve(0, 5, 1, 105)
	res, err := Resolve(c, Request{Target: 3, Loop: true})
	require.NoError(t, err)
	assert.InDelta(t, 102, res.Distance, 1e-9)
	assert.InDelta(t, 0.97, res.Time, 1e-9)
}

func TestResolveLoopNegativeDistanceClampsToEnd(t *testing.T) {
	c := *curve(0, 0, 1, 100)
	res, err := Resolve(c, Request{Target: -10, Loop: true})
	require.NoError(t, err)
	// fmod keeps the sign of the dividend, so max - (-10) lands past max.
	assert.InDelta(t, 110, res.Distance, 1e-9)
	assert.Equal(t, 1.0, res.Time)
}

func TestResolveLoopAtExactMaxDoesNotWrap(t *testing.T) {
	c := *curve(0, 0, 1, 100)
	res, err := Resolve(c, Request{Target: 100, Loop: true})
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Time)
}

func TestResolveClampsWithoutLoop(t *testing.T) {
	c := *curve(0.2, 5, 1, 100)

	res, err := Resolve(c, Request{Target: 150})
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Time)
	assert.Equal(t, 150.0, res.Distance, "distance stays unclamped")

	res, err = Resolve(c, Request{Target: -3})
	require.NoError(t, err)
	assert.Equal(t, 0.2, res.Time)
}

func TestResolveDeltaDistance(t *testing.T) {
	c := *curve(0, 0, 1, 100)
	res, err := Resolve(c, Request{Target: 20, UseDelta: true, PreviousTime: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 70, res.Distance, 1e-9)
	assert.InDelta(t, 0.7, res.Time, 1e-9)

	res, err = Resolve(c, Request{Target: -20, UseDelta: true, PreviousTime: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, res.Time, 1e-9)
}

func TestResolveDeltaDistanceLoops(t *testing.T) {
	c := *curve(0, 0, 1, 100)
	res, err := Resolve(c, Request{Target: 30, UseDelta: true, PreviousTime: 0.9, Loop: true})
	require.NoError(t, err)
	assert.InDelta(t, 20, res.Distance, 1e-9)
	assert.InDelta(t, 0.2, res.Time, 1e-9)
}

func TestResolveDegenerateCurves(t *testing.T) {
	cases := map[string]animcurve.Curve{
		"flat":     *curve(0, 5, 1, 5),
		"single":   *curve(0, 5),
		"inverted": *curve(0, 10, 1, 0),
	}
	for name, c := range cases {
		for _, loop := range []bool{false, true} {
			for _, target := range []float64{-50, 0, 5, 7, 1e6} {
				res, err := Resolve(c, Request{Target: target, Loop: loop})
				require.NoError(t, err, name)
				assert.Equal(t, c.First().Time, res.Time, "%s loop=%v target=%v", name, loop, target)
				assert.False(t, math.IsNaN(res.Time) || math.IsInf(res.Time, 0), name)
			}
		}
	}
}

func TestResolveFlatSegmentAvoidsDivideByZero(t *testing.T) {
	c := *curve(0, 0, 0.5, 10, 0.6, 10, 1, 20)
	res, err := Resolve(c, Request{Target: 10})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, res.Time, 1e-9)
}

func TestResolveNonMonotonicCurve(t *testing.T) {
	c := *curve(0, 0, 0.5, 80, 1, 50)
	res, err := Resolve(c, Request{Target: 40})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, res.Time, 1e-9)

	res, err = Resolve(c, Request{Target: 60})
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Time)
}

func TestResolveNonFiniteTarget(t *testing.T) {
	c := *curve(0, 0, 1, 100)
	for _, target := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		res, err := Resolve(c, Request{Target: target, Loop: true})
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Time)
	}
}

func TestResolveEmptyCurve(t *testing.T) {
	_, err := Resolve(animcurve.Curve{}, Request{Target: 1})
	assert.ErrorIs(t, err, animcurve.ErrEmptyCurve)
}
