package clips

import (
	"fmt"
	"sort"

	"github.com/automoto/stride/shared/animcurve"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultEaseSamples is the key count used when a table omits it.
const DefaultEaseSamples = 9

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
}

// EaseNames lists the easing names accepted by EaseCurve.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Easing returns the tween function registered under name.
func Easing(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}

// EaseCurve builds a distance curve that covers distance over duration
// following the named easing, sampled at evenly spaced keys. Start and stop
// clips use this to author acceleration without hand-placed keys.
func EaseCurve(name string, duration, distance float64, samples int) (animcurve.Curve, error) {
	fn, ok := Easing(name)
	if !ok {
		return animcurve.Curve{}, fmt.Errorf("unknown easing %q", name)
	}
	if duration <= 0 {
		return animcurve.Curve{}, fmt.Errorf("easing %q: duration must be positive, got %v", name, duration)
	}
	if samples < 2 {
		samples = DefaultEaseSamples
	}

	tw := gween.New(0, float32(distance), float32(duration), fn)
	keys := make([]animcurve.Keyframe, samples)
	for i := range keys {
		t := duration * float64(i) / float64(samples-1)
		v, _ := tw.Set(float32(t))
		keys[i] = animcurve.Keyframe{Time: t, Value: float64(v)}
	}
	// Pin the ends so float32 rounding does not shift the curve's range.
	keys[0].Value = 0
	keys[samples-1].Value = distance

	return animcurve.NewCurve(keys...)
}
