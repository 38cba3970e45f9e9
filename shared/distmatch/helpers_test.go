package distmatch

import "github.com/automoto/stride/shared/animcurve"

type fakeLibrary struct {
	clips  map[string]Clip
	curves map[string]map[string]animcurve.Curve
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{
		clips:  make(map[string]Clip),
		curves: make(map[string]map[string]animcurve.Curve),
	}
}

func (l *fakeLibrary) add(c Clip, curve *animcurve.Curve) *fakeLibrary {
	if c.RateScale == 0 {
		c.RateScale = 1
	}
	l.clips[c.Name] = c
	if curve != nil {
		l.curves[c.Name] = map[string]animcurve.Curve{"Distance": *curve}
	}
	return l
}

func (l *fakeLibrary) Clip(name string) (Clip, bool) {
	c, ok := l.clips[name]
	return c, ok
}

func (l *fakeLibrary) Curve(clip, curve string) (animcurve.Curve, bool) {
	c, ok := l.curves[clip][curve]
	return c, ok
}

func keys(pairs ...float64) []animcurve.Keyframe {
	out := make([]animcurve.Keyframe, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, animcurve.Keyframe{Time: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func curve(pairs ...float64) *animcurve.Curve {
	c := animcurve.MustCurve(keys(pairs...)...)
	return &c
}
