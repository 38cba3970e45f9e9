// Package clips holds the clip table: clip lengths, rate scales, skeletons
// and the named float curves (such as the distance curve) authored on them.
package clips

import (
	"fmt"
	"sort"

	"github.com/automoto/stride/shared/animcurve"
	"github.com/automoto/stride/shared/distmatch"
)

type entry struct {
	clip   distmatch.Clip
	curves map[string]animcurve.Curve
}

// Library is an in-memory clip table. It satisfies distmatch.Library and is
// read-only once populated.
type Library struct {
	clips map[string]entry
}

var _ distmatch.Library = (*Library)(nil)

func NewLibrary() *Library {
	return &Library{clips: make(map[string]entry)}
}

// Add registers a clip and its curves, replacing any clip with the same
// name. A zero RateScale defaults to 1.
func (l *Library) Add(c distmatch.Clip, curves map[string]animcurve.Curve) error {
	if c.Name == "" {
		return fmt.Errorf("clip has no name")
	}
	if c.Length <= 0 {
		return fmt.Errorf("clip %q: length must be positive, got %v", c.Name, c.Length)
	}
	if c.RateScale == 0 {
		c.RateScale = 1
	}

	e := entry{clip: c, curves: make(map[string]animcurve.Curve, len(curves))}
	for name, curve := range curves {
		if curve.Len() == 0 {
			return fmt.Errorf("clip %q curve %q: %w", c.Name, name, animcurve.ErrEmptyCurve)
		}
		e.curves[name] = curve
	}
	l.clips[c.Name] = e
	return nil
}

func (l *Library) Clip(name string) (distmatch.Clip, bool) {
	e, ok := l.clips[name]
	return e.clip, ok
}

func (l *Library) Curve(clip, curve string) (animcurve.Curve, bool) {
	e, ok := l.clips[clip]
	if !ok {
		return animcurve.Curve{}, false
	}
	c, ok := e.curves[curve]
	return c, ok
}

// Names returns the clip names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.clips))
	for n := range l.clips {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (l *Library) Len() int { return len(l.clips) }
