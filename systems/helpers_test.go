package systems

import (
	"testing"

	"github.com/automoto/stride/assets/clips"
	"github.com/automoto/stride/shared/animcurve"
	"github.com/automoto/stride/shared/distmatch"
	"github.com/stretchr/testify/require"
)

func testLibrary(t *testing.T) *clips.Library {
	t.Helper()

	lib := clips.NewLibrary()
	add := func(c distmatch.Clip, keys ...animcurve.Keyframe) {
		curves := map[string]animcurve.Curve{}
		if len(keys) > 0 {
			curves["Distance"] = animcurve.MustCurve(keys...)
		}
		require.NoError(t, lib.Add(c, curves))
	}

	add(distmatch.Clip{Name: "walk", Length: 1, Skeleton: "hero"},
		animcurve.Keyframe{Time: 0, Value: 0}, animcurve.Keyframe{Time: 1, Value: 100})
	add(distmatch.Clip{Name: "run", Length: 0.5, Skeleton: "hero"},
		animcurve.Keyframe{Time: 0, Value: 0}, animcurve.Keyframe{Time: 0.5, Value: 200})
	add(distmatch.Clip{Name: "idle", Length: 1.4, Skeleton: "hero"})
	return lib
}
