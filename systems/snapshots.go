package systems

import (
	"sort"

	"github.com/automoto/stride/components"
	"github.com/automoto/stride/shared/distmatch"
	"github.com/yohamta/donburi"
)

// Snapshots returns the last evaluation of every node, ordered by node name.
func Snapshots(w donburi.World) []distmatch.Snapshot {
	var out []distmatch.Snapshot
	components.DistanceMatch.Each(w, func(e *donburi.Entry) {
		out = append(out, components.DistanceMatch.Get(e).Output.Snapshot)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Node < out[j].Node
	})
	return out
}
