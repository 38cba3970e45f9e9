package systems

import (
	"log"

	"github.com/automoto/stride/components"
	"github.com/automoto/stride/mathutil"
	"github.com/automoto/stride/shared/distmatch"
	"github.com/yohamta/donburi"
)

// UpdateDistanceMatching evaluates every distance matching node for this
// tick. Delta nodes are fed the distance covered this tick, absolute nodes
// the total distance, and nodes without distance matching their explicit
// time.
func UpdateDistanceMatching(w donburi.World, lib distmatch.Library, dt float64) {
	components.DistanceMatch.Each(w, func(e *donburi.Entry) {
		dm := components.DistanceMatch.Get(e)

		in := distmatch.Input{Value: nodeInput(e, dm, dt), DeltaTime: dt}
		dm.State, dm.Output = distmatch.Evaluate(lib, dm.Node, dm.State, in)

		if dm.Node.DistanceMatching && !dm.Output.Matched && !dm.FallbackLogged {
			log.Printf("[distmatch] %s: no %q curve on %s, playing input as explicit time",
				dm.Node.Name, dm.Node.DistanceCurve, dm.Output.Snapshot.Clip)
			dm.FallbackLogged = true
		}
	})
}

func nodeInput(e *donburi.Entry, dm *components.DistanceMatchData, dt float64) float64 {
	if !dm.Node.DistanceMatching {
		if dm.ExplicitClock {
			dm.ExplicitTime += dt
			if length := dm.Output.Length; dm.Node.Loop && length > 0 && dm.ExplicitTime > length {
				dm.ExplicitTime = mathutil.WrapFloat(dm.ExplicitTime, 0, length)
			}
		}
		return dm.ExplicitTime
	}

	if !e.HasComponent(components.Locomotion) {
		return 0
	}
	loco := components.Locomotion.Get(e)
	if dm.Node.DeltaDistance {
		return loco.Step
	}
	return loco.Traveled
}
