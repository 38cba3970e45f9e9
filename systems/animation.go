package systems

import (
	"github.com/automoto/stride/components"
	"github.com/automoto/stride/shared/distmatch"
	"github.com/yohamta/donburi"
)

// UpdateAnimations shows the sprite frame matching each node's resolved
// time. Entities without a distance matching node tick their animation.
func UpdateAnimations(w donburi.World) {
	components.Animation.Each(w, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)

		if !e.HasComponent(components.DistanceMatch) {
			if anim.CurrentAnimation != nil {
				anim.CurrentAnimation.Update()
			}
			return
		}

		dm := components.DistanceMatch.Get(e)
		anim.SetAnimation(DisplayClip(dm.Node.Source))
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.SetProgress(dm.Output.Progress())
		}
	})
}

// DisplayClip returns the clip whose frames represent src: the clip itself,
// or the most heavily weighted sample of a blend.
func DisplayClip(src distmatch.Source) string {
	if src.Kind != distmatch.BlendedComposite {
		return src.Clip
	}

	best := ""
	bestWeight := 0.0
	for _, s := range src.Samples {
		if best == "" || s.Weight > bestWeight {
			best = s.Clip
			bestWeight = s.Weight
		}
	}
	return best
}
