package components

import (
	"github.com/automoto/stride/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentClip      string
	Animations       map[string]*animations.Animation
}

func (a *AnimationData) SetAnimation(clip string) {
	if a.CurrentClip == clip && (a.CurrentAnimation != nil || a.Animations[clip] == nil) {
		return
	}

	anim, ok := a.Animations[clip]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentClip = clip
			a.CurrentAnimation.Restart()
		}
	} else {
		// No sprite frames for this clip, clear current
		a.CurrentAnimation = nil
		a.CurrentClip = clip
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
