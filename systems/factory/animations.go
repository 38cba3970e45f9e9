package factory

import (
	"github.com/automoto/stride/assets/animations"
	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
)

// GenerateAnimations creates an AnimationData component holding the sprite
// animation of every listed clip that has frame definitions in config.
// Clips without definitions are left out and display nothing.
func GenerateAnimations(clips ...string) *components.AnimationData {
	animData := &components.AnimationData{
		Animations: make(map[string]*animations.Animation),
	}

	for _, clip := range clips {
		def, ok := cfg.ClipAnimations[clip]
		if !ok {
			continue
		}
		animData.Animations[clip] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	}

	return animData
}
