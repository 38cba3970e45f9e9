package archetypes

import (
	"github.com/automoto/stride/components"
	"github.com/automoto/stride/tags"
	"github.com/yohamta/donburi"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Locomotion,
		components.DistanceMatch,
		components.Animation,
	)
	ScriptedCharacter = newArchetype(
		tags.Character,
		tags.Scripted,
		components.Locomotion,
		components.SpeedProfile,
		components.DistanceMatch,
		components.Animation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
