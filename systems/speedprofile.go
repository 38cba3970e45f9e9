package systems

import (
	"github.com/automoto/stride/components"
	"github.com/yohamta/donburi"
)

// UpdateSpeedProfiles plays each profile's tween sequence and feeds its value
// to the entity's target speed.
func UpdateSpeedProfiles(w donburi.World, dt float64) {
	components.SpeedProfile.Each(w, func(e *donburi.Entry) {
		profile := components.SpeedProfile.Get(e)
		if profile.Done || profile.Sequence == nil || !profile.Sequence.HasTweens() {
			return
		}

		speed, _, finished := profile.Sequence.Update(float32(dt))
		if e.HasComponent(components.Locomotion) {
			components.Locomotion.Get(e).TargetSpeed = float64(speed)
		}
		profile.Done = finished
	})
}
