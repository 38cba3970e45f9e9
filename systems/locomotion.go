package systems

import (
	"math"

	"github.com/automoto/stride/components"
	"github.com/automoto/stride/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateLocomotion moves speed toward the target speed and accumulates the
// distance covered this tick.
func UpdateLocomotion(w donburi.World, dt float64) {
	components.Locomotion.Each(w, func(e *donburi.Entry) {
		loco := components.Locomotion.Get(e)

		loco.Speed = gamemath.Approach(loco.Speed, loco.TargetSpeed, loco.Acceleration*dt, loco.Friction*dt)
		if loco.MaxSpeed > 0 {
			loco.Speed = gamemath.ClampSpeed(loco.Speed, loco.MaxSpeed)
		}

		loco.Step = math.Abs(loco.Speed) * dt
		loco.Traveled += loco.Step
	})
}
