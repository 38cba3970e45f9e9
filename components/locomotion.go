package components

import "github.com/yohamta/donburi"

type LocomotionData struct {
	Speed        float64 // pixels/second
	TargetSpeed  float64
	Acceleration float64 // pixels/second^2
	Friction     float64 // pixels/second^2
	MaxSpeed     float64

	Traveled float64 // total distance covered
	Step     float64 // distance covered by the last tick
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
