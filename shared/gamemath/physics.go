package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Approach moves speed toward target, accelerating by accel when below it
// and braking by friction when above it, without overshooting.
func Approach(speed, target, accel, friction float64) float64 {
	switch {
	case speed < target:
		speed += accel
		if speed > target {
			return target
		}
		return speed
	case speed > target:
		// Friction works on the excess only.
		return target + ApplyFriction(speed-target, friction)
	default:
		return speed
	}
}
