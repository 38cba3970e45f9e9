package systems

import (
	"testing"

	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/automoto/stride/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestUpdateLocomotion(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(components.Locomotion))
	components.Locomotion.SetValue(e, components.LocomotionData{
		TargetSpeed:  100,
		Acceleration: 1000,
		Friction:     500,
	})

	UpdateLocomotion(w, 0.1)
	loco := components.Locomotion.Get(e)
	assert.Equal(t, 100.0, loco.Speed)
	assert.InDelta(t, 10, loco.Step, 1e-9)
	assert.InDelta(t, 10, loco.Traveled, 1e-9)

	loco.TargetSpeed = 0
	UpdateLocomotion(w, 0.1)
	assert.InDelta(t, 50, loco.Speed, 1e-9)
	assert.InDelta(t, 5, loco.Step, 1e-9)
	assert.InDelta(t, 15, loco.Traveled, 1e-9)
}

func TestUpdateLocomotionMaxSpeed(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(components.Locomotion))
	components.Locomotion.SetValue(e, components.LocomotionData{
		TargetSpeed:  500,
		Acceleration: 10000,
		MaxSpeed:     200,
	})

	UpdateLocomotion(w, 0.1)
	assert.Equal(t, 200.0, components.Locomotion.Get(e).Speed)
}

func TestUpdateSpeedProfiles(t *testing.T) {
	seq, err := factory.BuildSpeedProfile([]cfg.SpeedSegment{
		{Speed: 100, Duration: 1, Ease: "linear"},
		{Speed: 0, Duration: 1, Ease: "linear"},
	}, false)
	require.NoError(t, err)

	w := donburi.NewWorld()
	e := w.Entry(w.Create(components.Locomotion, components.SpeedProfile))
	components.SpeedProfile.SetValue(e, components.SpeedProfileData{Sequence: seq})
	loco := components.Locomotion.Get(e)
	profile := components.SpeedProfile.Get(e)

	UpdateSpeedProfiles(w, 0.5)
	assert.InDelta(t, 50, loco.TargetSpeed, 1e-4)

	UpdateSpeedProfiles(w, 0.5)
	assert.InDelta(t, 100, loco.TargetSpeed, 1e-4)
	assert.False(t, profile.Done)

	UpdateSpeedProfiles(w, 0.5)
	assert.InDelta(t, 50, loco.TargetSpeed, 1e-4)

	UpdateSpeedProfiles(w, 0.5)
	assert.InDelta(t, 0, loco.TargetSpeed, 1e-4)

	UpdateSpeedProfiles(w, 0.5)
	assert.True(t, profile.Done)
	assert.InDelta(t, 0, loco.TargetSpeed, 1e-4)

	loco.TargetSpeed = 42
	UpdateSpeedProfiles(w, 0.5)
	assert.Equal(t, 42.0, loco.TargetSpeed, "finished profile leaves the target alone")
}

func TestUpdateSpeedProfilesLoop(t *testing.T) {
	seq, err := factory.BuildSpeedProfile([]cfg.SpeedSegment{
		{Speed: 100, Duration: 1, Ease: "linear"},
	}, true)
	require.NoError(t, err)

	w := donburi.NewWorld()
	e := w.Entry(w.Create(components.Locomotion, components.SpeedProfile))
	components.SpeedProfile.SetValue(e, components.SpeedProfileData{Sequence: seq})

	UpdateSpeedProfiles(w, 1)
	UpdateSpeedProfiles(w, 0.25)
	assert.False(t, components.SpeedProfile.Get(e).Done)
	assert.InDelta(t, 25, components.Locomotion.Get(e).TargetSpeed, 1e-4)

	for i := 0; i < 20; i++ {
		UpdateSpeedProfiles(w, 0.5)
	}
	assert.False(t, components.SpeedProfile.Get(e).Done, "looping profile never finishes")
}

func TestUpdateSpeedProfilesEmpty(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(components.Locomotion, components.SpeedProfile))
	components.Locomotion.Get(e).TargetSpeed = 7

	UpdateSpeedProfiles(w, 0.5)
	assert.Equal(t, 7.0, components.Locomotion.Get(e).TargetSpeed)
}
