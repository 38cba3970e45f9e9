package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SpeedProfileData drives a character's target speed through a sequence of
// tweens.
type SpeedProfileData struct {
	Sequence *gween.Sequence
	Done     bool
}

var SpeedProfile = donburi.NewComponentType[SpeedProfileData]()
