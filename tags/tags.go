package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Scripted  = donburi.NewTag().SetName("Scripted")
)
