package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// ClipAnimations maps a clip name to the sprite frames that display it.
// Frame selection follows the clip's playback position, so Speed only
// matters for clips that are ticked rather than matched.
var ClipAnimations = map[string]AnimationDef{
	"idle":      {First: 0, Last: 6, Step: 1, Speed: 5},
	"walk":      {First: 0, Last: 7, Step: 1, Speed: 5},
	"run":       {First: 0, Last: 7, Step: 1, Speed: 5},
	"run_start": {First: 0, Last: 3, Step: 1, Speed: 4},
	"run_stop":  {First: 0, Last: 5, Step: 1, Speed: 4},
}
