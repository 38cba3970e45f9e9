package animations

import "math"

// Animation selects a sprite frame index within [First, Last]. It is driven
// either by ticking (Update) or by a playback position (SetProgress).
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.step()
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
			} else {
				// loop back to the beginning
				a.frame = a.First
			}
		}
	}
}

// FrameCount returns the number of frames between First and Last.
func (a *Animation) FrameCount() int {
	if a.Last < a.First {
		return 1
	}
	return (a.Last-a.First)/a.step() + 1
}

// SetProgress shows the frame at position p of the clip, p in [0,1].
// Moving backwards past the start of the previous frame marks the animation
// as looped, matching the wrap of a looping distance match.
func (a *Animation) SetProgress(p float64) {
	if math.IsNaN(p) {
		return
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	n := a.FrameCount()
	idx := int(p * float64(n))
	if idx >= n {
		idx = n - 1
	}
	frame := a.First + idx*a.step()
	if frame < a.frame {
		a.Looped = true
	}
	a.frame = frame
	a.frameCounter = a.SpeedInTps
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func (a *Animation) step() int {
	if a.Step <= 0 {
		return 1
	}
	return a.Step
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
	}
}
