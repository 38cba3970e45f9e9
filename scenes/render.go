package scenes

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/automoto/stride/systems"
	"github.com/automoto/stride/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	trackColor    = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	progressColor = color.RGBA{R: 90, G: 200, B: 120, A: 255}
	fallbackColor = color.RGBA{R: 220, G: 170, B: 60, A: 255}
	frameColor    = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	currentColor  = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

const (
	rowHeight  = 56
	rowTop     = 24
	leftMargin = 8
	barWidth   = 200
	cellSize   = 10
)

// characters returns the character entries ordered by node name so rows
// keep their place between frames.
func characters(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Character.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.DistanceMatch.Get(out[i]).Node.Name < components.DistanceMatch.Get(out[j]).Node.Name
	})
	return out
}

// DrawCharacters draws one row per character: a marker moving with the
// traveled distance, the playback progress bar and the sprite frame strip.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())

	for i, e := range characters(ecs.World) {
		y := float32(rowTop + i*rowHeight)
		dm := components.DistanceMatch.Get(e)
		loco := components.Locomotion.Get(e)
		anim := components.Animation.Get(e)

		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %.0f px/s", dm.Node.Name, loco.Speed), leftMargin, int(y))

		// Ground marker wraps around the screen.
		x := float32(math.Mod(loco.Traveled, width))
		vector.FillRect(screen, x, y+4, 4, 8, currentColor, false)

		barColor := progressColor
		if !dm.Output.Matched {
			barColor = fallbackColor
		}
		vector.FillRect(screen, leftMargin, y+18, barWidth, 6, trackColor, false)
		vector.FillRect(screen, leftMargin, y+18, float32(barWidth*dm.Output.Progress()), 6, barColor, false)

		if anim.CurrentAnimation == nil {
			continue
		}
		current := anim.CurrentAnimation
		for f := 0; f < current.FrameCount(); f++ {
			c := color.Color(frameColor)
			if current.First+f*max(current.Step, 1) == current.Frame() {
				c = currentColor
			}
			vector.FillRect(screen, float32(leftMargin+barWidth+12+f*(cellSize+2)), y+16, cellSize, cellSize, c, false)
		}
		ebitenutil.DebugPrintAt(screen, systems.DisplayClip(dm.Node.Source),
			leftMargin+barWidth+12+current.FrameCount()*(cellSize+2)+6, int(y)+12)
	}
}

// DrawSnapshots prints every node's last evaluation.
func DrawSnapshots(ecs *ecs.ECS, screen *ebiten.Image) {
	snaps := systems.Snapshots(ecs.World)
	y := cfg.C.Height - 16*len(snaps) - 4
	for _, s := range snaps {
		ebitenutil.DebugPrintAt(screen, s.String(), leftMargin, y)
		y += 16
	}
}
