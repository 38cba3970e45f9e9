package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/automoto/stride/shared/distmatch"
	"github.com/automoto/stride/sim"
	"github.com/automoto/stride/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	LayerCharacters ecs.LayerID = iota
	LayerDebug
)

// ViewerScene plays the demo characters and draws their distance matched
// playback. R restarts the simulation, Space re-triggers every node.
type ViewerScene struct {
	ecs  *ecs.ECS
	sim  *sim.Simulation
	lib  distmatch.Library
	once sync.Once
}

func NewViewerScene(lib distmatch.Library) *ViewerScene {
	return &ViewerScene{lib: lib}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		vs.configure()
	}
	if vs.ecs == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		tags.Character.Each(vs.ecs.World, func(e *donburi.Entry) {
			components.DistanceMatch.Get(e).Activate()
		})
	}

	vs.ecs.Update()
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

func (vs *ViewerScene) configure() {
	s := sim.Restart(vs.sim, vs.lib, cfg.C.TickRate)
	if s == nil || s == vs.sim {
		return
	}
	vs.sim = s

	e := ecs.NewECS(s.World())
	e.AddSystem(func(*ecs.ECS) { vs.sim.Step() })

	e.AddRenderer(LayerCharacters, DrawCharacters)
	if cfg.Debug.Overlay {
		e.AddRenderer(LayerDebug, DrawSnapshots)
	}

	vs.ecs = e
}
