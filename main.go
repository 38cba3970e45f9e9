package main

import (
	"log"

	"github.com/automoto/stride/assets/clips"
	"github.com/automoto/stride/config"
	"github.com/automoto/stride/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() (*Game, error) {
	lib, err := clips.LoadDefault()
	if err != nil {
		return nil, err
	}
	return &Game{scene: scenes.NewViewerScene(lib)}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("stride")
	ebiten.SetTPS(config.C.TickRate)

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to load clips: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
