package main

import (
	"flag"
	"image"

	"github.com/automoto/vellum/config"
	"github.com/automoto/vellum/fonts"
	"github.com/automoto/vellum/scenes"
	"github.com/automoto/vellum/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// appName names the gdata save directory
const appName = "vellum"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipTitle {
		g.scene = scenes.NewStageScene(g, nil)
	} else {
		g.scene = scenes.NewTitleScene(g, false)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipTitle, "skiptitle", config.Debug.SkipTitle, "Start the entry scene without the title screen")
	flag.StringVar(&config.Debug.LogLevel, "loglevel", config.Debug.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&config.Debug.GameDir, "gamedir", config.Debug.GameDir, "Directory holding config.yaml and scene scripts")
	flag.Parse()

	config.InitLogger(config.Debug.LogLevel)

	game, err := config.LoadGameConfig(config.Debug.GameDir)
	if err != nil {
		config.Log.WithFields(logrus.Fields{"dir": config.Debug.GameDir, "err": err}).Warn("Could not load game config, using defaults")
	}
	config.ApplyGameConfig(game)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(appName); err != nil {
		config.Log.WithError(err).Warn("Could not initialize persistence, progress will not be kept")
	}
	systems.LoadUserData()
	systems.PreloadAllSFX()

	if err := ebiten.RunGame(NewGame()); err != nil {
		config.Log.WithError(err).Fatal("Game exited with an error")
	}
}
