package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/vellum/components"
	"github.com/automoto/vellum/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene displays the title screen
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	entered      bool
	once         sync.Once
}

// NewTitleScene creates a new title scene. entered skips the "click to
// enter" gate, used when returning from a game.
func NewTitleScene(sc SceneChanger, entered bool) *TitleScene {
	return &TitleScene{sceneChanger: sc, entered: entered}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TitleScene) configure() {
	startGame := func(save *components.SaveData) {
		ts.sceneChanger.ChangeScene(NewStageScene(ts.sceneChanger, save))
	}

	hooks := sceneHooks{
		onLoad: startGame,
		// Already on the title; the panel hides itself
		onTitle: nil,
	}
	update := systems.NewUpdateTitle(
		func() { startGame(nil) },
		func() { startGame(systems.LoadGameProgress()) },
	)
	ts.ecs = newSceneECS(hooks, update, systems.DrawTitle)

	gui := systems.GetOrCreateGUI(ts.ecs)
	gui.ShowTitle = true
	if ts.entered {
		gui.IsEnterGame = true
		systems.PlayMusic(ts.ecs, gui.TitleBgm)
	}
}
