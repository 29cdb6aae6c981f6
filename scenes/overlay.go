package scenes

import (
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/systems"
	"github.com/automoto/vellum/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// sceneHooks are the transitions the shared overlay can trigger
type sceneHooks struct {
	onLoad  func(*components.SaveData)
	onTitle func()
}

// newSceneECS builds a world running the scene's own system and renderer
// under the shared overlay: the global dialog runs first so it can swallow
// input, the menu panel pages run before the panel bar swallows the rest,
// and the scene only sees what is left.
func newSceneECS(hooks sceneHooks, update ecs.System, draw func(*ecs.ECS, *ebiten.Image)) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	dialog := ui.NewDialogUI(
		func() { systems.AnswerDialog(e, true) },
		func() { systems.AnswerDialog(e, false) },
	)

	// Audio system (runs first to initialize audio context)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdateDialog(dialog))
	e.AddSystem(systems.UpdateOptions)
	e.AddSystem(systems.NewUpdateSaveLoad(hooks.onLoad))
	e.AddSystem(systems.NewUpdateMenuPanel(hooks.onTitle))
	e.AddSystem(update)

	// Renderers (panel and dialog draw on top of the scene)
	e.AddRenderer(cfg.Default, draw)
	e.AddRenderer(cfg.Default, systems.DrawMenuPanel)
	e.AddRenderer(cfg.Default, systems.NewDrawDialog(dialog))

	systems.ApplyUserOptions(e)
	return e
}
