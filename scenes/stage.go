package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// StageScene plays scene scripts
type StageScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	save         *components.SaveData
	once         sync.Once
}

// NewStageScene creates a stage scene resuming save, or starting the entry
// scene when save is nil.
func NewStageScene(sc SceneChanger, save *components.SaveData) *StageScene {
	return &StageScene{sceneChanger: sc, save: save}
}

func (ss *StageScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *StageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *StageScene) backToTitle() {
	systems.StopVoice(ss.ecs)
	ss.sceneChanger.ChangeScene(NewTitleScene(ss.sceneChanger, true))
}

func (ss *StageScene) configure() {
	hooks := sceneHooks{
		onLoad:  ss.load,
		onTitle: ss.backToTitle,
	}
	ss.ecs = newSceneECS(hooks, systems.NewUpdateStage(ss.backToTitle), systems.DrawStage)

	gui := systems.GetOrCreateGUI(ss.ecs)
	gui.ShowTitle = false
	gui.IsEnterGame = true

	systems.FadeOutMusic(ss.ecs)
	ss.load(ss.save)
}

// load starts the entry scene or restores a save in place
func (ss *StageScene) load(save *components.SaveData) {
	if save != nil {
		if err := systems.RestoreStage(ss.ecs, save); err != nil {
			cfg.Log.WithFields(logrus.Fields{"scene": save.SceneName, "err": err}).Error("Could not restore save")
			systems.StartStage(ss.ecs, nil, 0)
		}
		return
	}

	scene, err := systems.LoadScene(cfg.Game.EntryScene)
	if err != nil {
		cfg.Log.WithFields(logrus.Fields{"scene": cfg.Game.EntryScene, "err": err}).Error("Could not load entry scene")
	}
	systems.StartStage(ss.ecs, scene, 0)
}
