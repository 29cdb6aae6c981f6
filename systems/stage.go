package systems

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/automoto/vellum/archetypes"
	"github.com/automoto/vellum/assets"
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/fonts"
	"github.com/automoto/vellum/script"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// LoadScene reads and parses a scene from the game directory or the
// built-in scenes.
func LoadScene(name string) (*script.Scene, error) {
	src, url, err := assets.ReadScene(cfg.Debug.GameDir, name)
	if err != nil {
		return nil, err
	}
	scene, err := script.Parse(name, url, src)
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return scene, nil
}

// GetOrCreateStage returns the singleton stage state
func GetOrCreateStage(e *ecs.ECS) *components.StageData {
	entry, ok := components.Stage.First(e.World)
	if !ok {
		entry = archetypes.Stage.Spawn(e)
	}
	return components.Stage.Get(entry)
}

// StartStage begins playback of scene at sentenceID
func StartStage(e *ecs.ECS, scene *script.Scene, sentenceID int) {
	st := GetOrCreateStage(e)
	auto := st.AutoMode
	*st = components.StageData{Scene: scene, SentenceID: sentenceID, AutoMode: auto}
	showSentence(e, st)
}

// RestoreStage loads the scene named by a save and resumes at its sentence
func RestoreStage(e *ecs.ECS, save *components.SaveData) error {
	scene, err := LoadScene(save.SceneName)
	if err != nil {
		return err
	}
	if save.SceneURL != "" && save.SceneURL != scene.URL {
		cfg.Log.WithFields(logrus.Fields{"saved": save.SceneURL, "found": scene.URL}).Warn("Scene moved since the save was made")
	}
	StartStage(e, scene, save.SentenceID)
	return nil
}

// showSentence runs statements from st.SentenceID until one is displayed or
// the script ends. Every displayed line is recorded as read. Entering the
// same scene twice without a displayed line in between ends the script.
func showSentence(e *ecs.ECS, st *components.StageData) {
	var entered map[string]bool
	for {
		if st.Scene == nil || st.SentenceID < 0 || st.SentenceID >= len(st.Scene.Sentences) {
			st.Ended = true
			return
		}
		s := st.Scene.Sentences[st.SentenceID]

		switch s.Kind {
		case script.Say:
			st.ShowName = s.Speaker
			st.ShowText = s.Text
			st.Revealed = 0
			st.AutoTimer = 0
			st.IsRead = ReadText.IsRead(st.Scene.Name, st.Scene.URL, st.SentenceID, s.Text)
			ReadText.RecordIfNew(st.Scene.Name, st.Scene.URL, st.SentenceID, s.Text)
			PlayVoice(e, s.Vocal)
			if data := CurrentSaveData(e, 0); data != nil {
				_ = SaveGameProgress(data)
			}
			return

		case script.ChangeScene:
			next, err := LoadScene(s.Text)
			if err != nil {
				cfg.Log.WithFields(logrus.Fields{"scene": s.Text, "err": err}).Error("Could not change scene")
				st.Ended = true
				return
			}
			if entered[next.URL] {
				cfg.Log.WithFields(logrus.Fields{"scene": s.Text, "url": next.URL}).Error("Scene change loops without a line to show")
				st.Ended = true
				return
			}
			if entered == nil {
				entered = map[string]bool{}
			}
			entered[next.URL] = true
			st.Scene = next
			st.SentenceID = 0

		case script.UnlockBgm:
			UnlockBgm(s.Text)
			st.SentenceID++

		case script.UnlockCG:
			UnlockCG(s.Text)
			st.SentenceID++

		case script.End:
			st.Ended = true
			return
		}
	}
}

func fullyRevealed(st *components.StageData) bool {
	return st.Revealed >= float64(utf8.RuneCountInString(st.ShowText))
}

// advanceStage completes the typewriter, or moves on to the next statement
func advanceStage(e *ecs.ECS, st *components.StageData) {
	if !fullyRevealed(st) {
		st.Revealed = float64(utf8.RuneCountInString(st.ShowText))
		return
	}
	st.SentenceID++
	showSentence(e, st)
}

// NewUpdateStage creates the stage system. onEnd is called when the player
// clicks past the end of the script.
func NewUpdateStage(onEnd func()) ecs.System {
	return func(e *ecs.ECS) {
		gui := GetOrCreateGUI(e)
		if gui.ShowTitle || gui.ShowMenuPanel {
			return
		}
		st := GetOrCreateStage(e)
		input := getOrCreateInput(e)
		p := &input.Pointer

		if p.SecondaryPressed || GetAction(input, cfg.ActionOpenMenu).JustPressed {
			PlaySFX(e, cfg.SoundClick)
			OpenMenuPanel(e, components.MenuPanelSave)
			return
		}

		clicked := p.JustPressed && !p.Consumed
		if clicked {
			p.Consumed = true
		}
		advance := clicked || GetAction(input, cfg.ActionAdvance).JustPressed

		if st.Ended {
			if advance && onEnd != nil {
				onEnd()
			}
			return
		}

		dt := 1.0 / float64(ebiten.TPS())
		st.Revealed += UserOptions.TextSpeed * dt

		if GetAction(input, cfg.ActionAuto).JustPressed {
			st.AutoMode = !st.AutoMode
			st.AutoTimer = 0
		}

		// Skipping only ever passes lines the player has already read
		if GetAction(input, cfg.ActionSkip).Pressed && st.IsRead {
			if st.SkipTimer > 0 {
				st.SkipTimer--
				return
			}
			st.SkipTimer = cfg.Stage.SkipIntervalMs * ebiten.TPS() / 1000
			st.Revealed = float64(utf8.RuneCountInString(st.ShowText))
			advanceStage(e, st)
			return
		}
		st.SkipTimer = 0

		if advance {
			st.AutoMode = false
			advanceStage(e, st)
			return
		}

		if st.AutoMode && fullyRevealed(st) {
			st.AutoTimer += dt
			if st.AutoTimer >= UserOptions.AutoDelay {
				advanceStage(e, st)
			}
		}
	}
}

// wrapRunes breaks s into lines of at most limit runes, preferring spaces
func wrapRunes(s string, limit int) []string {
	if limit < 1 {
		limit = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		runes := []rune(para)
		for len(runes) > limit {
			cut := limit
			for i := limit; i > limit/2; i-- {
				if runes[i] == ' ' {
					cut = i
					break
				}
			}
			lines = append(lines, strings.TrimRight(string(runes[:cut]), " "))
			runes = []rune(strings.TrimLeft(string(runes[cut:]), " "))
		}
		lines = append(lines, string(runes))
	}
	return lines
}

// visibleText returns the typewriter-revealed prefix of the current line
func visibleText(st *components.StageData) string {
	n := int(st.Revealed)
	runes := []rune(st.ShowText)
	if n >= len(runes) {
		return st.ShowText
	}
	if n < 0 {
		n = 0
	}
	return string(runes[:n])
}

// DrawStage renders the current line in the text box
func DrawStage(e *ecs.ECS, screen *ebiten.Image) {
	st := GetOrCreateStage(e)
	sc := cfg.Stage

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	fillRect(screen, rect{W: width, H: height}, sc.BackgroundColor)

	box := rect{
		X: sc.TextBoxMargin,
		Y: height - sc.TextBoxHeight - sc.TextBoxMargin,
		W: width - 2*sc.TextBoxMargin,
		H: sc.TextBoxHeight,
	}
	fillRect(screen, box, sc.TextBoxColor)

	if st.ShowName != "" {
		drawText(screen, st.ShowName, fonts.Bold, box.X+24, box.Y+36, sc.SpeakerColor)
	}

	textColor := sc.TextColor
	if st.IsRead {
		textColor = sc.ReadTextColor
	}
	lineHeight := sc.LineHeight * UserOptions.TextSize / 100
	maxRunes := int(float64(sc.MaxLineRunes) * 100 / UserOptions.TextSize)
	for i, line := range wrapRunes(visibleText(st), maxRunes) {
		drawText(screen, line, fonts.Stage, box.X+24, box.Y+76+float64(i)*lineHeight, textColor)
	}

	var status []string
	if st.AutoMode {
		status = append(status, "AUTO")
	}
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionSkip).Pressed {
		status = append(status, "SKIP")
	}
	if st.Ended {
		status = append(status, "- End -")
	}
	if len(status) > 0 {
		label := strings.Join(status, "  ")
		drawText(screen, label, fonts.Small, box.X+box.W-24-float64(fonts.Small.Width(label)), box.Y+box.H-16, sc.SpeakerColor)
	}
}
