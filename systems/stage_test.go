package systems

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/yohamta/donburi/ecs"
)

const stageScript = `
Mira:You came after all;
:Rain ran down the windows;
unlockCg:cg/station.png;
Mira:One more stop;
end;
`

func newStageTest(t *testing.T) *ecs.ECS {
	t.Helper()
	e := newTestECS(t)
	GetOrCreateGUI(e).ShowTitle = false
	return e
}

// advance presses the advance action for one frame
func advance(e *ecs.ECS, update ecs.System) {
	nextFrame(e)
	pressAction(e, cfg.ActionAdvance)
	update(e)
}

func TestStageRecordsReadText(t *testing.T) {
	e := newStageTest(t)
	scene := mustParse(t, stageScript)

	StartStage(e, scene, 0)
	st := GetOrCreateStage(e)
	if st.IsRead {
		t.Error("first sighting reported as read")
	}
	if !ReadText.IsRead(scene.Name, scene.URL, 0, "You came after all") {
		t.Fatal("shown line not recorded")
	}

	StartStage(e, scene, 0)
	if !GetOrCreateStage(e).IsRead {
		t.Error("second sighting not reported as read")
	}
	if n := len(ReadText.All()); n != 1 {
		t.Errorf("records = %d, want 1", n)
	}
}

func TestStageAdvanceRevealsThenSteps(t *testing.T) {
	e := newStageTest(t)
	StartStage(e, mustParse(t, stageScript), 0)
	update := NewUpdateStage(nil)
	st := GetOrCreateStage(e)

	advance(e, update)
	if st.SentenceID != 0 || !fullyRevealed(st) {
		t.Fatalf("first press: sentence %d revealed %v", st.SentenceID, fullyRevealed(st))
	}

	advance(e, update)
	if st.SentenceID != 1 || st.ShowName != "" || st.ShowText != "Rain ran down the windows" {
		t.Errorf("second press: %+v", st)
	}
	if st.Revealed >= 1 {
		t.Errorf("new line starts revealed: %v", st.Revealed)
	}
}

func TestStageRunsUnlocksAndEnds(t *testing.T) {
	e := newStageTest(t)
	StartStage(e, mustParse(t, stageScript), 1)
	ended := 0
	update := NewUpdateStage(func() { ended++ })
	st := GetOrCreateStage(e)

	advance(e, update)
	advance(e, update)
	if st.SentenceID != 3 || st.ShowText != "One more stop" {
		t.Fatalf("after unlock: %+v", st)
	}
	if !reflect.DeepEqual(Appreciation.CG, []string{"cg/station.png"}) {
		t.Errorf("CG = %v", Appreciation.CG)
	}

	advance(e, update)
	advance(e, update)
	if !st.Ended || ended != 0 {
		t.Fatalf("Ended %v, onEnd calls %d", st.Ended, ended)
	}
	advance(e, update)
	if ended != 1 {
		t.Errorf("onEnd calls = %d, want 1", ended)
	}
}

func TestStageChangeScene(t *testing.T) {
	e := newStageTest(t)
	StartStage(e, mustParse(t, ":before;\nchangeScene:platform.txt;\n"), 1)

	st := GetOrCreateStage(e)
	if st.Scene.Name != "platform.txt" || st.SentenceID != 0 || st.Ended {
		t.Errorf("after changeScene: scene %q sentence %d ended %v", st.Scene.Name, st.SentenceID, st.Ended)
	}
}

func TestStageMissingSceneEnds(t *testing.T) {
	e := newStageTest(t)
	StartStage(e, mustParse(t, "changeScene:nowhere.txt;\n"), 0)

	if !GetOrCreateStage(e).Ended {
		t.Error("stage kept running after a missing scene")
	}
}

// useGameDir points scene loading at a temp dir holding the given scenes
func useGameDir(t *testing.T, scenes map[string]string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "scene"), 0o755); err != nil {
		t.Fatal(err)
	}
	for name, src := range scenes {
		if err := os.WriteFile(filepath.Join(dir, "scene", name), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	orig := cfg.Debug.GameDir
	cfg.Debug.GameDir = dir
	t.Cleanup(func() { cfg.Debug.GameDir = orig })
}

func TestStageSceneLoopEnds(t *testing.T) {
	tests := []struct {
		name   string
		scenes map[string]string
	}{
		{"self", map[string]string{"loop.txt": "changeScene:loop.txt;\n"}},
		{"pair", map[string]string{
			"a.txt": "unlockBgm:bgm/a.mp3;\nchangeScene:b.txt;\n",
			"b.txt": "unlockCg:cg/b.png;\nchangeScene:a.txt;\n",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newStageTest(t)
			useGameDir(t, tt.scenes)

			start := mustParse(t, ":before;\nchangeScene:"+firstScene(tt.scenes)+";\n")
			done := make(chan struct{})
			go func() {
				defer close(done)
				StartStage(e, start, 1)
			}()
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("StartStage did not return")
			}
			if !GetOrCreateStage(e).Ended {
				t.Error("stage kept running after a scene loop")
			}
		})
	}
}

func firstScene(scenes map[string]string) string {
	if _, ok := scenes["a.txt"]; ok {
		return "a.txt"
	}
	return "loop.txt"
}

func TestStageReentersSceneAfterLine(t *testing.T) {
	e := newStageTest(t)
	useGameDir(t, map[string]string{"again.txt": "Mira:Once more;\nchangeScene:again.txt;\n"})
	update := NewUpdateStage(nil)

	scene, err := LoadScene("again.txt")
	if err != nil {
		t.Fatal(err)
	}
	StartStage(e, scene, 0)
	st := GetOrCreateStage(e)
	advance(e, update)
	advance(e, update)

	if st.Ended || st.SentenceID != 0 || st.ShowText != "Once more" {
		t.Errorf("after re-entering: sentence %d text %q ended %v", st.SentenceID, st.ShowText, st.Ended)
	}
}

func TestSkipPassesOnlyReadLines(t *testing.T) {
	e := newStageTest(t)
	scene := mustParse(t, stageScript)
	StartStage(e, scene, 0)
	update := NewUpdateStage(nil)
	st := GetOrCreateStage(e)

	nextFrame(e)
	getOrCreateInput(e).Current[cfg.ActionSkip] = true
	update(e)
	if st.SentenceID != 0 {
		t.Fatalf("skip passed an unread line")
	}

	// Read the first two lines, then come back
	ReadText.RecordIfNew(scene.Name, scene.URL, 1, "Rain ran down the windows")
	StartStage(e, scene, 0)
	for i := 0; i < 10; i++ {
		input := getOrCreateInput(e)
		input.Previous = input.Current
		input.Current[cfg.ActionSkip] = true
		update(e)
	}
	if st.SentenceID != 3 {
		t.Errorf("skip stopped at sentence %d, want 3", st.SentenceID)
	}
}

func TestAutoModeAdvances(t *testing.T) {
	e := newStageTest(t)
	StartStage(e, mustParse(t, stageScript), 0)
	update := NewUpdateStage(nil)
	st := GetOrCreateStage(e)

	nextFrame(e)
	pressAction(e, cfg.ActionAuto)
	update(e)
	if !st.AutoMode {
		t.Fatal("auto mode not toggled on")
	}

	st.Revealed = float64(len([]rune(st.ShowText)))
	frames := int(UserOptions.AutoDelay*60) + 2
	for i := 0; i < frames; i++ {
		nextFrame(e)
		update(e)
	}
	if st.SentenceID != 1 {
		t.Errorf("auto mode at sentence %d, want 1", st.SentenceID)
	}

	advance(e, update)
	if st.AutoMode {
		t.Error("manual advance left auto mode on")
	}
}

func TestOpenMenuFromStage(t *testing.T) {
	for _, name := range []string{"right click", "escape"} {
		e := newStageTest(t)
		StartStage(e, mustParse(t, stageScript), 0)
		nextFrame(e)
		if name == "right click" {
			getOrCreateInput(e).Pointer.SecondaryPressed = true
		} else {
			pressAction(e, cfg.ActionOpenMenu)
		}

		NewUpdateStage(nil)(e)

		gui := GetOrCreateGUI(e)
		if !gui.ShowMenuPanel || gui.CurrentMenuTag != components.MenuPanelSave {
			t.Errorf("%s: gui = %+v", name, gui)
		}
	}
}

func TestStageAutosavesProgress(t *testing.T) {
	e := newStageTest(t)
	useMemStore(t)
	StartStage(e, mustParse(t, stageScript), 0)
	update := NewUpdateStage(nil)

	advance(e, update)
	advance(e, update)

	got := LoadGameProgress()
	if got == nil || got.SentenceID != 1 || got.SceneName != "test" {
		t.Fatalf("progress = %+v", got)
	}

	// Restoring puts the stage back on the saved line
	e2 := newStageTest(t)
	UseStore(nil)
	if err := RestoreStage(e2, &components.SaveData{SceneName: "start.txt", SentenceID: 2}); err != nil {
		t.Fatalf("RestoreStage() error = %v", err)
	}
	st := GetOrCreateStage(e2)
	if st.Scene.Name != "start.txt" || st.SentenceID != 2 || st.ShowName != "Mira" {
		t.Errorf("restored stage = %+v", st)
	}
}

func TestStageIgnoresInputUnderPanel(t *testing.T) {
	e := newStageTest(t)
	StartStage(e, mustParse(t, stageScript), 0)
	OpenMenuPanel(e, components.MenuPanelSave)

	advance(e, NewUpdateStage(nil))
	if GetOrCreateStage(e).Revealed != 0 {
		t.Error("stage ran under the menu panel")
	}
}

func TestWrapRunes(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  []string
	}{
		{"short", "hello", 10, []string{"hello"}},
		{"break at space", "one two three", 8, []string{"one two", "three"}},
		{"hard break", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"newline", "a\nb", 10, []string{"a", "b"}},
		{"runes", "夜の最終電車", 3, []string{"夜の最", "終電車"}},
		{"zero limit", "ab", 0, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapRunes(tt.in, tt.limit); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapRunes(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}
