package systems

import (
	"testing"
	"time"

	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/yohamta/donburi/ecs"
)

const twoLines = `
Mira:You came after all;
:She held out a ticket;
`

func fixedNow(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time { return time.Date(2024, 3, 9, 21, 4, 5, 0, time.UTC) }
	t.Cleanup(func() { now = orig })
}

func newSaveLoadTest(t *testing.T, tag components.MenuPanelTag) (*ecs.ECS, *memStore) {
	t.Helper()
	e := newTestECS(t)
	s := useMemStore(t)
	fixedNow(t)
	GetOrCreateGUI(e).ShowTitle = false
	OpenMenuPanel(e, tag)
	return e, s
}

func TestSaveToEmptySlot(t *testing.T) {
	e, _ := newSaveLoadTest(t, components.MenuPanelSave)
	StartStage(e, mustParse(t, twoLines), 0)
	update := NewUpdateSaveLoad(nil)

	clickRect(e, saveSlotRect(0))
	update(e)

	got := LoadSlot(1)
	if got == nil {
		t.Fatal("slot 1 empty after saving")
	}
	want := components.SaveData{
		ID:         got.ID,
		Index:      1,
		SaveTime:   "2024-03-09 21:04:05",
		SceneName:  "test",
		SceneURL:   "builtin:scene/test",
		SentenceID: 0,
		ShowName:   "Mira",
		ShowText:   "You came after all",
	}
	if *got != want {
		t.Errorf("slot 1 = %+v, want %+v", *got, want)
	}
	if got.ID == "" {
		t.Error("save has no ID")
	}
	if IsDialogOpen(e) {
		t.Error("saving to an empty slot asked for confirmation")
	}
	if !hasSFX(e, cfg.SoundPageChange) {
		t.Error("save sound not queued")
	}
}

func TestOverwriteAsksFirst(t *testing.T) {
	e, _ := newSaveLoadTest(t, components.MenuPanelSave)
	StartStage(e, mustParse(t, twoLines), 0)
	update := NewUpdateSaveLoad(nil)

	clickRect(e, saveSlotRect(0))
	update(e)
	first := LoadSlot(1)

	advanceStage(e, GetOrCreateStage(e)) // reveal
	advanceStage(e, GetOrCreateStage(e)) // next line

	nextFrame(e)
	GetOrCreateAudio(e).PendingSFX = nil
	clickRect(e, saveSlotRect(0))
	update(e)

	if !IsDialogOpen(e) {
		t.Fatal("overwriting did not ask for confirmation")
	}
	if !hasSFX(e, cfg.SoundDialogOpen) {
		t.Error("dialog sound not queued")
	}
	if LoadSlot(1).ID != first.ID {
		t.Fatal("slot overwritten before confirmation")
	}

	AnswerDialog(e, true)
	got := LoadSlot(1)
	if got.ID == first.ID || got.SentenceID != 1 || got.ShowText != "She held out a ticket" {
		t.Errorf("slot 1 after overwrite = %+v", got)
	}
}

func TestSaveWithoutStageDoesNothing(t *testing.T) {
	e, _ := newSaveLoadTest(t, components.MenuPanelSave)

	clickRect(e, saveSlotRect(0))
	NewUpdateSaveLoad(nil)(e)

	if LoadSlot(1) != nil {
		t.Error("saved without a running scene")
	}
}

func TestLoadUsesStoredSlot(t *testing.T) {
	e, _ := newSaveLoadTest(t, components.MenuPanelLoad)
	_ = StoreSlot(&components.SaveData{ID: "old", Index: 2, SceneName: "start.txt", ShowText: "old"})

	var loaded *components.SaveData
	update := NewUpdateSaveLoad(func(s *components.SaveData) { loaded = s })
	update(e) // lists the page

	// Replaced behind the browser's back
	_ = StoreSlot(&components.SaveData{ID: "new", Index: 2, SceneName: "start.txt", ShowText: "new"})

	clickRect(e, saveSlotRect(1))
	update(e)

	if loaded == nil || loaded.ID != "new" {
		t.Fatalf("loaded = %+v, want the stored slot", loaded)
	}
	gui := GetOrCreateGUI(e)
	if gui.ShowMenuPanel || gui.ShowTitle {
		t.Errorf("gui after load = %+v", gui)
	}
	if !hasSFX(e, cfg.SoundClick) {
		t.Error("load sound not queued")
	}
}

func TestLoadVanishedSlot(t *testing.T) {
	e, s := newSaveLoadTest(t, components.MenuPanelLoad)
	_ = StoreSlot(&components.SaveData{ID: "x", Index: 1, SceneName: "start.txt"})

	called := false
	update := NewUpdateSaveLoad(func(*components.SaveData) { called = true })
	update(e)

	delete(s.items, "save_1")
	clickRect(e, saveSlotRect(0))
	update(e)

	if called {
		t.Error("loaded a slot that no longer exists")
	}
	if !GetOrCreateGUI(e).ShowMenuPanel {
		t.Error("panel closed on a failed load")
	}
}

func TestLoadEmptySlotIgnored(t *testing.T) {
	e, _ := newSaveLoadTest(t, components.MenuPanelLoad)
	called := false
	update := NewUpdateSaveLoad(func(*components.SaveData) { called = true })

	clickRect(e, saveSlotRect(3))
	update(e)

	if called || !GetOrCreateGUI(e).ShowMenuPanel {
		t.Error("empty slot reacted to a load click")
	}
}

func TestPagingPersists(t *testing.T) {
	e, s := newSaveLoadTest(t, components.MenuPanelLoad)
	_ = StoreSlot(&components.SaveData{ID: "p2", Index: 11, SceneName: "start.txt"})
	update := NewUpdateSaveLoad(nil)

	pressAction(e, cfg.ActionMenuRight)
	update(e)
	if UserOptions.SlPage != 2 {
		t.Fatalf("SlPage = %d, want 2", UserOptions.SlPage)
	}
	if _, ok := s.items["settings"]; !ok {
		t.Error("page change not persisted")
	}

	nextFrame(e)
	update(e)
	sl := GetOrCreateSaveLoad(e)
	if sl.LoadedPage != 2 || sl.Saves[11] == nil || sl.Saves[11].ID != "p2" {
		t.Errorf("page 2 cache = %+v", sl.Saves)
	}

	// Page 1 has no previous page
	UserOptions.SlPage = 1
	nextFrame(e)
	pressAction(e, cfg.ActionMenuLeft)
	update(e)
	if UserOptions.SlPage != 1 {
		t.Errorf("SlPage = %d, want 1", UserOptions.SlPage)
	}

	clickRect(e, pageButtonRect(cfg.SaveLoad.TotalPages))
	update(e)
	if UserOptions.SlPage != cfg.SaveLoad.TotalPages {
		t.Errorf("SlPage = %d after clicking the last page", UserOptions.SlPage)
	}
	if !hasSFX(e, cfg.SoundPageChange) {
		t.Error("page change sound not queued")
	}
}

func TestSlotsFadeInStaggered(t *testing.T) {
	e, _ := newSaveLoadTest(t, components.MenuPanelLoad)
	update := NewUpdateSaveLoad(nil)

	update(e)
	sl := GetOrCreateSaveLoad(e)
	last := cfg.SaveLoad.SavesPerPage - 1
	if sl.Animations[0].Alpha <= 0 {
		t.Error("first slot did not start fading in")
	}
	if sl.Animations[last].Alpha != 0 {
		t.Errorf("last slot alpha = %v before its delay", sl.Animations[last].Alpha)
	}

	for i := 0; i < 60; i++ {
		update(e)
	}
	for i, a := range sl.Animations {
		if a.Alpha != 1 || a.Tween != nil {
			t.Errorf("slot %d alpha = %v after the fade", i, a.Alpha)
		}
	}
}

func TestSlotText(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		isSave bool
		want   string
	}{
		{"empty text", "", true, cfg.SaveLoad.UnknownSceneTitle},
		{"load shows all", "The last train of the night", false, "The last train of the night"},
		{"save truncates", "The last train of the night", true, "The last t..."},
		{"save short", "Hi", true, "Hi"},
		{"save exact limit", "0123456789", true, "0123456789"},
		{"runes not bytes", "夜の最終電車が駅に入ってきた", true, "夜の最終電車が駅に入..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slotTitle(&components.SaveData{ShowText: tt.text}, tt.isSave)
			if got != tt.want {
				t.Errorf("slotTitle() = %q, want %q", got, tt.want)
			}
		})
	}

	s := &components.SaveData{SceneName: "start.txt", SentenceID: 4, ShowName: "Mira", ShowText: "Hi"}
	if got := slotSpeech(s); got != "Mira:Hi" {
		t.Errorf("slotSpeech() = %q", got)
	}
	if got := slotPosition(s); got != "start.txt-4" {
		t.Errorf("slotPosition() = %q", got)
	}
	if got := slotLabel(7); got != "#07" {
		t.Errorf("slotLabel(7) = %q", got)
	}
	if got := slotIndex(3, 4); got != 25 {
		t.Errorf("slotIndex(3, 4) = %d, want 25", got)
	}
}
