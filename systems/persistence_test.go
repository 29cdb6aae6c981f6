package systems

import (
	"testing"

	"github.com/automoto/vellum/components"
)

func TestPersistenceWithoutStore(t *testing.T) {
	newTestECS(t)

	if err := SaveSettings(DefaultOptions()); err != nil {
		t.Errorf("SaveSettings() error = %v, want nil", err)
	}
	if _, ok, err := LoadSettings(); ok || err != nil {
		t.Errorf("LoadSettings() = ok %v, err %v; want false, nil", ok, err)
	}
	if got := LoadSlot(1); got != nil {
		t.Errorf("LoadSlot(1) = %+v, want nil", got)
	}
	if HasSaveGame() {
		t.Error("HasSaveGame() = true without a store")
	}
}

func TestSlotsUseIndexedKeys(t *testing.T) {
	newTestECS(t)
	s := useMemStore(t)

	save := &components.SaveData{ID: "abc", Index: 3, SceneName: "start.txt", SentenceID: 4, ShowText: "hi"}
	if err := StoreSlot(save); err != nil {
		t.Fatalf("StoreSlot() error = %v", err)
	}
	if _, ok := s.items["save_3"]; !ok {
		t.Fatalf("store keys = %v, want save_3", s.items)
	}

	got := LoadSlot(3)
	if got == nil || got.ID != "abc" || got.SentenceID != 4 {
		t.Errorf("LoadSlot(3) = %+v", got)
	}
	if LoadSlot(4) != nil {
		t.Error("LoadSlot(4) should be empty")
	}
}

func TestGameProgress(t *testing.T) {
	newTestECS(t)
	useMemStore(t)

	if HasSaveGame() {
		t.Fatal("HasSaveGame() = true on an empty store")
	}
	if err := SaveGameProgress(&components.SaveData{SceneName: "a.txt", SentenceID: 2}); err != nil {
		t.Fatalf("SaveGameProgress() error = %v", err)
	}
	if !HasSaveGame() {
		t.Fatal("HasSaveGame() = false after saving")
	}
	if err := ClearGameProgress(); err != nil {
		t.Fatalf("ClearGameProgress() error = %v", err)
	}
	if HasSaveGame() {
		t.Error("HasSaveGame() = true after clearing")
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	newTestECS(t)
	s := useMemStore(t)
	s.failSave = true

	if err := SaveSettings(DefaultOptions()); err == nil {
		t.Error("SaveSettings() error = nil, want failure")
	}
}

func TestCorruptSettingsKeepDefaults(t *testing.T) {
	newTestECS(t)
	s := useMemStore(t)
	s.items["settings"] = []byte("{not json")

	if _, ok, err := LoadSettings(); ok || err == nil {
		t.Errorf("LoadSettings() = ok %v, err %v; want false and an error", ok, err)
	}

	UserOptions.TextSpeed = 99
	LoadUserData()
	if UserOptions != DefaultOptions() {
		t.Errorf("UserOptions = %+v, want defaults", UserOptions)
	}
}

func TestReadTextSurvivesReopen(t *testing.T) {
	newTestECS(t)
	s := useMemStore(t)

	ReadText.RecordIfNew("start.txt", "builtin:scene/start.txt", 2, "You came after all")

	// A new tracker over the same store sees the record
	UseStore(s)
	if !ReadText.IsRead("start.txt", "builtin:scene/start.txt", 2, "You came after all") {
		t.Fatal("IsRead() = false after reopening the store")
	}

	ReadText.Clear()
	UseStore(s)
	if n := len(ReadText.All()); n != 0 {
		t.Errorf("len(All()) = %d after Clear and reopen, want 0", n)
	}
}

func TestCorruptReadTextStartsEmpty(t *testing.T) {
	newTestECS(t)
	s := newMemStore()
	s.items["read-text"] = []byte("[{")
	UseStore(s)

	if n := len(ReadText.All()); n != 0 {
		t.Errorf("len(All()) = %d, want 0", n)
	}
	ReadText.RecordIfNew("a", "a.txt", 0, "x")
	if !ReadText.IsRead("a", "a.txt", 0, "x") {
		t.Error("IsRead() = false after recording")
	}
}
