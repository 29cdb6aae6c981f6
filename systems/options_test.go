package systems

import (
	"testing"

	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/yohamta/donburi/ecs"
)

func openOptionsPanel(t *testing.T, page components.OptionPage) (*ecs.ECS, *components.OptionsData) {
	t.Helper()
	e := newTestECS(t)
	t.Cleanup(func() {
		UserOptions = DefaultOptions()
		ApplyUserOptions(e)
	})
	OpenMenuPanel(e, components.MenuPanelOption)
	SetOptionPage(e, page)
	return e, GetOrCreateOptions(e)
}

func TestVolumeSliderWritesUserOptions(t *testing.T) {
	e, opts := openOptionsPanel(t, components.OptionPageSound)
	s := useMemStore(t)

	// Main volume track runs from x=640 to x=1060 on row 0
	click(e, 850, 185)
	UpdateOptions(e)

	if UserOptions.MainVolume != 50 {
		t.Fatalf("MainVolume = %v, want 50", UserOptions.MainVolume)
	}
	if globalMainVolume != 0.5 {
		t.Errorf("main volume = %v, want 0.5", globalMainVolume)
	}
	if !opts.Sliders[components.SliderMainVolume].Dragging {
		t.Error("press on the track did not start a drag")
	}
	if !getOrCreateInput(e).Pointer.Consumed {
		t.Error("drag start was not consumed")
	}
	if !hasSFX(e, cfg.SoundEnter) {
		t.Error("grab sound not queued")
	}
	if hasSFX(e, cfg.SoundClick) {
		t.Error("release sound queued while still dragging")
	}

	// Releasing ends the drag
	nextFrame(e)
	getOrCreateInput(e).Pointer = components.PointerData{X: 900, Y: 185}
	UpdateOptions(e)
	if opts.Sliders[components.SliderMainVolume].Dragging {
		t.Error("drag survived the release")
	}
	if !hasSFX(e, cfg.SoundClick) {
		t.Error("release sound not queued")
	}

	// Closing the panel persists the change
	SetVisibility(e, components.VisibilityMenuPanel, false)
	if _, ok := s.items["settings"]; !ok {
		t.Fatal("settings not saved when the panel closed")
	}
	saved, ok, err := LoadSettings()
	if !ok || err != nil || saved.MainVolume != 50 {
		t.Errorf("saved settings = %+v (ok %v, err %v)", saved, ok, err)
	}
	if opts.Sliders != nil {
		t.Error("sliders kept after the panel closed")
	}
}

func TestSliderOnOtherPageIgnored(t *testing.T) {
	e, _ := openOptionsPanel(t, components.OptionPageSystem)

	// Same spot as the main volume slider, which lives on the Sound page.
	// On the System page row 0 is text speed.
	before := UserOptions.MainVolume
	click(e, 850, 185)
	UpdateOptions(e)

	if UserOptions.MainVolume != before {
		t.Errorf("hidden slider changed MainVolume to %v", UserOptions.MainVolume)
	}
	if UserOptions.TextSpeed == DefaultOptions().TextSpeed {
		t.Error("visible text speed slider did not react")
	}
}

func TestSwitchingPageEndsDrag(t *testing.T) {
	e, opts := openOptionsPanel(t, components.OptionPageSystem)

	click(e, 850, 185)
	UpdateOptions(e)
	textSpeed := opts.Sliders[components.SliderTextSpeed]
	if !textSpeed.Dragging {
		t.Fatal("drag did not start")
	}

	SetOptionPage(e, components.OptionPageSound)
	if textSpeed.Dragging || textSpeed.Session() != nil {
		t.Error("page switch left the drag running")
	}
}

func TestClearReadTextAsksFirst(t *testing.T) {
	e, _ := openOptionsPanel(t, components.OptionPageSystem)
	ReadText.RecordIfNew("a", "a.txt", 0, "hello")

	clickRect(e, clearReadTextRect())
	UpdateOptions(e)

	if !IsDialogOpen(e) {
		t.Fatal("clear read text did not ask for confirmation")
	}
	if len(ReadText.All()) != 1 {
		t.Fatal("records cleared before confirmation")
	}

	AnswerDialog(e, true)
	if len(ReadText.All()) != 0 {
		t.Error("records kept after confirming")
	}
}

func TestFullscreenToggle(t *testing.T) {
	e, opts := openOptionsPanel(t, components.OptionPageDisplay)
	var calls []bool
	orig := setFullscreen
	setFullscreen = func(on bool) { calls = append(calls, on) }
	t.Cleanup(func() { setFullscreen = orig })

	clickRect(e, fullscreenToggleRect(true))
	UpdateOptions(e)

	if !UserOptions.Fullscreen || len(calls) != 1 || !calls[0] {
		t.Errorf("Fullscreen = %v, calls = %v", UserOptions.Fullscreen, calls)
	}
	if !opts.Dirty {
		t.Error("toggle did not mark options dirty")
	}

	// Choosing the active state again is a no-op
	nextFrame(e)
	clickRect(e, fullscreenToggleRect(true))
	UpdateOptions(e)
	if len(calls) != 1 {
		t.Errorf("calls = %v, want one", calls)
	}
}
