package systems

import (
	"os"

	"github.com/automoto/vellum/archetypes"
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// exitGame is swapped out by tests
var exitGame = func() { os.Exit(0) }

// NewUpdateTitle creates the title screen system. onStart begins a new game
// from the entry scene, onContinue resumes the auto-saved position.
func NewUpdateTitle(onStart func(), onContinue func()) ecs.System {
	return func(e *ecs.ECS) {
		gui := GetOrCreateGUI(e)
		if !gui.ShowTitle || gui.ShowMenuPanel {
			return
		}
		title := GetOrCreateTitle(e)
		input := getOrCreateInput(e)

		if title.Fade != nil {
			alpha, done := title.Fade.Update(float32(1.0 / float64(ebiten.TPS())))
			title.Alpha = alpha
			if done {
				title.Fade = nil
				title.Alpha = 1
			}
		}

		// The first interaction unlocks audio playback and enters the title
		if !gui.IsEnterGame {
			if input.Pointer.JustPressed || GetAction(input, cfg.ActionMenuSelect).JustPressed {
				input.Pointer.Consumed = true
				enterGame(e)
			}
			return
		}

		if gui.ShowExtra {
			updateExtra(e, input)
			return
		}

		numOptions := len(title.VisibleOptions)
		if numOptions == 0 {
			return
		}

		// Navigate with wrap-around
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundEnter)
			title.SelectedIndex = (title.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundEnter)
			title.SelectedIndex = (title.SelectedIndex + 1) % numOptions
		}

		chosen := -1
		for i, option := range title.VisibleOptions {
			enabled := titleOptionEnabled(title, option)
			ev := pointerButton(e, input, "title."+titleOptionLabel(option), titleButtonRect(i), enabled)
			if ev.Hovered {
				title.SelectedIndex = i
			}
			if ev.Clicked {
				chosen = i
			}
		}
		if chosen < 0 && GetAction(input, cfg.ActionMenuSelect).JustPressed &&
			titleOptionEnabled(title, title.VisibleOptions[title.SelectedIndex]) {
			chosen = title.SelectedIndex
		}
		if chosen < 0 {
			return
		}

		PlaySFX(e, cfg.SoundClick)
		switch title.VisibleOptions[chosen] {
		case components.TitleStart:
			if err := ClearGameProgress(); err != nil {
				cfg.Log.WithError(err).Warn("Failed to clear the autosave")
			}
			SetVisibility(e, components.VisibilityTitle, false)
			if onStart != nil {
				onStart()
			}
		case components.TitleContinue:
			SetVisibility(e, components.VisibilityTitle, false)
			if onContinue != nil {
				onContinue()
			}
		case components.TitleOptions:
			OpenMenuPanel(e, components.MenuPanelOption)
		case components.TitleLoad:
			OpenMenuPanel(e, components.MenuPanelLoad)
		case components.TitleExtra:
			SetVisibility(e, components.VisibilityExtra, true)
		case components.TitleExit:
			ShowDialog(e, components.DialogData{
				Title:     "Exit the game?",
				LeftText:  "Yes",
				RightText: "No",
				LeftFunc:  exitGame,
			})
		}
	}
}

// enterGame passes the "click to enter" gate
func enterGame(e *ecs.ECS) {
	SetVisibility(e, components.VisibilityEnterGame, true)
	PlayMusic(e, GetOrCreateGUI(e).TitleBgm)
	if UserOptions.Fullscreen {
		ApplyFullscreen()
	}
}

func titleOptionEnabled(title *components.TitleData, option components.TitleOption) bool {
	switch option {
	case components.TitleContinue:
		return !title.ContinueDisabled
	case components.TitleExtra:
		return !title.ExtraDisabled
	default:
		return true
	}
}

func titleButtonRect(i int) rect {
	t := cfg.Title
	return rect{
		X: t.ButtonX,
		Y: t.ButtonStartY + float64(i)*(t.ButtonHeight+t.ButtonGap),
		W: t.ButtonWidth,
		H: t.ButtonHeight,
	}
}

// titleOptionLabel returns the display text for a title option
func titleOptionLabel(option components.TitleOption) string {
	switch option {
	case components.TitleStart:
		return "Start"
	case components.TitleContinue:
		return "Continue"
	case components.TitleOptions:
		return "Options"
	case components.TitleLoad:
		return "Load"
	case components.TitleExtra:
		return "Extra"
	case components.TitleExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateTitle returns the singleton Title component, creating if needed
func GetOrCreateTitle(e *ecs.ECS) *components.TitleData {
	if _, ok := components.Title.First(e.World); !ok {
		visibleOptions := []components.TitleOption{
			components.TitleStart,
			components.TitleContinue,
			components.TitleOptions,
			components.TitleLoad,
		}
		if GetOrCreateGUI(e).EnableAppreciation {
			visibleOptions = append(visibleOptions, components.TitleExtra)
		}
		visibleOptions = append(visibleOptions, components.TitleExit)

		ent := archetypes.Title.Spawn(e)
		components.Title.SetValue(ent, components.TitleData{
			SelectedIndex:    0,
			VisibleOptions:   visibleOptions,
			ContinueDisabled: !HasSaveGame(),
			ExtraDisabled:    !Appreciation.HasItems(),
			Fade:             gween.New(0, 1, cfg.Title.FadeInSeconds, ease.OutCubic),
		})
	}

	ent, _ := components.Title.First(e.World)
	return components.Title.Get(ent)
}

// DrawTitle renders the title screen
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	gui := GetOrCreateGUI(e)
	if !gui.ShowTitle {
		return
	}
	title := GetOrCreateTitle(e)
	t := cfg.Title

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	fillRect(screen, rect{W: width, H: height}, t.BackgroundColor)

	alpha := title.Alpha
	if title.Fade == nil {
		alpha = 1
	}

	drawText(screen, cfg.Game.Title, fonts.Title, t.ButtonX, t.TitleY, fade(t.TitleColor, alpha))
	if cfg.Game.Subtitle != "" {
		drawText(screen, cfg.Game.Subtitle, fonts.Regular, t.ButtonX, t.TitleY+40, fade(t.SubTitleColor, alpha))
	}

	if !gui.IsEnterGame {
		hint := t.EnterHint
		x := (width - float64(fonts.Regular.Width(hint))) / 2
		drawText(screen, hint, fonts.Regular, x, height-80, fade(t.TextColorNormal, alpha))
		return
	}

	if gui.ShowExtra {
		drawExtra(screen)
		return
	}

	for i, option := range title.VisibleOptions {
		r := titleButtonRect(i)
		textColor := t.TextColorNormal
		switch {
		case !titleOptionEnabled(title, option):
			textColor = t.TextColorDisabled
		case i == title.SelectedIndex:
			textColor = t.TextColorSelected
			fillRect(screen, rect{X: r.X - 16, Y: r.Y + r.H/2 - 3, W: 8, H: 6}, fade(t.TextColorSelected, alpha))
		}
		drawText(screen, titleOptionLabel(option), fonts.Bold, r.X, r.Y+r.H-16, fade(textColor, alpha))
	}

	input := getOrCreateInput(e)
	hint := getTitleHint(input.LastInputMethod)
	hintX := (width - float64(fonts.Small.Width(hint))) / 2
	drawText(screen, hint, fonts.Small, hintX, height-12, t.TextColorNormal)
}

// getTitleHint returns the appropriate hint for title navigation
func getTitleHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	case components.InputPointer:
		return "Click to select"
	}
	return "Arrows: Navigate   Enter: Select"
}
