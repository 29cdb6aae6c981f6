package systems

import (
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// menuPanelButton is one entry of the bottom bar
type menuPanelButton int

const (
	panelButtonSave menuPanelButton = iota
	panelButtonLoad
	panelButtonOptions
	panelButtonTitle
	panelButtonBack
	numPanelButtons
)

func (b menuPanelButton) label() string {
	switch b {
	case panelButtonSave:
		return "Save"
	case panelButtonLoad:
		return "Load"
	case panelButtonOptions:
		return "Options"
	case panelButtonTitle:
		return "Title"
	case panelButtonBack:
		return "Back"
	}
	return ""
}

// tag returns the page a button selects, if any
func (b menuPanelButton) tag() (components.MenuPanelTag, bool) {
	switch b {
	case panelButtonSave:
		return components.MenuPanelSave, true
	case panelButtonLoad:
		return components.MenuPanelLoad, true
	case panelButtonOptions:
		return components.MenuPanelOption, true
	}
	return 0, false
}

func menuPanelButtonRect(screenW, screenH float64, b menuPanelButton) rect {
	mp := cfg.MenuPanel
	total := float64(numPanelButtons)*mp.ButtonWidth + float64(numPanelButtons-1)*mp.ButtonGap
	x := (screenW - total) / 2
	return rect{
		X: x + float64(b)*(mp.ButtonWidth+mp.ButtonGap),
		Y: screenH - mp.BarHeight + 8,
		W: mp.ButtonWidth,
		H: mp.BarHeight - 16,
	}
}

// NewUpdateMenuPanel creates the menu panel system. It runs after the page
// systems and swallows whatever input is left, so nothing behind the panel
// reacts. onTitle is called after the player confirms returning to title.
func NewUpdateMenuPanel(onTitle func()) ecs.System {
	return func(e *ecs.ECS) {
		gui := GetOrCreateGUI(e)
		if !gui.ShowMenuPanel {
			return
		}
		input := getOrCreateInput(e)
		w, h := float64(cfg.C.Width), float64(cfg.C.Height)

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			PlaySFX(e, cfg.SoundClick)
			SetVisibility(e, components.VisibilityMenuPanel, false)
			swallowInput(input)
			return
		}

		for b := menuPanelButton(0); b < numPanelButtons; b++ {
			ev := pointerButton(e, input, "menupanel."+b.label(), menuPanelButtonRect(w, h, b), true)
			if !ev.Clicked {
				continue
			}

			if tag, ok := b.tag(); ok {
				PlaySFX(e, cfg.SoundPageChange)
				// Saving needs a running scene
				if tag == components.MenuPanelSave && gui.ShowTitle {
					continue
				}
				SetMenuPanelTag(e, tag)
				continue
			}

			switch b {
			case panelButtonTitle:
				PlaySFX(e, cfg.SoundDialogOpen)
				ShowDialog(e, components.DialogData{
					Title:     "Return to the title screen?",
					LeftText:  "Yes",
					RightText: "No",
					LeftFunc: func() {
						SetVisibility(e, components.VisibilityMenuPanel, false)
						if onTitle != nil {
							onTitle()
						}
					},
				})
			case panelButtonBack:
				PlaySFX(e, cfg.SoundClick)
				SetVisibility(e, components.VisibilityMenuPanel, false)
			}
		}

		swallowInput(input)
	}
}

// DrawMenuPanel renders the panel background, the active page and the bar
func DrawMenuPanel(e *ecs.ECS, screen *ebiten.Image) {
	gui := GetOrCreateGUI(e)
	if !gui.ShowMenuPanel {
		return
	}
	mp := cfg.MenuPanel
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	fillRect(screen, rect{W: w, H: h}, mp.BackgroundColor)

	DrawOptions(e, screen)
	DrawSaveLoad(e, screen)

	fillRect(screen, rect{Y: h - mp.BarHeight, W: w, H: mp.BarHeight}, mp.BarColor)

	input := getOrCreateInput(e)
	for b := menuPanelButton(0); b < numPanelButtons; b++ {
		r := menuPanelButtonRect(w, h, b)
		bg := mp.ButtonColor
		if tag, ok := b.tag(); ok && tag == gui.CurrentMenuTag {
			bg = mp.HighlightColor
		} else if input.HoveredWidget == "menupanel."+b.label() {
			bg = cfg.DarkBlue
		}
		textColor := mp.TextColor
		if b == panelButtonSave && gui.ShowTitle {
			textColor = cfg.Gray
		}
		fillRect(screen, r, bg)
		drawTextCentered(screen, b.label(), fonts.Regular, r, textColor)
	}
}
