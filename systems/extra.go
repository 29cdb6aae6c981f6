package systems

import (
	"fmt"
	"path"

	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func extraBackRect() rect {
	return rect{X: cfg.Title.ButtonX, Y: float64(cfg.C.Height) - 120, W: 160, H: cfg.Title.ButtonHeight}
}

func extraBgmRect(i int) rect {
	t := cfg.Title
	return rect{X: t.ButtonX, Y: t.ButtonStartY + float64(i)*(t.ButtonHeight/1.5+t.ButtonGap), W: t.ButtonWidth * 1.5, H: t.ButtonHeight / 1.5}
}

// UnlockBgm adds a track to the gallery and persists it
func UnlockBgm(item string) {
	if appendUnique(&Appreciation.Bgm, item) {
		_ = SaveAppreciation(Appreciation)
	}
}

// UnlockCG adds an image to the gallery and persists it
func UnlockCG(item string) {
	if appendUnique(&Appreciation.CG, item) {
		_ = SaveAppreciation(Appreciation)
	}
}

func appendUnique(list *[]string, item string) bool {
	for _, existing := range *list {
		if existing == item {
			return false
		}
	}
	*list = append(*list, item)
	return true
}

// updateExtra handles the gallery shown from the title's Extra button.
// Clicking an unlocked track plays it, Back restores the title music.
func updateExtra(e *ecs.ECS, input *components.InputData) {
	for i, bgm := range Appreciation.Bgm {
		if ev := pointerButton(e, input, fmt.Sprintf("extra.bgm.%d", i), extraBgmRect(i), true); ev.Clicked {
			PlaySFX(e, cfg.SoundClick)
			PlayMusic(e, bgm)
		}
	}

	back := pointerButton(e, input, "extra.back", extraBackRect(), true)
	if back.Clicked || GetAction(input, cfg.ActionMenuBack).JustPressed {
		PlaySFX(e, cfg.SoundClick)
		SetVisibility(e, components.VisibilityExtra, false)
		PlayMusic(e, GetOrCreateGUI(e).TitleBgm)
	}
}

func drawExtra(screen *ebiten.Image) {
	t := cfg.Title
	drawText(screen, "Music", fonts.Large, t.ButtonX, t.ButtonStartY-24, t.TextColorSelected)
	for i, bgm := range Appreciation.Bgm {
		r := extraBgmRect(i)
		drawText(screen, path.Base(bgm), fonts.Regular, r.X, r.Y+r.H-10, t.TextColorNormal)
	}

	cgX := t.ButtonX + t.ButtonWidth*1.5 + 60
	drawText(screen, "Gallery", fonts.Large, cgX, t.ButtonStartY-24, t.TextColorSelected)
	for i, cg := range Appreciation.CG {
		y := t.ButtonStartY + float64(i)*(t.ButtonHeight/1.5+t.ButtonGap) + t.ButtonHeight/1.5 - 10
		drawText(screen, path.Base(cg), fonts.Regular, cgX, y, t.TextColorNormal)
	}

	r := extraBackRect()
	drawText(screen, "Back", fonts.Bold, r.X, r.Y+r.H-16, t.TextColorNormal)
}
