package systems

import (
	"image/color"

	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// rect is a screen-space hit box
type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// buttonEvent is the outcome of one frame of pointer input over a widget
type buttonEvent struct {
	Hovered bool
	Clicked bool
}

// pointerButton hit-tests a widget identified by key. Entering it plays the
// hover sound once, pressing it consumes the press so widgets underneath
// stay quiet. Disabled widgets swallow the press without reporting a click.
func pointerButton(e *ecs.ECS, input *components.InputData, key string, r rect, enabled bool) buttonEvent {
	p := &input.Pointer
	if p.Consumed || !r.contains(p.X, p.Y) {
		return buttonEvent{}
	}

	input.HoverClaimed = true
	if input.HoveredWidget != key {
		input.HoveredWidget = key
		PlaySFX(e, cfg.SoundEnter)
	}

	ev := buttonEvent{Hovered: true}
	if p.JustPressed {
		p.Consumed = true
		ev.Clicked = enabled
	}
	return ev
}

// consumeBackdrop swallows a press anywhere inside r, so clicks on empty
// panel space do not reach what is drawn behind it.
func consumeBackdrop(input *components.InputData, r rect) {
	p := &input.Pointer
	if p.JustPressed && r.contains(p.X, p.Y) {
		p.Consumed = true
	}
}

func fillRect(screen *ebiten.Image, r rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r rect, width float32, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}

// drawText draws s with its baseline at y
func drawText(screen *ebiten.Image, s string, f fonts.FontName, x, y float64, c color.Color) {
	text.Draw(screen, s, f.Get(), int(x), int(y), c)
}

// drawTextCentered centres s horizontally and vertically inside r
func drawTextCentered(screen *ebiten.Image, s string, f fonts.FontName, r rect, c color.Color) {
	face := f.Get()
	m := face.Metrics()
	w := float64(f.Width(s))
	ascent := float64(m.Ascent.Ceil())
	height := float64(m.Height.Ceil())
	x := r.X + (r.W-w)/2
	y := r.Y + (r.H-height)/2 + ascent
	text.Draw(screen, s, face, int(x), int(y), c)
}

// fade scales a colour by alpha in [0,1]
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
