package systems

import (
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/fonts"
	"github.com/automoto/vellum/slider"
	"github.com/hajimehoshi/ebiten/v2"
)

// sliderHitBox is the pressable area of a slider: the track widened by half
// a handle on each side and as tall as the handle.
func sliderHitBox(t slider.Track) slider.Track {
	centerY := t.Y + t.Height/2
	return slider.Track{
		X:      t.X - cfg.Slider.HandleWidth/2,
		Y:      centerY - cfg.Slider.HandleHeight/2,
		Width:  t.Width + cfg.Slider.HandleWidth,
		Height: cfg.Slider.HandleHeight,
	}
}

// updateSlider feeds one frame of pointer input to s. A drag in progress owns
// the pointer until it lifts, and a press that starts a drag is consumed so
// nothing underneath sees it.
func updateSlider(input *components.InputData, s *slider.Slider) {
	p := &input.Pointer

	if sess := s.Session(); sess != nil {
		owner := sess.Pointer()
		samePointer := owner.Kind == toSliderPointerKind(p.Kind) &&
			(owner.Kind == slider.PointerMouse || owner.ID == p.TouchID)
		if !samePointer || !p.Pressed {
			sess.End()
		} else {
			sess.Move(p.X)
		}
		p.Consumed = true
		return
	}

	if p.Consumed {
		s.SetHovered(false)
		return
	}

	over := sliderHitBox(s.Track()).Contains(p.X, p.Y)
	if p.Kind == components.PointerMouse {
		s.SetHovered(over)
	}
	if over && p.JustPressed {
		s.Begin(slider.Pointer{Kind: toSliderPointerKind(p.Kind), ID: p.TouchID}, p.X)
		p.Consumed = true
	}
}

func toSliderPointerKind(k components.PointerKind) slider.PointerKind {
	if k == components.PointerTouch {
		return slider.PointerTouch
	}
	return slider.PointerMouse
}

// drawSlider renders the track, the filled part, the handle and, while
// hovered or dragged, the value bubble above the handle.
func drawSlider(screen *ebiten.Image, s *slider.Slider) {
	t := s.Track()
	v := s.View()
	sc := cfg.Slider

	fillRect(screen, rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height}, sc.TrackColor)
	fillRect(screen, rect{X: t.X, Y: t.Y, W: v.FillWidth(t), H: t.Height}, sc.FillColor)

	handleColor := sc.HandleColor
	if s.Dragging {
		handleColor = sc.HandleDragColor
	}
	handle := rect{
		X: v.HandleX(t, sc.HandleWidth),
		Y: t.Y + t.Height/2 - sc.HandleHeight/2,
		W: sc.HandleWidth,
		H: sc.HandleHeight,
	}
	fillRect(screen, handle, handleColor)
	strokeRect(screen, handle, 1, sc.FillColor)

	if !s.TooltipVisible() {
		return
	}
	label := s.TooltipText()
	w := float64(fonts.Small.Width(label)) + 16
	bubble := rect{X: handle.X + handle.W/2 - w/2, Y: handle.Y - 30, W: w, H: 24}
	fillRect(screen, bubble, sc.BubbleColor)
	drawTextCentered(screen, label, fonts.Small, bubble, sc.BubbleText)
}
