package systems

import (
	"github.com/automoto/vellum/archetypes"
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DialogView draws the confirm dialog and turns its button presses into
// AnswerDialog calls.
type DialogView interface {
	SetContent(title, leftText, rightText string)
	Update()
	Draw(screen *ebiten.Image)
}

// GetOrCreateDialog returns the singleton dialog state
func GetOrCreateDialog(e *ecs.ECS) *components.DialogData {
	entry, ok := components.Dialog.First(e.World)
	if !ok {
		entry = archetypes.Dialog.Spawn(e)
	}
	return components.Dialog.Get(entry)
}

// ShowDialog opens the global dialog. Empty button labels default to Yes/No.
func ShowDialog(e *ecs.ECS, d components.DialogData) {
	if d.LeftText == "" {
		d.LeftText = "Yes"
	}
	if d.RightText == "" {
		d.RightText = "No"
	}
	d.Open = true
	*GetOrCreateDialog(e) = d
}

// IsDialogOpen reports whether the dialog currently owns input
func IsDialogOpen(e *ecs.ECS) bool {
	entry, ok := components.Dialog.First(e.World)
	return ok && components.Dialog.Get(entry).Open
}

// AnswerDialog closes the dialog and runs the chosen callback. The dialog is
// closed first so the callback may open another one.
func AnswerDialog(e *ecs.ECS, left bool) {
	d := GetOrCreateDialog(e)
	if !d.Open {
		return
	}
	fn := d.RightFunc
	if left {
		fn = d.LeftFunc
	}
	*d = components.DialogData{}

	PlaySFX(e, cfg.SoundClick)
	if fn != nil {
		fn()
	}
}

// NewUpdateDialog creates the dialog system. It must run right after
// UpdateInput: while the dialog is open every other system sees no input.
func NewUpdateDialog(view DialogView) ecs.System {
	return func(e *ecs.ECS) {
		if !IsDialogOpen(e) {
			return
		}
		d := GetOrCreateDialog(e)
		input := getOrCreateInput(e)

		switch {
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			AnswerDialog(e, true)
		case GetAction(input, cfg.ActionMenuBack).JustPressed:
			AnswerDialog(e, false)
		default:
			if view != nil {
				view.SetContent(d.Title, d.LeftText, d.RightText)
				view.Update()
			}
		}

		swallowInput(input)
	}
}

// NewDrawDialog creates the dialog renderer
func NewDrawDialog(view DialogView) func(e *ecs.ECS, screen *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !IsDialogOpen(e) || view == nil {
			return
		}
		view.Draw(screen)
	}
}
