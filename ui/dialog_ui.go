package ui

import (
	"bytes"

	cfg "github.com/automoto/vellum/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DialogUI is the modal yes/no dialog. It is built on first use so scenes
// can be constructed before the game loop runs.
type DialogUI struct {
	UI *ebitenui.UI

	OnLeft  func()
	OnRight func()

	titleLabel  *widget.Label
	leftButton  *widget.Button
	rightButton *widget.Button

	title, left, right string

	titleFace  text.Face
	buttonFace text.Face
}

func NewDialogUI(onLeft, onRight func()) *DialogUI {
	return &DialogUI{
		OnLeft:  onLeft,
		OnRight: onRight,
	}
}

// SetContent updates the labels shown by the dialog
func (ui *DialogUI) SetContent(title, leftText, rightText string) {
	ui.ensureBuilt()
	if title == ui.title && leftText == ui.left && rightText == ui.right {
		return
	}
	ui.title, ui.left, ui.right = title, leftText, rightText

	ui.titleLabel.Label = title
	ui.leftButton.Text().Label = leftText
	ui.rightButton.Text().Label = rightText
}

func (ui *DialogUI) Update() {
	ui.ensureBuilt()
	ui.UI.Update()
}

func (ui *DialogUI) Draw(screen *ebiten.Image) {
	ui.ensureBuilt()
	ui.UI.Draw(screen)
}

func (ui *DialogUI) ensureBuilt() {
	if ui.UI != nil {
		return
	}
	ui.loadFonts()
	ui.buildUI()
}

func (ui *DialogUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		cfg.Log.WithError(err).Fatal("failed to load dialog font")
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.Dialog.FontSize}
	ui.buttonFace = &text.GoTextFace{Source: fontSource, Size: cfg.Dialog.FontSize - 4}
}

func (ui *DialogUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Dialog.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 28, Bottom: 24, Left: 32, Right: 32}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Dialog.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Dialog.Width, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	ui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Dialog.TextColor,
		}),
	)
	panel.AddChild(ui.titleLabel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)

	ui.leftButton = ui.newButton(func() {
		if ui.OnLeft != nil {
			ui.OnLeft()
		}
	})
	ui.rightButton = ui.newButton(func() {
		if ui.OnRight != nil {
			ui.OnRight()
		}
	})
	buttons.AddChild(ui.leftButton)
	buttons.AddChild(ui.rightButton)
	panel.AddChild(buttons)

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *DialogUI) newButton(onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 44)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.Dialog.ButtonColor),
			Hover:   image.NewNineSliceColor(cfg.Dialog.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.Dialog.ButtonHover),
		}),
		widget.ButtonOpts.Text("", &ui.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.White,
			Pressed: cfg.White,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}
