package systems

import (
	"github.com/automoto/vellum/archetypes"
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/fonts"
	"github.com/automoto/vellum/slider"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// optionSliderSpec binds one slider to a field of the user options
type optionSliderSpec struct {
	id    components.OptionSliderID
	page  components.OptionPage
	row   int
	label string
	rng   cfg.Range
	field func(o *components.OptionData) *float64
	apply func(e *ecs.ECS, v float64)
}

var optionSliderSpecs = []optionSliderSpec{
	{
		id: components.SliderTextSpeed, page: components.OptionPageSystem, row: 0,
		label: "Text Speed", rng: cfg.OptionsMenu.TextSpeedRange,
		field: func(o *components.OptionData) *float64 { return &o.TextSpeed },
	},
	{
		id: components.SliderAutoDelay, page: components.OptionPageSystem, row: 1,
		label: "Auto Play Delay", rng: cfg.OptionsMenu.AutoDelayRange,
		field: func(o *components.OptionData) *float64 { return &o.AutoDelay },
	},
	{
		id: components.SliderTextSize, page: components.OptionPageDisplay, row: 1,
		label: "Text Size", rng: cfg.OptionsMenu.TextSizeRange,
		field: func(o *components.OptionData) *float64 { return &o.TextSize },
		apply: func(e *ecs.ECS, v float64) { fonts.ScaleStage(v) },
	},
	{
		id: components.SliderMainVolume, page: components.OptionPageSound, row: 0,
		label: "Main Volume", rng: cfg.OptionsMenu.VolumeRange,
		field: func(o *components.OptionData) *float64 { return &o.MainVolume },
		apply: func(e *ecs.ECS, v float64) { SetMainVolume(e, v/100) },
	},
	{
		id: components.SliderMusicVolume, page: components.OptionPageSound, row: 1,
		label: "BGM Volume", rng: cfg.OptionsMenu.VolumeRange,
		field: func(o *components.OptionData) *float64 { return &o.MusicVolume },
		apply: func(e *ecs.ECS, v float64) { SetMusicVolume(e, v/100) },
	},
	{
		id: components.SliderSFXVolume, page: components.OptionPageSound, row: 2,
		label: "SE Volume", rng: cfg.OptionsMenu.VolumeRange,
		field: func(o *components.OptionData) *float64 { return &o.SFXVolume },
		apply: func(e *ecs.ECS, v float64) { SetSFXVolume(e, v/100) },
	},
	{
		id: components.SliderVoiceVolume, page: components.OptionPageSound, row: 3,
		label: "Voice Volume", rng: cfg.OptionsMenu.VolumeRange,
		field: func(o *components.OptionData) *float64 { return &o.VoiceVolume },
		apply: func(e *ecs.ECS, v float64) { SetVoiceVolume(e, v/100) },
	},
}

// Non-slider rows
const (
	clearReadTextRow = 2 // System page
	fullscreenRow    = 0 // Display page
)

// GetOrCreateOptions returns the singleton options state
func GetOrCreateOptions(e *ecs.ECS) *components.OptionsData {
	entry, ok := components.Options.First(e.World)
	if !ok {
		entry = archetypes.Options.Spawn(e)
	}
	return components.Options.Get(entry)
}

// openOptions creates the sliders for the options pages
func openOptions(e *ecs.ECS) *components.OptionsData {
	opts := GetOrCreateOptions(e)
	if opts.Sliders != nil {
		return opts
	}

	opts.Sliders = make(map[components.OptionSliderID]*slider.Slider, len(optionSliderSpecs))
	for _, spec := range optionSliderSpecs {
		spec := spec
		opts.Sliders[spec.id] = slider.New(spec.rng.Min, spec.rng.Max, *spec.field(&UserOptions),
			slider.WithThrottle(cfg.Slider.Throttle),
			slider.WithOnGrab(func() { PlaySFX(e, cfg.SoundEnter) }),
			slider.WithOnRelease(func() { PlaySFX(e, cfg.SoundClick) }),
			slider.WithOnChange(func(v float64) {
				*spec.field(&UserOptions) = v
				if spec.apply != nil {
					spec.apply(e, v)
				}
				GetOrCreateOptions(e).Dirty = true
			}),
		)
	}
	layoutOptionSliders(opts)
	return opts
}

// closeOptions ends any drag, drops the sliders and saves changed settings
func closeOptions(e *ecs.ECS) {
	entry, ok := components.Options.First(e.World)
	if !ok {
		return
	}
	opts := components.Options.Get(entry)
	for _, s := range opts.Sliders {
		s.Dispose()
	}
	opts.Sliders = nil
	if opts.Dirty {
		SaveUserOptions()
		opts.Dirty = false
	}
}

// SetOptionPage switches the visible options tab
func SetOptionPage(e *ecs.ECS, page components.OptionPage) {
	opts := GetOrCreateOptions(e)
	if opts.CurrentPage == page {
		return
	}
	for _, s := range opts.Sliders {
		s.Dispose()
	}
	opts.CurrentPage = page
}

func optionRowY(row int) float64 {
	return cfg.Options.ContentStartY + float64(row)*cfg.Options.RowHeight
}

func optionControlX() float64 {
	return cfg.Options.ContentX + cfg.Options.LabelWidth
}

func layoutOptionSliders(opts *components.OptionsData) {
	for _, spec := range optionSliderSpecs {
		s, ok := opts.Sliders[spec.id]
		if !ok {
			continue
		}
		s.SetTrack(slider.Track{
			X:      optionControlX(),
			Y:      optionRowY(spec.row) + (cfg.Options.RowHeight-cfg.Slider.TrackHeight)/2,
			Width:  cfg.Slider.TrackWidth,
			Height: cfg.Slider.TrackHeight,
		})
	}
}

func optionTabRect(i int) rect {
	o := cfg.Options
	return rect{X: o.TabX, Y: o.TabStartY + float64(i)*(o.TabHeight+o.TabGap), W: o.TabWidth, H: o.TabHeight}
}

func fullscreenToggleRect(on bool) rect {
	x := optionControlX()
	if !on {
		x += cfg.Options.ToggleWidth + 12
	}
	y := optionRowY(fullscreenRow) + (cfg.Options.RowHeight-cfg.Options.ToggleHeight)/2
	return rect{X: x, Y: y, W: cfg.Options.ToggleWidth, H: cfg.Options.ToggleHeight}
}

func clearReadTextRect() rect {
	y := optionRowY(clearReadTextRow) + (cfg.Options.RowHeight-cfg.Options.ToggleHeight)/2
	return rect{X: optionControlX(), Y: y, W: cfg.Options.ToggleWidth * 2, H: cfg.Options.ToggleHeight}
}

// UpdateOptions handles the options page while the menu panel shows it
func UpdateOptions(e *ecs.ECS) {
	gui := GetOrCreateGUI(e)
	if !gui.ShowMenuPanel || gui.CurrentMenuTag != components.MenuPanelOption {
		return
	}

	opts := openOptions(e)
	input := getOrCreateInput(e)
	layoutOptionSliders(opts)

	// Pull externally owned values; an active drag keeps its own view.
	for _, spec := range optionSliderSpecs {
		opts.Sliders[spec.id].SetValue(*spec.field(&UserOptions))
	}

	// Drags first so a touch that started on a slider owns the pointer.
	for _, spec := range optionSliderSpecs {
		if spec.page == opts.CurrentPage {
			updateSlider(input, opts.Sliders[spec.id])
		}
	}

	for i := 0; i < components.NumOptionPages; i++ {
		page := components.OptionPage(i)
		if ev := pointerButton(e, input, "options.tab."+cfg.Options.TabLabels[i], optionTabRect(i), true); ev.Clicked {
			PlaySFX(e, cfg.SoundSwitch)
			SetOptionPage(e, page)
		}
	}

	switch opts.CurrentPage {
	case components.OptionPageSystem:
		if ev := pointerButton(e, input, "options.clearReadText", clearReadTextRect(), true); ev.Clicked {
			PlaySFX(e, cfg.SoundDialogOpen)
			ShowDialog(e, components.DialogData{
				Title:     "Clear all read text records?",
				LeftText:  "Yes",
				RightText: "No",
				LeftFunc: func() {
					ReadText.Clear()
					cfg.Log.Info("Read text records cleared")
				},
			})
		}
	case components.OptionPageDisplay:
		for _, on := range []bool{true, false} {
			key := "options.fullscreen.off"
			if on {
				key = "options.fullscreen.on"
			}
			if ev := pointerButton(e, input, key, fullscreenToggleRect(on), true); ev.Clicked {
				PlaySFX(e, cfg.SoundClick)
				if UserOptions.Fullscreen != on {
					UserOptions.Fullscreen = on
					setFullscreen(on)
					opts.Dirty = true
				}
			}
		}
	}
}

// DrawOptions renders the options page
func DrawOptions(e *ecs.ECS, screen *ebiten.Image) {
	gui := GetOrCreateGUI(e)
	if !gui.ShowMenuPanel || gui.CurrentMenuTag != components.MenuPanelOption {
		return
	}
	opts := GetOrCreateOptions(e)
	o := cfg.Options

	drawText(screen, o.HeaderTitle, fonts.Large, o.TabX, 70, o.TextColor)
	drawText(screen, o.HeaderSubTitle, fonts.Small, o.TabX, 96, o.SubTextColor)

	for i := 0; i < components.NumOptionPages; i++ {
		r := optionTabRect(i)
		bg := o.TabColor
		if components.OptionPage(i) == opts.CurrentPage {
			bg = o.TabActiveColor
		}
		fillRect(screen, r, bg)
		drawText(screen, o.TabLabels[i], fonts.Bold, r.X+16, r.Y+30, o.TextColor)
		drawText(screen, o.TabSubLabels[i], fonts.Small, r.X+16, r.Y+54, o.SubTextColor)
	}

	labelBaseline := func(row int) float64 { return optionRowY(row) + o.RowHeight/2 + 7 }

	for _, spec := range optionSliderSpecs {
		if spec.page != opts.CurrentPage {
			continue
		}
		drawText(screen, spec.label, fonts.Regular, o.ContentX, labelBaseline(spec.row), o.TextColor)
		if s, ok := opts.Sliders[spec.id]; ok {
			drawSlider(screen, s)
		}
	}

	switch opts.CurrentPage {
	case components.OptionPageSystem:
		drawText(screen, "Read Text", fonts.Regular, o.ContentX, labelBaseline(clearReadTextRow), o.TextColor)
		r := clearReadTextRect()
		fillRect(screen, r, o.TabColor)
		drawTextCentered(screen, "Clear Read Text", fonts.Regular, r, o.TextColor)
	case components.OptionPageDisplay:
		drawText(screen, "Fullscreen", fonts.Regular, o.ContentX, labelBaseline(fullscreenRow), o.TextColor)
		for _, on := range []bool{true, false} {
			r := fullscreenToggleRect(on)
			bg := o.TabColor
			if UserOptions.Fullscreen == on {
				bg = o.TabActiveColor
			}
			fillRect(screen, r, bg)
			label := "Off"
			if on {
				label = "On"
			}
			drawTextCentered(screen, label, fonts.Regular, r, o.TextColor)
		}
	}
}
