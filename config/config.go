package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// TitleConfig contains title screen configuration values
type TitleConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorDisabled color.RGBA
	SubTitleColor     color.RGBA
	TitleY            float64
	ButtonX           float64
	ButtonStartY      float64
	ButtonWidth       float64
	ButtonHeight      float64
	ButtonGap         float64
	EnterHint         string
	FadeInSeconds     float32
}

// MenuPanelConfig contains the in-game menu bottom bar configuration
type MenuPanelConfig struct {
	BackgroundColor color.RGBA
	BarColor        color.RGBA
	ButtonColor     color.RGBA
	HighlightColor  color.RGBA
	TextColor       color.RGBA
	BarHeight       float64
	ButtonWidth     float64
	ButtonGap       float64
}

// OptionsConfig contains options page layout values
type OptionsConfig struct {
	TabX, TabStartY float64
	TabWidth        float64
	TabHeight       float64
	TabGap          float64
	TabColor        color.RGBA
	TabActiveColor  color.RGBA
	ContentX        float64
	ContentStartY   float64
	RowHeight       float64
	LabelWidth      float64
	ToggleWidth     float64
	ToggleHeight    float64
	TextColor       color.RGBA
	SubTextColor    color.RGBA
	HeaderTitle     string
	HeaderSubTitle  string
	TabLabels       []string
	TabSubLabels    []string
}

// SaveLoadConfig contains the save/load browser configuration
type SaveLoadConfig struct {
	SavesPerPage      int
	TotalPages        int
	Columns           int
	ItemWidth         float64
	ItemHeight        float64
	ItemGap           float64
	GridX, GridY      float64
	PageButtonSize    float64
	PageButtonGap     float64
	PageButtonsX      float64
	PageButtonsY      float64
	ItemColor         color.RGBA
	ItemHoverColor    color.RGBA
	PageColor         color.RGBA
	PageActiveColor   color.RGBA
	SaveAccentColor   color.RGBA
	LoadAccentColor   color.RGBA
	TextColor         color.RGBA
	EmptyText         string
	UnknownSceneTitle string
	TitleMaxRunes     int
	AnimationStepMs   int // stagger between item fade-ins
	AnimationFadeMs   int
	TimeFormat        string
}

// SliderConfig contains option slider drawing values
type SliderConfig struct {
	TrackWidth      float64
	TrackHeight     float64
	HandleWidth     float64
	HandleHeight    float64
	TrackColor      color.RGBA
	FillColor       color.RGBA
	HandleColor     color.RGBA
	HandleDragColor color.RGBA
	BubbleColor     color.RGBA
	BubbleText      color.RGBA
	Throttle        time.Duration // Minimum spacing between committed values
}

// DialogConfig contains global dialog configuration
type DialogConfig struct {
	OverlayColor color.RGBA
	PanelColor   color.RGBA
	ButtonColor  color.RGBA
	ButtonHover  color.RGBA
	TextColor    color.RGBA
	Width        int
	FontSize     float64
}

// StageConfig contains text box configuration for the stage
type StageConfig struct {
	BackgroundColor color.RGBA
	TextBoxColor    color.RGBA
	TextColor       color.RGBA
	ReadTextColor   color.RGBA
	SpeakerColor    color.RGBA
	TextBoxHeight   float64
	TextBoxMargin   float64
	LineHeight      float64
	MaxLineRunes    int
	SkipIntervalMs  int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipTitle bool   // Go straight to the stage
	LogLevel  string // logrus level name
	GameDir   string // Directory holding config.yaml and scene scripts
}

// Global configuration instances
var C *Config
var Title TitleConfig
var MenuPanel MenuPanelConfig
var Options OptionsConfig
var SaveLoad SaveLoadConfig
var Slider SliderConfig
var Dialog DialogConfig
var Stage StageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gray         = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	DarkGray     = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Pink         = color.RGBA{R: 240, G: 120, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Vellum",
	}

	Title = TitleConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 20, B: 35, A: 255},
		TitleColor:        White,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TextColorDisabled: Gray,
		SubTitleColor:     color.RGBA{R: 190, G: 190, B: 210, A: 255},
		TitleY:            140,
		ButtonX:           80,
		ButtonStartY:      260,
		ButtonWidth:       300,
		ButtonHeight:      52,
		ButtonGap:         10,
		EnterHint:         "Click or press Enter",
		FadeInSeconds:     0.6,
	}

	MenuPanel = MenuPanelConfig{
		BackgroundColor: color.RGBA{R: 245, G: 245, B: 250, A: 255},
		BarColor:        color.RGBA{R: 30, G: 30, B: 45, A: 235},
		ButtonColor:     color.RGBA{R: 50, G: 50, B: 70, A: 255},
		HighlightColor:  Pink,
		TextColor:       White,
		BarHeight:       64,
		ButtonWidth:     180,
		ButtonGap:       16,
	}

	Options = OptionsConfig{
		TabX:           40,
		TabStartY:      140,
		TabWidth:       280,
		TabHeight:      70,
		TabGap:         12,
		TabColor:       color.RGBA{R: 220, G: 220, B: 230, A: 255},
		TabActiveColor: Pink,
		ContentX:       380,
		ContentStartY:  150,
		RowHeight:      70,
		LabelWidth:     260,
		ToggleWidth:    120,
		ToggleHeight:   36,
		TextColor:      color.RGBA{R: 30, G: 30, B: 40, A: 255},
		SubTextColor:   color.RGBA{R: 110, G: 110, B: 130, A: 255},
		HeaderTitle:    "Options",
		HeaderSubTitle: "Global Settings",
		TabLabels:      []string{"System", "Display", "Sound"},
		TabSubLabels:   []string{"System Global Settings", "Display Settings", "Sound Settings"},
	}

	SaveLoad = SaveLoadConfig{
		SavesPerPage:      10,
		TotalPages:        20,
		Columns:           5,
		ItemWidth:         228,
		ItemHeight:        200,
		ItemGap:           14,
		GridX:             40,
		GridY:             190,
		PageButtonSize:    40,
		PageButtonGap:     6,
		PageButtonsX:      160,
		PageButtonsY:      100,
		ItemColor:         color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ItemHoverColor:    color.RGBA{R: 255, G: 235, B: 240, A: 255},
		PageColor:         color.RGBA{R: 220, G: 220, B: 230, A: 255},
		PageActiveColor:   Pink,
		SaveAccentColor:   Pink,
		LoadAccentColor:   LightBlue,
		TextColor:         color.RGBA{R: 30, G: 30, B: 40, A: 255},
		EmptyText:         "No Data",
		UnknownSceneTitle: "Unknown Scene",
		TitleMaxRunes:     10,
		AnimationStepMs:   30,
		AnimationFadeMs:   200,
		TimeFormat:        "2006-01-02 15:04:05",
	}

	Slider = SliderConfig{
		TrackWidth:      420,
		TrackHeight:     12,
		HandleWidth:     40,
		HandleHeight:    28,
		TrackColor:      color.RGBA{R: 200, G: 200, B: 210, A: 255},
		FillColor:       Pink,
		HandleColor:     White,
		HandleDragColor: color.RGBA{R: 255, G: 220, B: 230, A: 255},
		BubbleColor:     color.RGBA{R: 40, G: 40, B: 50, A: 230},
		BubbleText:      White,
		Throttle:        16 * time.Millisecond,
	}

	Dialog = DialogConfig{
		OverlayColor: BlackOverlay,
		PanelColor:   color.RGBA{R: 250, G: 250, B: 252, A: 255},
		ButtonColor:  color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:  Pink,
		TextColor:    color.RGBA{R: 30, G: 30, B: 40, A: 255},
		Width:        520,
		FontSize:     22,
	}

	Stage = StageConfig{
		BackgroundColor: color.RGBA{R: 25, G: 30, B: 45, A: 255},
		TextBoxColor:    color.RGBA{R: 0, G: 0, B: 0, A: 190},
		TextColor:       White,
		ReadTextColor:   color.RGBA{R: 190, G: 200, B: 255, A: 255},
		SpeakerColor:    BrightOrange,
		TextBoxHeight:   200,
		TextBoxMargin:   40,
		LineHeight:      34,
		MaxLineRunes:    48,
		SkipIntervalMs:  50,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipTitle: false,
		LogLevel:  "info",
		GameDir:   "game",
	}
}
