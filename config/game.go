package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default_game.yaml
var defaultGameYAML []byte

// GameConfig is the per-game description read from <GameDir>/config.yaml
type GameConfig struct {
	Title              string `yaml:"title"`
	Subtitle           string `yaml:"subtitle"`
	EntryScene         string `yaml:"entry_scene"`
	TitleBackground    string `yaml:"title_background"`
	TitleBgm           string `yaml:"title_bgm"`
	EnableAppreciation bool   `yaml:"enable_appreciation"`
	Window             struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`
}

// Game is the active game description
var Game GameConfig

func init() {
	if err := yaml.Unmarshal(defaultGameYAML, &Game); err != nil {
		panic(fmt.Sprintf("embedded game config is invalid: %v", err))
	}
}

// LoadGameConfig reads config.yaml from dir over the embedded defaults.
// A missing file is not an error.
func LoadGameConfig(dir string) (GameConfig, error) {
	cfg := Game

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read game config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Game, fmt.Errorf("parse game config: %w", err)
	}
	if cfg.EntryScene == "" {
		cfg.EntryScene = Game.EntryScene
	}
	return cfg, nil
}

// ApplyGameConfig makes g the active game description and applies window
// overrides.
func ApplyGameConfig(g GameConfig) {
	Game = g
	if g.Title != "" {
		C.Title = g.Title
	}
	if g.Window.Width > 0 && g.Window.Height > 0 {
		C.Width = g.Window.Width
		C.Height = g.Window.Height
	}
}
