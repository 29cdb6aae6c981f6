package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedGameConfig(t *testing.T) {
	if Game.EntryScene != "start.txt" {
		t.Errorf("EntryScene = %q, want start.txt", Game.EntryScene)
	}
	if !Game.EnableAppreciation {
		t.Error("EnableAppreciation = false, want true")
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	cfg, err := LoadGameConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}
	if cfg.Title != Game.Title {
		t.Errorf("Title = %q, want embedded %q", cfg.Title, Game.Title)
	}
}

func TestLoadGameConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	src := "title: Night Train\nentry_scene: \"\"\nenable_appreciation: false\nwindow:\n  width: 960\n  height: 540\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGameConfig(dir)
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}
	if cfg.Title != "Night Train" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.EnableAppreciation {
		t.Error("EnableAppreciation not overridden")
	}
	if cfg.EntryScene != "start.txt" {
		t.Errorf("EntryScene = %q, want fallback start.txt", cfg.EntryScene)
	}
	if cfg.TitleBgm != Game.TitleBgm {
		t.Errorf("TitleBgm = %q, want inherited %q", cfg.TitleBgm, Game.TitleBgm)
	}
	if cfg.Window.Width != 960 || cfg.Window.Height != 540 {
		t.Errorf("Window = %+v", cfg.Window)
	}
}

func TestLoadGameConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("title: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGameConfig(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg.Title != Game.Title {
		t.Errorf("invalid file should return embedded defaults, got title %q", cfg.Title)
	}
}
