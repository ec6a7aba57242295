// Package settings persists the player's preferences: keybinds, volumes,
// the difficulty preset and the window size.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Audio struct {
	Master float64 `yaml:"master_volume"`
	Music  float64 `yaml:"music_volume"`
	SFX    float64 `yaml:"sfx_volume"`
}

type Window struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
}

type Settings struct {
	Audio      Audio             `yaml:"audio"`
	Window     Window            `yaml:"window"`
	Difficulty string            `yaml:"difficulty"`
	AutoAttack bool              `yaml:"auto_attack"`
	Keybinds   map[string]string `yaml:"keybinds"`
}

func Default() Settings {
	return Settings{
		Audio:      Audio{Master: 0.7, Music: 0.5, SFX: 0.8},
		Window:     Window{Width: 800, Height: 600},
		Difficulty: "normal",
		AutoAttack: true,
		Keybinds: map[string]string{
			"move_up":        "W",
			"move_down":      "S",
			"move_left":      "A",
			"move_right":     "D",
			"dash":           "Space",
			"attack":         "mouse_left",
			"scream":         "mouse_right",
			"pause":          "Escape",
			"toggle_auto":    "Y",
			"reload_balance": "F5",
		},
	}
}

// SFXGain is the effective effect volume.
func (s Settings) SFXGain() float64 { return clamp01(s.Audio.Master) * clamp01(s.Audio.SFX) }

// Load reads path over Default(). A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("decode settings %s: %w", path, err)
	}
	s.Audio.Master = clamp01(s.Audio.Master)
	s.Audio.Music = clamp01(s.Audio.Music)
	s.Audio.SFX = clamp01(s.Audio.SFX)
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		s.Window = Default().Window
	}
	return s, nil
}

// Save writes s to path through a temp file so a crash never leaves a
// truncated settings file behind.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
