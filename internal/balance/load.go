package balance

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a balance file and decodes it over Default(). A missing file is
// not an error. When the file has values of the wrong type the returned
// Config is still usable (the bad keys keep their defaults) and the error is
// a *yaml.TypeError describing them.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read balance %s: %w", path, err)
	}
	return Decode(data)
}

// Decode is Load without the file system.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	err := yaml.Unmarshal(data, &cfg)
	var typeErr *yaml.TypeError
	if err != nil && !errors.As(err, &typeErr) {
		return Default(), fmt.Errorf("decode balance: %w", err)
	}
	cfg.sanitize()
	return cfg, err
}

// sanitize puts back defaults for values the simulation divides by or
// relies on being positive.
func (c *Config) sanitize() {
	d := Default()
	positive(&c.World.MapWidth, d.World.MapWidth)
	positive(&c.World.MapHeight, d.World.MapHeight)
	positive(&c.World.ViewWidth, d.World.ViewWidth)
	positive(&c.World.ViewHeight, d.World.ViewHeight)
	positive(&c.World.FixedStep, d.World.FixedStep)
	positive(&c.World.MaxBacklog, d.World.MaxBacklog)
	positive(&c.Player.MaxHP, d.Player.MaxHP)
	positive(&c.Player.AnimInterval, d.Player.AnimInterval)
	positive(&c.Player.MagnetDuration, d.Player.MagnetDuration)
	positive(&c.Scaling.TimeModifierDivisor, d.Scaling.TimeModifierDivisor)
	positive(&c.Scaling.MinimumSpawnInterval, d.Scaling.MinimumSpawnInterval)
	if c.Progression.FirstLevelXP <= 0 {
		c.Progression.FirstLevelXP = d.Progression.FirstLevelXP
	}
	if c.Progression.LevelXPMultiplier < 1 {
		c.Progression.LevelXPMultiplier = d.Progression.LevelXPMultiplier
	}
	if c.Enemies.Boss.Every <= 0 {
		c.Enemies.Boss.Every = d.Enemies.Boss.Every
	}
	if c.Enemies.Boss.LevelsPerDamage <= 0 {
		c.Enemies.Boss.LevelsPerDamage = d.Enemies.Boss.LevelsPerDamage
	}
	if c.Difficulty == nil {
		c.Difficulty = d.Difficulty
	}
}

func positive(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}
