package balance

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Store owns the active Config and the selected difficulty. It is built once
// at startup and handed to whoever needs tunables.
type Store struct {
	path       string
	cfg        Config
	difficulty string
	log        *zap.Logger
}

// NewStore loads path (which may not exist) and selects difficulty.
// Unknown difficulties fall back to "normal".
func NewStore(path, difficulty string, log *zap.Logger) (*Store, error) {
	s := &Store{path: path, cfg: Default(), difficulty: "normal", log: log}
	if err := s.Reload(); err != nil {
		return s, err
	}
	if err := s.SetDifficulty(difficulty); err != nil {
		log.Warn("unknown difficulty, using normal", zap.String("difficulty", difficulty))
	}
	return s, nil
}

func (s *Store) Config() Config { return s.cfg }

func (s *Store) DifficultyName() string { return s.difficulty }

// Difficulty returns the multipliers of the selected preset. Missing or
// zero entries read as 1.
func (s *Store) Difficulty() Multipliers {
	return s.cfg.Multipliers(s.difficulty)
}

// Difficulties lists the preset names in menu order and the index of the
// selected one.
func (s *Store) Difficulties() (names []string, selected int) {
	names = s.cfg.DifficultyNames()
	for i, n := range names {
		if n == s.difficulty {
			selected = i
		}
	}
	return names, selected
}

func (s *Store) SetDifficulty(name string) error {
	if _, ok := s.cfg.Difficulty[name]; !ok {
		return fmt.Errorf("difficulty %q not in %v", name, s.cfg.DifficultyNames())
	}
	s.difficulty = name
	return nil
}

// Reload re-reads the balance file. A file with mistyped keys is applied
// with those keys left at their defaults; any other failure keeps the
// current config.
func (s *Store) Reload() error {
	cfg, err := Load(s.path)
	var typeErr *yaml.TypeError
	switch {
	case errors.As(err, &typeErr):
		for _, msg := range typeErr.Errors {
			s.log.Warn("balance value ignored", zap.String("path", s.path), zap.String("reason", msg))
		}
	case err != nil:
		return err
	}
	s.cfg = cfg
	if _, ok := cfg.Difficulty[s.difficulty]; !ok {
		s.log.Warn("difficulty gone from balance file, using normal", zap.String("difficulty", s.difficulty))
		s.difficulty = "normal"
	}
	s.log.Info("balance loaded", zap.String("path", s.path), zap.String("difficulty", s.difficulty))
	return nil
}

// Multipliers looks up a difficulty preset by name.
func (c Config) Multipliers(name string) Multipliers {
	m, ok := c.Difficulty[name]
	if !ok {
		return neutral
	}
	one(&m.PlayerDamage)
	one(&m.EnemyHP)
	one(&m.EnemyDamage)
	one(&m.XP)
	one(&m.SpawnRate)
	return m
}

func (c Config) DifficultyNames() []string {
	names := make([]string, 0, len(c.Difficulty))
	for n := range c.Difficulty {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func one(v *float64) {
	if *v <= 0 {
		*v = 1
	}
}
