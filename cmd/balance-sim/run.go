package main

import (
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lasthuman/internal/balance"
	"lasthuman/internal/sim"
)

// result is one finished run.
type result struct {
	ID       uuid.UUID
	Seed     int64
	Stats    sim.Stats
	Died     bool
	Upgrades int
}

// play runs one world to death or limit seconds, whichever comes first.
func play(cfg balance.Config, mult balance.Multipliers, seed int64, limit float64, log *zap.Logger) result {
	w := sim.NewWorld(cfg, mult,
		sim.WithRand(rand.New(rand.NewSource(seed))),
		sim.WithLogger(log),
		sim.WithAutoAttack(true),
	)
	pl := newPilot()
	dt := cfg.World.FixedStep
	res := result{ID: w.RunID, Seed: seed}

	for !w.Over && w.Elapsed < limit {
		w.Step(pl.Decide(w), dt)
		if w.Player.ConsumeLevelUp() {
			if u, ok := pickUpgrade(w.OfferUpgrades(3)); ok && w.ChooseUpgrade(u) {
				res.Upgrades++
			}
		}
	}
	res.Stats = w.Stats()
	res.Died = w.Over
	return res
}
