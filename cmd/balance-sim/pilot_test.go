package main

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lasthuman/internal/balance"
	"lasthuman/internal/geom"
	"lasthuman/internal/input"
	"lasthuman/internal/sim"
)

func newTestWorld(t *testing.T) (*sim.World, balance.Config, balance.Multipliers) {
	t.Helper()
	cfg := balance.Default()
	mult := cfg.Multipliers("normal")
	w := sim.NewWorld(cfg, mult, sim.WithRand(rand.New(rand.NewSource(7))))
	return w, cfg, mult
}

func TestPilotKitesAndDashes(t *testing.T) {
	w, cfg, mult := newTestWorld(t)
	me := w.Player.Center()
	w.Enemies = append(w.Enemies, sim.NewEnemy(cfg, sim.TierNormal, 1, me.Add(geom.Vec{X: 100}), mult))

	in := newPilot().Decide(w)
	assert.True(t, in.Held(input.MoveLeft))
	assert.False(t, in.Held(input.MoveRight))
	assert.False(t, in.Held(input.MoveUp))
	assert.True(t, in.Held(input.Dash))
	assert.False(t, in.Held(input.Scream), "one goblin is not a pack")
}

func TestPilotScreamsIntoPack(t *testing.T) {
	w, cfg, mult := newTestWorld(t)
	me := w.Player.Center()
	for _, dx := range []float64{60, 70, 80} {
		w.Enemies = append(w.Enemies, sim.NewEnemy(cfg, sim.TierNormal, 1, me.Add(geom.Vec{X: dx}), mult))
	}

	in := newPilot().Decide(w)
	require.True(t, in.Held(input.Scream))
	aim, ok := in.Aim()
	require.True(t, ok)
	assert.InDelta(t, me.X+70, aim.X, 1e-9)
	assert.InDelta(t, me.Y, aim.Y, 1e-9)

	w.Player.ScreamTimer = 1
	assert.False(t, newPilot().Decide(w).Held(input.Scream), "scream on cooldown")
}

func TestPilotWalksToOrbs(t *testing.T) {
	w, cfg, _ := newTestWorld(t)
	me := w.Player.Center()
	w.Orbs = append(w.Orbs, sim.NewOrb(me.Add(geom.Vec{Y: 300}), 5, cfg.Orbs))

	in := newPilot().Decide(w)
	assert.True(t, in.Held(input.MoveDown))
	assert.False(t, in.Held(input.MoveLeft))
	assert.False(t, in.Held(input.MoveRight))
	assert.False(t, in.Held(input.Dash))
}

func TestPickUpgradeFollowsPreference(t *testing.T) {
	u, ok := pickUpgrade([]sim.Upgrade{sim.XPBonus, sim.Haste, sim.StrengthBoost})
	require.True(t, ok)
	assert.Equal(t, sim.StrengthBoost, u)

	_, ok = pickUpgrade(nil)
	assert.False(t, ok)
}

func TestPlayIsBoundedAndRepeatable(t *testing.T) {
	cfg := balance.Default()
	mult := cfg.Multipliers("normal")

	a := play(cfg, mult, 11, 5, zap.NewNop())
	b := play(cfg, mult, 11, 5, zap.NewNop())

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.LessOrEqual(t, a.Stats.Survival, 5+cfg.World.FixedStep)
	assert.Equal(t, a.Stats, b.Stats, "same seed, same run")
	assert.Equal(t, a.Died, b.Died)
}
