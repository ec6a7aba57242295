package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lasthuman/internal/balance"
	"lasthuman/internal/geom"
)

var origin = geom.Vec{X: 1000, Y: 1000}

func neutral(cfg balance.Config) balance.Multipliers { return cfg.Multipliers("normal") }

func TestTierHealthOrdering(t *testing.T) {
	cfg := balance.Default()
	m := neutral(cfg)
	for level := 1; level <= 60; level++ {
		n := NewEnemy(cfg, TierNormal, level, origin, m)
		r := NewEnemy(cfg, TierRare, level, origin, m)
		e := NewEnemy(cfg, TierElite, level, origin, m)
		assert.Greater(t, e.MaxHP, r.MaxHP, "level %d", level)
		assert.Greater(t, r.MaxHP, n.MaxHP, "level %d", level)
	}
}

func TestEnemyStatsFromLevel(t *testing.T) {
	cfg := balance.Default()
	e := NewEnemy(cfg, TierRare, 4, origin, neutral(cfg))
	assert.Equal(t, 39.0, e.MaxHP) // (5 + 4*2) * 3
	assert.Equal(t, 80.0, e.Speed) // 60 + 4*5
	assert.Equal(t, 10.0, e.XP)
	assert.InDelta(t, 104.0, e.Bounds.W, 1e-9)
	assert.InDelta(t, origin.X, e.Bounds.Center().X, 1e-9)
	assert.InDelta(t, origin.Y, e.Bounds.Center().Y, 1e-9)
}

func TestEnemyDifficultyMultipliers(t *testing.T) {
	cfg := balance.Default()
	hard := cfg.Multipliers("hard")
	e := NewEnemy(cfg, TierNormal, 1, origin, hard)
	assert.InDelta(t, 7*hard.EnemyHP, e.MaxHP, 1e-9)
	assert.InDelta(t, hard.EnemyDamage, e.Damage, 1e-9)
	assert.InDelta(t, 3.5*hard.XP, e.XP, 1e-9)
}

func TestEnemyStepsTowardTarget(t *testing.T) {
	cfg := balance.Default()
	e := NewEnemy(cfg, TierNormal, 1, origin, neutral(cfg))
	target := origin.Add(geom.Vec{X: -500})

	e.Update(target, 0.5)

	assert.InDelta(t, origin.X-e.Speed*0.5, e.Bounds.Center().X, 1e-9)
	assert.True(t, e.FacingLeft)

	e.Update(e.Bounds.Center().Add(geom.Vec{X: 1}), 10)
	assert.InDelta(t, origin.X-e.Speed*0.5+1, e.Bounds.Center().X, 1e-9, "no overshoot")
}

func TestEnemySlowAndPause(t *testing.T) {
	cfg := balance.Default()
	e := NewEnemy(cfg, TierNormal, 1, origin, neutral(cfg))
	target := origin.Add(geom.Vec{X: 1000})

	e.Slow(3)
	e.Update(target, 1)
	assert.InDelta(t, origin.X+e.Speed*0.5, e.Bounds.Center().X, 1e-9)

	require.True(t, e.CanStrike())
	dmg := e.Strike()
	assert.Equal(t, 1.0, dmg)
	assert.False(t, e.CanStrike())

	before := e.Bounds
	e.Update(target, 0.25)
	assert.Equal(t, before, e.Bounds, "paused after landing a hit")

	e.Update(target, 1)
	e.Update(target, 1)
	assert.True(t, e.CanStrike())
}

func TestEnemyTakeDamageFlashes(t *testing.T) {
	cfg := balance.Default()
	e := NewEnemy(cfg, TierNormal, 1, origin, neutral(cfg))
	e.TakeDamage(3)
	assert.Equal(t, 4.0, e.HP)
	assert.Greater(t, e.FlashTimer, 0.0)
	e.TakeDamage(100)
	assert.Equal(t, 0.0, e.HP)
	assert.False(t, e.Alive())
}

func TestBossStats(t *testing.T) {
	cfg := balance.Default()
	m := neutral(cfg)
	elite := NewEnemy(cfg, TierElite, 10, origin, m)
	b := NewBoss(cfg, 10, origin, m)

	assert.Equal(t, elite.MaxHP*5, b.MaxHP)
	assert.Equal(t, 1125.0, b.MaxHP)
	assert.Equal(t, 2.0, b.Damage)
	assert.Equal(t, 3.0, b.AttackCooldown)
	assert.Equal(t, 100.0, b.XP)
	assert.InDelta(t, elite.Bounds.W*2, b.Bounds.W, 1e-9)
	assert.InDelta(t, b.Bounds.W/2, b.AttackRange, 1e-9)
	assert.InDelta(t, origin.X, b.Bounds.Center().X, 1e-9)

	assert.Equal(t, 1.0, NewBoss(cfg, 4, origin, m).Damage)
	assert.Equal(t, 4.0, NewBoss(cfg, 20, origin, m).Damage)
}

func TestBossReach(t *testing.T) {
	cfg := balance.Default()
	b := NewBoss(cfg, 10, origin, neutral(cfg))
	assert.True(t, b.InReach(origin.Add(geom.Vec{X: b.AttackRange - 0.01})))
	assert.False(t, b.InReach(origin.Add(geom.Vec{X: b.AttackRange + 1})))

	var d Damageable = b
	d.TakeDamage(25)
	assert.Equal(t, 1100.0, b.HP)
}

func TestMageKeepsBand(t *testing.T) {
	cfg := balance.Default()
	player := origin
	reach := 150.0
	view := geom.Rect{X: -10000, Y: -10000, W: 1, H: 1}

	far := NewMage(cfg, player.Add(geom.Vec{X: 900}), neutral(cfg))
	far.Update(player, reach, view, 1)
	assert.InDelta(t, 900-80, geom.Dist(player, far.Bounds.Center()), 1e-9)

	near := NewMage(cfg, player.Add(geom.Vec{X: 200}), neutral(cfg))
	near.Update(player, reach, view, 1)
	assert.InDelta(t, 200+80, geom.Dist(player, near.Bounds.Center()), 1e-9)

	inBand := NewMage(cfg, player.Add(geom.Vec{X: 500}), neutral(cfg))
	inBand.Update(player, reach, view, 1)
	assert.InDelta(t, 500, geom.Dist(player, inBand.Bounds.Center()), 1e-9)

	edge := NewMage(cfg, player.Add(geom.Vec{X: 620}), neutral(cfg))
	edge.Update(player, reach, view, 1)
	assert.InDelta(t, 600, geom.Dist(player, edge.Bounds.Center()), 1e-9, "stops at the band edge")
}

func TestMageFiresOnlyOnScreen(t *testing.T) {
	cfg := balance.Default()
	player := geom.Vec{X: 2000, Y: 2000}
	pos := player.Add(geom.Vec{X: 500})
	offscreen := geom.Rect{X: 0, Y: 0, W: 100, H: 100}

	m := NewMage(cfg, pos, neutral(cfg))
	assert.False(t, m.Update(player, 150, offscreen, 0.1))
	assert.Empty(t, m.Projectiles)

	onscreen := geom.RectAt(player, 1200, 600)
	assert.True(t, m.Update(player, 150, onscreen, 0.1))
	require.Len(t, m.Projectiles, 1)

	fb := m.Projectiles[0]
	assert.InDelta(t, -300, fb.Vel.X, 1e-9)
	assert.InDelta(t, 0, fb.Vel.Y, 1e-9)
	assert.Equal(t, 2.0, fb.Damage)

	assert.False(t, m.Update(player, 150, onscreen, 1), "cooling down")
	assert.Len(t, m.Projectiles, 1)

	m.Update(player, 150, onscreen, 4)
	assert.Len(t, m.Projectiles, 2)
}

func TestProjectileExpiry(t *testing.T) {
	pc := balance.Default().Enemies.Mage.Projectile
	fb := NewProjectile(geom.Vec{X: 10, Y: 10}, geom.Vec{X: -100, Y: 10}, pc, 1)
	fb.Update(0.1)
	assert.True(t, fb.Expired(3200, 3200), "left the map")

	still := NewProjectile(origin, origin, pc, 1)
	assert.True(t, still.Vel.IsZero())
	still.Update(pc.Lifetime - 0.5)
	assert.False(t, still.Expired(3200, 3200))
	still.Update(1)
	assert.True(t, still.Expired(3200, 3200), "lifetime bounds a stuck projectile")

	hit := NewProjectile(origin, geom.Vec{}, pc, 1)
	hit.Hit = true
	assert.True(t, hit.Expired(3200, 3200))
}
