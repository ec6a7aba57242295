package sim

import (
	"math"

	"lasthuman/internal/balance"
	"lasthuman/internal/geom"
)

// Enemy is a melee goblin. Its stats are computed once from the player's
// level at spawn and never rescaled afterwards.
type Enemy struct {
	Bounds geom.Rect
	Prev   geom.Rect
	Tier   Tier

	HP     float64
	MaxHP  float64
	Speed  float64
	Damage float64
	XP     float64

	AttackCooldown float64
	AttackTimer    float64
	PauseTimer     float64
	FlashTimer     float64
	SlowTimer      float64
	FacingLeft     bool

	pauseDuration float64
	pauseFactor   float64
	slowFactor    float64
	flashDuration float64
	mapW, mapH    float64
}

func tierStats(t balance.TiersConfig, tier Tier) balance.TierConfig {
	switch tier {
	case TierRare:
		return t.Rare
	case TierElite:
		return t.Elite
	default:
		return t.Normal
	}
}

// NewEnemy spawns a goblin of the given tier centred at pos.
func NewEnemy(cfg balance.Config, tier Tier, level int, pos geom.Vec, m balance.Multipliers) *Enemy {
	g := cfg.Enemies.Goblin
	ts := tierStats(g.Tiers, tier)
	size := g.Size * ts.SizeScale
	box := geom.RectAt(pos, size, size)
	hp := math.Trunc((g.BaseHP+float64(level)*g.HPPerLevel)*ts.HPMultiplier) * m.EnemyHP
	return &Enemy{
		Bounds:         box,
		Prev:           box,
		Tier:           tier,
		HP:             hp,
		MaxHP:          hp,
		Speed:          g.BaseSpeed + float64(level)*g.SpeedPerLevel,
		Damage:         g.Damage * m.EnemyDamage,
		XP:             ts.XP * m.XP,
		AttackCooldown: g.AttackCooldown,
		pauseDuration:  g.PauseDuration,
		pauseFactor:    g.PauseFactor,
		slowFactor:     g.SlowFactor,
		flashDuration:  g.FlashDuration,
		mapW:           cfg.World.MapWidth,
		mapH:           cfg.World.MapHeight,
	}
}

func (e *Enemy) Box() geom.Rect { return e.Bounds }

func (e *Enemy) Alive() bool { return e.HP > 0 }

func (e *Enemy) HealthRatio() float64 { return math.Max(0, e.HP) / e.MaxHP }

func (e *Enemy) TakeDamage(amount float64) {
	e.HP = math.Max(0, e.HP-amount)
	e.FlashTimer = e.flashDuration
}

func (e *Enemy) Slow(seconds float64) { e.SlowTimer = seconds }

// SpeedFactor is the multiplier currently applied to Speed. A pause
// overrides a slow.
func (e *Enemy) SpeedFactor() float64 {
	switch {
	case e.PauseTimer > 0:
		return e.pauseFactor
	case e.SlowTimer > 0:
		return e.slowFactor
	}
	return 1
}

// Update steers toward target.
func (e *Enemy) Update(target geom.Vec, dt float64) {
	e.Prev = e.Bounds
	factor := e.SpeedFactor()
	countdown(&e.AttackTimer, dt)
	countdown(&e.PauseTimer, dt)
	countdown(&e.FlashTimer, dt)
	countdown(&e.SlowTimer, dt)

	box, dir, ok := stepToward(e.Bounds, target, e.Speed*factor*dt)
	if ok {
		e.FacingLeft = dir.X < 0
	}
	e.Bounds = box.ClampInto(e.mapW, e.mapH)
}

func (e *Enemy) CanStrike() bool { return e.AttackTimer <= 0 }

// Strike starts the attack cooldown and the post-hit pause, and returns the
// damage dealt.
func (e *Enemy) Strike() float64 {
	e.AttackTimer = e.AttackCooldown
	e.PauseTimer = e.pauseDuration
	return e.Damage
}

// Boss is an elite goblin with a much larger health pool that hits from a
// distance proportional to its own size.
type Boss struct {
	Enemy
	AttackRange float64
	Level       int
}

// NewBoss builds the boss for the given player level centred at pos.
func NewBoss(cfg balance.Config, level int, pos geom.Vec, m balance.Multipliers) *Boss {
	bc := cfg.Enemies.Boss
	g := cfg.Enemies.Goblin
	e := NewEnemy(cfg, TierElite, level, pos, m)
	size := e.Bounds.W * bc.SizeScale
	e.Bounds = geom.RectAt(pos, size, size)
	e.Prev = e.Bounds
	e.MaxHP = math.Trunc(e.MaxHP * bc.HPMultiplier)
	e.HP = e.MaxHP
	e.Speed = bc.BaseSpeed + float64(level)*g.SpeedPerLevel
	e.Damage = float64(max(1, level/bc.LevelsPerDamage)) * m.EnemyDamage
	e.AttackCooldown = bc.AttackCooldown
	e.XP = float64(level) * bc.XPPerLevel * m.XP
	e.pauseDuration = 0
	return &Boss{
		Enemy:       *e,
		AttackRange: math.Max(e.Bounds.W, e.Bounds.H) * 0.5,
		Level:       level,
	}
}

// InReach reports whether the player's centre is within striking distance.
func (b *Boss) InReach(p geom.Vec) bool {
	return geom.Dist(b.Bounds.Center(), p) <= b.AttackRange
}
