package sim

import (
	"math"

	"lasthuman/internal/balance"
	"lasthuman/internal/geom"
)

// Projectile flies in a straight line at the velocity fixed when it was
// fired.
type Projectile struct {
	Bounds geom.Rect
	Prev   geom.Rect
	Vel    geom.Vec
	Damage float64
	Hit    bool

	age, lifetime float64
}

func NewProjectile(from, to geom.Vec, pc balance.ProjectileConfig, damageMult float64) *Projectile {
	dir, ok := to.Sub(from).Normalize()
	if !ok {
		dir = geom.Vec{}
	}
	box := geom.RectAt(from, pc.Size, pc.Size)
	return &Projectile{
		Bounds:   box,
		Prev:     box,
		Vel:      dir.Scale(pc.Speed),
		Damage:   pc.Damage * damageMult,
		lifetime: pc.Lifetime,
	}
}

func (p *Projectile) Update(dt float64) {
	p.Prev = p.Bounds
	p.Bounds = p.Bounds.Translate(p.Vel.Scale(dt))
	p.age += dt
}

// Expired reports a projectile that hit, left the map entirely or outlived
// its lifetime.
func (p *Projectile) Expired(mapW, mapH float64) bool {
	b := p.Bounds
	out := b.Right() < 0 || b.X > mapW || b.Bottom() < 0 || b.Y > mapH
	return p.Hit || out || (p.lifetime > 0 && p.age >= p.lifetime)
}

// Mage is a ranged goblin that keeps a distance band around the player and
// fires only while it is on screen.
type Mage struct {
	Bounds geom.Rect
	Prev   geom.Rect

	HP         float64
	MaxHP      float64
	Speed      float64
	XP         float64
	FireTimer  float64
	FlashTimer float64
	SlowTimer  float64

	Projectiles []*Projectile

	cfg           balance.MageConfig
	damageMult    float64
	slowFactor    float64
	flashDuration float64
	mapW, mapH    float64
}

func NewMage(cfg balance.Config, pos geom.Vec, m balance.Multipliers) *Mage {
	mc := cfg.Enemies.Mage
	box := geom.RectAt(pos, mc.Size, mc.Size)
	hp := mc.HP * m.EnemyHP
	return &Mage{
		Bounds:        box,
		Prev:          box,
		HP:            hp,
		MaxHP:         hp,
		Speed:         mc.Speed,
		XP:            mc.XP * m.XP,
		cfg:           mc,
		damageMult:    m.EnemyDamage,
		slowFactor:    cfg.Enemies.Goblin.SlowFactor,
		flashDuration: cfg.Enemies.Goblin.FlashDuration,
		mapW:          cfg.World.MapWidth,
		mapH:          cfg.World.MapHeight,
	}
}

func (m *Mage) Box() geom.Rect { return m.Bounds }

func (m *Mage) Alive() bool { return m.HP > 0 }

func (m *Mage) HealthRatio() float64 { return math.Max(0, m.HP) / m.MaxHP }

func (m *Mage) TakeDamage(amount float64) {
	m.HP = math.Max(0, m.HP-amount)
	m.FlashTimer = m.flashDuration
}

func (m *Mage) Slow(seconds float64) { m.SlowTimer = seconds }

// Update moves the mage into its band around the player, fires when it is
// visible in view and advances its projectiles. playerRange is the player's
// current melee range.
func (m *Mage) Update(player geom.Vec, playerRange float64, view geom.Rect, dt float64) (fired bool) {
	m.Prev = m.Bounds
	factor := 1.0
	if m.SlowTimer > 0 {
		factor = m.slowFactor
	}
	countdown(&m.FireTimer, dt)
	countdown(&m.FlashTimer, dt)
	countdown(&m.SlowTimer, dt)

	c := m.Bounds.Center()
	dist := geom.Dist(c, player)
	step := m.Speed * factor * dt
	if dir, ok := player.Sub(c).Normalize(); ok {
		switch {
		case dist > playerRange*m.cfg.BandMax:
			m.Bounds = m.Bounds.Translate(dir.Scale(math.Min(step, dist-playerRange*m.cfg.BandMax)))
		case dist < playerRange*m.cfg.BandMin:
			m.Bounds = m.Bounds.Translate(dir.Scale(-step))
		}
	}
	m.Bounds = m.Bounds.ClampInto(m.mapW, m.mapH)

	if m.FireTimer <= 0 && m.Bounds.Overlaps(view) {
		m.FireTimer = m.cfg.FireCooldown
		m.Projectiles = append(m.Projectiles, NewProjectile(m.Bounds.Center(), player, m.cfg.Projectile, m.damageMult))
		fired = true
	}

	for _, p := range m.Projectiles {
		p.Update(dt)
	}
	m.pruneProjectiles()
	return fired
}

func (m *Mage) pruneProjectiles() {
	live := m.Projectiles[:0]
	for _, p := range m.Projectiles {
		if !p.Expired(m.mapW, m.mapH) {
			live = append(live, p)
		}
	}
	clear(m.Projectiles[len(live):])
	m.Projectiles = live
}
