package sim

import (
	"math"

	"lasthuman/internal/balance"
	"lasthuman/internal/geom"
	"lasthuman/internal/input"
)

type Direction int

const (
	FacingDown Direction = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (d Direction) Vec() geom.Vec {
	switch d {
	case FacingUp:
		return geom.Vec{Y: -1}
	case FacingLeft:
		return geom.Vec{X: -1}
	case FacingRight:
		return geom.Vec{X: 1}
	default:
		return geom.Vec{Y: 1}
	}
}

// Angle is the facing in the same convention as geom.AngleTo.
func (d Direction) Angle() float64 {
	switch d {
	case FacingUp:
		return 90
	case FacingLeft:
		return 180
	case FacingRight:
		return 0
	default:
		return 270
	}
}

const walkFrames = 4

type Player struct {
	Box    geom.Rect
	Prev   geom.Rect // box before the last Update, for render interpolation
	Facing Direction
	Frame  int
	Moving bool

	HP        float64
	MaxHP     float64
	RegenRate float64
	Speed     float64

	AttackRange     float64
	AttackAngle     float64
	AttackCooldown  float64
	AttackTimer     float64
	AttackDamage    float64
	Attacking       bool
	LastAttackAngle float64

	DashCooldown float64
	DashTimer    float64
	DashDuration float64
	DashTimeLeft float64
	DashSpeed    float64
	DashDir      geom.Vec

	ScreamCooldown     float64
	ScreamTimer        float64
	ScreamDamage       float64
	ScreamRange        float64
	ScreamSlowDuration float64
	ScreamHalfAngle    float64
	ScreamAngle        float64
	ShowScreamCone     bool

	XP          int
	Level       int
	NextLevelXP int
	XPBonus     float64
	NewLevel    bool

	MagnetActive   bool
	MagnetTimer    float64
	MagnetDuration float64

	animTimer    float64
	animInterval float64
	attackVisual float64
	attackLeft   float64
	coneDisplay  float64
	coneLeft     float64
	contactInset float64
	mapW, mapH   float64
	prog         balance.ProgressionConfig
	upgrades     balance.UpgradesConfig
	stacks       map[Upgrade]int
}

// NewPlayer builds a level-1 player centred at pos. damageMult is the
// difficulty's player damage multiplier.
func NewPlayer(cfg balance.Config, pos geom.Vec, damageMult float64) *Player {
	pc := cfg.Player
	box := geom.RectAt(pos, pc.Width, pc.Height)
	return &Player{
		Box:                box,
		Prev:               box,
		Facing:             FacingDown,
		HP:                 pc.MaxHP,
		MaxHP:              pc.MaxHP,
		RegenRate:          pc.RegenRate,
		Speed:              pc.Speed,
		AttackRange:        pc.AttackRange,
		AttackAngle:        pc.AttackAngle,
		AttackCooldown:     pc.AttackCooldown,
		AttackDamage:       pc.AttackDamage * damageMult,
		DashCooldown:       pc.Dash.Cooldown,
		DashDuration:       pc.Dash.Duration,
		DashSpeed:          pc.Dash.Speed,
		ScreamCooldown:     pc.Scream.Cooldown,
		ScreamDamage:       pc.Scream.Damage * damageMult,
		ScreamRange:        pc.AttackRange * pc.Scream.RangeMultiplier,
		ScreamSlowDuration: pc.Scream.SlowDuration,
		ScreamHalfAngle:    pc.Scream.ConeHalfAngle,
		Level:              1,
		NextLevelXP:        cfg.Progression.FirstLevelXP,
		MagnetDuration:     pc.MagnetDuration,
		animInterval:       pc.AnimInterval,
		attackVisual:       pc.AttackVisual,
		coneDisplay:        pc.Scream.ConeDisplay,
		contactInset:       pc.ContactInset,
		mapW:               cfg.World.MapWidth,
		mapH:               cfg.World.MapHeight,
		prog:               cfg.Progression,
		upgrades:           cfg.Upgrades,
		stacks:             make(map[Upgrade]int),
	}
}

func (p *Player) Center() geom.Vec { return p.Box.Center() }

// Hurtbox is the inset box enemies must touch to deal contact damage.
func (p *Player) Hurtbox() geom.Rect { return p.Box.Inset(p.contactInset) }

func (p *Player) Alive() bool { return p.HP > 0 }

func (p *Player) HealthRatio() float64 { return p.HP / p.MaxHP }

// Update advances timers and resolves one of: an ongoing dash, a dash
// trigger, or normal movement. It reports whether a dash was triggered.
func (p *Player) Update(in input.State, dt float64) (dashed bool) {
	p.Prev = p.Box
	p.HP = math.Min(p.HP+p.RegenRate*dt, p.MaxHP)

	if p.MagnetActive {
		countdown(&p.MagnetTimer, dt)
		if p.MagnetTimer == 0 {
			p.MagnetActive = false
		}
	}

	p.AttackTimer = math.Min(p.AttackTimer+dt, p.AttackCooldown)
	if p.Attacking {
		p.attackLeft -= dt
		if p.attackLeft <= 0 {
			p.Attacking = false
		}
	}
	countdown(&p.DashTimer, dt)
	countdown(&p.ScreamTimer, dt)
	if p.ShowScreamCone {
		p.coneLeft -= dt
		if p.coneLeft <= 0 {
			p.ShowScreamCone = false
		}
	}

	if p.DashTimeLeft > 0 {
		step := math.Min(dt, p.DashTimeLeft)
		p.DashTimeLeft -= step
		if p.DashTimeLeft < 1e-9 {
			p.DashTimeLeft = 0
		}
		p.Box = p.Box.Translate(p.DashDir.Scale(p.DashSpeed * step)).ClampInto(p.mapW, p.mapH)
		return false
	}

	var move geom.Vec
	if in.Held(input.MoveUp) {
		move.Y--
	}
	if in.Held(input.MoveDown) {
		move.Y++
	}
	if in.Held(input.MoveLeft) {
		move.X--
	}
	if in.Held(input.MoveRight) {
		move.X++
	}
	dir, moving := move.Normalize()

	if in.Held(input.Dash) && p.DashTimer <= 0 {
		if !moving {
			dir = p.Facing.Vec()
		}
		p.DashDir = dir
		p.DashTimeLeft = p.DashDuration
		p.DashTimer = p.DashCooldown
		return true
	}

	switch {
	case move.Y < 0:
		p.Facing = FacingUp
	case move.Y > 0:
		p.Facing = FacingDown
	case move.X < 0:
		p.Facing = FacingLeft
	case move.X > 0:
		p.Facing = FacingRight
	}

	p.Moving = moving
	if moving {
		p.animTimer += dt
		if p.animTimer >= p.animInterval {
			p.animTimer -= p.animInterval
			p.Frame = (p.Frame + 1) % walkFrames
		}
	} else {
		p.Frame = 0
		p.animTimer = 0
	}

	p.Box = p.Box.Translate(dir.Scale(p.Speed * dt)).ClampInto(p.mapW, p.mapH)
	return false
}

// aimAngle is the direction toward aim, or the facing when aim sits on the
// player's centre.
func (p *Player) aimAngle(aim geom.Vec) float64 {
	if a, ok := geom.AngleTo(p.Center(), aim); ok {
		return a
	}
	return p.Facing.Angle()
}

// Attack swings at every target inside the attack cone. It does nothing
// while on cooldown and reports whether the swing happened and how many
// targets it hit.
func (p *Player) Attack(targets []Damageable, aim geom.Vec) (fired bool, hits int) {
	if p.AttackTimer < p.AttackCooldown {
		return false, 0
	}
	p.AttackTimer = 0
	p.Attacking = true
	p.attackLeft = p.attackVisual

	c := p.Center()
	angle := p.aimAngle(aim)
	p.LastAttackAngle = angle
	half := p.AttackAngle / 2
	for _, t := range targets {
		if !t.Alive() {
			continue
		}
		tb := t.Box()
		tc := tb.Center()
		if geom.Dist(c, tc)-tb.W/2 > p.AttackRange {
			continue
		}
		if a, ok := geom.AngleTo(c, tc); ok && !geom.InCone(angle, a, half) {
			continue
		}
		t.TakeDamage(p.AttackDamage)
		hits++
	}
	return true, hits
}

// Scream damages and slows every target of both lists inside the scream
// cone. Its cone is fixed and independent of AttackAngle.
func (p *Player) Scream(melee, ranged []Slowable, aim geom.Vec) (fired bool, hits int) {
	if p.ScreamTimer > 0 {
		return false, 0
	}
	p.ScreamTimer = p.ScreamCooldown
	p.ShowScreamCone = true
	p.coneLeft = p.coneDisplay

	c := p.Center()
	angle := p.aimAngle(aim)
	p.ScreamAngle = angle
	for _, list := range [][]Slowable{melee, ranged} {
		for _, t := range list {
			if !t.Alive() {
				continue
			}
			tc := t.Box().Center()
			if geom.Dist(c, tc) > p.ScreamRange {
				continue
			}
			if a, ok := geom.AngleTo(c, tc); ok && !geom.InCone(angle, a, p.ScreamHalfAngle) {
				continue
			}
			t.TakeDamage(p.ScreamDamage)
			t.Slow(p.ScreamSlowDuration)
			hits++
		}
	}
	return true, hits
}

func (p *Player) TakeDamage(amount float64) {
	p.HP = geom.Clamp(p.HP-amount, 0, p.MaxHP)
}

// GainXP adds amount scaled by the xp bonus and folds the total into as many
// levels as it covers. It returns the number of levels gained.
func (p *Player) GainXP(amount float64) int {
	p.XP += int(amount * (1 + p.XPBonus))
	gained := 0
	for p.XP >= p.NextLevelXP {
		p.XP -= p.NextLevelXP
		p.levelUp()
		gained++
	}
	return gained
}

func (p *Player) levelUp() {
	p.Level++
	p.NextLevelXP = int(float64(p.NextLevelXP) * p.prog.LevelXPMultiplier)
	p.AttackDamage += p.prog.DamagePerLevel
	p.MaxHP += p.prog.MaxHPPerLevel
	p.HP = math.Min(p.HP+p.prog.MaxHPPerLevel+p.prog.HealPerLevel, p.MaxHP)
	p.NewLevel = true
}

// ConsumeLevelUp reports a pending level-up once and clears it.
func (p *Player) ConsumeLevelUp() bool {
	if !p.NewLevel {
		return false
	}
	p.NewLevel = false
	return true
}

// ApplyMagnet starts (or restarts) the magnet bonus.
func (p *Player) ApplyMagnet() {
	p.MagnetActive = true
	p.MagnetTimer = p.MagnetDuration
}

// MagnetElapsed is how long the current magnet has been running.
func (p *Player) MagnetElapsed() float64 {
	if !p.MagnetActive {
		return 0
	}
	return p.MagnetDuration - p.MagnetTimer
}

// DashReady is the dash cooldown progress in [0,1] for the HUD.
func (p *Player) DashReady() float64 {
	if p.DashTimer <= 0 || p.DashCooldown <= 0 {
		return 1
	}
	return geom.Clamp(1-p.DashTimer/p.DashCooldown, 0, 1)
}

// ScreamReady is the scream cooldown progress in [0,1] for the HUD.
func (p *Player) ScreamReady() float64 {
	if p.ScreamTimer <= 0 || p.ScreamCooldown <= 0 {
		return 1
	}
	return geom.Clamp(1-p.ScreamTimer/p.ScreamCooldown, 0, 1)
}
