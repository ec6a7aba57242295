package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lasthuman/internal/balance"
	"lasthuman/internal/geom"
	"lasthuman/internal/input"
)

// Stats summarises a run for the game-over screen and the headless runner.
type Stats struct {
	Kills          int
	BossesDefeated int
	Level          int
	Survival       float64
	DamageTaken    float64
	XPCollected    float64
}

// World owns every live entity of one run and advances them together.
type World struct {
	RunID uuid.UUID

	Player  *Player
	Enemies []*Enemy
	Mages   []*Mage
	Bosses  []*Boss
	Orbs    []*Orb
	Bonus   *Bonus

	Elapsed    float64
	Over       bool
	AutoAttack bool

	cfg       balance.Config
	mult      balance.Multipliers
	rng       *rand.Rand
	sink      EventSink
	baseLog   *zap.Logger
	log       *zap.Logger
	clock     *FixedStep
	spawner   Spawner
	bonusWait float64
	stats     Stats
	targets   []Damageable
	slowables []Slowable
	ranged    []Slowable
	boxes     []*geom.Rect
}

type Option func(*World)

func WithLogger(l *zap.Logger) Option { return func(w *World) { w.baseLog = l } }

func WithSink(s EventSink) Option { return func(w *World) { w.sink = s } }

func WithRand(r *rand.Rand) Option { return func(w *World) { w.rng = r } }

func WithAutoAttack(on bool) Option { return func(w *World) { w.AutoAttack = on } }

func NewWorld(cfg balance.Config, mult balance.Multipliers, opts ...Option) *World {
	w := &World{
		cfg:     cfg,
		mult:    mult,
		sink:    nopSink{},
		baseLog: zap.NewNop(),
	}
	for _, o := range opts {
		o(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w.Reset()
	return w
}

// Reset starts a fresh run with a new player in the middle of the map.
func (w *World) Reset() {
	w.RunID = uuid.New()
	w.log = w.baseLog.With(zap.Stringer("run", w.RunID))
	mid := geom.Vec{X: w.cfg.World.MapWidth / 2, Y: w.cfg.World.MapHeight / 2}
	w.Player = NewPlayer(w.cfg, mid, w.mult.PlayerDamage)
	w.Enemies = nil
	w.Mages = nil
	w.Bosses = nil
	w.Orbs = nil
	w.Bonus = nil
	w.Elapsed = 0
	w.Over = false
	w.clock = NewFixedStep(w.cfg.World.FixedStep, w.cfg.World.MaxBacklog)
	w.spawner = Spawner{}
	w.bonusWait = 0
	w.stats = Stats{Level: 1}
	w.log.Info("run started")
}

// Reconfigure swaps the tunables. Entities already alive keep their
// frozen stats; only later spawns see the new values.
func (w *World) Reconfigure(cfg balance.Config, mult balance.Multipliers) {
	w.cfg = cfg
	w.mult = mult
	w.clock.Step = cfg.World.FixedStep
	w.clock.MaxBacklog = cfg.World.MaxBacklog
	w.log.Info("balance applied to run")
}

func (w *World) Config() balance.Config { return w.cfg }

func (w *World) Stats() Stats {
	s := w.stats
	s.Level = w.Player.Level
	s.Survival = w.Elapsed
	return s
}

// View is the camera rectangle around the player.
func (w *World) View() geom.Rect {
	wc := w.cfg.World
	return Viewport(w.Player.Center(), wc.ViewWidth, wc.ViewHeight, wc.MapWidth, wc.MapHeight)
}

// Advance feeds real elapsed seconds through the fixed-step clock.
func (w *World) Advance(real float64, in input.State) int {
	return w.clock.Advance(real, func(dt float64) { w.Step(in, dt) })
}

// Alpha is the interpolation factor between the previous and current step.
func (w *World) Alpha() float64 { return w.clock.Alpha() }

func (w *World) emit(kind EventKind, pos geom.Vec, value float64) {
	w.sink.Emit(Event{Kind: kind, Pos: pos, Value: value})
}

// Live is the number of hostiles counted against the spawn cap.
func (w *World) Live() int { return len(w.Enemies) + len(w.Mages) + len(w.Bosses) }

// Step advances the run by dt seconds.
func (w *World) Step(in input.State, dt float64) {
	if w.Over {
		return
	}
	w.Elapsed += dt
	p := w.Player

	if p.Update(in, dt) {
		w.emit(DashStarted, p.Center(), 0)
	}
	view := w.View()

	w.resolveAttacks(in)
	w.spawn(dt, view)

	pc := p.Center()
	for _, e := range w.Enemies {
		e.Update(pc, dt)
	}
	for _, m := range w.Mages {
		m.Update(pc, p.AttackRange, view, dt)
	}
	for _, b := range w.Bosses {
		b.Update(pc, dt)
	}

	w.boxes = w.boxes[:0]
	for _, e := range w.Enemies {
		w.boxes = append(w.boxes, &e.Bounds)
	}
	for _, m := range w.Mages {
		w.boxes = append(w.boxes, &m.Bounds)
	}
	Separate(w.boxes)

	w.resolveContacts()
	w.resolveDeaths()
	w.collectOrbs(dt)
	w.collectBonus(dt)

	if !p.Alive() {
		w.Over = true
		w.emit(GameOver, p.Center(), w.Elapsed)
		st := w.Stats()
		w.log.Info("game over",
			zap.Float64("survival", st.Survival),
			zap.Int("level", st.Level),
			zap.Int("kills", st.Kills),
			zap.Int("bosses", st.BossesDefeated))
	}
}

func (w *World) resolveAttacks(in input.State) {
	p := w.Player
	w.targets = w.targets[:0]
	for _, e := range w.Enemies {
		w.targets = append(w.targets, e)
	}
	for _, m := range w.Mages {
		w.targets = append(w.targets, m)
	}
	for _, b := range w.Bosses {
		w.targets = append(w.targets, b)
	}

	aim, haveAim := in.Aim()
	swing := false
	if w.AutoAttack {
		if t, ok := nearest(p.Center(), w.targets); ok {
			aim, swing = t.Box().Center(), true
		}
	}
	// with nothing to auto-target, a held attack still swings toward the aim
	if !swing && in.Held(input.Attack) {
		if !haveAim {
			aim = p.Center()
		}
		swing = true
	}
	if swing {
		if fired, hits := p.Attack(w.targets, aim); fired {
			w.emit(AttackFired, p.Center(), float64(hits))
		}
	}

	if in.Held(input.Scream) {
		if !haveAim {
			aim = p.Center()
		}
		w.slowables = w.slowables[:0]
		for _, e := range w.Enemies {
			w.slowables = append(w.slowables, e)
		}
		w.ranged = w.ranged[:0]
		for _, m := range w.Mages {
			w.ranged = append(w.ranged, m)
		}
		if fired, hits := p.Scream(w.slowables, w.ranged, aim); fired {
			w.emit(ScreamFired, p.Center(), float64(hits))
		}
	}
}

func nearest(from geom.Vec, targets []Damageable) (Damageable, bool) {
	var best Damageable
	bestDist := math.Inf(1)
	for _, t := range targets {
		if !t.Alive() {
			continue
		}
		if d := geom.Dist(from, t.Box().Center()); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, best != nil
}

func (w *World) spawn(dt float64, view geom.Rect) {
	s := ComputeScaling(w.cfg, w.Player.Level, w.Elapsed, w.mult.SpawnRate)
	if !w.spawner.Due(s.Interval, dt) {
		return
	}
	if w.Live() >= s.Cap {
		return
	}
	pos := EdgePoint(w.rng, view, w.cfg.Spawning.EdgeMargin)
	if w.rng.Float64() < w.cfg.Spawning.MageSpawnChance {
		w.Mages = append(w.Mages, NewMage(w.cfg, pos, w.mult))
		return
	}
	tier := s.RollTier(w.rng.Float64())
	w.Enemies = append(w.Enemies, NewEnemy(w.cfg, tier, w.Player.Level, pos, w.mult))
}

// spawnBoss places the boss for level away from the player.
func (w *World) spawnBoss(level int) {
	bc := w.cfg.Enemies.Boss
	wc := w.cfg.World
	pos := PlaceBoss(w.rng, wc.MapWidth, wc.MapHeight, w.Player.Center(), bc.SafeDistance, bc.PlacementAttempts)
	b := NewBoss(w.cfg, level, pos, w.mult)
	w.Bosses = append(w.Bosses, b)
	w.emit(BossSpawned, pos, float64(level))
	w.log.Info("boss spawned",
		zap.Int("level", level),
		zap.Float64("hp", b.MaxHP),
		zap.Float64("distance", geom.Dist(pos, w.Player.Center())))
}

// GrantXP credits the player and runs every level-up consequence: events,
// logs and the boss rule for each level crossed.
func (w *World) GrantXP(amount float64) {
	p := w.Player
	from := p.Level
	gained := p.GainXP(amount)
	w.stats.XPCollected += amount
	for lvl := from + 1; lvl <= from+gained; lvl++ {
		w.emit(LevelUp, p.Center(), float64(lvl))
		w.log.Debug("level up", zap.Int("level", lvl), zap.Int("next_xp", p.NextLevelXP))
		if every := w.cfg.Enemies.Boss.Every; every > 0 && lvl%every == 0 {
			w.spawnBoss(lvl)
		}
	}
}

func (w *World) hurtPlayer(amount float64) {
	p := w.Player
	before := p.HP
	p.TakeDamage(amount)
	w.stats.DamageTaken += before - p.HP
	w.emit(PlayerHit, p.Center(), amount)
}

func (w *World) resolveContacts() {
	p := w.Player
	hurt := p.Hurtbox()
	for _, e := range w.Enemies {
		if e.Alive() && e.CanStrike() && e.Bounds.Overlaps(hurt) {
			w.hurtPlayer(e.Strike())
		}
	}
	pc := p.Center()
	for _, b := range w.Bosses {
		if b.Alive() && b.CanStrike() && b.InReach(pc) {
			w.hurtPlayer(b.Strike())
		}
	}
	for _, m := range w.Mages {
		for _, fb := range m.Projectiles {
			if !fb.Hit && fb.Bounds.Overlaps(p.Box) {
				fb.Hit = true
				w.hurtPlayer(fb.Damage)
			}
		}
		m.pruneProjectiles()
	}
}

func (w *World) drop(pos geom.Vec, xp float64) {
	w.Orbs = append(w.Orbs, NewOrb(pos, xp, w.cfg.Orbs))
}

func (w *World) resolveDeaths() {
	pc := w.Player.Center()
	wc := w.cfg.World
	despawn := math.Max(wc.ViewWidth, wc.ViewHeight) * w.cfg.Spawning.DespawnFactor

	live := w.Enemies[:0]
	for _, e := range w.Enemies {
		c := e.Bounds.Center()
		switch {
		case !e.Alive():
			w.stats.Kills++
			w.drop(c, e.XP)
			w.emit(EnemyKilled, c, e.XP)
		case geom.Dist(c, pc) > despawn:
			// strayed too far behind; dropped without a reward
		default:
			live = append(live, e)
		}
	}
	clear(w.Enemies[len(live):])
	w.Enemies = live

	mages := w.Mages[:0]
	for _, m := range w.Mages {
		if m.Alive() {
			mages = append(mages, m)
			continue
		}
		c := m.Bounds.Center()
		w.stats.Kills++
		w.drop(c, m.XP)
		w.emit(EnemyKilled, c, m.XP)
	}
	clear(w.Mages[len(mages):])
	w.Mages = mages

	bosses := w.Bosses[:0]
	for _, b := range w.Bosses {
		if b.Alive() {
			bosses = append(bosses, b)
			continue
		}
		c := b.Bounds.Center()
		w.stats.Kills++
		w.stats.BossesDefeated++
		w.drop(c, b.XP)
		w.emit(EnemyKilled, c, b.XP)
		w.log.Info("boss defeated", zap.Int("level", b.Level))
	}
	clear(w.Bosses[len(bosses):])
	w.Bosses = bosses
}

func (w *World) collectOrbs(dt float64) {
	p := w.Player
	pc := p.Center()
	live := w.Orbs[:0]
	for _, o := range w.Orbs {
		o.Boost(p.MagnetActive, p.MagnetElapsed(), p.MagnetDuration)
		o.Update(pc, dt)
		if o.Bounds.Overlaps(p.Box) {
			w.emit(OrbPickup, o.Bounds.Center(), o.Value)
			w.GrantXP(o.Value)
			continue
		}
		live = append(live, o)
	}
	clear(w.Orbs[len(live):])
	w.Orbs = live
}

func (w *World) collectBonus(dt float64) {
	p := w.Player
	if w.Bonus == nil {
		w.bonusWait += dt
		if w.bonusWait < w.cfg.Bonus.RespawnDelay {
			return
		}
		spots := BonusSpots(w.cfg)
		at := spots[w.rng.Intn(len(spots))]
		w.Bonus = &Bonus{Bounds: geom.Rect{X: at.X, Y: at.Y, W: w.cfg.Bonus.Size, H: w.cfg.Bonus.Size}, Kind: BonusMagnet}
		return
	}
	if !w.Bonus.Bounds.Overlaps(p.Box) {
		return
	}
	p.ApplyMagnet()
	w.emit(BonusPickup, w.Bonus.Bounds.Center(), p.MagnetDuration)
	w.log.Debug("bonus picked up", zap.Stringer("kind", w.Bonus.Kind))
	w.Bonus = nil
	w.bonusWait = 0
}

// OfferUpgrades draws up to n distinct upgrades for the level-up menu.
func (w *World) OfferUpgrades(n int) []Upgrade {
	return w.Player.OfferUpgrades(w.rng, n)
}

// ChooseUpgrade applies u to the player.
func (w *World) ChooseUpgrade(u Upgrade) bool {
	ok := w.Player.ApplyUpgrade(u)
	w.log.Debug("upgrade chosen", zap.Stringer("upgrade", u), zap.Bool("applied", ok))
	return ok
}
