package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lasthuman/internal/balance"
	"lasthuman/internal/geom"
	"lasthuman/internal/input"
)

type dummy struct {
	box    geom.Rect
	hp     float64
	slowed float64
}

func (d *dummy) Box() geom.Rect            { return d.box }
func (d *dummy) Alive() bool               { return d.hp > 0 }
func (d *dummy) TakeDamage(amount float64) { d.hp -= amount }
func (d *dummy) Slow(seconds float64)      { d.slowed = seconds }

func newTestPlayer(t *testing.T, mutate func(*balance.Config)) *Player {
	t.Helper()
	cfg := balance.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewPlayer(cfg, geom.Vec{X: 1600, Y: 1600}, 1)
}

// dummyAt places a small target at angle degrees and dist pixels from p.
func dummyAt(p *Player, angle, dist float64) *dummy {
	c := p.Center().Add(geom.DirFromAngle(angle).Scale(dist))
	return &dummy{box: geom.RectAt(c, 10, 10), hp: 100}
}

func held(actions ...input.Action) *input.Snapshot {
	var s input.Snapshot
	for _, a := range actions {
		s.Set(a, true)
	}
	return &s
}

func TestDiagonalMovementIsNormalized(t *testing.T) {
	p := newTestPlayer(t, func(c *balance.Config) { c.Player.Speed = 100 })
	start := p.Center()

	p.Update(held(input.MoveUp, input.MoveRight), 1.0)

	moved := geom.Dist(start, p.Center())
	assert.InDelta(t, 100.0, moved, 1.0)
	assert.Less(t, p.Center().Y, start.Y)
	assert.Greater(t, p.Center().X, start.X)
}

func TestFacingPrefersVertical(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.Update(held(input.MoveUp, input.MoveLeft), 0.01)
	assert.Equal(t, FacingUp, p.Facing)

	p.Update(held(input.MoveLeft), 0.01)
	assert.Equal(t, FacingLeft, p.Facing)

	p.Update(held(input.MoveDown, input.MoveRight), 0.01)
	assert.Equal(t, FacingDown, p.Facing)
}

func TestWalkAnimationOnlyWhileMoving(t *testing.T) {
	p := newTestPlayer(t, nil)
	for i := 0; i < 3; i++ {
		p.Update(held(input.MoveRight), 0.21)
	}
	assert.Equal(t, 3, p.Frame)
	p.Update(held(input.MoveRight), 0.21)
	assert.Equal(t, 0, p.Frame, "four phases wrap around")

	p.Update(held(input.MoveRight), 0.21)
	p.Update(&input.Snapshot{}, 0.21)
	assert.Equal(t, 0, p.Frame)
	assert.False(t, p.Moving)
}

func TestMovementClampedToMap(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.Box = geom.Rect{X: 5, Y: 5, W: p.Box.W, H: p.Box.H}
	p.Update(held(input.MoveUp, input.MoveLeft), 1)
	assert.Equal(t, 0.0, p.Box.X)
	assert.Equal(t, 0.0, p.Box.Y)
}

func TestAttackConeBoundary(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.AttackTimer = p.AttackCooldown
	aim := p.Center().Add(geom.Vec{X: 200})

	edge := dummyAt(p, 45, 100)
	outside := dummyAt(p, 46, 100)
	below := dummyAt(p, -45, 100)

	fired, hits := p.Attack([]Damageable{edge, outside, below}, aim)
	require.True(t, fired)
	assert.Equal(t, 2, hits)
	assert.Less(t, edge.hp, 100.0)
	assert.Less(t, below.hp, 100.0)
	assert.Equal(t, 100.0, outside.hp)
}

func TestAttackConeAcrossZeroDegrees(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.AttackTimer = p.AttackCooldown
	aim := p.Center().Add(geom.DirFromAngle(350).Scale(200))
	target := dummyAt(p, 20, 100)

	_, hits := p.Attack([]Damageable{target}, aim)
	assert.Equal(t, 1, hits)
}

func TestAttackRangeSubtractsTargetRadius(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.AttackTimer = p.AttackCooldown
	c := p.Center().Add(geom.Vec{X: p.AttackRange + 30})
	wide := &dummy{box: geom.RectAt(c, 80, 80), hp: 10}
	narrow := &dummy{box: geom.RectAt(c, 20, 20), hp: 10}

	_, hits := p.Attack([]Damageable{wide, narrow}, c)
	assert.Equal(t, 1, hits)
	assert.Less(t, wide.hp, 10.0)
}

func TestAttackRespectsCooldown(t *testing.T) {
	p := newTestPlayer(t, nil)
	target := dummyAt(p, 0, 50)
	aim := target.box.Center()

	fired, _ := p.Attack([]Damageable{target}, aim)
	assert.False(t, fired, "timer starts empty")

	p.Update(&input.Snapshot{}, p.AttackCooldown)
	fired, hits := p.Attack([]Damageable{target}, aim)
	assert.True(t, fired)
	assert.Equal(t, 1, hits)
	assert.True(t, p.Attacking)

	fired, _ = p.Attack([]Damageable{target}, aim)
	assert.False(t, fired)

	p.Update(&input.Snapshot{}, 0.25)
	assert.False(t, p.Attacking, "slash visual is shorter than the cooldown")
}

func TestAttackWithAimOnPlayerUsesFacing(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.AttackTimer = p.AttackCooldown
	p.Facing = FacingRight
	right := dummyAt(p, 0, 60)
	left := dummyAt(p, 180, 60)

	_, hits := p.Attack([]Damageable{right, left}, p.Center())
	assert.Equal(t, 1, hits)
	assert.Equal(t, 100.0, left.hp)
}

func TestScreamHitsBothListsInsideFixedCone(t *testing.T) {
	p := newTestPlayer(t, func(c *balance.Config) { c.Player.AttackAngle = 20 })
	aim := p.Center().Add(geom.Vec{Y: -300})

	melee := dummyAt(p, 90+45, 200)
	mage := dummyAt(p, 90-30, 400)
	wide := dummyAt(p, 90+50, 200)
	far := dummyAt(p, 90, p.ScreamRange+10)

	fired, hits := p.Scream([]Slowable{melee, wide}, []Slowable{mage, far}, aim)
	require.True(t, fired)
	assert.Equal(t, 2, hits)
	assert.Equal(t, p.ScreamSlowDuration, melee.slowed)
	assert.Equal(t, p.ScreamSlowDuration, mage.slowed)
	assert.Zero(t, wide.slowed)
	assert.Zero(t, far.slowed)
	assert.True(t, p.ShowScreamCone)

	fired, _ = p.Scream([]Slowable{melee}, nil, aim)
	assert.False(t, fired, "cooldown")

	p.Update(&input.Snapshot{}, 1)
	assert.False(t, p.ShowScreamCone)
	p.Update(&input.Snapshot{}, p.ScreamCooldown)
	fired, _ = p.Scream(nil, nil, aim)
	assert.True(t, fired)
}

func TestMultiLevelUpCarriesRemainder(t *testing.T) {
	p := newTestPlayer(t, func(c *balance.Config) {
		c.Progression.FirstLevelXP = 100
		c.Progression.LevelXPMultiplier = 1.2
	})

	gained := p.GainXP(250)

	assert.Equal(t, 2, gained)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 30, p.XP)
	assert.Equal(t, 144, p.NextLevelXP)
	assert.True(t, p.ConsumeLevelUp())
	assert.False(t, p.ConsumeLevelUp(), "flag is consumed once")
}

func TestLevelUpRaisesDamage(t *testing.T) {
	p := newTestPlayer(t, nil)
	before := p.AttackDamage
	p.GainXP(float64(p.NextLevelXP))
	assert.InDelta(t, before+balance.Default().Progression.DamagePerLevel, p.AttackDamage, 1e-9)
}

func TestXPBonusScalesAndTruncates(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.XPBonus = 0.25
	p.GainXP(3.5)
	assert.Equal(t, 4, p.XP)
}

func TestHealthClamps(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.TakeDamage(p.HP + 50)
	assert.Equal(t, 0.0, p.HP)
	assert.False(t, p.Alive())

	p.HP = p.MaxHP - 0.001
	p.Update(&input.Snapshot{}, 100)
	assert.Equal(t, p.MaxHP, p.HP)
}

func TestDashDisplacementThenNormalControl(t *testing.T) {
	p := newTestPlayer(t, nil)
	start := p.Center()

	dashed := p.Update(held(input.Dash, input.MoveRight), 1.0/60)
	require.True(t, dashed)
	assert.Equal(t, start, p.Center(), "the trigger frame does not move")

	for i := 0; i < 4; i++ {
		p.Update(held(input.MoveUp), 0.05)
	}
	assert.InDelta(t, 160.0, geom.Dist(start, p.Center()), 1e-6)
	assert.InDelta(t, start.Y, p.Center().Y, 1e-9, "input is ignored while dashing")
	assert.Zero(t, p.DashTimeLeft)

	afterDash := p.Center()
	p.Update(held(input.MoveUp), 0.1)
	assert.InDelta(t, afterDash.Y-p.Speed*0.1, p.Center().Y, 1e-9)
}

func TestDashWithoutMovementUsesFacing(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.Facing = FacingLeft
	p.Update(held(input.Dash), 0.01)
	assert.Equal(t, geom.Vec{X: -1}, p.DashDir)

	p.Update(held(input.Dash), 0.01)
	p.Update(&input.Snapshot{}, 0.3)
	assert.False(t, p.Update(held(input.Dash), 0.01), "still cooling down")
}

func TestDashDiagonalIsNormalized(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.Update(held(input.Dash, input.MoveDown, input.MoveRight), 0.01)
	assert.InDelta(t, 1.0, p.DashDir.Len(), 1e-9)
}

func TestMagnetTimer(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.ApplyMagnet()
	require.True(t, p.MagnetActive)
	assert.Zero(t, p.MagnetElapsed())

	p.Update(&input.Snapshot{}, 4)
	assert.InDelta(t, 4.0, p.MagnetElapsed(), 1e-9)

	p.Update(&input.Snapshot{}, 4)
	assert.False(t, p.MagnetActive)
	assert.Zero(t, p.MagnetElapsed())
}

func TestUpgradesStack(t *testing.T) {
	p := newTestPlayer(t, nil)
	dmg, cd, rng, scream := p.AttackDamage, p.AttackCooldown, p.AttackRange, p.ScreamRange

	require.True(t, p.ApplyUpgrade(StrengthBoost))
	require.True(t, p.ApplyUpgrade(StrengthBoost))
	require.True(t, p.ApplyUpgrade(QuickReflexes))
	require.True(t, p.ApplyUpgrade(QuickReflexes))
	require.True(t, p.ApplyUpgrade(ExtendedReach))
	require.True(t, p.ApplyUpgrade(XPBonus))

	assert.InDelta(t, dmg+6, p.AttackDamage, 1e-9)
	assert.InDelta(t, cd*0.85*0.85, p.AttackCooldown, 1e-9)
	assert.InDelta(t, rng+30, p.AttackRange, 1e-9)
	assert.Equal(t, scream, p.ScreamRange, "reach only lengthens the swing")
	assert.InDelta(t, 0.25, p.XPBonus, 1e-9)
	assert.Equal(t, 2, p.Stacks(StrengthBoost))
}

func TestVitalitySurgeHeals(t *testing.T) {
	p := newTestPlayer(t, nil)
	p.HP = 4
	p.ApplyUpgrade(VitalitySurge)
	assert.Equal(t, 15.0, p.MaxHP)
	assert.Equal(t, 9.0, p.HP)
}

func TestUpgradeCap(t *testing.T) {
	p := newTestPlayer(t, func(c *balance.Config) { c.Upgrades.Haste.MaxStacks = 1 })
	speed := p.Speed
	assert.True(t, p.ApplyUpgrade(Haste))
	assert.False(t, p.ApplyUpgrade(Haste))
	assert.Equal(t, speed+30, p.Speed)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		offer := p.OfferUpgrades(rng, 3)
		assert.Len(t, offer, 3)
		assert.NotContains(t, offer, Haste)
		seen := map[Upgrade]bool{}
		for _, u := range offer {
			assert.False(t, seen[u], "offers are distinct")
			seen[u] = true
		}
	}
}

func TestUpgradeNames(t *testing.T) {
	p := newTestPlayer(t, nil)
	assert.Equal(t, "Quick Reflexes", QuickReflexes.String())
	assert.Equal(t, "cooldown x0.85", p.Describe(QuickReflexes))
	assert.Equal(t, "+25% xp", p.Describe(XPBonus))
}
