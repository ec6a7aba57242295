package sim

import (
	"math/rand"
	"strconv"

	"lasthuman/internal/balance"
)

type Upgrade int

const (
	StrengthBoost Upgrade = iota
	VitalitySurge
	QuickReflexes
	Haste
	ExtendedReach
	XPBonus
)

var upgradeNames = [...]string{
	StrengthBoost: "Strength Boost",
	VitalitySurge: "Vitality Surge",
	QuickReflexes: "Quick Reflexes",
	Haste:         "Haste",
	ExtendedReach: "Extended Reach",
	XPBonus:       "XP Bonus",
}

func (u Upgrade) String() string {
	if u < 0 || int(u) >= len(upgradeNames) {
		return "unknown"
	}
	return upgradeNames[u]
}

// Upgrades lists the catalog in display order.
func Upgrades() []Upgrade {
	return []Upgrade{StrengthBoost, VitalitySurge, QuickReflexes, Haste, ExtendedReach, XPBonus}
}

func upgradeEntry(c balance.UpgradesConfig, u Upgrade) balance.Upgrade {
	switch u {
	case StrengthBoost:
		return c.StrengthBoost
	case VitalitySurge:
		return c.VitalitySurge
	case QuickReflexes:
		return c.QuickReflexes
	case Haste:
		return c.Haste
	case ExtendedReach:
		return c.ExtendedReach
	case XPBonus:
		return c.XPBonus
	}
	return balance.Upgrade{}
}

// Describe is the one-line effect shown on the upgrade card.
func (p *Player) Describe(u Upgrade) string {
	v := upgradeEntry(p.upgrades, u).Value
	switch u {
	case StrengthBoost:
		return "+" + trimFloat(v) + " damage"
	case VitalitySurge:
		return "+" + trimFloat(v) + " max hp"
	case QuickReflexes:
		return "cooldown x" + trimFloat(v)
	case Haste:
		return "+" + trimFloat(v) + " speed"
	case ExtendedReach:
		return "+" + trimFloat(v) + " range"
	case XPBonus:
		return "+" + trimFloat(v*100) + "% xp"
	}
	return ""
}

// Stacks is how many times u has been taken this run.
func (p *Player) Stacks(u Upgrade) int { return p.stacks[u] }

// CanUpgrade reports whether u is below its configured cap.
func (p *Player) CanUpgrade(u Upgrade) bool {
	e := upgradeEntry(p.upgrades, u)
	return e.MaxStacks <= 0 || p.stacks[u] < e.MaxStacks
}

// ApplyUpgrade mutates the single stat u affects. Repeated picks stack
// additively, or multiplicatively for the cooldown. It reports false when
// the upgrade is capped.
func (p *Player) ApplyUpgrade(u Upgrade) bool {
	if !p.CanUpgrade(u) {
		return false
	}
	v := upgradeEntry(p.upgrades, u).Value
	switch u {
	case StrengthBoost:
		p.AttackDamage += v
	case VitalitySurge:
		p.MaxHP += v
		p.HP = min(p.HP+v, p.MaxHP)
	case QuickReflexes:
		p.AttackCooldown *= v
		p.AttackTimer = min(p.AttackTimer, p.AttackCooldown)
	case Haste:
		p.Speed += v
	case ExtendedReach:
		p.AttackRange += v
	case XPBonus:
		p.XPBonus += v
	default:
		return false
	}
	p.stacks[u]++
	return true
}

// OfferUpgrades draws up to n distinct upgrades that are still available.
func (p *Player) OfferUpgrades(rng *rand.Rand, n int) []Upgrade {
	var pool []Upgrade
	for _, u := range Upgrades() {
		if p.CanUpgrade(u) {
			pool = append(pool, u)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

func trimFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
