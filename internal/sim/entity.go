// Package sim is the gameplay simulation: the player, the goblin horde and
// everything that moves between them, advanced one step at a time. It never
// draws, plays sounds or reads devices; those layers read its state and
// receive its events.
package sim

import (
	"math"

	"lasthuman/internal/geom"
)

// Damageable is anything the player's attacks can hurt.
type Damageable interface {
	Box() geom.Rect
	Alive() bool
	TakeDamage(amount float64)
}

// Slowable is a Damageable the scream can also slow down.
type Slowable interface {
	Damageable
	Slow(seconds float64)
}

type Tier int

const (
	TierNormal Tier = iota
	TierRare
	TierElite
)

func (t Tier) String() string {
	switch t {
	case TierRare:
		return "rare"
	case TierElite:
		return "elite"
	default:
		return "normal"
	}
}

// countdown decrements a timer and never lets it go below zero.
func countdown(t *float64, dt float64) {
	*t = math.Max(0, *t-dt)
}

// stepToward moves box toward target by at most dist; the box does not
// overshoot. It reports the unit direction used, or false at zero distance.
func stepToward(box geom.Rect, target geom.Vec, dist float64) (geom.Rect, geom.Vec, bool) {
	delta := target.Sub(box.Center())
	dir, ok := delta.Normalize()
	if !ok {
		return box, geom.Vec{}, false
	}
	return box.Translate(dir.Scale(math.Min(dist, delta.Len()))), dir, true
}
