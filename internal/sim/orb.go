package sim

import (
	"math"

	"lasthuman/internal/balance"
	"lasthuman/internal/geom"
)

// Orb is an experience drop. It drifts toward the player once inside its
// attraction radius.
type Orb struct {
	Bounds geom.Rect
	Prev   geom.Rect
	Value  float64

	Radius float64
	Speed  float64

	baseRadius float64
	baseSpeed  float64
	magnetK    float64
}

func NewOrb(pos geom.Vec, value float64, oc balance.OrbConfig) *Orb {
	box := geom.RectAt(pos, oc.Size, oc.Size)
	return &Orb{
		Bounds:     box,
		Prev:       box,
		Value:      value,
		Radius:     oc.AttractRadius,
		Speed:      oc.AttractSpeed,
		baseRadius: oc.AttractRadius,
		baseSpeed:  oc.AttractSpeed,
		magnetK:    oc.MagnetSpeedFactor,
	}
}

// MagnetFactor is the speed multiplier of a magnet that has run for elapsed
// out of duration seconds.
func MagnetFactor(base, elapsed, duration float64) float64 {
	if duration <= 0 {
		return base
	}
	return base + elapsed/duration
}

// Boost switches the orb between its base attraction and the magnet mode
// for the current step.
func (o *Orb) Boost(active bool, elapsed, duration float64) {
	if !active {
		o.Radius = o.baseRadius
		o.Speed = o.baseSpeed
		return
	}
	o.Radius = math.Inf(1)
	o.Speed = o.baseSpeed * MagnetFactor(o.magnetK, elapsed, duration)
}

func (o *Orb) Update(player geom.Vec, dt float64) {
	o.Prev = o.Bounds
	if geom.Dist(o.Bounds.Center(), player) >= o.Radius {
		return
	}
	o.Bounds, _, _ = stepToward(o.Bounds, player, o.Speed*dt)
}

// Bonus is a pickup waiting at one of the fixed map spots.
type Bonus struct {
	Bounds geom.Rect
	Kind   BonusKind
}

type BonusKind int

const (
	BonusMagnet BonusKind = iota
)

func (k BonusKind) String() string { return "magnet" }

// BonusSpots are the top-left corners a bonus can appear at, each offset
// inward from one map corner.
func BonusSpots(cfg balance.Config) []geom.Vec {
	w, h := cfg.World.MapWidth, cfg.World.MapHeight
	off, size := cfg.Bonus.CornerOffset, cfg.Bonus.Size
	return []geom.Vec{
		{X: off, Y: off},
		{X: w - size - off, Y: off},
		{X: off, Y: h - size - off},
		{X: w - size - off, Y: h - size - off},
	}
}
