package main

import (
	"lasthuman/internal/geom"
	"lasthuman/internal/input"
	"lasthuman/internal/sim"
)

// upgradeOrder is the pilot's preference when a level-up menu opens.
var upgradeOrder = []sim.Upgrade{
	sim.VitalitySurge,
	sim.StrengthBoost,
	sim.QuickReflexes,
	sim.Haste,
	sim.ExtendedReach,
	sim.XPBonus,
}

// pilot plays a run without a human: it kites away from whatever is close,
// drifts toward orbs and the magnet when nothing is, dashes out of contact
// and screams into packs. Attacks are left to the world's auto-attack.
type pilot struct {
	threatRadius float64
	dashRadius   float64
	packSize     int
	in           input.Snapshot
}

func newPilot() *pilot {
	return &pilot{threatRadius: 350, dashRadius: 110, packSize: 3}
}

// Decide builds the input for the next step of w.
func (p *pilot) Decide(w *sim.World) input.State {
	p.in = input.Snapshot{}
	pl := w.Player
	me := pl.Center()

	var flee geom.Vec
	closest := -1.0
	push := func(from geom.Vec, weight float64) {
		d := geom.Dist(me, from)
		if d > p.threatRadius {
			return
		}
		if closest < 0 || d < closest {
			closest = d
		}
		if away, ok := me.Sub(from).Normalize(); ok {
			flee = flee.Add(away.Scale(weight * (1 - d/p.threatRadius)))
		}
	}
	for _, e := range w.Enemies {
		push(e.Bounds.Center(), 1)
	}
	for _, b := range w.Bosses {
		push(b.Bounds.Center(), 3)
	}
	for _, m := range w.Mages {
		for _, fb := range m.Projectiles {
			push(fb.Bounds.Center(), 2)
		}
	}

	dir := flee
	if dir.IsZero() {
		if goal, ok := p.goal(w); ok {
			dir = goal.Sub(me)
		}
	}
	// Lean toward the middle so kiting does not end pinned in a corner.
	wc := w.Config().World
	mid := geom.Vec{X: wc.MapWidth / 2, Y: wc.MapHeight / 2}
	if toMid, ok := mid.Sub(me).Normalize(); ok {
		dir = dir.Add(toMid.Scale(0.25))
	}
	p.steer(dir)

	if closest >= 0 && closest < p.dashRadius && pl.DashTimer <= 0 {
		p.in.Set(input.Dash, true)
	}
	if aim, n := p.pack(w, pl.ScreamRange); n >= p.packSize && pl.ScreamTimer <= 0 {
		p.in.Set(input.Scream, true)
		p.in.SetAim(aim)
	}
	return &p.in
}

// goal is the nearest orb, or the magnet pickup when no orb is left.
func (p *pilot) goal(w *sim.World) (geom.Vec, bool) {
	me := w.Player.Center()
	best, found := geom.Vec{}, false
	for _, o := range w.Orbs {
		c := o.Bounds.Center()
		if !found || geom.Dist(me, c) < geom.Dist(me, best) {
			best, found = c, true
		}
	}
	if !found && w.Bonus != nil {
		return w.Bonus.Bounds.Center(), true
	}
	return best, found
}

// pack returns the centroid of goblins within reach and how many there are.
func (p *pilot) pack(w *sim.World, reach float64) (geom.Vec, int) {
	me := w.Player.Center()
	var sum geom.Vec
	n := 0
	for _, e := range w.Enemies {
		c := e.Bounds.Center()
		if geom.Dist(me, c) <= reach {
			sum = sum.Add(c)
			n++
		}
	}
	if n == 0 {
		return me, 0
	}
	return sum.Scale(1 / float64(n)), n
}

func (p *pilot) steer(dir geom.Vec) {
	d, ok := dir.Normalize()
	if !ok {
		return
	}
	const dead = 0.3
	p.in.Set(input.MoveRight, d.X > dead)
	p.in.Set(input.MoveLeft, d.X < -dead)
	p.in.Set(input.MoveDown, d.Y > dead)
	p.in.Set(input.MoveUp, d.Y < -dead)
}

// pickUpgrade returns the first offer in upgradeOrder.
func pickUpgrade(offers []sim.Upgrade) (sim.Upgrade, bool) {
	for _, want := range upgradeOrder {
		for _, o := range offers {
			if o == want {
				return o, true
			}
		}
	}
	return 0, false
}
