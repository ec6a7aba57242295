package sim

import (
	"math"
	"math/rand"

	"lasthuman/internal/balance"
	"lasthuman/internal/geom"
)

// Scaling is the spawn pressure for one moment of a run.
type Scaling struct {
	EliteChance   float64
	RareChance    float64
	TimeModifier  float64
	LevelModifier float64
	Interval      float64
	Cap           int
}

// ComputeScaling derives the spawn pressure from the player's level and the
// elapsed run time. spawnRate is the difficulty multiplier; higher values
// spawn faster.
func ComputeScaling(cfg balance.Config, level int, elapsed, spawnRate float64) Scaling {
	sc, sp := cfg.Scaling, cfg.Spawning
	lvl := float64(level)
	s := Scaling{
		EliteChance:   math.Min(sc.EliteChanceMax, lvl*sc.EliteChancePerLevel),
		RareChance:    math.Min(sc.RareChanceMax, lvl*sc.RareChancePerLevel),
		TimeModifier:  1 + elapsed/sc.TimeModifierDivisor,
		LevelModifier: math.Max(sc.LevelModifierMin, 1-lvl*sc.LevelModifierPerLevel),
		Cap:           sp.BaseMaxEnemies + sp.PerLevelEnemies*(level-1),
	}
	if spawnRate <= 0 {
		spawnRate = 1
	}
	s.Interval = math.Max(sc.MinimumSpawnInterval, sp.BaseSpawnRate*s.LevelModifier/s.TimeModifier/spawnRate)
	return s
}

// RollTier maps one uniform draw in [0,1) to a tier.
func (s Scaling) RollTier(r float64) Tier {
	switch {
	case r < s.EliteChance:
		return TierElite
	case r < s.EliteChance+s.RareChance:
		return TierRare
	}
	return TierNormal
}

// Spawner owns the spawn timer. A due tick always resets the timer, whether
// or not anything ends up spawning.
type Spawner struct {
	Timer float64
}

func (s *Spawner) Due(interval, dt float64) bool {
	s.Timer += dt
	if s.Timer < interval {
		return false
	}
	s.Timer = 0
	return true
}

// EdgePoint picks a point just outside a random edge of view.
func EdgePoint(rng *rand.Rand, view geom.Rect, margin float64) geom.Vec {
	switch rng.Intn(4) {
	case 0:
		return geom.Vec{X: view.X + rng.Float64()*view.W, Y: view.Y - margin}
	case 1:
		return geom.Vec{X: view.X + rng.Float64()*view.W, Y: view.Bottom() + margin}
	case 2:
		return geom.Vec{X: view.X - margin, Y: view.Y + rng.Float64()*view.H}
	default:
		return geom.Vec{X: view.Right() + margin, Y: view.Y + rng.Float64()*view.H}
	}
}

// PlaceBoss draws uniform map positions until one lies at least safe away
// from player. After attempts misses it falls back to the map corner
// farthest from the player.
func PlaceBoss(rng *rand.Rand, mapW, mapH float64, player geom.Vec, safe float64, attempts int) geom.Vec {
	for i := 0; i < attempts; i++ {
		p := geom.Vec{X: rng.Float64() * mapW, Y: rng.Float64() * mapH}
		if geom.Dist(p, player) >= safe {
			return p
		}
	}
	corners := []geom.Vec{{}, {X: mapW}, {Y: mapH}, {X: mapW, Y: mapH}}
	best := corners[0]
	for _, c := range corners[1:] {
		if geom.Dist(c, player) > geom.Dist(best, player) {
			best = c
		}
	}
	return best
}
