package geom

import "math"

// coneEpsilon absorbs float noise from atan2 so a target sitting exactly on
// the cone edge counts as inside.
const coneEpsilon = 1e-9

// AngleTo returns the direction from -> to in degrees, [0,360), measured
// counter-clockwise with screen Y pointing down (so "up" is 90). ok is false
// when the points coincide.
func AngleTo(from, to Vec) (deg float64, ok bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return 0, false
	}
	return floorMod(math.Atan2(-dy, dx)*180/math.Pi, 360), true
}

// AngularDelta is the signed difference a-b wrapped into [-180,180).
func AngularDelta(a, b float64) float64 {
	return floorMod(a-b+180, 360) - 180
}

// InCone reports whether target lies within half degrees of aim.
func InCone(aim, target, half float64) bool {
	return math.Abs(AngularDelta(aim, target)) <= half+coneEpsilon
}

// DirFromAngle is the unit vector for a screen-space angle from AngleTo.
func DirFromAngle(deg float64) Vec {
	rad := deg * math.Pi / 180
	return Vec{math.Cos(rad), -math.Sin(rad)}
}

func floorMod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r < 0 {
		r += m
	}
	return r
}
