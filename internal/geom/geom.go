// Package geom holds the small amount of 2D math the game needs: vectors,
// axis-aligned boxes and the angle helpers shared by every cone check.
package geom

import "math"

type Vec struct{ X, Y float64 }

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }
func Dist(a, b Vec) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }
func (v Vec) Lerp(o Vec, t float64) Vec { return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t} }

// Normalize returns the unit vector of v. ok is false for the zero vector,
// in which case the zero vector is returned and callers treat it as
// "no movement".
func (v Vec) Normalize() (n Vec, ok bool) {
	l := v.Len()
	if l == 0 {
		return Vec{}, false
	}
	return Vec{v.X / l, v.Y / l}, true
}

// Rect is an axis-aligned box; X,Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func RectAt(center Vec, w, h float64) Rect {
	return Rect{X: center.X - w/2, Y: center.Y - h/2, W: w, H: h}
}

func (r Rect) Center() Vec { return Vec{r.X + r.W/2, r.Y + r.H/2} }
func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Translate(d Vec) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Overlaps reports a strict intersection; boxes that only share an edge do
// not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Inset shrinks the box by m on every side. The result never has negative
// size; an over-shrunk box collapses onto its centre.
func (r Rect) Inset(m float64) Rect {
	c := r.Center()
	w := math.Max(0, r.W-2*m)
	h := math.Max(0, r.H-2*m)
	return RectAt(c, w, h)
}

// ClampInto keeps the box fully inside [0,w]x[0,h].
func (r Rect) ClampInto(w, h float64) Rect {
	r.X = Clamp(r.X, 0, w-r.W)
	r.Y = Clamp(r.Y, 0, h-r.H)
	return r
}

func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
