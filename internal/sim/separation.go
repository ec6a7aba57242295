package sim

import "lasthuman/internal/geom"

// Separate pushes every overlapping pair apart along the line between their
// centres, half the overlap each. Overlap is measured on circles of
// diameter equal to the box width. Coincident centres are left alone.
func Separate(boxes []*geom.Rect) {
	for i := 0; i < len(boxes); i++ {
		a := boxes[i]
		for _, b := range boxes[i+1:] {
			d := a.Center().Sub(b.Center())
			dist := d.Len()
			minDist := (a.W + b.W) / 2
			if dist <= 0 || dist >= minDist {
				continue
			}
			push := d.Scale((minDist - dist) * 0.5 / dist)
			*a = a.Translate(push)
			*b = b.Translate(push.Scale(-1))
		}
	}
}
