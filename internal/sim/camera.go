package sim

import "lasthuman/internal/geom"

// Viewport is the camera rectangle centred on focus and kept inside the map.
// A map smaller than the view pins the camera at the origin.
func Viewport(focus geom.Vec, viewW, viewH, mapW, mapH float64) geom.Rect {
	return geom.Rect{
		X: geom.Clamp(focus.X-viewW/2, 0, mapW-viewW),
		Y: geom.Clamp(focus.Y-viewH/2, 0, mapH-viewH),
		W: viewW,
		H: viewH,
	}
}
