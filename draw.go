package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lasthuman/internal/geom"
	"lasthuman/internal/sim"
)

var (
	colGround  = color.RGBA{0x3B, 0x4A, 0x2F, 0xFF}
	colGrid    = color.RGBA{0x44, 0x55, 0x37, 0xFF}
	colBorder  = color.RGBA{0x1E, 0x1E, 0x1E, 0xFF}
	colPlayer  = color.RGBA{0xE8, 0xC3, 0x9E, 0xFF}
	colNormal  = color.RGBA{0x5C, 0xB8, 0x5C, 0xFF}
	colRare    = color.RGBA{0x2B, 0x6C, 0xB0, 0xFF}
	colElite   = color.RGBA{0x8E, 0x44, 0xAD, 0xFF}
	colBoss    = color.RGBA{0x9B, 0x1C, 0x1C, 0xFF}
	colMage    = color.RGBA{0x6A, 0x3D, 0x9A, 0xFF}
	colFire    = color.RGBA{0xFF, 0x8C, 0x1A, 0xFF}
	colOrb     = color.RGBA{0x4D, 0xE6, 0xE6, 0xFF}
	colMagnet  = color.RGBA{0xE0, 0x3C, 0xD8, 0xFF}
	colFlash   = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	colSlowed  = color.RGBA{0xA8, 0xD8, 0xFF, 0xFF}
	colHPBack  = color.RGBA{0x22, 0x22, 0x22, 0xC0}
	colHP      = color.RGBA{0xD9, 0x53, 0x4F, 0xFF}
	colXP      = color.RGBA{0x4D, 0xA6, 0xE6, 0xFF}
	colSwing   = color.RGBA{0xFF, 0xFF, 0xFF, 0x50}
	colScream  = color.RGBA{0xFF, 0xE0, 0x66, 0x48}
	colReach   = color.RGBA{0xFF, 0x40, 0x40, 0x60}
	colOverlay = color.RGBA{0, 0, 0, 0xA0}
)

const gridStep = 200

// whiteSub is the 1x1 source image for DrawTriangles fills.
var whiteSub = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.world
	a := w.Alpha()
	wc := w.Config().World

	// camera follows the interpolated player
	pb := lerpRect(w.Player.Prev, w.Player.Box, a)
	view := sim.Viewport(pb.Center(), wc.ViewWidth, wc.ViewHeight, wc.MapWidth, wc.MapHeight)
	cam := geom.Vec{X: view.X, Y: view.Y}

	screen.Fill(colGround)
	g.drawGround(screen, view, wc.MapWidth, wc.MapHeight)

	if b := w.Bonus; b != nil {
		c := b.Bounds.Center().Sub(cam)
		circleFill(screen, c.X, c.Y, b.Bounds.W/2, colMagnet)
	}
	for _, o := range w.Orbs {
		c := lerpRect(o.Prev, o.Bounds, a).Center().Sub(cam)
		circleFill(screen, c.X, c.Y, o.Bounds.W/2, colOrb)
	}

	for _, e := range w.Enemies {
		r := lerpRect(e.Prev, e.Bounds, a).Translate(cam.Scale(-1))
		rect(screen, r.X, r.Y, r.W, r.H, enemyColor(e))
		hpBar(screen, r, e.HealthRatio())
	}
	for _, m := range w.Mages {
		r := lerpRect(m.Prev, m.Bounds, a).Translate(cam.Scale(-1))
		c := colMage
		if m.FlashTimer > 0 {
			c = colFlash
		}
		circleFill(screen, r.Center().X, r.Center().Y, r.W/2, c)
		hpBar(screen, r, m.HealthRatio())
		for _, fb := range m.Projectiles {
			fc := lerpRect(fb.Prev, fb.Bounds, a).Center().Sub(cam)
			circleFill(screen, fc.X, fc.Y, fb.Bounds.W/2, colFire)
		}
	}
	for _, b := range w.Bosses {
		r := lerpRect(b.Prev, b.Bounds, a).Translate(cam.Scale(-1))
		c := r.Center()
		circleLine(screen, c.X, c.Y, b.AttackRange, colReach)
		col := color.Color(colBoss)
		if b.FlashTimer > 0 {
			col = colFlash
		}
		rect(screen, r.X, r.Y, r.W, r.H, col)
		hpBar(screen, r, b.HealthRatio())
	}

	g.drawPlayer(screen, pb.Translate(cam.Scale(-1)))

	if g.hurtFlash > 0 {
		alpha := uint8(0x70 * g.hurtFlash / hurtFlashTime)
		rect(screen, 0, 0, wc.ViewWidth, wc.ViewHeight, color.RGBA{0x80, 0, 0, alpha})
	}

	switch g.screen {
	case screenMenu:
		g.drawMenu(screen)
		return
	case screenUpgrade:
		g.drawUpgrade(screen)
	case screenPause:
		g.drawPause(screen)
	case screenOver:
		g.drawOver(screen)
		return
	}
	g.drawHUD(screen)
}

func (g *Game) drawGround(screen *ebiten.Image, view geom.Rect, mapW, mapH float64) {
	for x := math.Ceil(view.X/gridStep) * gridStep; x < view.Right(); x += gridStep {
		line(screen, x-view.X, 0, x-view.X, view.H, 1, colGrid)
	}
	for y := math.Ceil(view.Y/gridStep) * gridStep; y < view.Bottom(); y += gridStep {
		line(screen, 0, y-view.Y, view.W, y-view.Y, 1, colGrid)
	}
	vector.StrokeRect(screen, float32(-view.X), float32(-view.Y), float32(mapW), float32(mapH), 6, colBorder, false)
}

func (g *Game) drawPlayer(screen *ebiten.Image, r geom.Rect) {
	p := g.world.Player
	c := r.Center()

	if p.Attacking {
		cone(screen, c, p.AttackRange+r.W/2, p.LastAttackAngle, p.AttackAngle/2, colSwing)
	}
	if p.ShowScreamCone {
		cone(screen, c, p.ScreamRange, p.ScreamAngle, p.ScreamHalfAngle, colScream)
	}

	body := colPlayer
	if p.DashTimeLeft > 0 {
		body.A = 0x90
	}
	rect(screen, r.X, r.Y, r.W, r.H, body)

	// facing marker, bobbing with the walk frame
	f := p.Facing.Vec()
	bob := float64(p.Frame%2) * 2
	m := c.Add(f.Scale(r.W / 3))
	circleFill(screen, m.X, m.Y-bob, 5, colBorder)
}

func enemyColor(e *sim.Enemy) color.Color {
	switch {
	case e.FlashTimer > 0:
		return colFlash
	case e.SlowTimer > 0:
		return colSlowed
	}
	switch e.Tier {
	case sim.TierRare:
		return colRare
	case sim.TierElite:
		return colElite
	}
	return colNormal
}

func lerpRect(from, to geom.Rect, t float64) geom.Rect {
	p := geom.Vec{X: from.X, Y: from.Y}.Lerp(geom.Vec{X: to.X, Y: to.Y}, t)
	return geom.Rect{X: p.X, Y: p.Y, W: to.W, H: to.H}
}

// --- drawing helpers ---

func rect(img *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func circleFill(img *ebiten.Image, cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(img, float32(cx), float32(cy), float32(r), c, true)
}

func circleLine(img *ebiten.Image, cx, cy, r float64, c color.Color) {
	vector.StrokeCircle(img, float32(cx), float32(cy), float32(r), 2, c, true)
}

func line(img *ebiten.Image, x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, false)
}

func hpBar(img *ebiten.Image, over geom.Rect, ratio float64) {
	const h = 5
	ratio = geom.Clamp(ratio, 0, 1)
	rect(img, over.X, over.Y-h-3, over.W, h, colHPBack)
	rect(img, over.X, over.Y-h-3, over.W*ratio, h, colHP)
}

// cone fills a circular sector around aim (degrees, y up) spanning half
// degrees each side.
func cone(img *ebiten.Image, c geom.Vec, radius, aim, half float64, col color.RGBA) {
	if radius <= 0 || half <= 0 {
		return
	}
	from := float32(-(aim + half) * math.Pi / 180)
	to := float32(-(aim - half) * math.Pi / 180)

	var path vector.Path
	path.MoveTo(float32(c.X), float32(c.Y))
	path.Arc(float32(c.X), float32(c.Y), float32(radius), from, to, vector.Clockwise)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, gg, b, a := float32(col.R)/0xFF, float32(col.G)/0xFF, float32(col.B)/0xFF, float32(col.A)/0xFF
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, gg, b, a
	}
	img.DrawTriangles(vs, is, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
