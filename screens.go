package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lasthuman/internal/geom"
)

const (
	lineH = 16
	cardW = 200.0
	cardH = 120.0
	cardG = 20.0
)

var (
	colCard    = color.RGBA{0x1F, 0x2A, 0x36, 0xF0}
	colCardHot = color.RGBA{0x2F, 0x4A, 0x66, 0xF0}
	colDim     = color.RGBA{0xAA, 0xAA, 0xAA, 0xFF}
	colGold    = color.RGBA{0xFF, 0xCC, 0x00, 0xFF}
)

func caption(img *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(img, s, basicfont.Face7x13, x, y, c)
}

// centred draws s horizontally centred on the logical screen.
func centred(img *ebiten.Image, s string, y int, c color.Color) {
	w := img.Bounds().Dx()
	caption(img, s, (w-len(s)*7)/2, y, c)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.world
	p := w.Player
	st := w.Stats()
	sw := float64(screen.Bounds().Dx())

	// health and experience
	rect(screen, 10, 10, 200, 14, colHPBack)
	rect(screen, 10, 10, 200*p.HealthRatio(), 14, colHP)
	caption(screen, fmt.Sprintf("%.0f / %.0f", p.HP, p.MaxHP), 16, 21, color.White)

	xp := 0.0
	if p.NextLevelXP > 0 {
		xp = geom.Clamp(float64(p.XP)/float64(p.NextLevelXP), 0, 1)
	}
	rect(screen, 10, 28, 200, 6, colHPBack)
	rect(screen, 10, 28, 200*xp, 6, colXP)
	caption(screen, fmt.Sprintf("Lv %d", p.Level), 218, 21, color.White)

	// cooldowns
	cooldown(screen, 10, 42, "Dash", p.DashReady())
	cooldown(screen, 10, 58, "Scream", p.ScreamReady())

	mode := "manual"
	if w.AutoAttack {
		mode = "auto"
	}
	caption(screen, "Attack: "+mode, 10, 88, colDim)
	if p.MagnetActive {
		caption(screen, fmt.Sprintf("Magnet %.1fs", p.MagnetTimer), 10, 104, colMagnet)
	}

	right := fmt.Sprintf("%s  %s  kills %d", clock(st.Survival), g.store.DifficultyName(), st.Kills)
	caption(screen, right, int(sw)-len(right)*7-10, 21, color.White)

	if g.noticeTimer > 0 {
		centred(screen, g.notice, 60, colGold)
	}
}

func cooldown(img *ebiten.Image, x, y float64, label string, ready float64) {
	rect(img, x+56, y, 100, 8, colHPBack)
	c := colDim
	if ready >= 1 {
		c = colGold
	}
	rect(img, x+56, y, 100*ready, 8, c)
	caption(img, label, int(x), int(y)+8, color.White)
}

func clock(sec float64) string {
	s := int(sec)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	sh := screen.Bounds().Dy()
	rect(screen, 0, 0, float64(screen.Bounds().Dx()), float64(sh), colOverlay)

	y := sh/2 - 90
	centred(screen, "LAST HUMAN", y, colGold)
	centred(screen, "Survive the horde.", y+lineH*2, colDim)

	y += lineH * 4
	for i, d := range g.difficulties {
		label := "  " + d + "  "
		var c color.Color = colDim
		if i == g.choice {
			label = "> " + d + " <"
			c = color.White
		}
		centred(screen, label, y+i*lineH, c)
	}

	y += len(g.difficulties)*lineH + lineH*2
	centred(screen, "Up/Down choose difficulty, Enter to start", y, colDim)
	centred(screen, g.bindingHelp(), y+lineH, colDim)
}

func (g *Game) bindingHelp() string {
	kb := g.prefs.Keybinds
	move := strings.Join([]string{kb["move_up"], kb["move_left"], kb["move_down"], kb["move_right"]}, "")
	return fmt.Sprintf("move %s  dash %s  attack %s  scream %s  auto %s",
		move, kb["dash"], kb["attack"], kb["scream"], kb["toggle_auto"])
}

// cardRect is the screen rectangle of upgrade choice i.
func (g *Game) cardRect(i int) geom.Rect {
	wc := g.world.Config().World
	n := float64(len(g.offers))
	total := n*cardW + (n-1)*cardG
	x := (wc.ViewWidth-total)/2 + float64(i)*(cardW+cardG)
	return geom.Rect{X: x, Y: (wc.ViewHeight - cardH) / 2, W: cardW, H: cardH}
}

func (g *Game) drawUpgrade(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	rect(screen, 0, 0, float64(sw), float64(sh), colOverlay)

	p := g.world.Player
	centred(screen, fmt.Sprintf("Level %d! Choose an upgrade", p.Level), sh/2-int(cardH)/2-30, colGold)

	cx, cy := ebiten.CursorPosition()
	cursor := geom.Rect{X: float64(cx), Y: float64(cy), W: 1, H: 1}
	for i, u := range g.offers {
		r := g.cardRect(i)
		bg := colCard
		if r.Overlaps(cursor) {
			bg = colCardHot
		}
		rect(screen, r.X, r.Y, r.W, r.H, bg)
		x, y := int(r.X)+12, int(r.Y)+24
		caption(screen, fmt.Sprintf("[%d] %s", i+1, u), x, y, color.White)
		caption(screen, p.Describe(u), x, y+lineH*2, colDim)
		if n := p.Stacks(u); n > 0 {
			caption(screen, fmt.Sprintf("owned x%d", n), x, y+lineH*4, colDim)
		}
	}
}

func (g *Game) drawPause(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	rect(screen, 0, 0, float64(sw), float64(sh), colOverlay)
	centred(screen, "PAUSED", sh/2-lineH, color.White)
	centred(screen, fmt.Sprintf("%s to resume, M for menu", g.prefs.Keybinds["pause"]), sh/2+lineH, colDim)
}

func (g *Game) drawOver(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	rect(screen, 0, 0, float64(sw), float64(sh), colOverlay)

	st := g.world.Stats()
	y := sh/2 - lineH*5
	centred(screen, "YOU FELL", y, colHP)
	rows := []string{
		fmt.Sprintf("Survived      %s", clock(st.Survival)),
		fmt.Sprintf("Level         %d", st.Level),
		fmt.Sprintf("Kills         %d", st.Kills),
		fmt.Sprintf("Bosses slain  %d", st.BossesDefeated),
		fmt.Sprintf("Damage taken  %.0f", st.DamageTaken),
		fmt.Sprintf("XP collected  %.0f", st.XPCollected),
	}
	for i, r := range rows {
		centred(screen, r, y+lineH*(i+2), color.White)
	}
	centred(screen, "run "+g.world.RunID.String()[:8], y+lineH*9, colDim)
	centred(screen, "Enter to play again, "+g.prefs.Keybinds["pause"]+" for menu", y+lineH*11, colDim)
}
