package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"lasthuman/internal/audio"
	"lasthuman/internal/balance"
	"lasthuman/internal/geom"
	"lasthuman/internal/input"
	"lasthuman/internal/settings"
	"lasthuman/internal/sim"
)

type screen int

const (
	screenMenu screen = iota
	screenPlay
	screenUpgrade
	screenPause
	screenOver
)

const (
	upgradeChoices = 3
	resumeGrace    = 0.7 // seconds of frozen play after an upgrade is picked
	noticeTime     = 2.5
	hurtFlashTime  = 0.2
)

type Game struct {
	store     *balance.Store
	prefs     settings.Settings
	prefsPath string
	world     *sim.World
	sfx       *audio.Sink
	keys      *keys
	log       *zap.Logger

	screen       screen
	difficulties []string
	choice       int
	offers       []sim.Upgrade
	resumeWait   float64

	notice      string
	noticeTimer float64
	hurtFlash   float64
}

func NewGame(store *balance.Store, prefs settings.Settings, prefsPath string, sfx *audio.Sink, opts []sim.Option, log *zap.Logger) *Game {
	g := &Game{
		store:     store,
		prefs:     prefs,
		prefsPath: prefsPath,
		sfx:       sfx,
		keys:      newKeys(prefs.Keybinds, log),
		log:       log,
	}
	g.difficulties, g.choice = store.Difficulties()
	opts = append(opts,
		sim.WithLogger(log),
		sim.WithSink(sim.SinkFunc(g.onEvent)),
		sim.WithAutoAttack(prefs.AutoAttack),
	)
	g.world = sim.NewWorld(store.Config(), store.Difficulty(), opts...)
	return g
}

// onEvent forwards simulation events to the speaker and drives the
// screen-space effects.
func (g *Game) onEvent(e sim.Event) {
	g.sfx.Emit(e)
	switch e.Kind {
	case sim.PlayerHit:
		g.hurtFlash = hurtFlashTime
	case sim.BossSpawned:
		g.say("A boss approaches")
	}
}

func (g *Game) say(msg string) {
	g.notice = msg
	g.noticeTimer = noticeTime
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	wc := g.world.Config().World
	return int(wc.ViewWidth), int(wc.ViewHeight)
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.noticeTimer = max(0, g.noticeTimer-dt)
	g.hurtFlash = max(0, g.hurtFlash-dt)

	switch g.screen {
	case screenMenu:
		g.updateMenu()
	case screenPlay:
		g.updatePlay(dt)
	case screenUpgrade:
		g.updateUpgrade()
	case screenPause:
		g.updatePause()
	case screenOver:
		g.updateOver()
	}
	return nil
}

func (g *Game) updatePlay(dt float64) {
	w := g.world
	if g.keys.pressed(input.Pause) {
		g.screen = screenPause
		return
	}
	if g.keys.pressed(input.ToggleAuto) {
		w.AutoAttack = !w.AutoAttack
		g.prefs.AutoAttack = w.AutoAttack
		if w.AutoAttack {
			g.say("Auto-attack on")
		} else {
			g.say("Auto-attack off")
		}
	}
	if g.keys.pressed(input.ReloadBalance) {
		g.reloadBalance()
	}

	if g.resumeWait > 0 {
		g.resumeWait = max(0, g.resumeWait-dt)
		return
	}

	w.Advance(dt, g.keys.poll(w.View()))

	if w.Player.ConsumeLevelUp() {
		if g.offers = w.OfferUpgrades(upgradeChoices); len(g.offers) > 0 {
			g.screen = screenUpgrade
		}
	}
	if w.Over {
		g.screen = screenOver
	}
}

func (g *Game) reloadBalance() {
	if err := g.store.Reload(); err != nil {
		g.log.Error("balance reload failed", zap.Error(err))
		g.say("Balance reload failed")
		return
	}
	g.difficulties, g.choice = g.store.Difficulties()
	g.prefs.Difficulty = g.store.DifficultyName()
	g.world.Reconfigure(g.store.Config(), g.store.Difficulty())
	g.say("Balance reloaded")
}

// start begins a fresh run on the selected difficulty.
func (g *Game) start() {
	name := g.difficulties[g.choice]
	if err := g.store.SetDifficulty(name); err != nil {
		g.log.Warn("difficulty unavailable", zap.Error(err))
	}
	g.prefs.Difficulty = g.store.DifficultyName()
	g.world.Reconfigure(g.store.Config(), g.store.Difficulty())
	g.world.Reset()
	g.offers = nil
	g.resumeWait = 0
	g.screen = screenPlay
}

func (g *Game) updateMenu() {
	n := len(g.difficulties)
	if g.keys.pressed(input.MoveUp) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.choice = (g.choice + n - 1) % n
	}
	if g.keys.pressed(input.MoveDown) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.choice = (g.choice + 1) % n
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.start()
	}
}

func (g *Game) updateUpgrade() {
	pick := -1
	digits := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	for i, k := range digits {
		if i < len(g.offers) && inpututil.IsKeyJustPressed(k) {
			pick = i
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i := range g.offers {
			if g.cardRect(i).Overlaps(geom.Rect{X: float64(x), Y: float64(y), W: 1, H: 1}) {
				pick = i
			}
		}
	}
	if pick < 0 {
		return
	}
	g.world.ChooseUpgrade(g.offers[pick])
	g.offers = nil
	g.resumeWait = resumeGrace
	g.screen = screenPlay
}

func (g *Game) updatePause() {
	switch {
	case g.keys.pressed(input.Pause):
		g.screen = screenPlay
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.screen = screenMenu
	}
}

func (g *Game) updateOver() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.start()
	case g.keys.pressed(input.Pause):
		g.screen = screenMenu
	}
}

// save writes the preferences picked up during the session.
func (g *Game) save() {
	if g.prefsPath == "" {
		return
	}
	if err := g.prefs.Save(g.prefsPath); err != nil {
		g.log.Error("save settings", zap.Error(err))
	}
}
