package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"lasthuman/internal/audio"
	"lasthuman/internal/balance"
	"lasthuman/internal/logging"
	"lasthuman/internal/settings"
	"lasthuman/internal/sim"
)

func main() {
	balancePath := flag.String("balance", "balance.yaml", "balance file (missing means defaults)")
	prefsPath := flag.String("settings", "settings.yaml", "settings file")
	logLevel := flag.String("log-level", "info", "log level")
	logFormat := flag.String("log-format", "console", "console or json")
	seed := flag.Int64("seed", 0, "world seed; 0 picks one from the clock")
	flag.Parse()

	log, err := logging.New(*logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lasthuman:", err)
		os.Exit(1)
	}
	defer log.Sync()

	prefs, err := settings.Load(*prefsPath)
	if err != nil {
		log.Warn("settings unreadable, using defaults", zap.Error(err))
	}

	store, err := balance.NewStore(*balancePath, prefs.Difficulty, log)
	if err != nil {
		log.Warn("balance unreadable, using defaults", zap.Error(err))
	}

	sfx := audio.New(prefs.SFXGain(), log)
	if err := sfx.Init(); err != nil {
		log.Warn("audio disabled", zap.Error(err))
	}
	defer sfx.Close()

	var opts []sim.Option
	if *seed != 0 {
		opts = append(opts, sim.WithRand(rand.New(rand.NewSource(*seed))))
	}

	g := NewGame(store, prefs, *prefsPath, sfx, opts, log)
	ebiten.SetWindowSize(prefs.Window.Width, prefs.Window.Height)
	ebiten.SetFullscreen(prefs.Window.Fullscreen)
	ebiten.SetWindowTitle("Last Human")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("game loop", zap.Error(err))
	}
	g.save()
}
