// Command balance-sim plays headless runs with a scripted pilot and reports
// how long they last, for tuning balance files without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"lasthuman/internal/balance"
	"lasthuman/internal/logging"
)

func main() {
	var (
		balancePath = flag.String("balance", "balance.yaml", "balance file (missing means defaults)")
		difficulty  = flag.String("difficulty", "normal", "difficulty preset")
		runs        = flag.Int("runs", 20, "number of runs")
		seed        = flag.Int64("seed", 0, "first seed; 0 picks one from the clock")
		limit       = flag.Duration("duration", 10*time.Minute, "simulated time cap per run")
		logLevel    = flag.String("log-level", "warn", "log level")
		logFormat   = flag.String("log-format", "console", "console or json")
	)
	flag.Parse()

	log, err := logging.New(*logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "balance-sim:", err)
		os.Exit(1)
	}
	defer log.Sync()

	store, err := balance.NewStore(*balancePath, *difficulty, log)
	if err != nil {
		log.Fatal("load balance", zap.Error(err))
	}
	if *runs <= 0 {
		log.Fatal("runs must be positive", zap.Int("runs", *runs))
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg, mult := store.Config(), store.Difficulty()
	results := make([]result, 0, *runs)
	for i := 0; i < *runs; i++ {
		r := play(cfg, mult, *seed+int64(i), limit.Seconds(), log)
		log.Info("run finished",
			zap.Stringer("run", r.ID),
			zap.Int64("seed", r.Seed),
			zap.Float64("survival", r.Stats.Survival),
			zap.Int("level", r.Stats.Level))
		results = append(results, r)
	}

	if err := writeReport(os.Stdout, store.DifficultyName(), results); err != nil {
		log.Fatal("write report", zap.Error(err))
	}
}
