package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

type summary struct {
	Runs                  int
	Deaths                int
	MinSurvival           float64
	MedianSurvival        float64
	MeanSurvival          float64
	MaxSurvival           float64
	MeanLevel, MeanKills  float64
	MeanBosses, MeanTaken float64
}

func summarize(rs []result) summary {
	s := summary{Runs: len(rs)}
	if len(rs) == 0 {
		return s
	}
	surv := make([]float64, 0, len(rs))
	for _, r := range rs {
		st := r.Stats
		surv = append(surv, st.Survival)
		if r.Died {
			s.Deaths++
		}
		s.MeanSurvival += st.Survival
		s.MeanLevel += float64(st.Level)
		s.MeanKills += float64(st.Kills)
		s.MeanBosses += float64(st.BossesDefeated)
		s.MeanTaken += st.DamageTaken
	}
	n := float64(len(rs))
	s.MeanSurvival /= n
	s.MeanLevel /= n
	s.MeanKills /= n
	s.MeanBosses /= n
	s.MeanTaken /= n

	sort.Float64s(surv)
	s.MinSurvival = surv[0]
	s.MaxSurvival = surv[len(surv)-1]
	if mid := len(surv) / 2; len(surv)%2 == 1 {
		s.MedianSurvival = surv[mid]
	} else {
		s.MedianSurvival = (surv[mid-1] + surv[mid]) / 2
	}
	return s
}

func writeReport(out io.Writer, difficulty string, rs []result) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "run\tseed\tsurvival\tlevel\tkills\tbosses\tdamage\tupgrades\tend\t")
	for _, r := range rs {
		end := "timeout"
		if r.Died {
			end = "died"
		}
		st := r.Stats
		fmt.Fprintf(tw, "%s\t%d\t%.1fs\t%d\t%d\t%d\t%.0f\t%d\t%s\t\n",
			r.ID.String()[:8], r.Seed, st.Survival, st.Level, st.Kills, st.BossesDefeated, st.DamageTaken, r.Upgrades, end)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := summarize(rs)
	_, err := fmt.Fprintf(out,
		"\n%s: %d runs, %d died\nsurvival min %.1fs  median %.1fs  mean %.1fs  max %.1fs\nmean level %.2f  kills %.1f  bosses %.2f  damage taken %.1f\n",
		difficulty, s.Runs, s.Deaths,
		s.MinSurvival, s.MedianSurvival, s.MeanSurvival, s.MaxSurvival,
		s.MeanLevel, s.MeanKills, s.MeanBosses, s.MeanTaken)
	return err
}
