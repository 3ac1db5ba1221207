package storage

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// SceneStats aggregates the sessions of one scene.
type SceneStats struct {
	SceneID       string        `csv:"scene"`
	Sessions      int           `csv:"sessions"`
	TotalPops     int           `csv:"total_pops"`
	MeanPops      float64       `csv:"mean_pops"`
	StdDevPops    float64       `csv:"stddev_pops"`
	MeanDuration  time.Duration `csv:"-"`
	MeanSeconds   float64       `csv:"mean_seconds"`
	PopsPerMinute float64       `csv:"pops_per_minute"`
	Combos        int           `csv:"combos"`
	Shots         int           `csv:"shots"`
	LastPlayed    time.Time     `csv:"last_played"`
}

// Summarize groups sessions by scene. Results are sorted by scene ID.
func Summarize(sessions []Session) []SceneStats {
	groups := make(map[string][]Session)
	for _, s := range sessions {
		groups[s.SceneID] = append(groups[s.SceneID], s)
	}

	out := make([]SceneStats, 0, len(groups))
	for id, group := range groups {
		pops := make([]float64, len(group))
		secs := make([]float64, len(group))
		st := SceneStats{SceneID: id, Sessions: len(group)}
		var totalSecs float64
		for i, s := range group {
			n := s.ManualPops + s.AutoPops
			pops[i] = float64(n)
			secs[i] = s.Duration().Seconds()
			totalSecs += secs[i]
			st.TotalPops += n
			st.Combos += s.Combos
			st.Shots += s.Shots
			if s.CreatedAt.After(st.LastPlayed) {
				st.LastPlayed = s.CreatedAt
			}
		}
		st.MeanPops = stat.Mean(pops, nil)
		if len(group) > 1 {
			st.StdDevPops = stat.StdDev(pops, nil)
		}
		st.MeanSeconds = stat.Mean(secs, nil)
		st.MeanDuration = time.Duration(st.MeanSeconds * float64(time.Second))
		if totalSecs > 0 {
			st.PopsPerMinute = float64(st.TotalPops) / (totalSecs / 60)
		}
		out = append(out, st)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].SceneID < out[j].SceneID })
	return out
}

// WriteSessionsCSV writes sessions as CSV with a header row.
func WriteSessionsCSV(w io.Writer, sessions []Session) error {
	if err := gocsv.Marshal(&sessions, w); err != nil {
		return fmt.Errorf("storage: write sessions csv: %w", err)
	}
	return nil
}

// WriteStatsCSV writes per-scene summaries as CSV with a header row.
func WriteStatsCSV(w io.Writer, stats []SceneStats) error {
	if err := gocsv.Marshal(&stats, w); err != nil {
		return fmt.Errorf("storage: write stats csv: %w", err)
	}
	return nil
}
