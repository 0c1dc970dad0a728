package analytics

import (
	"math"

	"github.com/jonwraymond/courtside/team"
)

// Consistency labels.
const (
	ConsistencyHigh     = "high"
	ConsistencyModerate = "moderate"
	ConsistencyUnknown  = "unknown"
)

// consistencyThreshold is the points standard deviation below which scoring
// counts as consistent.
const consistencyThreshold = 8.0

// PerformanceMetrics aggregates a recent-game window.
type PerformanceMetrics struct {
	WinRate         float64
	Wins            int
	Losses          int
	AvgPoints       float64
	AvgMargin       float64
	AvgFieldGoalPct float64
	Consistency     string
}

// Metrics computes performance aggregates over games (most recent first).
// An empty list yields a zero-valued result with unknown consistency.
func Metrics(games []team.GameRecord) PerformanceMetrics {
	if len(games) == 0 {
		return PerformanceMetrics{Consistency: ConsistencyUnknown}
	}

	wins := countWins(games)
	var points, margins, fgPcts float64
	pointSamples := make([]float64, 0, len(games))
	for _, g := range games {
		points += float64(g.TeamPoints)
		margins += float64(g.TeamPoints - g.OpponentPoints)
		fgPcts += g.FieldGoalPct
		pointSamples = append(pointSamples, float64(g.TeamPoints))
	}
	n := float64(len(games))

	consistency := ConsistencyModerate
	if stddev(pointSamples) < consistencyThreshold {
		consistency = ConsistencyHigh
	}

	return PerformanceMetrics{
		WinRate:         round3(float64(wins) / n),
		Wins:            wins,
		Losses:          len(games) - wins,
		AvgPoints:       round1(points / n),
		AvgMargin:       round1(margins / n),
		AvgFieldGoalPct: round1(fgPcts / n * 100),
		Consistency:     consistency,
	}
}

// stddev is the sample standard deviation; fewer than two samples read as
// perfectly consistent.
func stddev(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(len(samples))

	var sq float64
	for _, s := range samples {
		d := s - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(samples)-1))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
