package analytics

import (
	"testing"

	"github.com/jonwraymond/courtside/team"
)

func TestMetrics(t *testing.T) {
	g := []team.GameRecord{
		scoredGame(w, 110, 100, 0.50),
		scoredGame(w, 112, 108, 0.48),
		scoredGame(l, 95, 105, 0.43),
		scoredGame(w, 108, 102, 0.51),
	}

	got := Metrics(g)
	if got.Wins != 3 || got.Losses != 1 {
		t.Errorf("record = %d-%d, want 3-1", got.Wins, got.Losses)
	}
	if got.WinRate != 0.75 {
		t.Errorf("WinRate = %.3f, want 0.750", got.WinRate)
	}
	if got.AvgPoints != 106.3 {
		t.Errorf("AvgPoints = %.1f, want 106.3", got.AvgPoints)
	}
	if got.AvgMargin != 2.5 {
		t.Errorf("AvgMargin = %.1f, want 2.5", got.AvgMargin)
	}
	if got.AvgFieldGoalPct != 48.0 {
		t.Errorf("AvgFieldGoalPct = %.1f, want 48.0", got.AvgFieldGoalPct)
	}
	// Points spread of these four games sits under the threshold.
	if got.Consistency != ConsistencyHigh {
		t.Errorf("Consistency = %q, want high", got.Consistency)
	}
}

func TestMetrics_Consistency(t *testing.T) {
	tests := []struct {
		name   string
		points []int
		want   string
	}{
		{"tight scoring", []int{108, 110, 109, 111}, ConsistencyHigh},
		{"volatile scoring", []int{120, 90, 130, 85}, ConsistencyModerate},
		{"single game has no spread", []int{100}, ConsistencyHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := make([]team.GameRecord, len(tt.points))
			for i, p := range tt.points {
				g[i] = scoredGame(w, p, p-5, 0.45)
			}
			if got := Metrics(g).Consistency; got != tt.want {
				t.Errorf("Consistency = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMetrics_Empty(t *testing.T) {
	got := Metrics(nil)
	if got.Consistency != ConsistencyUnknown {
		t.Errorf("Consistency = %q, want unknown", got.Consistency)
	}
	if got.WinRate != 0 || got.AvgPoints != 0 {
		t.Errorf("empty metrics = %+v, want zero values", got)
	}
}

func TestStddev(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    float64
	}{
		{"no samples", nil, 0},
		{"one sample", []float64{42}, 0},
		{"identical samples", []float64{7, 7, 7}, 0},
		{"known spread", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 2.138089935299395},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stddev(tt.samples)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("stddev = %v, want %v", got, tt.want)
			}
		})
	}
}
