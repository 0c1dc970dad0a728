package analytics

import (
	"testing"

	"github.com/jonwraymond/courtside/team"
)

// games builds minimal records, most recent first, from result letters.
func games(results ...team.GameResult) []team.GameRecord {
	out := make([]team.GameRecord, len(results))
	for i, r := range results {
		out[i] = team.GameRecord{Result: r}
	}
	return out
}

// scoredGame builds a record with a final score and shooting percentage.
func scoredGame(result team.GameResult, pts, opp int, fgPct float64) team.GameRecord {
	return team.GameRecord{
		Result:         result,
		TeamPoints:     pts,
		OpponentPoints: opp,
		PlusMinus:      pts - opp,
		FieldGoalPct:   fgPct,
	}
}

const (
	w = team.Win
	l = team.Loss
)

func TestStreak(t *testing.T) {
	tests := []struct {
		name       string
		games      []team.GameRecord
		wantType   StreakType
		wantLength int
	}{
		{
			name:       "winning run stops at first loss",
			games:      games(w, w, w, l, w),
			wantType:   StreakWinning,
			wantLength: 3,
		},
		{
			name:       "losing run",
			games:      games(l, l, w, w, w),
			wantType:   StreakLosing,
			wantLength: 2,
		},
		{
			name:       "single game",
			games:      games(w),
			wantType:   StreakWinning,
			wantLength: 1,
		},
		{
			name:       "uniform results count every game",
			games:      games(l, l, l, l),
			wantType:   StreakLosing,
			wantLength: 4,
		},
		{
			name:       "no games",
			games:      nil,
			wantType:   StreakUnknown,
			wantLength: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Streak(tt.games)
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Length != tt.wantLength {
				t.Errorf("Length = %d, want %d", got.Length, tt.wantLength)
			}
		})
	}
}

func TestStreak_LastTenWindow(t *testing.T) {
	// Twelve games: the window must ignore the two oldest wins.
	g := games(w, w, w, l, w, l, l, w, l, l, w, w)

	got := Streak(g)
	if got.LastTen.Wins != 5 || got.LastTen.Losses != 5 {
		t.Errorf("LastTen = %d-%d, want 5-5", got.LastTen.Wins, got.LastTen.Losses)
	}
}

func TestStreak_LastTenShortSchedule(t *testing.T) {
	got := Streak(games(w, l, w))
	if got.LastTen.Wins != 2 || got.LastTen.Losses != 1 {
		t.Errorf("LastTen = %d-%d, want 2-1", got.LastTen.Wins, got.LastTen.Losses)
	}
}
