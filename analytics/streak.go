package analytics

import "github.com/jonwraymond/courtside/team"

// StreakType classifies the current run of identical results.
type StreakType string

const (
	StreakWinning StreakType = "winning"
	StreakLosing  StreakType = "losing"
	StreakUnknown StreakType = "unknown"
)

// Record is a wins/losses pair.
type Record struct {
	Wins   int
	Losses int
}

// StreakSummary describes the team's current run and its ten-game record.
type StreakSummary struct {
	Type    StreakType
	Length  int
	LastTen Record
}

// Streak computes the current streak from games ordered most recent first:
// the count of consecutive games matching the most recent game's result.
// An empty list yields StreakUnknown with length 0.
func Streak(games []team.GameRecord) StreakSummary {
	if len(games) == 0 {
		return StreakSummary{Type: StreakUnknown}
	}

	current := games[0].Result
	length := 0
	for _, g := range games {
		if g.Result != current {
			break
		}
		length++
	}

	summary := StreakSummary{
		Type:   StreakLosing,
		Length: length,
	}
	if current == team.Win {
		summary.Type = StreakWinning
	}

	window := games
	if len(window) > 10 {
		window = window[:10]
	}
	for _, g := range window {
		if g.Result == team.Win {
			summary.LastTen.Wins++
		} else {
			summary.LastTen.Losses++
		}
	}
	return summary
}
