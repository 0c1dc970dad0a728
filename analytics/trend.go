package analytics

import "github.com/jonwraymond/courtside/team"

// Trend direction labels.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendUnknown   = "unknown"
)

// Momentum direction labels.
const (
	MomentumPositive = "positive"
	MomentumNegative = "negative"
)

// TrendAnalysis compares the newer half of a recent-game window against the
// older half.
type TrendAnalysis struct {
	Trend              string
	RecentWinRate      float64
	PreviousWinRate    float64
	RecentScoringAvg   float64
	PreviousScoringAvg float64
	ScoringChange      float64
	Momentum           string
}

// trendWindow is the number of recent games a trend split expects. With
// fewer games the split still happens on whatever is available and the
// comparison degrades; callers must tolerate small-sample results.
const trendWindow = 20

// Trend splits games (most recent first) into a newer half [0:10) and an
// older half [10:20) and compares win rates and scoring averages.
// An empty list yields TrendUnknown with neutral win rates.
func Trend(games []team.GameRecord) TrendAnalysis {
	if len(games) == 0 {
		return TrendAnalysis{
			Trend:           TrendUnknown,
			RecentWinRate:   0.5,
			PreviousWinRate: 0.5,
		}
	}

	if len(games) > trendWindow {
		games = games[:trendWindow]
	}
	split := len(games)
	if split > trendWindow/2 {
		split = trendWindow / 2
	}
	newer, older := games[:split], games[split:]

	newerWins := countWins(newer)
	olderWins := countWins(older)
	newerAvg := avgPoints(newer)
	olderAvg := avgPoints(older)

	t := TrendAnalysis{
		Trend:              TrendDeclining,
		RecentWinRate:      winRate(newerWins, len(newer)),
		PreviousWinRate:    winRate(olderWins, len(older)),
		RecentScoringAvg:   round1(newerAvg),
		PreviousScoringAvg: round1(olderAvg),
		ScoringChange:      round1(newerAvg - olderAvg),
		Momentum:           MomentumNegative,
	}
	if newerWins > olderWins {
		t.Trend = TrendImproving
		if newerAvg > olderAvg {
			t.Momentum = MomentumPositive
		}
	}
	return t
}

func countWins(games []team.GameRecord) int {
	wins := 0
	for _, g := range games {
		if g.Result == team.Win {
			wins++
		}
	}
	return wins
}

func avgPoints(games []team.GameRecord) float64 {
	if len(games) == 0 {
		return 0
	}
	total := 0
	for _, g := range games {
		total += g.TeamPoints
	}
	return float64(total) / float64(len(games))
}

func winRate(wins, played int) float64 {
	if played == 0 {
		return 0
	}
	return float64(wins) / float64(played)
}
