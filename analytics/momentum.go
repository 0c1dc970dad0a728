package analytics

import "math"

// Sentiment labels with their score thresholds.
const (
	SentimentExcellent  = "excellent"  // score >= 75
	SentimentPositive   = "positive"   // score >= 60
	SentimentNeutral    = "neutral"    // score >= 40
	SentimentConcerning = "concerning" // below 40
)

// TrendStable is reported when the underlying trend is degenerate.
const TrendStable = "stable"

// streakAdjustmentCap bounds the streak contribution: 3 points per
// consecutive game, at most 20.
const (
	streakPointsPerGame = 3
	streakAdjustmentCap = 20
)

// MomentumScore is a bounded [0,100] reading of how the team is rolling.
type MomentumScore struct {
	Score     float64
	Sentiment string
	Trend     string
}

// Momentum combines the recent win rate, the current streak and the trend
// direction into one clamped score: base 50, shifted by
// (recentWinRate-0.5)*60, adjusted up to ±20 for the streak and ±10 for
// trend momentum.
func Momentum(trend TrendAnalysis, streak StreakSummary) MomentumScore {
	score := 50 + (trend.RecentWinRate-0.5)*60

	adj := math.Min(float64(streak.Length)*streakPointsPerGame, streakAdjustmentCap)
	switch streak.Type {
	case StreakWinning:
		score += adj
	case StreakLosing:
		score -= adj
	}

	switch trend.Momentum {
	case MomentumPositive:
		score += 10
	case MomentumNegative:
		score -= 10
	}

	score = math.Max(0, math.Min(100, score))

	sentiment := SentimentConcerning
	switch {
	case score >= 75:
		sentiment = SentimentExcellent
	case score >= 60:
		sentiment = SentimentPositive
	case score >= 40:
		sentiment = SentimentNeutral
	}

	label := trend.Trend
	if label == "" || label == TrendUnknown {
		label = TrendStable
	}

	return MomentumScore{
		Score:     round1(score),
		Sentiment: sentiment,
		Trend:     label,
	}
}
