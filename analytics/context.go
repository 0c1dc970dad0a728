package analytics

import "github.com/jonwraymond/courtside/team"

// Competitive tier labels.
const (
	TierContender = "championship_contender"
	TierPlayIn    = "play_in_team"
	TierRebuild   = "rebuild_mode"
	TierUnknown   = "unknown"
)

// Playoff status labels.
const (
	PlayoffGuaranteed = "guaranteed"
	PlayoffLikely     = "likely"
	PlayoffUnlikely   = "unlikely"
	PlayoffUnknown    = "unknown"
)

// Rank thresholds are inclusive: rank 6 still contends, rank 10 still
// reaches the play-in.
const (
	contenderRankCeiling = 6
	playInRankCeiling    = 10
)

// CompetitiveContext maps a standings position onto a tier and playoff
// outlook.
type CompetitiveContext struct {
	LeagueRank    int
	Tier          string
	PlayoffStatus string
	WinPct        float64
	GamesBack     float64
}

// Competitive derives the team's competitive position from its standings
// row. A nil snapshot yields the neutral fallback (mid-table rank, unknown
// tier, even win percentage) so report assembly stays total.
func Competitive(standings *team.StandingsSnapshot) CompetitiveContext {
	if standings == nil {
		return CompetitiveContext{
			LeagueRank:    15,
			Tier:          TierUnknown,
			PlayoffStatus: PlayoffUnknown,
			WinPct:        0.5,
		}
	}

	tier, status := TierRebuild, PlayoffUnlikely
	switch {
	case standings.LeagueRank <= contenderRankCeiling:
		tier, status = TierContender, PlayoffGuaranteed
	case standings.LeagueRank <= playInRankCeiling:
		tier, status = TierPlayIn, PlayoffLikely
	}

	return CompetitiveContext{
		LeagueRank:    standings.LeagueRank,
		Tier:          tier,
		PlayoffStatus: status,
		WinPct:        standings.WinPct,
		GamesBack:     standings.GamesBack,
	}
}
