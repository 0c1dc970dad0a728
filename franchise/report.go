package franchise

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jonwraymond/courtside/analytics"
	"github.com/jonwraymond/courtside/observe"
	"github.com/jonwraymond/courtside/team"
)

// Report section names, as flagged in Report.Degraded.
const (
	SectionTeamInfo    = "team_info"
	SectionRecentGames = "recent_games"
	SectionWinStreak   = "win_streak"
	SectionPerformers  = "top_performers"
	SectionSeasonStats = "season_stats"
	SectionStandings   = "standings"
	SectionHistorical  = "historical"
	SectionTrends      = "trends"
	SectionMetrics     = "metrics"
	SectionCompetitive = "competitive_context"
	SectionMomentum    = "momentum"
	SectionRoster      = "roster"
)

// Report is the composite snapshot assembled by BuildFullReport.
//
// Sections listed in Degraded carry zeroed or neutral defaults because
// their underlying fetch failed; everything else is populated.
type Report struct {
	TeamInfo      team.TeamDetails
	RecentGames   []team.GameRecord
	WinStreak     analytics.StreakSummary
	TopPerformers []analytics.PlayerForm
	SeasonStats   team.SeasonStats
	Standings     team.StandingsSnapshot
	Historical    []team.SeasonRecord
	Trends        analytics.TrendAnalysis
	Metrics       analytics.PerformanceMetrics
	Competitive   analytics.CompetitiveContext
	Momentum      analytics.MomentumScore
	Roster        []team.RosterEntry

	Degraded    []string
	GeneratedAt time.Time
}

// BuildFullReport fans out to every resource and derivation and assembles
// one composite snapshot. With forceRefresh the cache is cleared first, so
// every section re-fetches.
//
// A failure in one section never aborts the others; failed sections carry
// defaults and are named in Report.Degraded.
func (c *Client) BuildFullReport(ctx context.Context, forceRefresh bool) Report {
	if forceRefresh {
		c.store.Clear()
	}

	var (
		mu     sync.Mutex
		report Report
		wg     sync.WaitGroup
	)
	degrade := func(sections ...string) {
		mu.Lock()
		report.Degraded = append(report.Degraded, sections...)
		mu.Unlock()
	}
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(func() {
		details, err := c.GetTeamDetails(ctx)
		if err != nil {
			degrade(SectionTeamInfo)
			return
		}
		mu.Lock()
		report.TeamInfo = details
		mu.Unlock()
	})

	run(func() {
		games, err := c.GetRecentGames(ctx, defaultGamesWindow)
		if err != nil {
			degrade(SectionRecentGames)
			return
		}
		mu.Lock()
		report.RecentGames = games
		mu.Unlock()
	})

	run(func() {
		forms, err := c.topPerformers(ctx, defaultPerformerWindow)
		if err != nil {
			degrade(SectionPerformers)
			return
		}
		mu.Lock()
		report.TopPerformers = forms
		mu.Unlock()
	})

	run(func() {
		stats, err := c.GetSeasonStats(ctx)
		if err != nil {
			degrade(SectionSeasonStats)
			return
		}
		mu.Lock()
		report.SeasonStats = stats
		mu.Unlock()
	})

	run(func() {
		standings, err := c.GetStandings(ctx)
		if err != nil {
			degrade(SectionStandings, SectionCompetitive)
			mu.Lock()
			report.Competitive = analytics.Competitive(nil)
			mu.Unlock()
			return
		}
		mu.Lock()
		report.Standings = standings
		report.Competitive = analytics.Competitive(&standings)
		mu.Unlock()
	})

	run(func() {
		records, err := c.GetHistoricalPerformance(ctx, defaultHistorySeasons)
		if err != nil {
			degrade(SectionHistorical)
			return
		}
		mu.Lock()
		report.Historical = records
		mu.Unlock()
	})

	run(func() {
		roster, err := c.GetRoster(ctx)
		if err != nil {
			degrade(SectionRoster)
			return
		}
		mu.Lock()
		report.Roster = roster
		mu.Unlock()
	})

	// Streak, trends, metrics and momentum all derive from the same
	// recent-game window; one goroutine keeps them consistent with each
	// other within a single report.
	run(func() {
		games, err := c.GetRecentGames(ctx, streakWindow)
		if err != nil {
			degrade(SectionWinStreak, SectionTrends, SectionMetrics, SectionMomentum)
			games = nil
		}
		streak := analytics.Streak(games)
		trend := analytics.Trend(games)
		metrics := analytics.Metrics(games)
		momentum := analytics.Momentum(trend, streak)

		mu.Lock()
		report.WinStreak = streak
		report.Trends = trend
		report.Metrics = metrics
		report.Momentum = momentum
		mu.Unlock()
	})

	wg.Wait()

	sort.Strings(report.Degraded)
	report.GeneratedAt = c.clock.Now()

	if len(report.Degraded) > 0 {
		c.logger.Warn(ctx, "report assembled with degraded sections",
			observe.Field{Key: "sections", Value: report.Degraded})
	} else {
		c.logger.Info(ctx, "report assembled")
	}
	return report
}
