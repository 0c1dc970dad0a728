package franchise

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/jonwraymond/courtside/analytics"
)

func TestBuildFullReport(t *testing.T) {
	p := &statProvider{}
	c, clock := newTestClient(t, p)

	report := c.BuildFullReport(context.Background(), false)

	if len(report.Degraded) != 0 {
		t.Fatalf("Degraded = %v, want none", report.Degraded)
	}
	if !report.GeneratedAt.Equal(clock.Now()) {
		t.Errorf("GeneratedAt = %v, want %v", report.GeneratedAt, clock.Now())
	}

	if report.TeamInfo.Name != "Los Angeles Lakers" {
		t.Errorf("TeamInfo = %+v", report.TeamInfo)
	}
	if len(report.RecentGames) != defaultGamesWindow {
		t.Errorf("got %d recent games, want %d", len(report.RecentGames), defaultGamesWindow)
	}
	if report.WinStreak.Type != analytics.StreakWinning || report.WinStreak.Length != 3 {
		t.Errorf("WinStreak = %+v", report.WinStreak)
	}
	if len(report.TopPerformers) != 3 || report.TopPerformers[0].Name != "Luka Doncic" {
		t.Errorf("TopPerformers = %+v", report.TopPerformers)
	}
	if report.SeasonStats.Wins != 30 {
		t.Errorf("SeasonStats = %+v", report.SeasonStats)
	}
	if report.Standings.LeagueRank != 4 {
		t.Errorf("Standings = %+v", report.Standings)
	}
	if len(report.Historical) != defaultHistorySeasons {
		t.Errorf("got %d historical records, want %d", len(report.Historical), defaultHistorySeasons)
	}
	if report.Competitive.Tier != analytics.TierContender {
		t.Errorf("Competitive = %+v", report.Competitive)
	}
	if report.Metrics.Wins != 8 || report.Metrics.Losses != 4 {
		t.Errorf("Metrics = %+v", report.Metrics)
	}
	if report.Momentum.Score < 0 || report.Momentum.Score > 100 {
		t.Errorf("Momentum = %+v", report.Momentum)
	}
	if len(report.Roster) != 3 {
		t.Errorf("got %d roster entries, want 3", len(report.Roster))
	}
}

// TestBuildFullReport_StandingsFailure verifies one failed resource leaves
// the rest of the report intact while its dependents carry fallbacks.
func TestBuildFullReport_StandingsFailure(t *testing.T) {
	p := &statProvider{fail: map[string]bool{"standings": true}}
	c, _ := newTestClient(t, p)

	report := c.BuildFullReport(context.Background(), false)

	want := []string{SectionCompetitive, SectionStandings}
	if !reflect.DeepEqual(report.Degraded, want) {
		t.Fatalf("Degraded = %v, want %v", report.Degraded, want)
	}

	// The dependent section degrades to the neutral fallback.
	if report.Competitive.Tier != analytics.TierUnknown || report.Competitive.LeagueRank != 15 {
		t.Errorf("Competitive = %+v, want neutral fallback", report.Competitive)
	}

	// Everything else still populates.
	if len(report.RecentGames) != defaultGamesWindow {
		t.Errorf("got %d recent games, want %d", len(report.RecentGames), defaultGamesWindow)
	}
	if report.TeamInfo.Name != "Los Angeles Lakers" {
		t.Errorf("TeamInfo = %+v", report.TeamInfo)
	}
	if len(report.TopPerformers) != 3 {
		t.Errorf("TopPerformers = %+v", report.TopPerformers)
	}
}

// TestBuildFullReport_GameLogFailure verifies the game-derived cluster
// degrades together.
func TestBuildFullReport_GameLogFailure(t *testing.T) {
	p := &statProvider{fail: map[string]bool{"gamelog": true}}
	c, _ := newTestClient(t, p)

	report := c.BuildFullReport(context.Background(), false)

	want := []string{SectionMetrics, SectionMomentum, SectionRecentGames, SectionTrends, SectionWinStreak}
	if !reflect.DeepEqual(report.Degraded, want) {
		t.Fatalf("Degraded = %v, want %v", report.Degraded, want)
	}

	if report.WinStreak.Type != analytics.StreakUnknown {
		t.Errorf("WinStreak = %+v, want unknown", report.WinStreak)
	}
	if report.Trends.Trend != analytics.TrendUnknown {
		t.Errorf("Trends = %+v, want unknown", report.Trends)
	}
	if report.Metrics.Consistency != analytics.ConsistencyUnknown {
		t.Errorf("Metrics = %+v, want unknown consistency", report.Metrics)
	}
	if report.Momentum.Score != 50 || report.Momentum.Trend != analytics.TrendStable {
		t.Errorf("Momentum = %+v, want neutral stable", report.Momentum)
	}
	if report.Standings.LeagueRank != 4 {
		t.Errorf("Standings = %+v, want populated", report.Standings)
	}
}

// TestBuildFullReport_TotalOutage verifies assembly stays total when every
// resource fails.
func TestBuildFullReport_TotalOutage(t *testing.T) {
	p := &statProvider{fail: map[string]bool{
		"gamelog": true, "standings": true, "roster": true,
		"playerlog": true, "details": true, "yearbyyear": true,
	}}
	c, clock := newTestClient(t, p)

	report := c.BuildFullReport(context.Background(), false)

	want := []string{
		SectionCompetitive, SectionHistorical, SectionMetrics, SectionMomentum,
		SectionRecentGames, SectionRoster, SectionSeasonStats, SectionStandings,
		SectionTeamInfo, SectionPerformers, SectionTrends, SectionWinStreak,
	}
	if !reflect.DeepEqual(report.Degraded, want) {
		t.Fatalf("Degraded = %v, want %v", report.Degraded, want)
	}
	if !report.GeneratedAt.Equal(clock.Now()) {
		t.Errorf("GeneratedAt = %v, want %v", report.GeneratedAt, clock.Now())
	}
	if report.Competitive.Tier != analytics.TierUnknown {
		t.Errorf("Competitive = %+v, want neutral fallback", report.Competitive)
	}
}

func TestBuildFullReport_CachesAcrossReports(t *testing.T) {
	p := &statProvider{}
	c, _ := newTestClient(t, p)
	ctx := context.Background()

	c.BuildFullReport(ctx, false)
	first := p.gameLogCalls.Load()
	c.BuildFullReport(ctx, false)

	if got := p.gameLogCalls.Load(); got != first {
		t.Errorf("game log calls = %d after second report, want %d", got, first)
	}
	if got := p.standingsCalls.Load(); got != 1 {
		t.Errorf("standings calls = %d, want 1", got)
	}
}

func TestBuildFullReport_ForceRefresh(t *testing.T) {
	p := &statProvider{}
	c, _ := newTestClient(t, p)
	ctx := context.Background()

	c.BuildFullReport(ctx, false)
	c.BuildFullReport(ctx, true)

	if got := p.standingsCalls.Load(); got != 2 {
		t.Errorf("standings calls = %d, want 2 after refresh", got)
	}
	if got := p.detailsCalls.Load(); got != 2 {
		t.Errorf("details calls = %d, want 2 after refresh", got)
	}
}

func TestBuildFullReport_StampsWithInjectedClock(t *testing.T) {
	p := &statProvider{}
	c, clock := newTestClient(t, p)
	ctx := context.Background()

	before := clock.Now()
	first := c.BuildFullReport(ctx, false)
	clock.Advance(time.Minute)
	second := c.BuildFullReport(ctx, false)

	if !first.GeneratedAt.Equal(before) {
		t.Errorf("first GeneratedAt = %v, want %v", first.GeneratedAt, before)
	}
	if !second.GeneratedAt.Equal(before.Add(time.Minute)) {
		t.Errorf("second GeneratedAt = %v, want %v", second.GeneratedAt, before.Add(time.Minute))
	}
}
