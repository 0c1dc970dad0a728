package franchise

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jonwraymond/courtside/analytics"
	"github.com/jonwraymond/courtside/cache"
	"github.com/jonwraymond/courtside/nba"
	"github.com/jonwraymond/courtside/observe"
	"github.com/jonwraymond/courtside/team"
)

// CurrentSeason is the season queried for live resources.
const CurrentSeason = "2025-26"

// DefaultTeamName is the franchise tracked when none is configured.
const DefaultTeamName = "Los Angeles Lakers"

// Default request windows.
const (
	defaultGamesWindow     = 10
	defaultMetricsWindow   = 20
	defaultPerformerWindow = 5
	defaultHistorySeasons  = 3

	// streakWindow is the game window streak and trend derivations read.
	streakWindow = 20

	// performerPoolSize bounds how many roster players are scouted.
	performerPoolSize = 10
)

// TTLConfig sets per-resource freshness bounds. Zero fields take defaults.
// Historical season records always cache permanently.
type TTLConfig struct {
	Games       time.Duration // default 5m
	Standings   time.Duration // default 5m
	Roster      time.Duration // default 1h
	Performers  time.Duration // default 1h
	Details     time.Duration // default 24h
	SeasonStats time.Duration // default 24h
}

func (c TTLConfig) withDefaults() TTLConfig {
	if c.Games <= 0 {
		c.Games = 5 * time.Minute
	}
	if c.Standings <= 0 {
		c.Standings = 5 * time.Minute
	}
	if c.Roster <= 0 {
		c.Roster = time.Hour
	}
	if c.Performers <= 0 {
		c.Performers = time.Hour
	}
	if c.Details <= 0 {
		c.Details = 24 * time.Hour
	}
	if c.SeasonStats <= 0 {
		c.SeasonStats = 24 * time.Hour
	}
	return c
}

// Config configures a Client.
type Config struct {
	// TeamName is the franchise full name. Default: DefaultTeamName.
	TeamName string

	// Season in provider notation. Default: CurrentSeason.
	Season string

	// Provider is the external data provider. Required.
	Provider nba.Provider

	// Cache is the backing store. A private store is created when nil.
	Cache *cache.Store

	// Clock stamps reports. Default: the wall clock.
	Clock clockwork.Clock

	// Logger receives degradation and assembly events. Default: noop.
	Logger observe.Logger

	// TTL overrides per-resource freshness bounds.
	TTL TTLConfig
}

// Client answers stats queries for one franchise, reading through a cache
// bound to the external provider.
type Client struct {
	provider nba.Provider
	store    *cache.Store
	clock    clockwork.Clock
	logger   observe.Logger
	team     nba.Team
	season   string
	ttl      TTLConfig
}

// New creates a Client for the configured franchise. Unknown team names
// report nba.ErrNotFound.
func New(cfg Config) (*Client, error) {
	if cfg.Provider == nil {
		return nil, errors.New("franchise: provider is required")
	}
	if cfg.TeamName == "" {
		cfg.TeamName = DefaultTeamName
	}
	if cfg.Season == "" {
		cfg.Season = CurrentSeason
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = observe.NoopLogger()
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.NewStore(cache.StoreConfig{Clock: cfg.Clock})
	}

	t, err := nba.FindTeam(cfg.TeamName)
	if err != nil {
		return nil, err
	}

	return &Client{
		provider: cfg.Provider,
		store:    cfg.Cache,
		clock:    cfg.Clock,
		logger:   cfg.Logger.With(observe.Field{Key: "team", Value: t.Abbreviation}),
		team:     t,
		season:   cfg.Season,
		ttl:      cfg.TTL.withDefaults(),
	}, nil
}

// Team returns the tracked franchise.
func (c *Client) Team() nba.Team {
	return c.team
}

// GetRecentGames returns the n most recent completed games, date descending.
func (c *Client) GetRecentGames(ctx context.Context, n int) ([]team.GameRecord, error) {
	if n <= 0 {
		n = defaultGamesWindow
	}
	games, err := cache.LoadTyped(ctx, c.store, cache.Key("games", n), cache.FixedTTL(c.ttl.Games),
		func(ctx context.Context) ([]team.GameRecord, error) {
			return team.FetchRecentGames(ctx, c.provider, c.team.ID, c.season, n)
		})
	if err != nil {
		return nil, err
	}
	return slices.Clone(games), nil
}

// GetStandings returns the team's current standings row.
func (c *Client) GetStandings(ctx context.Context) (team.StandingsSnapshot, error) {
	return cache.LoadTyped(ctx, c.store, "standings", cache.FixedTTL(c.ttl.Standings),
		func(ctx context.Context) (team.StandingsSnapshot, error) {
			return team.FetchStandings(ctx, c.provider, c.team.ID)
		})
}

// GetRoster returns the full current roster.
func (c *Client) GetRoster(ctx context.Context) ([]team.RosterEntry, error) {
	roster, err := cache.LoadTyped(ctx, c.store, "roster", cache.FixedTTL(c.ttl.Roster),
		func(ctx context.Context) ([]team.RosterEntry, error) {
			return team.FetchRoster(ctx, c.provider, c.team.ID)
		})
	if err != nil {
		return nil, err
	}
	return slices.Clone(roster), nil
}

// GetTeamDetails returns franchise metadata.
func (c *Client) GetTeamDetails(ctx context.Context) (team.TeamDetails, error) {
	return cache.LoadTyped(ctx, c.store, "details", cache.FixedTTL(c.ttl.Details),
		func(ctx context.Context) (team.TeamDetails, error) {
			return team.FetchTeamDetails(ctx, c.provider, c.team.ID)
		})
}

// GetSeasonStats returns the current season's aggregate row.
func (c *Client) GetSeasonStats(ctx context.Context) (team.SeasonStats, error) {
	return cache.LoadTyped(ctx, c.store, "season", cache.FixedTTL(c.ttl.SeasonStats),
		func(ctx context.Context) (team.SeasonStats, error) {
			return team.FetchSeasonStats(ctx, c.provider, c.team.ID, c.season)
		})
}

// GetHistoricalPerformance returns up to n closed-season records. Closed
// seasons never change upstream, so these cache permanently.
func (c *Client) GetHistoricalPerformance(ctx context.Context, n int) ([]team.SeasonRecord, error) {
	if n <= 0 {
		n = defaultHistorySeasons
	}
	records, err := cache.LoadTyped(ctx, c.store, cache.Key("history", n), cache.Permanent,
		func(ctx context.Context) ([]team.SeasonRecord, error) {
			return team.FetchHistory(ctx, c.provider, c.team.ID, n)
		})
	if err != nil {
		return nil, err
	}
	return slices.Clone(records), nil
}

// GetTopPerformers returns the top five scorers over the given window.
// A roster or performer fetch failure degrades to an empty list.
func (c *Client) GetTopPerformers(ctx context.Context, window int) []analytics.PlayerForm {
	forms, err := c.topPerformers(ctx, window)
	if err != nil {
		c.logger.Warn(ctx, "top performers degraded", observe.Field{Key: "error", Value: err.Error()})
		return nil
	}
	return forms
}

func (c *Client) topPerformers(ctx context.Context, window int) ([]analytics.PlayerForm, error) {
	if window <= 0 {
		window = defaultPerformerWindow
	}
	forms, err := cache.LoadTyped(ctx, c.store, cache.Key("performers", window), cache.FixedTTL(c.ttl.Performers),
		func(ctx context.Context) ([]analytics.PlayerForm, error) {
			return c.scoutPerformers(ctx, window)
		})
	if err != nil {
		return nil, err
	}
	return slices.Clone(forms), nil
}

// scoutPerformers averages recent logs for the first performerPoolSize
// roster players. Players whose log fetch fails or is empty are skipped;
// only the roster fetch itself is fatal.
func (c *Client) scoutPerformers(ctx context.Context, window int) ([]analytics.PlayerForm, error) {
	roster, err := c.GetRoster(ctx)
	if err != nil {
		return nil, err
	}
	if len(roster) > performerPoolSize {
		roster = roster[:performerPoolSize]
	}

	forms := make([]analytics.PlayerForm, 0, len(roster))
	for _, player := range roster {
		lines, err := cache.LoadTyped(ctx, c.store, cache.Key("playerlog", player.PlayerID), cache.FixedTTL(c.ttl.Performers),
			func(ctx context.Context) ([]team.PlayerGameLine, error) {
				return team.FetchPlayerLog(ctx, c.provider, player.PlayerID, c.season)
			})
		if err != nil {
			c.logger.Debug(ctx, "skipping player log",
				observe.Field{Key: "player", Value: player.Name},
				observe.Field{Key: "error", Value: err.Error()},
			)
			continue
		}
		if len(lines) == 0 {
			continue
		}
		forms = append(forms, analytics.FormFor(player, lines, window))
	}
	return analytics.TopPerformers(forms, defaultPerformerWindow), nil
}

// GetWinStreak derives the current streak from the recent-game window.
// A fetch failure degrades to the unknown streak.
func (c *Client) GetWinStreak(ctx context.Context) analytics.StreakSummary {
	return analytics.Streak(c.recentWindow(ctx))
}

// GetTrendAnalysis splits the recent-game window into halves and compares
// them. A fetch failure degrades to the neutral trend.
func (c *Client) GetTrendAnalysis(ctx context.Context) analytics.TrendAnalysis {
	return analytics.Trend(c.recentWindow(ctx))
}

// GetPerformanceMetrics aggregates the most recent n games. A fetch failure
// degrades to zeroed metrics with unknown consistency.
func (c *Client) GetPerformanceMetrics(ctx context.Context, n int) analytics.PerformanceMetrics {
	if n <= 0 {
		n = defaultMetricsWindow
	}
	games, err := c.GetRecentGames(ctx, n)
	if err != nil {
		c.logger.Warn(ctx, "performance metrics degraded", observe.Field{Key: "error", Value: err.Error()})
		games = nil
	}
	return analytics.Metrics(games)
}

// GetCompetitiveContext maps current standings onto a competitive tier.
// Absent standings degrade to the neutral fallback.
func (c *Client) GetCompetitiveContext(ctx context.Context) analytics.CompetitiveContext {
	standings, err := c.GetStandings(ctx)
	if err != nil {
		c.logger.Warn(ctx, "competitive context degraded", observe.Field{Key: "error", Value: err.Error()})
		return analytics.Competitive(nil)
	}
	return analytics.Competitive(&standings)
}

// GetMomentumScore combines trend and streak into one bounded score.
func (c *Client) GetMomentumScore(ctx context.Context) analytics.MomentumScore {
	return analytics.Momentum(c.GetTrendAnalysis(ctx), c.GetWinStreak(ctx))
}

func (c *Client) recentWindow(ctx context.Context) []team.GameRecord {
	games, err := c.GetRecentGames(ctx, streakWindow)
	if err != nil {
		c.logger.Warn(ctx, "recent-game window degraded", observe.Field{Key: "error", Value: err.Error()})
		return nil
	}
	return games
}

// CacheStats returns entry counts for the backing store.
func (c *Client) CacheStats() cache.Stats {
	return c.store.Stats()
}

// ClearCache removes every cached entry and bumps the store epoch.
func (c *Client) ClearCache() {
	c.store.Clear()
}
