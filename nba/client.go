package nba

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"

	"github.com/jonwraymond/courtside/observe"
)

// DefaultBaseURL is the upstream stats endpoint root.
const DefaultBaseURL = "https://stats.nba.com/stats"

// DefaultTimeout bounds each provider request.
const DefaultTimeout = 10 * time.Second

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// ClientConfig configures the HTTP provider client.
type ClientConfig struct {
	// BaseURL is the endpoint root. Default: DefaultBaseURL.
	BaseURL string

	// Timeout bounds each request. On expiry the call fails with
	// ErrUnavailable. Default: DefaultTimeout.
	Timeout time.Duration

	// Season, in upstream notation (e.g. "2025-26"), for resources whose
	// endpoint requires one but whose method signature does not carry it.
	Season string

	// Retries enables bounded exponential-backoff retries of transient
	// failures. Default 0: the cache layer above never retries, so retry
	// here is strictly opt-in.
	Retries int

	// Throttle paces outbound requests. Default: unthrottled.
	Throttle *Throttle

	// Logger receives request failures. Default: noop.
	Logger observe.Logger

	// Metrics receives per-request outcomes. Default: noop.
	Metrics observe.Metrics

	// Tracer wraps each request in a span. Default: noop.
	Tracer observe.Tracer
}

// HTTPClient is the resty-backed Provider implementation.
type HTTPClient struct {
	http     *resty.Client
	season   string
	retries  int
	throttle *Throttle
	logger   observe.Logger
	metrics  observe.Metrics
	tracer   observe.Tracer
}

// NewHTTPClient creates an HTTPClient, applying defaults for unset fields.
func NewHTTPClient(config ClientConfig) *HTTPClient {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Logger == nil {
		config.Logger = observe.NoopLogger()
	}
	if config.Metrics == nil {
		config.Metrics = observe.NoopMetrics()
	}
	if config.Tracer == nil {
		config.Tracer = observe.NoopTracer()
	}

	httpClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Referer", "https://stats.nba.com/").
		SetHeader("User-Agent", "courtside/1.0")

	return &HTTPClient{
		http:     httpClient,
		season:   config.Season,
		retries:  config.Retries,
		throttle: config.Throttle,
		logger:   config.Logger,
		metrics:  config.Metrics,
		tracer:   config.Tracer,
	}
}

// RestyClient exposes the underlying transport for tests.
func (c *HTTPClient) RestyClient() *resty.Client {
	return c.http
}

// envelope is the upstream response wrapper.
type envelope struct {
	Resource   string      `json:"resource"`
	ResultSets []ResultSet `json:"resultSets"`
}

// LeagueGameLog fetches the team game log for a season.
func (c *HTTPClient) LeagueGameLog(ctx context.Context, season string) (ResultSet, error) {
	return c.fetch(ctx, "leaguegamelog", map[string]string{
		"LeagueID":     "00",
		"Season":       season,
		"SeasonType":   "Regular Season",
		"PlayerOrTeam": "T",
	}, "LeagueGameLog")
}

// LeagueStandings fetches the current standings table.
func (c *HTTPClient) LeagueStandings(ctx context.Context) (ResultSet, error) {
	return c.fetch(ctx, "leaguestandings", map[string]string{
		"LeagueID":   "00",
		"Season":     c.season,
		"SeasonType": "Regular Season",
	}, "Standings")
}

// TeamRoster fetches the current roster for one team.
func (c *HTTPClient) TeamRoster(ctx context.Context, teamID int) (ResultSet, error) {
	return c.fetch(ctx, "commonteamroster", map[string]string{
		"TeamID": strconv.Itoa(teamID),
		"Season": c.season,
	}, "CommonTeamRoster")
}

// PlayerGameLog fetches one player's game log for a season.
func (c *HTTPClient) PlayerGameLog(ctx context.Context, playerID int, season string) (ResultSet, error) {
	return c.fetch(ctx, "playergamelog", map[string]string{
		"PlayerID":   strconv.Itoa(playerID),
		"Season":     season,
		"SeasonType": "Regular Season",
	}, "PlayerGameLog")
}

// TeamDetails fetches static-ish team metadata.
func (c *HTTPClient) TeamDetails(ctx context.Context, teamID int) (ResultSet, error) {
	return c.fetch(ctx, "teamdetails", map[string]string{
		"TeamID": strconv.Itoa(teamID),
	}, "TeamBackground")
}

// TeamYearByYearStats fetches one row per season for a team.
func (c *HTTPClient) TeamYearByYearStats(ctx context.Context, teamID int) (ResultSet, error) {
	return c.fetch(ctx, "teamyearbyyearstats", map[string]string{
		"TeamID":     strconv.Itoa(teamID),
		"LeagueID":   "00",
		"SeasonType": "Regular Season",
		"PerMode":    "Totals",
	}, "TeamStats")
}

// fetch runs one request, optionally retrying transient failures.
func (c *HTTPClient) fetch(ctx context.Context, resource string, params map[string]string, setName string) (ResultSet, error) {
	if c.retries <= 0 {
		return c.fetchOnce(ctx, resource, params, setName)
	}

	var rs ResultSet
	op := func() error {
		var err error
		rs, err = c.fetchOnce(ctx, resource, params, setName)
		if err != nil && !errors.Is(err, ErrUnavailable) {
			// Not-found and malformed responses won't heal on retry.
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.retries)), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return ResultSet{}, err
	}
	return rs, nil
}

func (c *HTTPClient) fetchOnce(ctx context.Context, resource string, params map[string]string, setName string) (ResultSet, error) {
	ctx, span := c.tracer.StartFetch(ctx, resource)
	start := time.Now()

	rs, err := c.request(ctx, resource, params, setName)

	c.metrics.RecordFetch(ctx, resource, time.Since(start), err)
	c.tracer.EndFetch(span, err)

	if err != nil {
		c.logger.Warn(ctx, "provider request failed",
			observe.Field{Key: "resource", Value: resource},
			observe.Field{Key: "error", Value: err.Error()},
		)
	}
	return rs, err
}

func (c *HTTPClient) request(ctx context.Context, resource string, params map[string]string, setName string) (ResultSet, error) {
	if c.throttle != nil {
		if err := c.throttle.Wait(ctx); err != nil {
			return ResultSet{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, resource, err)
		}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/" + resource)
	if err != nil {
		return ResultSet{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, resource, err)
	}

	switch {
	case resp.StatusCode() == 404:
		return ResultSet{}, fmt.Errorf("%w: %s", ErrNotFound, resource)
	case resp.IsError():
		return ResultSet{}, fmt.Errorf("%w: %s: status %d", ErrUnavailable, resource, resp.StatusCode())
	}

	var env envelope
	if err := jsonAPI.Unmarshal(resp.Body(), &env); err != nil {
		return ResultSet{}, fmt.Errorf("%w: %s: %v", ErrMalformed, resource, err)
	}

	for _, rs := range env.ResultSets {
		if rs.Name == setName {
			return rs, nil
		}
	}
	return ResultSet{}, fmt.Errorf("%w: %s: result set %q missing", ErrMalformed, resource, setName)
}

// Ensure HTTPClient implements Provider
var _ Provider = (*HTTPClient)(nil)
