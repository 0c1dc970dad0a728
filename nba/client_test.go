package nba

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
)

const gameLogBody = `{
	"resource": "leaguegamelog",
	"resultSets": [{
		"name": "LeagueGameLog",
		"headers": ["TEAM_ID", "GAME_ID", "GAME_DATE", "MATCHUP", "WL", "PTS"],
		"rowSet": [
			[1610612747, "0022500641", "2026-01-15", "LAL vs. BOS", "W", 112]
		]
	}]
}`

func newMockedClient(t *testing.T, cfg ClientConfig) *HTTPClient {
	t.Helper()
	client := NewHTTPClient(cfg)
	httpmock.ActivateNonDefault(client.RestyClient().GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

// TestHTTPClient_LeagueGameLog verifies a successful fetch decodes the
// named result set.
func TestHTTPClient_LeagueGameLog(t *testing.T) {
	client := newMockedClient(t, ClientConfig{})
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/leaguegamelog",
		httpmock.NewStringResponder(http.StatusOK, gameLogBody))

	rs, err := client.LeagueGameLog(context.Background(), "2025-26")
	if err != nil {
		t.Fatalf("LeagueGameLog error: %v", err)
	}
	if rs.Name != "LeagueGameLog" {
		t.Errorf("result set name = %q, want LeagueGameLog", rs.Name)
	}
	if len(rs.RowSet) != 1 {
		t.Fatalf("row count = %d, want 1", len(rs.RowSet))
	}

	row := rs.Rows()[0]
	if pts, err := row.Int("PTS"); err != nil || pts != 112 {
		t.Errorf("PTS = (%d, %v), want (112, nil)", pts, err)
	}
}

// TestHTTPClient_ErrorMapping verifies provider failures map onto the
// error taxonomy.
func TestHTTPClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
		wantErr   error
	}{
		{"not found", httpmock.NewStringResponder(http.StatusNotFound, ""), ErrNotFound},
		{"server error", httpmock.NewStringResponder(http.StatusInternalServerError, ""), ErrUnavailable},
		{"rate limited", httpmock.NewStringResponder(http.StatusTooManyRequests, ""), ErrUnavailable},
		{"undecodable payload", httpmock.NewStringResponder(http.StatusOK, "<html>"), ErrMalformed},
		{"missing result set", httpmock.NewStringResponder(http.StatusOK, `{"resource":"leaguestandings","resultSets":[]}`), ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newMockedClient(t, ClientConfig{Season: "2025-26"})
			httpmock.RegisterResponder("GET", DefaultBaseURL+"/leaguestandings", tt.responder)

			_, err := client.LeagueStandings(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestHTTPClient_TransportFailure verifies connection errors read as
// provider-unavailable.
func TestHTTPClient_TransportFailure(t *testing.T) {
	client := newMockedClient(t, ClientConfig{})
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/teamdetails",
		httpmock.NewErrorResponder(errors.New("connection refused")))

	_, err := client.TeamDetails(context.Background(), 1610612747)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}

// TestHTTPClient_RetryTransient verifies opt-in retry recovers from a
// transient failure but repeats no external call on permanent ones.
func TestHTTPClient_RetryTransient(t *testing.T) {
	client := newMockedClient(t, ClientConfig{Retries: 2})

	calls := 0
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/teamdetails",
		func(req *http.Request) (*http.Response, error) {
			calls++
			if calls == 1 {
				return httpmock.NewStringResponse(http.StatusInternalServerError, ""), nil
			}
			return httpmock.NewStringResponse(http.StatusOK,
				`{"resource":"teamdetails","resultSets":[{"name":"TeamBackground","headers":["CITY"],"rowSet":[["Los Angeles"]]}]}`), nil
		})

	rs, err := client.TeamDetails(context.Background(), 1610612747)
	if err != nil {
		t.Fatalf("TeamDetails error: %v", err)
	}
	if rs.Name != "TeamBackground" {
		t.Errorf("result set name = %q, want TeamBackground", rs.Name)
	}
	if calls != 2 {
		t.Errorf("external calls = %d, want 2", calls)
	}
}

// TestHTTPClient_NoRetryOnNotFound verifies not-found responses are never
// retried even with retries enabled.
func TestHTTPClient_NoRetryOnNotFound(t *testing.T) {
	client := newMockedClient(t, ClientConfig{Retries: 3})

	calls := 0
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/teamdetails",
		func(req *http.Request) (*http.Response, error) {
			calls++
			return httpmock.NewStringResponse(http.StatusNotFound, ""), nil
		})

	_, err := client.TeamDetails(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if calls != 1 {
		t.Errorf("external calls = %d, want 1", calls)
	}
}

// TestHTTPClient_ThrottleWired verifies a throttled client paces its
// requests and surfaces cancellation as ErrUnavailable.
func TestHTTPClient_ThrottleWired(t *testing.T) {
	client := newMockedClient(t, ClientConfig{Throttle: NewThrottle(1000, 1, nil)})
	httpmock.RegisterResponder("GET", DefaultBaseURL+"/leaguegamelog",
		httpmock.NewStringResponder(http.StatusOK, gameLogBody))

	if _, err := client.LeagueGameLog(context.Background(), "2025-26"); err != nil {
		t.Fatalf("throttled fetch: %v", err)
	}

	// Drain the bucket, then a cancelled context must not wait for refill.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.LeagueGameLog(ctx, "2025-26")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}
