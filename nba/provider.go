package nba

import (
	"context"
	"fmt"
	"strconv"
)

// Provider is the external stats feed, one method per resource class.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: every call must honor cancellation/deadlines.
// - Errors: failures wrap exactly one of ErrUnavailable, ErrMalformed,
//   ErrNotFound; nothing is swallowed past this boundary.
type Provider interface {
	// LeagueGameLog returns the completed-game log for every team in the
	// given season.
	LeagueGameLog(ctx context.Context, season string) (ResultSet, error)

	// LeagueStandings returns the current standings table.
	LeagueStandings(ctx context.Context) (ResultSet, error)

	// TeamRoster returns the current roster for one team.
	TeamRoster(ctx context.Context, teamID int) (ResultSet, error)

	// PlayerGameLog returns one player's game log for the given season.
	PlayerGameLog(ctx context.Context, playerID int, season string) (ResultSet, error)

	// TeamDetails returns static-ish team metadata.
	TeamDetails(ctx context.Context, teamID int) (ResultSet, error)

	// TeamYearByYearStats returns one row per season for a team, most
	// recent first.
	TeamYearByYearStats(ctx context.Context, teamID int) (ResultSet, error)
}

// ResultSet is the provider-native tabular payload: a header row naming the
// columns and a row set of untyped values.
type ResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// Rows returns typed accessors over the row set. All rows share one column
// index, so building it is O(columns) once.
func (rs ResultSet) Rows() []Row {
	cols := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		cols[h] = i
	}
	rows := make([]Row, 0, len(rs.RowSet))
	for _, values := range rs.RowSet {
		rows = append(rows, Row{cols: cols, values: values})
	}
	return rows
}

// Row is one record of a ResultSet with typed column access.
// Accessors report ErrMalformed for missing columns or unconvertible values.
type Row struct {
	cols   map[string]int
	values []any
}

func (r Row) value(col string) (any, error) {
	idx, ok := r.cols[col]
	if !ok || idx >= len(r.values) {
		return nil, fmt.Errorf("%w: missing column %q", ErrMalformed, col)
	}
	return r.values[idx], nil
}

// String returns the named column as a string.
func (r Row) String(col string) (string, error) {
	v, err := r.value(col)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(t), nil
	}
}

// Int returns the named column as an int. JSON numbers arrive as float64;
// numeric strings are accepted because the feed is inconsistent about them.
func (r Row) Int(col string) (int, error) {
	v, err := r.value(col)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case float64:
		return int(t), nil
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, fmt.Errorf("%w: column %q value %q is not an integer", ErrMalformed, col, t)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: column %q has type %T, want number", ErrMalformed, col, v)
	}
}

// Float returns the named column as a float64.
func (r Row) Float(col string) (float64, error) {
	v, err := r.value(col)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: column %q value %q is not a number", ErrMalformed, col, t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: column %q has type %T, want number", ErrMalformed, col, v)
	}
}
