package team

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jonwraymond/courtside/nba"
)

// gameDateLayout is the league game log's GAME_DATE format.
const gameDateLayout = "2006-01-02"

// FetchRecentGames filters the season game log to one team, sorts by date
// descending and truncates to limit.
func FetchRecentGames(ctx context.Context, p nba.Provider, teamID int, season string, limit int) ([]GameRecord, error) {
	rs, err := p.LeagueGameLog(ctx, season)
	if err != nil {
		return nil, err
	}

	games := make([]GameRecord, 0, limit)
	for _, row := range rs.Rows() {
		id, err := row.Int("TEAM_ID")
		if err != nil {
			return nil, err
		}
		if id != teamID {
			continue
		}
		g, err := gameFromRow(row)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].Date.After(games[j].Date)
	})
	if len(games) > limit {
		games = games[:limit]
	}
	return games, nil
}

func gameFromRow(row nba.Row) (GameRecord, error) {
	var g GameRecord
	var err error

	if g.GameID, err = row.String("GAME_ID"); err != nil {
		return g, err
	}
	dateStr, err := row.String("GAME_DATE")
	if err != nil {
		return g, err
	}
	if g.Date, err = time.Parse(gameDateLayout, dateStr); err != nil {
		return g, fmt.Errorf("%w: game date %q", nba.ErrMalformed, dateStr)
	}
	if g.Matchup, err = row.String("MATCHUP"); err != nil {
		return g, err
	}
	result, err := row.String("WL")
	if err != nil {
		return g, err
	}
	g.Result = GameResult(result)
	if g.TeamPoints, err = row.Int("PTS"); err != nil {
		return g, err
	}
	if g.PlusMinus, err = row.Int("PLUS_MINUS"); err != nil {
		return g, err
	}
	g.OpponentPoints = g.TeamPoints - g.PlusMinus
	if g.FieldGoalPct, err = row.Float("FG_PCT"); err != nil {
		return g, err
	}
	if g.ThreePointPct, err = row.Float("FG3_PCT"); err != nil {
		return g, err
	}
	if g.Rebounds, err = row.Int("REB"); err != nil {
		return g, err
	}
	if g.Assists, err = row.Int("AST"); err != nil {
		return g, err
	}
	if g.Turnovers, err = row.Int("TOV"); err != nil {
		return g, err
	}
	return g, nil
}

// FetchStandings finds the team's row in the standings table.
func FetchStandings(ctx context.Context, p nba.Provider, teamID int) (StandingsSnapshot, error) {
	rs, err := p.LeagueStandings(ctx)
	if err != nil {
		return StandingsSnapshot{}, err
	}

	for _, row := range rs.Rows() {
		id, err := row.Int("TeamID")
		if err != nil {
			return StandingsSnapshot{}, err
		}
		if id != teamID {
			continue
		}
		return standingsFromRow(row)
	}
	return StandingsSnapshot{}, fmt.Errorf("%w: team %d not in standings", nba.ErrNotFound, teamID)
}

func standingsFromRow(row nba.Row) (StandingsSnapshot, error) {
	var s StandingsSnapshot
	var err error

	if s.Conference, err = row.String("Conference"); err != nil {
		return s, err
	}
	if s.LeagueRank, err = row.Int("LeagueRank"); err != nil {
		return s, err
	}
	if s.Wins, err = row.Int("WINS"); err != nil {
		return s, err
	}
	if s.Losses, err = row.Int("LOSSES"); err != nil {
		return s, err
	}
	if s.WinPct, err = row.Float("WinPCT"); err != nil {
		return s, err
	}
	if s.GamesBack, err = row.Float("ConferenceGamesBack"); err != nil {
		return s, err
	}
	if s.LastTen, err = row.String("L10"); err != nil {
		return s, err
	}
	if s.Streak, err = row.String("CurrentStreak"); err != nil {
		return s, err
	}
	return s, nil
}

// FetchRoster returns the full roster table.
func FetchRoster(ctx context.Context, p nba.Provider, teamID int) ([]RosterEntry, error) {
	rs, err := p.TeamRoster(ctx, teamID)
	if err != nil {
		return nil, err
	}

	roster := make([]RosterEntry, 0, len(rs.RowSet))
	for _, row := range rs.Rows() {
		var e RosterEntry
		if e.PlayerID, err = row.Int("PLAYER_ID"); err != nil {
			return nil, err
		}
		if e.Name, err = row.String("PLAYER"); err != nil {
			return nil, err
		}
		if e.Position, err = row.String("POSITION"); err != nil {
			return nil, err
		}
		if e.JerseyNumber, err = row.String("NUM"); err != nil {
			return nil, err
		}
		if e.Age, err = row.Int("AGE"); err != nil {
			return nil, err
		}
		if e.Experience, err = row.String("EXP"); err != nil {
			return nil, err
		}
		roster = append(roster, e)
	}
	return roster, nil
}

// FetchTeamDetails returns the franchise metadata row.
func FetchTeamDetails(ctx context.Context, p nba.Provider, teamID int) (TeamDetails, error) {
	rs, err := p.TeamDetails(ctx, teamID)
	if err != nil {
		return TeamDetails{}, err
	}
	rows := rs.Rows()
	if len(rows) == 0 {
		return TeamDetails{}, fmt.Errorf("%w: no details for team %d", nba.ErrNotFound, teamID)
	}
	row := rows[0]

	var d TeamDetails
	city, err := row.String("CITY")
	if err != nil {
		return d, err
	}
	nickname, err := row.String("NICKNAME")
	if err != nil {
		return d, err
	}
	d.City = city
	d.Name = city + " " + nickname
	if d.Abbreviation, err = row.String("ABBREVIATION"); err != nil {
		return d, err
	}
	if d.Arena, err = row.String("ARENA"); err != nil {
		return d, err
	}
	if d.ArenaCapacity, err = row.Int("ARENACAPACITY"); err != nil {
		return d, err
	}
	if d.HeadCoach, err = row.String("HEADCOACH"); err != nil {
		return d, err
	}
	if d.GeneralManager, err = row.String("GENERALMANAGER"); err != nil {
		return d, err
	}
	if d.Owner, err = row.String("OWNER"); err != nil {
		return d, err
	}
	if d.YearFounded, err = row.Int("YEARFOUNDED"); err != nil {
		return d, err
	}
	if d.Affiliation, err = row.String("DLEAGUEAFFILIATION"); err != nil {
		return d, err
	}
	return d, nil
}

// FetchSeasonStats returns the year-by-year row matching season.
func FetchSeasonStats(ctx context.Context, p nba.Provider, teamID int, season string) (SeasonStats, error) {
	rs, err := p.TeamYearByYearStats(ctx, teamID)
	if err != nil {
		return SeasonStats{}, err
	}

	for _, row := range rs.Rows() {
		year, err := row.String("YEAR")
		if err != nil {
			return SeasonStats{}, err
		}
		if year != season {
			continue
		}

		var s SeasonStats
		s.Season = year
		if s.Wins, err = row.Int("WINS"); err != nil {
			return SeasonStats{}, err
		}
		if s.Losses, err = row.Int("LOSSES"); err != nil {
			return SeasonStats{}, err
		}
		if s.WinPct, err = row.Float("WIN_PCT"); err != nil {
			return SeasonStats{}, err
		}
		if s.ConferenceRank, err = row.Int("CONF_RANK"); err != nil {
			return SeasonStats{}, err
		}
		return s, nil
	}
	return SeasonStats{}, fmt.Errorf("%w: season %s for team %d", nba.ErrNotFound, season, teamID)
}

// FetchHistory returns up to limit season records, in the provider's order
// (most recent first). A season with playoff wins counts as a playoff season.
func FetchHistory(ctx context.Context, p nba.Provider, teamID int, limit int) ([]SeasonRecord, error) {
	rs, err := p.TeamYearByYearStats(ctx, teamID)
	if err != nil {
		return nil, err
	}

	records := make([]SeasonRecord, 0, limit)
	for _, row := range rs.Rows() {
		if len(records) >= limit {
			break
		}

		var r SeasonRecord
		if r.Season, err = row.String("YEAR"); err != nil {
			return nil, err
		}
		if r.Wins, err = row.Int("WINS"); err != nil {
			return nil, err
		}
		if r.Losses, err = row.Int("LOSSES"); err != nil {
			return nil, err
		}
		if r.WinPct, err = row.Float("WIN_PCT"); err != nil {
			return nil, err
		}
		poWins, err := row.Int("PO_WINS")
		if err != nil {
			return nil, err
		}
		r.MadePlayoffs = poWins > 0
		records = append(records, r)
	}
	return records, nil
}

// FetchPlayerLog returns one player's box-score lines, most recent first.
func FetchPlayerLog(ctx context.Context, p nba.Provider, playerID int, season string) ([]PlayerGameLine, error) {
	rs, err := p.PlayerGameLog(ctx, playerID, season)
	if err != nil {
		return nil, err
	}

	lines := make([]PlayerGameLine, 0, len(rs.RowSet))
	for _, row := range rs.Rows() {
		var l PlayerGameLine
		if l.Points, err = row.Int("PTS"); err != nil {
			return nil, err
		}
		if l.Assists, err = row.Int("AST"); err != nil {
			return nil, err
		}
		if l.Rebounds, err = row.Int("REB"); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}
