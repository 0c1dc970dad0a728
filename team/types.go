package team

import "time"

// GameResult is a completed game's outcome for the tracked team.
type GameResult string

const (
	Win  GameResult = "W"
	Loss GameResult = "L"
)

// GameRecord is one completed game, normalized from the league game log.
// OpponentPoints is derived: team points minus the point differential.
type GameRecord struct {
	GameID         string
	Date           time.Time
	Matchup        string
	Result         GameResult
	TeamPoints     int
	OpponentPoints int
	PlusMinus      int
	FieldGoalPct   float64
	ThreePointPct  float64
	Rebounds       int
	Assists        int
	Turnovers      int
}

// StandingsSnapshot is the team's current standings row. No history is kept.
type StandingsSnapshot struct {
	Conference string
	LeagueRank int
	Wins       int
	Losses     int
	WinPct     float64
	GamesBack  float64
	LastTen    string
	Streak     string
}

// RosterEntry is one player on the current roster.
type RosterEntry struct {
	PlayerID     int
	Name         string
	Position     string
	JerseyNumber string
	Age          int
	Experience   string
}

// TeamDetails is static-ish franchise metadata.
type TeamDetails struct {
	Name           string
	Abbreviation   string
	City           string
	Arena          string
	ArenaCapacity  int
	HeadCoach      string
	GeneralManager string
	Owner          string
	YearFounded    int
	Affiliation    string
}

// SeasonStats is the current season's aggregate row.
type SeasonStats struct {
	Season         string
	Wins           int
	Losses         int
	WinPct         float64
	ConferenceRank int
}

// SeasonRecord is one closed season's record. Closed seasons never change
// upstream, so these cache permanently.
type SeasonRecord struct {
	Season       string
	Wins         int
	Losses       int
	WinPct       float64
	MadePlayoffs bool
}

// PlayerGameLine is one game's box-score line for a single player.
type PlayerGameLine struct {
	Points   int
	Assists  int
	Rebounds int
}
