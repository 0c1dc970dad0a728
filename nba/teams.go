package nba

import (
	"fmt"
	"strings"
)

// Team identifies one franchise in the static league table.
type Team struct {
	ID           int
	FullName     string
	Abbreviation string
	City         string
	Nickname     string
}

// franchises is the static league table. Franchise ids are stable across
// seasons upstream.
var franchises = []Team{
	{1610612737, "Atlanta Hawks", "ATL", "Atlanta", "Hawks"},
	{1610612738, "Boston Celtics", "BOS", "Boston", "Celtics"},
	{1610612751, "Brooklyn Nets", "BKN", "Brooklyn", "Nets"},
	{1610612766, "Charlotte Hornets", "CHA", "Charlotte", "Hornets"},
	{1610612741, "Chicago Bulls", "CHI", "Chicago", "Bulls"},
	{1610612739, "Cleveland Cavaliers", "CLE", "Cleveland", "Cavaliers"},
	{1610612742, "Dallas Mavericks", "DAL", "Dallas", "Mavericks"},
	{1610612743, "Denver Nuggets", "DEN", "Denver", "Nuggets"},
	{1610612765, "Detroit Pistons", "DET", "Detroit", "Pistons"},
	{1610612744, "Golden State Warriors", "GSW", "Golden State", "Warriors"},
	{1610612745, "Houston Rockets", "HOU", "Houston", "Rockets"},
	{1610612754, "Indiana Pacers", "IND", "Indiana", "Pacers"},
	{1610612746, "LA Clippers", "LAC", "Los Angeles", "Clippers"},
	{1610612747, "Los Angeles Lakers", "LAL", "Los Angeles", "Lakers"},
	{1610612763, "Memphis Grizzlies", "MEM", "Memphis", "Grizzlies"},
	{1610612748, "Miami Heat", "MIA", "Miami", "Heat"},
	{1610612749, "Milwaukee Bucks", "MIL", "Milwaukee", "Bucks"},
	{1610612750, "Minnesota Timberwolves", "MIN", "Minnesota", "Timberwolves"},
	{1610612740, "New Orleans Pelicans", "NOP", "New Orleans", "Pelicans"},
	{1610612752, "New York Knicks", "NYK", "New York", "Knicks"},
	{1610612760, "Oklahoma City Thunder", "OKC", "Oklahoma City", "Thunder"},
	{1610612753, "Orlando Magic", "ORL", "Orlando", "Magic"},
	{1610612755, "Philadelphia 76ers", "PHI", "Philadelphia", "76ers"},
	{1610612756, "Phoenix Suns", "PHX", "Phoenix", "Suns"},
	{1610612757, "Portland Trail Blazers", "POR", "Portland", "Trail Blazers"},
	{1610612758, "Sacramento Kings", "SAC", "Sacramento", "Kings"},
	{1610612759, "San Antonio Spurs", "SAS", "San Antonio", "Spurs"},
	{1610612761, "Toronto Raptors", "TOR", "Toronto", "Raptors"},
	{1610612762, "Utah Jazz", "UTA", "Utah", "Jazz"},
	{1610612764, "Washington Wizards", "WAS", "Washington", "Wizards"},
}

// Teams returns a copy of the static league table.
func Teams() []Team {
	out := make([]Team, len(franchises))
	copy(out, franchises)
	return out
}

// FindTeam resolves a franchise full name, case-insensitively.
// Unknown names report ErrNotFound.
func FindTeam(fullName string) (Team, error) {
	for _, t := range franchises {
		if strings.EqualFold(t.FullName, fullName) {
			return t, nil
		}
	}
	return Team{}, fmt.Errorf("%w: team %q", ErrNotFound, fullName)
}
