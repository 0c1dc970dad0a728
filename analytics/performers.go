package analytics

import (
	"sort"

	"github.com/jonwraymond/courtside/team"
)

// PlayerForm is one player's averages over a recent-game window.
type PlayerForm struct {
	Name        string
	Position    string
	AvgPoints   float64
	AvgAssists  float64
	AvgRebounds float64
}

// FormFor averages a player's most recent window game lines.
func FormFor(entry team.RosterEntry, lines []team.PlayerGameLine, window int) PlayerForm {
	if len(lines) > window {
		lines = lines[:window]
	}

	form := PlayerForm{
		Name:     entry.Name,
		Position: entry.Position,
	}
	if len(lines) == 0 {
		return form
	}

	var points, assists, rebounds int
	for _, l := range lines {
		points += l.Points
		assists += l.Assists
		rebounds += l.Rebounds
	}
	n := float64(len(lines))
	form.AvgPoints = round1(float64(points) / n)
	form.AvgAssists = round1(float64(assists) / n)
	form.AvgRebounds = round1(float64(rebounds) / n)
	return form
}

// TopPerformers orders player forms by average points descending and
// truncates to limit. The sort is stable: ties keep roster order.
func TopPerformers(forms []PlayerForm, limit int) []PlayerForm {
	out := make([]PlayerForm, len(forms))
	copy(out, forms)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgPoints > out[j].AvgPoints
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
