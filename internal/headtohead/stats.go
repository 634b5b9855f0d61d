package headtohead

import (
	"fmt"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
)

// Summary holds the head-to-head aggregates for a pair.
type Summary struct {
	WinsA  int `json:"winsA"`
	WinsB  int `json:"winsB"`
	Draws  int `json:"draws"`
	GoalsA int `json:"goalsA"`
	GoalsB int `json:"goalsB"`
	Total  int `json:"total"`
}

// Reduce normalizes each filtered match onto the pair and folds the results.
func Reduce(filtered []matches.Match, pair Pair) Summary {
	var s Summary
	for _, m := range filtered {
		p := Normalize(m, pair)
		s.GoalsA += p.SelectedAGoals
		s.GoalsB += p.SelectedBGoals
		switch p.Outcome() {
		case WinA:
			s.WinsA++
		case WinB:
			s.WinsB++
		default:
			s.Draws++
		}
	}
	s.Total = len(filtered)
	return s
}

// TotalGoals returns goals scored by both teams across the series.
func (s Summary) TotalGoals() int {
	return s.GoalsA + s.GoalsB
}

// AverageGoals returns goals per match, or 0 when no match was played.
func (s Summary) AverageGoals() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.TotalGoals()) / float64(s.Total)
}

// FormatAverage renders AverageGoals with two decimals.
func (s Summary) FormatAverage() string {
	return fmt.Sprintf("%.2f", s.AverageGoals())
}

// TopScoring is the highest-scoring meeting of a series, seen from the pair.
type TopScoring struct {
	MatchID string `json:"matchId"`
	Year    string `json:"year"`
	Label   string `json:"label"`
	Goals   int    `json:"goals"`
	Perspective
}

// MaxScore returns the filtered match with the most total goals. The earliest
// match in collection order wins a tie. ok is false for an empty series.
func MaxScore(filtered []matches.Match, pair Pair) (TopScoring, bool) {
	var top TopScoring
	found := false
	for _, m := range filtered {
		p := Normalize(m, pair)
		goals := p.SelectedAGoals + p.SelectedBGoals
		if found && goals <= top.Goals {
			continue
		}
		top = TopScoring{MatchID: m.ID, Year: m.Year, Label: m.Label(), Goals: goals, Perspective: p}
		found = true
	}
	return top, found
}
