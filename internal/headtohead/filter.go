package headtohead

import (
	"sort"
	"strings"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
)

// Pair is the ordered selection (A, B). Either slot may be empty.
type Pair struct {
	A teams.Team
	B teams.Team
}

// Complete reports whether both slots hold a team.
func (p Pair) Complete() bool {
	return p.A.Key() != "" && p.B.Key() != ""
}

// Involves reports whether m was played between A and B, on either side.
func (p Pair) Involves(m matches.Match) bool {
	if !p.Complete() {
		return false
	}
	one, two := teams.CodeKey(m.SideOne.Code), teams.CodeKey(m.SideTwo.Code)
	a, b := p.A.Key(), p.B.Key()
	return (one == a && two == b) || (one == b && two == a)
}

// Filter returns the matches between the pair, deduplicated by id and in
// history order. An incomplete pair yields an empty result.
func Filter(items []matches.Match, pair Pair) []matches.Match {
	out := make([]matches.Match, 0)
	if !pair.Complete() {
		return out
	}
	for _, m := range items {
		if pair.Involves(m) {
			out = append(out, m)
		}
	}
	return SortHistory(DedupeByID(out))
}

// DedupeByID drops every record whose id was already seen. The first wins.
func DedupeByID(items []matches.Match) []matches.Match {
	seen := make(map[string]struct{}, len(items))
	out := make([]matches.Match, 0, len(items))
	for _, m := range items {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}

// SortHistory orders by year descending, then date descending. Both compare
// lexically and a missing date sorts as the empty string.
func SortHistory(items []matches.Match) []matches.Match {
	out := append([]matches.Match(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return compareYearDate(out[j], out[i]) < 0
	})
	return out
}

// SortChronological orders by year ascending, then date ascending.
func SortChronological(items []matches.Match) []matches.Match {
	out := append([]matches.Match(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return compareYearDate(out[i], out[j]) < 0
	})
	return out
}

func compareYearDate(a, b matches.Match) int {
	if c := strings.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	return strings.Compare(a.Date, b.Date)
}
