package headtohead

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
)

// DefaultLocale orders rosters the way the match listing UI always has.
const DefaultLocale = "es"

// MaxSearchResults caps how many teams a search returns.
const MaxSearchResults = 8

var (
	// ErrSameTeam is returned when a team is chosen for both slots.
	ErrSameTeam = errors.New("team already selected in the other slot")
	// ErrUnknownTeam is returned when a code is not in the roster.
	ErrUnknownTeam = errors.New("unknown team")
)

// Registry derives the team roster from match records.
type Registry struct {
	tag language.Tag
}

// NewRegistry returns a Registry collating names for locale.
// An unparseable locale falls back to DefaultLocale.
func NewRegistry(locale string) *Registry {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil || tag == language.Und {
		tag = language.MustParse(DefaultLocale)
	}
	return &Registry{tag: tag}
}

// Locale reports the collation locale in use.
func (r *Registry) Locale() string {
	return r.tag.String()
}

// Build scans both sides of every record and returns one team per case-folded
// code, keeping the first name seen. Sides with an empty code or name are
// skipped. The result is sorted by name; equal names keep first-seen order.
func (r *Registry) Build(items []matches.Match) []teams.Team {
	seen := make(map[string]struct{})
	roster := make([]teams.Team, 0)
	for _, m := range items {
		for _, side := range [2]matches.Side{m.SideOne, m.SideTwo} {
			key := teams.CodeKey(side.Code)
			if key == "" || strings.TrimSpace(side.Name) == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			roster = append(roster, teams.Team{Code: strings.TrimSpace(side.Code), Name: side.Name})
		}
	}

	// Collators keep internal buffers, so each Build gets its own.
	col := collate.New(r.tag)
	sort.SliceStable(roster, func(i, j int) bool {
		return col.CompareString(roster[i].Name, roster[j].Name) < 0
	})
	return roster
}

// BuildRoster is Build with the default locale.
func BuildRoster(items []matches.Match) []teams.Team {
	return NewRegistry(DefaultLocale).Build(items)
}

// Lookup finds a roster entry by code, ignoring case.
func Lookup(roster []teams.Team, code string) (teams.Team, bool) {
	key := teams.CodeKey(code)
	if key == "" {
		return teams.Team{}, false
	}
	for _, t := range roster {
		if t.Key() == key {
			return t, true
		}
	}
	return teams.Team{}, false
}

// ResolveTeam looks code up in roster. An empty code resolves to the zero Team.
func ResolveTeam(roster []teams.Team, code string) (teams.Team, error) {
	if strings.TrimSpace(code) == "" {
		return teams.Team{}, nil
	}
	t, ok := Lookup(roster, code)
	if !ok {
		return teams.Team{}, fmt.Errorf("%w: %s", ErrUnknownTeam, strings.TrimSpace(code))
	}
	return t, nil
}

// ResolvePair resolves both codes against one roster. An empty code leaves its
// slot empty; the same team in both slots is ErrSameTeam.
func ResolvePair(roster []teams.Team, codeA, codeB string) (Pair, error) {
	var pair Pair
	var err error
	if pair.A, err = ResolveTeam(roster, codeA); err != nil {
		return Pair{}, err
	}
	if pair.B, err = ResolveTeam(roster, codeB); err != nil {
		return Pair{}, err
	}
	if pair.A.Key() != "" && pair.A.Key() == pair.B.Key() {
		return Pair{}, ErrSameTeam
	}
	return pair, nil
}

// Exclude returns the roster without the team identified by code.
func Exclude(roster []teams.Team, code string) []teams.Team {
	key := teams.CodeKey(code)
	out := make([]teams.Team, 0, len(roster))
	for _, t := range roster {
		if key != "" && t.Key() == key {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Search returns up to MaxSearchResults teams whose name or code contains
// query, ignoring case, in list order. A blank query matches nothing.
func Search(list []teams.Team, query string) []teams.Team {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]teams.Team, 0)
	if q == "" {
		return out
	}
	for _, t := range list {
		if len(out) == MaxSearchResults {
			break
		}
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Code), q) {
			out = append(out, t)
		}
	}
	return out
}
