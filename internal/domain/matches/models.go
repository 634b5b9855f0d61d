package matches

import "github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"

// Side is one recorded participant of a match. Which team ends up as SideOne
// is an artifact of how the fixture was recorded and carries no meaning.
type Side struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Goals int    `json:"goals"`
}

// Team returns the side as a roster entry.
func (s Side) Team() teams.Team {
	return teams.Team{Code: s.Code, Name: s.Name}
}

// Match is an immutable historical fixture result.
type Match struct {
	ID          string `json:"id"`
	Year        string `json:"year"`
	Date        string `json:"date,omitempty"`
	Competition string `json:"competition,omitempty"`
	Stage       string `json:"stage,omitempty"`
	SideOne     Side   `json:"sideOne"`
	SideTwo     Side   `json:"sideTwo"`
}

// Label returns the stage, falling back to the competition name.
func (m Match) Label() string {
	if m.Stage != "" {
		return m.Stage
	}
	return m.Competition
}

// TotalGoals returns the goals scored by both sides.
func (m Match) TotalGoals() int {
	return m.SideOne.Goals + m.SideTwo.Goals
}

// Page is one page of match records as returned by a provider.
// TotalPages is zero when the upstream omitted pagination metadata.
type Page struct {
	Number     int     `json:"page"`
	Matches    []Match `json:"matches"`
	TotalPages int     `json:"totalPages"`
}
