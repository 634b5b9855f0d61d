package worldcup

import (
	"strings"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
)

func mapMatch(m matchResponse) matches.Match {
	return matches.Match{
		ID:          string(m.ID),
		Year:        strings.TrimSpace(string(m.Year)),
		Date:        strings.TrimSpace(m.Date),
		Competition: m.Competition,
		Stage:       m.Stage,
		SideOne: matches.Side{
			Code:  strings.TrimSpace(m.TeamACode),
			Name:  strings.TrimSpace(m.TeamA),
			Goals: m.ScoreA,
		},
		SideTwo: matches.Side{
			Code:  strings.TrimSpace(m.TeamBCode),
			Name:  strings.TrimSpace(m.TeamB),
			Goals: m.ScoreB,
		},
	}
}

func mapPage(number int, payload matchesResponse) matches.Page {
	page := matches.Page{Number: number}
	if payload.Data != nil {
		page.Matches = make([]matches.Match, 0, len(*payload.Data))
		for _, m := range *payload.Data {
			page.Matches = append(page.Matches, mapMatch(m))
		}
	}
	if payload.Meta != nil && payload.Meta.TotalPages > 0 {
		page.TotalPages = payload.Meta.TotalPages
	}
	return page
}

func mapTeams(items []teamResponse) []teams.Team {
	out := make([]teams.Team, 0, len(items))
	for _, t := range items {
		out = append(out, teams.Team{
			Code: strings.TrimSpace(t.Code),
			Name: strings.TrimSpace(t.Name),
		})
	}
	return out
}
