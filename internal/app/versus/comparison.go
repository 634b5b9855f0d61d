package versus

import (
	"fmt"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/headtohead"
)

// State tells consumers which view of a comparison to render.
type State string

const (
	// StateUnavailable means no complete collection has been loaded yet.
	StateUnavailable State = "unavailable"
	// StateIncomplete means at least one team is not selected.
	StateIncomplete State = "incomplete"
	// StateNoMatches means the two teams never met.
	StateNoMatches State = "no_matches"
	StateReady     State = "ready"
)

// KPIs are the headline figures shown above a comparison.
type KPIs struct {
	TotalGoals   int     `json:"totalGoals"`
	AverageGoals float64 `json:"averageGoals"`
	AverageLabel string  `json:"averageLabel"`
	DatabaseSize int     `json:"databaseSize"`

	MaxScoreMatch *headtohead.TopScoring `json:"maxScoreMatch,omitempty"`
}

// HistoryRow is one match as recorded, for the tabular history.
type HistoryRow struct {
	ID           string `json:"id"`
	Year         string `json:"year"`
	Label        string `json:"label"`
	SideOneName  string `json:"sideOneName"`
	SideOneGoals int    `json:"sideOneGoals"`
	SideTwoName  string `json:"sideTwoName"`
	SideTwoGoals int    `json:"sideTwoGoals"`
	Score        string `json:"score"`
}

// Comparison is the display-ready head-to-head between two teams.
type Comparison struct {
	State       State                  `json:"state"`
	TeamA       *teams.Team            `json:"teamA,omitempty"`
	TeamB       *teams.Team            `json:"teamB,omitempty"`
	Summary     headtohead.Summary     `json:"summary"`
	KPIs        KPIs                   `json:"kpis"`
	Proportions headtohead.Proportions `json:"proportions"`
	Trend       headtohead.Trend       `json:"trend"`
	History     []HistoryRow           `json:"history"`
	Error       string                 `json:"error,omitempty"`
}

// Build derives a Comparison for pair from the full collection.
// databaseSize is reported as-is in the KPIs.
func Build(all []matches.Match, pair headtohead.Pair, databaseSize int) Comparison {
	c := Comparison{
		State:   StateIncomplete,
		TeamA:   teamRef(pair.A),
		TeamB:   teamRef(pair.B),
		History: []HistoryRow{},
		Trend:   headtohead.BuildTrend(nil, pair),
		KPIs:    KPIs{AverageLabel: "0.00", DatabaseSize: databaseSize},
	}
	if !pair.Complete() {
		return c
	}

	filtered := headtohead.Filter(all, pair)
	summary := headtohead.Reduce(filtered, pair)

	c.Summary = summary
	c.KPIs.TotalGoals = summary.TotalGoals()
	c.KPIs.AverageGoals = summary.AverageGoals()
	c.KPIs.AverageLabel = summary.FormatAverage()
	if top, ok := headtohead.MaxScore(filtered, pair); ok {
		c.KPIs.MaxScoreMatch = &top
	}
	c.Proportions = headtohead.Proportion(summary)
	c.Trend = headtohead.BuildTrend(filtered, pair)
	for _, m := range filtered {
		c.History = append(c.History, historyRow(m))
	}

	if summary.Total == 0 {
		c.State = StateNoMatches
	} else {
		c.State = StateReady
	}
	return c
}

func historyRow(m matches.Match) HistoryRow {
	return HistoryRow{
		ID:           m.ID,
		Year:         m.Year,
		Label:        m.Label(),
		SideOneName:  m.SideOne.Name,
		SideOneGoals: m.SideOne.Goals,
		SideTwoName:  m.SideTwo.Name,
		SideTwoGoals: m.SideTwo.Goals,
		Score:        fmt.Sprintf("%d - %d", m.SideOne.Goals, m.SideTwo.Goals),
	}
}

func teamRef(t teams.Team) *teams.Team {
	if t.Key() == "" {
		return nil
	}
	return &t
}
