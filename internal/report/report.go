// Package report renders rosters and head-to-head comparisons as terminal tables.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/preston-bernstein/worldcup-versus-service/internal/app/versus"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/headtohead"
)

const (
	barWidth   = 40
	trendWidth = 20
)

var (
	cHeader = color.New(color.FgCyan, color.Bold)
	cTeamA  = color.New(color.FgGreen)
	cTeamB  = color.New(color.FgRed)
	cMuted  = color.New(color.Faint)
	cWarn   = color.New(color.FgYellow)
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintRoster writes the team roster as a CODE | NAME table.
func PrintRoster(w io.Writer, roster []teams.Team) {
	if len(roster) == 0 {
		cMuted.Fprintln(w, "No teams loaded.")
		return
	}
	table := newTable(w)
	table.Header("CODE", "NAME")
	for _, t := range roster {
		table.Append(t.Code, t.Name)
	}
	table.Render()
}

// PrintComparison writes every section of a comparison, or the message that
// stands in for them when the comparison is not ready.
func PrintComparison(w io.Writer, c versus.Comparison) {
	switch c.State {
	case versus.StateUnavailable:
		msg := "Match data unavailable."
		if c.Error != "" {
			msg = fmt.Sprintf("Match data unavailable: %s", c.Error)
		}
		cWarn.Fprintln(w, msg)
		return
	case versus.StateIncomplete:
		cMuted.Fprintln(w, "Select two teams to compare.")
		return
	}

	nameA, nameB := teamName(c.TeamA), teamName(c.TeamB)
	cHeader.Fprintf(w, "\n%s vs %s\n\n", nameA, nameB)
	if c.Error != "" {
		cWarn.Fprintf(w, "Last refresh failed: %s\n\n", c.Error)
	}

	PrintKPIs(w, c.KPIs)
	if c.State == versus.StateNoMatches {
		cMuted.Fprintf(w, "\n%s and %s have never met.\n", nameA, nameB)
		return
	}

	fmt.Fprintln(w)
	PrintSummary(w, c.Summary, nameA, nameB)
	fmt.Fprintln(w)
	PrintProportionBar(w, c.Proportions)
	fmt.Fprintln(w)
	PrintTrend(w, c.Trend, nameA, nameB)
	fmt.Fprintln(w)
	PrintHistory(w, c.History)
}

// PrintKPIs writes the headline figures.
func PrintKPIs(w io.Writer, k versus.KPIs) {
	table := newTable(w)
	table.Header("TOTAL GOALS", "AVG GOALS", "TOP SCORING", "DATABASE")
	table.Append(strconv.Itoa(k.TotalGoals), k.AverageLabel, topScoring(k.MaxScoreMatch), fmt.Sprintf("%d matches", k.DatabaseSize))
	table.Render()
}

func topScoring(top *headtohead.TopScoring) string {
	if top == nil {
		return "-"
	}
	return fmt.Sprintf("%s %s, %d-%d", top.Year, top.Label, top.SelectedAGoals, top.SelectedBGoals)
}

// PrintSummary writes wins, draws and goals per side.
func PrintSummary(w io.Writer, s headtohead.Summary, nameA, nameB string) {
	table := newTable(w)
	table.Header("TEAM", "WINS", "DRAWS", "GOALS")
	table.Append(nameA, strconv.Itoa(s.WinsA), strconv.Itoa(s.Draws), strconv.Itoa(s.GoalsA))
	table.Append(nameB, strconv.Itoa(s.WinsB), strconv.Itoa(s.Draws), strconv.Itoa(s.GoalsB))
	table.Render()
}

// PrintProportionBar draws a fixed-width bar split into A wins, draws and B wins.
func PrintProportionBar(w io.Writer, p headtohead.Proportions) {
	a, d, b := splitBar(p, barWidth)
	cTeamA.Fprint(w, strings.Repeat("█", a))
	cMuted.Fprint(w, strings.Repeat("▒", d))
	cTeamB.Fprint(w, strings.Repeat("░", b))
	f := p.Formatted()
	fmt.Fprintf(w, "\n%s%% wins A  %s%% draws  %s%% wins B\n", f[0], f[1], f[2])
}

// splitBar rounds each share to whole cells. Leftover cells from rounding go
// to the draw segment so the segments always add up to width when any share
// is non-zero.
func splitBar(p headtohead.Proportions, width int) (int, int, int) {
	if p.WinsA+p.Draws+p.WinsB <= 0 {
		return 0, 0, 0
	}
	a := int(math.Round(p.WinsA / 100 * float64(width)))
	b := int(math.Round(p.WinsB / 100 * float64(width)))
	if a+b > width {
		b = width - a
	}
	return a, width - a - b, b
}

// PrintTrend writes one row per match in chronological order with bars
// scaled against the trend's maximum.
func PrintTrend(w io.Writer, t headtohead.Trend, nameA, nameB string) {
	if len(t.Points) == 0 {
		return
	}
	cMuted.Fprintf(w, "Goals per match (scale 0-%d)\n", t.Max)
	table := tablewriter.NewTable(w)
	table.Header("YEAR", nameA, "", nameB, "")
	for _, pt := range t.Points {
		table.Append(
			pt.Year,
			strconv.Itoa(pt.GoalsA),
			scaled(pt.HeightA, "#"),
			strconv.Itoa(pt.GoalsB),
			scaled(pt.HeightB, "="),
		)
	}
	table.Render()
}

func scaled(height float64, glyph string) string {
	n := int(math.Round(height / 100 * trendWidth))
	return strings.Repeat(glyph, n)
}

// PrintHistory writes the matches as recorded, newest first.
func PrintHistory(w io.Writer, rows []versus.HistoryRow) {
	if len(rows) == 0 {
		return
	}
	table := newTable(w)
	table.Header("YEAR", "STAGE", "HOME", "SCORE", "AWAY")
	for _, r := range rows {
		table.Append(r.Year, r.Label, r.SideOneName, r.Score, r.SideTwoName)
	}
	table.Render()
}

func teamName(t *teams.Team) string {
	if t == nil {
		return "?"
	}
	if t.Name != "" {
		return t.Name
	}
	return t.Code
}
