package testutil

import (
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
)

var sampleNames = map[string]string{
	"ARG": "Argentina",
	"BRA": "Brazil",
	"FRA": "France",
	"GER": "Germany",
	"URU": "Uruguay",
}

// SampleMatch returns a match record between two codes with the given score.
// Known codes get their full team name; others reuse the code as the name.
func SampleMatch(id, year, codeA, codeB string, goalsA, goalsB int) matches.Match {
	return matches.Match{
		ID:          id,
		Year:        year,
		Competition: "FIFA World Cup",
		SideOne:     matches.Side{Code: codeA, Name: sampleName(codeA), Goals: goalsA},
		SideTwo:     matches.Side{Code: codeB, Name: sampleName(codeB), Goals: goalsB},
	}
}

// SampleMatchOn is SampleMatch with a date and stage set.
func SampleMatchOn(id, year, date, stage, codeA, codeB string, goalsA, goalsB int) matches.Match {
	m := SampleMatch(id, year, codeA, codeB, goalsA, goalsB)
	m.Date = date
	m.Stage = stage
	return m
}

// BrazilArgentina returns the three-match BRA/ARG scenario plus one unrelated match.
func BrazilArgentina() []matches.Match {
	return []matches.Match{
		SampleMatchOn("1", "1990", "1990-06-24", "Round of 16", "BRA", "ARG", 0, 1),
		SampleMatchOn("2", "1978", "1978-06-18", "Second Round", "ARG", "BRA", 0, 0),
		SampleMatchOn("3", "1974", "1974-06-30", "Second Round", "BRA", "ARG", 2, 1),
		SampleMatchOn("4", "2014", "2014-07-08", "Semi-finals", "BRA", "GER", 1, 7),
	}
}

func sampleName(code string) string {
	if name, ok := sampleNames[code]; ok {
		return name
	}
	return code
}
