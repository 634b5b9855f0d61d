package fixture

import "github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"

func record(id, year, date, stage, codeA, nameA string, goalsA int, codeB, nameB string, goalsB int) matches.Match {
	return matches.Match{
		ID:          id,
		Year:        year,
		Date:        date,
		Competition: "FIFA World Cup",
		Stage:       stage,
		SideOne:     matches.Side{Code: codeA, Name: nameA, Goals: goalsA},
		SideTwo:     matches.Side{Code: codeB, Name: nameB, Goals: goalsB},
	}
}

func builtinMatches() []matches.Match {
	return []matches.Match{
		record("1930-18", "1930", "1930-07-30", "Final", "URU", "Uruguay", 4, "ARG", "Argentina", 2),
		record("1950-22", "1950", "1950-07-16", "Final Round", "URU", "Uruguay", 2, "BRA", "Brazil", 1),
		record("1966-32", "1966", "1966-07-30", "Final", "ENG", "England", 4, "FRG", "West Germany", 2),
		record("1970-32", "1970", "1970-06-21", "Final", "BRA", "Brazil", 4, "ITA", "Italy", 1),
		record("1974-29", "1974", "1974-06-30", "Second Round", "BRA", "Brazil", 2, "ARG", "Argentina", 1),
		record("1974-36", "1974", "1974-07-03", "Second Round", "NED", "Netherlands", 2, "BRA", "Brazil", 0),
		record("1978-32", "1978", "1978-06-18", "Second Round", "ARG", "Argentina", 0, "BRA", "Brazil", 0),
		record("1978-38", "1978", "1978-06-25", "Final", "ARG", "Argentina", 3, "NED", "Netherlands", 1),
		record("1982-44", "1982", "1982-07-02", "Second Round", "ARG", "Argentina", 1, "BRA", "Brazil", 3),
		record("1982-47", "1982", "1982-07-05", "Second Round", "ITA", "Italy", 3, "BRA", "Brazil", 2),
		record("1986-45", "1986", "1986-06-21", "Quarter-finals", "BRA", "Brazil", 1, "FRA", "France", 1),
		record("1986-48", "1986", "1986-06-22", "Quarter-finals", "ARG", "Argentina", 2, "ENG", "England", 1),
		record("1990-37", "1990", "1990-06-24", "Round of 16", "BRA", "Brazil", 0, "ARG", "Argentina", 1),
		record("1990-49", "1990", "1990-07-03", "Semi-finals", "ITA", "Italy", 1, "ARG", "Argentina", 1),
		record("1994-48", "1994", "1994-07-09", "Quarter-finals", "NED", "Netherlands", 2, "BRA", "Brazil", 3),
		record("1994-52", "1994", "1994-07-17", "Final", "BRA", "Brazil", 0, "ITA", "Italy", 0),
		record("1998-61", "1998", "1998-07-07", "Semi-finals", "BRA", "Brazil", 1, "NED", "Netherlands", 1),
		record("1998-64", "1998", "1998-07-12", "Final", "BRA", "Brazil", 0, "FRA", "France", 3),
		record("2002-57", "2002", "2002-06-21", "Quarter-finals", "ENG", "England", 1, "BRA", "Brazil", 2),
		record("2002-64", "2002", "2002-06-30", "Final", "GER", "Germany", 0, "BRA", "Brazil", 2),
		record("2006-57", "2006", "2006-06-30", "Quarter-finals", "GER", "Germany", 1, "ARG", "Argentina", 1),
		record("2006-60", "2006", "2006-07-01", "Quarter-finals", "BRA", "Brazil", 0, "FRA", "France", 1),
		record("2010-57", "2010", "2010-07-02", "Quarter-finals", "NED", "Netherlands", 2, "BRA", "Brazil", 1),
		record("2010-59", "2010", "2010-07-03", "Quarter-finals", "ARG", "Argentina", 0, "GER", "Germany", 4),
		record("2014-61", "2014", "2014-07-08", "Semi-finals", "BRA", "Brazil", 1, "GER", "Germany", 7),
		record("2014-62", "2014", "2014-07-09", "Semi-finals", "NED", "Netherlands", 0, "ARG", "Argentina", 0),
		record("2014-64", "2014", "2014-07-13", "Final", "GER", "Germany", 1, "ARG", "Argentina", 0),
		record("2018-50", "2018", "2018-06-30", "Round of 16", "FRA", "France", 4, "ARG", "Argentina", 3),
		record("2022-58", "2022", "2022-12-09", "Quarter-finals", "NED", "Netherlands", 2, "ARG", "Argentina", 2),
		record("2022-64", "2022", "2022-12-18", "Final", "ARG", "Argentina", 3, "FRA", "France", 3),
	}
}
