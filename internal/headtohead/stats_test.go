package headtohead

import (
	"testing"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
)

func TestNormalizeSwapsWhenTeamAIsSideTwo(t *testing.T) {
	m := matches.Match{ID: "1", SideOne: side("ARG", "Argentina", 0), SideTwo: side("BRA", "Brazil", 1)}

	p := Normalize(m, Pair{A: brazil, B: argentina})
	if p.SelectedACode != "BRA" || p.SelectedAGoals != 1 || p.SelectedBCode != "ARG" || p.SelectedBGoals != 0 {
		t.Fatalf("unexpected perspective %+v", p)
	}
	if p.Outcome() != WinA {
		t.Fatalf("expected win for A, got %s", p.Outcome())
	}

	straight := Normalize(m, Pair{A: argentina, B: brazil})
	if straight.SelectedACode != "ARG" || straight.SelectedAGoals != 0 || straight.SelectedBGoals != 1 {
		t.Fatalf("unexpected straight perspective %+v", straight)
	}
	if straight.Outcome() != WinB {
		t.Fatalf("expected win for B, got %s", straight.Outcome())
	}
}

func TestNormalizeComparesCodesIgnoringCase(t *testing.T) {
	m := matches.Match{SideOne: side("bra", "Brazil", 3), SideTwo: side("ARG", "Argentina", 1)}
	p := Normalize(m, Pair{A: brazil, B: argentina})
	if p.SelectedAGoals != 3 || p.SelectedBGoals != 1 {
		t.Fatalf("expected case-insensitive home detection, got %+v", p)
	}
}

func TestOutcomeString(t *testing.T) {
	cases := map[Outcome]string{WinA: "winA", WinB: "winB", Draw: "draw"}
	for o, want := range cases {
		if o.String() != want {
			t.Fatalf("expected %s, got %s", want, o.String())
		}
	}
}

func TestReduceBrazilArgentinaScenario(t *testing.T) {
	items := []matches.Match{
		{ID: "1", Year: "1998", SideOne: side("BRA", "Brazil", 2), SideTwo: side("ARG", "Argentina", 1)},
		{ID: "2", Year: "2002", SideOne: side("ARG", "Argentina", 0), SideTwo: side("BRA", "Brazil", 1)},
	}
	pair := Pair{A: brazil, B: argentina}

	got := Reduce(Filter(items, pair), pair)
	want := Summary{WinsA: 2, WinsB: 0, Draws: 0, GoalsA: 3, GoalsB: 1, Total: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got.TotalGoals() != 4 || got.FormatAverage() != "2.00" {
		t.Fatalf("unexpected goal KPIs total=%d avg=%s", got.TotalGoals(), got.FormatAverage())
	}
}

func TestReduceEmptyScenario(t *testing.T) {
	pair := Pair{A: brazil, B: argentina}
	items := []matches.Match{{ID: "1", SideOne: side("BRA", "Brazil", 1), SideTwo: side("GER", "Germany", 7)}}

	s := Reduce(Filter(items, pair), pair)
	if s != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
	if s.AverageGoals() != 0 || s.FormatAverage() != "0.00" {
		t.Fatalf("expected 0.00 average, got %s", s.FormatAverage())
	}
	if p := Proportion(s); p != (Proportions{}) || p.Formatted() != [3]string{"0.00", "0.00", "0.00"} {
		t.Fatalf("expected zero proportions, got %+v", p)
	}
}

func TestReduceCountsDuplicateIDsOnce(t *testing.T) {
	overlap := matches.Match{ID: "7", Year: "1990", SideOne: side("BRA", "Brazil", 0), SideTwo: side("ARG", "Argentina", 1)}
	items := []matches.Match{
		overlap,
		{ID: "8", Year: "1978", SideOne: side("ARG", "Argentina", 0), SideTwo: side("BRA", "Brazil", 0)},
		overlap,
	}
	pair := Pair{A: brazil, B: argentina}

	filtered := Filter(items, pair)
	s := Reduce(filtered, pair)
	if s.Total != 2 || s.WinsB != 1 || s.Draws != 1 || s.GoalsB != 1 {
		t.Fatalf("expected duplicate to count once, got %+v", s)
	}
	if tr := BuildTrend(filtered, pair); len(tr.Points) != 2 {
		t.Fatalf("expected 2 trend points, got %d", len(tr.Points))
	}
}

func TestProportionComputesShares(t *testing.T) {
	p := Proportion(Summary{WinsA: 1, Draws: 1, WinsB: 2, Total: 4})
	if p.WinsA != 25 || p.Draws != 25 || p.WinsB != 50 {
		t.Fatalf("unexpected shares %+v", p)
	}
	third := Proportion(Summary{WinsA: 1, Draws: 1, WinsB: 1, Total: 3}).Formatted()
	if third != [3]string{"33.33", "33.33", "33.33"} {
		t.Fatalf("unexpected formatted shares %v", third)
	}
}

func TestMaxScoreFirstHighestWins(t *testing.T) {
	items := []matches.Match{
		{ID: "1", Year: "1974", Stage: "Second Round", SideOne: side("BRA", "Brazil", 2), SideTwo: side("ARG", "Argentina", 1)},
		{ID: "2", Year: "1978", Stage: "Second Round", SideOne: side("ARG", "Argentina", 0), SideTwo: side("BRA", "Brazil", 0)},
		{ID: "3", Year: "1990", Competition: "FIFA World Cup", SideOne: side("ARG", "Argentina", 1), SideTwo: side("BRA", "Brazil", 2)},
	}
	pair := Pair{A: argentina, B: brazil}

	top, ok := MaxScore(Filter(items, pair), pair)
	if !ok {
		t.Fatal("expected a top-scoring match")
	}
	if top.MatchID != "1" || top.Goals != 3 || top.Year != "1974" || top.Label != "Second Round" {
		t.Fatalf("expected earliest 3-goal match, got %+v", top)
	}
	if top.SelectedACode != "ARG" || top.SelectedAGoals != 1 || top.SelectedBGoals != 2 {
		t.Fatalf("expected score normalized to the pair, got %+v", top.Perspective)
	}

	if _, ok := MaxScore(nil, pair); ok {
		t.Fatal("expected no top-scoring match for an empty series")
	}
}
