package headtohead

import (
	"fmt"

	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
)

// Proportions splits the total into percentages for A wins, draws and B wins.
type Proportions struct {
	WinsA float64 `json:"winsA"`
	Draws float64 `json:"draws"`
	WinsB float64 `json:"winsB"`
}

// Proportion computes the percentage triple. Each share is 0 when Total is 0.
func Proportion(s Summary) Proportions {
	return Proportions{
		WinsA: percent(s.WinsA, s.Total),
		Draws: percent(s.Draws, s.Total),
		WinsB: percent(s.WinsB, s.Total),
	}
}

// Formatted returns each share with two decimals, in A, draw, B order.
func (p Proportions) Formatted() [3]string {
	return [3]string{
		fmt.Sprintf("%.2f", p.WinsA),
		fmt.Sprintf("%.2f", p.Draws),
		fmt.Sprintf("%.2f", p.WinsB),
	}
}

func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// TrendPoint is one match in the goal series.
type TrendPoint struct {
	ID     string `json:"id"`
	Year   string `json:"year"`
	Date   string `json:"date,omitempty"`
	GoalsA int    `json:"goalsA"`
	GoalsB int    `json:"goalsB"`
	// HeightA and HeightB are the goals as a percentage of the scale max.
	HeightA float64 `json:"heightA"`
	HeightB float64 `json:"heightB"`
}

// Trend is the chronological goal series with its vertical scale.
type Trend struct {
	Points []TrendPoint `json:"points"`
	Max    int          `json:"max"`
	Ticks  []int        `json:"ticks"`
}

// BuildTrend dedupes filtered by id, orders it oldest first and normalizes
// each match onto the pair. Max is the largest single-side goal count,
// never below 1; Ticks enumerates 0..Max.
func BuildTrend(filtered []matches.Match, pair Pair) Trend {
	ordered := SortChronological(DedupeByID(filtered))

	maxGoals := 1
	for _, m := range ordered {
		maxGoals = max(maxGoals, m.SideOne.Goals, m.SideTwo.Goals)
	}

	points := make([]TrendPoint, 0, len(ordered))
	for _, m := range ordered {
		p := Normalize(m, pair)
		points = append(points, TrendPoint{
			ID:      m.ID,
			Year:    m.Year,
			Date:    m.Date,
			GoalsA:  p.SelectedAGoals,
			GoalsB:  p.SelectedBGoals,
			HeightA: percent(max(p.SelectedAGoals, 0), maxGoals),
			HeightB: percent(max(p.SelectedBGoals, 0), maxGoals),
		})
	}

	ticks := make([]int, 0, maxGoals+1)
	for i := 0; i <= maxGoals; i++ {
		ticks = append(ticks, i)
	}
	return Trend{Points: points, Max: maxGoals, Ticks: ticks}
}
