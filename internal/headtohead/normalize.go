package headtohead

import (
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-versus-service/internal/domain/teams"
)

// Outcome is a match result from team A's point of view.
type Outcome int

const (
	Draw Outcome = iota
	WinA
	WinB
)

func (o Outcome) String() string {
	switch o {
	case WinA:
		return "winA"
	case WinB:
		return "winB"
	default:
		return "draw"
	}
}

// Perspective is a match re-expressed in the selected pair's ordering.
type Perspective struct {
	SelectedACode  string `json:"selectedACode"`
	SelectedAGoals int    `json:"selectedAGoals"`
	SelectedBCode  string `json:"selectedBCode"`
	SelectedBGoals int    `json:"selectedBGoals"`
}

// Normalize maps m onto the pair. When SideOne is team A the goals carry
// across; otherwise they are swapped.
func Normalize(m matches.Match, pair Pair) Perspective {
	if isAHome(m, pair.A) {
		return Perspective{
			SelectedACode:  m.SideOne.Code,
			SelectedAGoals: m.SideOne.Goals,
			SelectedBCode:  m.SideTwo.Code,
			SelectedBGoals: m.SideTwo.Goals,
		}
	}
	return Perspective{
		SelectedACode:  m.SideTwo.Code,
		SelectedAGoals: m.SideTwo.Goals,
		SelectedBCode:  m.SideOne.Code,
		SelectedBGoals: m.SideOne.Goals,
	}
}

// Outcome classifies the normalized result.
func (p Perspective) Outcome() Outcome {
	switch {
	case p.SelectedAGoals > p.SelectedBGoals:
		return WinA
	case p.SelectedBGoals > p.SelectedAGoals:
		return WinB
	default:
		return Draw
	}
}

func isAHome(m matches.Match, a teams.Team) bool {
	return a.Key() != "" && teams.CodeKey(m.SideOne.Code) == a.Key()
}
