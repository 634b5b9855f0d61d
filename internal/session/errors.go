package session

import "github.com/preston-bernstein/worldcup-versus-service/internal/headtohead"

var (
	// ErrSameTeam is returned when a team is chosen for both slots.
	ErrSameTeam = headtohead.ErrSameTeam
	// ErrUnknownTeam is returned when a code is not in the roster.
	ErrUnknownTeam = headtohead.ErrUnknownTeam
)
