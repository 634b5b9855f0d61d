package teams

import "strings"

// Team is a national side as referenced by match records.
// Codes are compared case-insensitively; Code keeps the spelling first seen upstream.
type Team struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Key returns the canonical, case-folded code used for comparisons.
func (t Team) Key() string {
	return CodeKey(t.Code)
}

// Is reports whether the team matches the given code, ignoring case.
func (t Team) Is(code string) bool {
	return strings.EqualFold(strings.TrimSpace(t.Code), strings.TrimSpace(code))
}

// CodeKey folds a raw team code into its canonical lookup key.
func CodeKey(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
