package worldcup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// matchesResponse is the paginated envelope. Both fields are pointers so a
// missing key can be told apart from an empty one.
type matchesResponse struct {
	Data *[]matchResponse `json:"data"`
	Meta *metaResponse    `json:"meta"`
}

type metaResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

type matchResponse struct {
	ID          flexString `json:"id"`
	Year        flexString `json:"year"`
	Date        string     `json:"date"`
	Competition string     `json:"competition"`
	Stage       string     `json:"stage"`
	TeamACode   string     `json:"team_a_code"`
	TeamBCode   string     `json:"team_b_code"`
	TeamA       string     `json:"team_a"`
	TeamB       string     `json:"team_b"`
	ScoreA      int        `json:"score_a"`
	ScoreB      int        `json:"score_b"`
}

type teamResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// flexString accepts a JSON string or number and keeps its textual form.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	if i, err := n.Int64(); err == nil {
		*f = flexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = flexString(n.String())
	return nil
}
