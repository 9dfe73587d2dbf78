package models

import "encoding/json"

// TeamPayload is the decoded body of POST /teams and PATCH /teams/{slug}.
// Every field is an optional variant; the validators decide which ones are
// required for the operation at hand.
type TeamPayload struct {
	Name        OptionalString `json:"name"`
	Description OptionalString `json:"description"`
}

// GameSidePayload is one side of a submitted game. The wire format carries
// the team's display name; resolution to an id always happens server-side.
type GameSidePayload struct {
	Name  OptionalString `json:"name"`
	Score OptionalInt    `json:"score"`
}

// UnmarshalJSON tolerates a side that is not a JSON object: the whole side
// collapses to absent rather than failing the request decode.
func (p *GameSidePayload) UnmarshalJSON(b []byte) error {
	type alias GameSidePayload
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		*p = GameSidePayload{}
		return nil
	}
	*p = GameSidePayload(a)
	return nil
}

// Present reports whether the caller supplied anything for this side.
func (p GameSidePayload) Present() bool {
	return p.Name.Present || p.Score.Present
}

// GamePayload is the decoded body of POST /games and PATCH /games/{id}.
type GamePayload struct {
	Date OptionalString  `json:"date"`
	Home GameSidePayload `json:"home"`
	Away GameSidePayload `json:"away"`
}
