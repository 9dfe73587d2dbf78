package models

import (
	"strconv"
	"time"
)

// TeamListItem is the projection returned by GET /teams.
type TeamListItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Href string `json:"href"`
}

// TeamResponse is the full team representation returned by single-team reads
// and by create/update.
type TeamResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Href        string `json:"href"`
}

// GameResponse is a game with resolved team names, the derived result, and
// a navigable href.
type GameResponse struct {
	ID     int64     `json:"id"`
	Date   time.Time `json:"date"`
	Home   GameSide  `json:"home"`
	Away   GameSide  `json:"away"`
	Result string    `json:"result"`
	Href   string    `json:"href"`
}

// MessageResponse carries a single informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a single error condition.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse is the body of a 400 produced by a validation batch.
type ValidationResponse struct {
	Errors []FieldError `json:"errors"`
}

func NewTeamListItem(t Team) TeamListItem {
	return TeamListItem{
		ID:   t.ID,
		Name: t.Name,
		Href: "/teams/" + t.Slug,
	}
}

func NewTeamResponse(t Team) TeamResponse {
	return TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		Description: t.Description,
		Href:        "/teams/" + t.Slug,
	}
}

func NewGameResponse(g Game) GameResponse {
	return GameResponse{
		ID:     g.ID,
		Date:   g.Date,
		Home:   g.Home,
		Away:   g.Away,
		Result: Outcome(g.Home.Score, g.Away.Score),
		Href:   "/games/" + strconv.FormatInt(g.ID, 10),
	}
}
