package models

import "time"

// Result values derived from a game's two scores. Never stored; computed
// when a game is read.
const (
	ResultHome = "home"
	ResultDraw = "draw"
	ResultAway = "away"
)

// GameSide is one side of a game with the team's display name resolved.
type GameSide struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Game is a played game with both team references resolved to names.
type Game struct {
	ID   int64     `json:"id"`
	Date time.Time `json:"date"`
	Home GameSide  `json:"home"`
	Away GameSide  `json:"away"`
}

// GameRecord is the raw "games" row: team references are ids, not names.
type GameRecord struct {
	ID        int64
	Date      time.Time
	HomeID    int64
	HomeScore int
	AwayID    int64
	AwayScore int
}

// Outcome derives the game result from the two scores.
func Outcome(homeScore, awayScore int) string {
	switch {
	case homeScore > awayScore:
		return ResultHome
	case homeScore < awayScore:
		return ResultAway
	default:
		return ResultDraw
	}
}

// Points returns the league points awarded to the home and away side:
// 3 for a win, 1 each for a draw, 0 for a loss.
func Points(homeScore, awayScore int) (home int, away int) {
	switch Outcome(homeScore, awayScore) {
	case ResultHome:
		return 3, 0
	case ResultAway:
		return 0, 3
	default:
		return 1, 1
	}
}
