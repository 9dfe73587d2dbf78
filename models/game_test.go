package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, ResultHome, Outcome(2, 1))
	assert.Equal(t, ResultAway, Outcome(0, 3))
	assert.Equal(t, ResultDraw, Outcome(1, 1))
	assert.Equal(t, ResultDraw, Outcome(0, 0))
}

func TestPoints(t *testing.T) {
	tests := []struct {
		homeScore, awayScore int
		home, away           int
	}{
		{2, 1, 3, 0},
		{0, 3, 0, 3},
		{1, 1, 1, 1},
	}

	for _, tt := range tests {
		home, away := Points(tt.homeScore, tt.awayScore)
		assert.Equal(t, tt.home, home)
		assert.Equal(t, tt.away, away)
	}
}

func TestNewGameResponse(t *testing.T) {
	game := Game{
		ID:   7,
		Home: GameSide{Name: "Boltaliðið", Score: 2},
		Away: GameSide{Name: "Dripplararnir", Score: 1},
	}

	resp := NewGameResponse(game)
	assert.Equal(t, ResultHome, resp.Result)
	assert.Equal(t, "/games/7", resp.Href)
}

func TestNewTeamResponse(t *testing.T) {
	resp := NewTeamResponse(Team{ID: 1, Name: "Boltaliðið", Slug: "boltalidid"})
	assert.Equal(t, "/teams/boltalidid", resp.Href)
	assert.Equal(t, "boltalidid", resp.Slug)
}
