package service

import (
	"context"

	"github.com/arnarb/leikir-api/models"
)

type TeamService interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeamBySlug(ctx context.Context, slug string) (models.Team, error)
	CreateTeam(ctx context.Context, payload models.TeamPayload) (models.Team, error)
	UpdateTeam(ctx context.Context, slug string, payload models.TeamPayload) (models.Team, error)
	DeleteTeam(ctx context.Context, slug string) error
}

type GameService interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGameByID(ctx context.Context, id int64) (models.Game, error)
	CreateGame(ctx context.Context, payload models.GamePayload) (models.Game, error)
	UpdateGame(ctx context.Context, id int64, payload models.GamePayload) (models.Game, error)
	DeleteGame(ctx context.Context, id int64) error
}
