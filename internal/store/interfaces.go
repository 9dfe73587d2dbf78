package store

import (
	"context"

	"github.com/arnarb/leikir-api/models"
)

type TeamRepository interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	FindTeamBySlug(ctx context.Context, slug string) (models.Team, error)
	InsertTeam(ctx context.Context, team models.Team) (models.Team, error)
	UpdateTeam(ctx context.Context, id int64, fields []string, values []any) (models.Team, error)
	DeleteTeamBySlug(ctx context.Context, slug string) error
}

type GameRepository interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGameByID(ctx context.Context, id int64) (models.Game, error)
	FindGameRecord(ctx context.Context, id int64) (models.GameRecord, error)
	InsertGame(ctx context.Context, record models.GameRecord) (int64, error)
	UpdateGame(ctx context.Context, id int64, fields []string, values []any) (models.GameRecord, error)
	DeleteGameByID(ctx context.Context, id int64) error
}
