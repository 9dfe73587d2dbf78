package service

import (
	"github.com/arnarb/leikir-api/internal/logger"
	"github.com/arnarb/leikir-api/internal/store"
)

type Services struct {
	TeamService TeamService
	GameService GameService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		TeamService: NewTeamService(storages.TeamRepository, logger),
		GameService: NewGameService(storages.GameRepository, storages.TeamRepository, logger),
	}
}
