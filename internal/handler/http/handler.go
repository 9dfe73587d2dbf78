package http

import (
	"github.com/arnarb/leikir-api/internal/config"
	"github.com/arnarb/leikir-api/internal/logger"
	"github.com/arnarb/leikir-api/internal/service"
)

type Handler struct {
	services *service.Services

	adminToken string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		adminToken: cfg.AdminToken,
		logger:     logger,
	}
}
