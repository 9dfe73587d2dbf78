package handler

import (
	"github.com/arnarb/leikir-api/internal/config"
	"github.com/arnarb/leikir-api/internal/handler/http"
	"github.com/arnarb/leikir-api/internal/logger"
	"github.com/arnarb/leikir-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}, nil
}
