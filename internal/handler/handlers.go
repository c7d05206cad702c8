package handler

import (
	"github.com/joylabs/catalogsync/internal/config"
	"github.com/joylabs/catalogsync/internal/handler/http"
	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/service"
	"github.com/joylabs/catalogsync/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, storages *store.Storages, cfg config.Webhook, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, storages, cfg, logger),
	}, nil
}
