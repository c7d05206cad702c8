package http

import (
	"github.com/joylabs/catalogsync/internal/config"
	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/service"
	"github.com/joylabs/catalogsync/internal/store"
	"github.com/joylabs/catalogsync/internal/utils"
)

type Handler struct {
	services *service.Services
	storages *store.Storages
	cfg      config.Webhook

	logger *logger.Logger
}

func NewHandler(services *service.Services, storages *store.Storages, cfg config.Webhook, logger *logger.Logger) *Handler {
	utils.InitHasherPool(cfg.SignatureKey)

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		storages: storages,
		cfg:      cfg,
		logger:   logger,
	}
}
