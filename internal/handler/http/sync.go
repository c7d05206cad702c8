package http

import (
	"net/http"

	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/utils"
)

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	status, err := h.services.Coordinator.Status(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSyncStatus").Msg("error loading sync status")
		http.Error(w, "error loading sync status", statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) startFullSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	summary, err := h.services.Coordinator.StartFullSync(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.startFullSync").Msg("full sync failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) startIncrementalSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	summary, err := h.services.Coordinator.StartIncrementalSync(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.startIncrementalSync").Msg("incremental sync failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
