package http

import (
	"encoding/json"
	"net/http"

	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/utils"
	"github.com/joylabs/catalogsync/models"
)

// catalogWebhook receives one change notification from the remote. The
// signature middleware has already authenticated the body. Cached media is
// invalidated first (eviction is cheap and idempotent), then the
// deduplicator decides whether the notification triggers a catch-up sync.
// The endpoint always acknowledges accepted deliveries with 200 so the
// remote stops redelivering; the sync itself runs in the background.
func (h *Handler) catalogWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var notification models.ChangeNotification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		log.Err(err).Str("func", "*Handler.catalogWebhook").Msg("invalid notification JSON")
		http.Error(w, "invalid notification JSON", http.StatusBadRequest)
		return
	}
	if notification.EventID == "" {
		log.Error().Str("func", "*Handler.catalogWebhook").Msg("notification without event_id")
		http.Error(w, "notification without event_id", http.StatusBadRequest)
		return
	}

	if err := h.services.ImageInvalidator.OnNotification(ctx, notification); err != nil {
		log.Err(err).Str("func", "*Handler.catalogWebhook").
			Str("event_id", notification.EventID).
			Msg("image invalidation failed")
		http.Error(w, "image invalidation failed", statusFromError(err))
		return
	}

	triggered, err := h.services.Dedup.HandleNotification(ctx, notification)
	if err != nil {
		log.Err(err).Str("func", "*Handler.catalogWebhook").
			Str("event_id", notification.EventID).
			Msg("notification handling failed")
		http.Error(w, "notification handling failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]any{
		"event_id":       notification.EventID,
		"sync_triggered": triggered,
	}, http.StatusOK)
}
