package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/store"
	"github.com/joylabs/catalogsync/internal/utils"
	"github.com/joylabs/catalogsync/models"
)

// applyCatalogChange writes a local edit through the versioned update
// builder and returns the remote-confirmed object.
func (h *Handler) applyCatalogChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var change models.LocalChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		log.Err(err).Str("func", "*Handler.applyCatalogChange").Msg("invalid change JSON")
		http.Error(w, "invalid change JSON", http.StatusBadRequest)
		return
	}

	confirmed, err := h.services.UpdateBuilder.ApplyChange(ctx, change)
	if err != nil {
		log.Err(err).Str("func", "*Handler.applyCatalogChange").
			Str("object_id", change.Object.ID).
			Str("object_type", change.Object.Type).
			Msg("applying local change failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, confirmed, http.StatusOK)
}

func (h *Handler) listCatalogObjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	objectType := chi.URLParam(r, "type")

	filter := store.Filter{
		NamePrefix:     r.URL.Query().Get("name_prefix"),
		ParentID:       r.URL.Query().Get("parent_id"),
		SKU:            r.URL.Query().Get("sku"),
		IncludeDeleted: r.URL.Query().Get("include_deleted") == "true",
	}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	objects, err := h.storages.Catalog.QueryObjects(ctx, objectType, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCatalogObjects").
			Str("object_type", objectType).
			Msg("querying catalog objects failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]any{
		"objects": objects,
		"length":  len(objects),
	}, http.StatusOK)
}

func (h *Handler) getCatalogObject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	objectType := chi.URLParam(r, "type")
	objectID := chi.URLParam(r, "id")

	object, err := h.storages.Catalog.GetObject(ctx, objectType, objectID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCatalogObject").
			Str("object_type", objectType).
			Str("object_id", objectID).
			Msg("loading catalog object failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, object, http.StatusOK)
}

func (h *Handler) getCatalogImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	imageID := chi.URLParam(r, "id")

	data, err := h.storages.Images.Get(imageID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCatalogImage").
			Str("image_id", imageID).
			Msg("loading cached image failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
