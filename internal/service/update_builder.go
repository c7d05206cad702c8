package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/google/uuid"

	"github.com/joylabs/catalogsync/internal/adapter"
	"github.com/joylabs/catalogsync/internal/config"
	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/store"
	"github.com/joylabs/catalogsync/models"
)

// updateBuilder implements the fetch-merge-submit protocol for local edits.
// The remote enforces hierarchical optimistic locking: a write touching an
// item must carry the current version of the item and of every variation it
// embeds, so the builder always re-fetches the full graph right before
// submitting and merges only the locally changed fields onto it.
type updateBuilder struct {
	api     adapter.CatalogAPI
	catalog store.CatalogRepository
	dedup   WebhookDeduplicator
	cfg     config.Sync
	logger  *logger.Logger
}

// NewUpdateBuilder wires an UpdateBuilder. dedup is notified of every
// confirmed write so the echoing change notification is suppressed.
func NewUpdateBuilder(api adapter.CatalogAPI, catalog store.CatalogRepository, dedup WebhookDeduplicator, cfg config.Sync, l *logger.Logger) UpdateBuilder {
	return &updateBuilder{
		api:     api,
		catalog: catalog,
		dedup:   dedup,
		cfg:     cfg,
		logger:  l,
	}
}

func (b *updateBuilder) ApplyChange(ctx context.Context, change models.LocalChange) (models.CatalogObject, error) {
	if !models.KnownType(change.Object.Type) {
		return models.CatalogObject{}, fmt.Errorf("%w: object type %q", ErrUnsupportedChange, change.Object.Type)
	}

	if change.IsCreate() {
		return b.create(ctx, change.Object)
	}
	return b.update(ctx, change.Object)
}

// create submits a brand-new object graph. New objects carry "#"-prefixed
// placeholder ids and no version; the remote assigns both.
func (b *updateBuilder) create(ctx context.Context, obj models.CatalogObject) (models.CatalogObject, error) {
	if obj.ID == "" {
		obj.ID = "#" + uuid.NewString()
	}
	obj.Version = 0
	if obj.ItemData != nil {
		for i := range obj.ItemData.Variations {
			v := &obj.ItemData.Variations[i]
			if v.ID == "" {
				v.ID = "#" + uuid.NewString()
			}
			v.Version = 0
		}
	}

	resp, err := b.api.UpsertObject(ctx, models.UpsertRequest{
		IdempotencyKey: uuid.NewString(),
		Object:         obj,
	})
	if err != nil {
		return models.CatalogObject{}, fmt.Errorf("creating %s object: %w", obj.Type, err)
	}
	if resp.Object == nil {
		return models.CatalogObject{}, fmt.Errorf("creating %s object: remote returned no object", obj.Type)
	}

	if err := b.persist(ctx, *resp.Object); err != nil {
		return *resp.Object, err
	}

	b.logger.Info().
		Str("func", "create").
		Str("object_id", resp.Object.ID).
		Str("object_type", resp.Object.Type).
		Int64("version", resp.Object.Version).
		Msg("catalog object created")
	return *resp.Object, nil
}

// update runs the fetch-merge-retry loop for an existing object. Every
// attempt fetches the current remote graph, merges the local field changes
// onto it and submits the result; a VERSION_MISMATCH means another writer
// got in between, so the loop starts over with the newer graph.
func (b *updateBuilder) update(ctx context.Context, change models.CatalogObject) (models.CatalogObject, error) {
	attempts := b.cfg.ConflictRetryLimit
	if attempts <= 0 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		fresh, err := b.api.RetrieveObject(ctx, change.ID, true)
		if err != nil {
			return models.CatalogObject{}, fmt.Errorf("fetching %s %s before update: %w", change.Type, change.ID, err)
		}
		if fresh.Object == nil {
			return models.CatalogObject{}, fmt.Errorf("fetching %s %s before update: %w", change.Type, change.ID, adapter.ErrNotFound)
		}

		merged, err := b.merge(*fresh.Object, fresh.RelatedObjects, change)
		if err != nil {
			return models.CatalogObject{}, err
		}

		resp, err := b.api.UpsertObject(ctx, models.UpsertRequest{
			IdempotencyKey: uuid.NewString(),
			Object:         merged,
		})
		if errors.Is(err, adapter.ErrVersionConflict) {
			b.logger.Warn().
				Str("func", "update").
				Str("object_id", change.ID).
				Int("attempt", attempt).
				Msg("version conflict during update, refetching")
			continue
		}
		if err != nil {
			return models.CatalogObject{}, fmt.Errorf("updating %s %s: %w", change.Type, change.ID, err)
		}
		if resp.Object == nil {
			return models.CatalogObject{}, fmt.Errorf("updating %s %s: remote returned no object", change.Type, change.ID)
		}

		if err := b.persist(ctx, *resp.Object); err != nil {
			return *resp.Object, err
		}
		return *resp.Object, nil
	}

	return models.CatalogObject{}, fmt.Errorf("%w: %s %s after %d attempts",
		ErrConflictRetryExhausted, change.Type, change.ID, attempts)
}

// merge overlays the locally changed fields onto the freshly fetched remote
// object. Embedded variations are excluded from the generic merge and
// reconciled by id instead: every variation the remote knows stays in the
// graph with its current version (the write must carry all of them), local
// edits are applied on top, and new "#"-prefixed variations are appended
// without a version.
func (b *updateBuilder) merge(fresh models.CatalogObject, related []models.CatalogObject, change models.CatalogObject) (models.CatalogObject, error) {
	var localVariations []models.CatalogObject
	if change.ItemData != nil {
		localVariations = change.ItemData.Variations
		trimmed := *change.ItemData
		trimmed.Variations = nil
		change.ItemData = &trimmed
	}

	// the fresh graph is authoritative for identity and versions
	change.ID = ""
	change.Version = 0
	change.UpdatedAt = time.Time{}

	freshVariations := collectVariations(fresh, related)

	merged := fresh
	if err := mergo.Merge(&merged, change, mergo.WithOverride); err != nil {
		return models.CatalogObject{}, fmt.Errorf("merging local change onto %s %s: %w", fresh.Type, fresh.ID, err)
	}

	if merged.ItemData != nil {
		variations, err := mergeVariations(freshVariations, localVariations)
		if err != nil {
			return models.CatalogObject{}, err
		}
		merged.ItemData.Variations = variations
	}
	return merged, nil
}

// collectVariations gathers the current remote variations of an item from
// both the embedded graph and the related-objects section of a retrieve
// response, deduplicated by id.
func collectVariations(fresh models.CatalogObject, related []models.CatalogObject) []models.CatalogObject {
	var out []models.CatalogObject
	seen := make(map[string]bool)

	if fresh.ItemData != nil {
		for _, v := range fresh.ItemData.Variations {
			if !seen[v.ID] {
				seen[v.ID] = true
				out = append(out, v)
			}
		}
	}
	for _, obj := range related {
		if obj.Type == models.TypeItemVariation && obj.ParentID() == fresh.ID && !seen[obj.ID] {
			seen[obj.ID] = true
			out = append(out, obj)
		}
	}
	return out
}

func mergeVariations(fresh, local []models.CatalogObject) ([]models.CatalogObject, error) {
	out := make([]models.CatalogObject, len(fresh))
	copy(out, fresh)

	index := make(map[string]int, len(out))
	for i, v := range out {
		index[v.ID] = i
	}

	for _, lv := range local {
		if lv.ID == "" || strings.HasPrefix(lv.ID, "#") {
			if lv.ID == "" {
				lv.ID = "#" + uuid.NewString()
			}
			lv.Version = 0
			out = append(out, lv)
			continue
		}

		i, ok := index[lv.ID]
		if !ok {
			return nil, fmt.Errorf("%w: variation %s is not part of the remote item", ErrUnsupportedChange, lv.ID)
		}

		currentVersion := out[i].Version
		lv.Version = 0
		lv.UpdatedAt = time.Time{}
		mergedVariation := out[i]
		if err := mergo.Merge(&mergedVariation, lv, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging variation %s: %w", lv.ID, err)
		}
		mergedVariation.Version = currentVersion
		out[i] = mergedVariation
	}
	return out, nil
}

// persist writes the remote-confirmed graph back into the local replica and
// records the write with the deduplicator, so the change notification the
// remote emits for it is recognised as an echo.
func (b *updateBuilder) persist(ctx context.Context, obj models.CatalogObject) error {
	rows := []models.CatalogObject{obj}
	if obj.ItemData != nil {
		rows = append(rows, obj.ItemData.Variations...)
	}

	if _, err := b.catalog.UpsertObjects(ctx, rows); err != nil {
		return fmt.Errorf("persisting confirmed %s %s locally: %w", obj.Type, obj.ID, err)
	}

	for _, row := range rows {
		b.dedup.RecordLocalWrite(row.Type, row.ID)
	}
	return nil
}
