package service

import (
	"context"
	"fmt"
	"time"

	"github.com/joylabs/catalogsync/internal/adapter"
	"github.com/joylabs/catalogsync/internal/config"
	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/store"
	"github.com/joylabs/catalogsync/models"
)

// syncService streams catalog objects from the remote API into the local
// replica. It holds no run state of its own: mutual exclusion and status
// persistence belong to the coordinator.
type syncService struct {
	api     adapter.CatalogAPI
	catalog store.CatalogRepository
	cfg     config.Sync
	logger  *logger.Logger
}

// NewSyncService wires a SyncService over the remote API client and the
// local catalog repository.
func NewSyncService(api adapter.CatalogAPI, catalog store.CatalogRepository, cfg config.Sync, l *logger.Logger) SyncService {
	return &syncService{
		api:     api,
		catalog: catalog,
		cfg:     cfg,
		logger:  l,
	}
}

// FullSync clears the local replica and rebuilds it one object type at a
// time, in dependency order, paging through the remote listing endpoint.
//
// The count of locally stored objects is captured before the clear: if the
// remote then returns zero objects for a replica that previously held data,
// the run fails with ErrEmptySyncSuspicion instead of silently committing an
// empty catalog.
func (s *syncService) FullSync(ctx context.Context, onProgress ProgressFunc) (models.SyncSummary, error) {
	started := time.Now()
	summary := models.SyncSummary{
		SyncType: models.SyncTypeFull,
		Counts:   make(map[string]int64),
	}

	priorCount, err := s.catalog.CountObjects(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("counting local objects before full sync: %w", err)
	}

	if err := s.catalog.ClearTypes(ctx, models.SyncOrder); err != nil {
		return summary, fmt.Errorf("clearing local replica: %w", err)
	}

	var received int64
	for _, objectType := range models.SyncOrder {
		processed, err := s.syncOneType(ctx, objectType, &summary, onProgress)
		if err != nil {
			return summary, err
		}
		received += processed
	}

	if received == 0 && priorCount >= s.cfg.SuspicionMinLocal {
		return summary, fmt.Errorf("%w: full sync of a replica holding %d objects returned nothing",
			ErrEmptySyncSuspicion, priorCount)
	}

	summary.Duration = time.Since(started)
	s.logger.Info().
		Str("func", "FullSync").
		Int64("objects", summary.Total()).
		Int64("deleted", summary.Deleted).
		Int64("skipped", summary.Skipped).
		Dur("duration", summary.Duration).
		Msg("full sync finished")
	return summary, nil
}

// IncrementalSync searches the remote for objects of every synchronised type
// modified at or after beginTime, soft deletions included, and merges them
// into the replica. A zero beginTime fetches everything.
//
// An empty result is accepted as "nothing changed" only while the gap since
// beginTime stays within the configured bound; an empty result after a
// longer gap, against a populated replica, fails with ErrEmptySyncSuspicion.
func (s *syncService) IncrementalSync(ctx context.Context, beginTime time.Time, onProgress ProgressFunc) (models.SyncSummary, error) {
	started := time.Now()
	summary := models.SyncSummary{
		SyncType: models.SyncTypeIncremental,
		Counts:   make(map[string]int64),
	}

	req := models.SearchRequest{
		ObjectTypes:           models.SyncOrder,
		IncludeDeletedObjects: true,
	}
	if !beginTime.IsZero() {
		req.BeginTime = beginTime.UTC().Format(time.RFC3339)
	}

	var processed, lastReported int64
	for {
		page, err := s.api.SearchObjects(ctx, req)
		if err != nil {
			return summary, fmt.Errorf("searching modified objects: %w", err)
		}

		accepted, err := s.applyPage(ctx, page.Objects, &summary)
		if err != nil {
			return summary, err
		}
		processed += accepted

		if onProgress != nil && processed-lastReported >= int64(s.cfg.ProgressEvery) {
			lastReported = processed
			onProgress(models.SyncProgress{Processed: processed})
		}

		req.Cursor = page.Cursor
		if req.Cursor == "" {
			break
		}
	}

	if processed == 0 && summary.Skipped == 0 &&
		!beginTime.IsZero() && time.Since(beginTime) > s.cfg.SuspicionMaxGap {
		localCount, err := s.catalog.CountObjects(ctx, nil)
		if err != nil {
			return summary, fmt.Errorf("counting local objects after empty sync: %w", err)
		}
		if localCount >= s.cfg.SuspicionMinLocal {
			return summary, fmt.Errorf("%w: no changes since %s for a replica holding %d objects",
				ErrEmptySyncSuspicion, req.BeginTime, localCount)
		}
	}

	summary.Duration = time.Since(started)
	s.logger.Info().
		Str("func", "IncrementalSync").
		Str("begin_time", req.BeginTime).
		Int64("objects", summary.Total()).
		Int64("deleted", summary.Deleted).
		Int64("skipped", summary.Skipped).
		Dur("duration", summary.Duration).
		Msg("incremental sync finished")
	return summary, nil
}

// syncOneType pages through the remote listing of a single object type and
// stores every page, reporting progress every cfg.ProgressEvery objects and
// once more when the type is exhausted.
func (s *syncService) syncOneType(ctx context.Context, objectType string, summary *models.SyncSummary, onProgress ProgressFunc) (int64, error) {
	var processed, lastReported int64
	cursor := ""
	for {
		page, err := s.api.ListCatalog(ctx, []string{objectType}, cursor)
		if err != nil {
			return processed, fmt.Errorf("listing %s objects: %w", objectType, err)
		}

		accepted, err := s.applyPage(ctx, page.Objects, summary)
		if err != nil {
			return processed, err
		}
		processed += accepted

		if onProgress != nil && processed-lastReported >= int64(s.cfg.ProgressEvery) {
			lastReported = processed
			onProgress(models.SyncProgress{ObjectType: objectType, Processed: processed})
		}

		cursor = page.Cursor
		if cursor == "" {
			break
		}
	}

	if onProgress != nil && processed > 0 {
		onProgress(models.SyncProgress{ObjectType: objectType, Processed: processed, Total: processed})
	}
	return processed, nil
}

// applyPage validates and stores one page of remote objects, updating the
// run summary in place, and returns the number of objects accepted.
// Malformed objects are skipped and counted; crossing the configured skip
// limit aborts the run, because a feed that malformed is not trustworthy
// enough to commit.
func (s *syncService) applyPage(ctx context.Context, page []models.CatalogObject, summary *models.SyncSummary) (int64, error) {
	byType := make(map[string][]models.CatalogObject)
	var order []string

	for i := range page {
		obj := page[i]
		if err := obj.Validate(); err != nil {
			summary.Skipped++
			s.logger.Warn().
				Str("func", "applyPage").
				Err(err).
				Msg("skipping malformed catalog object")
			if summary.Skipped > s.cfg.ValidationSkipLimit {
				return 0, fmt.Errorf("%w: %d skipped, limit %d",
					ErrTooManyInvalidObjects, summary.Skipped, s.cfg.ValidationSkipLimit)
			}
			continue
		}

		if _, seen := byType[obj.Type]; !seen {
			order = append(order, obj.Type)
		}
		byType[obj.Type] = append(byType[obj.Type], obj)
		if obj.IsDeleted {
			summary.Deleted++
		}
	}

	// A mixed-type page commits one transaction per type so written rows can
	// be attributed to their type. A crash between groups can leave part of
	// the page applied, but never observably: the checkpoint only advances
	// after the whole run succeeds, so the next sync re-covers the page and
	// the version-monotone upsert makes the replay a no-op.
	var accepted int64
	for _, objectType := range order {
		group := byType[objectType]
		written, err := s.catalog.UpsertObjects(ctx, group)
		if err != nil {
			return accepted, fmt.Errorf("storing %s objects: %w", objectType, err)
		}
		summary.Counts[objectType] += written
		accepted += int64(len(group))
	}
	return accepted, nil
}
