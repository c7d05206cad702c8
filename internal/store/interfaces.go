package store

import (
	"context"

	"github.com/joylabs/catalogsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Filter narrows a catalog query using the hoisted, indexed columns so
// callers never deserialize payload blobs just to search.
type Filter struct {
	// NamePrefix matches objects whose display name starts with the prefix.
	NamePrefix string
	// ParentID matches the hoisted parent reference (category for items,
	// item for variations, modifier list for modifiers).
	ParentID string
	// SKU matches the exact variation SKU.
	SKU string
	// IncludeDeleted includes soft-deleted rows in the result.
	IncludeDeleted bool
	// Limit caps the result size; zero means no limit.
	Limit uint64
}

// CatalogRepository is the local replica of the remote catalog.
type CatalogRepository interface {
	// UpsertObjects applies a batch of remote objects inside a single
	// transaction and returns the number of rows actually written. The
	// operation is idempotent and version-monotone: a row is only touched
	// when the incoming version is strictly greater than the stored one, so
	// re-applying a page or receiving stale data never regresses the
	// replica.
	UpsertObjects(ctx context.Context, objects []models.CatalogObject) (int64, error)

	// GetObject loads a single object of the given type by remote id.
	// Returns ErrObjectNotFound when no row exists.
	GetObject(ctx context.Context, objectType, id string) (models.CatalogObject, error)

	// QueryObjects returns all objects of one type matching filter.
	QueryObjects(ctx context.Context, objectType string, filter Filter) ([]models.CatalogObject, error)

	// CountObjects returns the number of non-deleted rows across the given
	// types (all types when the slice is empty).
	CountObjects(ctx context.Context, objectTypes []string) (int64, error)

	// ClearTypes hard-deletes every row of the given types and resets the
	// sync checkpoint portion of the sync status, all in one transaction.
	// Used only by full-sync resets.
	ClearTypes(ctx context.Context, objectTypes []string) error
}

// SyncStatusRepository persists the singleton sync status record.
type SyncStatusRepository interface {
	// GetSyncStatus loads the singleton row, creating it on first run.
	GetSyncStatus(ctx context.Context) (models.SyncStatus, error)

	// SaveSyncStatus overwrites the singleton row with status.
	SaveSyncStatus(ctx context.Context, status models.SyncStatus) error
}

// ImageFileCache is the on-disk cache of catalog media, keyed by the remote
// object identity of the image (never by URL: remote media URLs can stay
// stable while the content behind them changes).
type ImageFileCache interface {
	// Put stores the media bytes for the given image object id.
	Put(objectID string, data []byte) error

	// Get returns the cached media for the image object id, or
	// ErrImageNotCached when the object has no cached media.
	Get(objectID string) ([]byte, error)

	// Evict removes any cached media for the image object id. Evicting an
	// uncached id is a no-op.
	Evict(objectID string) error
}
