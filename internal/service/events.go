package service

import "github.com/joylabs/catalogsync/models"

// EventKind enumerates the typed events the coordinator publishes on its
// status stream.
type EventKind string

const (
	EventSyncStarted      EventKind = "sync-started"
	EventSyncProgress     EventKind = "sync-progress"
	EventSyncCompleted    EventKind = "sync-completed"
	EventSyncFailed       EventKind = "sync-failed"
	EventImageInvalidated EventKind = "image-invalidated"
)

// Event is one entry of the coordinator's status stream. Only the fields
// relevant to Kind are set. Events are immutable snapshot values; observers
// never share mutable state with the engine.
type Event struct {
	Kind EventKind

	// SyncType is set on started/completed/failed events.
	SyncType string

	// Progress is set on EventSyncProgress.
	Progress *models.SyncProgress

	// Summary is set on EventSyncCompleted.
	Summary *models.SyncSummary

	// Error carries the failure message on EventSyncFailed.
	Error string

	// ObjectID is set on EventImageInvalidated: the remote identity whose
	// cached media was evicted.
	ObjectID string
}
