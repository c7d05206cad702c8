package models

import "time"

// Sync run kinds recorded in [SyncStatus.SyncType].
const (
	SyncTypeFull        = "full"
	SyncTypeIncremental = "incremental"
)

// SyncStatus is the singleton record describing the state of the local
// replica. It is created once at first run and mutated exclusively by the
// sync coordinator; every value handed to subscribers is an immutable
// snapshot, never a shared mutable struct.
type SyncStatus struct {
	// LastSyncTime is the completion time of the last successful sync.
	// Nil until the first sync finishes.
	LastSyncTime *time.Time `json:"last_sync_time,omitempty"`

	// IsSyncing reports whether a sync run is currently active. It is the
	// single source of truth all entry points consult before starting work.
	IsSyncing bool `json:"is_syncing"`

	// LastError is the message of the most recent failed sync, "" after a
	// successful one.
	LastError string `json:"last_error,omitempty"`

	// Cursor is the opaque pagination token of the last fully committed
	// page, used to resume an interrupted run.
	Cursor string `json:"cursor,omitempty"`

	// SyncType is the kind of the last (or current) sync run.
	SyncType string `json:"sync_type,omitempty"`

	// AttemptCount counts started sync runs since the last full reset.
	AttemptCount int64 `json:"attempt_count"`
}

// SyncProgress is a point-in-time progress report emitted while a sync run
// walks one object type.
type SyncProgress struct {
	ObjectType string `json:"object_type"`
	Processed  int64  `json:"processed"`
	Total      int64  `json:"total"`
}

// SyncSummary describes what a completed sync run changed, for display
// layers and logs.
type SyncSummary struct {
	SyncType string           `json:"sync_type"`
	Counts   map[string]int64 `json:"counts"`
	Deleted  int64            `json:"deleted"`
	Skipped  int64            `json:"skipped"`
	Duration time.Duration    `json:"duration"`
}

// Total returns the number of objects the run upserted across all types.
func (s SyncSummary) Total() int64 {
	var total int64
	for _, n := range s.Counts {
		total += n
	}
	return total
}
