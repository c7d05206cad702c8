package adapter

import "errors"

// Sentinel errors mapped from remote API responses. Callers match against
// these values with [errors.Is] to decide between retry, refetch-merge and
// hard failure paths.
var (
	// ErrUnauthorized is returned on 401/403 responses. It is never retried;
	// the cached access token is invalidated and the sync stops.
	ErrUnauthorized = errors.New("catalog api unauthorized")

	// ErrVersionConflict is returned when the remote rejects a write because
	// any version in the submitted object graph is stale (VERSION_MISMATCH).
	// It must never be retried blindly; the caller refetches, re-merges and
	// resubmits.
	ErrVersionConflict = errors.New("catalog version conflict")

	// ErrNotFound is returned when the requested object does not exist on
	// the remote.
	ErrNotFound = errors.New("catalog object not found")
)
