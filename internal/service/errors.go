// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JoyLabs

package service

import "errors"

var (
	// ErrSyncInProgress is returned when a sync start request arrives while
	// another sync is already running. Requests are rejected, never queued.
	ErrSyncInProgress = errors.New("a sync is already in progress")

	// ErrEmptySyncSuspicion is returned when a sync produced zero objects in
	// a situation where the local replica and the checkpoint gap make a
	// genuinely empty result implausible. An empty page from a failing
	// backend must not masquerade as "nothing changed".
	ErrEmptySyncSuspicion = errors.New("sync returned no objects where catalog data was expected")

	// ErrConflictRetryExhausted is returned when the versioned update
	// builder keeps receiving VERSION_MISMATCH after the configured number
	// of fetch-merge-retry cycles. The change must be surfaced to the
	// caller as a conflict.
	ErrConflictRetryExhausted = errors.New("version conflict persisted after retries")

	// ErrTooManyInvalidObjects is returned when a sync run skips more
	// malformed remote objects than the configured limit allows.
	ErrTooManyInvalidObjects = errors.New("too many malformed objects skipped during sync")

	// ErrUnsupportedChange is returned when a local change names an object
	// type the engine does not synchronise.
	ErrUnsupportedChange = errors.New("unsupported local change")
)
