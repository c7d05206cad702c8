// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JoyLabs

package adapter

import (
	"context"

	"github.com/joylabs/catalogsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CatalogAPI is the client-side contract for the remote catalog backend.
// All methods honour ctx for cancellation and apply the client's bounded
// timeout per call. Transient failures (network, 429, 5xx) are retried with
// backoff inside the implementation; auth failures and version conflicts are
// surfaced immediately as sentinel errors.
type CatalogAPI interface {
	// ListCatalog returns one page of every object of the given types,
	// resuming from cursor. An empty returned cursor means the listing is
	// complete.
	ListCatalog(ctx context.Context, objectTypes []string, cursor string) (models.ListResponse, error)

	// SearchObjects returns one page of objects matching req, typically
	// everything modified at or after req.BeginTime.
	SearchObjects(ctx context.Context, req models.SearchRequest) (models.SearchResponse, error)

	// RetrieveObject fetches the current remote representation of a single
	// object, optionally including its related objects (variations, images)
	// so a version-safe write can be constructed.
	RetrieveObject(ctx context.Context, objectID string, includeRelated bool) (models.RetrieveResponse, error)

	// BatchRetrieve fetches several objects by id in one round trip.
	BatchRetrieve(ctx context.Context, req models.BatchRetrieveRequest) (models.BatchRetrieveResponse, error)

	// UpsertObject writes a full object graph. Returns ErrVersionConflict
	// when any version in the graph is stale.
	UpsertObject(ctx context.Context, req models.UpsertRequest) (models.UpsertResponse, error)

	// InvalidateToken drops the cached access token after an auth failure so
	// no further requests are attempted with known-bad credentials.
	InvalidateToken()
}
