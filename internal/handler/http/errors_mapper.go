package http

import (
	"errors"
	"net/http"

	"github.com/joylabs/catalogsync/internal/adapter"
	"github.com/joylabs/catalogsync/internal/service"
	"github.com/joylabs/catalogsync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrSyncInProgress:         http.StatusConflict,
	service.ErrConflictRetryExhausted: http.StatusConflict,
	service.ErrUnsupportedChange:      http.StatusBadRequest,
	service.ErrEmptySyncSuspicion:     http.StatusBadGateway,
	service.ErrTooManyInvalidObjects:  http.StatusBadGateway,

	adapter.ErrUnauthorized:    http.StatusBadGateway,
	adapter.ErrVersionConflict: http.StatusConflict,
	adapter.ErrNotFound:        http.StatusNotFound,

	store.ErrObjectNotFound:    http.StatusNotFound,
	store.ErrUnknownObjectType: http.StatusBadRequest,
	store.ErrImageNotCached:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
