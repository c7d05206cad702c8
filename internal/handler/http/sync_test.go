package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joylabs/catalogsync/internal/service"
	"github.com/joylabs/catalogsync/models"
)

func TestGetSyncStatus_ReturnsPersistedStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)

	lastSync := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	f.coordinator.status = models.SyncStatus{
		LastSyncTime: &lastSync,
		SyncType:     models.SyncTypeFull,
		AttemptCount: 4,
	}
	router := f.handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/sync/status", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var status models.SyncStatus
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &status))
	assert.Equal(t, models.SyncTypeFull, status.SyncType)
	assert.Equal(t, int64(4), status.AttemptCount)
	require.NotNil(t, status.LastSyncTime)
	assert.True(t, status.LastSyncTime.Equal(lastSync))
}

func TestStartFullSync_ReturnsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)

	f.coordinator.summary = models.SyncSummary{
		SyncType: models.SyncTypeFull,
		Counts:   map[string]int64{models.TypeItem: 12, models.TypeCategory: 3},
	}
	router := f.handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/sync/full", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, f.coordinator.fullCalls)

	var summary models.SyncSummary
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summary))
	assert.Equal(t, models.SyncTypeFull, summary.SyncType)
	assert.Equal(t, int64(15), summary.Total())
}

func TestStartFullSync_ConflictsWhileSyncRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)
	f.coordinator.err = service.ErrSyncInProgress
	router := f.handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/sync/full", nil))

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestStartIncrementalSync_ReturnsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)

	f.coordinator.summary = models.SyncSummary{
		SyncType: models.SyncTypeIncremental,
		Counts:   map[string]int64{models.TypeTax: 2},
	}
	router := f.handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/sync/incremental", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, f.coordinator.incrCalls)
}

func TestStartIncrementalSync_SuspicionMapsToBadGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestHandler(t, ctrl)
	f.coordinator.err = service.ErrEmptySyncSuspicion
	router := f.handler.Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/sync/incremental", nil))

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}
