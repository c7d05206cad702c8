package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/mock"
	"github.com/joylabs/catalogsync/models"
)

// stubSyncSvc is a plain stub for SyncService. A generated mock would force
// an import cycle here.
type stubSyncSvc struct {
	mu        sync.Mutex
	fullCalls int
	incrCalls int
	lastBegin time.Time

	summary  models.SyncSummary
	err      error
	progress []models.SyncProgress

	// release, when non-nil, blocks the sync until it is closed.
	release chan struct{}
	started chan struct{}
}

func (s *stubSyncSvc) FullSync(ctx context.Context, onProgress ProgressFunc) (models.SyncSummary, error) {
	s.mu.Lock()
	s.fullCalls++
	s.mu.Unlock()
	return s.run(ctx, onProgress)
}

func (s *stubSyncSvc) IncrementalSync(ctx context.Context, beginTime time.Time, onProgress ProgressFunc) (models.SyncSummary, error) {
	s.mu.Lock()
	s.incrCalls++
	s.lastBegin = beginTime
	s.mu.Unlock()
	return s.run(ctx, onProgress)
}

func (s *stubSyncSvc) run(ctx context.Context, onProgress ProgressFunc) (models.SyncSummary, error) {
	if s.started != nil {
		close(s.started)
		s.started = nil
	}
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return models.SyncSummary{}, ctx.Err()
		}
	}
	for _, p := range s.progress {
		if onProgress != nil {
			onProgress(p)
		}
	}
	return s.summary, s.err
}

func newTestCoordinator(t *testing.T, ctrl *gomock.Controller) (*syncCoordinator, *stubSyncSvc, *mock.MockSyncStatusRepository) {
	t.Helper()
	svc := &stubSyncSvc{summary: models.SyncSummary{SyncType: models.SyncTypeFull, Counts: map[string]int64{models.TypeItem: 3}}}
	mockStatus := mock.NewMockSyncStatusRepository(ctrl)

	c := NewSyncCoordinator(svc, mockStatus, logger.Nop()).(*syncCoordinator)
	return c, svc, mockStatus
}

func TestSyncCoordinator_StartFullSync_PersistsTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, svc, mockStatus := newTestCoordinator(t, ctrl)
	ctx := context.Background()

	var saved []models.SyncStatus
	mockStatus.EXPECT().GetSyncStatus(ctx).Return(models.SyncStatus{AttemptCount: 2}, nil)
	mockStatus.EXPECT().SaveSyncStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, status models.SyncStatus) error {
			saved = append(saved, status)
			return nil
		}).Times(2)

	summary, err := c.StartFullSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Total())
	assert.Equal(t, 1, svc.fullCalls)

	require.Len(t, saved, 2)
	assert.True(t, saved[0].IsSyncing)
	assert.Equal(t, models.SyncTypeFull, saved[0].SyncType)
	assert.Equal(t, int64(3), saved[0].AttemptCount)

	assert.False(t, saved[1].IsSyncing)
	assert.Empty(t, saved[1].LastError)
	require.NotNil(t, saved[1].LastSyncTime)
	assert.WithinDuration(t, time.Now(), *saved[1].LastSyncTime, 5*time.Second)
}

func TestSyncCoordinator_StartFullSync_RejectsConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, svc, mockStatus := newTestCoordinator(t, ctrl)
	ctx := context.Background()

	svc.release = make(chan struct{})
	svc.started = make(chan struct{})
	started := svc.started

	mockStatus.EXPECT().GetSyncStatus(gomock.Any()).Return(models.SyncStatus{}, nil).AnyTimes()
	mockStatus.EXPECT().SaveSyncStatus(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	done := make(chan error, 1)
	go func() {
		_, err := c.StartFullSync(ctx)
		done <- err
	}()

	<-started
	_, err := c.StartFullSync(ctx)
	require.ErrorIs(t, err, ErrSyncInProgress)

	close(svc.release)
	require.NoError(t, <-done)

	// once the first run finished, the coordinator accepts work again
	svc.release = nil
	_, err = c.StartFullSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, svc.fullCalls)
}

func TestSyncCoordinator_StartFullSync_RecordsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, svc, mockStatus := newTestCoordinator(t, ctrl)
	ctx := context.Background()
	svc.err = errors.New("remote exploded")

	var saved []models.SyncStatus
	mockStatus.EXPECT().GetSyncStatus(ctx).Return(models.SyncStatus{}, nil)
	mockStatus.EXPECT().SaveSyncStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, status models.SyncStatus) error {
			saved = append(saved, status)
			return nil
		}).Times(2)

	events, cancel := c.Subscribe()
	defer cancel()

	_, err := c.StartFullSync(ctx)
	require.Error(t, err)

	require.Len(t, saved, 2)
	assert.False(t, saved[1].IsSyncing)
	assert.Equal(t, "remote exploded", saved[1].LastError)
	assert.Nil(t, saved[1].LastSyncTime)

	assert.Equal(t, EventSyncStarted, (<-events).Kind)
	failed := <-events
	assert.Equal(t, EventSyncFailed, failed.Kind)
	assert.Equal(t, "remote exploded", failed.Error)
}

func TestSyncCoordinator_CancelledRunClearsPersistedStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, svc, mockStatus := newTestCoordinator(t, ctrl)
	ctx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()

	svc.release = make(chan struct{})
	svc.started = make(chan struct{})
	started := svc.started

	var saved []models.SyncStatus
	mockStatus.EXPECT().GetSyncStatus(gomock.Any()).Return(models.SyncStatus{}, nil)
	mockStatus.EXPECT().SaveSyncStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(saveCtx context.Context, status models.SyncStatus) error {
			// a real repository refuses writes on a dead context
			if err := saveCtx.Err(); err != nil {
				return err
			}
			saved = append(saved, status)
			return nil
		}).Times(2)

	done := make(chan error, 1)
	go func() {
		_, err := c.StartFullSync(ctx)
		done <- err
	}()

	<-started
	cancelRun()
	require.ErrorIs(t, <-done, context.Canceled)

	// the terminal write must outlive the cancelled run, so the persisted
	// status never reports a phantom running sync
	require.Len(t, saved, 2)
	assert.True(t, saved[0].IsSyncing)
	assert.False(t, saved[1].IsSyncing)
	assert.Equal(t, context.Canceled.Error(), saved[1].LastError)
	assert.Nil(t, saved[1].LastSyncTime)
}

func TestSyncCoordinator_StartIncrementalSync_UsesCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, svc, mockStatus := newTestCoordinator(t, ctrl)
	ctx := context.Background()
	checkpoint := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	mockStatus.EXPECT().GetSyncStatus(ctx).
		Return(models.SyncStatus{LastSyncTime: &checkpoint}, nil).Times(2)
	mockStatus.EXPECT().SaveSyncStatus(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := c.StartIncrementalSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.incrCalls)
	assert.Equal(t, checkpoint, svc.lastBegin)
}

func TestSyncCoordinator_StartCatchupSync_FullWhenNoCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, svc, mockStatus := newTestCoordinator(t, ctrl)
	ctx := context.Background()

	mockStatus.EXPECT().GetSyncStatus(ctx).Return(models.SyncStatus{}, nil).Times(2)
	mockStatus.EXPECT().SaveSyncStatus(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := c.StartCatchupSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.fullCalls)
	assert.Equal(t, 0, svc.incrCalls)
}

func TestSyncCoordinator_StartCatchupSync_IncrementalWhenCheckpointExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, svc, mockStatus := newTestCoordinator(t, ctrl)
	ctx := context.Background()
	checkpoint := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	mockStatus.EXPECT().GetSyncStatus(ctx).
		Return(models.SyncStatus{LastSyncTime: &checkpoint}, nil).Times(3)
	mockStatus.EXPECT().SaveSyncStatus(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := c.StartCatchupSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, svc.fullCalls)
	assert.Equal(t, 1, svc.incrCalls)
	assert.Equal(t, checkpoint, svc.lastBegin)
}

func TestSyncCoordinator_SubscribersReceiveProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, svc, mockStatus := newTestCoordinator(t, ctrl)
	ctx := context.Background()
	svc.progress = []models.SyncProgress{
		{ObjectType: models.TypeItem, Processed: 50},
		{ObjectType: models.TypeItem, Processed: 100, Total: 100},
	}

	mockStatus.EXPECT().GetSyncStatus(ctx).Return(models.SyncStatus{}, nil)
	mockStatus.EXPECT().SaveSyncStatus(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	events, cancel := c.Subscribe()
	defer cancel()

	_, err := c.StartFullSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, EventSyncStarted, (<-events).Kind)

	first := <-events
	require.Equal(t, EventSyncProgress, first.Kind)
	require.NotNil(t, first.Progress)
	assert.Equal(t, int64(50), first.Progress.Processed)

	second := <-events
	require.Equal(t, EventSyncProgress, second.Kind)

	completed := <-events
	require.Equal(t, EventSyncCompleted, completed.Kind)
	require.NotNil(t, completed.Summary)
	assert.Equal(t, int64(3), completed.Summary.Total())
}

func TestSyncCoordinator_SubscribeCancelClosesChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestCoordinator(t, ctrl)

	events, cancel := c.Subscribe()
	cancel()

	_, open := <-events
	assert.False(t, open)

	// publishing after cancel must not panic
	c.Publish(Event{Kind: EventSyncStarted})
}

func TestSyncCoordinator_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestCoordinator(t, ctrl)

	events, cancel := c.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer+10; i++ {
		c.Publish(Event{Kind: EventSyncProgress})
	}

	// the buffer holds the first subscriberBuffer events, the rest are lost
	for i := 0; i < subscriberBuffer; i++ {
		<-events
	}
	select {
	case <-events:
		t.Fatal("expected no more buffered events")
	default:
	}
}

func TestSyncCoordinator_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, mockStatus := newTestCoordinator(t, ctrl)
	ctx := context.Background()

	want := models.SyncStatus{SyncType: models.SyncTypeIncremental, AttemptCount: 7}
	mockStatus.EXPECT().GetSyncStatus(ctx).Return(want, nil)

	got, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
