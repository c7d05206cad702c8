package http

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/joylabs/catalogsync/internal/config"
	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/mock"
	"github.com/joylabs/catalogsync/internal/service"
	"github.com/joylabs/catalogsync/internal/store"
	"github.com/joylabs/catalogsync/models"
)

const testSignatureKey = "test-signature-key"

// Hand-written stubs for the service interfaces: generated mocks for them
// would drag the service package into internal/mock and create an import
// cycle with the service package's own tests.

type stubCoordinator struct {
	status  models.SyncStatus
	summary models.SyncSummary
	err     error

	fullCalls int
	incrCalls int
}

func (s *stubCoordinator) StartFullSync(context.Context) (models.SyncSummary, error) {
	s.fullCalls++
	return s.summary, s.err
}

func (s *stubCoordinator) StartIncrementalSync(context.Context) (models.SyncSummary, error) {
	s.incrCalls++
	return s.summary, s.err
}

func (s *stubCoordinator) StartCatchupSync(context.Context) (models.SyncSummary, error) {
	return s.summary, s.err
}

func (s *stubCoordinator) Status(context.Context) (models.SyncStatus, error) {
	return s.status, s.err
}

func (s *stubCoordinator) Subscribe() (<-chan service.Event, func()) {
	return nil, func() {}
}

func (s *stubCoordinator) Publish(service.Event) {}

type stubDedup struct {
	triggered bool
	err       error
	received  []models.ChangeNotification
}

func (s *stubDedup) HandleNotification(_ context.Context, n models.ChangeNotification) (bool, error) {
	s.received = append(s.received, n)
	return s.triggered, s.err
}

func (s *stubDedup) RecordLocalWrite(string, string) {}

func (s *stubDedup) Cleanup(time.Time) {}

type stubInvalidator struct {
	err   error
	calls int
}

func (s *stubInvalidator) OnNotification(context.Context, models.ChangeNotification) error {
	s.calls++
	return s.err
}

type stubUpdateBuilder struct {
	confirmed models.CatalogObject
	err       error
	received  []models.LocalChange
}

func (s *stubUpdateBuilder) ApplyChange(_ context.Context, change models.LocalChange) (models.CatalogObject, error) {
	s.received = append(s.received, change)
	return s.confirmed, s.err
}

// handlerFixture bundles a fully wired Handler with its stubs and mocks.
type handlerFixture struct {
	handler     *Handler
	coordinator *stubCoordinator
	dedup       *stubDedup
	invalidator *stubInvalidator
	builder     *stubUpdateBuilder
	catalog     *mock.MockCatalogRepository
	images      *mock.MockImageFileCache
}

func newTestHandler(t *testing.T, ctrl *gomock.Controller) *handlerFixture {
	t.Helper()

	f := &handlerFixture{
		coordinator: &stubCoordinator{},
		dedup:       &stubDedup{triggered: true},
		invalidator: &stubInvalidator{},
		builder:     &stubUpdateBuilder{},
		catalog:     mock.NewMockCatalogRepository(ctrl),
		images:      mock.NewMockImageFileCache(ctrl),
	}

	services := &service.Services{
		Coordinator:      f.coordinator,
		Dedup:            f.dedup,
		ImageInvalidator: f.invalidator,
		UpdateBuilder:    f.builder,
	}
	storages := &store.Storages{
		Catalog: f.catalog,
		Images:  f.images,
	}
	cfg := config.Webhook{
		HTTPAddress:  "localhost:8090",
		SignatureKey: testSignatureKey,
	}

	f.handler = NewHandler(services, storages, cfg, logger.Nop())
	return f
}
