package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/models"
)

// Driver-level failures (broken connections, mid-transaction errors) cannot
// be provoked against an in-memory SQLite file, so these paths are exercised
// with sqlmock instead.

func newMockedRepository(t *testing.T) (CatalogRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewCatalogRepository(db, logger.Nop()), mock
}

func TestUpsertObjects_BeginError(t *testing.T) {
	repo, mock := newMockedRepository(t)

	mock.ExpectBegin().WillReturnError(assert.AnError)

	_, err := repo.UpsertObjects(context.Background(), []models.CatalogObject{
		{ID: "TAX_1", Type: models.TypeTax},
	})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertObjects_ExecErrorRollsBack(t *testing.T) {
	repo, mock := newMockedRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO taxes").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := repo.UpsertObjects(context.Background(), []models.CatalogObject{
		{ID: "TAX_1", Type: models.TypeTax, Version: 2},
	})

	assert.ErrorContains(t, err, "failed to upsert catalog object (id=TAX_1)")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertObjects_CommitError(t *testing.T) {
	repo, mock := newMockedRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO taxes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := repo.UpsertObjects(context.Background(), []models.CatalogObject{
		{ID: "TAX_1", Type: models.TypeTax, Version: 2},
	})

	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestQueryObjects_QueryError(t *testing.T) {
	repo, mock := newMockedRepository(t)

	mock.ExpectQuery("SELECT .+ FROM items").WillReturnError(assert.AnError)

	_, err := repo.QueryObjects(context.Background(), models.TypeItem, Filter{})

	assert.ErrorContains(t, err, "failed to query catalog objects")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountObjects_ScanError(t *testing.T) {
	repo, mock := newMockedRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM categories`).WillReturnError(assert.AnError)

	_, err := repo.CountObjects(context.Background(), []string{models.TypeCategory})

	assert.ErrorContains(t, err, "failed to count CATEGORY objects")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearTypes_ClearError(t *testing.T) {
	repo, mock := newMockedRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM categories").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ClearTypes(context.Background(), []string{models.TypeCategory})

	assert.ErrorContains(t, err, "failed to clear CATEGORY objects")
	assert.NoError(t, mock.ExpectationsWereMet())
}
