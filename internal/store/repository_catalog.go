package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/models"
)

type catalogRepository struct {
	*DB
	logger *logger.Logger
}

// NewCatalogRepository constructs the SQLite-backed [CatalogRepository] for
// the local catalog replica.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &catalogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *catalogRepository) UpsertObjects(ctx context.Context, objects []models.CatalogObject) (int64, error) {
	log := logger.FromContext(ctx)

	if len(objects) == 0 {
		return 0, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.UpsertObjects").
			Msg("failed to begin upsert transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var written int64
	for i := range objects {
		obj := &objects[i]

		table, err := tableForType(obj.Type)
		if err != nil {
			return 0, fmt.Errorf("upsert object %s: %w", obj.ID, err)
		}

		payload, err := obj.PayloadJSON()
		if err != nil {
			return 0, fmt.Errorf("upsert object %s: %w", obj.ID, err)
		}

		price, _ := obj.Price()
		result, err := tx.ExecContext(ctx, fmt.Sprintf(upsertCatalogObject, table),
			obj.ID,
			obj.Name(),
			obj.ParentID(),
			obj.SKU(),
			price.Amount,
			price.Currency,
			strconv.FormatInt(obj.Version, 10),
			obj.UpdatedAt,
			obj.IsDeleted,
			payload,
		)
		if err != nil {
			log.Err(err).
				Str("func", "catalogRepository.UpsertObjects").
				Str("object_id", obj.ID).
				Str("object_type", obj.Type).
				Msg("failed to execute upsert for catalog object")
			return 0, fmt.Errorf("failed to upsert catalog object (id=%s): %w", obj.ID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get rows affected (id=%s): %w", obj.ID, err)
		}
		written += affected
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.UpsertObjects").
			Msg("failed to commit upsert transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return written, nil
}

func (r *catalogRepository) GetObject(ctx context.Context, objectType, id string) (models.CatalogObject, error) {
	log := logger.FromContext(ctx)

	table, err := tableForType(objectType)
	if err != nil {
		return models.CatalogObject{}, err
	}

	row := r.DB.QueryRowContext(ctx, fmt.Sprintf(getCatalogObject, table), id)

	obj, err := scanCatalogObject(objectType, row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CatalogObject{}, ErrObjectNotFound
		}
		log.Err(err).
			Str("func", "catalogRepository.GetObject").
			Str("object_type", objectType).
			Str("id", id).
			Msg("failed to scan catalog object row")
		return models.CatalogObject{}, fmt.Errorf("failed to scan catalog object row: %w", err)
	}

	return obj, nil
}

func (r *catalogRepository) QueryObjects(ctx context.Context, objectType string, filter Filter) ([]models.CatalogObject, error) {
	log := logger.FromContext(ctx)

	table, err := tableForType(objectType)
	if err != nil {
		return nil, err
	}

	builder := sq.Select(catalogColumns...).
		From(table).
		PlaceholderFormat(sq.Dollar)

	if !filter.IncludeDeleted {
		builder = builder.Where(sq.Eq{"is_deleted": false})
	}
	if filter.NamePrefix != "" {
		builder = builder.Where(sq.Like{"name": filter.NamePrefix + "%"})
	}
	if filter.ParentID != "" {
		builder = builder.Where(sq.Eq{"parent_id": filter.ParentID})
	}
	if filter.SKU != "" {
		builder = builder.Where(sq.Eq{"sku": filter.SKU})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.QueryObjects").
			Str("object_type", objectType).
			Msg("failed to execute catalog query")
		return nil, fmt.Errorf("failed to query catalog objects: %w", err)
	}
	defer rows.Close()

	var objects []models.CatalogObject
	for rows.Next() {
		obj, err := scanCatalogObject(objectType, rows.Scan)
		if err != nil {
			log.Err(err).
				Str("func", "catalogRepository.QueryObjects").
				Str("object_type", objectType).
				Msg("failed to scan catalog object row")
			return nil, fmt.Errorf("failed to scan catalog object row: %w", err)
		}
		objects = append(objects, obj)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "catalogRepository.QueryObjects").
			Str("object_type", objectType).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating catalog rows: %w", rowsErr)
	}

	return objects, nil
}

func (r *catalogRepository) CountObjects(ctx context.Context, objectTypes []string) (int64, error) {
	if len(objectTypes) == 0 {
		objectTypes = models.SyncOrder
	}

	var total int64
	for _, objectType := range objectTypes {
		table, err := tableForType(objectType)
		if err != nil {
			return 0, err
		}

		var count int64
		row := r.DB.QueryRowContext(ctx, fmt.Sprintf(countCatalogObjects, table))
		if err := row.Scan(&count); err != nil {
			return 0, fmt.Errorf("failed to count %s objects: %w", objectType, err)
		}
		total += count
	}

	return total, nil
}

func (r *catalogRepository) ClearTypes(ctx context.Context, objectTypes []string) error {
	log := logger.FromContext(ctx)

	if len(objectTypes) == 0 {
		objectTypes = models.SyncOrder
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, objectType := range objectTypes {
		table, err := tableForType(objectType)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, fmt.Sprintf(clearCatalogTable, table)); err != nil {
			log.Err(err).
				Str("func", "catalogRepository.ClearTypes").
				Str("object_type", objectType).
				Msg("failed to clear catalog table")
			return fmt.Errorf("failed to clear %s objects: %w", objectType, err)
		}
	}

	// a cleared replica has no checkpoint to resume from
	if _, err := tx.ExecContext(ctx, resetSyncCheckpoint); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ClearTypes").
			Msg("failed to reset sync checkpoint")
		return fmt.Errorf("failed to reset sync checkpoint: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// scanCatalogObject reads one catalog row via scan and rebuilds the full
// object, decoding the payload blob into the variant selected by objectType.
func scanCatalogObject(objectType string, scan func(dest ...any) error) (models.CatalogObject, error) {
	var (
		obj         models.CatalogObject
		name        string
		parentID    string
		sku         string
		priceAmount int64
		priceCur    string
		version     string
		updatedAt   sql.NullTime
		payload     []byte
	)

	err := scan(
		&obj.ID,
		&name,
		&parentID,
		&sku,
		&priceAmount,
		&priceCur,
		&version,
		&updatedAt,
		&obj.IsDeleted,
		&payload,
	)
	if err != nil {
		return models.CatalogObject{}, err
	}

	obj.Type = objectType
	if updatedAt.Valid {
		obj.UpdatedAt = updatedAt.Time
	}

	obj.Version, err = strconv.ParseInt(version, 10, 64)
	if err != nil {
		return models.CatalogObject{}, fmt.Errorf("parse stored version %q: %w", version, err)
	}

	if err := obj.DecodePayload(payload); err != nil {
		return models.CatalogObject{}, err
	}

	return obj, nil
}
