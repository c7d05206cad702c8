// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JoyLabs

package store

import (
	"github.com/joylabs/catalogsync/models"
)

// tableForType maps a catalog object type to its local table. Every table
// shares the same shape; only the name differs.
func tableForType(objectType string) (string, error) {
	switch objectType {
	case models.TypeCategory:
		return "categories", nil
	case models.TypeTax:
		return "taxes", nil
	case models.TypeModifierList:
		return "modifier_lists", nil
	case models.TypeModifier:
		return "modifiers", nil
	case models.TypeItem:
		return "items", nil
	case models.TypeItemVariation:
		return "item_variations", nil
	case models.TypeDiscount:
		return "discounts", nil
	case models.TypeImage:
		return "images", nil
	}
	return "", ErrUnknownObjectType
}

// catalogColumns is the shared column list of every catalog table, in the
// order all scan helpers expect.
var catalogColumns = []string{
	"id",
	"name",
	"parent_id",
	"sku",
	"price_amount",
	"price_currency",
	"version",
	"updated_at",
	"is_deleted",
	"payload",
}

const (
	// upsertCatalogObject writes one remote object into its table. The
	// ON CONFLICT guard enforces version monotonicity: the row is only
	// replaced when the incoming version is strictly greater than the
	// stored one, so replays and stale pages are no-ops. Versions are kept
	// as TEXT but compared numerically.
	upsertCatalogObject = `
		INSERT INTO %[1]s (
			id,
			name,
			parent_id,
			sku,
			price_amount,
			price_currency,
			version,
			updated_at,
			is_deleted,
			payload
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name           = excluded.name,
			parent_id      = excluded.parent_id,
			sku            = excluded.sku,
			price_amount   = excluded.price_amount,
			price_currency = excluded.price_currency,
			version        = excluded.version,
			updated_at     = excluded.updated_at,
			is_deleted     = excluded.is_deleted,
			payload        = excluded.payload
		WHERE CAST(excluded.version AS INTEGER) > CAST(%[1]s.version AS INTEGER);`

	getCatalogObject = `
		SELECT
			id,
			name,
			parent_id,
			sku,
			price_amount,
			price_currency,
			version,
			updated_at,
			is_deleted,
			payload
		FROM %s
		WHERE id = $1;`

	countCatalogObjects = `
		SELECT COUNT(*) FROM %s WHERE is_deleted = FALSE;`

	clearCatalogTable = `
		DELETE FROM %s;`

	getSyncStatus = `
		SELECT
			last_sync_time,
			is_syncing,
			last_error,
			cursor,
			sync_type,
			attempt_count
		FROM sync_status
		WHERE id = 1;`

	saveSyncStatus = `
		INSERT INTO sync_status (
			id,
			last_sync_time,
			is_syncing,
			last_error,
			cursor,
			sync_type,
			attempt_count
		) VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			last_sync_time = excluded.last_sync_time,
			is_syncing     = excluded.is_syncing,
			last_error     = excluded.last_error,
			cursor         = excluded.cursor,
			sync_type      = excluded.sync_type,
			attempt_count  = excluded.attempt_count;`

	// resetSyncCheckpoint clears the resumable portion of the sync status
	// when catalog tables are hard-cleared for a full rebuild.
	resetSyncCheckpoint = `
		UPDATE sync_status SET
			last_sync_time = NULL,
			cursor         = '',
			sync_type      = ''
		WHERE id = 1;`
)
