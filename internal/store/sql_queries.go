// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	putRecord = `
		INSERT INTO records (
			store,
			id,
			trip_id,
			entity_type,
			user_id,
			payload,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT(store, id) DO UPDATE SET
			trip_id     = excluded.trip_id,
			entity_type = excluded.entity_type,
			user_id     = excluded.user_id,
			payload     = excluded.payload,
			updated_at  = excluded.updated_at;`

	getRecord = `
		SELECT payload
		FROM records
		WHERE store = $1 AND id = $2;`

	deleteRecord = `
		DELETE FROM records
		WHERE store = $1 AND id = $2;`

	saveChange = `
		INSERT INTO sync_changes (
			id,
			entity_type,
			operation,
			entity_id,
			trip_id,
			user_id,
			version,
			timestamp,
			synced,
			data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT(id) DO UPDATE SET
			entity_type = excluded.entity_type,
			operation   = excluded.operation,
			entity_id   = excluded.entity_id,
			trip_id     = excluded.trip_id,
			user_id     = excluded.user_id,
			version     = excluded.version,
			timestamp   = excluded.timestamp,
			synced      = excluded.synced,
			data        = excluded.data;`

	getPendingChanges = `
		SELECT id, entity_type, operation, entity_id, trip_id, user_id, version, timestamp, synced, data
		FROM sync_changes
		WHERE synced = false
		ORDER BY timestamp;`

	getUnsyncedByEntityID = `
		SELECT id, entity_type, operation, entity_id, trip_id, user_id, version, timestamp, synced, data
		FROM sync_changes
		WHERE entity_id = $1 AND synced = false;`

	markChangeSynced = `
		UPDATE sync_changes
		SET synced = true
		WHERE id = $1;`

	deleteChange = `
		DELETE FROM sync_changes
		WHERE id = $1;`

	deleteSyncedChanges = `
		DELETE FROM sync_changes
		WHERE synced = true;`

	saveConflict = `
		INSERT INTO sync_conflicts (
			id,
			entity_type,
			entity_id,
			local_version,
			server_version,
			conflict_type,
			timestamp,
			details,
			local_data,
			server_data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT(id) DO UPDATE SET
			entity_type    = excluded.entity_type,
			entity_id      = excluded.entity_id,
			local_version  = excluded.local_version,
			server_version = excluded.server_version,
			conflict_type  = excluded.conflict_type,
			timestamp      = excluded.timestamp,
			details        = excluded.details,
			local_data     = excluded.local_data,
			server_data    = excluded.server_data;`

	getConflict = `
		SELECT id, entity_type, entity_id, local_version, server_version, conflict_type, timestamp, details, local_data, server_data
		FROM sync_conflicts
		WHERE id = $1;`

	deleteConflict = `
		DELETE FROM sync_conflicts
		WHERE id = $1;`

	clearConflicts = `
		DELETE FROM sync_conflicts;`
)
