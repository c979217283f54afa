package database

import (
	"fmt"

	"gorm.io/gorm"
)

// sequencedTables lists tables whose ids may be written explicitly by the seeder
var sequencedTables = []string{"users", "orders", "offers"}

// SyncSequences moves PostgreSQL id sequences past the largest stored id so
// auto-increment keeps working after rows were inserted with explicit ids.
// SQLite and MySQL track this themselves; the call is a no-op there.
func SyncSequences(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	for _, table := range sequencedTables {
		sql := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %s",
			table, table,
		)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to sync sequence for %s: %w", table, err)
		}
	}

	return nil
}
