package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/marketplace-api/internal/config"
	"github.com/yukikurage/marketplace-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	for _, driver := range []string{config.DriverSQLite, config.DriverMySQL, config.DriverPostgres} {
		d, err := Dialector(&config.Config{DBDriver: driver, DBPath: ":memory:"})
		require.NoError(t, err)
		assert.Equal(t, driver, d.Name())
	}

	_, err := Dialector(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestConnectAndMigrate_SQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, DBPath: "file::memory:?_foreign_keys=on"}

	db, err := Connect(cfg, zap.NewNop(), gormlogger.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db, zap.NewNop()))

	for _, model := range []interface{}{&models.User{}, &models.Order{}, &models.Offer{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}
	assert.True(t, db.Migrator().HasConstraint(&models.Order{}, "Customer"))
	assert.True(t, db.Migrator().HasConstraint(&models.Offer{}, "Order"))

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)

	// no-op outside postgres
	assert.NoError(t, SyncSequences(db))
}

func TestSyncSequences_Postgres(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	for _, table := range []string{"users", "orders", "offers"} {
		mock.ExpectExec("SELECT setval\\(pg_get_serial_sequence\\('" + table + "', 'id'\\)").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, SyncSequences(db))
	require.NoError(t, mock.ExpectationsWereMet())
}
