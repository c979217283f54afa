package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/marketplace-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite database with foreign keys
// enforced and the schema migrated. It is closed when the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	err = db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.Offer{},
	)
	require.NoError(t, err)

	return db
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// CreateUser inserts a user with the given first name and defaults for the rest
func CreateUser(t *testing.T, db *gorm.DB, firstName string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName: firstName,
		LastName:  "Tester",
		Age:       30,
		Email:     firstName + "@example.com",
		Role:      "customer",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateOrder inserts an order owned by customerID
func CreateOrder(t *testing.T, db *gorm.DB, name string, customerID uint64) *models.Order {
	t.Helper()
	start := models.MustParseDate("01/15/2024")
	order := &models.Order{
		Name:        Ptr(name),
		Description: "Test description",
		StartDate:   &start,
		Address:     "1 Test Street",
		Price:       100,
		CustomerID:  Ptr(customerID),
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

// CreateOffer inserts an offer by executorID on orderID
func CreateOffer(t *testing.T, db *gorm.DB, orderID, executorID uint64) *models.Offer {
	t.Helper()
	offer := &models.Offer{
		OrderID:    Ptr(orderID),
		ExecutorID: Ptr(executorID),
	}
	require.NoError(t, db.Create(offer).Error)
	return offer
}
