// Package seed loads fixture records into an empty store in one transaction.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yukikurage/marketplace-api/internal/database"
	apperrors "github.com/yukikurage/marketplace-api/internal/errors"
	"github.com/yukikurage/marketplace-api/internal/fixtures"
	"github.com/yukikurage/marketplace-api/internal/models"
	"github.com/yukikurage/marketplace-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Result counts the rows inserted per entity
type Result struct {
	Users  int
	Orders int
	Offers int
}

type Seeder struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Seeder {
	return &Seeder{
		db:  db,
		log: log,
	}
}

// Seed inserts users, then orders, then offers inside a single transaction.
// Orders and offers reference rows inserted before them, so the order is
// fixed. Any failure rolls back every row of the set.
func (s *Seeder) Seed(ctx context.Context, set *fixtures.Set) (Result, error) {
	var result Result

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error

		result.Users, err = insertAll("users", set.Users, repository.NewUserRepository(tx).Create)
		if err != nil {
			return err
		}

		result.Orders, err = insertAll("orders", set.Orders, repository.NewOrderRepository(tx).Create)
		if err != nil {
			return err
		}

		result.Offers, err = insertAll("offers", set.Offers, repository.NewOfferRepository(tx).Create)
		if err != nil {
			return err
		}

		return database.SyncSequences(tx)
	})
	if err != nil {
		return Result{}, fmt.Errorf("seed aborted: %w", err)
	}

	s.log.Info("fixtures seeded",
		zap.Int("users", result.Users),
		zap.Int("orders", result.Orders),
		zap.Int("offers", result.Offers),
	)
	return result, nil
}

// entity is the set of row types the seeder can build from a record
type entity interface {
	models.User | models.Order | models.Offer
}

func insertAll[T entity](table string, records []fixtures.Record, create func(*T) error) (int, error) {
	for i, record := range records {
		var row T
		if err := decode(record, &row); err != nil {
			return 0, fmt.Errorf("%s[%d]: %w", table, i, err)
		}
		if err := create(&row); err != nil {
			return 0, fmt.Errorf("%s[%d]: %w", table, i, err)
		}
	}
	return len(records), nil
}

// decode copies the fields a row type knows about from record into dst.
// Unknown fields are dropped and missing ones stay zero or NULL.
func decode(record fixtures.Record, dst interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrParse, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		if errors.Is(err, apperrors.ErrFormat) {
			return err
		}
		return fmt.Errorf("%w: %v", apperrors.ErrParse, err)
	}

	return nil
}
