package services

import (
	"errors"
	"fmt"
	"math"

	apperrors "github.com/yukikurage/marketplace-api/internal/errors"
	"github.com/yukikurage/marketplace-api/internal/models"
	"github.com/yukikurage/marketplace-api/internal/repository"
)

// resolveUser loads the user a foreign key points at. A nil id resolves to
// nil; an id with no row is a constraint violation.
func resolveUser(repo repository.UserRepository, field string, id *uint64) (*models.User, error) {
	if id == nil {
		return nil, nil
	}
	if *id > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %s references missing user %d", apperrors.ErrConstraintViolation, field, *id)
	}

	user, err := repo.FindByID(*id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s references missing user %d", apperrors.ErrConstraintViolation, field, *id)
		}
		return nil, fmt.Errorf("failed to resolve %s: %w", field, err)
	}

	return user, nil
}

// resolveOrder loads the order a foreign key points at, like resolveUser.
func resolveOrder(repo repository.OrderRepository, field string, id *uint64) (*models.Order, error) {
	if id == nil {
		return nil, nil
	}
	if *id > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %s references missing order %d", apperrors.ErrConstraintViolation, field, *id)
	}

	order, err := repo.FindByID(*id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s references missing order %d", apperrors.ErrConstraintViolation, field, *id)
		}
		return nil, fmt.Errorf("failed to resolve %s: %w", field, err)
	}

	return order, nil
}

// notFound replaces a repository not-found with the entity's own error
func notFound(err, entityErr error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return entityErr
	}
	return err
}
