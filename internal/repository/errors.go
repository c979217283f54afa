package repository

import (
	"errors"
	"fmt"

	apperrors "github.com/yukikurage/marketplace-api/internal/errors"
	"gorm.io/gorm"
)

// translate maps gorm errors onto the application's error kinds. Anything
// unrecognized is returned unchanged and surfaces as a server error.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: foreign key: %v", apperrors.ErrConstraintViolation, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicate key: %v", apperrors.ErrConstraintViolation, err)
	default:
		return err
	}
}
