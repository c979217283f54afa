package repository

import (
	"github.com/yukikurage/marketplace-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// List returns every user ordered by id
func (r *GormUserRepository) List() ([]models.User, error) {
	users := []models.User{}
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return translate(r.db.Create(user).Error)
}

// Update applies fn to the stored user under a row lock and saves the result
func (r *GormUserRepository) Update(id uint64, fn func(user *models.User) error) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, id).Error; err != nil {
			return err
		}
		if err := fn(&user); err != nil {
			return err
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Delete removes a user and returns the row as it was before deletion.
// Orders referencing the user have the reference cleared and the user's
// offers are deleted by the foreign-key constraints.
func (r *GormUserRepository) Delete(id uint64) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
