package repository

import (
	"github.com/yukikurage/marketplace-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository is a GORM implementation of OrderRepository
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// List returns every order ordered by id
func (r *GormOrderRepository) List() ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.db.Order("id").Find(&orders).Error; err != nil {
		return nil, translate(err)
	}
	return orders, nil
}

// FindByID finds an order by ID
func (r *GormOrderRepository) FindByID(id uint64) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// Create creates a new order
func (r *GormOrderRepository) Create(order *models.Order) error {
	return translate(r.db.Create(order).Error)
}

// Update applies fn to the stored order under a row lock and saves the result
func (r *GormOrderRepository) Update(id uint64, fn func(order *models.Order) error) (*models.Order, error) {
	var order models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, id).Error; err != nil {
			return err
		}
		if err := fn(&order); err != nil {
			return err
		}
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// Delete removes an order together with its offers and returns the order
// as it was before deletion
func (r *GormOrderRepository) Delete(id uint64) (*models.Order, error) {
	var order models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}
