package repository

import (
	"github.com/yukikurage/marketplace-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// List returns every user ordered by id
	List() ([]models.User, error)

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// Create inserts a user, keeping user.ID when it is already set
	Create(user *models.User) error

	// Update loads a user, applies fn and saves it in one transaction
	Update(id uint64, fn func(user *models.User) error) (*models.User, error)

	// Delete removes a user and returns the deleted row
	Delete(id uint64) (*models.User, error)
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// List returns every order ordered by id
	List() ([]models.Order, error)

	// FindByID finds an order by ID
	FindByID(id uint64) (*models.Order, error)

	// Create inserts an order, keeping order.ID when it is already set
	Create(order *models.Order) error

	// Update loads an order, applies fn and saves it in one transaction
	Update(id uint64, fn func(order *models.Order) error) (*models.Order, error)

	// Delete removes an order and returns the deleted row
	Delete(id uint64) (*models.Order, error)
}

// OfferRepository defines the interface for offer data access
type OfferRepository interface {
	// List returns every offer ordered by id
	List() ([]models.Offer, error)

	// FindByID finds an offer by ID
	FindByID(id uint64) (*models.Offer, error)

	// Create inserts an offer, keeping offer.ID when it is already set
	Create(offer *models.Offer) error

	// Update loads an offer, applies fn and saves it in one transaction
	Update(id uint64, fn func(offer *models.Offer) error) (*models.Offer, error)

	// Delete removes an offer and returns the deleted row
	Delete(id uint64) (*models.Offer, error)
}
