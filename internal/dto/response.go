package dto

import (
	"github.com/yukikurage/marketplace-api/internal/models"
)

// Mutation statuses reported in MutationResponse.Status
const (
	StatusCreated = "created"
	StatusUpdated = "updated"
	StatusDeleted = "deleted"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       int     `json:"age"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Phone     *string `json:"phone"`
}

// OrderDTO represents an order in API responses
type OrderDTO struct {
	ID          uint64       `json:"id"`
	Name        *string      `json:"name"`
	Description string       `json:"description"`
	StartDate   *models.Date `json:"start_date"`
	EndDate     *models.Date `json:"end_date"`
	Address     string       `json:"address"`
	Price       int          `json:"price"`
	CustomerID  *uint64      `json:"customer_id"`
	ExecutorID  *uint64      `json:"executor_id"`
}

// OfferDTO represents an offer in API responses
type OfferDTO struct {
	ID         uint64  `json:"id"`
	OrderID    *uint64 `json:"order_id"`
	ExecutorID *uint64 `json:"executor_id"`
}

// MutationResponse wraps the row affected by a create, update or delete
type MutationResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Age:       user.Age,
		Email:     user.Email,
		Role:      user.Role,
		Phone:     user.Phone,
	}
}

// ToOrderDTO converts an Order model to OrderDTO
func ToOrderDTO(order models.Order) OrderDTO {
	return OrderDTO{
		ID:          order.ID,
		Name:        order.Name,
		Description: order.Description,
		StartDate:   order.StartDate,
		EndDate:     order.EndDate,
		Address:     order.Address,
		Price:       order.Price,
		CustomerID:  order.CustomerID,
		ExecutorID:  order.ExecutorID,
	}
}

// ToOfferDTO converts an Offer model to OfferDTO
func ToOfferDTO(offer models.Offer) OfferDTO {
	return OfferDTO{
		ID:         offer.ID,
		OrderID:    offer.OrderID,
		ExecutorID: offer.ExecutorID,
	}
}

// ToUserDTOs converts a slice of users, never returning nil
func ToUserDTOs(users []models.User) []UserDTO {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return items
}

// ToOrderDTOs converts a slice of orders, never returning nil
func ToOrderDTOs(orders []models.Order) []OrderDTO {
	items := make([]OrderDTO, len(orders))
	for i, order := range orders {
		items[i] = ToOrderDTO(order)
	}
	return items
}

// ToOfferDTOs converts a slice of offers, never returning nil
func ToOfferDTOs(offers []models.Offer) []OfferDTO {
	items := make([]OfferDTO, len(offers))
	for i, offer := range offers {
		items[i] = ToOfferDTO(offer)
	}
	return items
}

// NewMutationResponse builds the envelope returned by mutating endpoints
func NewMutationResponse(status, message string, data interface{}) MutationResponse {
	return MutationResponse{
		Status:  status,
		Message: message,
		Data:    data,
	}
}
