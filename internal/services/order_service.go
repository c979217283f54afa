package services

import (
	"fmt"

	"github.com/yukikurage/marketplace-api/internal/dto"
	apperrors "github.com/yukikurage/marketplace-api/internal/errors"
	"github.com/yukikurage/marketplace-api/internal/models"
	"github.com/yukikurage/marketplace-api/internal/repository"
)

var ErrOrderNotFound = fmt.Errorf("order %w", apperrors.ErrNotFound)

// OrderService handles order business logic
type OrderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

// CreateOrderInput represents input for creating an order
type CreateOrderInput struct {
	Name        *string      `json:"name"`
	Description string       `json:"description"`
	StartDate   *models.Date `json:"start_date"`
	EndDate     *models.Date `json:"end_date"`
	Address     string       `json:"address"`
	Price       int          `json:"price"`
	CustomerID  *uint64      `json:"customer_id"`
	ExecutorID  *uint64      `json:"executor_id"`
}

// UpdateOrderInput represents a partial update of an order. Null clears the
// nullable columns (name, dates, customer_id, executor_id).
type UpdateOrderInput struct {
	Name        dto.Optional[string]      `json:"name"`
	Description dto.Optional[string]      `json:"description"`
	StartDate   dto.Optional[models.Date] `json:"start_date"`
	EndDate     dto.Optional[models.Date] `json:"end_date"`
	Address     dto.Optional[string]      `json:"address"`
	Price       dto.Optional[int]         `json:"price"`
	CustomerID  dto.Optional[uint64]      `json:"customer_id"`
	ExecutorID  dto.Optional[uint64]      `json:"executor_id"`
}

// ListOrders returns all orders
func (s *OrderService) ListOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetOrder returns an order by id
func (s *OrderService) GetOrder(id uint64) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	return order, nil
}

// ResolveCustomer returns the order's customer, or nil when unset
func (s *OrderService) ResolveCustomer(order *models.Order) (*models.User, error) {
	return resolveUser(s.userRepo, "customer_id", order.CustomerID)
}

// ResolveExecutor returns the order's executor, or nil when unset
func (s *OrderService) ResolveExecutor(order *models.Order) (*models.User, error) {
	return resolveUser(s.userRepo, "executor_id", order.ExecutorID)
}

// CreateOrder creates an order after checking its user references
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	order := &models.Order{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Address:     input.Address,
		Price:       input.Price,
		CustomerID:  input.CustomerID,
		ExecutorID:  input.ExecutorID,
	}

	if _, err := s.ResolveCustomer(order); err != nil {
		return nil, err
	}
	if _, err := s.ResolveExecutor(order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// UpdateOrder merges the supplied fields into the stored order
func (s *OrderService) UpdateOrder(id uint64, input UpdateOrderInput) (*models.Order, error) {
	if input.CustomerID.Set {
		if _, err := resolveUser(s.userRepo, "customer_id", input.CustomerID.Ptr()); err != nil {
			return nil, err
		}
	}
	if input.ExecutorID.Set {
		if _, err := resolveUser(s.userRepo, "executor_id", input.ExecutorID.Ptr()); err != nil {
			return nil, err
		}
	}

	order, err := s.orderRepo.Update(id, func(order *models.Order) error {
		if input.Name.Set {
			order.Name = input.Name.Ptr()
		}
		if input.Description.Set && !input.Description.Null {
			order.Description = input.Description.Value
		}
		if input.StartDate.Set {
			order.StartDate = input.StartDate.Ptr()
		}
		if input.EndDate.Set {
			order.EndDate = input.EndDate.Ptr()
		}
		if input.Address.Set && !input.Address.Null {
			order.Address = input.Address.Value
		}
		if input.Price.Set && !input.Price.Null {
			order.Price = input.Price.Value
		}
		if input.CustomerID.Set {
			order.CustomerID = input.CustomerID.Ptr()
		}
		if input.ExecutorID.Set {
			order.ExecutorID = input.ExecutorID.Ptr()
		}
		return nil
	})
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}

	return order, nil
}

// DeleteOrder deletes an order with its offers and returns the deleted order
func (s *OrderService) DeleteOrder(id uint64) (*models.Order, error) {
	order, err := s.orderRepo.Delete(id)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	return order, nil
}
