package services

import (
	"fmt"

	"github.com/yukikurage/marketplace-api/internal/dto"
	apperrors "github.com/yukikurage/marketplace-api/internal/errors"
	"github.com/yukikurage/marketplace-api/internal/models"
	"github.com/yukikurage/marketplace-api/internal/repository"
)

var ErrUserNotFound = fmt.Errorf("user %w", apperrors.ErrNotFound)

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       int     `json:"age"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Phone     *string `json:"phone"`
}

// UpdateUserInput represents a partial update of a user. Absent fields keep
// their stored value; null clears phone and is ignored elsewhere.
type UpdateUserInput struct {
	FirstName dto.Optional[string] `json:"first_name"`
	LastName  dto.Optional[string] `json:"last_name"`
	Age       dto.Optional[int]    `json:"age"`
	Email     dto.Optional[string] `json:"email"`
	Role      dto.Optional[string] `json:"role"`
	Phone     dto.Optional[string] `json:"phone"`
}

// ListUsers returns all users
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns a user by id
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

// CreateUser creates a user with a store-assigned id
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Age:       input.Age,
		Email:     input.Email,
		Role:      input.Role,
		Phone:     input.Phone,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUser merges the supplied fields into the stored user
func (s *UserService) UpdateUser(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.Update(id, func(user *models.User) error {
		if input.FirstName.Set && !input.FirstName.Null {
			user.FirstName = input.FirstName.Value
		}
		if input.LastName.Set && !input.LastName.Null {
			user.LastName = input.LastName.Value
		}
		if input.Age.Set && !input.Age.Null {
			user.Age = input.Age.Value
		}
		if input.Email.Set && !input.Email.Null {
			user.Email = input.Email.Value
		}
		if input.Role.Set && !input.Role.Null {
			user.Role = input.Role.Value
		}
		if input.Phone.Set {
			user.Phone = input.Phone.Ptr()
		}
		return nil
	})
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	return user, nil
}

// DeleteUser deletes a user and returns the deleted row
func (s *UserService) DeleteUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.Delete(id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}
