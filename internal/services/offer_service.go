package services

import (
	"fmt"

	"github.com/yukikurage/marketplace-api/internal/dto"
	apperrors "github.com/yukikurage/marketplace-api/internal/errors"
	"github.com/yukikurage/marketplace-api/internal/models"
	"github.com/yukikurage/marketplace-api/internal/repository"
)

var ErrOfferNotFound = fmt.Errorf("offer %w", apperrors.ErrNotFound)

// OfferService handles offer business logic
type OfferService struct {
	offerRepo repository.OfferRepository
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

// NewOfferService creates a new OfferService
func NewOfferService(offerRepo repository.OfferRepository, orderRepo repository.OrderRepository, userRepo repository.UserRepository) *OfferService {
	return &OfferService{
		offerRepo: offerRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

// CreateOfferInput represents input for creating an offer
type CreateOfferInput struct {
	OrderID    *uint64 `json:"order_id"`
	ExecutorID *uint64 `json:"executor_id"`
}

// UpdateOfferInput represents a partial update of an offer
type UpdateOfferInput struct {
	OrderID    dto.Optional[uint64] `json:"order_id"`
	ExecutorID dto.Optional[uint64] `json:"executor_id"`
}

func (s *OfferService) ListOffers() ([]models.Offer, error) {
	offers, err := s.offerRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

func (s *OfferService) GetOffer(id uint64) (*models.Offer, error) {
	offer, err := s.offerRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrOfferNotFound)
	}
	return offer, nil
}

// ResolveOrder returns the order the offer bids on, or nil when unset
func (s *OfferService) ResolveOrder(offer *models.Offer) (*models.Order, error) {
	return resolveOrder(s.orderRepo, "order_id", offer.OrderID)
}

// ResolveExecutor returns the bidding user, or nil when unset
func (s *OfferService) ResolveExecutor(offer *models.Offer) (*models.User, error) {
	return resolveUser(s.userRepo, "executor_id", offer.ExecutorID)
}

func (s *OfferService) CreateOffer(input CreateOfferInput) (*models.Offer, error) {
	offer := &models.Offer{
		OrderID:    input.OrderID,
		ExecutorID: input.ExecutorID,
	}

	if _, err := s.ResolveOrder(offer); err != nil {
		return nil, err
	}
	if _, err := s.ResolveExecutor(offer); err != nil {
		return nil, err
	}

	if err := s.offerRepo.Create(offer); err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	return offer, nil
}

func (s *OfferService) UpdateOffer(id uint64, input UpdateOfferInput) (*models.Offer, error) {
	if input.OrderID.Set {
		if _, err := resolveOrder(s.orderRepo, "order_id", input.OrderID.Ptr()); err != nil {
			return nil, err
		}
	}
	if input.ExecutorID.Set {
		if _, err := resolveUser(s.userRepo, "executor_id", input.ExecutorID.Ptr()); err != nil {
			return nil, err
		}
	}

	offer, err := s.offerRepo.Update(id, func(offer *models.Offer) error {
		if input.OrderID.Set {
			offer.OrderID = input.OrderID.Ptr()
		}
		if input.ExecutorID.Set {
			offer.ExecutorID = input.ExecutorID.Ptr()
		}
		return nil
	})
	if err != nil {
		return nil, notFound(err, ErrOfferNotFound)
	}

	return offer, nil
}

func (s *OfferService) DeleteOffer(id uint64) (*models.Offer, error) {
	offer, err := s.offerRepo.Delete(id)
	if err != nil {
		return nil, notFound(err, ErrOfferNotFound)
	}
	return offer, nil
}
