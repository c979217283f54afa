package repository

import (
	"github.com/yukikurage/marketplace-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOfferRepository is a GORM implementation of OfferRepository
type GormOfferRepository struct {
	db *gorm.DB
}

// NewOfferRepository creates a new OfferRepository
func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &GormOfferRepository{db: db}
}

func (r *GormOfferRepository) List() ([]models.Offer, error) {
	offers := []models.Offer{}
	if err := r.db.Order("id").Find(&offers).Error; err != nil {
		return nil, translate(err)
	}
	return offers, nil
}

func (r *GormOfferRepository) FindByID(id uint64) (*models.Offer, error) {
	var offer models.Offer
	if err := r.db.First(&offer, id).Error; err != nil {
		return nil, translate(err)
	}
	return &offer, nil
}

func (r *GormOfferRepository) Create(offer *models.Offer) error {
	return translate(r.db.Create(offer).Error)
}

func (r *GormOfferRepository) Update(id uint64, fn func(offer *models.Offer) error) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&offer, id).Error; err != nil {
			return err
		}
		if err := fn(&offer); err != nil {
			return err
		}
		return tx.Save(&offer).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &offer, nil
}

func (r *GormOfferRepository) Delete(id uint64) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&offer, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Offer{}, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &offer, nil
}
