package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/marketplace-api/internal/dto"
	"github.com/yukikurage/marketplace-api/internal/services"
	"github.com/yukikurage/marketplace-api/internal/validation"
	"go.uber.org/zap"
)

type OfferHandler struct {
	offerService   *services.OfferService
	log            *zap.Logger
	validateCreate bool
}

func NewOfferHandler(offerService *services.OfferService, log *zap.Logger, validateCreate bool) *OfferHandler {
	return &OfferHandler{
		offerService:   offerService,
		log:            log,
		validateCreate: validateCreate,
	}
}

func (h *OfferHandler) ListOffers(c *gin.Context) {
	offers, err := h.offerService.ListOffers()
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusOK, dto.ToOfferDTOs(offers))
}

// CreateOffer creates an offer from the request body
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var input services.CreateOfferInput
	if !bindCreate(c, validation.OfferCreateFields, h.validateCreate, &input) {
		return
	}

	offer, err := h.offerService.CreateOffer(input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusCreated, dto.NewMutationResponse(dto.StatusCreated, "Offer created", dto.ToOfferDTO(*offer)))
}

func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	offer, err := h.offerService.GetOffer(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusOK, dto.ToOfferDTO(*offer))
}

// UpdateOffer applies a partial update
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.UpdateOfferInput
	if !bindUpdate(c, &input) {
		return
	}

	offer, err := h.offerService.UpdateOffer(id, input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusOK, dto.NewMutationResponse(dto.StatusUpdated, "Offer updated", dto.ToOfferDTO(*offer)))
}

func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	offer, err := h.offerService.DeleteOffer(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusOK, dto.NewMutationResponse(dto.StatusDeleted, "Offer deleted", dto.ToOfferDTO(*offer)))
}
