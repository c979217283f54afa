package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/marketplace-api/internal/dto"
	"github.com/yukikurage/marketplace-api/internal/services"
	"github.com/yukikurage/marketplace-api/internal/validation"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderService   *services.OrderService
	log            *zap.Logger
	validateCreate bool
}

func NewOrderHandler(orderService *services.OrderService, log *zap.Logger, validateCreate bool) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		log:            log,
		validateCreate: validateCreate,
	}
}

// ListOrders returns every order
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders()
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusOK, dto.ToOrderDTOs(orders))
}

// CreateOrder creates an order from the request body
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input services.CreateOrderInput
	if !bindCreate(c, validation.OrderCreateFields, h.validateCreate, &input) {
		return
	}

	order, err := h.orderService.CreateOrder(input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusCreated, dto.NewMutationResponse(dto.StatusCreated, "Order created", dto.ToOrderDTO(*order)))
}

// GetOrder returns a specific order by ID
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusOK, dto.ToOrderDTO(*order))
}

// UpdateOrder applies a partial update
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.UpdateOrderInput
	if !bindUpdate(c, &input) {
		return
	}

	order, err := h.orderService.UpdateOrder(id, input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusOK, dto.NewMutationResponse(dto.StatusUpdated, "Order updated", dto.ToOrderDTO(*order)))
}

// DeleteOrder deletes an order together with its offers
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orderService.DeleteOrder(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.IndentedJSON(http.StatusOK, dto.NewMutationResponse(dto.StatusDeleted, "Order deleted", dto.ToOrderDTO(*order)))
}
