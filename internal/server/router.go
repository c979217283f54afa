package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/marketplace-api/internal/handlers"
	"github.com/yukikurage/marketplace-api/internal/middleware"
	"go.uber.org/zap"
)

// NewRouter wires the collection and item routes of every entity
func NewRouter(
	userHandler *handlers.UserHandler,
	orderHandler *handlers.OrderHandler,
	offerHandler *handlers.OfferHandler,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.IndentedJSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Marketplace API is running",
		})
	})

	users := r.Group("/users")
	{
		users.GET("/", userHandler.ListUsers)
		users.POST("/", userHandler.CreateUser)
		users.GET("/:id/", userHandler.GetUser)
		users.PUT("/:id/", userHandler.UpdateUser)
		users.DELETE("/:id/", userHandler.DeleteUser)
	}

	orders := r.Group("/orders")
	{
		orders.GET("/", orderHandler.ListOrders)
		orders.POST("/", orderHandler.CreateOrder)
		orders.GET("/:id/", orderHandler.GetOrder)
		orders.PUT("/:id/", orderHandler.UpdateOrder)
		orders.DELETE("/:id/", orderHandler.DeleteOrder)
	}

	offers := r.Group("/offers")
	{
		offers.GET("/", offerHandler.ListOffers)
		offers.POST("/", offerHandler.CreateOffer)
		offers.GET("/:id/", offerHandler.GetOffer)
		offers.PUT("/:id/", offerHandler.UpdateOffer)
		offers.DELETE("/:id/", offerHandler.DeleteOffer)
	}

	return r
}
