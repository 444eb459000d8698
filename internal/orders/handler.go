package orders

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"forkcast/internal/core"
	"forkcast/internal/inventory"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/v1/order/restaurant/:restaurant_id
// --------------------------------------------------
func (h *Handler) CreateOrder(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), restaurantID, req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrRestaurantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		case errors.Is(err, inventory.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Inventory item not found or doesn't belong to this restaurant",
			})
		case errors.Is(err, ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// --------------------------------------------------
// GET /api/v1/order/restaurant/:restaurant_id
// --------------------------------------------------
func (h *Handler) ListOrders(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	orders, err := h.service.ListOrders(c.Request.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, core.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if orders == nil {
		orders = []Order{}
	}

	c.JSON(http.StatusOK, ListResponse{Orders: orders})
}
