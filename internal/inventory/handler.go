package inventory

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"forkcast/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/v1/inventory/restaurant/:restaurant_id
// --------------------------------------------------
func (h *Handler) ListInventory(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	resp, err := h.service.ListInventory(c.Request.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, core.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
