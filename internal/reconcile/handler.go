package reconcile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"forkcast/internal/core"
	"forkcast/internal/recipes"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/v1/inventory-forecast/restaurant/:restaurant_id
// --------------------------------------------------
func (h *Handler) GetInventoryForecast(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	resp, err := h.service.InventoryForecast(c.Request.Context(), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrRestaurantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		case errors.Is(err, ErrForecastUnavailable):
			c.JSON(http.StatusNotFound, gin.H{"error": "No forecast data available"})
		case errors.Is(err, recipes.ErrUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load recipes data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
