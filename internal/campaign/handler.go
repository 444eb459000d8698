package campaign

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
// GET /api/v1/promotion/restaurant/:restaurant_id
// --------------------------------------------------
func (h *Handler) GetRestaurantCampaigns(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	resp, err := h.service.RestaurantCampaigns(c.Request.Context(), restaurantID)
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

// --------------------------------------------------
// POST /api/v1/campaign/:restaurant_id
// --------------------------------------------------
func (h *Handler) StartCampaign(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	// The body is optional; an empty one starts an unnamed campaign.
	var req StartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	result, err := h.service.StartCampaign(c.Request.Context(), restaurantID, req)
	if err != nil {
		if errors.Is(err, core.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
