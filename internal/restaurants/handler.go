package restaurants

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// GET /api/v1/restaurant
// --------------------------------------------------
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if restaurants == nil {
		restaurants = []Restaurant{}
	}

	c.JSON(http.StatusOK, ListResponse{Restaurants: restaurants})
}
