package forecast

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	oracle *RegressionOracle
}

func NewHandler(oracle *RegressionOracle) *Handler {
	return &Handler{oracle: oracle}
}

// --------------------------------------------------
// GET /api/v1/forecast?days=5
// --------------------------------------------------
func (h *Handler) GetForecast(c *gin.Context) {
	days := DefaultHorizonDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days parameter"})
			return
		}
		days = parsed
	}

	items, err := h.oracle.Items(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, Response{Items: items})
}
