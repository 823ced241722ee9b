package api

import (
	"net/http"

	dto "guru-mess-api/pkg/models"

	"github.com/gin-gonic/gin"
)

const restaurantName = "Shree Guru Mess"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GetHealth does not probe the store; it only reports that the process serves requests.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:     "healthy",
		Restaurant: restaurantName,
	})
}
