package api

import (
	"net/http"

	"guru-mess-api/internal/menu"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct{}

func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

func (h *MenuHandler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, menu.Catalog())
}
