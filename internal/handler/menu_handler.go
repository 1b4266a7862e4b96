package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chmanikanta24/cafe-storefront/internal/service"
)

type MenuHandler struct {
	menuService *service.MenuService
	logger      *zap.Logger
}

func NewMenuHandler(menuService *service.MenuService, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		logger:      logger,
	}
}

func (h *MenuHandler) ListMenu(c *gin.Context) {
	items, err := h.menuService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list menu", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}
