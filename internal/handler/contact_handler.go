package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
	"github.com/chmanikanta24/cafe-storefront/internal/service"
)

type ContactHandler struct {
	contactService *service.ContactService
	logger         *zap.Logger
}

func NewContactHandler(contactService *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Failed to submit contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, domain.ContactResponse{
		Success: true,
		Message: "Contact form submitted successfully",
		ID:      msg.ID.Hex(),
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.contactService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list contact messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, messages)
}
