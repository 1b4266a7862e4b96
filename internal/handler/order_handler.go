package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
	"github.com/chmanikanta24/cafe-storefront/internal/service"
	"github.com/chmanikanta24/cafe-storefront/pkg/middleware"
)

type OrderHandler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

func NewOrderHandler(orderService *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req domain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Items required"})
		return
	}

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
		return
	}

	requestID := c.GetString(middleware.RequestIDKey)

	order, err := h.orderService.CreateOrder(c.Request.Context(), userID, req, requestID)
	if err != nil {
		h.logger.Error("Failed to create order",
			zap.String("request_id", requestID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, domain.CreateOrderResponse{ID: order.ID.Hex()})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list orders",
			zap.String("user_id", userID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// callerID reads the authenticated user id set by the auth middleware.
func callerID(c *gin.Context) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.GetString(middleware.UserIDKey))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
