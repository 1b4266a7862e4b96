package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
	"github.com/chmanikanta24/cafe-storefront/internal/events"
)

type orderStore interface {
	Create(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error)
}

type OrderService struct {
	orders    orderStore
	publisher events.Publisher
	logger    *zap.Logger
}

// NewOrderService wires the order flow. publisher may be nil when event
// publishing is not configured.
func NewOrderService(orders orderStore, publisher events.Publisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders:    orders,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, userID primitive.ObjectID, req domain.CreateOrderRequest, requestID string) (*domain.Order, error) {
	order := &domain.Order{
		Items:     normalizeItems(req.Items),
		AmountINR: req.AmountINR,
		Currency:  req.Currency,
		UserID:    userID,
	}
	if order.Currency == "" {
		order.Currency = "INR"
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("Failed to save order",
			zap.String("user_id", userID.Hex()),
			zap.Error(err))
		return nil, err
	}

	if s.publisher != nil {
		event := events.OrderCreatedEvent{
			EventID:   uuid.New().String(),
			OrderID:   order.ID.Hex(),
			UserID:    order.UserID.Hex(),
			AmountINR: order.AmountINR,
			Currency:  order.Currency,
			Items:     order.Items,
			Timestamp: time.Now(),
			RequestID: requestID,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			// Log-only: consumers are eventually consistent.
			s.logger.Error("Failed to publish order event",
				zap.String("order_id", order.ID.Hex()),
				zap.Error(err))
		}
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.Hex()),
		zap.String("user_id", order.UserID.Hex()),
		zap.Int64("amount_inr", order.AmountINR))

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// normalizeItems keeps only the expected fields and coerces quantities to
// positive integers, defaulting missing or bad values to 1.
func normalizeItems(items []domain.OrderItem) []domain.OrderItem {
	normalized := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		var opts *domain.OptionSelection
		if it.Options != nil {
			opts = &domain.OptionSelection{
				Temperature: it.Options.Temperature,
				Sweetness:   it.Options.Sweetness,
				Milk:        it.Options.Milk,
			}
		}
		normalized = append(normalized, domain.OrderItem{
			ID:       it.ID,
			Quantity: qty,
			Options:  opts,
		})
	}
	return normalized
}
