package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

type contactStore interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
}

type ContactService struct {
	contacts contactStore
	logger   *zap.Logger
}

func NewContactService(contacts contactStore, logger *zap.Logger) *ContactService {
	return &ContactService{
		contacts: contacts,
		logger:   logger,
	}
}

func (s *ContactService) Submit(ctx context.Context, req domain.ContactRequest) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  domain.ContactStatusNew,
	}
	if err := s.contacts.Create(ctx, msg); err != nil {
		s.logger.Error("Failed to save contact message", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Contact message received", zap.String("id", msg.ID.Hex()))
	return msg, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.contacts.List(ctx)
}
