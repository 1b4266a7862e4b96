package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/chmanikanta24/cafe-storefront/internal/auth"
	"github.com/chmanikanta24/cafe-storefront/internal/domain"
	"github.com/chmanikanta24/cafe-storefront/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrUserNotFound       = errors.New("user not found")
)

const bcryptCost = 10

type userStore interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type AuthService struct {
	users     userStore
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthService(users userStore, jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, req domain.SignupRequest) (*domain.AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:    req.Email,
		Password: string(hashed),
		Name:     req.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, err
	}

	token, err := auth.IssueToken(s.jwtSecret, user.ID.Hex(), user.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User signed up", zap.String("user_id", user.ID.Hex()))

	return &domain.AuthResponse{Token: token, User: user.Profile()}, nil
}

func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.jwtSecret, user.ID.Hex(), user.Email)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{Token: token, User: user.Profile()}, nil
}

// CurrentUser resolves the profile behind a verified token's user id.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.UserProfile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.users.FindByID(ctx, oid)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}
