package services

import (
	"context"
	"errors"
	"strings"

	"github.com/prodcalc/tracker/internal/store"
	"github.com/prodcalc/tracker/types"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown username and for a
// wrong password alike, so usernames cannot be probed through login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// AuthService verifies credentials and provisions accounts.
type AuthService struct {
	repo   UserRepository
	logger *zap.Logger
}

func NewAuthService(repo UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Login authenticates a username/password pair. It returns
// ErrInvalidCredentials on rejection; any other error is a storage
// failure during lookup.
func (s *AuthService) Login(ctx context.Context, username, password string) (types.User, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, ErrInvalidCredentials
	}

	s.logger.Info("user authenticated", zap.Int("user_id", user.ID))
	return user, nil
}

// Register creates an account with a bcrypt-hashed password. A
// duplicate username surfaces as the storage error from the insert.
func (s *AuthService) Register(ctx context.Context, username, password string) (types.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, err
	}

	return s.repo.Create(ctx, types.User{
		Username:     strings.TrimSpace(username),
		PasswordHash: string(hashed),
	})
}
