package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/classboard/classboard/internal/auth"
	"github.com/classboard/classboard/internal/domain"
	"github.com/classboard/classboard/internal/repository"
	apperrors "github.com/classboard/classboard/pkg/errors"
)

// bcryptCost is the cost factor for bcrypt password hashing.
const bcryptCost = 10

// fallbackHash is compared against when the login identifier matches no
// user, so a lookup miss costs the same as a password mismatch.
var fallbackHash, _ = bcrypt.GenerateFromPassword([]byte(""), bcryptCost)

// AuthService implements credential verification and token issuance.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	logger   *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login authenticates a user by email or display name plus password and
// returns a signed bearer token. An unknown identifier and a wrong
// password are reported as distinct failures.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	if identifier == "" {
		return "", nil, apperrors.InvalidInput("username is required")
	}
	if password == "" {
		return "", nil, apperrors.InvalidInput("password is required")
	}

	user, err := s.userRepo.FindByEmailOrName(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Burn a comparison so a lookup miss is not observably
			// faster than a password mismatch.
			_ = bcrypt.CompareHashAndPassword(fallbackHash, []byte(password))
			return "", nil, apperrors.InvalidUser()
		}
		return "", nil, apperrors.Internal(err)
	}

	if !user.IsActive {
		s.logger.InfoContext(ctx, "login rejected for inactive account",
			slog.String("user_id", user.ID),
		)
		return "", nil, apperrors.InvalidUser()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.InvalidCredentials()
	}

	var roleID *string
	if user.RoleID != "" {
		roleID = &user.RoleID
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.Name, roleID)
	if err != nil {
		return "", nil, apperrors.Internal(err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return token, user, nil
}

// TokenTTL reports the lifetime of issued tokens.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}
