package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weathertrack/internal/auth"
	"weathertrack/internal/model"
	"weathertrack/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when username or password is
	// incorrect. A missing user and a wrong password produce this same error
	// so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserAlreadyExists is returned when registering a taken username.
	ErrUserAlreadyExists = errors.New("username already exists")
	// ErrWrongPassword is returned by UpdatePassword when the current
	// password does not verify.
	ErrWrongPassword = errors.New("current password is incorrect")
)

// AuthService handles registration, login sessions, and password changes.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
	UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
}

type authService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	sessions auth.SessionStore
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher auth.PasswordHasher, sessions auth.SessionStore) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		sessions: sessions,
	}
}

// Register creates a new user with a fresh salt and hashed password.
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: s.hasher.Hash(password, salt),
		Salt:         salt,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues an opaque session token with a fixed
// 30-minute lifetime.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !s.hasher.Verify(user.PasswordHash, user.Salt, password) {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.New().String()
	if err := s.sessions.Create(ctx, token, user.ID, auth.SessionTTL); err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	return token, user, nil
}

// Logout invalidates the session token. Unknown tokens succeed silently, so
// logging out twice is not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Invalidate(ctx, token)
}

// UpdatePassword re-salts and re-hashes after verifying the current password.
func (s *authService) UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if !s.hasher.Verify(user.PasswordHash, user.Salt, currentPassword) {
		return ErrWrongPassword
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, s.hasher.Hash(newPassword, salt), salt); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
