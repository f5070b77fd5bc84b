package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"weathertrack/internal/auth"
	"weathertrack/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash, salt string) error {
	args := m.Called(ctx, id, passwordHash, salt)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of auth.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	args := m.Called(ctx, token, userID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Resolve(ctx context.Context, token string) (uint, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockSessionStore) Invalidate(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func registeredUser(username, password string) *model.User {
	hasher := auth.SHA256Hasher{}
	salt, _ := hasher.GenerateSalt()
	return &model.User{
		ID:           1,
		Username:     username,
		Salt:         salt,
		PasswordHash: hasher.Hash(password, salt),
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "p1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "username already taken",
			username: "bob",
			password: "p1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "bob").Return(&model.User{Username: "bob"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			sessions := new(MockSessionStore)
			tt.setupMock(userRepo)

			svc := NewAuthService(userRepo, auth.SHA256Hasher{}, sessions)
			user, err := svc.Register(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
				// stored hash is salted, never the raw password
				assert.NotEmpty(t, user.Salt)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := new(MockSessionStore)
	user := registeredUser("alice", "p1")

	userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	sessions.On("Create", mock.Anything, mock.AnythingOfType("string"), uint(1), auth.SessionTTL).Return(nil)

	svc := NewAuthService(userRepo, auth.SHA256Hasher{}, sessions)
	token, loggedIn, err := svc.Login(context.Background(), "alice", "p1")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
	sessions.AssertExpectations(t)
}

func TestAuthService_LoginFailuresIndistinguishable(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := new(MockSessionStore)

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByUsername", mock.Anything, "alice").Return(registeredUser("alice", "p1"), nil)

	svc := NewAuthService(userRepo, auth.SHA256Hasher{}, sessions)

	_, _, unknownErr := svc.Login(context.Background(), "ghost", "whatever")
	_, _, wrongPwErr := svc.Login(context.Background(), "alice", "wrong")

	// a missing user and a wrong password must be the exact same error
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPwErr)
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_LogoutIdempotent(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := new(MockSessionStore)
	sessions.On("Invalidate", mock.Anything, "tok-1").Return(nil).Twice()

	svc := NewAuthService(userRepo, auth.SHA256Hasher{}, sessions)

	assert.NoError(t, svc.Logout(context.Background(), "tok-1"))
	assert.NoError(t, svc.Logout(context.Background(), "tok-1"))
	// no token at all also succeeds silently
	assert.NoError(t, svc.Logout(context.Background(), ""))
	sessions.AssertExpectations(t)
}

func TestAuthService_UpdatePassword(t *testing.T) {
	t.Run("wrong current password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(registeredUser("alice", "p1"), nil)

		svc := NewAuthService(userRepo, auth.SHA256Hasher{}, new(MockSessionStore))
		err := svc.UpdatePassword(context.Background(), 1, "wrong", "p2")

		assert.ErrorIs(t, err, ErrWrongPassword)
		userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("success re-salts", func(t *testing.T) {
		user := registeredUser("alice", "p1")
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
		userRepo.On("UpdatePassword", mock.Anything, uint(1),
			mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				assert.NotEqual(t, user.Salt, args.String(3))
			}).Return(nil)

		svc := NewAuthService(userRepo, auth.SHA256Hasher{}, new(MockSessionStore))
		assert.NoError(t, svc.UpdatePassword(context.Background(), 1, "p1", "p2"))
		userRepo.AssertExpectations(t)
	})
}
