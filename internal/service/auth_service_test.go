package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"zerowastechef/internal/auth"
	"zerowastechef/internal/errors"
	"zerowastechef/internal/model"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *model.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uint) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, accountID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, accountID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockAccountRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "chef@example.com",
			password: "Goodpass1!",
			setupMock: func(m *MockAccountRepository) {
				m.On("FindByEmail", mock.Anything, "chef@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Account")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "invalid email",
			email:         "not-an-email",
			password:      "Goodpass1!",
			setupMock:     func(m *MockAccountRepository) {},
			expectedError: errors.ErrInvalidEmail,
		},
		{
			name:          "password all lowercase",
			email:         "chef@example.com",
			password:      "abcdef",
			setupMock:     func(m *MockAccountRepository) {},
			expectedError: errors.ErrWeakPassword,
		},
		{
			name:          "password all uppercase",
			email:         "chef@example.com",
			password:      "ABCDEF",
			setupMock:     func(m *MockAccountRepository) {},
			expectedError: errors.ErrWeakPassword,
		},
		{
			name:          "password missing symbol",
			email:         "chef@example.com",
			password:      "abc123",
			setupMock:     func(m *MockAccountRepository) {},
			expectedError: errors.ErrWeakPassword,
		},
		{
			name:          "password too short",
			email:         "chef@example.com",
			password:      "Ab!1",
			setupMock:     func(m *MockAccountRepository) {},
			expectedError: errors.ErrWeakPassword,
		},
		{
			name:     "email already registered",
			email:    "existing@example.com",
			password: "Goodpass1!",
			setupMock: func(m *MockAccountRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.Account{Email: "existing@example.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAccountRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			mockTokenStore := new(MockTokenStore)

			service := NewAuthService(mockRepo, jwtService, mockTokenStore)
			account, err := service.Register(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, account)
				assert.Equal(t, tt.email, account.Email)
				assert.NotEmpty(t, account.PasswordHash)
				assert.NotEqual(t, tt.password, account.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockAccountRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "chef@example.com",
			password: "Goodpass1!",
			setupMock: func(mRepo *MockAccountRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Goodpass1!"), 10)
				mRepo.On("FindByEmail", mock.Anything, "chef@example.com").Return(&model.Account{
					ID:           1,
					Email:        "chef@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(1), "chef@example.com", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "Goodpass1!",
			setupMock: func(mRepo *MockAccountRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "chef@example.com",
			password: "Wrongpass1!",
			setupMock: func(mRepo *MockAccountRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Goodpass1!"), 10)
				mRepo.On("FindByEmail", mock.Anything, "chef@example.com").Return(&model.Account{
					ID:           1,
					Email:        "chef@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAccountRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore)

			accessToken, refreshToken, account, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, account)
				assert.Equal(t, tt.email, account.Email)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

// Wrong-password and unknown-email logins must be indistinguishable to the
// caller.
func TestAuthService_LoginErrorsDoNotLeakAccountExistence(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	unknownRepo := new(MockAccountRepository)
	unknownRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	_, _, _, errUnknown := NewAuthService(unknownRepo, jwtService, new(MockTokenStore)).
		Login(context.Background(), "nobody@example.com", "Goodpass1!")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Goodpass1!"), 10)
	wrongRepo := new(MockAccountRepository)
	wrongRepo.On("FindByEmail", mock.Anything, "chef@example.com").Return(&model.Account{
		ID:           1,
		Email:        "chef@example.com",
		PasswordHash: string(hashedPassword),
	}, nil)
	_, _, _, errWrong := NewAuthService(wrongRepo, jwtService, new(MockTokenStore)).
		Login(context.Background(), "chef@example.com", "Wrongpass1!")

	assert.Equal(t, errUnknown, errWrong)
}
