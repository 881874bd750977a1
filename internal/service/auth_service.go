package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"zerowastechef/internal/auth"
	"zerowastechef/internal/errors"
	"zerowastechef/internal/model"
	"zerowastechef/internal/repository"
)

const bcryptCost = 10

var (
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	lowercasePattern = regexp.MustCompile(`[a-z]`)
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	symbolPattern    = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.Account, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, account *model.Account, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	accountRepo repository.AccountRepository
	jwtService  *auth.JWTService
	tokenStore  auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(accountRepo repository.AccountRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
	}
}

// validatePassword enforces the password policy: at least 6 characters with
// one lowercase letter, one uppercase letter and one symbol.
func validatePassword(password string) bool {
	return len(password) >= 6 &&
		lowercasePattern.MatchString(password) &&
		uppercasePattern.MatchString(password) &&
		symbolPattern.MatchString(password)
}

// Register validates credentials and creates a new account with a bcrypt
// password hash. The raw password is never persisted.
func (s *authService) Register(ctx context.Context, email, password string) (*model.Account, error) {
	if !emailPattern.MatchString(email) {
		return nil, errors.ErrInvalidEmail
	}
	if !validatePassword(password) {
		return nil, errors.ErrWeakPassword
	}

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check account existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &model.Account{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		// A concurrent registration can still hit the unique index; surface
		// it as the domain error rather than a storage failure.
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

// Login authenticates an account and returns access and refresh tokens.
// Unknown email and wrong password both map to the same generic error so the
// response does not leak which accounts exist.
func (s *authService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, account *model.Account, err error) {
	account, err = s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}

	accessToken, err = s.jwtService.GenerateAccessToken(account.ID, account.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(account.ID, account.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, account.ID, account.Email, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, account, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}

	storedAccountID, storedEmail, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}

	if storedAccountID != claims.AccountID || storedEmail != claims.Email {
		return "", errors.ErrInvalidCredentials
	}

	accessToken, err = s.jwtService.GenerateAccessToken(claims.AccountID, claims.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout ends the session by invalidating the refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return errors.ErrInvalidCredentials
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
