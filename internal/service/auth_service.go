package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Manav933/Feedback/internal/auth"
	"github.com/Manav933/Feedback/internal/config"
	"github.com/Manav933/Feedback/internal/domain"
	"github.com/Manav933/Feedback/internal/repository"
	apperrors "github.com/Manav933/Feedback/pkg/util"
)

// Login failures share one message so responses never reveal whether the
// username exists.
const invalidCredentialsMsg = "Invalid credentials."

const minPasswordLength = 6

// TokenPair bundles the tokens issued on register, login and refresh.
type TokenPair struct {
	Access          string
	Refresh         string
	AccessExpiresAt time.Time
}

// AuthService coordinates registration, login and the refresh-token flow.
type AuthService struct {
	users      repository.UserRepository
	refresh    repository.RefreshTokenStore
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates store requirements for the auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	RefreshTokenStore repository.RefreshTokenStore
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		refresh:    deps.RefreshTokenStore,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes, cfg.Auth.RefreshTokenTTLDays),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new reviewer account and issues its first token pair.
func (s *AuthService) Register(ctx context.Context, username, email, password, passwordConfirm string) (*domain.User, *TokenPair, error) {
	fieldErrs := map[string][]string{}
	username = strings.TrimSpace(username)
	if username == "" {
		fieldErrs["username"] = append(fieldErrs["username"], "Username cannot be empty.")
	}
	if len(password) < minPasswordLength {
		fieldErrs["password"] = append(fieldErrs["password"], "Password must be at least 6 characters long.")
	}
	if password != passwordConfirm {
		fieldErrs["password_confirm"] = append(fieldErrs["password_confirm"], "Passwords do not match.")
	}
	if len(fieldErrs) > 0 {
		return nil, nil, apperrors.NewFieldValidationError(fieldErrs)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, nil, apperrors.NewConflict("username already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login authenticates a reviewer by username and password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, *TokenPair, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewUnauthorized(invalidCredentialsMsg)
		}
		return nil, nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, apperrors.NewUnauthorized(invalidCredentialsMsg)
	}

	pair, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Unknown, expired and revoked tokens are rejected alike.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokenMgr.ParseToken(refreshToken)
	if err != nil || claims.Kind != auth.TokenKindRefresh || claims.ID == "" {
		return nil, apperrors.NewUnauthorized("invalid refresh token")
	}

	userID, err := s.refresh.UserID(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if userID == "" || userID != claims.Subject {
		return nil, apperrors.NewUnauthorized("invalid refresh token")
	}

	if err := s.refresh.Delete(ctx, claims.ID); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, userID)
}

// Logout revokes the presented refresh token. Access tokens stay stateless
// and simply expire.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokenMgr.ParseToken(refreshToken)
	if err != nil || claims.Kind != auth.TokenKindRefresh || claims.ID == "" {
		return apperrors.NewUnauthorized("invalid refresh token")
	}
	return s.refresh.Delete(ctx, claims.ID)
}

func (s *AuthService) issueTokens(ctx context.Context, userID string) (*TokenPair, error) {
	access, accessExp, err := s.tokenMgr.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refresh, refreshID, _, err := s.tokenMgr.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	if err := s.refresh.Save(ctx, refreshID, userID, s.tokenMgr.RefreshTTL()); err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh, AccessExpiresAt: accessExp}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
