package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manav933/Feedback/internal/config"
	"github.com/Manav933/Feedback/internal/domain"
	apperrors "github.com/Manav933/Feedback/pkg/util"
)

type fakeUserRepo struct {
	users  map[string]domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.nextID++
	user.ID = "u" + strconv.Itoa(f.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeRefreshStore struct {
	tokens map[string]string
}

func newFakeRefreshStore() *fakeRefreshStore {
	return &fakeRefreshStore{tokens: map[string]string{}}
}

func (f *fakeRefreshStore) Save(_ context.Context, tokenID, userID string, _ time.Duration) error {
	f.tokens[tokenID] = userID
	return nil
}

func (f *fakeRefreshStore) UserID(_ context.Context, tokenID string) (string, error) {
	return f.tokens[tokenID], nil
}

func (f *fakeRefreshStore) Delete(_ context.Context, tokenID string) error {
	delete(f.tokens, tokenID)
	return nil
}

func newAuthService() (*AuthService, *fakeUserRepo, *fakeRefreshStore) {
	users := newFakeUserRepo()
	refresh := newFakeRefreshStore()
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		RefreshTokenTTLDays:   1,
		BcryptCost:            4,
	}}
	return NewAuthService(cfg, AuthDependencies{UserRepo: users, RefreshTokenStore: refresh}), users, refresh
}

func TestRegisterIssuesTokenPair(t *testing.T) {
	svc, _, refresh := newAuthService()

	user, pair, err := svc.Register(context.Background(), "admin", "Admin@Example.COM", "secret1", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.Len(t, refresh.tokens, 1)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, users, _ := newAuthService()

	_, _, err := svc.Register(context.Background(), "admin", "", "secret1", "secret2")
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "password_confirm")
	assert.Empty(t, users.users)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _, _ := newAuthService()

	_, _, err := svc.Register(context.Background(), "admin", "", "short", "short")
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Contains(t, domainErr.Details, "password")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthService()

	_, _, err := svc.Register(context.Background(), "admin", "", "secret1", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "admin", "", "secret1", "secret1")
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestLoginGenericFailureMessage(t *testing.T) {
	svc, _, _ := newAuthService()

	_, _, err := svc.Register(context.Background(), "admin", "", "secret1", "secret1")
	require.NoError(t, err)

	// Unknown username and wrong password fail identically, so responses
	// cannot be used to enumerate accounts.
	_, _, unknownErr := svc.Login(context.Background(), "nobody", "secret1")
	_, _, wrongErr := svc.Login(context.Background(), "admin", "wrong-password")

	var unknownDomain, wrongDomain *apperrors.DomainError
	require.True(t, errors.As(unknownErr, &unknownDomain))
	require.True(t, errors.As(wrongErr, &wrongDomain))
	assert.Equal(t, unknownDomain.Message, wrongDomain.Message)
	assert.Equal(t, "UNAUTHORIZED", unknownDomain.Code)
}

func TestLoginSuccess(t *testing.T) {
	svc, _, _ := newAuthService()

	registered, _, err := svc.Register(context.Background(), "admin", "", "secret1", "secret1")
	require.NoError(t, err)

	user, pair, err := svc.Login(context.Background(), "admin", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, pair.Access)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _, refresh := newAuthService()

	_, pair, err := svc.Register(context.Background(), "admin", "", "secret1", "secret1")
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.Refresh)
	require.NoError(t, err)
	assert.NotEqual(t, pair.Refresh, rotated.Refresh)
	assert.Len(t, refresh.tokens, 1)

	// The old refresh token was revoked by the rotation.
	_, err = svc.Refresh(context.Background(), pair.Refresh)
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _, refresh := newAuthService()

	_, pair, err := svc.Register(context.Background(), "admin", "", "secret1", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), pair.Refresh))
	assert.Empty(t, refresh.tokens)

	_, err = svc.Refresh(context.Background(), pair.Refresh)
	assert.Error(t, err)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, _ := newAuthService()

	_, pair, err := svc.Register(context.Background(), "admin", "", "secret1", "secret1")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.Access)
	assert.Error(t, err)
}
