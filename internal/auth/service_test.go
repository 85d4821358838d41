package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/models"
)

type mockUserStore struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
	failOn  string
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (m *mockUserStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if m.failOn == "GetUserByID" {
		return nil, errors.New("store down")
	}
	return m.byID[id], nil
}

func (m *mockUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if m.failOn == "GetUserByEmail" {
		return nil, errors.New("store down")
	}
	return m.byEmail[email], nil
}

func (m *mockUserStore) CreateUser(_ context.Context, user *models.User) error {
	if m.failOn == "CreateUser" {
		return errors.New("store down")
	}
	m.byID[user.ID] = user
	m.byEmail[user.Email] = user
	return nil
}

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", digest)

	assert.True(t, CheckPassword("s3cret-pass", digest))
	assert.False(t, CheckPassword("wrong-pass", digest))
}

func TestRegisterIssuesTokenAndAssignsAttendeeRole(t *testing.T) {
	store := newMockUserStore()
	svc := NewService(store, "test-secret", 7*24*time.Hour)

	token, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "password1",
		FullName: "Alice Example",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, models.RoleAttendee, token.User.Role)
	assert.NotEmpty(t, token.AccessToken)

	userID, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, token.User.ID, userID)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	store := newMockUserStore()
	svc := NewService(store, "test-secret", 7*24*time.Hour)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "alice@example.com", Password: "password1", FullName: "Alice",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), models.RegisterRequest{
		Email: "alice@example.com", Password: "other-password", FullName: "Alice Again",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, "Email already registered", err.Error())
}

func TestLogin(t *testing.T) {
	store := newMockUserStore()
	svc := NewService(store, "test-secret", 7*24*time.Hour)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "bob@example.com", Password: "password1", FullName: "Bob",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "bob@example.com", Password: "password1",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", token.User.Email)

	// wrong password and unknown email produce the identical message
	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email: "bob@example.com", Password: "nope",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
	assert.Equal(t, "Invalid email or password", err.Error())

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email: "nobody@example.com", Password: "password1",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestTokenExpiryWindow(t *testing.T) {
	store := newMockUserStore()
	svc := NewService(store, "test-secret", 7*24*time.Hour)

	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueToken("user-1")
	require.NoError(t, err)

	// still valid just inside the 7 day window
	svc.now = func() time.Time { return issuedAt.Add(6*24*time.Hour + 23*time.Hour) }
	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	// rejected once the window has passed
	svc.now = func() time.Time { return issuedAt.Add(7*24*time.Hour + time.Hour) }
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}

func TestValidateTokenRejectsGarbageAndWrongKey(t *testing.T) {
	store := newMockUserStore()
	svc := NewService(store, "test-secret", 7*24*time.Hour)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	other := NewService(store, "different-secret", 7*24*time.Hour)
	token, err := other.IssueToken("user-1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}

func TestResolveTokenMissingUserIsUnauthorized(t *testing.T) {
	store := newMockUserStore()
	svc := NewService(store, "test-secret", 7*24*time.Hour)

	// token for a user that was deleted after issuance
	token, err := svc.IssueToken("ghost-user")
	require.NoError(t, err)

	_, err = svc.ResolveToken(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}
