package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neujobscan/backend/config"
	"github.com/neujobscan/backend/models"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.Config{
		JWTSecret:      "test-secret-key",
		JWTExpiryHours: 24,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService()
	user := &models.User{ID: "jane@example.com", Email: "jane@example.com", Name: "Jane"}

	token, err := svc.GenerateToken(user, "session-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane", claims.Name)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "neujobscan", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken(&models.User{Email: "a@b.com"}, "s")
	require.NoError(t, err)

	other := NewJWTService(&config.Config{JWTSecret: "different-secret", JWTExpiryHours: 24})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := testJWTService().ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	svc := testJWTService()
	token, err := svc.GenerateToken(&models.User{Email: "jane@example.com"}, "session-1")
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(token)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "session-1", claims.SessionID, "refresh keeps the session binding")
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewMemorySessionStore()

	session, err := store.Create("jane@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)

	got, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", got.Email)
}

func TestSessionStore_Destroy(t *testing.T) {
	store := NewMemorySessionStore()
	session, err := store.Create("jane@example.com", time.Hour)
	require.NoError(t, err)

	store.Destroy(session.ID)
	_, ok := store.Get(session.ID)
	assert.False(t, ok)

	// Destroying again is a no-op
	store.Destroy(session.ID)
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore()
	session, err := store.Create("jane@example.com", -time.Minute)
	require.NoError(t, err)

	_, ok := store.Get(session.ID)
	assert.False(t, ok, "expired sessions are not returned")
}

func TestSessionStore_DestroyAllForEmail(t *testing.T) {
	store := NewMemorySessionStore()

	first, err := store.Create("jane@example.com", time.Hour)
	require.NoError(t, err)
	second, err := store.Create("jane@example.com", time.Hour)
	require.NoError(t, err)
	other, err := store.Create("someone@example.com", time.Hour)
	require.NoError(t, err)

	store.DestroyAllForEmail("jane@example.com")

	_, ok := store.Get(first.ID)
	assert.False(t, ok)
	_, ok = store.Get(second.ID)
	assert.False(t, ok)
	_, ok = store.Get(other.ID)
	assert.True(t, ok, "other accounts keep their sessions")
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword("hunter22", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("hunter22", "not-a-hash"))
}
