package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *domain.User {
	return &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleUser}
}

func TestJWTManager_IssueVerify(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, "hotelbooker")

	token, err := m.Issue(testUser())
	require.NoError(t, err)

	id, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, &domain.Identity{UserID: "u1", Email: "alice@example.com", Role: domain.RoleUser}, id)
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, "hotelbooker")
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.Issue(testUser())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret", time.Hour, "hotelbooker").Issue(testUser())
	require.NoError(t, err)

	_, err = NewJWTManager("other", time.Hour, "hotelbooker").Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestJWTManager_WrongIssuer(t *testing.T) {
	token, err := NewJWTManager("secret", time.Hour, "someone-else").Issue(testUser())
	require.NoError(t, err)

	_, err = NewJWTManager("secret", time.Hour, "hotelbooker").Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestJWTManager_RejectsNoneAlg(t *testing.T) {
	claims := &Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "hotelbooker",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTManager("secret", time.Hour, "hotelbooker").Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestJWTManager_Garbage(t *testing.T) {
	_, err := NewJWTManager("secret", time.Hour, "hotelbooker").Verify("not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
