package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/middleware/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func whoami(c *ginext.Context) {
	identity, ok := IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, ginext.H{"error": "no identity"})
		return
	}
	c.JSON(http.StatusOK, ginext.H{"user_id": identity.UserID, "role": identity.Role})
}

func TestAuth_ValidToken(t *testing.T) {
	verifier := mocks.NewMockTokenVerifier(t)
	verifier.EXPECT().Verify("good").Return(&domain.Identity{UserID: "u1", Role: domain.RoleUser}, nil)

	r := ginext.New("test")
	r.GET("/me", Auth(verifier), whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
}

func TestAuth_MissingToken(t *testing.T) {
	verifier := mocks.NewMockTokenVerifier(t)

	r := ginext.New("test")
	r.GET("/me", Auth(verifier), whoami)

	for _, header := range []string{"", "Basic abc", "Bearer ", "Bearer    "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Contains(t, w.Body.String(), `"success":false`)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	verifier := mocks.NewMockTokenVerifier(t)
	verifier.EXPECT().Verify("bad").Return(nil, domain.ErrUnauthorized)

	r := ginext.New("test")
	r.GET("/me", Auth(verifier), whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer bad")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func setupOwnerRouter(t *testing.T) (*mocks.MockUserLookup, http.Handler) {
	t.Helper()
	verifier := mocks.NewMockTokenVerifier(t)
	verifier.EXPECT().Verify("tok").Return(&domain.Identity{UserID: "u1", Role: domain.RoleUser}, nil).Maybe()
	users := mocks.NewMockUserLookup(t)

	r := ginext.New("test")
	r.GET("/owner", Auth(verifier), RequireOwner(users), whoami)
	return users, r
}

func ownerRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/owner", nil)
	req.Header.Set("Authorization", "Bearer tok")
	return req
}

func TestRequireOwner_PromotedAfterToken(t *testing.T) {
	users, r := setupOwnerRouter(t)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleHotelOwner}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, ownerRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"hotelOwner"`)
}

func TestRequireOwner_NotOwner(t *testing.T) {
	users, r := setupOwnerRouter(t)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleUser}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, ownerRequest())

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireOwner_UserGone(t *testing.T) {
	users, r := setupOwnerRouter(t)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, ownerRequest())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireOwner_StorageError(t *testing.T) {
	users, r := setupOwnerRouter(t)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, ownerRequest())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/ping", func(c *ginext.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	log := newTestLogger(t)

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/panic", func(*ginext.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"internal server error"}`, w.Body.String())
}
