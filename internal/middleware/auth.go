package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth requires a valid bearer token and stores the caller identity.
func Auth(verifier TokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abort(c, http.StatusUnauthorized, "not authorized, no token")
			return
		}

		identity, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			c.Set("error", err.Error())
			abort(c, http.StatusUnauthorized, "not authorized, token failed")
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireOwner reads the role from storage: it changes when a user registers a hotel
// and the token issued before that still says "user".
func RequireOwner(users UserLookup) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "not authorized")
			return
		}

		user, err := users.GetByID(c.Request.Context(), identity.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				abort(c, http.StatusUnauthorized, "not authorized")
				return
			}
			c.Set("error", err.Error())
			abort(c, http.StatusInternalServerError, "internal server error")
			return
		}

		if user.Role != domain.RoleHotelOwner {
			abort(c, http.StatusForbidden, domain.ErrForbidden.Error())
			return
		}

		identity.Role = user.Role
		c.Next()
	}
}

func IdentityFrom(c *ginext.Context) (*domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*domain.Identity)
	return identity, ok && identity != nil
}

func abort(c *ginext.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ginext.H{"success": false, "error": msg})
}
