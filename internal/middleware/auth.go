package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/models"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	principalKey = "principal"
	roleKey      = "role"
)

// Auth resolves the caller's principal and role from an optional bearer
// token. Tokens are minted elsewhere; this service only verifies them.
type Auth struct {
	secret []byte
	roles  repository.RoleRepository
}

func NewAuth(secret string, roles repository.RoleRepository) *Auth {
	return &Auth{secret: []byte(secret), roles: roles}
}

// Resolve is installed globally: no token means guest, a valid token means
// the role assigned to its subject (default user), a bad token is a 401.
func (a *Auth) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			c.Set(roleKey, models.RoleGuest)
			return next(c)
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == header {
			return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		principal, err := token.Claims.GetSubject()
		if err != nil || principal == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "token has no subject")
		}

		role := models.RoleUser
		assigned, err := a.roles.Find(c.Request().Context(), principal)
		switch {
		case err == nil:
			role = assigned.Role
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return echo.NewHTTPError(http.StatusInternalServerError, "role lookup failed")
		}

		c.Set(principalKey, principal)
		c.Set(roleKey, role)
		return next(c)
	}
}

// RequireAdmin rejects any caller whose resolved role is not admin.
func (a *Auth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CallerRole(c) != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}

// CallerRole returns the role Resolve stored for this request.
func CallerRole(c echo.Context) string {
	if role, ok := c.Get(roleKey).(string); ok {
		return role
	}
	return ""
}

// CallerPrincipal returns the authenticated subject, empty for guests.
func CallerPrincipal(c echo.Context) string {
	if p, ok := c.Get(principalKey).(string); ok {
		return p
	}
	return ""
}
