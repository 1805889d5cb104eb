package handler

import (
	"net/http"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/dto"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/middleware"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/models"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/repository"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	roles repository.RoleRepository
}

func NewAuthHandler(roles repository.RoleRepository) *AuthHandler {
	return &AuthHandler{roles: roles}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, requireAdmin echo.MiddlewareFunc) {
	api := e.Group("/api/v1/auth")
	api.GET("/role", h.CallerRole)
	api.POST("/roles", h.AssignRole, requireAdmin)
}

// CallerRole reports the role the auth middleware resolved for this request.
func (h *AuthHandler) CallerRole(c echo.Context) error {
	role := middleware.CallerRole(c)
	if role == "" {
		role = models.RoleGuest
	}
	return c.JSON(http.StatusOK, dto.RoleResponse{Role: role})
}

func (h *AuthHandler) AssignRole(c echo.Context) error {
	var req dto.AssignRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Principal == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "principal is required")
	}
	switch req.Role {
	case models.RoleAdmin, models.RoleUser, models.RoleGuest:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	if err := h.roles.Assign(c.Request().Context(), req.Principal, req.Role); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"principal": req.Principal, "role": req.Role})
}
