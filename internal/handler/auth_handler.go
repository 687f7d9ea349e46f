package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"programador/internal/auth"
	apperrors "programador/internal/errors"
	"programador/internal/service"
)

// AuthHandler handles registration, login and token checks.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// TokenRequest represents a login request.
type TokenRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /cadastrar [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.Validation(service.MsgInvalidData))
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Msg: service.MsgUserRegistered})
}

// Token godoc
// @Summary Exchange credentials for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Login credentials"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.Validation(service.MsgInvalidData))
	}

	accessToken, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, TokenResponse{AccessToken: accessToken})
}

// Check godoc
// @Summary Return the email of the token's user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 401 {object} errors.ErrorResponse
// @Router /check [get]
func (h *AuthHandler) Check(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidToken)
	}
	return c.JSON(http.StatusOK, claims.Email)
}
