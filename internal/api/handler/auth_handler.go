package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petitmarche/shop-api/internal/api/middleware"
	"github.com/petitmarche/shop-api/internal/core/domain"
	"github.com/petitmarche/shop-api/internal/core/ports"
)

// AuthHandler handles registration, login and the protected profile routes.
// All its responses use the "msg" envelope for errors, matching the original
// auth API contract.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userPayload is the identity subset echoed back on login. It deliberately
// mirrors the token claims, nothing more.
type userPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token     string      `json:"token"`
	User      userPayload `json:"user"`
	ExpiresIn int         `json:"expiresIn"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "Please provide username and password"})
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			return c.JSON(http.StatusBadRequest, map[string]string{"msg": "Please provide username and password"})
		case errors.Is(err, domain.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, map[string]string{"msg": "Invalid role"})
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusBadRequest, map[string]string{"msg": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "Server error"})
	}

	return c.JSON(http.StatusCreated, map[string]string{"msg": "User registered successfully"})
}

// Login authenticates a user and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "Please provide username and password"})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			return c.JSON(http.StatusBadRequest, map[string]string{"msg": "Please provide username and password"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, map[string]string{"msg": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "Server error"})
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		User: userPayload{
			ID:       result.User.ID,
			Username: result.User.Username,
			Role:     result.User.Role,
		},
		ExpiresIn: result.ExpiresIn,
	})
}

// Profile returns the authenticated user's record, password hash excluded.
//
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"msg": "No token, authorization denied"})
	}

	user, err := h.authService.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"msg": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "Server error"})
	}

	return c.JSON(http.StatusOK, user)
}

// Admin is a trivial admin-gated probe kept for client compatibility.
//
// @Summary      Admin check
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/auth/admin [get]
func (h *AuthHandler) Admin(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	return c.JSON(http.StatusOK, map[string]any{
		"msg": "Welcome, Admin!",
		"user": userPayload{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		},
	})
}
