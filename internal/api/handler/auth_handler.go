package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/personal-finance/internal/api/metrics"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and logs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", metrics.ResultFailure).Inc()
		return err
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.FullName, req.Username, req.Password)
	metrics.AuthAttemptsTotal.WithLabelValues("register", metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	pub := user.Public()
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: &pub})
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.ResultFailure).Inc()
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	pub := user.Public()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: &pub})
}

// Logout ends the current session. Recorded data is kept.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  ErrorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	err := h.authService.Logout(c.Request().Context())
	metrics.AuthAttemptsTotal.WithLabelValues("logout", metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the logged-in user.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  authResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	user, err := h.authService.Current()
	if err != nil {
		return err
	}
	pub := user.Public()
	return c.JSON(http.StatusOK, authResponse{User: &pub})
}
