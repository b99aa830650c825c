package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cezeus/club-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type accountResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Account accountResponse `json:"account"`
}

type resetRequestBody struct {
	Email string `json:"email" validate:"required,email"`
}

type resetRequestResponse struct {
	ResetToken string `json:"reset_token"`
}

type resetConfirmBody struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// Login authenticates an account and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, account, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		Account: accountResponse{
			ID:    account.ID,
			Email: account.Email,
			Role:  string(account.Role),
		},
	})
}

// RequestReset issues a one-shot credential reset token for an account.
//
// @Summary      Request a credential reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      resetRequestBody  true  "Account email"
// @Success      200   {object}  resetRequestResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/credential-resets [post]
func (h *AuthHandler) RequestReset(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return err
	}

	var req resetRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.RequestReset(c.Request().Context(), caller, req.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resetRequestResponse{ResetToken: token})
}

// ConfirmReset consumes a reset token and sets a new password.
//
// @Summary      Confirm a credential reset
// @Tags         auth
// @Accept       json
// @Param        body  body  resetConfirmBody  true  "Token and new password"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/reset-confirm [post]
func (h *AuthHandler) ConfirmReset(c echo.Context) error {
	var req resetConfirmBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ConfirmReset(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
