package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/domain"
	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// @Summary Authenticate a user and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Login credentials"
// @Success 200 {object} domain.BaseReturn[string]
// @Failure 400 {object} domain.BaseReturn[string]
// @Failure 401 {object} domain.BaseReturn[string]
// @Failure 500 {object} domain.BaseReturn[string]
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.Fail[string]("400", "Dados inválidos: corpo da requisição malformado"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.Fail[string]("400", "Dados inválidos: "+err.Error()))
	}

	ret := h.authService.Login(c.Request().Context(), req)
	return c.JSON(statusFromCode(ret.Code), ret)
}

// Register godoc
// @Summary Register a new user and sync it with the customer API
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterRequest true "Registration data"
// @Success 201 {object} domain.BaseReturn[*domain.UserData]
// @Failure 400 {object} domain.BaseReturn[*domain.UserData]
// @Failure 500 {object} domain.BaseReturn[*domain.UserData]
// @Failure 502 {object} domain.BaseReturn[*domain.UserData]
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req domain.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.Fail[*domain.UserData]("400", "Dados inválidos: corpo da requisição malformado"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.Fail[*domain.UserData]("400", "Dados inválidos: "+err.Error()))
	}

	ret := h.authService.Register(c.Request().Context(), req)
	return c.JSON(statusFromCode(ret.Code), ret)
}

// Logout godoc
// @Summary Acknowledge logout
// @Description Tokens are stateless; the caller discards the token client-side.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.BaseReturn[string]
// @Failure 500 {object} domain.BaseReturn[string]
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ret := h.authService.Logout(c.Request().Context())
	return c.JSON(statusFromCode(ret.Code), ret)
}

// statusFromCode maps an envelope code to the HTTP status it models.
func statusFromCode(code string) int {
	status, err := strconv.Atoi(code)
	if err != nil {
		return http.StatusInternalServerError
	}
	return status
}
