package handler

import (
	"net/http"

	"referidos/internal/delivery/http/response"
	"referidos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for login handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type socioLoginRequest struct {
	Codigo string `json:"codigo" validate:"required,len=6"`
	PIN    string `json:"pin" validate:"required,len=6,numeric"`
}

// LoginAdmin handles the administrator login request.
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de acceso inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.LoginAdmin(c.Request().Context(), usecase.AdminLoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// LoginSocio handles the partner portal login request.
func (h *AuthHandler) LoginSocio(c echo.Context) error {
	var req socioLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de acceso inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.LoginSocio(c.Request().Context(), usecase.SocioLoginInput{
		Codigo: req.Codigo,
		PIN:    req.PIN,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}
