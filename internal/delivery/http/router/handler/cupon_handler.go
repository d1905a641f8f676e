package handler

import (
	"net/http"

	"referidos/internal/delivery/http/response"
	"referidos/internal/domain/entity"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CuponHandler holds dependencies for coupon lifecycle handlers.
type CuponHandler struct {
	uc usecase.CuponUsecase
}

// NewCuponHandler is the constructor for CuponHandler, injected by Fx.
func NewCuponHandler(uc usecase.CuponUsecase) *CuponHandler {
	return &CuponHandler{uc: uc}
}

type createCuponRequest struct {
	CodigoSocio      string `json:"codigo_socio"`
	ClienteNombre    string `json:"cliente_nombre"`
	ClienteWhatsapp  string `json:"cliente_whatsapp"`
	ClienteInstagram string `json:"cliente_instagram"`
}

type cambiarEstadoRequest struct {
	Estado       string     `json:"estado" validate:"required,oneof=descargado agendado cobrado"`
	ArtistaID    *uuid.UUID `json:"artista_id"`
	ValorTatuaje *int64     `json:"valor_tatuaje"`
}

// Create handles the public coupon redemption request.
func (h *CuponHandler) Create(c echo.Context) error {
	var req createCuponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de cupón inválidos")
	}

	cupon, err := h.uc.CreateCupon(c.Request().Context(), usecase.CreateCuponInput{
		CodigoSocio:      req.CodigoSocio,
		ClienteNombre:    req.ClienteNombre,
		ClienteWhatsapp:  req.ClienteWhatsapp,
		ClienteInstagram: req.ClienteInstagram,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cupon, "Cupón generado")
}

// List handles the admin coupon listing request with optional filters.
func (h *CuponHandler) List(c echo.Context) error {
	var input usecase.ListCuponesInput
	if raw := c.QueryParam("estado"); raw != "" {
		estado := entity.EstadoCupon(raw)
		if !estado.Valid() {
			return response.BadRequest(c, "INVALID_ESTADO", "Estado de cupón inválido")
		}
		input.Estado = &estado
	}
	if raw := c.QueryParam("socio_id"); raw != "" {
		socioID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "ID de socio inválido")
		}
		input.SocioID = &socioID
	}
	if raw := c.QueryParam("artista_id"); raw != "" {
		artistaID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "ID de artista inválido")
		}
		input.ArtistaID = &artistaID
	}

	cupones, err := h.uc.ListCupones(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cupones, "")
}

// Get handles the admin coupon detail request.
func (h *CuponHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de cupón inválido")
	}

	cupon, err := h.uc.GetCupon(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cupon, "")
}

// CambiarEstado handles the admin coupon state transition request.
func (h *CuponHandler) CambiarEstado(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de cupón inválido")
	}

	var req cambiarEstadoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de estado inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cupon, err := h.uc.CambiarEstado(c.Request().Context(), id, usecase.CambiarEstadoInput{
		Estado:       entity.EstadoCupon(req.Estado),
		ArtistaID:    req.ArtistaID,
		ValorTatuaje: req.ValorTatuaje,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cupon, "Estado actualizado")
}

// QR handles the public request for a partner's coupon page QR code.
func (h *CuponHandler) QR(c echo.Context) error {
	codigo := c.Param("codigo")

	png, err := h.uc.GenerateCuponQR(c.Request().Context(), codigo)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
