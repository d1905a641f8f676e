package handler

import (
	"fmt"
	"net/http"
	"time"

	"referidos/internal/delivery/http/response"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// xlsxContentType is the MIME type for Office Open XML spreadsheets.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PagoHandler holds dependencies for commission ledger handlers.
type PagoHandler struct {
	uc usecase.LedgerUsecase
}

// NewPagoHandler is the constructor for PagoHandler, injected by Fx.
func NewPagoHandler(uc usecase.LedgerUsecase) *PagoHandler {
	return &PagoHandler{uc: uc}
}

type registrarPagoRequest struct {
	SocioID   uuid.UUID  `json:"socio_id" validate:"required"`
	Monto     int64      `json:"monto" validate:"required,gt=0"`
	FechaPago *time.Time `json:"fecha_pago"`
	Notas     string     `json:"notas"`
}

// Registrar handles the admin payment registration request.
func (h *PagoHandler) Registrar(c echo.Context) error {
	var req registrarPagoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de pago inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.RegistrarPagoInput{
		SocioID: req.SocioID,
		Monto:   req.Monto,
		Notas:   req.Notas,
	}
	if req.FechaPago != nil {
		input.FechaPago = *req.FechaPago
	}

	pago, err := h.uc.RegistrarPago(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pago, "Pago registrado")
}

// List handles the admin payment listing request, optionally filtered by
// partner.
func (h *PagoHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if raw := c.QueryParam("socio_id"); raw != "" {
		socioID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "ID de socio inválido")
		}

		pagos, err := h.uc.ListPagosSocio(ctx, socioID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, pagos, "")
	}

	pagos, err := h.uc.ListPagos(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pagos, "")
}

// Resumen handles the admin per-partner balance summary request.
func (h *PagoHandler) Resumen(c echo.Context) error {
	socioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de socio inválido")
	}

	resumen, err := h.uc.GetResumenSocio(c.Request().Context(), socioID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resumen, "")
}

// ExportarComisiones handles the admin commission report download request.
func (h *PagoHandler) ExportarComisiones(c echo.Context) error {
	workbook, err := h.uc.ExportarComisiones(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	filename := fmt.Sprintf("comisiones-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.Blob(http.StatusOK, xlsxContentType, workbook)
}
