package handler

import (
	"net/http"

	"referidos/internal/delivery/http/middleware"
	"referidos/internal/delivery/http/response"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PortalHandler serves the authenticated partner portal. Every route reads
// the partner ID from the access token, never from the request.
type PortalHandler struct {
	ledgerUC usecase.LedgerUsecase
	cuponUC  usecase.CuponUsecase
	socioUC  usecase.SocioUsecase
}

// NewPortalHandler is the constructor for PortalHandler, injected by Fx.
func NewPortalHandler(ledgerUC usecase.LedgerUsecase, cuponUC usecase.CuponUsecase, socioUC usecase.SocioUsecase) *PortalHandler {
	return &PortalHandler{ledgerUC: ledgerUC, cuponUC: cuponUC, socioUC: socioUC}
}

// Resumen handles the partner's own ledger summary request.
func (h *PortalHandler) Resumen(c echo.Context) error {
	socioID, err := subjectID(c)
	if err != nil {
		return err
	}

	resumen, err := h.ledgerUC.GetResumenSocio(c.Request().Context(), socioID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resumen, "")
}

// Cupones handles the partner's own coupon listing request.
func (h *PortalHandler) Cupones(c echo.Context) error {
	socioID, err := subjectID(c)
	if err != nil {
		return err
	}

	cupones, err := h.cuponUC.ListCuponesSocio(c.Request().Context(), socioID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cupones, "")
}

// Perfil handles the partner's own profile request.
func (h *PortalHandler) Perfil(c echo.Context) error {
	socioID, err := subjectID(c)
	if err != nil {
		return err
	}

	socio, err := h.socioUC.GetSocio(c.Request().Context(), socioID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, socio, "")
}

// subjectID pulls the authenticated subject out of the request context. The
// auth middleware guarantees it for routes behind Authenticate.
func subjectID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.ContextSubjectID).(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "UNAUTHORIZED", "Sesión inválida")
	}

	return id, nil
}
