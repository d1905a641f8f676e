package handler

import (
	"net/http"

	"referidos/internal/delivery/http/response"
	"referidos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConfigHandler holds dependencies for site configuration handlers.
type ConfigHandler struct {
	uc usecase.ConfigUsecase
}

// NewConfigHandler is the constructor for ConfigHandler, injected by Fx.
func NewConfigHandler(uc usecase.ConfigUsecase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

type updateConfigRequest struct {
	NombreSitio        *string `json:"nombre_sitio"`
	FooterTexto1       *string `json:"footer_texto_1"`
	FooterTexto2       *string `json:"footer_texto_2"`
	FooterTexto3       *string `json:"footer_texto_3"`
	FooterTexto4       *string `json:"footer_texto_4"`
	PorcentajeComision *int    `json:"porcentaje_comision"`
}

// Get handles the configuration read request. It backs both the public site
// chrome and the admin settings page.
func (h *ConfigHandler) Get(c echo.Context) error {
	cfg, err := h.uc.GetConfiguracion(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cfg, "")
}

// Update handles the admin configuration update request.
func (h *ConfigHandler) Update(c echo.Context) error {
	var req updateConfigRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de configuración inválidos")
	}

	cfg, err := h.uc.UpdateConfiguracion(c.Request().Context(), usecase.UpdateConfiguracionInput{
		NombreSitio:        req.NombreSitio,
		FooterTexto1:       req.FooterTexto1,
		FooterTexto2:       req.FooterTexto2,
		FooterTexto3:       req.FooterTexto3,
		FooterTexto4:       req.FooterTexto4,
		PorcentajeComision: req.PorcentajeComision,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cfg, "Configuración actualizada")
}

// UploadLogo handles the admin site logo upload request.
func (h *ConfigHandler) UploadLogo(c echo.Context) error {
	contentType, data, err := readUpload(c, "logo")
	if err != nil {
		return err
	}

	cfg, err := h.uc.UploadLogo(c.Request().Context(), contentType, data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cfg, "Logo actualizado")
}
