package handler

import (
	"net/http"

	"referidos/internal/delivery/http/response"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ArtistaHandler holds dependencies for artist directory handlers.
type ArtistaHandler struct {
	uc usecase.ArtistaUsecase
}

// NewArtistaHandler is the constructor for ArtistaHandler, injected by Fx.
func NewArtistaHandler(uc usecase.ArtistaUsecase) *ArtistaHandler {
	return &ArtistaHandler{uc: uc}
}

type artistaRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

// Create handles the admin artist creation request.
func (h *ArtistaHandler) Create(c echo.Context) error {
	var req artistaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de artista inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	artista, err := h.uc.CreateArtista(c.Request().Context(), req.Nombre)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, artista, "Artista creado")
}

// List handles the admin artist listing request.
func (h *ArtistaHandler) List(c echo.Context) error {
	artistas, err := h.uc.ListArtistas(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artistas, "")
}

// Get handles the admin artist detail request.
func (h *ArtistaHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de artista inválido")
	}

	artista, err := h.uc.GetArtista(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artista, "")
}

// Update handles the admin artist rename request.
func (h *ArtistaHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de artista inválido")
	}

	var req artistaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de artista inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	artista, err := h.uc.UpdateArtista(c.Request().Context(), id, req.Nombre)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artista, "Artista actualizado")
}

// SetActivo handles the admin artist activation toggle request.
func (h *ArtistaHandler) SetActivo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de artista inválido")
	}

	var req setFlagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos inválidos")
	}

	artista, err := h.uc.SetActivo(c.Request().Context(), id, req.Valor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artista, "Activación actualizada")
}

// Delete handles the admin artist deletion request.
func (h *ArtistaHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de artista inválido")
	}

	if err := h.uc.DeleteArtista(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Artista eliminado")
}
