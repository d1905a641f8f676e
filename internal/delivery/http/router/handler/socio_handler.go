package handler

import (
	"context"
	"io"
	"net/http"

	"referidos/internal/delivery/http/response"
	"referidos/internal/domain/entity"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxLogoBytes caps uploaded logo size.
const maxLogoBytes = 5 << 20

// SocioHandler holds dependencies for partner directory handlers.
type SocioHandler struct {
	uc usecase.SocioUsecase
}

// NewSocioHandler is the constructor for SocioHandler, injected by Fx.
func NewSocioHandler(uc usecase.SocioUsecase) *SocioHandler {
	return &SocioHandler{uc: uc}
}

// socioRequest carries the partner profile fields. Field-level validation
// lives in the usecase so every violation is reported at once, not just the
// first one the binder sees.
type socioRequest struct {
	NombreLocal     string `json:"nombre_local"`
	Direccion       string `json:"direccion"`
	NombreEncargado string `json:"nombre_encargado"`
	Telefono        string `json:"telefono"`
	Instagram       string `json:"instagram"`
	Email           string `json:"email"`
	Link            string `json:"link"`
	TitularCuenta   string `json:"titular_cuenta"`
	RUT             string `json:"rut"`
	Banco           string `json:"banco"`
	TipoCuenta      string `json:"tipo_cuenta"`
	NumeroCuenta    string `json:"numero_cuenta"`
}

func (req *socioRequest) toInput() usecase.SocioInput {
	return usecase.SocioInput{
		NombreLocal:     req.NombreLocal,
		Direccion:       req.Direccion,
		NombreEncargado: req.NombreEncargado,
		Telefono:        req.Telefono,
		Instagram:       req.Instagram,
		Email:           req.Email,
		Link:            req.Link,
		TitularCuenta:   req.TitularCuenta,
		RUT:             req.RUT,
		Banco:           req.Banco,
		TipoCuenta:      req.TipoCuenta,
		NumeroCuenta:    req.NumeroCuenta,
	}
}

type createSocioRequest struct {
	socioRequest
	Activo   *bool `json:"activo"`
	Aprobado *bool `json:"aprobado"`
}

type updateSocioRequest struct {
	NombreLocal     *string `json:"nombre_local"`
	Direccion       *string `json:"direccion"`
	NombreEncargado *string `json:"nombre_encargado"`
	Telefono        *string `json:"telefono"`
	Instagram       *string `json:"instagram"`
	Email           *string `json:"email"`
	Link            *string `json:"link"`
	TitularCuenta   *string `json:"titular_cuenta"`
	RUT             *string `json:"rut"`
	Banco           *string `json:"banco"`
	TipoCuenta      *string `json:"tipo_cuenta"`
	NumeroCuenta    *string `json:"numero_cuenta"`
}

type setFlagRequest struct {
	Valor bool `json:"valor"`
}

// Create handles the admin partner creation request.
func (h *SocioHandler) Create(c echo.Context) error {
	var req createSocioRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de socio inválidos")
	}

	output, err := h.uc.CreateSocio(c.Request().Context(), usecase.CreateSocioInput{
		SocioInput: req.toInput(),
		Activo:     req.Activo,
		Aprobado:   req.Aprobado,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Socio creado")
}

// Register handles the public partner self-registration request.
func (h *SocioHandler) Register(c echo.Context) error {
	var req socioRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de socio inválidos")
	}

	output, err := h.uc.RegisterSocio(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Solicitud registrada")
}

// List handles the admin partner listing request.
func (h *SocioHandler) List(c echo.Context) error {
	var input usecase.ListSociosInput
	if raw := c.QueryParam("activo"); raw != "" {
		activo := raw == "true"
		input.Activo = &activo
	}
	if raw := c.QueryParam("aprobado"); raw != "" {
		aprobado := raw == "true"
		input.Aprobado = &aprobado
	}

	socios, err := h.uc.ListSocios(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, socios, "")
}

// Get handles the admin partner detail request.
func (h *SocioHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de socio inválido")
	}

	socio, err := h.uc.GetSocio(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, socio, "")
}

// Update handles the admin partner update request.
func (h *SocioHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de socio inválido")
	}

	var req updateSocioRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de socio inválidos")
	}

	socio, err := h.uc.UpdateSocio(c.Request().Context(), id, usecase.UpdateSocioInput{
		NombreLocal:     req.NombreLocal,
		Direccion:       req.Direccion,
		NombreEncargado: req.NombreEncargado,
		Telefono:        req.Telefono,
		Instagram:       req.Instagram,
		Email:           req.Email,
		Link:            req.Link,
		TitularCuenta:   req.TitularCuenta,
		RUT:             req.RUT,
		Banco:           req.Banco,
		TipoCuenta:      req.TipoCuenta,
		NumeroCuenta:    req.NumeroCuenta,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, socio, "Socio actualizado")
}

// Delete handles the admin partner deletion request.
func (h *SocioHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de socio inválido")
	}

	if err := h.uc.DeleteSocio(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Socio eliminado")
}

// SetAprobado handles the admin approval toggle request.
func (h *SocioHandler) SetAprobado(c echo.Context) error {
	return h.setFlag(c, h.uc.SetAprobado, "Aprobación actualizada")
}

// SetActivo handles the admin activation toggle request.
func (h *SocioHandler) SetActivo(c echo.Context) error {
	return h.setFlag(c, h.uc.SetActivo, "Activación actualizada")
}

func (h *SocioHandler) setFlag(c echo.Context, set func(ctx context.Context, id uuid.UUID, valor bool) (*entity.Socio, error), message string) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de socio inválido")
	}

	var req setFlagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos inválidos")
	}

	socio, err := set(c.Request().Context(), id, req.Valor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, socio, message)
}

// RegenerateCredenciales handles the admin credential regeneration request.
func (h *SocioHandler) RegenerateCredenciales(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de socio inválido")
	}

	output, err := h.uc.RegenerateCredenciales(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Credenciales regeneradas")
}

// UploadLogo handles the admin partner logo upload request.
func (h *SocioHandler) UploadLogo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de socio inválido")
	}

	contentType, data, err := readUpload(c, "logo")
	if err != nil {
		return err
	}

	socio, err := h.uc.UploadLogo(c.Request().Context(), id, contentType, data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, socio, "Logo actualizado")
}

// readUpload extracts a single multipart file field.
func readUpload(c echo.Context, field string) (contentType string, data []byte, err error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, response.BadRequest(c, "INVALID_INPUT", "Falta el archivo a subir")
	}
	if fileHeader.Size > maxLogoBytes {
		return "", nil, response.BadRequest(c, "FILE_TOO_LARGE", "El archivo supera el tamaño máximo")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to open upload")
	}
	defer file.Close()

	data, err = io.ReadAll(io.LimitReader(file, maxLogoBytes))
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to read upload")
	}

	return fileHeader.Header.Get("Content-Type"), data, nil
}
