package usecase

import (
	"context"

	"referidos/internal/domain/entity"
)

// UpdateConfiguracionInput patches the site configuration. Nil fields are
// left untouched.
type UpdateConfiguracionInput struct {
	NombreSitio        *string
	FooterTexto1       *string
	FooterTexto2       *string
	FooterTexto3       *string
	FooterTexto4       *string
	PorcentajeComision *int
}

// ConfigUsecase defines the site configuration operations.
type ConfigUsecase interface {
	// GetConfiguracion returns the stored configuration, or the built-in
	// defaults when the backing table does not exist yet.
	GetConfiguracion(ctx context.Context) (*entity.Configuracion, error)

	UpdateConfiguracion(ctx context.Context, input UpdateConfiguracionInput) (*entity.Configuracion, error)

	// UploadLogo stores the site logo and records its URL.
	UploadLogo(ctx context.Context, contentType string, data []byte) (*entity.Configuracion, error)
}
