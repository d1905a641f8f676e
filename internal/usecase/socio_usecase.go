// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"referidos/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SocioInput carries the editable fields of a partner profile. It is shared
// by the admin create and the public self-registration paths.
type SocioInput struct {
	NombreLocal     string
	Direccion       string
	NombreEncargado string
	Telefono        string
	Instagram       string
	Email           string
	Link            string
	TitularCuenta   string
	RUT             string
	Banco           string
	TipoCuenta      string
	NumeroCuenta    string
}

// CreateSocioInput is the admin creation payload; flags default to true when nil.
type CreateSocioInput struct {
	SocioInput
	Activo   *bool
	Aprobado *bool
}

// UpdateSocioInput patches an existing partner. Nil fields are left untouched.
type UpdateSocioInput struct {
	NombreLocal     *string
	Direccion       *string
	NombreEncargado *string
	Telefono        *string
	Instagram       *string
	Email           *string
	Link            *string
	TitularCuenta   *string
	RUT             *string
	Banco           *string
	TipoCuenta      *string
	NumeroCuenta    *string
}

// ListSociosInput filters the partner listing.
type ListSociosInput struct {
	Activo   *bool
	Aprobado *bool
}

// --- Output DTOs ---

// CreateSocioOutput returns the created partner along with the assigned
// credentials, so the admin can hand them to the partner.
type CreateSocioOutput struct {
	Socio *entity.Socio
	PIN   string
}

// SocioUsecase defines the partner directory operations.
// This is the contract that the delivery layer depends on.
type SocioUsecase interface {
	// CreateSocio registers a partner from the admin panel.
	CreateSocio(ctx context.Context, input CreateSocioInput) (*CreateSocioOutput, error)

	// RegisterSocio registers a partner from the public form. The partner
	// starts unapproved and inactive until an admin toggles both flags.
	RegisterSocio(ctx context.Context, input SocioInput) (*CreateSocioOutput, error)

	GetSocio(ctx context.Context, id uuid.UUID) (*entity.Socio, error)
	GetSocioByCodigo(ctx context.Context, codigo string) (*entity.Socio, error)

	// ListSocios returns matching partners. Infrastructure read failures
	// degrade to an empty list so the admin panel keeps rendering.
	ListSocios(ctx context.Context, input ListSociosInput) ([]*entity.Socio, error)

	UpdateSocio(ctx context.Context, id uuid.UUID, input UpdateSocioInput) (*entity.Socio, error)
	DeleteSocio(ctx context.Context, id uuid.UUID) error

	// SetAprobado and SetActivo write the flag idempotently. The matching
	// notification email is sent only when the flag flips from false to
	// true, after the write has been persisted; a send failure is logged
	// and never rolls the write back.
	SetAprobado(ctx context.Context, id uuid.UUID, aprobado bool) (*entity.Socio, error)
	SetActivo(ctx context.Context, id uuid.UUID, activo bool) (*entity.Socio, error)

	// RegenerateCredenciales assigns a fresh codigo and PIN to the partner.
	RegenerateCredenciales(ctx context.Context, id uuid.UUID) (*CreateSocioOutput, error)

	// UploadLogo stores the image and records its URL on the partner.
	UploadLogo(ctx context.Context, id uuid.UUID, contentType string, data []byte) (*entity.Socio, error)
}
