package usecase

import (
	"context"

	"referidos/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCuponInput is the public coupon redemption payload. The partner is
// identified by codigo since the public page never sees internal IDs.
type CreateCuponInput struct {
	CodigoSocio      string
	ClienteNombre    string
	ClienteWhatsapp  string
	ClienteInstagram string
}

// CambiarEstadoInput moves a coupon to a target state. ArtistaID and
// ValorTatuaje are consulted only for the states that require them.
type CambiarEstadoInput struct {
	Estado       entity.EstadoCupon
	ArtistaID    *uuid.UUID
	ValorTatuaje *int64
}

// ListCuponesInput filters the coupon listing.
type ListCuponesInput struct {
	Estado    *entity.EstadoCupon
	SocioID   *uuid.UUID
	ArtistaID *uuid.UUID
}

// CuponUsecase defines the coupon lifecycle operations.
type CuponUsecase interface {
	// CreateCupon is the only coupon creation path. The partner must be
	// active and approved; the coupon starts in estado descargado.
	CreateCupon(ctx context.Context, input CreateCuponInput) (*entity.Cupon, error)

	GetCupon(ctx context.Context, id uuid.UUID) (*entity.Cupon, error)

	ListCupones(ctx context.Context, input ListCuponesInput) ([]*entity.Cupon, error)
	ListCuponesSocio(ctx context.Context, socioID uuid.UUID) ([]*entity.Cupon, error)

	// CambiarEstado applies the transition table for the target state and
	// persists the whole field patch in a single update.
	CambiarEstado(ctx context.Context, id uuid.UUID, input CambiarEstadoInput) (*entity.Cupon, error)

	// GenerateCuponQR renders the QR PNG pointing at the partner's public
	// coupon page.
	GenerateCuponQR(ctx context.Context, codigoSocio string) ([]byte, error)
}
