package repository

import (
	"context"
	"errors"

	"referidos/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCuponNotFound is a domain-specific error returned when a coupon is not found.
var ErrCuponNotFound = errors.New("cupon not found")

// CuponFilter narrows coupon listings.
type CuponFilter struct {
	Estado    *entity.EstadoCupon
	SocioID   *uuid.UUID
	ArtistaID *uuid.UUID
}

// CuponRepository defines the standard operations for coupon persistence.
// Coupons are never deleted in normal operation, so no Delete is exposed.
type CuponRepository interface {
	// FindByID retrieves a single coupon by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cupon, error)

	// List retrieves coupons matching the filter, newest download first.
	List(ctx context.Context, filter CuponFilter) ([]*entity.Cupon, error)

	// ListBySocio retrieves every coupon issued by a partner, newest first.
	ListBySocio(ctx context.Context, socioID uuid.UUID) ([]*entity.Cupon, error)

	// Create persists a new coupon entity to the storage.
	Create(ctx context.Context, cupon *entity.Cupon) error

	// Update persists the full field set of a coupon in a single statement,
	// so a state transition is applied atomically: either every field of the
	// target state commits together, or none do.
	Update(ctx context.Context, cupon *entity.Cupon) error
}
