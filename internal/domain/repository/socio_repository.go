// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"referidos/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSocioNotFound is a domain-specific error returned when a partner is not found.
var ErrSocioNotFound = errors.New("socio not found")

// ErrTableNotFound is returned when the backing table does not exist yet.
// The core treats an absent table as "no data yet" on non-critical reads,
// never as a fatal condition; the decision which SQLSTATE means "missing
// table" lives in the persistence adapter, not in domain logic.
var ErrTableNotFound = errors.New("backing table not found")

// SocioFilter narrows partner listings.
type SocioFilter struct {
	Activo   *bool
	Aprobado *bool
}

// SocioRepository defines the standard operations for partner persistence.
type SocioRepository interface {
	// FindByID retrieves a single partner by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Socio, error)

	// FindByCodigo retrieves a single partner by their referral code.
	FindByCodigo(ctx context.Context, codigo string) (*entity.Socio, error)

	// FindByCredentials retrieves the partner matching the exact
	// (codigo, pin) pair regardless of flags. Returns ErrSocioNotFound when
	// no partner matches.
	FindByCredentials(ctx context.Context, codigo, pin string) (*entity.Socio, error)

	// ExistsCodigo reports whether any partner currently holds the code.
	ExistsCodigo(ctx context.Context, codigo string) (bool, error)

	// List retrieves partners matching the filter, ordered by business name.
	List(ctx context.Context, filter SocioFilter) ([]*entity.Socio, error)

	// Create persists a new partner entity to the storage.
	Create(ctx context.Context, socio *entity.Socio) error

	// Update modifies an existing partner entity in the storage.
	Update(ctx context.Context, socio *entity.Socio) error

	// Delete removes a partner permanently (hard delete, no tombstone).
	Delete(ctx context.Context, id uuid.UUID) error
}
