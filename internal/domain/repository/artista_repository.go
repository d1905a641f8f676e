package repository

import (
	"context"
	"errors"

	"referidos/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrArtistaNotFound is a domain-specific error returned when an artist is not found.
var ErrArtistaNotFound = errors.New("artista not found")

// ArtistaRepository defines the standard operations for artist persistence.
type ArtistaRepository interface {
	// FindByID retrieves a single artist by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Artista, error)

	// List retrieves every artist ordered by name.
	List(ctx context.Context) ([]*entity.Artista, error)

	// Create persists a new artist entity to the storage.
	Create(ctx context.Context, artista *entity.Artista) error

	// Update modifies an existing artist entity in the storage.
	Update(ctx context.Context, artista *entity.Artista) error

	// Delete removes an artist. Coupons referencing the artist keep their
	// reference; historical rows are not rewritten.
	Delete(ctx context.Context, id uuid.UUID) error
}
