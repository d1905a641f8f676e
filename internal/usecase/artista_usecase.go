package usecase

import (
	"context"

	"referidos/internal/domain/entity"

	"github.com/google/uuid"
)

// ArtistaUsecase defines the artist roster operations.
type ArtistaUsecase interface {
	CreateArtista(ctx context.Context, nombre string) (*entity.Artista, error)
	GetArtista(ctx context.Context, id uuid.UUID) (*entity.Artista, error)
	ListArtistas(ctx context.Context) ([]*entity.Artista, error)
	UpdateArtista(ctx context.Context, id uuid.UUID, nombre string) (*entity.Artista, error)
	SetActivo(ctx context.Context, id uuid.UUID, activo bool) (*entity.Artista, error)

	// DeleteArtista removes the artist. Coupons that reference it keep the
	// dangling reference; history is not rewritten.
	DeleteArtista(ctx context.Context, id uuid.UUID) error
}
