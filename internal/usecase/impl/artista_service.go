package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "referidos/internal/delivery/context"
	"referidos/internal/domain/entity"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type artistaService struct {
	artistaRepo repository.ArtistaRepository
	logger      *slog.Logger
}

// ArtistaServiceParams holds dependencies for ArtistaService, injected by Fx.
type ArtistaServiceParams struct {
	fx.In

	ArtistaRepo repository.ArtistaRepository
	Logger      *slog.Logger
}

// NewArtistaService creates a new artist roster service instance
func NewArtistaService(params ArtistaServiceParams) usecase.ArtistaUsecase {
	return &artistaService{
		artistaRepo: params.ArtistaRepo,
		logger:      params.Logger,
	}
}

func (srv *artistaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *artistaService) CreateArtista(ctx context.Context, nombre string) (*entity.Artista, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, domainerrors.NewValidationError().Add("nombre", "El nombre es obligatorio")
	}

	artista := &entity.Artista{
		ID:     uuid.New(),
		Nombre: nombre,
		Activo: true,
	}

	if err := srv.artistaRepo.Create(ctx, artista); err != nil {
		return nil, errors.Wrap(err, "failed to create artista")
	}

	srv.log(ctx).Info("artista created", "artistaID", artista.ID)

	return artista, nil
}

func (srv *artistaService) GetArtista(ctx context.Context, id uuid.UUID) (*entity.Artista, error) {
	artista, err := srv.artistaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistaNotFound) {
			return nil, domainerrors.ErrArtistaNotFound
		}

		return nil, errors.Wrap(err, "failed to find artista by id")
	}

	return artista, nil
}

func (srv *artistaService) ListArtistas(ctx context.Context) ([]*entity.Artista, error) {
	artistas, err := srv.artistaRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Warn("artista list degraded to empty", "error", err)

		return []*entity.Artista{}, nil
	}

	return artistas, nil
}

func (srv *artistaService) UpdateArtista(ctx context.Context, id uuid.UUID, nombre string) (*entity.Artista, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, domainerrors.NewValidationError().Add("nombre", "El nombre es obligatorio")
	}

	artista, err := srv.GetArtista(ctx, id)
	if err != nil {
		return nil, err
	}

	artista.Nombre = nombre
	if err := srv.artistaRepo.Update(ctx, artista); err != nil {
		return nil, errors.Wrap(err, "failed to update artista")
	}

	return artista, nil
}

func (srv *artistaService) SetActivo(ctx context.Context, id uuid.UUID, activo bool) (*entity.Artista, error) {
	artista, err := srv.GetArtista(ctx, id)
	if err != nil {
		return nil, err
	}

	artista.Activo = activo
	if err := srv.artistaRepo.Update(ctx, artista); err != nil {
		return nil, errors.Wrap(err, "failed to update artista activo")
	}

	return artista, nil
}

// DeleteArtista removes the artist. Coupons keep their reference; history is
// not rewritten, the admin screens simply show an unknown artist.
func (srv *artistaService) DeleteArtista(ctx context.Context, id uuid.UUID) error {
	if err := srv.artistaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrArtistaNotFound) {
			return domainerrors.ErrArtistaNotFound
		}

		return errors.Wrap(err, "failed to delete artista")
	}

	srv.log(ctx).Info("artista deleted", "artistaID", id)

	return nil
}
