package postgres

import (
	"context"

	"referidos/internal/domain/entity"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	"referidos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// artistaRepository implements the domain.ArtistaRepository interface using GORM.
type artistaRepository struct {
	db *gorm.DB
}

// NewArtistaRepository is the constructor for artistaRepository.
func NewArtistaRepository(db *gorm.DB) repository.ArtistaRepository {
	return &artistaRepository{db: db}
}

// FindByID retrieves a single artist by their unique ID.
func (repo *artistaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Artista, error) {
	var artistaM model.ArtistaModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&artistaM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtistaNotFound
		}

		return nil, errors.Wrap(err, "failed to find artista by id")
	}

	return toArtistaDomain(&artistaM), nil
}

// List retrieves every artist ordered by name.
func (repo *artistaRepository) List(ctx context.Context) ([]*entity.Artista, error) {
	var artistaMs []*model.ArtistaModel
	err := repo.db.WithContext(ctx).
		Order("nombre ASC").
		Find(&artistaMs).Error
	if err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to list artistas")
	}

	artistas := make([]*entity.Artista, 0, len(artistaMs))
	for _, artistaM := range artistaMs {
		artistas = append(artistas, toArtistaDomain(artistaM))
	}

	return artistas, nil
}

// Create persists a new artist entity to the database.
func (repo *artistaRepository) Create(ctx context.Context, artista *entity.Artista) error {
	artistaM := fromArtistaDomain(artista)

	if err := repo.db.WithContext(ctx).Create(artistaM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create artista")
	}

	artista.CreatedAt = artistaM.CreatedAt
	artista.UpdatedAt = artistaM.UpdatedAt

	return nil
}

// Update modifies an existing artist entity in the database.
func (repo *artistaRepository) Update(ctx context.Context, artista *entity.Artista) error {
	artistaM := fromArtistaDomain(artista)

	if err := repo.db.WithContext(ctx).Save(artistaM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update artista")
	}

	artista.UpdatedAt = artistaM.UpdatedAt

	return nil
}

// Delete removes an artist. Coupons referencing the artist are untouched.
func (repo *artistaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ArtistaModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete artista")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArtistaNotFound
	}

	return nil
}

// toArtistaDomain maps the persistence model back to a pure domain entity.
func toArtistaDomain(artistaM *model.ArtistaModel) *entity.Artista {
	return &entity.Artista{
		ID:        artistaM.ID,
		Nombre:    artistaM.Nombre,
		Activo:    artistaM.Activo,
		CreatedAt: artistaM.CreatedAt,
		UpdatedAt: artistaM.UpdatedAt,
	}
}

// fromArtistaDomain maps a pure domain entity to the persistence model.
func fromArtistaDomain(artista *entity.Artista) *model.ArtistaModel {
	return &model.ArtistaModel{
		ID:        artista.ID,
		Nombre:    artista.Nombre,
		Activo:    artista.Activo,
		CreatedAt: artista.CreatedAt,
		UpdatedAt: artista.UpdatedAt,
	}
}
