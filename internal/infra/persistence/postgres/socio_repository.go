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

// socioRepository implements the domain.SocioRepository interface using GORM.
type socioRepository struct {
	db *gorm.DB
}

// NewSocioRepository is the constructor for socioRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewSocioRepository(db *gorm.DB) repository.SocioRepository {
	return &socioRepository{db: db}
}

// FindByID retrieves a single partner by their unique ID.
func (repo *socioRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Socio, error) {
	var socioM model.SocioModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&socioM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSocioNotFound
		}

		return nil, errors.Wrap(err, "failed to find socio by id")
	}

	return toSocioDomain(&socioM), nil
}

// FindByCodigo retrieves a single partner by their referral code.
func (repo *socioRepository) FindByCodigo(ctx context.Context, codigo string) (*entity.Socio, error) {
	var socioM model.SocioModel
	err := repo.db.WithContext(ctx).
		Where("codigo = ?", codigo).
		First(&socioM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSocioNotFound
		}

		return nil, errors.Wrap(err, "failed to find socio by codigo")
	}

	return toSocioDomain(&socioM), nil
}

// FindByCredentials retrieves the partner matching the exact (codigo, pin)
// pair regardless of flags; the eligibility decision belongs to the caller.
func (repo *socioRepository) FindByCredentials(ctx context.Context, codigo, pin string) (*entity.Socio, error) {
	var socioM model.SocioModel
	err := repo.db.WithContext(ctx).
		Where("codigo = ? AND pin = ?", codigo, pin).
		First(&socioM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSocioNotFound
		}

		return nil, errors.Wrap(err, "failed to find socio by credentials")
	}

	return toSocioDomain(&socioM), nil
}

// ExistsCodigo reports whether any partner currently holds the code.
func (repo *socioRepository) ExistsCodigo(ctx context.Context, codigo string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SocioModel{}).
		Where("codigo = ?", codigo).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count socios by codigo")
	}

	return count > 0, nil
}

// List retrieves partners matching the filter, ordered by business name.
func (repo *socioRepository) List(ctx context.Context, filter repository.SocioFilter) ([]*entity.Socio, error) {
	query := repo.db.WithContext(ctx).Model(&model.SocioModel{})
	if filter.Activo != nil {
		query = query.Where("activo = ?", *filter.Activo)
	}
	if filter.Aprobado != nil {
		query = query.Where("aprobado = ?", *filter.Aprobado)
	}

	var socioMs []*model.SocioModel
	if err := query.Order("nombre_local ASC").Find(&socioMs).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to list socios")
	}

	socios := make([]*entity.Socio, 0, len(socioMs))
	for _, socioM := range socioMs {
		socios = append(socios, toSocioDomain(socioM))
	}

	return socios, nil
}

// Create persists a new partner entity to the database.
func (repo *socioRepository) Create(ctx context.Context, socio *entity.Socio) error {
	socioM := fromSocioDomain(socio)

	if err := repo.db.WithContext(ctx).Create(socioM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("codigo already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create socio")
	}

	socio.CreatedAt = socioM.CreatedAt
	socio.UpdatedAt = socioM.UpdatedAt

	return nil
}

// Update modifies an existing partner entity in the database.
func (repo *socioRepository) Update(ctx context.Context, socio *entity.Socio) error {
	socioM := fromSocioDomain(socio)

	// Save writes every column so cleared optional fields persist as NULL.
	if err := repo.db.WithContext(ctx).Save(socioM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("codigo already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update socio")
	}

	socio.UpdatedAt = socioM.UpdatedAt

	return nil
}

// Delete removes a partner permanently (hard delete, no tombstone).
func (repo *socioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.SocioModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete socio")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSocioNotFound
	}

	return nil
}

// toSocioDomain maps the persistence model back to a pure domain entity.
func toSocioDomain(socioM *model.SocioModel) *entity.Socio {
	return &entity.Socio{
		ID:              socioM.ID,
		Codigo:          socioM.Codigo,
		PIN:             socioM.PIN,
		NombreLocal:     socioM.NombreLocal,
		Direccion:       socioM.Direccion,
		NombreEncargado: socioM.NombreEncargado,
		Telefono:        socioM.Telefono,
		Instagram:       socioM.Instagram,
		Email:           socioM.Email,
		Link:            socioM.Link,
		LogoURL:         socioM.LogoURL,
		TitularCuenta:   socioM.TitularCuenta,
		RUT:             socioM.RUT,
		Banco:           socioM.Banco,
		TipoCuenta:      socioM.TipoCuenta,
		NumeroCuenta:    socioM.NumeroCuenta,
		Activo:          socioM.Activo,
		Aprobado:        socioM.Aprobado,
		CreatedAt:       socioM.CreatedAt,
		UpdatedAt:       socioM.UpdatedAt,
	}
}

// fromSocioDomain maps a pure domain entity to the persistence model.
func fromSocioDomain(socio *entity.Socio) *model.SocioModel {
	return &model.SocioModel{
		ID:              socio.ID,
		Codigo:          socio.Codigo,
		PIN:             socio.PIN,
		NombreLocal:     socio.NombreLocal,
		Direccion:       socio.Direccion,
		NombreEncargado: socio.NombreEncargado,
		Telefono:        socio.Telefono,
		Instagram:       socio.Instagram,
		Email:           socio.Email,
		Link:            socio.Link,
		LogoURL:         socio.LogoURL,
		TitularCuenta:   socio.TitularCuenta,
		RUT:             socio.RUT,
		Banco:           socio.Banco,
		TipoCuenta:      socio.TipoCuenta,
		NumeroCuenta:    socio.NumeroCuenta,
		Activo:          socio.Activo,
		Aprobado:        socio.Aprobado,
		CreatedAt:       socio.CreatedAt,
		UpdatedAt:       socio.UpdatedAt,
	}
}
