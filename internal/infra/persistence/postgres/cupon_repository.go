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

// cuponRepository implements the domain.CuponRepository interface using GORM.
type cuponRepository struct {
	db *gorm.DB
}

// NewCuponRepository is the constructor for cuponRepository.
func NewCuponRepository(db *gorm.DB) repository.CuponRepository {
	return &cuponRepository{db: db}
}

// FindByID retrieves a single coupon by its unique ID.
func (repo *cuponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cupon, error) {
	var cuponM model.CuponModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cuponM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCuponNotFound
		}

		return nil, errors.Wrap(err, "failed to find cupon by id")
	}

	return toCuponDomain(&cuponM), nil
}

// List retrieves coupons matching the filter, newest download first.
func (repo *cuponRepository) List(ctx context.Context, filter repository.CuponFilter) ([]*entity.Cupon, error) {
	query := repo.db.WithContext(ctx).Model(&model.CuponModel{})
	if filter.Estado != nil {
		query = query.Where("estado = ?", string(*filter.Estado))
	}
	if filter.SocioID != nil {
		query = query.Where("socio_id = ?", *filter.SocioID)
	}
	if filter.ArtistaID != nil {
		query = query.Where("artista_id = ?", *filter.ArtistaID)
	}

	var cuponMs []*model.CuponModel
	if err := query.Order("fecha_descarga DESC").Find(&cuponMs).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to list cupones")
	}

	return toCuponDomainSlice(cuponMs), nil
}

// ListBySocio retrieves every coupon issued by a partner, newest first.
func (repo *cuponRepository) ListBySocio(ctx context.Context, socioID uuid.UUID) ([]*entity.Cupon, error) {
	var cuponMs []*model.CuponModel
	err := repo.db.WithContext(ctx).
		Where("socio_id = ?", socioID).
		Order("fecha_descarga DESC").
		Find(&cuponMs).Error
	if err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to list cupones by socio")
	}

	return toCuponDomainSlice(cuponMs), nil
}

// Create persists a new coupon entity to the database.
func (repo *cuponRepository) Create(ctx context.Context, cupon *entity.Cupon) error {
	cuponM := fromCuponDomain(cupon)

	if err := repo.db.WithContext(ctx).Create(cuponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("cupon codigo already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cupon")
	}

	cupon.CreatedAt = cuponM.CreatedAt
	cupon.UpdatedAt = cuponM.UpdatedAt

	return nil
}

// Update persists the full field set of a coupon in a single statement. Save
// writes every column, so a state transition either lands whole or not at
// all; no partially-updated coupon is ever observable.
func (repo *cuponRepository) Update(ctx context.Context, cupon *entity.Cupon) error {
	cuponM := fromCuponDomain(cupon)

	if err := repo.db.WithContext(ctx).Save(cuponM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cupon")
	}

	cupon.UpdatedAt = cuponM.UpdatedAt

	return nil
}

func toCuponDomainSlice(cuponMs []*model.CuponModel) []*entity.Cupon {
	cupones := make([]*entity.Cupon, 0, len(cuponMs))
	for _, cuponM := range cuponMs {
		cupones = append(cupones, toCuponDomain(cuponM))
	}

	return cupones
}

// toCuponDomain maps the persistence model back to a pure domain entity.
func toCuponDomain(cuponM *model.CuponModel) *entity.Cupon {
	return &entity.Cupon{
		ID:               cuponM.ID,
		Codigo:           cuponM.Codigo,
		SocioID:          cuponM.SocioID,
		ClienteNombre:    cuponM.ClienteNombre,
		ClienteWhatsapp:  cuponM.ClienteWhatsapp,
		ClienteInstagram: cuponM.ClienteInstagram,
		Estado:           entity.EstadoCupon(cuponM.Estado),
		FechaDescarga:    cuponM.FechaDescarga,
		FechaAgendado:    cuponM.FechaAgendado,
		FechaCobrado:     cuponM.FechaCobrado,
		ArtistaID:        cuponM.ArtistaID,
		ValorTatuaje:     cuponM.ValorTatuaje,
		CreatedAt:        cuponM.CreatedAt,
		UpdatedAt:        cuponM.UpdatedAt,
	}
}

// fromCuponDomain maps a pure domain entity to the persistence model.
func fromCuponDomain(cupon *entity.Cupon) *model.CuponModel {
	return &model.CuponModel{
		ID:               cupon.ID,
		Codigo:           cupon.Codigo,
		SocioID:          cupon.SocioID,
		ClienteNombre:    cupon.ClienteNombre,
		ClienteWhatsapp:  cupon.ClienteWhatsapp,
		ClienteInstagram: cupon.ClienteInstagram,
		Estado:           string(cupon.Estado),
		FechaDescarga:    cupon.FechaDescarga,
		FechaAgendado:    cupon.FechaAgendado,
		FechaCobrado:     cupon.FechaCobrado,
		ArtistaID:        cupon.ArtistaID,
		ValorTatuaje:     cupon.ValorTatuaje,
		CreatedAt:        cupon.CreatedAt,
		UpdatedAt:        cupon.UpdatedAt,
	}
}
