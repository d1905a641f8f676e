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

// pagoRepository implements the domain.PagoRepository interface using GORM.
// The pagos table is append-only; no update or delete is ever issued.
type pagoRepository struct {
	db *gorm.DB
}

// NewPagoRepository is the constructor for pagoRepository.
func NewPagoRepository(db *gorm.DB) repository.PagoRepository {
	return &pagoRepository{db: db}
}

// List retrieves every payment, newest payment date first.
func (repo *pagoRepository) List(ctx context.Context) ([]*entity.Pago, error) {
	var pagoMs []*model.PagoModel
	err := repo.db.WithContext(ctx).
		Order("fecha_pago DESC").
		Find(&pagoMs).Error
	if err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to list pagos")
	}

	return toPagoDomainSlice(pagoMs), nil
}

// ListBySocio retrieves every payment recorded for a partner, newest first.
func (repo *pagoRepository) ListBySocio(ctx context.Context, socioID uuid.UUID) ([]*entity.Pago, error) {
	var pagoMs []*model.PagoModel
	err := repo.db.WithContext(ctx).
		Where("socio_id = ?", socioID).
		Order("fecha_pago DESC").
		Find(&pagoMs).Error
	if err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to list pagos by socio")
	}

	return toPagoDomainSlice(pagoMs), nil
}

// Create appends a new payment entry.
func (repo *pagoRepository) Create(ctx context.Context, pago *entity.Pago) error {
	pagoM := fromPagoDomain(pago)

	if err := repo.db.WithContext(ctx).Create(pagoM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create pago")
	}

	pago.CreatedAt = pagoM.CreatedAt

	return nil
}

func toPagoDomainSlice(pagoMs []*model.PagoModel) []*entity.Pago {
	pagos := make([]*entity.Pago, 0, len(pagoMs))
	for _, pagoM := range pagoMs {
		pagos = append(pagos, toPagoDomain(pagoM))
	}

	return pagos
}

// toPagoDomain maps the persistence model back to a pure domain entity.
func toPagoDomain(pagoM *model.PagoModel) *entity.Pago {
	return &entity.Pago{
		ID:        pagoM.ID,
		SocioID:   pagoM.SocioID,
		Monto:     pagoM.Monto,
		FechaPago: pagoM.FechaPago,
		Notas:     pagoM.Notas,
		CreatedAt: pagoM.CreatedAt,
	}
}

// fromPagoDomain maps a pure domain entity to the persistence model.
func fromPagoDomain(pago *entity.Pago) *model.PagoModel {
	return &model.PagoModel{
		ID:        pago.ID,
		SocioID:   pago.SocioID,
		Monto:     pago.Monto,
		FechaPago: pago.FechaPago,
		Notas:     pago.Notas,
		CreatedAt: pago.CreatedAt,
	}
}
