package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "referidos/internal/delivery/context"
	"referidos/internal/domain/entity"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	"referidos/internal/domain/service"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ledgerService struct {
	cuponRepo repository.CuponRepository
	socioRepo repository.SocioRepository
	pagoRepo  repository.PagoRepository
	txManager repository.TransactionManager
	configUC  usecase.ConfigUsecase
	reports   service.ReportService
	logger    *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	CuponRepo repository.CuponRepository
	SocioRepo repository.SocioRepository
	PagoRepo  repository.PagoRepository
	TxManager repository.TransactionManager
	ConfigUC  usecase.ConfigUsecase
	Reports   service.ReportService
	Logger    *slog.Logger
}

// NewLedgerService creates a new commission ledger service instance
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		cuponRepo: params.CuponRepo,
		socioRepo: params.SocioRepo,
		pagoRepo:  params.PagoRepo,
		txManager: params.TxManager,
		configUC:  params.ConfigUC,
		reports:   params.Reports,
		logger:    params.Logger,
	}
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Comision computes the commission for a charged tattoo value, rounding half
// away from zero. The result is displayed to both staff and partners and must
// reconcile, so the formula never varies.
func (srv *ledgerService) Comision(valor int64, porcentaje int) int64 {
	return int64(math.Round(float64(valor) * float64(porcentaje) / 100))
}

// GetResumenSocio computes the partner's ledger summary. Earnings always
// reflect coupons currently in estado cobrado at the commission percentage
// configured right now; changing the percentage retroactively changes every
// historical total.
func (srv *ledgerService) GetResumenSocio(ctx context.Context, socioID uuid.UUID) (*usecase.ResumenSocio, error) {
	if _, err := srv.socioRepo.FindByID(ctx, socioID); err != nil {
		if errors.Is(err, repository.ErrSocioNotFound) {
			return nil, domainerrors.ErrSocioNotFound
		}

		return nil, errors.Wrap(err, "failed to find socio by id")
	}

	cfg, err := srv.configUC.GetConfiguracion(ctx)
	if err != nil {
		return nil, err
	}

	cupones, err := srv.cuponRepo.ListBySocio(ctx, socioID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cupones")
	}

	pagos, err := srv.pagoRepo.ListBySocio(ctx, socioID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pagos")
	}

	monthStart, monthEnd := monthBounds(time.Now())

	resumen := &usecase.ResumenSocio{SocioID: socioID}
	for _, cupon := range cupones {
		switch cupon.Estado {
		case entity.EstadoDescargado:
			resumen.CuponesDescargados++
		case entity.EstadoAgendado:
			resumen.CuponesAgendados++
		case entity.EstadoCobrado:
			resumen.CuponesCobrados++

			if cupon.ValorTatuaje == nil {
				continue
			}
			comision := srv.Comision(*cupon.ValorTatuaje, cfg.PorcentajeComision)
			resumen.TotalGanado += comision

			if cupon.FechaCobrado != nil && within(*cupon.FechaCobrado, monthStart, monthEnd) {
				resumen.GananciasMes += comision
			}
		}
	}

	for _, pago := range pagos {
		resumen.TotalPagado += pago.Monto
	}

	// Signed: overpaying a partner shows as a negative balance, never clamped.
	resumen.Saldo = resumen.TotalGanado - resumen.TotalPagado

	return resumen, nil
}

// RegistrarPago appends a payment to the ledger. The partner existence check
// and the insert run in one transaction so a concurrent partner delete cannot
// orphan the entry.
func (srv *ledgerService) RegistrarPago(ctx context.Context, input usecase.RegistrarPagoInput) (*entity.Pago, error) {
	if input.Monto <= 0 {
		return nil, domainerrors.NewValidationError().Add("monto", "El monto debe ser mayor a cero")
	}

	fechaPago := input.FechaPago
	if fechaPago.IsZero() {
		fechaPago = time.Now()
	}

	pago := &entity.Pago{
		ID:        uuid.New(),
		SocioID:   input.SocioID,
		Monto:     input.Monto,
		FechaPago: fechaPago,
	}
	if notas := strings.TrimSpace(input.Notas); notas != "" {
		pago.Notas = &notas
	}

	err := srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		if _, err := txRepo.NewSocioRepository().FindByID(ctx, input.SocioID); err != nil {
			if errors.Is(err, repository.ErrSocioNotFound) {
				return domainerrors.ErrSocioNotFound
			}

			return errors.Wrap(err, "failed to find socio by id")
		}

		if err := txRepo.NewPagoRepository().Create(ctx, pago); err != nil {
			return errors.Wrap(err, "failed to create pago")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("pago registered", "pagoID", pago.ID, "socioID", pago.SocioID, "monto", pago.Monto)

	return pago, nil
}

func (srv *ledgerService) ListPagos(ctx context.Context) ([]*entity.Pago, error) {
	pagos, err := srv.pagoRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Warn("pago list degraded to empty", "error", err)

		return []*entity.Pago{}, nil
	}

	return pagos, nil
}

func (srv *ledgerService) ListPagosSocio(ctx context.Context, socioID uuid.UUID) ([]*entity.Pago, error) {
	pagos, err := srv.pagoRepo.ListBySocio(ctx, socioID)
	if err != nil {
		srv.log(ctx).Warn("pago list degraded to empty", "socioID", socioID, "error", err)

		return []*entity.Pago{}, nil
	}

	return pagos, nil
}

// ExportarComisiones renders the commissions workbook: a summary row per
// partner built from the same arithmetic the portal shows.
func (srv *ledgerService) ExportarComisiones(ctx context.Context) ([]byte, error) {
	socios, err := srv.socioRepo.List(ctx, repository.SocioFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list socios")
	}

	rows := make([]service.ComisionRow, 0, len(socios))
	for _, socio := range socios {
		resumen, err := srv.GetResumenSocio(ctx, socio.ID)
		if err != nil {
			return nil, err
		}

		rows = append(rows, service.ComisionRow{
			SocioCodigo:     socio.Codigo,
			SocioNombre:     socio.NombreLocal,
			CuponesCobrados: resumen.CuponesCobrados,
			TotalComision:   resumen.TotalGanado,
			TotalPagado:     resumen.TotalPagado,
			Saldo:           resumen.Saldo,
		})
	}

	workbook, err := srv.reports.ComisionesWorkbook(rows)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build comisiones workbook")
	}

	return workbook, nil
}

// monthBounds returns the inclusive bounds of the calendar month containing t.
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	return start, end
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
