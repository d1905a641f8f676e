package impl

import (
	"context"
	"testing"
	"time"

	"referidos/internal/domain/entity"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	"referidos/internal/domain/service"
	mockRepo "referidos/internal/mocks/repository"
	mockSvc "referidos/internal/mocks/service"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ledgerServiceMocks struct {
	cuponRepo *mockRepo.MockCuponRepository
	socioRepo *mockRepo.MockSocioRepository
	pagoRepo  *mockRepo.MockPagoRepository
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	configUC  *stubConfigUsecase
	reports   *mockSvc.MockReportService
}

// stubConfigUsecase serves a fixed configuration; the ledger only reads the
// commission percentage from it.
type stubConfigUsecase struct {
	cfg *entity.Configuracion
}

func (s *stubConfigUsecase) GetConfiguracion(context.Context) (*entity.Configuracion, error) {
	return s.cfg, nil
}

func (s *stubConfigUsecase) UpdateConfiguracion(context.Context, usecase.UpdateConfiguracionInput) (*entity.Configuracion, error) {
	return s.cfg, nil
}

func (s *stubConfigUsecase) UploadLogo(context.Context, string, []byte) (*entity.Configuracion, error) {
	return s.cfg, nil
}

func newLedgerServiceForTest(t *testing.T, porcentaje int) (usecase.LedgerUsecase, *ledgerServiceMocks) {
	cfg := entity.DefaultConfiguracion()
	cfg.PorcentajeComision = porcentaje

	m := &ledgerServiceMocks{
		cuponRepo: mockRepo.NewMockCuponRepository(t),
		socioRepo: mockRepo.NewMockSocioRepository(t),
		pagoRepo:  mockRepo.NewMockPagoRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		configUC:  &stubConfigUsecase{cfg: cfg},
		reports:   mockSvc.NewMockReportService(t),
	}

	svc := NewLedgerService(LedgerServiceParams{
		CuponRepo: m.cuponRepo,
		SocioRepo: m.socioRepo,
		PagoRepo:  m.pagoRepo,
		TxManager: m.txManager,
		ConfigUC:  m.configUC,
		Reports:   m.reports,
		Logger:    newDiscardLogger(),
	})

	return svc, m
}

func TestLedgerService_Comision_Rounding(t *testing.T) {
	svc, _ := newLedgerServiceForTest(t, 10)

	tests := []struct {
		name       string
		valor      int64
		porcentaje int
		expected   int64
	}{
		{name: "exact", valor: 100000, porcentaje: 10, expected: 10000},
		{name: "rounds up", valor: 99999, porcentaje: 10, expected: 10000},
		{name: "rounds down", valor: 99994, porcentaje: 10, expected: 9999},
		{name: "half rounds away from zero", valor: 15, porcentaje: 10, expected: 2},
		{name: "full percentage", valor: 12345, porcentaje: 100, expected: 12345},
		{name: "zero value", valor: 0, porcentaje: 10, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.Comision(tt.valor, tt.porcentaje))
		})
	}
}

func cobradoAt(socioID uuid.UUID, valor int64, fecha time.Time) *entity.Cupon {
	return &entity.Cupon{
		ID:           uuid.New(),
		SocioID:      socioID,
		Estado:       entity.EstadoCobrado,
		FechaCobrado: &fecha,
		ValorTatuaje: &valor,
	}
}

func TestLedgerService_GetResumenSocio(t *testing.T) {
	svc, m := newLedgerServiceForTest(t, 10)
	ctx := context.Background()
	socio := activeSocio()

	now := time.Now()
	monthStart, _ := monthBounds(now)
	lastMonth := monthStart.Add(-time.Hour)

	cupones := []*entity.Cupon{
		{ID: uuid.New(), SocioID: socio.ID, Estado: entity.EstadoDescargado},
		{ID: uuid.New(), SocioID: socio.ID, Estado: entity.EstadoAgendado},
		cobradoAt(socio.ID, 100000, now),
		cobradoAt(socio.ID, 50000, lastMonth),
	}
	pagos := []*entity.Pago{
		{ID: uuid.New(), SocioID: socio.ID, Monto: 5000, FechaPago: lastMonth},
	}

	m.socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)
	m.cuponRepo.EXPECT().ListBySocio(ctx, socio.ID).Return(cupones, nil)
	m.pagoRepo.EXPECT().ListBySocio(ctx, socio.ID).Return(pagos, nil)

	resumen, err := svc.GetResumenSocio(ctx, socio.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, resumen.CuponesDescargados)
	assert.Equal(t, 1, resumen.CuponesAgendados)
	assert.Equal(t, 2, resumen.CuponesCobrados)
	assert.Equal(t, int64(15000), resumen.TotalGanado)
	assert.Equal(t, int64(10000), resumen.GananciasMes)
	assert.Equal(t, int64(5000), resumen.TotalPagado)
	assert.Equal(t, int64(10000), resumen.Saldo)
}

func TestLedgerService_GetResumenSocio_NegativeBalance(t *testing.T) {
	svc, m := newLedgerServiceForTest(t, 10)
	ctx := context.Background()
	socio := activeSocio()

	cupones := []*entity.Cupon{cobradoAt(socio.ID, 100000, time.Now())}
	pagos := []*entity.Pago{
		{ID: uuid.New(), SocioID: socio.ID, Monto: 15000, FechaPago: time.Now()},
	}

	m.socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)
	m.cuponRepo.EXPECT().ListBySocio(ctx, socio.ID).Return(cupones, nil)
	m.pagoRepo.EXPECT().ListBySocio(ctx, socio.ID).Return(pagos, nil)

	resumen, err := svc.GetResumenSocio(ctx, socio.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-5000), resumen.Saldo)
}

func TestLedgerService_GetResumenSocio_SkipsCobradoWithoutValor(t *testing.T) {
	svc, m := newLedgerServiceForTest(t, 10)
	ctx := context.Background()
	socio := activeSocio()

	fecha := time.Now()
	cupones := []*entity.Cupon{
		{ID: uuid.New(), SocioID: socio.ID, Estado: entity.EstadoCobrado, FechaCobrado: &fecha},
	}

	m.socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)
	m.cuponRepo.EXPECT().ListBySocio(ctx, socio.ID).Return(cupones, nil)
	m.pagoRepo.EXPECT().ListBySocio(ctx, socio.ID).Return([]*entity.Pago{}, nil)

	resumen, err := svc.GetResumenSocio(ctx, socio.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, resumen.CuponesCobrados)
	assert.Equal(t, int64(0), resumen.TotalGanado)
}

func TestLedgerService_GetResumenSocio_UnknownSocio(t *testing.T) {
	svc, m := newLedgerServiceForTest(t, 10)
	ctx := context.Background()
	id := uuid.New()

	m.socioRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrSocioNotFound)

	_, err := svc.GetResumenSocio(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrSocioNotFound)
}

func TestLedgerService_MonthBounds_Inclusive(t *testing.T) {
	ref := time.Date(2025, time.February, 14, 12, 0, 0, 0, time.UTC)
	start, end := monthBounds(ref)

	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, within(start, start, end), "first instant of the month counts")
	assert.True(t, within(end, start, end), "last instant of the month counts")
	assert.False(t, within(start.Add(-time.Nanosecond), start, end))
	assert.False(t, within(end.Add(time.Nanosecond), start, end))
}

func TestLedgerService_RegistrarPago(t *testing.T) {
	svc, m := newLedgerServiceForTest(t, 10)
	ctx := context.Background()
	socio := activeSocio()

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
	m.factory.EXPECT().NewSocioRepository().Return(m.socioRepo)
	m.factory.EXPECT().NewPagoRepository().Return(m.pagoRepo)
	m.socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)
	m.pagoRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Pago")).Return(nil)

	pago, err := svc.RegistrarPago(ctx, usecase.RegistrarPagoInput{
		SocioID: socio.ID,
		Monto:   25000,
		Notas:   "  transferencia marzo  ",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25000), pago.Monto)
	assert.False(t, pago.FechaPago.IsZero())
	require.NotNil(t, pago.Notas)
	assert.Equal(t, "transferencia marzo", *pago.Notas)
}

func TestLedgerService_RegistrarPago_RejectsNonPositiveMonto(t *testing.T) {
	svc, _ := newLedgerServiceForTest(t, 10)

	for _, monto := range []int64{0, -100} {
		_, err := svc.RegistrarPago(context.Background(), usecase.RegistrarPagoInput{
			SocioID: uuid.New(),
			Monto:   monto,
		})
		require.Error(t, err)

		var verr *domainerrors.ValidationError
		require.ErrorAs(t, err, &verr)
	}
}

func TestLedgerService_RegistrarPago_UnknownSocioRollsBack(t *testing.T) {
	svc, m := newLedgerServiceForTest(t, 10)
	ctx := context.Background()
	id := uuid.New()

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
	m.factory.EXPECT().NewSocioRepository().Return(m.socioRepo)
	m.socioRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrSocioNotFound)

	_, err := svc.RegistrarPago(ctx, usecase.RegistrarPagoInput{SocioID: id, Monto: 1000})
	assert.ErrorIs(t, err, domainerrors.ErrSocioNotFound)
}

func TestLedgerService_ListPagos_DegradesToEmpty(t *testing.T) {
	svc, m := newLedgerServiceForTest(t, 10)
	ctx := context.Background()

	m.pagoRepo.EXPECT().List(ctx).Return(nil, repository.ErrTableNotFound)

	pagos, err := svc.ListPagos(ctx)
	require.NoError(t, err)
	assert.Empty(t, pagos)
	assert.NotNil(t, pagos)
}

func TestLedgerService_ExportarComisiones(t *testing.T) {
	svc, m := newLedgerServiceForTest(t, 10)
	ctx := context.Background()
	socio := activeSocio()

	m.socioRepo.EXPECT().List(ctx, repository.SocioFilter{}).Return([]*entity.Socio{socio}, nil)
	m.socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)
	m.cuponRepo.EXPECT().ListBySocio(ctx, socio.ID).Return([]*entity.Cupon{
		cobradoAt(socio.ID, 100000, time.Now()),
	}, nil)
	m.pagoRepo.EXPECT().ListBySocio(ctx, socio.ID).Return([]*entity.Pago{}, nil)

	m.reports.EXPECT().
		ComisionesWorkbook([]service.ComisionRow{{
			SocioCodigo:     socio.Codigo,
			SocioNombre:     socio.NombreLocal,
			CuponesCobrados: 1,
			TotalComision:   10000,
			TotalPagado:     0,
			Saldo:           10000,
		}}).
		Return([]byte("xlsx"), nil)

	workbook, err := svc.ExportarComisiones(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), workbook)
}
