package impl

import (
	"context"
	"testing"
	"time"

	"referidos/internal/domain/entity"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	mockRepo "referidos/internal/mocks/repository"
	mockSvc "referidos/internal/mocks/service"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cuponServiceMocks struct {
	cuponRepo   *mockRepo.MockCuponRepository
	socioRepo   *mockRepo.MockSocioRepository
	artistaRepo *mockRepo.MockArtistaRepository
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	codeGen     *mockSvc.MockCodeGenerator
	qrService   *mockSvc.MockQRCodeService
}

func newCuponServiceForTest(t *testing.T) (usecase.CuponUsecase, *cuponServiceMocks) {
	m := &cuponServiceMocks{
		cuponRepo:   mockRepo.NewMockCuponRepository(t),
		socioRepo:   mockRepo.NewMockSocioRepository(t),
		artistaRepo: mockRepo.NewMockArtistaRepository(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		codeGen:     mockSvc.NewMockCodeGenerator(t),
		qrService:   mockSvc.NewMockQRCodeService(t),
	}

	svc := NewCuponService(CuponServiceParams{
		CuponRepo:   m.cuponRepo,
		SocioRepo:   m.socioRepo,
		ArtistaRepo: m.artistaRepo,
		TxManager:   m.txManager,
		CodeGen:     m.codeGen,
		QRService:   m.qrService,
		Logger:      newDiscardLogger(),
	})

	return svc, m
}

// expectTransaction wires the transaction manager to run the callback against
// the mocked repository factory.
func (m *cuponServiceMocks) expectTransaction(ctx context.Context) {
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func TestCuponService_CreateCupon_Success(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()
	socio := activeSocio()

	m.socioRepo.EXPECT().FindByCodigo(ctx, "AB12CD").Return(socio, nil)
	m.codeGen.EXPECT().GenerateCouponCode().Return("CPN-7F3K-9xq2")
	m.cuponRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Cupon")).Return(nil)

	cupon, err := svc.CreateCupon(ctx, usecase.CreateCuponInput{
		CodigoSocio:      " ab12cd ",
		ClienteNombre:    "Pedro Soto",
		ClienteWhatsapp:  "+56 9 8765 4321",
		ClienteInstagram: "pedrosoto",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoDescargado, cupon.Estado)
	assert.Equal(t, "CPN-7F3K-9xq2", cupon.Codigo)
	assert.Equal(t, socio.ID, cupon.SocioID)
	assert.Equal(t, "@pedrosoto", cupon.ClienteInstagram)
	assert.False(t, cupon.FechaDescarga.IsZero())
	assert.Nil(t, cupon.ArtistaID)
	assert.Nil(t, cupon.ValorTatuaje)
}

func TestCuponService_CreateCupon_ValidatesCliente(t *testing.T) {
	svc, _ := newCuponServiceForTest(t)

	_, err := svc.CreateCupon(context.Background(), usecase.CreateCuponInput{
		CodigoSocio:     "AB12CD",
		ClienteNombre:   "  ",
		ClienteWhatsapp: "not-a-phone",
	})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations(), 2)
}

func TestCuponService_CreateCupon_UnknownCodigoNotEligible(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()

	m.socioRepo.EXPECT().FindByCodigo(ctx, "ZZZZZZ").Return(nil, repository.ErrSocioNotFound)

	_, err := svc.CreateCupon(ctx, usecase.CreateCuponInput{
		CodigoSocio:     "zzzzzz",
		ClienteNombre:   "Pedro Soto",
		ClienteWhatsapp: "+56 9 8765 4321",
	})
	assert.ErrorIs(t, err, domainerrors.ErrSocioNotEligible)
}

func TestCuponService_CreateCupon_InactivePartnerNotEligible(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()

	socio := activeSocio()
	socio.Activo = false
	m.socioRepo.EXPECT().FindByCodigo(ctx, socio.Codigo).Return(socio, nil)

	_, err := svc.CreateCupon(ctx, usecase.CreateCuponInput{
		CodigoSocio:     socio.Codigo,
		ClienteNombre:   "Pedro Soto",
		ClienteWhatsapp: "+56 9 8765 4321",
	})
	assert.ErrorIs(t, err, domainerrors.ErrSocioNotEligible)
}

func cobradoCupon(artistaID uuid.UUID) *entity.Cupon {
	agendado := time.Now().Add(-48 * time.Hour)
	cobrado := time.Now().Add(-24 * time.Hour)
	valor := int64(100000)

	return &entity.Cupon{
		ID:              uuid.New(),
		Codigo:          "CPN-TEST-0001",
		SocioID:         uuid.New(),
		ClienteNombre:   "Pedro Soto",
		ClienteWhatsapp: "+56 9 8765 4321",
		Estado:          entity.EstadoCobrado,
		FechaDescarga:   time.Now().Add(-72 * time.Hour),
		FechaAgendado:   &agendado,
		FechaCobrado:    &cobrado,
		ArtistaID:       &artistaID,
		ValorTatuaje:    &valor,
	}
}

func TestCuponService_CambiarEstado_BackToDescargadoClearsEverything(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()

	artistaID := uuid.New()
	cupon := cobradoCupon(artistaID)

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewCuponRepository().Return(m.cuponRepo)
	m.cuponRepo.EXPECT().FindByID(ctx, cupon.ID).Return(cupon, nil)
	m.cuponRepo.EXPECT().Update(ctx, cupon).Return(nil)

	updated, err := svc.CambiarEstado(ctx, cupon.ID, usecase.CambiarEstadoInput{
		Estado: entity.EstadoDescargado,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoDescargado, updated.Estado)
	assert.Nil(t, updated.FechaAgendado)
	assert.Nil(t, updated.FechaCobrado)
	assert.Nil(t, updated.ArtistaID)
	assert.Nil(t, updated.ValorTatuaje)
	assert.False(t, updated.FechaDescarga.IsZero())
}

func TestCuponService_CambiarEstado_AgendadoRequiresActiveArtista(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()

	cupon := &entity.Cupon{ID: uuid.New(), Estado: entity.EstadoDescargado}
	artista := &entity.Artista{ID: uuid.New(), Nombre: "Nina", Activo: false}

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewCuponRepository().Return(m.cuponRepo)
	m.factory.EXPECT().NewArtistaRepository().Return(m.artistaRepo)
	m.cuponRepo.EXPECT().FindByID(ctx, cupon.ID).Return(cupon, nil)
	m.artistaRepo.EXPECT().FindByID(ctx, artista.ID).Return(artista, nil)

	_, err := svc.CambiarEstado(ctx, cupon.ID, usecase.CambiarEstadoInput{
		Estado:    entity.EstadoAgendado,
		ArtistaID: &artista.ID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrArtistaInactive)
}

func TestCuponService_CambiarEstado_AgendadoSetsScheduleClearsCharge(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()

	artistaID := uuid.New()
	cupon := cobradoCupon(artistaID)
	artista := &entity.Artista{ID: artistaID, Nombre: "Nina", Activo: true}

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewCuponRepository().Return(m.cuponRepo)
	m.factory.EXPECT().NewArtistaRepository().Return(m.artistaRepo)
	m.cuponRepo.EXPECT().FindByID(ctx, cupon.ID).Return(cupon, nil)
	m.artistaRepo.EXPECT().FindByID(ctx, artistaID).Return(artista, nil)
	m.cuponRepo.EXPECT().Update(ctx, cupon).Return(nil)

	updated, err := svc.CambiarEstado(ctx, cupon.ID, usecase.CambiarEstadoInput{
		Estado:    entity.EstadoAgendado,
		ArtistaID: &artistaID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoAgendado, updated.Estado)
	require.NotNil(t, updated.FechaAgendado)
	assert.Nil(t, updated.FechaCobrado)
	assert.Nil(t, updated.ValorTatuaje)
	assert.Equal(t, &artistaID, updated.ArtistaID)
}

func TestCuponService_CambiarEstado_CobradoKeepsFechaAgendado(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()

	artistaID := uuid.New()
	agendado := time.Now().Add(-24 * time.Hour)
	cupon := &entity.Cupon{
		ID:            uuid.New(),
		Estado:        entity.EstadoAgendado,
		FechaAgendado: &agendado,
		ArtistaID:     &artistaID,
	}
	artista := &entity.Artista{ID: artistaID, Nombre: "Nina", Activo: true}
	valor := int64(150000)

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewCuponRepository().Return(m.cuponRepo)
	m.factory.EXPECT().NewArtistaRepository().Return(m.artistaRepo)
	m.cuponRepo.EXPECT().FindByID(ctx, cupon.ID).Return(cupon, nil)
	m.artistaRepo.EXPECT().FindByID(ctx, artistaID).Return(artista, nil)
	m.cuponRepo.EXPECT().Update(ctx, cupon).Return(nil)

	updated, err := svc.CambiarEstado(ctx, cupon.ID, usecase.CambiarEstadoInput{
		Estado:       entity.EstadoCobrado,
		ArtistaID:    &artistaID,
		ValorTatuaje: &valor,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoCobrado, updated.Estado)
	require.NotNil(t, updated.FechaCobrado)
	assert.Equal(t, &agendado, updated.FechaAgendado)
	assert.Equal(t, &valor, updated.ValorTatuaje)
}

func TestCuponService_CambiarEstado_CobradoRequiresPositiveValor(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()

	artistaID := uuid.New()
	cupon := &entity.Cupon{ID: uuid.New(), Estado: entity.EstadoAgendado}
	artista := &entity.Artista{ID: artistaID, Nombre: "Nina", Activo: true}
	valor := int64(0)

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewCuponRepository().Return(m.cuponRepo)
	m.factory.EXPECT().NewArtistaRepository().Return(m.artistaRepo)
	m.cuponRepo.EXPECT().FindByID(ctx, cupon.ID).Return(cupon, nil)
	m.artistaRepo.EXPECT().FindByID(ctx, artistaID).Return(artista, nil)

	_, err := svc.CambiarEstado(ctx, cupon.ID, usecase.CambiarEstadoInput{
		Estado:       entity.EstadoCobrado,
		ArtistaID:    &artistaID,
		ValorTatuaje: &valor,
	})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCuponService_CambiarEstado_MissingArtista(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()

	cupon := &entity.Cupon{ID: uuid.New(), Estado: entity.EstadoDescargado}

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewCuponRepository().Return(m.cuponRepo)
	m.cuponRepo.EXPECT().FindByID(ctx, cupon.ID).Return(cupon, nil)

	_, err := svc.CambiarEstado(ctx, cupon.ID, usecase.CambiarEstadoInput{
		Estado: entity.EstadoAgendado,
	})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCuponService_CambiarEstado_UnknownEstado(t *testing.T) {
	svc, _ := newCuponServiceForTest(t)

	_, err := svc.CambiarEstado(context.Background(), uuid.New(), usecase.CambiarEstadoInput{
		Estado: entity.EstadoCupon("pendiente"),
	})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCuponService_CambiarEstado_CuponNotFound(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()

	m.expectTransaction(ctx)
	m.factory.EXPECT().NewCuponRepository().Return(m.cuponRepo)
	m.cuponRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCuponNotFound)

	_, err := svc.CambiarEstado(ctx, id, usecase.CambiarEstadoInput{Estado: entity.EstadoDescargado})
	assert.ErrorIs(t, err, domainerrors.ErrCuponNotFound)
}

func TestCuponService_ListCupones_DegradesToEmpty(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()

	m.cuponRepo.EXPECT().
		List(ctx, repository.CuponFilter{}).
		Return(nil, repository.ErrTableNotFound)

	cupones, err := svc.ListCupones(ctx, usecase.ListCuponesInput{})
	require.NoError(t, err)
	assert.Empty(t, cupones)
	assert.NotNil(t, cupones)
}

func TestCuponService_GenerateCuponQR(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()
	socio := activeSocio()

	m.socioRepo.EXPECT().FindByCodigo(ctx, "AB12CD").Return(socio, nil)
	m.qrService.EXPECT().GenerateCouponQR("AB12CD").Return([]byte("png-bytes"), nil)

	png, err := svc.GenerateCuponQR(ctx, "ab12cd")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestCuponService_GenerateCuponQR_UnknownSocio(t *testing.T) {
	svc, m := newCuponServiceForTest(t)
	ctx := context.Background()

	m.socioRepo.EXPECT().FindByCodigo(ctx, "NOPE00").Return(nil, repository.ErrSocioNotFound)

	_, err := svc.GenerateCuponQR(ctx, "nope00")
	assert.ErrorIs(t, err, domainerrors.ErrSocioNotFound)
}
