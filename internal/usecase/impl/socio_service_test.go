package impl

import (
	"context"
	"testing"

	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	"referidos/internal/domain/service"
	mockRepo "referidos/internal/mocks/repository"
	mockSvc "referidos/internal/mocks/service"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSocioServiceForTest(t *testing.T) (usecase.SocioUsecase, *mockRepo.MockSocioRepository, *mockSvc.MockCodeGenerator, *mockSvc.MockMailer, *mockSvc.MockFileStorage) {
	socioRepo := mockRepo.NewMockSocioRepository(t)
	codeGen := mockSvc.NewMockCodeGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	storage := mockSvc.NewMockFileStorage(t)

	svc := NewSocioService(SocioServiceParams{
		SocioRepo: socioRepo,
		CodeGen:   codeGen,
		Mailer:    mailer,
		Storage:   storage,
		Config:    newTestAdminConfig("admin@daz.cl", ""),
		Logger:    newDiscardLogger(),
	})

	return svc, socioRepo, codeGen, mailer, storage
}

func TestSocioService_CreateSocio_Success(t *testing.T) {
	svc, socioRepo, codeGen, _, _ := newSocioServiceForTest(t)
	ctx := context.Background()

	codeGen.EXPECT().GeneratePartnerCode(ctx).Return("XY98ZT", nil)
	codeGen.EXPECT().GeneratePIN().Return("654321")

	socioRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Socio")).
		Return(nil)

	out, err := svc.CreateSocio(ctx, usecase.CreateSocioInput{SocioInput: validSocioInput()})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "XY98ZT", out.Socio.Codigo)
	assert.Equal(t, "654321", out.PIN)
	assert.True(t, out.Socio.Activo)
	assert.True(t, out.Socio.Aprobado)
	assert.Equal(t, "@barberiacentral", out.Socio.Instagram)
	assert.Equal(t, "12.345.678-5", out.Socio.RUT)
	assert.Nil(t, out.Socio.Link)
}

func TestSocioService_CreateSocio_CollectsAllViolations(t *testing.T) {
	svc, _, _, _, _ := newSocioServiceForTest(t)

	input := usecase.SocioInput{
		Telefono:   "whatsapp",
		Email:      "no-es-email",
		RUT:        "12345678-9",
		Banco:      "Banco Inventado",
		TipoCuenta: "Cuenta Secreta",
	}

	_, err := svc.CreateSocio(context.Background(), usecase.CreateSocioInput{SocioInput: input})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make(map[string]bool)
	for _, v := range verr.Violations() {
		fields[v.Field] = true
	}
	for _, field := range []string{
		"nombre_local", "nombre_encargado", "telefono", "email",
		"titular_cuenta", "rut", "banco", "tipo_cuenta", "numero_cuenta",
	} {
		assert.True(t, fields[field], "expected violation for %s", field)
	}
}

func TestSocioService_CreateSocio_ExplicitFlags(t *testing.T) {
	svc, socioRepo, codeGen, _, _ := newSocioServiceForTest(t)
	ctx := context.Background()

	codeGen.EXPECT().GeneratePartnerCode(ctx).Return("XY98ZT", nil)
	codeGen.EXPECT().GeneratePIN().Return("654321")
	socioRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Socio")).Return(nil)

	inactive := false
	out, err := svc.CreateSocio(ctx, usecase.CreateSocioInput{
		SocioInput: validSocioInput(),
		Activo:     &inactive,
	})
	require.NoError(t, err)
	assert.False(t, out.Socio.Activo)
	assert.True(t, out.Socio.Aprobado)
}

func TestSocioService_RegisterSocio_StartsUnapprovedAndMails(t *testing.T) {
	svc, socioRepo, codeGen, mailer, _ := newSocioServiceForTest(t)
	ctx := context.Background()

	codeGen.EXPECT().GeneratePartnerCode(ctx).Return("XY98ZT", nil)
	codeGen.EXPECT().GeneratePIN().Return("654321")
	socioRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Socio")).Return(nil)

	mailer.EXPECT().
		Send(ctx, "contacto@barberiacentral.cl", service.MailTemplateRegistro, mock.AnythingOfType("map[string]string")).
		Return(nil)

	out, err := svc.RegisterSocio(ctx, validSocioInput())
	require.NoError(t, err)
	assert.False(t, out.Socio.Activo)
	assert.False(t, out.Socio.Aprobado)
}

func TestSocioService_RegisterSocio_MailFailureDoesNotFail(t *testing.T) {
	svc, socioRepo, codeGen, mailer, _ := newSocioServiceForTest(t)
	ctx := context.Background()

	codeGen.EXPECT().GeneratePartnerCode(ctx).Return("XY98ZT", nil)
	codeGen.EXPECT().GeneratePIN().Return("654321")
	socioRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Socio")).Return(nil)
	mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("string"), service.MailTemplateRegistro, mock.AnythingOfType("map[string]string")).
		Return(errors.New("smtp relay down"))

	out, err := svc.RegisterSocio(ctx, validSocioInput())
	require.NoError(t, err)
	require.NotNil(t, out)
}

func TestSocioService_GetSocio_NotFound(t *testing.T) {
	svc, socioRepo, _, _, _ := newSocioServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()

	socioRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrSocioNotFound)

	_, err := svc.GetSocio(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrSocioNotFound)
}

func TestSocioService_ListSocios_DegradesToEmpty(t *testing.T) {
	svc, socioRepo, _, _, _ := newSocioServiceForTest(t)
	ctx := context.Background()

	socioRepo.EXPECT().
		List(ctx, repository.SocioFilter{}).
		Return(nil, repository.ErrTableNotFound)

	socios, err := svc.ListSocios(ctx, usecase.ListSociosInput{})
	require.NoError(t, err)
	assert.Empty(t, socios)
	assert.NotNil(t, socios)
}

func TestSocioService_UpdateSocio_PatchesAndRevalidates(t *testing.T) {
	svc, socioRepo, _, _, _ := newSocioServiceForTest(t)
	ctx := context.Background()
	socio := activeSocio()

	socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)
	socioRepo.EXPECT().Update(ctx, socio).Return(nil)

	nuevoNombre := "Barbería Renovada"
	nuevoInstagram := "renovada"
	updated, err := svc.UpdateSocio(ctx, socio.ID, usecase.UpdateSocioInput{
		NombreLocal: &nuevoNombre,
		Instagram:   &nuevoInstagram,
	})
	require.NoError(t, err)
	assert.Equal(t, "Barbería Renovada", updated.NombreLocal)
	assert.Equal(t, "@renovada", updated.Instagram)
	assert.Equal(t, "Camila Rojas", updated.NombreEncargado)
}

func TestSocioService_UpdateSocio_RejectsInvalidPatch(t *testing.T) {
	svc, socioRepo, _, _, _ := newSocioServiceForTest(t)
	ctx := context.Background()
	socio := activeSocio()

	socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)

	badEmail := "nope"
	_, err := svc.UpdateSocio(ctx, socio.ID, usecase.UpdateSocioInput{Email: &badEmail})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSocioService_SetAprobado_SendsMailOnlyOnEdge(t *testing.T) {
	svc, socioRepo, _, mailer, _ := newSocioServiceForTest(t)
	ctx := context.Background()

	socio := activeSocio()
	socio.Aprobado = false

	socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)
	socioRepo.EXPECT().Update(ctx, socio).Return(nil)
	mailer.EXPECT().
		Send(ctx, socio.Email, service.MailTemplateAprobacion, mock.AnythingOfType("map[string]string")).
		Return(nil).
		Once()

	updated, err := svc.SetAprobado(ctx, socio.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Aprobado)

	// Approving an already-approved partner writes again but stays silent.
	socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)
	socioRepo.EXPECT().Update(ctx, socio).Return(nil)

	_, err = svc.SetAprobado(ctx, socio.ID, true)
	require.NoError(t, err)
}

func TestSocioService_SetAprobado_MailFailureKeepsWrite(t *testing.T) {
	svc, socioRepo, _, mailer, _ := newSocioServiceForTest(t)
	ctx := context.Background()

	socio := activeSocio()
	socio.Aprobado = false

	socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)
	socioRepo.EXPECT().Update(ctx, socio).Return(nil)
	mailer.EXPECT().
		Send(ctx, socio.Email, service.MailTemplateAprobacion, mock.AnythingOfType("map[string]string")).
		Return(errors.New("provider 500"))

	updated, err := svc.SetAprobado(ctx, socio.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Aprobado)
}

func TestSocioService_SetActivo_DeactivationIsSilent(t *testing.T) {
	svc, socioRepo, _, _, _ := newSocioServiceForTest(t)
	ctx := context.Background()

	socio := activeSocio()

	socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)
	socioRepo.EXPECT().Update(ctx, socio).Return(nil)

	updated, err := svc.SetActivo(ctx, socio.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Activo)
}

func TestSocioService_RegenerateCredenciales(t *testing.T) {
	svc, socioRepo, codeGen, _, _ := newSocioServiceForTest(t)
	ctx := context.Background()

	socio := activeSocio()

	socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)
	codeGen.EXPECT().GeneratePartnerCode(ctx).Return("ZZ00AA", nil)
	codeGen.EXPECT().GeneratePIN().Return("999999")
	socioRepo.EXPECT().Update(ctx, socio).Return(nil)

	out, err := svc.RegenerateCredenciales(ctx, socio.ID)
	require.NoError(t, err)
	assert.Equal(t, "ZZ00AA", out.Socio.Codigo)
	assert.Equal(t, "999999", out.PIN)
}

func TestSocioService_UploadLogo(t *testing.T) {
	svc, socioRepo, _, _, storage := newSocioServiceForTest(t)
	ctx := context.Background()

	socio := activeSocio()
	data := []byte{0x89, 'P', 'N', 'G'}

	socioRepo.EXPECT().FindByID(ctx, socio.ID).Return(socio, nil)
	storage.EXPECT().
		Save(ctx, "logos/socios/"+socio.ID.String()+".png", "image/png", data).
		Return("https://cdn.daz.cl/logos/socios/"+socio.ID.String()+".png", nil)
	socioRepo.EXPECT().Update(ctx, socio).Return(nil)

	updated, err := svc.UploadLogo(ctx, socio.ID, "image/png", data)
	require.NoError(t, err)
	require.NotNil(t, updated.LogoURL)
	assert.Contains(t, *updated.LogoURL, "logos/socios/")
}
