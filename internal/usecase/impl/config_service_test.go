package impl

import (
	"context"
	"testing"

	"referidos/internal/domain/entity"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	mockRepo "referidos/internal/mocks/repository"
	mockSvc "referidos/internal/mocks/service"
	"referidos/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConfigServiceForTest(t *testing.T) (usecase.ConfigUsecase, *mockRepo.MockConfigRepository, *mockSvc.MockFileStorage) {
	configRepo := mockRepo.NewMockConfigRepository(t)
	storage := mockSvc.NewMockFileStorage(t)

	svc := NewConfigService(ConfigServiceParams{
		ConfigRepo: configRepo,
		Storage:    storage,
		Logger:     newDiscardLogger(),
	})

	return svc, configRepo, storage
}

func TestConfigService_GetConfiguracion_MissingTableServesDefaults(t *testing.T) {
	svc, configRepo, _ := newConfigServiceForTest(t)
	ctx := context.Background()

	configRepo.EXPECT().Get(ctx).Return(nil, repository.ErrTableNotFound)

	cfg, err := svc.GetConfiguracion(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultConfiguracion(), cfg)
}

func TestConfigService_UpdateConfiguracion_PatchesFields(t *testing.T) {
	svc, configRepo, _ := newConfigServiceForTest(t)
	ctx := context.Background()

	stored := entity.DefaultConfiguracion()
	configRepo.EXPECT().Get(ctx).Return(stored, nil)
	configRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Configuracion")).Return(nil)

	nombre := "Daz The Line"
	pct := 15
	cfg, err := svc.UpdateConfiguracion(ctx, usecase.UpdateConfiguracionInput{
		NombreSitio:        &nombre,
		PorcentajeComision: &pct,
	})
	require.NoError(t, err)
	assert.Equal(t, "Daz The Line", cfg.NombreSitio)
	assert.Equal(t, 15, cfg.PorcentajeComision)
	assert.Equal(t, stored.FooterTexto1, cfg.FooterTexto1)
}

func TestConfigService_UpdateConfiguracion_RejectsBadPercentage(t *testing.T) {
	svc, configRepo, _ := newConfigServiceForTest(t)
	ctx := context.Background()

	for _, pct := range []int{0, -5, 101} {
		configRepo.EXPECT().Get(ctx).Return(entity.DefaultConfiguracion(), nil)

		bad := pct
		_, err := svc.UpdateConfiguracion(ctx, usecase.UpdateConfiguracionInput{PorcentajeComision: &bad})
		require.Error(t, err)

		var verr *domainerrors.ValidationError
		require.ErrorAs(t, err, &verr)
	}
}

func TestConfigService_UpdateConfiguracion_RejectsEmptyNombreSitio(t *testing.T) {
	svc, configRepo, _ := newConfigServiceForTest(t)
	ctx := context.Background()

	configRepo.EXPECT().Get(ctx).Return(entity.DefaultConfiguracion(), nil)

	empty := "   "
	_, err := svc.UpdateConfiguracion(ctx, usecase.UpdateConfiguracionInput{NombreSitio: &empty})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestConfigService_UploadLogo(t *testing.T) {
	svc, configRepo, storage := newConfigServiceForTest(t)
	ctx := context.Background()

	stored := entity.DefaultConfiguracion()
	data := []byte{0x89, 'P', 'N', 'G'}

	configRepo.EXPECT().Get(ctx).Return(stored, nil)
	storage.EXPECT().
		Save(ctx, "logos/sitio.png", "image/png", data).
		Return("https://cdn.daz.cl/logos/sitio.png", nil)
	configRepo.EXPECT().Update(ctx, stored).Return(nil)

	cfg, err := svc.UploadLogo(ctx, "image/png", data)
	require.NoError(t, err)
	require.NotNil(t, cfg.LogoURL)
	assert.Equal(t, "https://cdn.daz.cl/logos/sitio.png", *cfg.LogoURL)
}
