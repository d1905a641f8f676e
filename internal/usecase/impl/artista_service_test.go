package impl

import (
	"context"
	"testing"

	"referidos/internal/domain/entity"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	mockRepo "referidos/internal/mocks/repository"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newArtistaServiceForTest(t *testing.T) (usecase.ArtistaUsecase, *mockRepo.MockArtistaRepository) {
	artistaRepo := mockRepo.NewMockArtistaRepository(t)

	svc := NewArtistaService(ArtistaServiceParams{
		ArtistaRepo: artistaRepo,
		Logger:      newDiscardLogger(),
	})

	return svc, artistaRepo
}

func TestArtistaService_CreateArtista(t *testing.T) {
	svc, artistaRepo := newArtistaServiceForTest(t)
	ctx := context.Background()

	artistaRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Artista")).Return(nil)

	artista, err := svc.CreateArtista(ctx, "  Nina Flores  ")
	require.NoError(t, err)
	assert.Equal(t, "Nina Flores", artista.Nombre)
	assert.True(t, artista.Activo)
	assert.NotEqual(t, uuid.Nil, artista.ID)
}

func TestArtistaService_CreateArtista_RequiresNombre(t *testing.T) {
	svc, _ := newArtistaServiceForTest(t)

	_, err := svc.CreateArtista(context.Background(), "   ")
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestArtistaService_SetActivo(t *testing.T) {
	svc, artistaRepo := newArtistaServiceForTest(t)
	ctx := context.Background()

	artista := &entity.Artista{ID: uuid.New(), Nombre: "Nina", Activo: true}

	artistaRepo.EXPECT().FindByID(ctx, artista.ID).Return(artista, nil)
	artistaRepo.EXPECT().Update(ctx, artista).Return(nil)

	updated, err := svc.SetActivo(ctx, artista.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Activo)
}

func TestArtistaService_ListArtistas_DegradesToEmpty(t *testing.T) {
	svc, artistaRepo := newArtistaServiceForTest(t)
	ctx := context.Background()

	artistaRepo.EXPECT().List(ctx).Return(nil, repository.ErrTableNotFound)

	artistas, err := svc.ListArtistas(ctx)
	require.NoError(t, err)
	assert.Empty(t, artistas)
	assert.NotNil(t, artistas)
}

func TestArtistaService_DeleteArtista_NotFound(t *testing.T) {
	svc, artistaRepo := newArtistaServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()

	artistaRepo.EXPECT().Delete(ctx, id).Return(repository.ErrArtistaNotFound)

	err := svc.DeleteArtista(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrArtistaNotFound)
}
