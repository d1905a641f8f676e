package impl

import (
	"context"
	"testing"

	"referidos/config"
	"referidos/internal/domain/entity"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	mockRepo "referidos/internal/mocks/repository"
	mockSvc "referidos/internal/mocks/service"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T, cfg *config.Config) (usecase.AuthUsecase, *mockRepo.MockSocioRepository, *mockSvc.MockTokenService, *mockSvc.MockPasswordHasher) {
	socioRepo := mockRepo.NewMockSocioRepository(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewAuthService(AuthServiceParams{
		SocioRepo:    socioRepo,
		TokenService: tokenSvc,
		Hasher:       hasher,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return svc, socioRepo, tokenSvc, hasher
}

func TestAuthService_LoginAdmin_Success(t *testing.T) {
	cfg := newTestAdminConfig("admin@daz.cl", "$2a$12$hash")
	svc, _, tokenSvc, hasher := newAuthServiceForTest(t, cfg)
	ctx := context.Background()

	hasher.EXPECT().Check("secreta", "$2a$12$hash").Return(true)
	tokenSvc.EXPECT().
		GenerateTokens(uuid.MustParse("00000000-0000-0000-0000-000000000001"), []string{"admin"}).
		Return("access-token", "refresh-token", nil)

	out, err := svc.LoginAdmin(ctx, usecase.AdminLoginInput{
		Email:    "  Admin@daz.cl ",
		Password: "secreta",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Nil(t, out.Socio)
}

func TestAuthService_LoginAdmin_WrongPassword(t *testing.T) {
	cfg := newTestAdminConfig("admin@daz.cl", "$2a$12$hash")
	svc, _, _, hasher := newAuthServiceForTest(t, cfg)

	hasher.EXPECT().Check("incorrecta", "$2a$12$hash").Return(false)

	_, err := svc.LoginAdmin(context.Background(), usecase.AdminLoginInput{
		Email:    "admin@daz.cl",
		Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_LoginAdmin_WrongEmail(t *testing.T) {
	cfg := newTestAdminConfig("admin@daz.cl", "$2a$12$hash")
	svc, _, _, _ := newAuthServiceForTest(t, cfg)

	_, err := svc.LoginAdmin(context.Background(), usecase.AdminLoginInput{
		Email:    "otro@daz.cl",
		Password: "secreta",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_LoginAdmin_NoAdminConfigured(t *testing.T) {
	svc, _, _, _ := newAuthServiceForTest(t, &config.Config{})

	_, err := svc.LoginAdmin(context.Background(), usecase.AdminLoginInput{
		Email:    "admin@daz.cl",
		Password: "secreta",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_LoginSocio_Success(t *testing.T) {
	cfg := newTestAdminConfig("admin@daz.cl", "")
	svc, socioRepo, tokenSvc, _ := newAuthServiceForTest(t, cfg)
	ctx := context.Background()
	socio := activeSocio()

	socioRepo.EXPECT().FindByCredentials(ctx, "AB12CD", "123456").Return(socio, nil)
	tokenSvc.EXPECT().
		GenerateTokens(socio.ID, []string{"socio"}).
		Return("access-token", "refresh-token", nil)

	out, err := svc.LoginSocio(ctx, usecase.SocioLoginInput{
		Codigo: " ab12cd ",
		PIN:    "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, socio, out.Socio)
}

func TestAuthService_LoginSocio_WrongCredentials(t *testing.T) {
	cfg := newTestAdminConfig("admin@daz.cl", "")
	svc, socioRepo, _, _ := newAuthServiceForTest(t, cfg)
	ctx := context.Background()

	socioRepo.EXPECT().FindByCredentials(ctx, "AB12CD", "000000").Return(nil, repository.ErrSocioNotFound)

	_, err := svc.LoginSocio(ctx, usecase.SocioLoginInput{Codigo: "AB12CD", PIN: "000000"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_LoginSocio_IneligiblePartnerRejected(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(socio *entity.Socio)
	}{
		{name: "inactive", mutate: func(s *entity.Socio) { s.Activo = false }},
		{name: "unapproved", mutate: func(s *entity.Socio) { s.Aprobado = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestAdminConfig("admin@daz.cl", "")
			svc, socioRepo, _, _ := newAuthServiceForTest(t, cfg)
			ctx := context.Background()

			socio := activeSocio()
			tt.mutate(socio)
			socioRepo.EXPECT().FindByCredentials(ctx, socio.Codigo, socio.PIN).Return(socio, nil)

			_, err := svc.LoginSocio(ctx, usecase.SocioLoginInput{Codigo: socio.Codigo, PIN: socio.PIN})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_LoginSocio_EmptyCredentials(t *testing.T) {
	cfg := newTestAdminConfig("admin@daz.cl", "")
	svc, _, _, _ := newAuthServiceForTest(t, cfg)

	_, err := svc.LoginSocio(context.Background(), usecase.SocioLoginInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
