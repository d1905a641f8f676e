package impl

import (
	"context"
	"log/slog"
	"strings"

	"referidos/config"
	deliverycontext "referidos/internal/delivery/context"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	"referidos/internal/domain/service"
	"referidos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminSubjectID is the fixed token subject for the single administrator
// account defined in configuration.
var adminSubjectID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type authService struct {
	socioRepo    repository.SocioRepository
	tokenService service.TokenService
	hasher       service.PasswordHasher
	config       *config.Config
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	SocioRepo    repository.SocioRepository
	TokenService service.TokenService
	Hasher       service.PasswordHasher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		socioRepo:    params.SocioRepo,
		tokenService: params.TokenService,
		hasher:       params.Hasher,
		config:       params.Config,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginAdmin authenticates the administrator account from configuration.
func (srv *authService) LoginAdmin(ctx context.Context, input usecase.AdminLoginInput) (*usecase.LoginOutput, error) {
	admin := srv.config.Admin
	if admin == nil || admin.Email == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !strings.EqualFold(strings.TrimSpace(input.Email), admin.Email) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	access, refresh, err := srv.tokenService.GenerateTokens(adminSubjectID, []string{"admin"})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("admin logged in")

	return &usecase.LoginOutput{AccessToken: access, RefreshToken: refresh}, nil
}

// LoginSocio authenticates a partner against its codigo/PIN pair. Only the
// exact pair of a partner that is both active and approved succeeds; every
// other outcome collapses into the same generic credentials error so probing
// cannot tell which partner codes exist.
func (srv *authService) LoginSocio(ctx context.Context, input usecase.SocioLoginInput) (*usecase.LoginOutput, error) {
	codigo := strings.ToUpper(strings.TrimSpace(input.Codigo))
	pin := strings.TrimSpace(input.PIN)
	if codigo == "" || pin == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	socio, err := srv.socioRepo.FindByCredentials(ctx, codigo, pin)
	if err != nil {
		if errors.Is(err, repository.ErrSocioNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find socio by credentials")
	}
	if !socio.PuedeEmitirCupones() {
		return nil, domainerrors.ErrInvalidCredentials
	}

	access, refresh, err := srv.tokenService.GenerateTokens(socio.ID, []string{"socio"})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("socio logged in", "socioID", socio.ID)

	return &usecase.LoginOutput{AccessToken: access, RefreshToken: refresh, Socio: socio}, nil
}
