package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "referidos/internal/delivery/context"
	"referidos/internal/domain/entity"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	"referidos/internal/domain/service"
	"referidos/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type configService struct {
	configRepo repository.ConfigRepository
	storage    service.FileStorage
	logger     *slog.Logger
}

// ConfigServiceParams holds dependencies for ConfigService, injected by Fx.
type ConfigServiceParams struct {
	fx.In

	ConfigRepo repository.ConfigRepository
	Storage    service.FileStorage
	Logger     *slog.Logger
}

// NewConfigService creates a new site configuration service instance
func NewConfigService(params ConfigServiceParams) usecase.ConfigUsecase {
	return &configService{
		configRepo: params.ConfigRepo,
		storage:    params.Storage,
		logger:     params.Logger,
	}
}

func (srv *configService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetConfiguracion returns the stored configuration. A database without the
// configuracion table yet (fresh install) is not an error: the hardcoded
// defaults keep the public pages rendering.
func (srv *configService) GetConfiguracion(ctx context.Context) (*entity.Configuracion, error) {
	cfg, err := srv.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			srv.log(ctx).Warn("configuracion table missing, serving defaults")

			return entity.DefaultConfiguracion(), nil
		}

		return nil, errors.Wrap(err, "failed to load configuracion")
	}

	return cfg, nil
}

func (srv *configService) UpdateConfiguracion(ctx context.Context, input usecase.UpdateConfiguracionInput) (*entity.Configuracion, error) {
	cfg, err := srv.GetConfiguracion(ctx)
	if err != nil {
		return nil, err
	}

	if input.NombreSitio != nil {
		if strings.TrimSpace(*input.NombreSitio) == "" {
			return nil, domainerrors.NewValidationError().Add("nombre_sitio", "El nombre del sitio es obligatorio")
		}
		cfg.NombreSitio = strings.TrimSpace(*input.NombreSitio)
	}
	if input.FooterTexto1 != nil {
		cfg.FooterTexto1 = *input.FooterTexto1
	}
	if input.FooterTexto2 != nil {
		cfg.FooterTexto2 = *input.FooterTexto2
	}
	if input.FooterTexto3 != nil {
		cfg.FooterTexto3 = *input.FooterTexto3
	}
	if input.FooterTexto4 != nil {
		cfg.FooterTexto4 = *input.FooterTexto4
	}
	if input.PorcentajeComision != nil {
		if *input.PorcentajeComision < 1 || *input.PorcentajeComision > 100 {
			return nil, domainerrors.NewValidationError().Add("porcentaje_comision", "El porcentaje debe estar entre 1 y 100")
		}
		cfg.PorcentajeComision = *input.PorcentajeComision
	}

	if err := srv.configRepo.Update(ctx, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to update configuracion")
	}

	srv.log(ctx).Info("configuracion updated")

	return cfg, nil
}

// UploadLogo stores the site logo and records its URL.
func (srv *configService) UploadLogo(ctx context.Context, contentType string, data []byte) (*entity.Configuracion, error) {
	cfg, err := srv.GetConfiguracion(ctx)
	if err != nil {
		return nil, err
	}

	url, err := srv.storage.Save(ctx, "logos/sitio"+extensionFor(contentType), contentType, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store site logo")
	}

	cfg.LogoURL = &url
	if err := srv.configRepo.Update(ctx, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to update configuracion logo url")
	}

	return cfg, nil
}
