package postgres

import (
	"context"
	"strconv"

	"referidos/internal/domain/entity"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	"referidos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Configuration keys as stored in the configuracion table.
const (
	claveNombreSitio        = "nombre_sitio"
	claveLogoURL            = "logo_url"
	claveFooterTexto1       = "footer_texto_1"
	claveFooterTexto2       = "footer_texto_2"
	claveFooterTexto3       = "footer_texto_3"
	claveFooterTexto4       = "footer_texto_4"
	clavePorcentajeComision = "porcentaje_comision"
)

// configRepository implements the domain.ConfigRepository interface using GORM.
type configRepository struct {
	db *gorm.DB
}

// NewConfigRepository is the constructor for configRepository.
func NewConfigRepository(db *gorm.DB) repository.ConfigRepository {
	return &configRepository{db: db}
}

// Get assembles the configuration from its key/value rows. Keys that are
// missing keep their default value, so a partially seeded table still yields
// a complete configuration.
func (repo *configRepository) Get(ctx context.Context) (*entity.Configuracion, error) {
	var rows []*model.ConfiguracionModel
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to load configuracion rows")
	}

	cfg := entity.DefaultConfiguracion()
	for _, row := range rows {
		switch row.Clave {
		case claveNombreSitio:
			cfg.NombreSitio = row.Valor
		case claveLogoURL:
			if row.Valor != "" {
				valor := row.Valor
				cfg.LogoURL = &valor
			}
		case claveFooterTexto1:
			cfg.FooterTexto1 = row.Valor
		case claveFooterTexto2:
			cfg.FooterTexto2 = row.Valor
		case claveFooterTexto3:
			cfg.FooterTexto3 = row.Valor
		case claveFooterTexto4:
			cfg.FooterTexto4 = row.Valor
		case clavePorcentajeComision:
			if pct, err := strconv.Atoi(row.Valor); err == nil && pct >= 1 && pct <= 100 {
				cfg.PorcentajeComision = pct
			}
		}
	}

	return cfg, nil
}

// Update upserts each configuration key individually, mirroring how the
// original key/value schema was maintained.
func (repo *configRepository) Update(ctx context.Context, cfg *entity.Configuracion) error {
	logoURL := ""
	if cfg.LogoURL != nil {
		logoURL = *cfg.LogoURL
	}

	rows := []*model.ConfiguracionModel{
		{Clave: claveNombreSitio, Valor: cfg.NombreSitio},
		{Clave: claveLogoURL, Valor: logoURL},
		{Clave: claveFooterTexto1, Valor: cfg.FooterTexto1},
		{Clave: claveFooterTexto2, Valor: cfg.FooterTexto2},
		{Clave: claveFooterTexto3, Valor: cfg.FooterTexto3},
		{Clave: claveFooterTexto4, Valor: cfg.FooterTexto4},
		{Clave: clavePorcentajeComision, Valor: strconv.Itoa(cfg.PorcentajeComision)},
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "clave"}},
			DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
		}).
		Create(&rows).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert configuracion")
	}

	return nil
}
