package repository

import (
	"context"

	"referidos/internal/domain/entity"
)

// ConfigRepository manages the singleton site configuration, stored as
// key/value rows in the backing table.
type ConfigRepository interface {
	// Get assembles the configuration from its key/value rows. Returns
	// ErrTableNotFound when the backing table does not exist yet; callers
	// decide whether to degrade to DefaultConfiguracion.
	Get(ctx context.Context) (*entity.Configuracion, error)

	// Update upserts each configuration key individually.
	Update(ctx context.Context, cfg *entity.Configuracion) error
}
