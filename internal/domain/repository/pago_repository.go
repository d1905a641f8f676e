package repository

import (
	"context"

	"referidos/internal/domain/entity"

	"github.com/google/uuid"
)

// PagoRepository defines the operations for the append-only payout ledger.
// Payments are never updated or deleted by normal flow.
type PagoRepository interface {
	// List retrieves every payment, newest payment date first.
	List(ctx context.Context) ([]*entity.Pago, error)

	// ListBySocio retrieves every payment recorded for a partner, newest first.
	ListBySocio(ctx context.Context, socioID uuid.UUID) ([]*entity.Pago, error)

	// Create appends a new payment entry.
	Create(ctx context.Context, pago *entity.Pago) error
}
