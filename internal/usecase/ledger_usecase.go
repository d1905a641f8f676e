package usecase

import (
	"context"
	"time"

	"referidos/internal/domain/entity"

	"github.com/google/uuid"
)

// ResumenSocio is the per-partner ledger summary shown in the portal and
// the admin detail view. All amounts are CLP.
type ResumenSocio struct {
	SocioID            uuid.UUID
	TotalGanado        int64
	TotalPagado        int64
	Saldo              int64
	GananciasMes       int64
	CuponesDescargados int
	CuponesAgendados   int
	CuponesCobrados    int
}

// RegistrarPagoInput records a payout to a partner.
type RegistrarPagoInput struct {
	SocioID   uuid.UUID
	Monto     int64
	FechaPago time.Time
	Notas     string
}

// LedgerUsecase defines the commission ledger operations.
type LedgerUsecase interface {
	// Comision computes the commission for a charged tattoo value at the
	// given percentage, rounding half away from zero.
	Comision(valor int64, porcentaje int) int64

	// GetResumenSocio computes the partner's ledger summary from coupons
	// currently in estado cobrado and the recorded payments. The
	// commission percentage is read from the current site configuration.
	GetResumenSocio(ctx context.Context, socioID uuid.UUID) (*ResumenSocio, error)

	// RegistrarPago appends a payment. Payments are never edited or deleted.
	RegistrarPago(ctx context.Context, input RegistrarPagoInput) (*entity.Pago, error)

	ListPagos(ctx context.Context) ([]*entity.Pago, error)
	ListPagosSocio(ctx context.Context, socioID uuid.UUID) ([]*entity.Pago, error)

	// ExportarComisiones renders the commissions workbook (xlsx): one row
	// per partner with charged-coupon count, commission earned, total paid
	// and outstanding balance.
	ExportarComisiones(ctx context.Context) ([]byte, error)
}
