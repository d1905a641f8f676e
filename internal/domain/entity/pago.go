package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pago is a manually recorded commission payout to a partner. Entries are
// append-only: never updated or deleted by normal flow.
type Pago struct {
	ID        uuid.UUID
	SocioID   uuid.UUID
	Monto     int64 // CLP, always positive.
	FechaPago time.Time
	Notas     *string

	CreatedAt time.Time
}
