package entity

import (
	"time"

	"github.com/google/uuid"
)

// Artista is a studio tattoo artist coupons get assigned to from the
// agendado stage onward.
type Artista struct {
	ID     uuid.UUID
	Nombre string
	Activo bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
