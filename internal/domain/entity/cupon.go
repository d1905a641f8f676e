package entity

import (
	"time"

	"github.com/google/uuid"
)

// EstadoCupon is the lifecycle stage of a coupon.
type EstadoCupon string

const (
	// EstadoDescargado is the initial state: the customer downloaded the
	// coupon but has not scheduled a session yet.
	EstadoDescargado EstadoCupon = "descargado"
	// EstadoAgendado means a session was scheduled with an artist.
	EstadoAgendado EstadoCupon = "agendado"
	// EstadoCobrado means the tattoo was charged; the coupon now carries the
	// tattoo value the commission is computed from.
	EstadoCobrado EstadoCupon = "cobrado"
)

// Valid reports whether the state is one of the three known stages.
func (e EstadoCupon) Valid() bool {
	switch e {
	case EstadoDescargado, EstadoAgendado, EstadoCobrado:
		return true
	}

	return false
}

// Cupon is a single-use discount voucher tied to one partner and one
// customer. Customer data is a snapshot captured at creation; there is no
// customer account to revalidate against.
//
// Field consistency per state:
//
//	descargado: ArtistaID == nil && ValorTatuaje == nil
//	agendado:   ArtistaID != nil && ValorTatuaje == nil
//	cobrado:    ArtistaID != nil && ValorTatuaje != nil
type Cupon struct {
	ID     uuid.UUID
	Codigo string

	SocioID uuid.UUID // Issuing partner, immutable.

	ClienteNombre    string
	ClienteWhatsapp  string
	ClienteInstagram string

	Estado EstadoCupon

	FechaDescarga time.Time
	FechaAgendado *time.Time
	FechaCobrado  *time.Time

	ArtistaID    *uuid.UUID
	ValorTatuaje *int64 // CLP, positive when present.

	CreatedAt time.Time
	UpdatedAt time.Time
}
