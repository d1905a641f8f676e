// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Socio is a commercial partner referring customers for a percentage
// commission. Partners authenticate into the portal with Codigo + PIN and are
// only allowed to transact while both Activo and Aprobado are set.
type Socio struct {
	ID uuid.UUID

	// Codigo is the 6-character [A-Z0-9] referral code, globally unique and
	// immutable after creation (except through explicit regeneration).
	Codigo string
	// PIN is the 6-digit numeric secondary credential. PINs are scoped per
	// partner; collisions across partners are acceptable.
	PIN string

	NombreLocal     string
	Direccion       string
	NombreEncargado string
	Telefono        string // Chilean mobile format.
	Instagram       string // Normalized to always carry the leading @.
	Email           string
	Link            *string
	LogoURL         *string

	// Payout data.
	TitularCuenta string
	RUT           string // Canonical punctuated form, e.g. 11.111.111-1.
	Banco         string
	TipoCuenta    string
	NumeroCuenta  string

	Activo   bool
	Aprobado bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PuedeEmitirCupones reports whether the partner's code is currently accepted
// for coupon issuance (and, equivalently, whether the partner may log into
// the portal).
func (s *Socio) PuedeEmitirCupones() bool {
	return s.Activo && s.Aprobado
}
