// Package model holds the GORM persistence models. They mirror table layout
// and stay separate from the domain entities, which never carry gorm tags.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SocioModel mirrors the 'socios' table.
type SocioModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Codigo          string    `gorm:"type:varchar(6);unique;not null"`
	PIN             string    `gorm:"column:pin;type:varchar(6);not null"`
	NombreLocal     string    `gorm:"type:varchar(255);not null"`
	Direccion       string    `gorm:"type:varchar(255)"`
	NombreEncargado string    `gorm:"type:varchar(255);not null"`
	Telefono        string    `gorm:"type:varchar(20);not null"`
	Instagram       string    `gorm:"type:varchar(100)"`
	Email           string    `gorm:"type:varchar(255);not null"`
	Link            *string   `gorm:"type:varchar(500)"`
	LogoURL         *string   `gorm:"column:logo_url;type:varchar(500)"`
	TitularCuenta   string    `gorm:"type:varchar(255)"`
	RUT             string    `gorm:"column:rut;type:varchar(15)"`
	Banco           string    `gorm:"type:varchar(100)"`
	TipoCuenta      string    `gorm:"type:varchar(50)"`
	NumeroCuenta    string    `gorm:"type:varchar(50)"`
	Activo          bool      `gorm:"not null;default:false"`
	Aprobado        bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SocioModel) TableName() string {
	return "socios"
}
