package model

import (
	"time"

	"github.com/google/uuid"
)

// CuponModel mirrors the 'cupones' table.
type CuponModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key"`
	Codigo           string     `gorm:"type:varchar(20);unique;not null"`
	SocioID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClienteNombre    string     `gorm:"type:varchar(255);not null"`
	ClienteWhatsapp  string     `gorm:"type:varchar(20);not null"`
	ClienteInstagram string     `gorm:"type:varchar(100)"`
	Estado           string     `gorm:"type:varchar(20);not null;index"`
	FechaDescarga    time.Time  `gorm:"not null"`
	FechaAgendado    *time.Time
	FechaCobrado     *time.Time
	ArtistaID        *uuid.UUID `gorm:"type:uuid;index"`
	ValorTatuaje     *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CuponModel) TableName() string {
	return "cupones"
}
