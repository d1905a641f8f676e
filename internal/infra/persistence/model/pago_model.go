package model

import (
	"time"

	"github.com/google/uuid"
)

// PagoModel mirrors the 'pagos' table. Rows are append-only.
type PagoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	SocioID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Monto     int64     `gorm:"not null"`
	FechaPago time.Time `gorm:"not null"`
	Notas     *string   `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PagoModel) TableName() string {
	return "pagos"
}
