package model

import (
	"time"

	"github.com/google/uuid"
)

// ArtistaModel mirrors the 'artistas' table.
type ArtistaModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Nombre    string    `gorm:"type:varchar(255);not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArtistaModel) TableName() string {
	return "artistas"
}
