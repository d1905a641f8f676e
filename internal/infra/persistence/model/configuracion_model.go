package model

import "time"

// ConfiguracionModel mirrors the key/value 'configuracion' table. The site
// configuration is assembled from these rows rather than stored as one record.
type ConfiguracionModel struct {
	Clave     string `gorm:"type:varchar(100);primary_key"`
	Valor     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConfiguracionModel) TableName() string {
	return "configuracion"
}
