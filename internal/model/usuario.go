package model

import "time"

const (
	RolAdmin    = "admin"
	RolVendedor = "vendedor"
)

// Usuario stores system users. Password holds the bcrypt hash, never the
// plain text.
type Usuario struct {
	IdUsuario int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	Nombre    string `gorm:"type:varchar(100);not null"`
	Rol       string `gorm:"type:varchar(20);not null;default:'vendedor'"`
	CreatedAt time.Time
}

func (Usuario) TableName() string { return "usuarios" }
