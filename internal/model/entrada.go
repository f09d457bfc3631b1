package model

import "github.com/shopspring/decimal"

// Entrada is a goods receipt. Fecha is store-local civil time in
// clock.Layout; it is assigned by the server on creation.
type Entrada struct {
	IdEntrada     int64           `gorm:"primaryKey;autoIncrement"`
	Fecha         string          `gorm:"type:varchar(19);not null;index"`
	Proveedor     string          `gorm:"type:varchar(100);not null;default:'Proveedor General'"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	NumeroFactura string          `gorm:"type:varchar(50);not null;default:''"`
	Observaciones string          `gorm:"type:text;not null;default:''"`

	Detalles []DetalleEntrada `gorm:"foreignKey:IdEntrada"`
}

func (Entrada) TableName() string { return "entradas" }

type DetalleEntrada struct {
	IdDetalle      int64           `gorm:"primaryKey;autoIncrement"`
	IdEntrada      int64           `gorm:"not null;index"`
	Codigo         string          `gorm:"column:cod_producto;type:varchar(50);not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	// Codigo is named apart from Producto.CodProducto so the association
	// resolves as belongs-to: the FK lives on this table.
	Producto *Producto `gorm:"foreignKey:Codigo;references:CodProducto;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (DetalleEntrada) TableName() string { return "detalles_entrada" }

// ProductoComprado is one row of the most-received products ranking.
type ProductoComprado struct {
	CodProducto string
	Nombre      string
	Cantidad    int64
}
