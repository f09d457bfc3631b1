package model

import "github.com/shopspring/decimal"

// Venta is a sale. Fecha follows the same convention as Entrada.Fecha.
type Venta struct {
	IdVenta       int64           `gorm:"primaryKey;autoIncrement"`
	Fecha         string          `gorm:"type:varchar(19);not null;index"`
	NombreCliente string          `gorm:"type:varchar(100);not null;default:'Cliente General'"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MetodoPago    string          `gorm:"type:varchar(30);not null;default:'Efectivo'"`
	Observaciones string          `gorm:"type:text;not null;default:''"`

	Detalles []DetalleVenta `gorm:"foreignKey:IdVenta"`
}

func (Venta) TableName() string { return "ventas" }

type DetalleVenta struct {
	IdDetalle      int64           `gorm:"primaryKey;autoIncrement"`
	IdVenta        int64           `gorm:"not null;index"`
	Codigo         string          `gorm:"column:cod_producto;type:varchar(50);not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	// Codigo is named apart from Producto.CodProducto so the association
	// resolves as belongs-to: the FK lives on this table.
	Producto *Producto `gorm:"foreignKey:Codigo;references:CodProducto;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (DetalleVenta) TableName() string { return "detalles_venta" }

// VentaDeProducto is a sale header together with the quantity and price of
// the line that references one particular product.
type VentaDeProducto struct {
	IdVenta        int64
	Fecha          string
	NombreCliente  string
	Total          decimal.Decimal
	MetodoPago     string
	Observaciones  string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}
