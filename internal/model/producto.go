package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EstadoDisponible = "Disponible"
	EstadoAgotado    = "Agotado"
)

// Producto is identified by its human-assigned code, which never changes
// after creation. Estado is derived from StockActual and is not stored.
type Producto struct {
	CodProducto  string          `gorm:"primaryKey;type:varchar(50)"`
	Nombre       string          `gorm:"type:varchar(100);not null;index"`
	Marca        string          `gorm:"type:varchar(100);not null"`
	Talle        string          `gorm:"type:varchar(20);not null;default:''"`
	Categoria    string          `gorm:"type:varchar(50);not null;index"`
	StockInicial int             `gorm:"not null;default:0"`
	StockActual  int             `gorm:"not null;default:0"`
	PrecCosto    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PrecVenta    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Producto) TableName() string { return "productos" }

func (p *Producto) Estado() string {
	if p.StockActual > 0 {
		return EstadoDisponible
	}
	return EstadoAgotado
}

// ProductoPatch enumerates the columns a product update may write.
// Nil fields are left untouched.
type ProductoPatch struct {
	Nombre       *string
	Marca        *string
	Talle        *string
	Categoria    *string
	StockInicial *int
	StockActual  *int
	PrecCosto    *decimal.Decimal
	PrecVenta    *decimal.Decimal
}

// Columns returns the column/value pairs set in the patch.
func (p ProductoPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Nombre != nil {
		cols["nombre"] = *p.Nombre
	}
	if p.Marca != nil {
		cols["marca"] = *p.Marca
	}
	if p.Talle != nil {
		cols["talle"] = *p.Talle
	}
	if p.Categoria != nil {
		cols["categoria"] = *p.Categoria
	}
	if p.StockInicial != nil {
		cols["stock_inicial"] = *p.StockInicial
	}
	if p.StockActual != nil {
		cols["stock_actual"] = *p.StockActual
	}
	if p.PrecCosto != nil {
		cols["prec_costo"] = *p.PrecCosto
	}
	if p.PrecVenta != nil {
		cols["prec_venta"] = *p.PrecVenta
	}
	return cols
}
