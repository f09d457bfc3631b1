package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// Money travels as a JSON number; the bundled frontend does arithmetic on it.
	decimal.MarshalJSONWithoutQuotes = true
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearProductoRequest requires every field. Pointer fields accept zero
// values (an empty Talle, zero stock, zero price) but not absence.
type CrearProductoRequest struct {
	CodProducto  string           `json:"Cod_Producto"  validate:"required,max=50"`
	Nombre       string           `json:"Nombre"        validate:"required,max=100"`
	Marca        string           `json:"Marca"         validate:"required,max=100"`
	Talle        *string          `json:"Talle"         validate:"required,max=20"`
	Categoria    string           `json:"Categoria"     validate:"required,max=50"`
	StockInicial *int             `json:"Stock_Inicial" validate:"required,min=0"`
	StockActual  *int             `json:"Stock_Actual"  validate:"required,min=0"`
	PrecCosto    *decimal.Decimal `json:"Prec_Costo"    validate:"required,min=0"`
	PrecVenta    *decimal.Decimal `json:"Prec_Venta"    validate:"required,min=0"`
}

// ActualizarProductoRequest is the full-update body. Estado is accepted for
// compatibility with older clients and ignored: it is derived from stock.
type ActualizarProductoRequest struct {
	Nombre       string           `json:"Nombre"        validate:"required,max=100"`
	Marca        string           `json:"Marca"         validate:"required,max=100"`
	Talle        string           `json:"Talle"         validate:"required,max=20"`
	Categoria    string           `json:"Categoria"     validate:"required,max=50"`
	StockInicial *int             `json:"Stock_Inicial" validate:"required,min=0"`
	StockActual  *int             `json:"Stock_Actual"  validate:"required,min=0"`
	PrecCosto    *decimal.Decimal `json:"Prec_Costo"    validate:"required,min=0"`
	PrecVenta    *decimal.Decimal `json:"Prec_Venta"    validate:"required,min=0"`
	Estado       *string          `json:"Estado"`
}

// ActualizarStockRequest accepts the quantity as a JSON number or a numeric string.
type ActualizarStockRequest struct {
	Cantidad json.Number `json:"cantidad"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	CodProducto  string          `json:"Cod_Producto"`
	Nombre       string          `json:"Nombre"`
	Marca        string          `json:"Marca"`
	Talle        string          `json:"Talle"`
	Categoria    string          `json:"Categoria"`
	StockInicial int             `json:"Stock_Inicial"`
	StockActual  int             `json:"Stock_Actual"`
	PrecCosto    decimal.Decimal `json:"Prec_Costo"`
	PrecVenta    decimal.Decimal `json:"Prec_Venta"`
	Estado       string          `json:"Estado"`
}

type ActualizarStockResponse struct {
	Message    string `json:"message"`
	NuevoStock int    `json:"nuevoStock"`
}
