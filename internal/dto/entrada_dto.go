package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// DetalleRequest is one line of a receipt or sale.
type DetalleRequest struct {
	CodProducto    string           `json:"Cod_Producto"    validate:"required"`
	Cantidad       int              `json:"Cantidad"        validate:"gt=0"`
	PrecioUnitario *decimal.Decimal `json:"Precio_Unitario" validate:"required,min=0"`
}

type EntradaHeader struct {
	Proveedor     string           `json:"Proveedor"      validate:"max=100"`
	Total         *decimal.Decimal `json:"Total"`
	NumeroFactura string           `json:"Numero_Factura" validate:"max=50"`
	Observaciones string           `json:"Observaciones"`
}

type CrearEntradaRequest struct {
	Entrada  EntradaHeader    `json:"entrada"`
	Detalles []DetalleRequest `json:"detalles" validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// DetalleResponse carries Nombre_Producto and Marca only on single fetches.
type DetalleResponse struct {
	IdDetalle      int64           `json:"Id_Detalle,omitempty"`
	CodProducto    string          `json:"Cod_Producto"`
	Cantidad       int             `json:"Cantidad"`
	PrecioUnitario decimal.Decimal `json:"Precio_Unitario"`
	NombreProducto *string         `json:"Nombre_Producto,omitempty"`
	Marca          *string         `json:"Marca,omitempty"`
}

type EntradaResponse struct {
	IdEntrada     int64             `json:"Id_Entrada"`
	Fecha         string            `json:"Fecha"`
	Proveedor     string            `json:"Proveedor"`
	Total         decimal.Decimal   `json:"Total"`
	NumeroFactura string            `json:"Numero_Factura"`
	Observaciones string            `json:"Observaciones"`
	Detalles      []DetalleResponse `json:"Detalles"`
}

// CrearEntradaResponse returns the id as a string.
type CrearEntradaResponse struct {
	Message   string `json:"message"`
	IdEntrada string `json:"Id_Entrada"`
}

type ProductoComprado struct {
	CodProducto string `json:"Cod_Producto"`
	Nombre      string `json:"Nombre"`
	Cantidad    int64  `json:"Cantidad"`
}

type ResumenEntradas struct {
	EntradasHoy           decimal.Decimal    `json:"entradasHoy"`
	EntradasMes           decimal.Decimal    `json:"entradasMes"`
	ProductosMasComprados []ProductoComprado `json:"productosMasComprados"`
}
