package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// VentaHeader accepts the customer either as Cliente or Nombre_Cliente.
type VentaHeader struct {
	Cliente       string           `json:"Cliente"        validate:"max=100"`
	NombreCliente string           `json:"Nombre_Cliente" validate:"max=100"`
	Total         *decimal.Decimal `json:"Total"`
	MetodoPago    string           `json:"Metodo_Pago"    validate:"max=30"`
	Observaciones string           `json:"Observaciones"`
}

type CrearVentaRequest struct {
	Venta    VentaHeader      `json:"venta"`
	Detalles []DetalleRequest `json:"detalles" validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VentaResponse struct {
	IdVenta       int64             `json:"Id_Venta"`
	Fecha         string            `json:"Fecha"`
	NombreCliente string            `json:"Nombre_Cliente"`
	Total         decimal.Decimal   `json:"Total"`
	MetodoPago    string            `json:"Metodo_Pago"`
	Observaciones string            `json:"Observaciones"`
	Detalles      []DetalleResponse `json:"Detalles"`
}

// VentaDeProductoResponse is a sale header plus the line for one product.
type VentaDeProductoResponse struct {
	IdVenta        int64           `json:"Id_Venta"`
	Fecha          string          `json:"Fecha"`
	NombreCliente  string          `json:"Nombre_Cliente"`
	Total          decimal.Decimal `json:"Total"`
	MetodoPago     string          `json:"Metodo_Pago"`
	Observaciones  string          `json:"Observaciones"`
	Cantidad       int             `json:"Cantidad"`
	PrecioUnitario decimal.Decimal `json:"Precio_Unitario"`
}

type CrearVentaResponse struct {
	Message string `json:"message"`
	IdVenta string `json:"Id_Venta"`
}

// ResumenVentas amounts are fixed two-decimal strings.
type ResumenVentas struct {
	VentasHoy    string `json:"ventasHoy"`
	VentasSemana string `json:"ventasSemana"`
	VentasMes    string `json:"ventasMes"`
}

func ResumenVentasVacio() ResumenVentas {
	return ResumenVentas{VentasHoy: "0.00", VentasSemana: "0.00", VentasMes: "0.00"}
}
