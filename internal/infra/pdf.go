package infra

// pdf.go renders receipt-style PDFs for sales and goods receipts with
// go-pdf/fpdf: store header, document number and timestamp, item table
// (product, quantity, subtotal) and a bold total.

import (
	"fmt"
	"io"

	"github.com/FranCa26/InvenLink-24-7/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const maxNombrePDF = 22

type lineaComprobante struct {
	nombre   string
	cantidad int
	subtotal decimal.Decimal
}

type comprobante struct {
	titulo  string
	numero  string
	fecha   string
	tercero string // cliente o proveedor
	extra   string // método de pago o número de factura
	lineas  []lineaComprobante
	total   decimal.Decimal
	pie     string
}

// ComprobanteVentaPDF writes the sale receipt for v to w. v must have its
// lines loaded; product names fall back to the product code.
func ComprobanteVentaPDF(w io.Writer, v *model.Venta) error {
	cp := comprobante{
		titulo:  "Comprobante de Venta",
		numero:  fmt.Sprintf("Venta N° %d", v.IdVenta),
		fecha:   v.Fecha,
		tercero: "Cliente: " + v.NombreCliente,
		extra:   "Pago: " + v.MetodoPago,
		total:   v.Total,
		pie:     "¡Gracias por su compra!",
	}
	for _, d := range v.Detalles {
		cp.lineas = append(cp.lineas, linea(d.Codigo, d.Producto, d.Cantidad, d.PrecioUnitario))
	}
	return renderComprobante(w, cp)
}

// ComprobanteEntradaPDF writes the goods-receipt voucher for e to w.
func ComprobanteEntradaPDF(w io.Writer, e *model.Entrada) error {
	cp := comprobante{
		titulo:  "Comprobante de Entrada",
		numero:  fmt.Sprintf("Entrada N° %d", e.IdEntrada),
		fecha:   e.Fecha,
		tercero: "Proveedor: " + e.Proveedor,
		total:   e.Total,
	}
	if e.NumeroFactura != "" {
		cp.extra = "Factura: " + e.NumeroFactura
	}
	for _, d := range e.Detalles {
		cp.lineas = append(cp.lineas, linea(d.Codigo, d.Producto, d.Cantidad, d.PrecioUnitario))
	}
	return renderComprobante(w, cp)
}

func linea(codigo string, p *model.Producto, cantidad int, precio decimal.Decimal) lineaComprobante {
	nombre := codigo
	if p != nil && p.Nombre != "" {
		nombre = p.Nombre
	}
	// Truncate long names
	if r := []rune(nombre); len(r) > maxNombrePDF {
		nombre = string(r[:maxNombrePDF-1]) + "…"
	}
	return lineaComprobante{
		nombre:   nombre,
		cantidad: cantidad,
		subtotal: precio.Mul(decimal.NewFromInt(int64(cantidad))),
	}
}

func renderComprobante(w io.Writer, cp comprobante) error {
	// 80mm thermal roll; height grows with the number of lines
	alto := 70 + 5*float64(len(cp.lineas))
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 80, Ht: alto},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.SetAutoPageBreak(false, 4)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// Header
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Inventario", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, tr(cp.titulo), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, tr(cp.numero), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, cp.fecha, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, tr(cp.tercero), "", 1, "L", false, 0, "")
	if cp.extra != "" {
		pdf.CellFormat(contentW, 4, tr(cp.extra), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, l := range cp.lineas {
		pdf.CellFormat(col1, 5, tr(l.nombre), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", l.cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+l.subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+cp.total.StringFixed(2), "", 1, "R", false, 0, "")

	if cp.pie != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.CellFormat(contentW, 4, tr(cp.pie), "", 1, "C", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: render: %w", err)
	}
	return nil
}
