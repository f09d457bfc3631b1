package service

import (
	"context"
	"io"

	"github.com/FranCa26/InvenLink-24-7/internal/clock"
	"github.com/FranCa26/InvenLink-24-7/internal/dto"
	"github.com/FranCa26/InvenLink-24-7/internal/infra"
	"github.com/FranCa26/InvenLink-24-7/internal/model"
	"github.com/FranCa26/InvenLink-24-7/internal/repository"

	"gorm.io/gorm"
)

type VentaService interface {
	// Crear records a sale and returns its id. It never oversells: a line
	// whose quantity exceeds the stock at commit time aborts the whole sale
	// with a *StockInsuficienteError.
	Crear(ctx context.Context, req dto.CrearVentaRequest) (int64, error)
	Listar(ctx context.Context) ([]dto.VentaResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*dto.VentaResponse, error)
	// ListarPorProducto returns ErrNotFound when the product does not exist.
	ListarPorProducto(ctx context.Context, codigo string) ([]dto.VentaDeProductoResponse, error)
	Resumen(ctx context.Context) (*dto.ResumenVentas, error)
	Comprobante(ctx context.Context, id int64, w io.Writer) error
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	clock        *clock.Clock
	cache        ResumenCache
}

func NewVentaService(repo repository.VentaRepository, productoRepo repository.ProductoRepository, clk *clock.Clock, cache ResumenCache) VentaService {
	return &ventaService{repo: repo, productoRepo: productoRepo, clock: clk, cache: cache}
}

// ── Crear ─────────────────────────────────────────────────────────────────────
//   1. Pre-flight outside TX: lines well formed, products exist, stock covers
//      each line (gives the caller a precise message)
//   2. BEGIN TX: header with server timestamp, then per line (input order)
//      insert line and decrement stock only where stock_actual >= cantidad
//   3. COMMIT, then drop the cached summaries

func (s *ventaService) Crear(ctx context.Context, req dto.CrearVentaRequest) (int64, error) {
	if err := validarDetalles(req.Detalles); err != nil {
		return 0, err
	}
	productos, err := resolverProductos(ctx, s.productoRepo, req.Detalles)
	if err != nil {
		return 0, err
	}
	for i, d := range req.Detalles {
		if p := productos[i]; p.StockActual < d.Cantidad {
			return 0, &StockInsuficienteError{Codigo: p.CodProducto, Nombre: p.Nombre, Disponible: p.StockActual}
		}
	}

	cliente := req.Venta.Cliente
	if cliente == "" {
		cliente = req.Venta.NombreCliente
	}
	venta := &model.Venta{
		NombreCliente: valorODefault(cliente, "Cliente General"),
		Total:         totalOSuma(req.Venta.Total, req.Detalles),
		MetodoPago:    valorODefault(req.Venta.MetodoPago, "Efectivo"),
		Observaciones: req.Venta.Observaciones,
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		venta.Fecha = s.clock.Timestamp()
		if err := s.repo.CreateTx(tx, venta); err != nil {
			return err
		}
		for _, d := range req.Detalles {
			det := &model.DetalleVenta{
				IdVenta:        venta.IdVenta,
				Codigo:         d.CodProducto,
				Cantidad:       d.Cantidad,
				PrecioUnitario: *d.PrecioUnitario,
			}
			if err := s.repo.CreateDetalleTx(tx, det); err != nil {
				return err
			}
			ok, err := s.productoRepo.DescontarStockTx(tx, d.CodProducto, d.Cantidad)
			if err != nil {
				return err
			}
			if !ok {
				return s.stockInsuficienteTx(tx, d.CodProducto)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate(ctx)
	return venta.IdVenta, nil
}

// stockInsuficienteTx builds the rejection from the stock seen inside the transaction.
func (s *ventaService) stockInsuficienteTx(tx *gorm.DB, codigo string) error {
	p, err := s.productoRepo.FindByCodigoTx(tx, codigo)
	if err != nil {
		return err
	}
	return &StockInsuficienteError{Codigo: codigo, Nombre: p.Nombre, Disponible: p.StockActual}
}

func (s *ventaService) Listar(ctx context.Context) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VentaResponse, len(ventas))
	for i := range ventas {
		resp[i] = ventaToResponse(&ventas[i])
	}
	return resp, nil
}

func (s *ventaService) ObtenerPorID(ctx context.Context, id int64) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ventaToResponse(v)
	return &resp, nil
}

func (s *ventaService) ListarPorProducto(ctx context.Context, codigo string) ([]dto.VentaDeProductoResponse, error) {
	if _, err := s.productoRepo.FindByCodigo(ctx, codigo); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByProducto(ctx, codigo)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VentaDeProductoResponse, len(rows))
	for i, r := range rows {
		resp[i] = dto.VentaDeProductoResponse{
			IdVenta:        r.IdVenta,
			Fecha:          r.Fecha,
			NombreCliente:  r.NombreCliente,
			Total:          r.Total,
			MetodoPago:     r.MetodoPago,
			Observaciones:  r.Observaciones,
			Cantidad:       r.Cantidad,
			PrecioUnitario: r.PrecioUnitario,
		}
	}
	return resp, nil
}

func (s *ventaService) Resumen(ctx context.Context) (*dto.ResumenVentas, error) {
	key := s.cache.Key(ctx, infra.ResumenVentasKey, s.clock.Dia())
	var cached dto.ResumenVentas
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	var totales [3]string
	for i, p := range []clock.Periodo{s.clock.Hoy(), s.clock.Semana(), s.clock.Mes()} {
		total, err := s.repo.SumTotal(ctx, p.Desde, p.Hasta)
		if err != nil {
			return nil, err
		}
		totales[i] = total.StringFixed(2)
	}

	resp := &dto.ResumenVentas{VentasHoy: totales[0], VentasSemana: totales[1], VentasMes: totales[2]}
	s.cache.Set(ctx, key, resp)
	return resp, nil
}

func (s *ventaService) Comprobante(ctx context.Context, id int64, w io.Writer) error {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return infra.ComprobanteVentaPDF(w, v)
}

func ventaToResponse(v *model.Venta) dto.VentaResponse {
	resp := dto.VentaResponse{
		IdVenta:       v.IdVenta,
		Fecha:         v.Fecha,
		NombreCliente: v.NombreCliente,
		Total:         v.Total,
		MetodoPago:    v.MetodoPago,
		Observaciones: v.Observaciones,
		Detalles:      make([]dto.DetalleResponse, len(v.Detalles)),
	}
	for i, d := range v.Detalles {
		resp.Detalles[i] = detalleToResponse(d.IdDetalle, d.Codigo, d.Cantidad, d.PrecioUnitario, d.Producto)
	}
	return resp
}
