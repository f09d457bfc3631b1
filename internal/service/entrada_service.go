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

type EntradaService interface {
	// Crear records a goods receipt and returns its id.
	Crear(ctx context.Context, req dto.CrearEntradaRequest) (int64, error)
	Listar(ctx context.Context) ([]dto.EntradaResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*dto.EntradaResponse, error)
	Resumen(ctx context.Context) (*dto.ResumenEntradas, error)
	// Comprobante writes the receipt PDF for id to w.
	Comprobante(ctx context.Context, id int64, w io.Writer) error
}

type entradaService struct {
	repo         repository.EntradaRepository
	productoRepo repository.ProductoRepository
	clock        *clock.Clock
	cache        ResumenCache
}

func NewEntradaService(repo repository.EntradaRepository, productoRepo repository.ProductoRepository, clk *clock.Clock, cache ResumenCache) EntradaService {
	return &entradaService{repo: repo, productoRepo: productoRepo, clock: clk, cache: cache}
}

// ── Crear ─────────────────────────────────────────────────────────────────────
//   1. Pre-flight outside TX: lines well formed, every product exists
//   2. BEGIN TX: header with server timestamp, then per line (input order)
//      insert line, add stock, set cost price, seed sale price if still 0
//   3. COMMIT, then drop the cached summaries

func (s *entradaService) Crear(ctx context.Context, req dto.CrearEntradaRequest) (int64, error) {
	if err := validarDetalles(req.Detalles); err != nil {
		return 0, err
	}
	if _, err := resolverProductos(ctx, s.productoRepo, req.Detalles); err != nil {
		return 0, err
	}

	entrada := &model.Entrada{
		Proveedor:     valorODefault(req.Entrada.Proveedor, "Proveedor General"),
		Total:         totalOSuma(req.Entrada.Total, req.Detalles),
		NumeroFactura: req.Entrada.NumeroFactura,
		Observaciones: req.Entrada.Observaciones,
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		entrada.Fecha = s.clock.Timestamp()
		if err := s.repo.CreateTx(tx, entrada); err != nil {
			return err
		}
		for _, d := range req.Detalles {
			det := &model.DetalleEntrada{
				IdEntrada:      entrada.IdEntrada,
				Codigo:         d.CodProducto,
				Cantidad:       d.Cantidad,
				PrecioUnitario: *d.PrecioUnitario,
			}
			if err := s.repo.CreateDetalleTx(tx, det); err != nil {
				return err
			}
			if err := s.productoRepo.AplicarEntradaTx(tx, d.CodProducto, d.Cantidad, *d.PrecioUnitario); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate(ctx)
	return entrada.IdEntrada, nil
}

func (s *entradaService) Listar(ctx context.Context) ([]dto.EntradaResponse, error) {
	entradas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EntradaResponse, len(entradas))
	for i := range entradas {
		resp[i] = entradaToResponse(&entradas[i])
	}
	return resp, nil
}

func (s *entradaService) ObtenerPorID(ctx context.Context, id int64) (*dto.EntradaResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := entradaToResponse(e)
	return &resp, nil
}

func (s *entradaService) Resumen(ctx context.Context) (*dto.ResumenEntradas, error) {
	key := s.cache.Key(ctx, infra.ResumenEntradasKey, s.clock.Dia())
	var cached dto.ResumenEntradas
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	hoy, mes := s.clock.Hoy(), s.clock.Mes()
	totalHoy, err := s.repo.SumTotal(ctx, hoy.Desde, hoy.Hasta)
	if err != nil {
		return nil, err
	}
	totalMes, err := s.repo.SumTotal(ctx, mes.Desde, mes.Hasta)
	if err != nil {
		return nil, err
	}
	top, err := s.repo.TopProductos(ctx, topProductosResumen)
	if err != nil {
		return nil, err
	}

	resp := &dto.ResumenEntradas{
		EntradasHoy:           totalHoy,
		EntradasMes:           totalMes,
		ProductosMasComprados: make([]dto.ProductoComprado, len(top)),
	}
	for i, t := range top {
		resp.ProductosMasComprados[i] = dto.ProductoComprado{CodProducto: t.CodProducto, Nombre: t.Nombre, Cantidad: t.Cantidad}
	}
	s.cache.Set(ctx, key, resp)
	return resp, nil
}

func (s *entradaService) Comprobante(ctx context.Context, id int64, w io.Writer) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return infra.ComprobanteEntradaPDF(w, e)
}

func entradaToResponse(e *model.Entrada) dto.EntradaResponse {
	resp := dto.EntradaResponse{
		IdEntrada:     e.IdEntrada,
		Fecha:         e.Fecha,
		Proveedor:     e.Proveedor,
		Total:         e.Total,
		NumeroFactura: e.NumeroFactura,
		Observaciones: e.Observaciones,
		Detalles:      make([]dto.DetalleResponse, len(e.Detalles)),
	}
	for i, d := range e.Detalles {
		resp.Detalles[i] = detalleToResponse(d.IdDetalle, d.Codigo, d.Cantidad, d.PrecioUnitario, d.Producto)
	}
	return resp
}
