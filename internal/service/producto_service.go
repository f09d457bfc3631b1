package service

import (
	"context"
	"errors"

	"github.com/FranCa26/InvenLink-24-7/internal/dto"
	"github.com/FranCa26/InvenLink-24-7/internal/model"
	"github.com/FranCa26/InvenLink-24-7/internal/repository"

	"gorm.io/gorm"
)

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Filtrar(ctx context.Context, text string) ([]dto.ProductoResponse, error)
	Obtener(ctx context.Context, codigo string) (*dto.ProductoResponse, error)
	Crear(ctx context.Context, req dto.CrearProductoRequest) error
	Actualizar(ctx context.Context, codigo string, req dto.ActualizarProductoRequest) error
	// IncrementarStock adds cantidad (> 0) to the current stock and returns the new value.
	IncrementarStock(ctx context.Context, codigo string, cantidad int) (int, error)
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return productosToResponse(productos), nil
}

func (s *productoService) Filtrar(ctx context.Context, text string) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.Filter(ctx, text)
	if err != nil {
		return nil, err
	}
	return productosToResponse(productos), nil
}

func (s *productoService) Obtener(ctx context.Context, codigo string) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) error {
	if _, err := s.repo.FindByCodigo(ctx, req.CodProducto); err == nil {
		return ErrProductoExistente
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	p := &model.Producto{
		CodProducto:  req.CodProducto,
		Nombre:       req.Nombre,
		Marca:        req.Marca,
		Categoria:    req.Categoria,
		StockInicial: derefInt(req.StockInicial),
		StockActual:  derefInt(req.StockActual),
	}
	if req.Talle != nil {
		p.Talle = *req.Talle
	}
	if req.PrecCosto != nil {
		p.PrecCosto = *req.PrecCosto
	}
	if req.PrecVenta != nil {
		p.PrecVenta = *req.PrecVenta
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// the unique key closes the window between the check and the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrProductoExistente
		}
		return err
	}
	return nil
}

func (s *productoService) Actualizar(ctx context.Context, codigo string, req dto.ActualizarProductoRequest) error {
	if _, err := s.repo.FindByCodigo(ctx, codigo); err != nil {
		return err
	}
	// Estado is derived from stock and never written.
	return s.repo.Update(ctx, codigo, model.ProductoPatch{
		Nombre:       &req.Nombre,
		Marca:        &req.Marca,
		Talle:        &req.Talle,
		Categoria:    &req.Categoria,
		StockInicial: req.StockInicial,
		StockActual:  req.StockActual,
		PrecCosto:    req.PrecCosto,
		PrecVenta:    req.PrecVenta,
	})
}

func (s *productoService) IncrementarStock(ctx context.Context, codigo string, cantidad int) (int, error) {
	if cantidad <= 0 {
		return 0, ErrCantidadInvalida
	}
	p, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return 0, err
	}
	nuevo := p.StockActual + cantidad
	if err := s.repo.SetStock(ctx, codigo, nuevo); err != nil {
		return 0, err
	}
	return nuevo, nil
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		CodProducto:  p.CodProducto,
		Nombre:       p.Nombre,
		Marca:        p.Marca,
		Talle:        p.Talle,
		Categoria:    p.Categoria,
		StockInicial: p.StockInicial,
		StockActual:  p.StockActual,
		PrecCosto:    p.PrecCosto,
		PrecVenta:    p.PrecVenta,
		Estado:       p.Estado(),
	}
}

func productosToResponse(productos []model.Producto) []dto.ProductoResponse {
	resp := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		resp[i] = productoToResponse(&productos[i])
	}
	return resp
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
