package service

import (
	"context"
	"errors"

	"github.com/FranCa26/InvenLink-24-7/internal/dto"
	"github.com/FranCa26/InvenLink-24-7/internal/model"
	"github.com/FranCa26/InvenLink-24-7/internal/repository"

	"github.com/shopspring/decimal"
)

const topProductosResumen = 5

// validarDetalles rejects an empty line list and malformed lines.
func validarDetalles(detalles []dto.DetalleRequest) error {
	if len(detalles) == 0 {
		return ErrSinDetalles
	}
	for _, d := range detalles {
		if d.CodProducto == "" || d.Cantidad <= 0 || d.PrecioUnitario == nil || d.PrecioUnitario.IsNegative() {
			return ErrDetalleInvalido
		}
	}
	return nil
}

// resolverProductos loads every referenced product, in line order.
func resolverProductos(ctx context.Context, repo repository.ProductoRepository, detalles []dto.DetalleRequest) ([]*model.Producto, error) {
	productos := make([]*model.Producto, len(detalles))
	for i, d := range detalles {
		p, err := repo.FindByCodigo(ctx, d.CodProducto)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ProductoNoEncontradoError{Codigo: d.CodProducto}
		}
		if err != nil {
			return nil, err
		}
		productos[i] = p
	}
	return productos, nil
}

// totalOSuma keeps a declared non-zero total, otherwise sums cantidad × precio.
func totalOSuma(declarado *decimal.Decimal, detalles []dto.DetalleRequest) decimal.Decimal {
	if declarado != nil && !declarado.IsZero() {
		return *declarado
	}
	total := decimal.Zero
	for _, d := range detalles {
		total = total.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))))
	}
	return total
}

func valorODefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func detalleToResponse(id int64, cod string, cantidad int, precio decimal.Decimal, p *model.Producto) dto.DetalleResponse {
	d := dto.DetalleResponse{
		IdDetalle:      id,
		CodProducto:    cod,
		Cantidad:       cantidad,
		PrecioUnitario: precio,
	}
	if p != nil {
		nombre, marca := p.Nombre, p.Marca
		d.NombreProducto = &nombre
		d.Marca = &marca
	}
	return d
}
