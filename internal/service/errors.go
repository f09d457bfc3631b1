package service

import (
	"errors"
	"fmt"

	"github.com/FranCa26/InvenLink-24-7/internal/repository"
)

var (
	// ErrNotFound is the lookup miss shared with the repository layer.
	ErrNotFound = repository.ErrNotFound

	ErrProductoExistente    = errors.New("El código de producto ya existe.")
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrStockInsuficiente    = errors.New("stock insuficiente")
	ErrUsuarioExistente     = errors.New("El nombre de usuario ya está en uso")
	ErrSinDetalles          = errors.New("sin detalles")
	ErrDetalleInvalido      = errors.New("Cada producto debe tener una cantidad mayor que 0 y un precio unitario válido")
	ErrCantidadInvalida     = errors.New("La cantidad debe ser un número mayor que 0.")
	ErrRolInvalido          = errors.New("El rol debe ser admin o vendedor")
)

// ProductoNoEncontradoError names the unknown product referenced by a line item.
type ProductoNoEncontradoError struct {
	Codigo string
}

func (e *ProductoNoEncontradoError) Error() string {
	return fmt.Sprintf("Producto con código %s no encontrado", e.Codigo)
}

func (e *ProductoNoEncontradoError) Unwrap() error { return ErrProductoNoEncontrado }

// StockInsuficienteError reports the stock available when a sale line was rejected.
type StockInsuficienteError struct {
	Codigo     string
	Nombre     string
	Disponible int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("Stock insuficiente para el producto %s (%s). Disponible: %d", e.Nombre, e.Codigo, e.Disponible)
}

func (e *StockInsuficienteError) Unwrap() error { return ErrStockInsuficiente }

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
