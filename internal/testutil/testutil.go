// Package testutil builds throwaway SQLite databases with the production
// schema, plus fixtures shared by package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/FranCa26/InvenLink-24-7/internal/config"
	"github.com/FranCa26/InvenLink-24-7/internal/infra"
	"github.com/FranCa26/InvenLink-24-7/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated file-backed SQLite database that is removed with
// t.TempDir. Writers take the lock at BEGIN so concurrent transactions queue
// on the busy timeout instead of failing.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") +
		"?_busy_timeout=10000&_txlock=immediate&_journal_mode=WAL&_foreign_keys=on"
	db, err := infra.NewDatabase(&config.Config{
		DatabaseDriver: "sqlite",
		DatabaseURL:    dsn,
		DBMaxOpenConns: 5,
		DBMaxIdleConns: 5,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.CloseDatabase(db) })
	return db
}

// Producto inserts a product with the given stock and prices.
func Producto(t *testing.T, db *gorm.DB, codigo, nombre string, stock int, costo, venta string) *model.Producto {
	t.Helper()
	p := &model.Producto{
		CodProducto:  codigo,
		Nombre:       nombre,
		Marca:        "Marca " + codigo,
		Talle:        "M",
		Categoria:    "General",
		StockInicial: stock,
		StockActual:  stock,
		PrecCosto:    decimal.RequireFromString(costo),
		PrecVenta:    decimal.RequireFromString(venta),
	}
	require.NoError(t, db.WithContext(context.Background()).Create(p).Error)
	return p
}

// ReloadProducto reads the product row back from the database.
func ReloadProducto(t *testing.T, db *gorm.DB, codigo string) model.Producto {
	t.Helper()
	var p model.Producto
	require.NoError(t, db.Where("cod_producto = ?", codigo).First(&p).Error)
	return p
}

// Count returns the number of rows of m's table.
func Count(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
