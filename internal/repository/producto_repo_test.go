package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/FranCa26/InvenLink-24-7/internal/model"
	"github.com/FranCa26/InvenLink-24-7/internal/repository"
	"github.com/FranCa26/InvenLink-24-7/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProductoRepo_FindByCodigo(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProductoRepository(db)
	testutil.Producto(t, db, "P1", "Remera", 4, "10", "20")

	p, err := repo.FindByCodigo(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, "Remera", p.Nombre)
	assert.Equal(t, model.EstadoDisponible, p.Estado())

	_, err = repo.FindByCodigo(context.Background(), "NOPE")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductoRepo_ListEmpty(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProductoRepository(db)

	productos, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, productos)
	assert.Empty(t, productos)
}

func TestProductoRepo_FilterByNombreOrCategoria(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProductoRepository(db)
	testutil.Producto(t, db, "A1", "Remera Lisa", 1, "1", "2")
	testutil.Producto(t, db, "A2", "Pantalon", 1, "1", "2")
	require.NoError(t, db.Model(&model.Producto{}).Where("cod_producto = ?", "A2").Update("categoria", "REMERAS y más").Error)
	testutil.Producto(t, db, "A3", "Gorra", 1, "1", "2")

	got, err := repo.Filter(context.Background(), "remera")
	require.NoError(t, err)
	codigos := []string{}
	for _, p := range got {
		codigos = append(codigos, p.CodProducto)
	}
	assert.Equal(t, []string{"A1", "A2"}, codigos)
}

func TestProductoRepo_FilterTreatsWildcardsLiterally(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProductoRepository(db)
	testutil.Producto(t, db, "B1", "Descuento 50%", 1, "1", "2")
	testutil.Producto(t, db, "B2", "Descuento 500", 1, "1", "2")

	got, err := repo.Filter(context.Background(), "50%")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B1", got[0].CodProducto)

	got, err = repo.Filter(context.Background(), "_")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProductoRepo_CreateDuplicate(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProductoRepository(db)
	testutil.Producto(t, db, "D1", "Campera", 1, "1", "2")

	err := repo.Create(context.Background(), &model.Producto{CodProducto: "D1", Nombre: "Otra", Marca: "X", Categoria: "Y"})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func TestProductoRepo_SetStock(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProductoRepository(db)
	testutil.Producto(t, db, "S1", "Media", 3, "1", "2")

	require.NoError(t, repo.SetStock(context.Background(), "S1", 0))
	p := testutil.ReloadProducto(t, db, "S1")
	assert.Equal(t, 0, p.StockActual)
	assert.Equal(t, model.EstadoAgotado, p.Estado())
}

func TestProductoRepo_UpdatePatch(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProductoRepository(db)
	testutil.Producto(t, db, "U1", "Buzo", 3, "10", "20")

	nombre := "Buzo Oversize"
	venta := decimal.RequireFromString("25.50")
	require.NoError(t, repo.Update(context.Background(), "U1", model.ProductoPatch{Nombre: &nombre, PrecVenta: &venta}))

	p := testutil.ReloadProducto(t, db, "U1")
	assert.Equal(t, "Buzo Oversize", p.Nombre)
	assert.True(t, venta.Equal(p.PrecVenta))
	assert.Equal(t, "Marca U1", p.Marca, "fields outside the patch are untouched")
	assert.Equal(t, 3, p.StockActual)
}

func TestProductoRepo_UpdateEmptyPatchIsNoop(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProductoRepository(db)
	testutil.Producto(t, db, "U2", "Buzo", 3, "10", "20")

	assert.NoError(t, repo.Update(context.Background(), "U2", model.ProductoPatch{}))
	assert.Equal(t, "Buzo", testutil.ReloadProducto(t, db, "U2").Nombre)
}

func TestProductoRepo_AplicarEntradaTx(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProductoRepository(db)
	testutil.Producto(t, db, "E1", "Sin precio", 0, "0", "0")
	testutil.Producto(t, db, "E2", "Con precio", 5, "10", "20")

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := repo.AplicarEntradaTx(tx, "E1", 3, decimal.NewFromInt(12)); err != nil {
			return err
		}
		return repo.AplicarEntradaTx(tx, "E2", 2, decimal.NewFromInt(12))
	})
	require.NoError(t, err)

	e1 := testutil.ReloadProducto(t, db, "E1")
	assert.Equal(t, 3, e1.StockActual)
	assert.True(t, decimal.NewFromInt(12).Equal(e1.PrecCosto))
	assert.True(t, decimal.RequireFromString("15.6").Equal(e1.PrecVenta), "got %s", e1.PrecVenta)

	e2 := testutil.ReloadProducto(t, db, "E2")
	assert.Equal(t, 7, e2.StockActual)
	assert.True(t, decimal.NewFromInt(12).Equal(e2.PrecCosto))
	assert.True(t, decimal.NewFromInt(20).Equal(e2.PrecVenta), "existing sale price is kept")
}

func TestProductoRepo_DescontarStockTx(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProductoRepository(db)
	testutil.Producto(t, db, "V1", "Remera", 5, "10", "20")

	var ok bool
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		var err error
		ok, err = repo.DescontarStockTx(tx, "V1", 5)
		return err
	}))
	assert.True(t, ok)
	assert.Equal(t, 0, testutil.ReloadProducto(t, db, "V1").StockActual)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		var err error
		ok, err = repo.DescontarStockTx(tx, "V1", 1)
		return err
	}))
	assert.False(t, ok, "stock never goes negative")
	assert.Equal(t, 0, testutil.ReloadProducto(t, db, "V1").StockActual)
}
