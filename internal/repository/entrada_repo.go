package repository

import (
	"context"

	"github.com/FranCa26/InvenLink-24-7/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntradaRepository interface {
	// CreateTx inserts the header only; lines go through CreateDetalleTx.
	CreateTx(tx *gorm.DB, e *model.Entrada) error
	CreateDetalleTx(tx *gorm.DB, d *model.DetalleEntrada) error
	// List returns headers newest first with their lines, without product data.
	List(ctx context.Context) ([]model.Entrada, error)
	// FindByID loads the lines joined to their products.
	FindByID(ctx context.Context, id int64) (*model.Entrada, error)
	// SumTotal adds up totals with desde <= fecha < hasta.
	SumTotal(ctx context.Context, desde, hasta string) (decimal.Decimal, error)
	TopProductos(ctx context.Context, limit int) ([]model.ProductoComprado, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type entradaRepo struct{ db *gorm.DB }

func NewEntradaRepository(db *gorm.DB) EntradaRepository { return &entradaRepo{db: db} }

func (r *entradaRepo) DB() *gorm.DB { return r.db }

func (r *entradaRepo) CreateTx(tx *gorm.DB, e *model.Entrada) error {
	return tx.Omit(clause.Associations).Create(e).Error
}

func (r *entradaRepo) CreateDetalleTx(tx *gorm.DB, d *model.DetalleEntrada) error {
	return tx.Omit(clause.Associations).Create(d).Error
}

func (r *entradaRepo) List(ctx context.Context) ([]model.Entrada, error) {
	entradas := []model.Entrada{}
	err := r.db.WithContext(ctx).
		Preload("Detalles", orderDetalles).
		Order("fecha DESC, id_entrada DESC").
		Find(&entradas).Error
	return entradas, err
}

func (r *entradaRepo) FindByID(ctx context.Context, id int64) (*model.Entrada, error) {
	var e model.Entrada
	err := r.db.WithContext(ctx).
		Preload("Detalles", orderDetalles).
		Preload("Detalles.Producto").
		Where("id_entrada = ?", id).
		First(&e).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &e, nil
}

func (r *entradaRepo) SumTotal(ctx context.Context, desde, hasta string) (decimal.Decimal, error) {
	return sumTotal(r.db.WithContext(ctx).Model(&model.Entrada{}), desde, hasta)
}

func (r *entradaRepo) TopProductos(ctx context.Context, limit int) ([]model.ProductoComprado, error) {
	top := []model.ProductoComprado{}
	err := r.db.WithContext(ctx).
		Table("detalles_entrada de").
		Select("de.cod_producto, p.nombre, SUM(de.cantidad) AS cantidad").
		Joins("JOIN productos p ON p.cod_producto = de.cod_producto").
		Group("de.cod_producto, p.nombre").
		Order("SUM(de.cantidad) DESC, de.cod_producto ASC").
		Limit(limit).
		Scan(&top).Error
	return top, err
}

// orderDetalles keeps line items in input order.
func orderDetalles(db *gorm.DB) *gorm.DB { return db.Order("id_detalle ASC") }

type sumRow struct {
	Total decimal.Decimal
}

// sumTotal runs SUM(total) over the half-open fecha range on q's table.
func sumTotal(q *gorm.DB, desde, hasta string) (decimal.Decimal, error) {
	var row sumRow
	err := q.Select("COALESCE(SUM(total), 0) AS total").
		Where("fecha >= ? AND fecha < ?", desde, hasta).
		Scan(&row).Error
	return row.Total, err
}
