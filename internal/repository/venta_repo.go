package repository

import (
	"context"

	"github.com/FranCa26/InvenLink-24-7/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venta) error
	CreateDetalleTx(tx *gorm.DB, d *model.DetalleVenta) error
	List(ctx context.Context) ([]model.Venta, error)
	FindByID(ctx context.Context, id int64) (*model.Venta, error)
	// ListByProducto returns each sale containing codigo with that line's
	// quantity and unit price, newest first.
	ListByProducto(ctx context.Context, codigo string) ([]model.VentaDeProducto, error)
	SumTotal(ctx context.Context, desde, hasta string) (decimal.Decimal, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Omit(clause.Associations).Create(v).Error
}

func (r *ventaRepo) CreateDetalleTx(tx *gorm.DB, d *model.DetalleVenta) error {
	return tx.Omit(clause.Associations).Create(d).Error
}

func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	ventas := []model.Venta{}
	err := r.db.WithContext(ctx).
		Preload("Detalles", orderDetalles).
		Order("fecha DESC, id_venta DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) FindByID(ctx context.Context, id int64) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles", orderDetalles).
		Preload("Detalles.Producto").
		Where("id_venta = ?", id).
		First(&v).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &v, nil
}

func (r *ventaRepo) ListByProducto(ctx context.Context, codigo string) ([]model.VentaDeProducto, error) {
	rows := []model.VentaDeProducto{}
	err := r.db.WithContext(ctx).
		Table("ventas v").
		Select("v.id_venta, v.fecha, v.nombre_cliente, v.total, v.metodo_pago, v.observaciones, dv.cantidad, dv.precio_unitario").
		Joins("JOIN detalles_venta dv ON dv.id_venta = v.id_venta").
		Where("dv.cod_producto = ?", codigo).
		Order("v.fecha DESC, v.id_venta DESC, dv.id_detalle ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *ventaRepo) SumTotal(ctx context.Context, desde, hasta string) (decimal.Decimal, error) {
	return sumTotal(r.db.WithContext(ctx).Model(&model.Venta{}), desde, hasta)
}
