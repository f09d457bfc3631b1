package repository

import (
	"context"

	"github.com/FranCa26/InvenLink-24-7/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// margenVentaInicial is applied to the cost price of a product received
// while its sale price is still zero.
var margenVentaInicial = decimal.RequireFromString("1.3")

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation.
type ProductoRepository interface {
	List(ctx context.Context) ([]model.Producto, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Producto, error)
	// Filter matches text case-insensitively against nombre or categoria.
	Filter(ctx context.Context, text string) ([]model.Producto, error)
	// SetStock overwrites stock_actual with an absolute value.
	SetStock(ctx context.Context, codigo string, stock int) error
	Create(ctx context.Context, p *model.Producto) error
	// Update writes only the columns set in patch; an empty patch is a no-op.
	Update(ctx context.Context, codigo string, patch model.ProductoPatch) error

	// Used inside transactions; callers must pass the tx instance
	FindByCodigoTx(tx *gorm.DB, codigo string) (*model.Producto, error)
	AplicarEntradaTx(tx *gorm.DB, codigo string, cantidad int, precio decimal.Decimal) error
	// DescontarStockTx reports false when stock_actual < cantidad; nothing is written then.
	DescontarStockTx(tx *gorm.DB, codigo string, cantidad int) (bool, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	productos := []model.Producto{}
	err := r.db.WithContext(ctx).Order("cod_producto ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Producto, error) {
	var p model.Producto
	if err := r.db.WithContext(ctx).Where("cod_producto = ?", codigo).First(&p).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &p, nil
}

func (r *productoRepo) FindByCodigoTx(tx *gorm.DB, codigo string) (*model.Producto, error) {
	var p model.Producto
	if err := tx.Where("cod_producto = ?", codigo).First(&p).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &p, nil
}

func (r *productoRepo) Filter(ctx context.Context, text string) ([]model.Producto, error) {
	productos := []model.Producto{}
	pattern := containsPattern(text)
	err := r.db.WithContext(ctx).
		Where(`LOWER(nombre) LIKE ? ESCAPE '\' OR LOWER(categoria) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("cod_producto ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) SetStock(ctx context.Context, codigo string, stock int) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("cod_producto = ?", codigo).
		Update("stock_actual", stock).Error
}

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) Update(ctx context.Context, codigo string, patch model.ProductoPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("cod_producto = ?", codigo).
		Updates(cols).Error
}

func (r *productoRepo) AplicarEntradaTx(tx *gorm.DB, codigo string, cantidad int, precio decimal.Decimal) error {
	ventaInicial := precio.Mul(margenVentaInicial).Round(2)
	return tx.Model(&model.Producto{}).Where("cod_producto = ?", codigo).Updates(map[string]interface{}{
		"stock_actual": gorm.Expr("stock_actual + ?", cantidad),
		"prec_costo":   precio,
		"prec_venta":   gorm.Expr("CASE WHEN prec_venta = 0 THEN ? ELSE prec_venta END", ventaInicial),
	}).Error
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, codigo string, cantidad int) (bool, error) {
	res := tx.Model(&model.Producto{}).
		Where("cod_producto = ? AND stock_actual >= ?", codigo, cantidad).
		Update("stock_actual", gorm.Expr("stock_actual - ?", cantidad))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
