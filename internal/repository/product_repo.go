package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inventisync_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]model.Product, error)
	// CountByOwner 配额判定用：决策时刻的租户商品数
	CountByOwner(ctx context.Context, ownerEmail string) (int64, error)
	// ListLowStock 库存告警扫描用
	ListLowStock(ctx context.Context, threshold int) ([]model.Product, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) error

	// 出售副作用，存储层原子增减
	IncrementSalesCount(ctx context.Context, id int64) error
	DecrementQuantity(ctx context.Context, id int64) error
}

// ==================== 仓储实现 ====================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// GetByID 按主键查找，不存在返回 (nil, nil)
func (r *productRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (r *productRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Find(&products).Error
	return products, err
}

func (r *productRepo) CountByOwner(ctx context.Context, ownerEmail string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("owner_email = ?", ownerEmail).
		Count(&count).Error
	return count, err
}

func (r *productRepo) ListLowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("quantity <= ?", threshold).
		Order("owner_email ASC, quantity ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepo) IncrementSalesCount(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("sales_count", gorm.Expr("sales_count + ?", 1)).Error
}

func (r *productRepo) DecrementQuantity(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity - ?", 1)).Error
}
