package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inventisync_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// CartRepository 购物车仓储接口
type CartRepository interface {
	// Upsert 以 product_id 为键整行覆盖，重复写入幂等
	Upsert(ctx context.Context, item *model.CartItem) error
	GetByProductID(ctx context.Context, productID int64) (*model.CartItem, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]model.CartItem, error)
	DeleteByProductID(ctx context.Context, productID int64) error
}

// ==================== 仓储实现 ====================

type cartRepo struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) Upsert(ctx context.Context, item *model.CartItem) error {
	// ON CONFLICT (product_id) DO UPDATE，last-writer-wins
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"owner_email", "name", "image",
			"cost", "selling_price", "profit", "discount",
			"quantity", "snapshot", "updated_at",
		}),
	}).Create(item).Error
}

// GetByProductID 按商品 ID 查找，不存在返回 (nil, nil)
func (r *cartRepo) GetByProductID(ctx context.Context, productID int64) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Find(&items).Error
	return items, err
}

func (r *cartRepo) DeleteByProductID(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.CartItem{}).Error
}
