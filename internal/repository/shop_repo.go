package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inventisync_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// ShopRepository 店铺仓储接口
type ShopRepository interface {
	Create(ctx context.Context, shop *model.Shop) error
	GetByID(ctx context.Context, id int64) (*model.Shop, error)
	GetByName(ctx context.Context, name string) (*model.Shop, error)
	GetByOwnerEmail(ctx context.Context, email string) (*model.Shop, error)
	List(ctx context.Context) ([]model.Shop, error)
	// UpdateProductLimit 按 owner 邮箱无条件更新配额，返回命中行数
	UpdateProductLimit(ctx context.Context, ownerEmail string, limit int) (int64, error)
}

// ==================== 仓储实现 ====================

type shopRepo struct {
	db *gorm.DB
}

// NewShopRepository 创建店铺仓储
func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepo{db: db}
}

func (r *shopRepo) Create(ctx context.Context, shop *model.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

// GetByID 按主键查找，不存在返回 (nil, nil)
func (r *shopRepo) GetByID(ctx context.Context, id int64) (*model.Shop, error) {
	var shop model.Shop
	err := r.db.WithContext(ctx).First(&shop, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepo) GetByName(ctx context.Context, name string) (*model.Shop, error) {
	var shop model.Shop
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&shop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepo) GetByOwnerEmail(ctx context.Context, email string) (*model.Shop, error) {
	var shop model.Shop
	err := r.db.WithContext(ctx).Where("owner_email = ?", email).First(&shop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepo) List(ctx context.Context) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).Find(&shops).Error
	return shops, err
}

func (r *shopRepo) UpdateProductLimit(ctx context.Context, ownerEmail string, limit int) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Shop{}).
		Where("owner_email = ?", ownerEmail).
		Update("product_limit", limit)
	return result.RowsAffected, result.Error
}
