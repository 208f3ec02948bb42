package repository

import (
	"context"

	"gorm.io/gorm"

	"inventisync_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// SaleRepository 销售流水仓储接口
// 流水只追加，不提供更新/删除
type SaleRepository interface {
	Create(ctx context.Context, sale *model.Sale) error
	CountByOwner(ctx context.Context, ownerEmail string) (int64, error)
	// SumByOwner 对指定数值列求和，空集返回 0
	// column 只接受白名单列名，调用方传常量
	SumByOwner(ctx context.Context, ownerEmail, column string) (float64, error)
	// ListByOwnerDesc 按 date_str 倒序（最新在前）
	ListByOwnerDesc(ctx context.Context, ownerEmail string) ([]model.Sale, error)
}

// ==================== 仓储实现 ====================

type saleRepo struct {
	db *gorm.DB
}

// NewSaleRepository 创建销售流水仓储
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepo{db: db}
}

func (r *saleRepo) Create(ctx context.Context, sale *model.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepo) CountByOwner(ctx context.Context, ownerEmail string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("owner_email = ?", ownerEmail).
		Count(&count).Error
	return count, err
}

func (r *saleRepo) SumByOwner(ctx context.Context, ownerEmail, column string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("owner_email = ?", ownerEmail).
		Select("COALESCE(SUM(" + column + "), 0)").
		Scan(&total).Error
	return total, err
}

func (r *saleRepo) ListByOwnerDesc(ctx context.Context, ownerEmail string) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Order("date_str DESC").
		Find(&sales).Error
	return sales, err
}
