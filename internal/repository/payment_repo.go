package repository

import (
	"context"

	"gorm.io/gorm"

	"inventisync_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// PaymentRepository 平台收款流水仓储接口
// 只追加账本
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	Count(ctx context.Context) (int64, error)
	// SumPrice 全表 price 求和，空表返回 0
	SumPrice(ctx context.Context) (float64, error)
	// ListDesc 全量列表，按 date 倒序
	ListDesc(ctx context.Context) ([]model.Payment, error)
}

// ==================== 仓储实现 ====================

type paymentRepo struct {
	db *gorm.DB
}

// NewPaymentRepository 创建收款流水仓储
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Payment{}).Count(&count).Error
	return count, err
}

func (r *paymentRepo) SumPrice(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *paymentRepo) ListDesc(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&payments).Error
	return payments, err
}
