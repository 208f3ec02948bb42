package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inventisync_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// SubscriptionRepository 订阅仓储接口
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *model.Subscription) error
	GetByClient(ctx context.Context, client string) (*model.Subscription, error)
	DeleteByClient(ctx context.Context, client string) error
}

// ==================== 仓储实现 ====================

type subscriptionRepo struct {
	db *gorm.DB
}

// NewSubscriptionRepository 创建订阅仓储
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepo{db: db}
}

func (r *subscriptionRepo) Create(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// GetByClient 按客户邮箱查找，不存在返回 (nil, nil)
func (r *subscriptionRepo) GetByClient(ctx context.Context, client string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).Where("client = ?", client).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepo) DeleteByClient(ctx context.Context, client string) error {
	return r.db.WithContext(ctx).
		Where("client = ?", client).
		Delete(&model.Subscription{}).Error
}
