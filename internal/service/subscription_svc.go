package service

import (
	"context"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/model"
	"inventisync_v1_202608/internal/repository"
)

// ==================== SubscriptionService 订阅服务 ====================

// SubscriptionService 订阅服务
// 每个 client 一条记录，整条创建/删除
type SubscriptionService struct {
	subsRepo repository.SubscriptionRepository
}

// NewSubscriptionService 创建订阅服务
func NewSubscriptionService(subsRepo repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subsRepo: subsRepo}
}

// GetByClient 查询某客户的订阅
func (s *SubscriptionService) GetByClient(ctx context.Context, client string) (*model.Subscription, error) {
	sub, err := s.subsRepo.GetByClient(ctx, client)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}
	return sub, nil
}

// Create 创建订阅
func (s *SubscriptionService) Create(ctx context.Context, req *dto.SubscriptionCreateReq) (*model.Subscription, error) {
	sub := &model.Subscription{
		Client:  req.Client,
		Plan:    req.Plan,
		Price:   req.Price,
		DateStr: req.DateStr,
	}
	if err := s.subsRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// DeleteByClient 删除某客户的订阅
func (s *SubscriptionService) DeleteByClient(ctx context.Context, client string) error {
	return s.subsRepo.DeleteByClient(ctx, client)
}
