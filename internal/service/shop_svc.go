package service

import (
	"context"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/model"
	"inventisync_v1_202608/internal/repository"
)

// ==================== ShopService 店铺服务 ====================

// ShopService 店铺服务
// 店铺创建会把 owner 账号升级为 manager 并回填冗余字段
type ShopService struct {
	shopRepo repository.ShopRepository
	userRepo repository.UserRepository
}

// NewShopService 创建店铺服务
func NewShopService(shopRepo repository.ShopRepository, userRepo repository.UserRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo, userRepo: userRepo}
}

// Create 创建店铺
// 1. 店名查重，重复返回 ErrShopExists（不写入任何数据）
// 2. 未指定配额时落库默认值 3（仅创建时刻生效一次）
// 3. 升级 owner: role=manager，回填 shopId/shopName/shopLogo
// owner 账号不存在返回 ErrUserNotFound；此时店铺行已写入，不回滚（与上游行为一致）
func (s *ShopService) Create(ctx context.Context, req *dto.ShopCreateReq) (*model.Shop, error) {
	existing, err := s.shopRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrShopExists
	}

	limit := req.ProductLimit
	if limit <= 0 {
		limit = model.DefaultProductLimit
	}

	shop := &model.Shop{
		Name:         req.Name,
		OwnerEmail:   req.OwnerEmail,
		OwnerName:    req.OwnerName,
		Logo:         req.Logo,
		Location:     req.Location,
		Info:         req.Info,
		ProductLimit: limit,
	}
	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, err
	}

	rows, err := s.userRepo.UpdateFields(ctx, req.OwnerEmail, map[string]interface{}{
		"role":      model.RoleManager,
		"shop_id":   shop.ID,
		"shop_name": shop.Name,
		"shop_logo": shop.Logo,
	})
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrUserNotFound
	}

	return shop, nil
}

// List 全量店铺列表（管理员）
func (s *ShopService) List(ctx context.Context) ([]model.Shop, error) {
	return s.shopRepo.List(ctx)
}

// GetByOwner 按 owner 邮箱查店铺
func (s *ShopService) GetByOwner(ctx context.Context, email string) (*model.Shop, error) {
	shop, err := s.shopRepo.GetByOwnerEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	return shop, nil
}

// UpdateProductLimit 管理员调整配额，无条件覆盖
func (s *ShopService) UpdateProductLimit(ctx context.Context, ownerEmail string, limit int) error {
	_, err := s.shopRepo.UpdateProductLimit(ctx, ownerEmail, limit)
	return err
}
