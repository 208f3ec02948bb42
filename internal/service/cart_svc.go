package service

import (
	"context"

	"gorm.io/datatypes"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/model"
	"inventisync_v1_202608/internal/repository"
)

// ==================== CartService 购物车服务 ====================

// CartService 购物车服务
// upsert 以商品 ID 为键整行覆盖，重复提交幂等，可安全重试
type CartService struct {
	cartRepo repository.CartRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// Upsert 加购/覆盖，返回落库后的条目
func (s *CartService) Upsert(ctx context.Context, req *dto.CartUpsertReq) (*model.CartItem, error) {
	item := &model.CartItem{
		ProductID:    req.ProductID,
		OwnerEmail:   req.OwnerEmail,
		Name:         req.Name,
		Image:        req.Image,
		Cost:         req.Cost,
		SellingPrice: req.SellingPrice,
		Profit:       req.Profit,
		Discount:     req.Discount,
		Quantity:     req.Quantity,
	}
	if len(req.Snapshot) > 0 {
		item.Snapshot = datatypes.JSON(req.Snapshot)
	}

	if err := s.cartRepo.Upsert(ctx, item); err != nil {
		return nil, err
	}

	// 回读落库结果，冲突路径下 item 里的主键不可靠
	stored, err := s.cartRepo.GetByProductID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrCartItemNotFound
	}
	return stored, nil
}

// Get 按商品 ID 查条目
func (s *CartService) Get(ctx context.Context, productID int64) (*model.CartItem, error) {
	item, err := s.cartRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}

// ListByOwner 某用户的购物车
func (s *CartService) ListByOwner(ctx context.Context, ownerEmail string) ([]model.CartItem, error) {
	return s.cartRepo.ListByOwner(ctx, ownerEmail)
}

// Remove 结算或手动移除
func (s *CartService) Remove(ctx context.Context, productID int64) error {
	return s.cartRepo.DeleteByProductID(ctx, productID)
}
