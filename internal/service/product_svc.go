package service

import (
	"context"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/model"
	"inventisync_v1_202608/internal/repository"
)

// ==================== ProductService 商品服务 ====================

// ProductService 商品服务，含配额判定
type ProductService struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	userRepo    repository.UserRepository
}

// NewProductService 创建商品服务
func NewProductService(
	productRepo repository.ProductRepository,
	shopRepo repository.ShopRepository,
	userRepo repository.UserRepository,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		shopRepo:    shopRepo,
		userRepo:    userRepo,
	}
}

// CanAddProduct 配额判定：决策时刻的租户商品数 < 店铺配额
// 店铺按账号上存的 shopId 取，不从 shop 表反查 owner——
// 两边数据被手工改散时这里会用到旧关联，维持该口径
// 判定是建议性的，商品插入是独立操作，不与判定构成原子单元
func (s *ProductService) CanAddProduct(ctx context.Context, ownerEmail string) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, ownerEmail)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, ErrUserNotFound
	}

	count, err := s.productRepo.CountByOwner(ctx, ownerEmail)
	if err != nil {
		return false, err
	}

	shop, err := s.shopRepo.GetByID(ctx, user.ShopID)
	if err != nil {
		return false, err
	}
	if shop == nil {
		return false, ErrShopNotFound
	}

	return count < int64(shop.ProductLimit), nil
}

// Create 创建商品（写入前的配额判定由调用方走 CanAddProduct）
func (s *ProductService) Create(ctx context.Context, req *dto.ProductCreateReq) (*model.Product, error) {
	product := &model.Product{
		OwnerEmail:   req.OwnerEmail,
		ShopName:     req.ShopName,
		Name:         req.Name,
		Image:        req.Image,
		Location:     req.Location,
		Info:         req.Info,
		Cost:         req.Cost,
		SellingPrice: req.SellingPrice,
		Profit:       req.Profit,
		Discount:     req.Discount,
		Quantity:     req.Quantity,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// List 全量商品列表（管理员）
func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx)
}

// GetByID 单个商品
func (s *ProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListByOwner 租户商品列表
func (s *ProductService) ListByOwner(ctx context.Context, ownerEmail string) ([]model.Product, error) {
	return s.productRepo.ListByOwner(ctx, ownerEmail)
}

// Update 商品整体更新（全字段覆盖）
func (s *ProductService) Update(ctx context.Context, id int64, req *dto.ProductUpdateReq) error {
	rows, err := s.productRepo.UpdateFields(ctx, id, map[string]interface{}{
		"name":          req.Name,
		"image":         req.Image,
		"location":      req.Location,
		"info":          req.Info,
		"cost":          req.Cost,
		"selling_price": req.SellingPrice,
		"profit":        req.Profit,
		"discount":      req.Discount,
		"quantity":      req.Quantity,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete 删除商品
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}

// IncrementSalesCount 出售副作用：销量 +1
func (s *ProductService) IncrementSalesCount(ctx context.Context, id int64) error {
	return s.productRepo.IncrementSalesCount(ctx, id)
}

// DecrementQuantity 出售副作用：库存 -1
func (s *ProductService) DecrementQuantity(ctx context.Context, id int64) error {
	return s.productRepo.DecrementQuantity(ctx, id)
}
