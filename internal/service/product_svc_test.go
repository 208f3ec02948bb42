package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/model"
	"inventisync_v1_202608/internal/repository"
)

// ==================== 测试辅助 ====================

func setupProductTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	db.AutoMigrate(&model.User{}, &model.Shop{}, &model.Product{})
	return db
}

func newProductService(db *gorm.DB) *ProductService {
	return NewProductService(
		repository.NewProductRepository(db),
		repository.NewShopRepository(db),
		repository.NewUserRepository(db),
	)
}

// seedTenant 建一个配额为 limit、已有 existing 个商品的租户
func seedTenant(t *testing.T, db *gorm.DB, limit, existing int) {
	shop := model.Shop{Name: "QuotaShop", OwnerEmail: "mgr@x.com", ProductLimit: limit}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("写入店铺失败: %v", err)
	}
	if err := db.Create(&model.User{
		Email: "mgr@x.com", Role: model.RoleManager, ShopID: shop.ID,
	}).Error; err != nil {
		t.Fatalf("写入店长失败: %v", err)
	}
	for i := 0; i < existing; i++ {
		if err := db.Create(&model.Product{
			OwnerEmail: "mgr@x.com",
			Name:       fmt.Sprintf("p-%d", i),
		}).Error; err != nil {
			t.Fatalf("写入商品失败: %v", err)
		}
	}
}

// ==================== 单元测试 ====================

// 配额边界：已有 N-1 个放行，满 N 个拒绝
func TestProductService_CanAddProductQuota(t *testing.T) {
	db := setupProductTestDB(t)
	seedTenant(t, db, 3, 2)
	svc := newProductService(db)
	ctx := context.Background()

	allowed, err := svc.CanAddProduct(ctx, "mgr@x.com")
	if err != nil {
		t.Fatalf("配额判定失败: %v", err)
	}
	if !allowed {
		t.Error("2/3 时应放行")
	}

	// 补满第 3 个
	db.Create(&model.Product{OwnerEmail: "mgr@x.com", Name: "p-2"})

	allowed, err = svc.CanAddProduct(ctx, "mgr@x.com")
	if err != nil {
		t.Fatalf("配额判定失败: %v", err)
	}
	if allowed {
		t.Error("3/3 时应拒绝")
	}
}

func TestProductService_CanAddProductNoShop(t *testing.T) {
	db := setupProductTestDB(t)
	// 账号存在但没有关联店铺
	db.Create(&model.User{Email: "lost@x.com", Role: model.RoleManager})
	svc := newProductService(db)

	_, err := svc.CanAddProduct(context.Background(), "lost@x.com")
	if !errors.Is(err, ErrShopNotFound) {
		t.Errorf("无关联店铺应得 ErrShopNotFound, got %v", err)
	}
}

func TestProductService_CanAddProductUserMissing(t *testing.T) {
	db := setupProductTestDB(t)
	svc := newProductService(db)

	_, err := svc.CanAddProduct(context.Background(), "ghost@x.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("账号缺失应得 ErrUserNotFound, got %v", err)
	}
}

// 出售副作用：销量 +1 / 库存 -1
func TestProductService_SaleSideEffects(t *testing.T) {
	db := setupProductTestDB(t)
	svc := newProductService(db)
	ctx := context.Background()

	p := model.Product{OwnerEmail: "mgr@x.com", Name: "widget", Quantity: 5, SalesCount: 1}
	db.Create(&p)

	if err := svc.IncrementSalesCount(ctx, p.ID); err != nil {
		t.Fatalf("销量递增失败: %v", err)
	}
	if err := svc.DecrementQuantity(ctx, p.ID); err != nil {
		t.Fatalf("库存递减失败: %v", err)
	}

	var stored model.Product
	db.First(&stored, p.ID)
	if stored.SalesCount != 2 {
		t.Errorf("sales_count = %d, want 2", stored.SalesCount)
	}
	if stored.Quantity != 4 {
		t.Errorf("quantity = %d, want 4", stored.Quantity)
	}
}

// 整体更新是全字段覆盖
func TestProductService_UpdateFullReplace(t *testing.T) {
	db := setupProductTestDB(t)
	svc := newProductService(db)
	ctx := context.Background()

	p := model.Product{OwnerEmail: "mgr@x.com", Name: "old", Cost: 10, SellingPrice: 20, Quantity: 3}
	db.Create(&p)

	err := svc.Update(ctx, p.ID, &dto.ProductUpdateReq{
		Name: "new", Cost: 15, SellingPrice: 30, Profit: 15, Quantity: 8,
	})
	if err != nil {
		t.Fatalf("商品更新失败: %v", err)
	}

	var stored model.Product
	db.First(&stored, p.ID)
	if stored.Name != "new" || stored.Cost != 15 || stored.SellingPrice != 30 || stored.Quantity != 8 {
		t.Errorf("更新结果不符: %+v", stored)
	}

	if err := svc.Update(ctx, 9999, &dto.ProductUpdateReq{Name: "x"}); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("更新不存在的商品应得 ErrProductNotFound, got %v", err)
	}
}

func TestProductService_GetByIDMissing(t *testing.T) {
	db := setupProductTestDB(t)
	svc := newProductService(db)

	_, err := svc.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("应得 ErrProductNotFound, got %v", err)
	}
}
