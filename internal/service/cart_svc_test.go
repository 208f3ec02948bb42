package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/model"
	"inventisync_v1_202608/internal/repository"
)

// ==================== 测试辅助 ====================

func setupCartTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	db.AutoMigrate(&model.CartItem{})
	return db
}

// ==================== 单元测试 ====================

// 同一条目重复 upsert 幂等：只有一行，内容等于最后一次写入
func TestCartService_UpsertIdempotent(t *testing.T) {
	db := setupCartTestDB(t)
	svc := NewCartService(repository.NewCartRepository(db))
	ctx := context.Background()

	req := &dto.CartUpsertReq{
		ProductID:    101,
		OwnerEmail:   "buyer@x.com",
		Name:         "widget",
		SellingPrice: 20,
		Quantity:     1,
	}

	first, err := svc.Upsert(ctx, req)
	if err != nil {
		t.Fatalf("首次加购失败: %v", err)
	}

	// 第二次写同键不同值，应整行覆盖
	req.SellingPrice = 18
	req.Quantity = 2
	second, err := svc.Upsert(ctx, req)
	if err != nil {
		t.Fatalf("二次加购失败: %v", err)
	}

	var count int64
	db.Model(&model.CartItem{}).Count(&count)
	if count != 1 {
		t.Fatalf("条目数 = %d, want 1", count)
	}

	if second.ID != first.ID {
		t.Errorf("覆盖不应换行: first.ID=%d second.ID=%d", first.ID, second.ID)
	}
	if second.SellingPrice != 18 || second.Quantity != 2 {
		t.Errorf("落库值应等于最后一次写入: %+v", second)
	}

	// 完全相同的写入再来一次，结果不变
	third, err := svc.Upsert(ctx, req)
	if err != nil {
		t.Fatalf("三次加购失败: %v", err)
	}
	if third.SellingPrice != 18 || third.Quantity != 2 || third.ID != first.ID {
		t.Errorf("幂等性被破坏: %+v", third)
	}
}

func TestCartService_GetMissing(t *testing.T) {
	db := setupCartTestDB(t)
	svc := NewCartService(repository.NewCartRepository(db))

	_, err := svc.Get(context.Background(), 404)
	if !errors.Is(err, ErrCartItemNotFound) {
		t.Errorf("应得 ErrCartItemNotFound, got %v", err)
	}
}

func TestCartService_Remove(t *testing.T) {
	db := setupCartTestDB(t)
	svc := NewCartService(repository.NewCartRepository(db))
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, &dto.CartUpsertReq{ProductID: 7, OwnerEmail: "buyer@x.com"}); err != nil {
		t.Fatalf("加购失败: %v", err)
	}
	if err := svc.Remove(ctx, 7); err != nil {
		t.Fatalf("移除失败: %v", err)
	}

	var count int64
	db.Model(&model.CartItem{}).Count(&count)
	if count != 0 {
		t.Errorf("条目数 = %d, want 0", count)
	}
}

func TestCartService_ListByOwner(t *testing.T) {
	db := setupCartTestDB(t)
	svc := NewCartService(repository.NewCartRepository(db))
	ctx := context.Background()

	svc.Upsert(ctx, &dto.CartUpsertReq{ProductID: 1, OwnerEmail: "a@x.com"})
	svc.Upsert(ctx, &dto.CartUpsertReq{ProductID: 2, OwnerEmail: "a@x.com"})
	svc.Upsert(ctx, &dto.CartUpsertReq{ProductID: 3, OwnerEmail: "b@x.com"})

	items, err := svc.ListByOwner(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("a@x.com 条目数 = %d, want 2", len(items))
	}
}
