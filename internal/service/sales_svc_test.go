package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/model"
	"inventisync_v1_202608/internal/repository"
)

// ==================== 测试辅助 ====================

func setupSalesTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	db.AutoMigrate(&model.Sale{}, &model.Payment{})
	return db
}

func newSalesService(db *gorm.DB) *SalesService {
	return NewSalesService(repository.NewSaleRepository(db), repository.NewPaymentRepository(db))
}

// ==================== 单元测试 ====================

// 空流水集是合法的零值汇总，不是错误
func TestSalesService_SummarizeEmpty(t *testing.T) {
	db := setupSalesTestDB(t)
	svc := newSalesService(db)

	sum, err := svc.Summarize(context.Background(), "mgr@x.com")
	if err != nil {
		t.Fatalf("空集汇总不应报错: %v", err)
	}
	if sum.SoldProduct != 0 || sum.TotalSale != 0 || sum.TotalInvest != 0 || sum.TotalProfit != 0 {
		t.Errorf("空集汇总应全零: %+v", sum)
	}
	if sum.SalesHistory == nil || len(sum.SalesHistory) != 0 {
		t.Errorf("空集历史应为空数组而非 nil: %#v", sum.SalesHistory)
	}
}

func TestSalesService_Summarize(t *testing.T) {
	db := setupSalesTestDB(t)
	svc := newSalesService(db)
	ctx := context.Background()

	// 两笔本店流水 + 一笔他店流水（不应计入）
	svc.Record(ctx, &dto.SaleCreateReq{
		OwnerEmail: "mgr@x.com", Name: "a", SellingPrice: 100, Cost: 60, Profit: 40, DateStr: "2026-08-01",
	})
	svc.Record(ctx, &dto.SaleCreateReq{
		OwnerEmail: "mgr@x.com", Name: "b", SellingPrice: 50, Cost: 20, Profit: 30, DateStr: "2026-08-15",
	})
	svc.Record(ctx, &dto.SaleCreateReq{
		OwnerEmail: "other@x.com", Name: "c", SellingPrice: 999, Cost: 1, Profit: 998, DateStr: "2026-08-10",
	})

	sum, err := svc.Summarize(ctx, "mgr@x.com")
	if err != nil {
		t.Fatalf("汇总失败: %v", err)
	}

	if sum.SoldProduct != 2 {
		t.Errorf("soldProduct = %d, want 2", sum.SoldProduct)
	}
	if sum.TotalSale != 150 {
		t.Errorf("totalSale = %v, want 150", sum.TotalSale)
	}
	if sum.TotalInvest != 80 {
		t.Errorf("totalInvest = %v, want 80", sum.TotalInvest)
	}
	if sum.TotalProfit != 70 {
		t.Errorf("totalProfit = %v, want 70", sum.TotalProfit)
	}

	// 历史按 date_str 倒序
	if len(sum.SalesHistory) != 2 {
		t.Fatalf("历史条数 = %d, want 2", len(sum.SalesHistory))
	}
	if sum.SalesHistory[0].DateStr != "2026-08-15" || sum.SalesHistory[1].DateStr != "2026-08-01" {
		t.Errorf("历史应按日期倒序: %s, %s", sum.SalesHistory[0].DateStr, sum.SalesHistory[1].DateStr)
	}
}

// 平台汇总口径是收款流水，不是店铺销售流水
func TestSalesService_PlatformSummary(t *testing.T) {
	db := setupSalesTestDB(t)
	svc := newSalesService(db)
	ctx := context.Background()

	payments := []model.Payment{
		{TransactionID: "t1", Email: "a@x.com", Name: "A", Service: "premium", Price: 20, Date: "2026-08-01"},
		{TransactionID: "t2", Email: "b@x.com", Name: "B", Service: "standard", Price: 15, Date: "2026-08-20"},
		{TransactionID: "t3", Email: "c@x.com", Name: "C", Service: "trial", Price: 0, Date: "2026-08-10"},
	}
	for i := range payments {
		if err := db.Create(&payments[i]).Error; err != nil {
			t.Fatalf("写入收款流水失败: %v", err)
		}
	}

	sum, err := svc.PlatformSummary(ctx)
	if err != nil {
		t.Fatalf("平台汇总失败: %v", err)
	}

	if sum.TotalIncome != 35 {
		t.Errorf("totalIncome = %v, want 35", sum.TotalIncome)
	}
	if sum.TotalSales != 3 {
		t.Errorf("totalSales = %d, want 3", sum.TotalSales)
	}
	if len(sum.SoldProducts) != 3 {
		t.Fatalf("soldProducts 条数 = %d, want 3", len(sum.SoldProducts))
	}
	// 按 date 倒序
	if sum.SoldProducts[0].Email != "b@x.com" || sum.SoldProducts[2].Email != "a@x.com" {
		t.Errorf("收款流水应按日期倒序: %+v", sum.SoldProducts)
	}
	if sum.SoldProducts[0].Service != "standard" || sum.SoldProducts[0].Price != 15 {
		t.Errorf("投影字段不符: %+v", sum.SoldProducts[0])
	}
}

func TestSalesService_PlatformSummaryEmpty(t *testing.T) {
	db := setupSalesTestDB(t)
	svc := newSalesService(db)

	sum, err := svc.PlatformSummary(context.Background())
	if err != nil {
		t.Fatalf("空集平台汇总不应报错: %v", err)
	}
	if sum.TotalIncome != 0 || sum.TotalSales != 0 || len(sum.SoldProducts) != 0 {
		t.Errorf("空集平台汇总应全零: %+v", sum)
	}
}
