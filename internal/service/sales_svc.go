package service

import (
	"context"
	"log"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/model"
	"inventisync_v1_202608/internal/repository"
)

// ==================== SalesService 销售汇总服务 ====================

// SalesService 销售流水与汇总
type SalesService struct {
	saleRepo    repository.SaleRepository
	paymentRepo repository.PaymentRepository
}

// NewSalesService 创建销售汇总服务
func NewSalesService(saleRepo repository.SaleRepository, paymentRepo repository.PaymentRepository) *SalesService {
	return &SalesService{saleRepo: saleRepo, paymentRepo: paymentRepo}
}

// Record 销售流水入账，只追加
func (s *SalesService) Record(ctx context.Context, req *dto.SaleCreateReq) (*model.Sale, error) {
	sale := &model.Sale{
		OwnerEmail:   req.OwnerEmail,
		ProductID:    req.ProductID,
		Name:         req.Name,
		SellingPrice: req.SellingPrice,
		Cost:         req.Cost,
		Profit:       req.Profit,
		DateStr:      req.DateStr,
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Summarize 店铺销售汇总
// 三个求和子查询各自失败时降级为 0，不让单个指标拖垮整个汇总；
// 计数和历史失败则整体报错
// 空流水集是合法的零值结果，不是错误
func (s *SalesService) Summarize(ctx context.Context, ownerEmail string) (*dto.SalesSummaryResp, error) {
	soldProduct, err := s.saleRepo.CountByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	totalSale := s.sumOrZero(ctx, ownerEmail, "selling_price")
	totalInvest := s.sumOrZero(ctx, ownerEmail, "cost")
	totalProfit := s.sumOrZero(ctx, ownerEmail, "profit")

	history, err := s.saleRepo.ListByOwnerDesc(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []model.Sale{}
	}

	return &dto.SalesSummaryResp{
		SoldProduct:  soldProduct,
		TotalSale:    totalSale,
		TotalInvest:  totalInvest,
		TotalProfit:  totalProfit,
		SalesHistory: history,
	}, nil
}

func (s *SalesService) sumOrZero(ctx context.Context, ownerEmail, column string) float64 {
	total, err := s.saleRepo.SumByOwner(ctx, ownerEmail, column)
	if err != nil {
		log.Printf("[SALES] %s 求和失败，按 0 计: %v", column, err)
		return 0
	}
	return total
}

// PlatformSummary 平台收入汇总（管理员视图）
// 汇总对象是平台收款流水，不是店铺销售流水
func (s *SalesService) PlatformSummary(ctx context.Context) (*dto.PlatformSummaryResp, error) {
	totalIncome, err := s.paymentRepo.SumPrice(ctx)
	if err != nil {
		return nil, err
	}

	totalSales, err := s.paymentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListDesc(ctx)
	if err != nil {
		return nil, err
	}

	soldProducts := make([]dto.SoldProductView, 0, len(payments))
	for _, p := range payments {
		soldProducts = append(soldProducts, dto.SoldProductView{
			ID:      p.ID,
			Name:    p.Name,
			Email:   p.Email,
			Service: p.Service,
			Price:   p.Price,
			Date:    p.Date,
		})
	}

	return &dto.PlatformSummaryResp{
		TotalIncome:  totalIncome,
		TotalSales:   totalSales,
		SoldProducts: soldProducts,
	}, nil
}
