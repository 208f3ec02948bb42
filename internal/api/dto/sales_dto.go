package dto

import "inventisync_v1_202608/internal/model"

// SaleCreateReq 销售流水入账请求
type SaleCreateReq struct {
	OwnerEmail   string  `json:"ownerEmail" binding:"required,email"`
	ProductID    int64   `json:"productId"`
	Name         string  `json:"name"`
	SellingPrice float64 `json:"sellingPrice"`
	Cost         float64 `json:"cost"`
	Profit       float64 `json:"profit"`
	DateStr      string  `json:"dateStr"`
}

// SalesSummaryResp 店铺销售汇总
type SalesSummaryResp struct {
	SoldProduct  int64        `json:"soldProduct"`
	TotalSale    float64      `json:"totalSale"`
	TotalInvest  float64      `json:"totalInvest"`
	TotalProfit  float64      `json:"totalProfit"`
	SalesHistory []model.Sale `json:"salesHistory"`
}

// SoldProductView 平台汇总里收款流水的固定字段投影
type SoldProductView struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Service string  `json:"service"`
	Price   float64 `json:"price"`
	Date    string  `json:"date"`
}

// PlatformSummaryResp 平台收入汇总（管理员视图）
type PlatformSummaryResp struct {
	TotalIncome  float64           `json:"totalIncome"`
	TotalSales   int64             `json:"totalSales"`
	SoldProducts []SoldProductView `json:"soldProducts"`
}
