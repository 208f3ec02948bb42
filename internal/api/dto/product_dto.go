package dto

// ProductCreateReq 创建商品请求
type ProductCreateReq struct {
	OwnerEmail   string  `json:"ownerEmail" binding:"required,email"`
	ShopName     string  `json:"shopName"`
	Name         string  `json:"name" binding:"required"`
	Image        string  `json:"image"`
	Location     string  `json:"location"`
	Info         string  `json:"info"`
	Cost         float64 `json:"cost"`
	SellingPrice float64 `json:"sellingPrice"`
	Profit       float64 `json:"profit"`
	Discount     float64 `json:"discount"`
	Quantity     int     `json:"quantity"`
}

// ProductUpdateReq 商品整体更新请求（全字段覆盖，非局部 patch）
type ProductUpdateReq struct {
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Location     string  `json:"location"`
	Info         string  `json:"info"`
	Cost         float64 `json:"cost"`
	SellingPrice float64 `json:"sellingPrice"`
	Profit       float64 `json:"profit"`
	Discount     float64 `json:"discount"`
	Quantity     int     `json:"quantity"`
}

// CanAddResp 配额判定响应
type CanAddResp struct {
	CanAddProduct bool `json:"canAddProduct"`
}
