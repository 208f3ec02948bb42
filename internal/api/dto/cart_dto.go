package dto

import "encoding/json"

// CartUpsertReq 加购请求
// ProductID 是外部提供的 upsert 键
type CartUpsertReq struct {
	ProductID    int64           `json:"productId" binding:"required"`
	OwnerEmail   string          `json:"ownerEmail"`
	Name         string          `json:"name"`
	Image        string          `json:"image"`
	Cost         float64         `json:"cost"`
	SellingPrice float64         `json:"sellingPrice"`
	Profit       float64         `json:"profit"`
	Discount     float64         `json:"discount"`
	Quantity     int             `json:"quantity"`
	Snapshot     json.RawMessage `json:"snapshot"`
}
