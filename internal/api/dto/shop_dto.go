package dto

// ShopCreateReq 创建店铺请求
// ProductLimit 不传（或 <=0）时落库为默认值 3
type ShopCreateReq struct {
	Name         string `json:"name" binding:"required"`
	OwnerEmail   string `json:"ownerEmail" binding:"required,email"`
	OwnerName    string `json:"ownerName"`
	Logo         string `json:"logo"`
	Location     string `json:"location"`
	Info         string `json:"info"`
	ProductLimit int    `json:"productLimit"`
}

// LimitUpdateReq 管理员调整配额请求
type LimitUpdateReq struct {
	ProductLimit int `json:"productLimit" binding:"required,gt=0"`
}
