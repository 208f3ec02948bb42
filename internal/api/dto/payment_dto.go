package dto

// IntentReq 创建支付意向请求，Price 为主单位金额
type IntentReq struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// IntentResp 支付意向响应，透传处理方返回的 client secret
type IntentResp struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentCreateReq 收款入账请求
type PaymentCreateReq struct {
	Email   string  `json:"email" binding:"required,email"`
	Name    string  `json:"name"`
	Service string  `json:"service"`
	Price   float64 `json:"price"`
	Date    string  `json:"date"`
}

// SubscriptionCreateReq 创建订阅请求
type SubscriptionCreateReq struct {
	Client  string  `json:"client" binding:"required,email"`
	Plan    string  `json:"plan"`
	Price   float64 `json:"price"`
	DateStr string  `json:"dateStr"`
}
