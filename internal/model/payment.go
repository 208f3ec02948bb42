package model

// Payment 平台收款流水（订阅等平台级收入，区别于店铺 Sale）
// 只追加账本
type Payment struct {
	BaseModel
	TransactionID string `gorm:"size:40;uniqueIndex" json:"transactionId"`

	Email   string  `gorm:"size:100;index" json:"email"`
	Name    string  `gorm:"size:100" json:"name"`
	Service string  `gorm:"size:100" json:"service"`
	Price   float64 `gorm:"default:0" json:"price"`
	Date    string  `gorm:"size:40;index" json:"date"`
}

func (Payment) TableName() string {
	return "payments"
}
