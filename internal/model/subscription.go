package model

// Subscription 订阅记录
// 每个 client 邮箱一条，整条创建/删除，不做局部更新
type Subscription struct {
	BaseModel
	Client  string  `gorm:"size:100;uniqueIndex;not null" json:"client"`
	Plan    string  `gorm:"size:100" json:"plan"`
	Price   float64 `gorm:"default:0" json:"price"`
	DateStr string  `gorm:"size:40" json:"dateStr"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
