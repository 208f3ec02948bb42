package model

// Sale 销售流水
// 只追加，入库后不再修改或删除
type Sale struct {
	BaseModel
	OwnerEmail string `gorm:"size:100;index;not null" json:"ownerEmail"`
	ProductID  int64  `gorm:"index" json:"productId"`

	Name         string  `gorm:"size:255" json:"name"`
	SellingPrice float64 `gorm:"default:0" json:"sellingPrice"`
	Cost         float64 `gorm:"default:0" json:"cost"`
	Profit       float64 `gorm:"default:0" json:"profit"`

	// 售出日期字符串，汇总历史按它倒序
	DateStr string `gorm:"size:40;index" json:"dateStr"`
}

func (Sale) TableName() string {
	return "sales"
}
