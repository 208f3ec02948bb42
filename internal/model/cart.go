package model

import (
	"gorm.io/datatypes"
)

// CartItem 购物车条目
// 以外部提供的商品 ID 作为 upsert 键，整行覆盖（last-writer-wins）
// 条目是加购时刻商品数据的拷贝，不是库存本身
type CartItem struct {
	BaseModel
	// 外部键：商品 ID，同一商品重复加购幂等
	ProductID int64 `gorm:"uniqueIndex;not null" json:"productId"`

	OwnerEmail string `gorm:"size:100;index" json:"ownerEmail"`

	Name         string  `gorm:"size:255" json:"name"`
	Image        string  `gorm:"size:255" json:"image"`
	Cost         float64 `gorm:"default:0" json:"cost"`
	SellingPrice float64 `gorm:"default:0" json:"sellingPrice"`
	Profit       float64 `gorm:"default:0" json:"profit"`
	Discount     float64 `gorm:"default:0" json:"discount"`
	Quantity     int     `gorm:"default:0" json:"quantity"`

	// 加购时刻的商品完整快照
	Snapshot datatypes.JSON `json:"snapshot,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
