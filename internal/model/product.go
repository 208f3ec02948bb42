package model

// Product 商品
// 租户键为 OwnerEmail（冗余存储，非外键约束）
type Product struct {
	BaseModel
	OwnerEmail string `gorm:"size:100;index;not null" json:"ownerEmail"`
	ShopName   string `gorm:"size:100" json:"shopName"`

	Name     string `gorm:"size:255;not null" json:"name"`
	Image    string `gorm:"size:255" json:"image"`
	Location string `gorm:"size:255" json:"location"`
	Info     string `gorm:"type:text" json:"info"`

	// 价格字段，直接按存储值累加，不做币种/精度处理
	Cost         float64 `gorm:"default:0" json:"cost"`
	SellingPrice float64 `gorm:"default:0" json:"sellingPrice"`
	Profit       float64 `gorm:"default:0" json:"profit"`
	Discount     float64 `gorm:"default:0" json:"discount"`

	// 库存与销量，随出售原子增减
	Quantity   int `gorm:"default:0" json:"quantity"`
	SalesCount int `gorm:"default:0" json:"salesCount"`
}

func (Product) TableName() string {
	return "products"
}
