package model

// DefaultProductLimit 创建店铺未指定配额时的默认商品上限
const DefaultProductLimit = 3

// Shop 店铺
// 每个 owner 只建一次；productLimit 由管理员调整
type Shop struct {
	BaseModel
	Name       string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	OwnerEmail string `gorm:"size:100;index;not null" json:"ownerEmail"`
	OwnerName  string `gorm:"size:100" json:"ownerName"`
	Logo       string `gorm:"size:255" json:"logo"`
	Location   string `gorm:"size:255" json:"location"`
	Info       string `gorm:"type:text" json:"info"`

	// 商品配额，创建时未指定则为 3
	ProductLimit int `gorm:"default:3" json:"productLimit"`
}

func (Shop) TableName() string {
	return "shops"
}
