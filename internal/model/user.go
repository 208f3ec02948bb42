package model

// 用户角色常量
// 注意：角色互斥，admin 不隐含 manager 权限（权限判断用精确匹配）
const (
	RoleUser    = "user"    // 普通用户
	RoleManager = "manager" // 店长（创建店铺后自动升级）
	RoleAdmin   = "admin"   // 平台管理员
)

// User 平台账号
// 注册时创建，创建店铺时升级为 manager 并回填店铺冗余字段
type User struct {
	BaseModel
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name  string `gorm:"size:100" json:"name"`
	Photo string `gorm:"size:255" json:"photo"`

	Role string `gorm:"size:20;default:'user'" json:"role"`

	// 店铺关联（成为 manager 后写入）
	ShopID int64 `gorm:"index;default:0" json:"shopId"`
	// 冗余缓存，仅作展示用，不参与权限判断
	ShopName string `gorm:"size:100" json:"shopName"`
	ShopLogo string `gorm:"size:255" json:"shopLogo"`
}

func (User) TableName() string {
	return "users"
}
