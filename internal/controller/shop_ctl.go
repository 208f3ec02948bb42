package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/service"
)

// ShopController 店铺接口
type ShopController struct {
	shopSvc *service.ShopService
}

// NewShopController 创建店铺控制器
func NewShopController(shopSvc *service.ShopService) *ShopController {
	return &ShopController{shopSvc: shopSvc}
}

// Create 创建店铺并升级 owner 为 manager
// POST /api/shops
func (ctl *ShopController) Create(c *gin.Context) {
	var req dto.ShopCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "参数错误: " + err.Error()})
		return
	}

	shop, err := ctl.shopSvc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "店铺创建成功", "insertedId": shop.ID})
}

// List 全量店铺（管理员）
// GET /api/shops
func (ctl *ShopController) List(c *gin.Context) {
	shops, err := ctl.shopSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shops)
}

// GetByOwner 按 owner 邮箱查店铺
// GET /api/shops/owner?email=
func (ctl *ShopController) GetByOwner(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "缺少 email 参数"})
		return
	}

	shop, err := ctl.shopSvc.GetByOwner(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shop)
}

// UpdateLimit 管理员调整商品配额
// PUT /api/shops/:email
func (ctl *ShopController) UpdateLimit(c *gin.Context) {
	var req dto.LimitUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "参数错误: " + err.Error()})
		return
	}

	if err := ctl.shopSvc.UpdateProductLimit(c.Request.Context(), c.Param("email"), req.ProductLimit); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "配额已更新"})
}
