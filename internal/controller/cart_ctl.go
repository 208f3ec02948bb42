package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/service"
)

// CartController 购物车接口
type CartController struct {
	cartSvc *service.CartService
}

// NewCartController 创建购物车控制器
func NewCartController(cartSvc *service.CartService) *CartController {
	return &CartController{cartSvc: cartSvc}
}

// Upsert 加购（幂等，可安全重试）
// POST /api/carts
func (ctl *CartController) Upsert(c *gin.Context) {
	var req dto.CartUpsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "参数错误: " + err.Error()})
		return
	}

	item, err := ctl.cartSvc.Upsert(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Get 查单个条目
// GET /api/carts/:id
func (ctl *CartController) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的条目ID"})
		return
	}

	item, err := ctl.cartSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListByOwner 某用户的购物车
// GET /api/carts/specific?email=
func (ctl *CartController) ListByOwner(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "缺少 email 参数"})
		return
	}

	items, err := ctl.cartSvc.ListByOwner(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Delete 移除条目
// DELETE /api/carts/:id
func (ctl *CartController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的条目ID"})
		return
	}

	if err := ctl.cartSvc.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "条目已移除"})
}
