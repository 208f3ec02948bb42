package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/service"
)

// SubscriptionController 订阅接口
type SubscriptionController struct {
	subsSvc *service.SubscriptionService
}

// NewSubscriptionController 创建订阅控制器
func NewSubscriptionController(subsSvc *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{subsSvc: subsSvc}
}

// Get 查询订阅
// GET /api/subscriptions/:email
func (ctl *SubscriptionController) Get(c *gin.Context) {
	sub, err := ctl.subsSvc.GetByClient(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Create 创建订阅
// POST /api/subscriptions
func (ctl *SubscriptionController) Create(c *gin.Context) {
	var req dto.SubscriptionCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "参数错误: " + err.Error()})
		return
	}

	sub, err := ctl.subsSvc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Delete 删除订阅
// DELETE /api/subscriptions/:email
func (ctl *SubscriptionController) Delete(c *gin.Context) {
	if err := ctl.subsSvc.DeleteByClient(c.Request.Context(), c.Param("email")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "订阅已删除"})
}
