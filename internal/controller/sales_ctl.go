package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/service"
)

// SalesController 销售流水与汇总接口
type SalesController struct {
	salesSvc *service.SalesService
}

// NewSalesController 创建销售控制器
func NewSalesController(salesSvc *service.SalesService) *SalesController {
	return &SalesController{salesSvc: salesSvc}
}

// Record 销售流水入账
// POST /api/sales
func (ctl *SalesController) Record(c *gin.Context) {
	var req dto.SaleCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "参数错误: " + err.Error()})
		return
	}

	sale, err := ctl.salesSvc.Record(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

// Summary 店铺销售汇总（店长）
// GET /api/sales/summary/:email
func (ctl *SalesController) Summary(c *gin.Context) {
	resp, err := ctl.salesSvc.Summarize(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PlatformView 平台收入汇总（管理员）
// GET /api/sales/view
func (ctl *SalesController) PlatformView(c *gin.Context) {
	resp, err := ctl.salesSvc.PlatformSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
