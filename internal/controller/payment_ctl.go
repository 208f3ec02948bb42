package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/service"
)

// PaymentController 收款接口
type PaymentController struct {
	paymentSvc *service.PaymentService
}

// NewPaymentController 创建收款控制器
func NewPaymentController(paymentSvc *service.PaymentService) *PaymentController {
	return &PaymentController{paymentSvc: paymentSvc}
}

// CreateIntent 创建支付意向，透传 client secret
// POST /api/payments/create-intent
func (ctl *PaymentController) CreateIntent(c *gin.Context) {
	var req dto.IntentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "参数错误: " + err.Error()})
		return
	}

	secret, err := ctl.paymentSvc.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.IntentResp{ClientSecret: secret})
}

// Record 收款入账
// POST /api/payments
func (ctl *PaymentController) Record(c *gin.Context) {
	var req dto.PaymentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "参数错误: " + err.Error()})
		return
	}

	p, err := ctl.paymentSvc.Record(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
