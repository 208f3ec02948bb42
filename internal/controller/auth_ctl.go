package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/middleware"
)

// AuthController Token 签发
type AuthController struct{}

// NewAuthController 创建认证控制器
func NewAuthController() *AuthController {
	return &AuthController{}
}

// IssueToken 为邮箱签发 1 小时有效的访问 Token
// POST /api/jwt
func (ctl *AuthController) IssueToken(c *gin.Context) {
	var req dto.TokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "参数错误: " + err.Error()})
		return
	}

	token, err := middleware.GenerateToken(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResp{Token: token})
}
