package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventisync_v1_202608/internal/service"
)

// respondError 业务错误统一映射 HTTP 状态码
// 401 由认证中间件负责，这里从 403 起
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrShopNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrSubscriptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrShopExists):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
