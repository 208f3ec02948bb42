package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventisync_v1_202608/internal/service"
)

// RoleAuthorizer 角色判定依赖
type RoleAuthorizer interface {
	Authorize(ctx context.Context, email string, cap service.Capability, target string) error
}

// RequireCapability 角色门禁中间件，必须挂在 JWTAuth 之后
// 每次请求重新判定，不缓存结果
func RequireCapability(gate RoleAuthorizer, cap service.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetEmail(c)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			c.Abort()
			return
		}

		// SelfOnly 的目标邮箱取路径参数
		target := c.Param("email")

		if err := gate.Authorize(c.Request.Context(), email, cap, target); err != nil {
			if errors.Is(err, service.ErrForbidden) {
				c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
