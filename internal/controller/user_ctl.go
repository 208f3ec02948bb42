package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/service"
)

// UserController 用户接口
type UserController struct {
	userSvc *service.UserService
	authSvc *service.AuthService
}

// NewUserController 创建用户控制器
func NewUserController(userSvc *service.UserService, authSvc *service.AuthService) *UserController {
	return &UserController{userSvc: userSvc, authSvc: authSvc}
}

// Register 自助注册
// POST /api/users
func (ctl *UserController) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "参数错误: " + err.Error()})
		return
	}

	user, err := ctl.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// List 全量用户（管理员）
// GET /api/users
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.userSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ProbeRole 探测某邮箱的管理身份（路径邮箱已由 SelfOnly 门禁校验）
// GET /api/users/admin-manager/:email
func (ctl *UserController) ProbeRole(c *gin.Context) {
	email := c.Param("email")

	role, err := ctl.authSvc.ProbeRole(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoleResp{Role: role})
}

// GetByEmail 单个用户信息
// GET /api/users/individual/:email
func (ctl *UserController) GetByEmail(c *gin.Context) {
	user, err := ctl.userSvc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
