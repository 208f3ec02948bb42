package service

import (
	"context"

	"inventisync_v1_202608/internal/model"
	"inventisync_v1_202608/internal/repository"
)

// ==================== 权限能力 ====================

// Capability 路由要求的权限能力
type Capability int

const (
	// CapAdminOnly 仅管理员
	CapAdminOnly Capability = iota
	// CapManagerOnly 仅店长。注意 admin 不通过该检查，角色互斥无层级
	CapManagerOnly
	// CapSelfOnly 仅本人（token 邮箱必须等于目标邮箱）
	CapSelfOnly
)

// ==================== AuthService 权限服务 ====================

// AuthService 角色门禁
// 每次请求都重新查库取当前角色，不做会话缓存——
// 角色会在请求间变化（如创建店铺升级为 manager）
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService 创建权限服务
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Authorize 判定能力是否放行
// email: token 中的已认证邮箱；target: CapSelfOnly 时的目标邮箱，其余能力忽略
// 不通过一律返回 ErrForbidden，不区分"账号不存在"与"角色不符"
func (s *AuthService) Authorize(ctx context.Context, email string, cap Capability, target string) error {
	// SelfOnly 先于任何查库判断，不匹配直接拒绝，与角色无关
	if cap == CapSelfOnly {
		if email != target {
			return ErrForbidden
		}
		return nil
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	// 账号缺失按角色不符处理
	var role string
	if user != nil {
		role = user.Role
	}

	switch cap {
	case CapAdminOnly:
		if role != model.RoleAdmin {
			return ErrForbidden
		}
	case CapManagerOnly:
		if role != model.RoleManager {
			return ErrForbidden
		}
	}
	return nil
}

// ProbeRole 查询某邮箱的管理身份（admin / manager）
// 普通用户返回 ErrForbidden，账号不存在返回 ErrUserNotFound
func (s *AuthService) ProbeRole(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	switch user.Role {
	case model.RoleAdmin:
		return model.RoleAdmin, nil
	case model.RoleManager:
		return model.RoleManager, nil
	default:
		return "", ErrForbidden
	}
}
