package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inventisync_v1_202608/internal/model"
	"inventisync_v1_202608/internal/repository"
)

// ==================== 测试辅助 ====================

func setupAuthTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	db.AutoMigrate(&model.User{})
	return db
}

func seedAuthUsers(t *testing.T, db *gorm.DB) {
	users := []model.User{
		{Email: "admin@x.com", Name: "Admin", Role: model.RoleAdmin},
		{Email: "mgr@x.com", Name: "Manager", Role: model.RoleManager},
		{Email: "user@x.com", Name: "User", Role: model.RoleUser},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			t.Fatalf("写入测试用户失败: %v", err)
		}
	}
}

// ==================== 单元测试 ====================

func TestAuthService_AdminOnly(t *testing.T) {
	db := setupAuthTestDB(t)
	seedAuthUsers(t, db)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	if err := svc.Authorize(ctx, "admin@x.com", CapAdminOnly, ""); err != nil {
		t.Errorf("admin 应通过 AdminOnly, got %v", err)
	}
	if err := svc.Authorize(ctx, "mgr@x.com", CapAdminOnly, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("manager 不应通过 AdminOnly, got %v", err)
	}
	if err := svc.Authorize(ctx, "user@x.com", CapAdminOnly, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("user 不应通过 AdminOnly, got %v", err)
	}
}

// 角色互斥：admin 不隐含 manager，反之亦然
func TestAuthService_RolesAreDisjoint(t *testing.T) {
	db := setupAuthTestDB(t)
	seedAuthUsers(t, db)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	if err := svc.Authorize(ctx, "admin@x.com", CapManagerOnly, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("admin 不应通过 ManagerOnly, got %v", err)
	}
	if err := svc.Authorize(ctx, "mgr@x.com", CapManagerOnly, ""); err != nil {
		t.Errorf("manager 应通过 ManagerOnly, got %v", err)
	}
	if err := svc.Authorize(ctx, "mgr@x.com", CapAdminOnly, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("manager 不应通过 AdminOnly, got %v", err)
	}
}

// 账号缺失按角色不符处理，不是独立错误
func TestAuthService_MissingAccount(t *testing.T) {
	db := setupAuthTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	if err := svc.Authorize(ctx, "ghost@x.com", CapManagerOnly, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("缺失账号应得 ErrForbidden, got %v", err)
	}
	if err := svc.Authorize(ctx, "ghost@x.com", CapAdminOnly, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("缺失账号应得 ErrForbidden, got %v", err)
	}
}

// SelfOnly 先于查库判断，邮箱不符一律拒绝，admin 也不例外
func TestAuthService_SelfOnly(t *testing.T) {
	db := setupAuthTestDB(t)
	seedAuthUsers(t, db)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	if err := svc.Authorize(ctx, "admin@x.com", CapSelfOnly, "user@x.com"); !errors.Is(err, ErrForbidden) {
		t.Errorf("邮箱不符时 admin 也应被拒, got %v", err)
	}
	if err := svc.Authorize(ctx, "user@x.com", CapSelfOnly, "user@x.com"); err != nil {
		t.Errorf("本人应通过 SelfOnly, got %v", err)
	}
	// 甚至不需要账号存在
	if err := svc.Authorize(ctx, "ghost@x.com", CapSelfOnly, "ghost@x.com"); err != nil {
		t.Errorf("SelfOnly 不查库，匹配即通过, got %v", err)
	}
}

func TestAuthService_ProbeRole(t *testing.T) {
	db := setupAuthTestDB(t)
	seedAuthUsers(t, db)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	role, err := svc.ProbeRole(ctx, "admin@x.com")
	if err != nil || role != model.RoleAdmin {
		t.Errorf("ProbeRole(admin) = (%s, %v), want (admin, nil)", role, err)
	}

	role, err = svc.ProbeRole(ctx, "mgr@x.com")
	if err != nil || role != model.RoleManager {
		t.Errorf("ProbeRole(manager) = (%s, %v), want (manager, nil)", role, err)
	}

	if _, err = svc.ProbeRole(ctx, "user@x.com"); !errors.Is(err, ErrForbidden) {
		t.Errorf("普通用户应得 ErrForbidden, got %v", err)
	}
	if _, err = svc.ProbeRole(ctx, "ghost@x.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("缺失账号应得 ErrUserNotFound, got %v", err)
	}
}
