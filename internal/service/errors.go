package service

import "errors"

// ==================== 业务错误 ====================

// 统一错误口径，controller 层用 errors.Is 映射 HTTP 状态码
// 401 由中间件处理，这里从 403 起
var (
	ErrForbidden = errors.New("无权限访问")

	ErrUserNotFound         = errors.New("用户不存在")
	ErrShopNotFound         = errors.New("店铺不存在")
	ErrProductNotFound      = errors.New("商品不存在")
	ErrCartItemNotFound     = errors.New("购物车条目不存在")
	ErrSubscriptionNotFound = errors.New("订阅不存在")

	ErrUserExists = errors.New("用户已存在")
	ErrShopExists = errors.New("店铺已存在")

	ErrUpstream = errors.New("上游服务调用失败")
)
