package dto

// TokenReq 签发 Token 请求
type TokenReq struct {
	Email string `json:"email" binding:"required,email"`
}

// TokenResp 签发 Token 响应
type TokenResp struct {
	Token string `json:"token"`
}

// RegisterReq 注册请求
type RegisterReq struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
	Role  string `json:"role"`
}

// RoleResp 管理身份探测响应
type RoleResp struct {
	Role string `json:"role"`
}
