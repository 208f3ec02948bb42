package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/service"
)

// ProductController 商品接口
type ProductController struct {
	productSvc *service.ProductService
}

// NewProductController 创建商品控制器
func NewProductController(productSvc *service.ProductService) *ProductController {
	return &ProductController{productSvc: productSvc}
}

// Create 创建商品
// POST /api/products
func (ctl *ProductController) Create(c *gin.Context) {
	var req dto.ProductCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "参数错误: " + err.Error()})
		return
	}

	product, err := ctl.productSvc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// List 全量商品（管理员）
// GET /api/products
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.productSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetByID 单个商品
// GET /api/products/single/:id
func (ctl *ProductController) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的商品ID"})
		return
	}

	product, err := ctl.productSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListByOwner 租户商品列表
// GET /api/products/specific?email=
func (ctl *ProductController) ListByOwner(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "缺少 email 参数"})
		return
	}

	products, err := ctl.productSvc.ListByOwner(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CanAdd 配额判定（路径邮箱已由 SelfOnly 门禁校验）
// GET /api/users/can-add-product/:email
func (ctl *ProductController) CanAdd(c *gin.Context) {
	allowed, err := ctl.productSvc.CanAddProduct(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CanAddResp{CanAddProduct: allowed})
}

// Update 商品整体更新（店长）
// PUT /api/products/single/:id
func (ctl *ProductController) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的商品ID"})
		return
	}

	var req dto.ProductUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "参数错误: " + err.Error()})
		return
	}

	if err := ctl.productSvc.Update(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "商品已更新"})
}

// Delete 删除商品（店长）
// DELETE /api/products/:id
func (ctl *ProductController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的商品ID"})
		return
	}

	if err := ctl.productSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "商品已删除"})
}

// IncreaseSalesCount 出售副作用：销量 +1
// PUT /api/products/increase-sales-count/:id
func (ctl *ProductController) IncreaseSalesCount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的商品ID"})
		return
	}

	if err := ctl.productSvc.IncrementSalesCount(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "销量已更新"})
}

// DecreaseQuantity 出售副作用：库存 -1
// PUT /api/products/decrease-quantity/:id
func (ctl *ProductController) DecreaseQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "无效的商品ID"})
		return
	}

	if err := ctl.productSvc.DecrementQuantity(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "库存已更新"})
}
