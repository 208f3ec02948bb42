package router

import (
	"github.com/gin-gonic/gin"

	"inventisync_v1_202608/internal/controller"
	"inventisync_v1_202608/internal/middleware"
	"inventisync_v1_202608/internal/service"
)

// Controllers 路由依赖的控制器集合
type Controllers struct {
	Auth         *controller.AuthController
	User         *controller.UserController
	Shop         *controller.ShopController
	Product      *controller.ProductController
	Cart         *controller.CartController
	Sales        *controller.SalesController
	Subscription *controller.SubscriptionController
	Payment      *controller.PaymentController
}

// SetupRouter 注册所有路由
// 门禁组合：JWTAuth 负责 401，RequireCapability 负责 403
// 注意沿用上游的几处"裸奔"路由（订阅读写、收款入账、配额调整），不加门禁
func SetupRouter(ctls *Controllers, gate *service.AuthService) *gin.Engine {
	r := gin.Default()

	auth := middleware.JWTAuth()
	adminOnly := middleware.RequireCapability(gate, service.CapAdminOnly)
	managerOnly := middleware.RequireCapability(gate, service.CapManagerOnly)
	selfOnly := middleware.RequireCapability(gate, service.CapSelfOnly)

	api := r.Group("/api")
	{
		// Token 签发
		api.POST("/jwt", ctls.Auth.IssueToken)

		// 用户
		users := api.Group("/users")
		{
			users.POST("", ctls.User.Register)
			users.GET("", auth, adminOnly, ctls.User.List)
			users.GET("/admin-manager/:email", auth, selfOnly, ctls.User.ProbeRole)
			users.GET("/individual/:email", auth, ctls.User.GetByEmail)
			users.GET("/can-add-product/:email", auth, selfOnly, ctls.Product.CanAdd)
		}

		// 店铺
		shops := api.Group("/shops")
		{
			shops.GET("", auth, adminOnly, ctls.Shop.List)
			shops.POST("", auth, ctls.Shop.Create)
			shops.GET("/owner", auth, ctls.Shop.GetByOwner)
			shops.PUT("/:email", ctls.Shop.UpdateLimit)
		}

		// 商品
		products := api.Group("/products")
		{
			products.GET("", auth, adminOnly, ctls.Product.List)
			products.POST("", auth, ctls.Product.Create)
			products.GET("/single/:id", auth, ctls.Product.GetByID)
			products.GET("/specific", auth, ctls.Product.ListByOwner)
			products.PUT("/single/:id", auth, managerOnly, ctls.Product.Update)
			products.DELETE("/:id", auth, managerOnly, ctls.Product.Delete)
			products.PUT("/increase-sales-count/:id", auth, ctls.Product.IncreaseSalesCount)
			products.PUT("/decrease-quantity/:id", auth, ctls.Product.DecreaseQuantity)
		}

		// 购物车
		carts := api.Group("/carts")
		{
			carts.POST("", auth, ctls.Cart.Upsert)
			carts.GET("/specific", auth, ctls.Cart.ListByOwner)
			carts.GET("/:id", auth, ctls.Cart.Get)
			carts.DELETE("/:id", auth, ctls.Cart.Delete)
		}

		// 销售
		sales := api.Group("/sales")
		{
			sales.POST("", auth, ctls.Sales.Record)
			sales.GET("/summary/:email", auth, managerOnly, ctls.Sales.Summary)
			sales.GET("/view", auth, adminOnly, ctls.Sales.PlatformView)
		}

		// 订阅
		subs := api.Group("/subscriptions")
		{
			subs.GET("/:email", ctls.Subscription.Get)
			subs.POST("", ctls.Subscription.Create)
			subs.DELETE("/:email", auth, ctls.Subscription.Delete)
		}

		// 收款
		payments := api.Group("/payments")
		{
			payments.POST("/create-intent", ctls.Payment.CreateIntent)
			payments.POST("", ctls.Payment.Record)
		}
	}

	return r
}
