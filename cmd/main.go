package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"inventisync_v1_202608/internal/controller"
	"inventisync_v1_202608/internal/middleware"
	"inventisync_v1_202608/internal/model"
	"inventisync_v1_202608/internal/repository"
	"inventisync_v1_202608/internal/router"
	"inventisync_v1_202608/internal/service"
	"inventisync_v1_202608/internal/task"
	"inventisync_v1_202608/pkg/database"
	"inventisync_v1_202608/pkg/payment"
)

func main() {
	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动定时任务
	stockTask := task.NewStockTask(deps.Repos.Product, getEnv("STOCK_SCAN_CRON", ""))
	stockTask.Start()
	defer stockTask.Stop()

	// 4. 初始化路由
	r := router.SetupRouter(deps.Controllers, deps.Services.Auth)

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓储集合
type Repositories struct {
	User         repository.UserRepository
	Shop         repository.ShopRepository
	Product      repository.ProductRepository
	Cart         repository.CartRepository
	Sale         repository.SaleRepository
	Payment      repository.PaymentRepository
	Subscription repository.SubscriptionRepository
}

// Services 服务集合
type Services struct {
	Auth         *service.AuthService
	User         *service.UserService
	Shop         *service.ShopService
	Product      *service.ProductService
	Cart         *service.CartService
	Sales        *service.SalesService
	Subscription *service.SubscriptionService
	Payment      *service.PaymentService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	driver := getEnv("DB_DRIVER", "sqlite")
	dsn := getEnv("DB_DSN", "inventisync.db")

	return database.InitDB(driver, dsn,
		&model.User{}, &model.Shop{}, &model.Product{},
		&model.CartItem{}, &model.Sale{},
		&model.Payment{}, &model.Subscription{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- JWT 配置 --------
	if secret := os.Getenv("ACCESS_TOKEN_SECRET"); secret != "" {
		cfg := middleware.DefaultJWTConfig()
		cfg.SecretKey = secret
		middleware.SetJWTConfig(cfg)
	}

	// -------- Repo 层 --------
	repos := &Repositories{
		User:         repository.NewUserRepository(db),
		Shop:         repository.NewShopRepository(db),
		Product:      repository.NewProductRepository(db),
		Cart:         repository.NewCartRepository(db),
		Sale:         repository.NewSaleRepository(db),
		Payment:      repository.NewPaymentRepository(db),
		Subscription: repository.NewSubscriptionRepository(db),
	}

	// -------- 外部服务 --------
	intentClient := payment.NewClient(getEnv("STRIPE_SECRET_KEY", ""))

	// -------- 业务服务 --------
	services := &Services{
		Auth:         service.NewAuthService(repos.User),
		User:         service.NewUserService(repos.User),
		Shop:         service.NewShopService(repos.Shop, repos.User),
		Product:      service.NewProductService(repos.Product, repos.Shop, repos.User),
		Cart:         service.NewCartService(repos.Cart),
		Sales:        service.NewSalesService(repos.Sale, repos.Payment),
		Subscription: service.NewSubscriptionService(repos.Subscription),
		Payment:      service.NewPaymentService(repos.Payment, intentClient),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:         controller.NewAuthController(),
		User:         controller.NewUserController(services.User, services.Auth),
		Shop:         controller.NewShopController(services.Shop),
		Product:      controller.NewProductController(services.Product),
		Cart:         controller.NewCartController(services.Cart),
		Sales:        controller.NewSalesController(services.Sales),
		Subscription: controller.NewSubscriptionController(services.Subscription),
		Payment:      controller.NewPaymentController(services.Payment),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// startServer 启动 HTTP 服务，支持优雅退出
func startServer(handler http.Handler) {
	port := getEnv("PORT", "5000")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	go func() {
		log.Printf("[HTTP] 服务启动，监听端口 %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[HTTP] 收到退出信号，正在关闭...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[HTTP] 关闭异常: %v", err)
	}
	log.Println("[HTTP] 已退出")
}

// getEnv 读取环境变量，空值返回默认
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
