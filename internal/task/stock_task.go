package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"inventisync_v1_202608/internal/repository"
)

// DefaultLowStockThreshold 默认库存告警线
const DefaultLowStockThreshold = 3

// StockTask 库存告警扫描任务
// 周期扫描各租户库存偏低的商品，只打日志提示，不改数据
type StockTask struct {
	ProductRepo repository.ProductRepository
	Cron        *cron.Cron

	threshold int
	spec      string
}

// NewStockTask 创建库存扫描任务
// spec 为 cron 表达式（支持秒级），空串使用每日 06:00
func NewStockTask(productRepo repository.ProductRepository, spec string) *StockTask {
	if spec == "" {
		spec = "0 0 6 * * *"
	}
	return &StockTask{
		ProductRepo: productRepo,
		Cron:        cron.New(cron.WithSeconds()),
		threshold:   DefaultLowStockThreshold,
		spec:        spec,
	}
}

// SetThreshold 调整告警线
func (t *StockTask) SetThreshold(n int) {
	if n > 0 {
		t.threshold = n
	}
}

// Start 启动定时任务
func (t *StockTask) Start() {
	// 首次执行
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		log.Println("[TASK] 服务启动，正在执行首次库存扫描...")
		t.scanJob(ctx)
	}()

	_, err := t.Cron.AddFunc(t.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		t.scanJob(ctx)
	})
	if err != nil {
		log.Fatalf("无法启动库存扫描任务: %v", err)
	}

	t.Cron.Start()
	log.Printf("[TASK] 库存扫描任务已启动 (cron: %s, 阈值: %d)", t.spec, t.threshold)
}

// Stop 停止定时任务
func (t *StockTask) Stop() {
	if t.Cron != nil {
		t.Cron.Stop()
	}
}

func (t *StockTask) scanJob(ctx context.Context) {
	products, err := t.ProductRepo.ListLowStock(ctx, t.threshold)
	if err != nil {
		log.Printf("[TASK] 库存扫描失败: %v", err)
		return
	}
	if len(products) == 0 {
		log.Println("[TASK] 库存扫描完成，无告警")
		return
	}

	for _, p := range products {
		log.Printf("[TASK] 库存告警 店铺=%s 商品=%s 剩余=%d", p.OwnerEmail, p.Name, p.Quantity)
	}
	log.Printf("[TASK] 库存扫描完成，共 %d 个商品低于阈值 %d", len(products), t.threshold)
}
