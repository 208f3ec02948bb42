package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"inventisync_v1_202608/internal/api/dto"
	"inventisync_v1_202608/internal/model"
	"inventisync_v1_202608/internal/repository"
	"inventisync_v1_202608/pkg/payment"
)

// ==================== PaymentService 收款服务 ====================

// PaymentService 平台收款：支付意向转发 + 收款账本
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	intents     payment.IntentCreator
}

// NewPaymentService 创建收款服务
func NewPaymentService(paymentRepo repository.PaymentRepository, intents payment.IntentCreator) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, intents: intents}
}

// CreateIntent 向支付处理方创建支付意向
// price 为主单位金额，换算为最小单位（分）后转发，币种固定 usd
// 处理方失败统一归到 ErrUpstream
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)

	secret, err := s.intents.CreateIntent(ctx, amount, "usd")
	if err != nil {
		log.Printf("[PAY] 支付意向创建失败: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return secret, nil
}

// Record 收款入账，只追加
func (s *PaymentService) Record(ctx context.Context, req *dto.PaymentCreateReq) (*model.Payment, error) {
	p := &model.Payment{
		TransactionID: uuid.NewString(),
		Email:         req.Email,
		Name:          req.Name,
		Service:       req.Service,
		Price:         req.Price,
		Date:          req.Date,
	}
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
