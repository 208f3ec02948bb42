package payment

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL Stripe 风格的支付处理方地址
const DefaultBaseURL = "https://api.stripe.com/v1"

// IntentCreator 支付意向创建入口，方便测试替换
type IntentCreator interface {
	// CreateIntent amount 为最小货币单位（分），返回处理方的 client secret
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// Client 支付处理方客户端
// 本服务只转发金额/币种并透传 client secret，不校验支付是否完成
type Client struct {
	http      *resty.Client
	secretKey string
}

// NewClient 创建支付客户端
func NewClient(secretKey string) *Client {
	httpClient := resty.New().
		SetBaseURL(DefaultBaseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/x-www-form-urlencoded")

	return &Client{
		http:      httpClient,
		secretKey: secretKey,
	}
}

// SetBaseURL 覆盖处理方地址（测试用）
func (c *Client) SetBaseURL(url string) *Client {
	c.http.SetBaseURL(url)
	return c
}

// intentResp 处理方响应
type intentResp struct {
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CreateIntent 创建支付意向
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	var result intentResp

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.secretKey).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amount, 10),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		SetResult(&result).
		SetError(&result).
		Post("/payment_intents")
	if err != nil {
		return "", fmt.Errorf("支付意向请求失败: %w", err)
	}

	if resp.IsError() {
		msg := resp.Status()
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		return "", fmt.Errorf("支付处理方拒绝: %s", msg)
	}

	if result.ClientSecret == "" {
		return "", fmt.Errorf("支付处理方未返回 client_secret")
	}

	return result.ClientSecret, nil
}
