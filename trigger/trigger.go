// Package trigger 外部定时调用还款提醒接口，并把提醒文本交给投递渠道
package trigger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"budgetbook/service"
)

// Publisher 提醒投递渠道
type Publisher interface {
	Publish(ctx context.Context, report *service.ReminderReport) error
}

// Client 调用还款提醒接口
type Client struct {
	endpoint string
	secret   string
	http     *http.Client
}

// NewClient 创建接口客户端，secret 为空时不携带 Authorization
func NewClient(endpoint, secret string) *Client {
	return &Client{
		endpoint: endpoint,
		secret:   secret,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch 调用接口并解析提醒结果
func (c *Client) Fetch(ctx context.Context) (*service.ReminderReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	if c.secret != "" {
		req.Header.Set("Authorization", "Bearer "+c.secret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("调用提醒接口失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("提醒接口返回 %d: %s", resp.StatusCode, body)
	}

	var report service.ReminderReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("解析提醒结果失败: %w", err)
	}
	return &report, nil
}

// Runner 一次完整的触发：调用接口，有收件人时投递
type Runner struct {
	client    *Client
	publisher Publisher
}

// NewRunner publisher 可为 nil，此时只记录日志
func NewRunner(client *Client, publisher Publisher) *Runner {
	return &Runner{client: client, publisher: publisher}
}

// Run 执行一次触发
func (r *Runner) Run(ctx context.Context) error {
	report, err := r.client.Fetch(ctx)
	if err != nil {
		return err
	}
	log.Printf("还款提醒: date=%s loans=%d recipients=%d", report.Date, report.Sent, len(report.Recipients))

	if r.publisher == nil || len(report.Recipients) == 0 {
		return nil
	}
	if err := r.publisher.Publish(ctx, report); err != nil {
		return fmt.Errorf("投递提醒失败: %w", err)
	}
	return nil
}
