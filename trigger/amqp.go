package trigger

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"budgetbook/service"

	"github.com/rabbitmq/amqp091-go"
)

// ReminderMessage 队列中的一条提醒，每个收件人一条
type ReminderMessage struct {
	Date    string `json:"date"`
	Email   string `json:"email"`
	Count   int    `json:"count"`
	Preview string `json:"preview"`
}

// Messages 将提醒结果拆成按收件人的消息
func Messages(report *service.ReminderReport) []ReminderMessage {
	msgs := make([]ReminderMessage, 0, len(report.Recipients))
	for _, r := range report.Recipients {
		msgs = append(msgs, ReminderMessage{
			Date:    report.Date,
			Email:   r.Email,
			Count:   r.Count,
			Preview: r.Preview,
		})
	}
	return msgs
}

// AMQPPublisher 把提醒投递到 RabbitMQ，由外部服务负责发送邮件
type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	queue    string
}

// NewAMQPPublisher 连接并声明 direct exchange 与持久化队列
func NewAMQPPublisher(url, exchange, queue string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("连接 AMQP 失败: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("打开 channel 失败: %w", err)
	}

	p := &AMQPPublisher{conn: conn, channel: channel, exchange: exchange, queue: queue}
	if err := p.setup(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func (p *AMQPPublisher) setup() error {
	if err := p.channel.ExchangeDeclare(p.exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("声明 exchange 失败: %w", err)
	}
	if _, err := p.channel.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("声明队列失败: %w", err)
	}
	// routing key 与队列同名
	if err := p.channel.QueueBind(p.queue, p.queue, p.exchange, false, nil); err != nil {
		return fmt.Errorf("绑定队列失败: %w", err)
	}
	return nil
}

// Publish 每个收件人发布一条持久化消息
func (p *AMQPPublisher) Publish(ctx context.Context, report *service.ReminderReport) error {
	for _, msg := range Messages(report) {
		body, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("序列化消息失败: %w", err)
		}

		pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = p.channel.PublishWithContext(pubCtx, p.exchange, p.queue, false, false, amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		})
		cancel()
		if err != nil {
			return fmt.Errorf("发布消息失败: %w", err)
		}
	}
	log.Printf("提醒已投递: exchange=%s queue=%s count=%d", p.exchange, p.queue, len(report.Recipients))
	return nil
}

// Close 关闭 channel 与连接
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
