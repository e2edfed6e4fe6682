package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"budgetbook/config"
	"budgetbook/trigger"

	"github.com/robfig/cron/v3"
)

var (
	configFile string
	once       bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.BoolVar(&once, "once", false, "立即执行一次后退出")
}

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	var publisher trigger.Publisher
	if cfg.Trigger.AMQPURL != "" {
		p, err := trigger.NewAMQPPublisher(cfg.Trigger.AMQPURL, cfg.Trigger.Exchange, cfg.Trigger.Queue)
		if err != nil {
			log.Fatalf("初始化消息队列失败: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	runner := trigger.NewRunner(trigger.NewClient(cfg.Trigger.Endpoint, cfg.Reminder.CronSecret), publisher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if once {
		if err := runner.Run(ctx); err != nil {
			log.Fatalf("还款提醒失败: %v", err)
		}
		return
	}

	c := cron.New(cron.WithLocation(config.Location()))
	_, err = c.AddFunc(cfg.Trigger.Schedule, func() {
		if err := runner.Run(ctx); err != nil {
			log.Printf("还款提醒失败: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("添加定时任务失败: %v", err)
	}
	c.Start()
	log.Printf("还款提醒触发器已启动: schedule=%q endpoint=%s", cfg.Trigger.Schedule, cfg.Trigger.Endpoint)

	<-ctx.Done()
	<-c.Stop().Done()
	log.Printf("还款提醒触发器已停止")
}
