package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"budgetbook/config"
	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/router"
)

// @title 记账本 API
// @version 1.0
// @description 个人记账服务：收支记录、工资自动入账、借款与还款计划、还款日提醒
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const version = "1.0.0"

func main() {
	var (
		configFile  string
		listen      string
		showVersion bool
	)
	flag.StringVar(&configFile, "c", "", "覆盖默认值的 YAML 配置文件")
	flag.StringVar(&configFile, "config", "", "同 -c")
	flag.StringVar(&listen, "p", "", "监听地址，8080 与 :8080 等价，优先于配置文件")
	flag.StringVar(&listen, "port", "", "同 -p")
	flag.BoolVar(&showVersion, "v", false, "输出版本号后退出")
	flag.BoolVar(&showVersion, "version", false, "同 -v")
	flag.Parse()

	if showVersion {
		fmt.Printf("budgetbook %s\n", version)
		return
	}

	if err := run(configFile, listen); err != nil {
		log.Fatal(err)
	}
}

// listenAddr 8080 与 :8080 都转成 :8080，带主机名的地址原样保留
func listenAddr(s string) string {
	if strings.Contains(s, ":") {
		return s
	}
	return ":" + s
}

func run(configFile, listen string) error {
	// .env 会先写入环境变量，再叠加内置 YAML 与 -c 指定的文件
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}
	if listen != "" {
		cfg.Server.Port = listenAddr(listen)
	}
	// 工资日与还款日都按该时区划分自然日
	log.Printf("budgetbook %s, 日期时区 %s", version, config.Location())
	config.PrintConfig()

	// 连接 mysql 或 sqlite，并自动迁移 users/transactions/loans/loan_payments
	if err := database.Init(cfg); err != nil {
		return fmt.Errorf("数据库初始化失败: %w", err)
	}
	middleware.InitJWT(cfg)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           router.SetupRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Printf("监听 %s，接口前缀 /api/v1，文档 /swagger/index.html", cfg.Server.Port)
	if cfg.Reminder.CronSecret == "" {
		log.Printf("提醒接口 /api/cron/loan-reminders 未设置密钥，任何人都可调用")
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("服务器启动失败: %w", err)
	case <-ctx.Done():
	}

	log.Printf("收到退出信号，等待进行中的请求结束")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
