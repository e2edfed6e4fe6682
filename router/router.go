package router

import (
	"time"

	"budgetbook/api"
	"budgetbook/config"
	_ "budgetbook/docs"
	"budgetbook/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := api.NewAuthHandler(cfg)
	transactionHandler := api.NewTransactionHandler(cfg)
	loanHandler := api.NewLoanHandler(cfg)
	salaryHandler := api.NewSalaryHandler(cfg)
	dashboardHandler := api.NewDashboardHandler(cfg)
	exportHandler := api.NewExportHandler(cfg)
	reminderHandler := api.NewReminderHandler(cfg)

	v1 := r.Group("/api/v1")
	{
		// 认证相关（无需登录，按 IP 限流）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", middleware.RateLimit(5, time.Hour, "注册过于频繁，请稍后再试"), authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(10, 15*time.Minute), authHandler.Login)
		}

		// 收支类别（无需登录）
		v1.GET("/categories", transactionHandler.Categories)

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/profile", authHandler.UpdateProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			authorized.GET("/dashboard", dashboardHandler.Get)

			// 收支记录
			transactions := authorized.Group("/transactions")
			{
				transactions.POST("", transactionHandler.Create)
				transactions.GET("", transactionHandler.List)
			}

			// 借款
			loans := authorized.Group("/loans")
			{
				loans.POST("", loanHandler.Create)
				loans.GET("", loanHandler.List)
				loans.GET("/:id", loanHandler.Detail)
				loans.POST("/:id/payments", loanHandler.RecordPayment)
			}

			authorized.POST("/salary/ensure", salaryHandler.Ensure)

			// 导出相关
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	// 定时任务（由外部调度器调用）
	r.GET("/api/cron/loan-reminders", middleware.CronAuth(cfg.Reminder.CronSecret), reminderHandler.LoanReminders)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, X-Request-ID, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
