package api

import (
	"log"
	"net/http"

	"budgetbook/config"
	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/repository"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

// ReminderHandler 还款提醒定时接口
type ReminderHandler struct {
	cfg *config.Config
	job *service.ReminderJob
}

// NewReminderHandler 创建还款提醒处理器
func NewReminderHandler(cfg *config.Config) *ReminderHandler {
	return &ReminderHandler{cfg: cfg, job: service.NewReminderJob(repository.New(database.DB))}
}

// LoanReminders 生成当天的还款提醒
// @Summary 还款日提醒
// @Description 由外部定时任务调用，扫描当天到期的借款并按用户生成提醒文本。配置了 cron_secret 时需携带 Bearer 密钥
// @Tags 定时任务
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ReminderReport "提醒结果"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Failed to process reminders"
// @Router /api/cron/loan-reminders [get]
func (h *ReminderHandler) LoanReminders(c *gin.Context) {
	report, err := h.job.Run(c.Request.Context(), localNow())
	if err != nil {
		log.Printf("[%s] 还款提醒失败: %v", middleware.GetRequestID(c), err)
		c.String(http.StatusInternalServerError, "Failed to process reminders")
		return
	}
	c.JSON(http.StatusOK, report)
}
