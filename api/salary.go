package api

import (
	"budgetbook/config"
	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/repository"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

// SalaryHandler 工资入账处理器
type SalaryHandler struct {
	cfg    *config.Config
	poster *service.SalaryPoster
}

// NewSalaryHandler 创建工资入账处理器
func NewSalaryHandler(cfg *config.Config) *SalaryHandler {
	store := repository.New(database.DB)
	return &SalaryHandler{cfg: cfg, poster: service.NewSalaryPoster(store, store, cfg.Salary.Note)}
}

// Ensure 补齐本月工资
// @Summary 补齐本月工资收入
// @Description 为本月已到期的发薪日写入工资收入，重复调用不会重复入账
// @Tags 工资
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.SalaryResult} "处理成功"
// @Failure 404 {object} Response "用户不存在"
// @Failure 422 {object} Response "未设置发薪日或工资金额"
// @Router /api/v1/salary/ensure [post]
func (h *SalaryHandler) Ensure(c *gin.Context) {
	result, err := h.poster.EnsureForMonth(c.Request.Context(), middleware.GetCurrentUserID(c), localNow())
	if err != nil {
		respondError(c, err, "工资入账失败")
		return
	}
	SuccessWithMessage(c, result.Message, result)
}
