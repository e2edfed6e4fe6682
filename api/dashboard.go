package api

import (
	"log"

	"budgetbook/config"
	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/repository"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 首页处理器
type DashboardHandler struct {
	cfg    *config.Config
	agg    *service.Aggregator
	poster *service.SalaryPoster
}

// NewDashboardHandler 创建首页处理器
func NewDashboardHandler(cfg *config.Config) *DashboardHandler {
	store := repository.New(database.DB)
	return &DashboardHandler{
		cfg:    cfg,
		agg:    service.NewAggregator(store, store),
		poster: service.NewSalaryPoster(store, store, cfg.Salary.Note),
	}
}

// Get 首页数据
// @Summary 首页汇总
// @Description 返回时间范围内的收入、支出、结余、收支记录、最近5条记录及借款未还总额。开启自动入账时会先补齐本月工资
// @Tags 首页
// @Produce json
// @Security BearerAuth
// @Param month query string false "月份 (2024-06)"
// @Param period query string false "快捷时间段" Enums(today, 3days, 7days, 1month, 3months)
// @Success 200 {object} Response{data=service.Dashboard} "查询成功"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	ref := localNow()

	if h.cfg.Salary.AutoPostOnDashboard {
		// 未配置工资属于正常情况，其余错误只记录不影响首页
		if _, err := h.poster.EnsureForMonth(c.Request.Context(), userID, ref); err != nil &&
			service.KindOf(err) != service.KindPrecondition {
			log.Printf("[%s] 自动工资入账失败: user=%d err=%v", middleware.GetRequestID(c), userID, err)
		}
	}

	dashboard, err := h.agg.Dashboard(c.Request.Context(), userID, c.Query("month"), c.Query("period"), ref)
	if err != nil {
		respondError(c, err, "查询首页数据失败")
		return
	}
	Success(c, dashboard)
}
