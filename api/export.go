package api

import (
	"fmt"
	"net/http"

	"budgetbook/config"
	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/repository"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 收支记录导出处理器
type ExportHandler struct {
	cfg *config.Config
	agg *service.Aggregator
}

// NewExportHandler 创建导出处理器
func NewExportHandler(cfg *config.Config) *ExportHandler {
	store := repository.New(database.DB)
	return &ExportHandler{cfg: cfg, agg: service.NewAggregator(store, store)}
}

func (h *ExportHandler) load(c *gin.Context) (*service.TransactionsPage, bool) {
	page, err := h.agg.Transactions(c.Request.Context(), middleware.GetCurrentUserID(c),
		c.Query("month"), c.Query("period"), c.Query("type"), localNow())
	if err != nil {
		respondError(c, err, "查询收支记录失败")
		return nil, false
	}
	return page, true
}

func exportFilename(p service.Period, ext string) string {
	return fmt.Sprintf("transactions_%s_%s.%s", p.Start.Format(dateLayout), p.End.Format(dateLayout), ext)
}

// ExportCSV 导出 CSV
// @Summary 导出收支记录为CSV
// @Description 按月份或快捷时间段导出收支记录，默认为本月
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param month query string false "月份 (2024-06)"
// @Param period query string false "快捷时间段" Enums(today, 3days, 7days, 1month, 3months)
// @Param type query string false "收支类型" Enums(INCOME, EXPENSE)
// @Success 200 {file} file "CSV文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	page, ok := h.load(c)
	if !ok {
		return
	}

	data, err := service.BuildTransactionCSV(page.Transactions)
	if err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename(page.Period, "csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportExcel 导出 Excel
// @Summary 导出收支记录为Excel
// @Description 按月份或快捷时间段导出收支记录，末尾附收入、支出与结余合计
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param month query string false "月份 (2024-06)"
// @Param period query string false "快捷时间段" Enums(today, 3days, 7days, 1month, 3months)
// @Param type query string false "收支类型" Enums(INCOME, EXPENSE)
// @Success 200 {file} file "Excel文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	page, ok := h.load(c)
	if !ok {
		return
	}

	f, err := service.BuildTransactionWorkbook(page.Transactions, page.Label)
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename(page.Period, "xlsx")))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
