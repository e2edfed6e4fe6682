package api

import (
	"budgetbook/config"
	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/models"
	"budgetbook/repository"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionHandler 收支记录处理器
type TransactionHandler struct {
	cfg *config.Config
	txs *service.TransactionService
	agg *service.Aggregator
}

// NewTransactionHandler 创建收支记录处理器
func NewTransactionHandler(cfg *config.Config) *TransactionHandler {
	store := repository.New(database.DB)
	return &TransactionHandler{
		cfg: cfg,
		txs: service.NewTransactionService(store, store),
		agg: service.NewAggregator(store, store),
	}
}

// CreateTransactionRequest 创建收支记录请求
type CreateTransactionRequest struct {
	Type       string          `json:"type" binding:"required" example:"EXPENSE"`
	Category   string          `json:"category" binding:"required" example:"GROCERIES"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"12500"`
	Note       string          `json:"note" example:"超市"`
	OccurredAt string          `json:"occurred_at" binding:"required" example:"2024-06-15"`
	LoanID     *uint           `json:"loan_id" example:"1"`
}

// CategoryItem 收支类别
type CategoryItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Create 创建收支记录
// @Summary 创建收支记录
// @Description 手动记录一笔收入或支出。工资收入与还款支出由系统生成，不能手动创建
// @Tags 收支
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "收支信息"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "关联的借款不存在"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	occurredAt, err := parseDate(req.OccurredAt)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	tx, err := h.txs.Create(c.Request.Context(), middleware.GetCurrentUserID(c), service.CreateTransactionInput{
		Type:       req.Type,
		Category:   req.Category,
		Amount:     req.Amount,
		Note:       req.Note,
		OccurredAt: occurredAt,
		LoanID:     req.LoanID,
	})
	if err != nil {
		respondError(c, err, "创建收支记录失败")
		return
	}
	SuccessWithMessage(c, "记录成功", tx)
}

// List 收支记录列表
// @Summary 收支记录列表
// @Description 按月份或快捷时间段查询收支记录，可按类型筛选
// @Tags 收支
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param month query string false "月份 (2024-06)"
// @Param period query string false "快捷时间段" Enums(today, 3days, 7days, 1month, 3months)
// @Param type query string false "收支类型" Enums(INCOME, EXPENSE)
// @Success 200 {object} Response{data=service.TransactionsPage} "查询成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	page, err := h.agg.Transactions(c.Request.Context(), middleware.GetCurrentUserID(c),
		c.Query("month"), c.Query("period"), c.Query("type"), localNow())
	if err != nil {
		respondError(c, err, "查询收支记录失败")
		return
	}
	Success(c, page)
}

// Categories 收支类别列表
// @Summary 收支类别列表
// @Description 返回全部收支类别及显示名称
// @Tags 收支
// @Produce json
// @Success 200 {object} Response{data=[]CategoryItem} "查询成功"
// @Router /api/v1/categories [get]
func (h *TransactionHandler) Categories(c *gin.Context) {
	keys := models.GetCategories()
	items := make([]CategoryItem, 0, len(keys))
	for _, key := range keys {
		items = append(items, CategoryItem{Key: key, Label: models.CategoryLabel(key)})
	}
	Success(c, items)
}
