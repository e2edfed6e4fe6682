package api

import (
	"strconv"

	"budgetbook/config"
	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/repository"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// maxScheduleCount 还款计划最多展示的期数
const maxScheduleCount = 120

// LoanHandler 借款处理器
type LoanHandler struct {
	cfg   *config.Config
	loans *service.LoanService
}

// NewLoanHandler 创建借款处理器
func NewLoanHandler(cfg *config.Config) *LoanHandler {
	store := repository.New(database.DB)
	return &LoanHandler{cfg: cfg, loans: service.NewLoanService(store, store)}
}

// CreateLoanRequest 新建借款请求
type CreateLoanRequest struct {
	Name            string           `json:"name" binding:"required" example:"车贷"`
	Principal       decimal.Decimal  `json:"principal" swaggertype:"string" example:"5000000"`
	InterestRate    *decimal.Decimal `json:"interest_rate" swaggertype:"string" example:"2.5"`
	StartDate       string           `json:"start_date" binding:"required" example:"2024-01-15"`
	RepaymentDay    int              `json:"repayment_day" binding:"required" example:"15"`
	PaymentInterval int              `json:"payment_interval" example:"15"`
	Installments    int              `json:"installments" example:"4"`
	Notes           string           `json:"notes"`
}

// RecordPaymentRequest 登记还款请求
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"500000"`
	PaidAt string          `json:"paid_at" binding:"required" example:"2024-06-15"`
}

// LoanListResponse 借款列表
type LoanListResponse struct {
	Loans            []service.LoanSummary `json:"loans"`
	OutstandingTotal decimal.Decimal       `json:"outstanding_total" swaggertype:"string"`
}

// Create 新建借款
// @Summary 新建借款
// @Description 新建借款。还款间隔默认15天，分期数默认4期
// @Tags 借款
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLoanRequest true "借款信息"
// @Success 200 {object} Response{data=models.Loan} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/loans [post]
func (h *LoanHandler) Create(c *gin.Context) {
	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		BadRequest(c, "开始日期格式错误，应为: 2006-01-02")
		return
	}

	loan, err := h.loans.Create(c.Request.Context(), middleware.GetCurrentUserID(c), service.CreateLoanInput{
		Name:            req.Name,
		Principal:       req.Principal,
		InterestRate:    req.InterestRate,
		StartDate:       startDate,
		RepaymentDay:    req.RepaymentDay,
		PaymentInterval: req.PaymentInterval,
		Installments:    req.Installments,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, err, "创建借款失败")
		return
	}
	SuccessWithMessage(c, "借款已创建", loan)
}

// List 借款列表
// @Summary 借款列表
// @Description 返回全部借款（按创建时间倒序）及未还总额
// @Tags 借款
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=LoanListResponse} "查询成功"
// @Router /api/v1/loans [get]
func (h *LoanHandler) List(c *gin.Context) {
	loans, total, err := h.loans.List(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err, "查询借款失败")
		return
	}
	Success(c, LoanListResponse{Loans: loans, OutstandingTotal: total})
}

// Detail 借款详情
// @Summary 借款详情
// @Description 返回借款、还款记录（倒序）、已还/未还金额与还款计划
// @Tags 借款
// @Produce json
// @Security BearerAuth
// @Param id path int true "借款ID"
// @Param count query int false "还款计划期数，默认为借款分期数"
// @Success 200 {object} Response{data=service.LoanDetail} "查询成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "借款不存在"
// @Router /api/v1/loans/{id} [get]
func (h *LoanHandler) Detail(c *gin.Context) {
	loanID, ok := parseID(c.Param("id"))
	if !ok {
		BadRequest(c, "无效的借款ID")
		return
	}
	count := 0
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxScheduleCount {
			BadRequest(c, "期数必须在1到120之间")
			return
		}
		count = n
	}

	detail, err := h.loans.Detail(c.Request.Context(), middleware.GetCurrentUserID(c), loanID, count)
	if err != nil {
		respondError(c, err, "查询借款失败")
		return
	}
	Success(c, detail)
}

// RecordPayment 登记还款
// @Summary 登记还款
// @Description 登记一笔还款，同时生成一条“还款”类别的支出记录
// @Tags 借款
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "借款ID"
// @Param request body RecordPaymentRequest true "还款信息"
// @Success 200 {object} Response{data=models.LoanPayment} "登记成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "借款不存在"
// @Router /api/v1/loans/{id}/payments [post]
func (h *LoanHandler) RecordPayment(c *gin.Context) {
	loanID, ok := parseID(c.Param("id"))
	if !ok {
		BadRequest(c, "无效的借款ID")
		return
	}
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	paidAt, err := parseDate(req.PaidAt)
	if err != nil {
		BadRequest(c, "还款日期格式错误，应为: 2006-01-02")
		return
	}

	payment, err := h.loans.RecordPayment(c.Request.Context(), middleware.GetCurrentUserID(c), service.RecordPaymentInput{
		LoanID: loanID,
		Amount: req.Amount,
		PaidAt: paidAt,
	})
	if err != nil {
		respondError(c, err, "登记还款失败")
		return
	}
	SuccessWithMessage(c, "还款已登记", payment)
}
