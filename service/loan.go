package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"budgetbook/models"

	"github.com/shopspring/decimal"
)

var maxInterestRate = decimal.NewFromInt(100)

// CreateLoanInput 新建借款参数，可选字段为 nil/0 时使用默认值
type CreateLoanInput struct {
	Name            string
	Principal       decimal.Decimal
	InterestRate    *decimal.Decimal
	StartDate       time.Time
	RepaymentDay    int
	PaymentInterval int
	Installments    int
	Notes           string
}

// RecordPaymentInput 还款参数
type RecordPaymentInput struct {
	LoanID uint
	Amount decimal.Decimal
	PaidAt time.Time
}

// LoanDetail 借款详情
type LoanDetail struct {
	LoanSummary
	Progress         decimal.Decimal `json:"progress"`
	ScheduleCount    int             `json:"schedule_count"`
	Schedule         []Installment   `json:"schedule"`
	FormattedBalance string          `json:"formatted_outstanding"`
}

// LoanService 借款管理
type LoanService struct {
	loans LoanStore
	users UserStore
}

// NewLoanService 创建借款服务
func NewLoanService(loans LoanStore, users UserStore) *LoanService {
	return &LoanService{loans: loans, users: users}
}

// Create 新建借款
func (s *LoanService) Create(ctx context.Context, userID uint, in CreateLoanInput) (*models.Loan, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Notes = strings.TrimSpace(in.Notes)
	switch {
	case utf8.RuneCountInString(in.Name) < 2:
		return nil, validationError("借款名称至少2个字")
	case !in.Principal.IsPositive():
		return nil, validationError("本金必须大于0")
	case in.InterestRate != nil && (in.InterestRate.IsNegative() || in.InterestRate.GreaterThan(maxInterestRate)):
		return nil, validationError("利率必须在0到100之间")
	case in.StartDate.IsZero():
		return nil, validationError("请填写开始日期")
	case in.RepaymentDay < 1 || in.RepaymentDay > 31:
		return nil, validationError("还款日必须在1到31之间")
	case in.PaymentInterval < 0 || in.Installments < 0:
		return nil, validationError("还款间隔与分期数必须为正数")
	case utf8.RuneCountInString(in.Notes) > 240:
		return nil, validationError("备注不能超过240字")
	}
	if in.PaymentInterval == 0 {
		in.PaymentInterval = models.DefaultPaymentInterval
	}
	if in.Installments == 0 {
		in.Installments = models.DefaultInstallments
	}

	loan := &models.Loan{
		UserID:          userID,
		Name:            in.Name,
		Principal:       in.Principal.Round(2),
		InterestRate:    in.InterestRate,
		StartDate:       in.StartDate,
		RepaymentDay:    in.RepaymentDay,
		PaymentInterval: in.PaymentInterval,
		Installments:    in.Installments,
		Notes:           in.Notes,
	}
	if err := s.loans.CreateLoan(ctx, loan); err != nil {
		return nil, fmt.Errorf("创建借款失败: %w", err)
	}
	return loan, nil
}

// List 返回用户全部借款及未还总额
func (s *LoanService) List(ctx context.Context, userID uint) ([]LoanSummary, decimal.Decimal, error) {
	loans, err := s.loans.ListLoans(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("查询借款失败: %w", err)
	}
	summaries, total := SummarizeLoans(loans)
	return summaries, total, nil
}

// Detail 借款详情，count 为还款计划分期数，<=0 时使用借款默认分期数
func (s *LoanService) Detail(ctx context.Context, userID, loanID uint, count int) (*LoanDetail, error) {
	loan, err := s.loans.GetLoan(ctx, userID, loanID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("查询借款失败: %w", err)
	}

	if count <= 0 {
		count = loan.Installments
	}
	if count <= 0 {
		count = models.DefaultInstallments
	}
	interval := loan.PaymentInterval
	if interval <= 0 {
		interval = models.DefaultPaymentInterval
	}

	summary := SummarizeLoan(*loan)
	schedule, err := BuildSchedule(loan.StartDate, summary.Outstanding, count, interval)
	if err != nil {
		return nil, err
	}

	currency := models.DefaultCurrency
	if user, err := s.users.GetUser(ctx, userID); err == nil {
		currency = user.CurrencyOrDefault()
	}

	return &LoanDetail{
		LoanSummary:      summary,
		Progress:         summary.ProgressPercent(),
		ScheduleCount:    count,
		Schedule:         schedule,
		FormattedBalance: FormatMoney(summary.Outstanding, currency),
	}, nil
}

// RecordPayment 登记还款，同时生成一条还款支出记录（同一事务内写入）
func (s *LoanService) RecordPayment(ctx context.Context, userID uint, in RecordPaymentInput) (*models.LoanPayment, error) {
	switch {
	case in.LoanID == 0:
		return nil, validationError("请选择借款")
	case !in.Amount.IsPositive():
		return nil, validationError("还款金额必须大于0")
	case in.PaidAt.IsZero():
		return nil, validationError("请填写还款日期")
	}

	loan, err := s.loans.GetLoan(ctx, userID, in.LoanID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("查询借款失败: %w", err)
	}

	amount := in.Amount.Round(2)
	payment := &models.LoanPayment{
		LoanID: loan.ID,
		Amount: amount,
		PaidAt: in.PaidAt,
	}
	loanID := loan.ID
	mirror := &models.Transaction{
		UserID:     userID,
		LoanID:     &loanID,
		Type:       models.TransactionTypeExpense,
		Category:   models.CategoryLoanPayment,
		Amount:     amount,
		Note:       "借款还款: " + loan.Name,
		OccurredAt: in.PaidAt,
	}
	if err := s.loans.RecordPayment(ctx, payment, mirror); err != nil {
		return nil, fmt.Errorf("登记还款失败: %w", err)
	}
	log.Printf("登记还款: user=%d loan=%d amount=%s", userID, loan.ID, amount.StringFixed(2))
	return payment, nil
}
