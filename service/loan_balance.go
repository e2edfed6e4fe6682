package service

import (
	"budgetbook/models"

	"github.com/shopspring/decimal"
)

// Balance 借款已还/未还金额
type Balance struct {
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// LoanBalance 根据本金与还款记录计算已还与未还金额，未还金额不会小于0
func LoanBalance(principal decimal.Decimal, payments []decimal.Decimal) Balance {
	paid := decimal.Sum(decimal.Zero, payments...)
	outstanding := principal.Sub(paid)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	return Balance{Paid: paid, Outstanding: outstanding}
}

// LoanSummary 带余额的借款
type LoanSummary struct {
	models.Loan
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// SummarizeLoan 计算单笔借款的余额
func SummarizeLoan(loan models.Loan) LoanSummary {
	b := LoanBalance(loan.Principal, loan.PaymentAmounts())
	return LoanSummary{Loan: loan, Paid: b.Paid, Outstanding: b.Outstanding}
}

// SummarizeLoans 批量计算余额，并返回未还总额
func SummarizeLoans(loans []models.Loan) ([]LoanSummary, decimal.Decimal) {
	summaries := make([]LoanSummary, 0, len(loans))
	total := decimal.Zero
	for _, loan := range loans {
		s := SummarizeLoan(loan)
		total = total.Add(s.Outstanding)
		summaries = append(summaries, s)
	}
	return summaries, total
}

// ProgressPercent 已还比例（0-100），本金不大于1时按1计算
func (s LoanSummary) ProgressPercent() decimal.Decimal {
	base := decimal.Max(s.Principal, decimal.NewFromInt(1))
	pct := s.Paid.Div(base).Mul(decimal.NewFromInt(100))
	return decimal.Min(pct, decimal.NewFromInt(100)).Round(2)
}
