package service

import (
	"context"
	"fmt"
	"time"

	"budgetbook/models"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RecentTransactionLimit 首页最近记录条数
const RecentTransactionLimit = 5

// Totals 收支汇总
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// Dashboard 首页数据
type Dashboard struct {
	Label              string               `json:"label"`
	Period             Period               `json:"period"`
	Totals             Totals               `json:"totals"`
	PeriodTransactions []models.Transaction `json:"month_transactions"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
	Loans              []LoanSummary        `json:"loans"`
	OutstandingTotal   decimal.Decimal      `json:"outstanding_total"`
}

// TransactionsPage 收支列表页数据
type TransactionsPage struct {
	Label        string               `json:"label"`
	Period       Period               `json:"period"`
	Type         string               `json:"type,omitempty"`
	Transactions []models.Transaction `json:"transactions"`
}

// Aggregator 首页与列表页的只读汇总
type Aggregator struct {
	txs   TransactionStore
	loans LoanStore
}

// NewAggregator 创建汇总服务
func NewAggregator(txs TransactionStore, loans LoanStore) *Aggregator {
	return &Aggregator{txs: txs, loans: loans}
}

// Dashboard 汇总时间范围内的收入、支出、结余，以及全部借款的未还总额
func (a *Aggregator) Dashboard(ctx context.Context, userID uint, month, period string, ref time.Time) (*Dashboard, error) {
	p := ResolvePeriod(month, period, ref)

	var (
		income, expense decimal.Decimal
		inPeriod        []models.Transaction
		recent          []models.Transaction
		loans           []models.Loan
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		income, err = a.txs.SumTransactions(gctx, userID, models.TransactionTypeIncome, p.Start, p.NextBoundary)
		return wrap(err, "统计收入失败")
	})
	g.Go(func() (err error) {
		expense, err = a.txs.SumTransactions(gctx, userID, models.TransactionTypeExpense, p.Start, p.NextBoundary)
		return wrap(err, "统计支出失败")
	})
	g.Go(func() (err error) {
		recent, err = a.txs.ListTransactions(gctx, TransactionQuery{UserID: userID, Limit: RecentTransactionLimit})
		return wrap(err, "查询最近记录失败")
	})
	g.Go(func() (err error) {
		inPeriod, err = a.txs.ListTransactions(gctx, TransactionQuery{UserID: userID, From: p.Start, To: p.NextBoundary})
		return wrap(err, "查询收支记录失败")
	})
	g.Go(func() (err error) {
		loans, err = a.loans.ListLoans(gctx, userID)
		return wrap(err, "查询借款失败")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries, outstanding := SummarizeLoans(loans)
	return &Dashboard{
		Label:  p.Label,
		Period: p,
		Totals: Totals{
			Income:  income,
			Expense: expense,
			Balance: income.Sub(expense),
		},
		PeriodTransactions: nonNil(inPeriod),
		RecentTransactions: nonNil(recent),
		Loans:              summaries,
		OutstandingTotal:   outstanding,
	}, nil
}

// Transactions 按时间范围及可选类型查询收支记录
func (a *Aggregator) Transactions(ctx context.Context, userID uint, month, period, txType string, ref time.Time) (*TransactionsPage, error) {
	if txType != "" && !models.IsValidTransactionType(txType) {
		return nil, validationError("无效的收支类型")
	}
	p := ResolvePeriod(month, period, ref)
	list, err := a.txs.ListTransactions(ctx, TransactionQuery{
		UserID: userID,
		Type:   txType,
		From:   p.Start,
		To:     p.NextBoundary,
	})
	if err != nil {
		return nil, fmt.Errorf("查询收支记录失败: %w", err)
	}
	return &TransactionsPage{Label: p.Label, Period: p, Type: txType, Transactions: nonNil(list)}, nil
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func nonNil(list []models.Transaction) []models.Transaction {
	if list == nil {
		return []models.Transaction{}
	}
	return list
}
