package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"budgetbook/models"

	"github.com/shopspring/decimal"
)

// CreateTransactionInput 手动记账参数
type CreateTransactionInput struct {
	Type       string
	Category   string
	Amount     decimal.Decimal
	Note       string
	OccurredAt time.Time
	LoanID     *uint
}

// TransactionService 手动记账
type TransactionService struct {
	txs   TransactionStore
	loans LoanStore
}

// NewTransactionService 创建记账服务
func NewTransactionService(txs TransactionStore, loans LoanStore) *TransactionService {
	return &TransactionService{txs: txs, loans: loans}
}

// Create 创建一条收支记录。工资收入与还款支出只能由系统生成
func (s *TransactionService) Create(ctx context.Context, userID uint, in CreateTransactionInput) (*models.Transaction, error) {
	in.Note = strings.TrimSpace(in.Note)
	switch {
	case !models.IsValidTransactionType(in.Type):
		return nil, validationError("无效的收支类型")
	case !models.IsValidCategory(in.Category):
		return nil, validationError("无效的收支类别")
	case !in.Amount.IsPositive():
		return nil, validationError("金额必须大于0")
	case utf8.RuneCountInString(in.Note) > 200:
		return nil, validationError("备注不能超过200字")
	case in.OccurredAt.IsZero():
		return nil, validationError("请填写日期")
	}
	if in.Type == models.TransactionTypeIncome && in.Category == models.CategorySalary {
		return nil, validationError("工资收入由系统自动入账，请使用工资入账功能")
	}
	if in.Type == models.TransactionTypeExpense && in.Category == models.CategoryLoanPayment {
		return nil, validationError("还款支出请通过借款还款功能登记")
	}

	if in.LoanID != nil {
		if _, err := s.loans.GetLoan(ctx, userID, *in.LoanID); err != nil {
			if errors.Is(err, ErrRecordNotFound) {
				return nil, ErrLoanNotFound
			}
			return nil, fmt.Errorf("查询借款失败: %w", err)
		}
	}

	tx := &models.Transaction{
		UserID:     userID,
		LoanID:     in.LoanID,
		Type:       in.Type,
		Category:   in.Category,
		Amount:     in.Amount.Round(2),
		Note:       in.Note,
		OccurredAt: in.OccurredAt,
	}
	if err := s.txs.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("创建收支记录失败: %w", err)
	}
	return tx, nil
}
