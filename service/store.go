package service

import (
	"context"
	"time"

	"budgetbook/models"

	"github.com/shopspring/decimal"
)

// UserStore 用户记录访问接口，查无记录时返回 ErrRecordNotFound，邮箱冲突时返回 ErrEmailTaken
type UserStore interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
}

// TransactionQuery 收支记录查询条件，From/To 为零值时不限制，To 为开区间
type TransactionQuery struct {
	UserID uint
	Type   string
	From   time.Time
	To     time.Time
	Limit  int
}

// TransactionStore 收支记录访问接口
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	// CreatePosting 写入系统入账记录，posting_key 冲突时返回 ErrDuplicatePosting
	CreatePosting(ctx context.Context, tx *models.Transaction) error
	// HasSalaryPosting 判断 [from, to) 内是否已有该用户的工资收入
	HasSalaryPosting(ctx context.Context, userID uint, from, to time.Time) (bool, error)
	SumTransactions(ctx context.Context, userID uint, txType string, from, to time.Time) (decimal.Decimal, error)
	ListTransactions(ctx context.Context, q TransactionQuery) ([]models.Transaction, error)
}

// LoanStore 借款与还款记录访问接口
type LoanStore interface {
	CreateLoan(ctx context.Context, loan *models.Loan) error
	// GetLoan 按用户查询单笔借款（含还款记录，按还款日期倒序），不存在返回 ErrRecordNotFound
	GetLoan(ctx context.Context, userID, loanID uint) (*models.Loan, error)
	// ListLoans 查询用户全部借款（含还款记录），按创建时间倒序
	ListLoans(ctx context.Context, userID uint) ([]models.Loan, error)
	// ListStartedLoans 查询所有 start_date <= asOf 的借款（含还款记录与用户信息）
	ListStartedLoans(ctx context.Context, asOf time.Time) ([]models.Loan, error)
	// RecordPayment 在同一个数据库事务中写入还款记录及对应的支出记录
	RecordPayment(ctx context.Context, payment *models.LoanPayment, mirror *models.Transaction) error
}
