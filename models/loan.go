package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 借款默认值
const (
	DefaultPaymentInterval = 15 // 天
	DefaultInstallments    = 4
)

// Loan 借款模型，未还金额由还款记录推导，不落库
type Loan struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	UserID          uint             `json:"user_id" gorm:"index;not null"`
	Name            string           `json:"name" gorm:"size:100;not null"`
	Principal       decimal.Decimal  `json:"principal" gorm:"type:decimal(14,2);not null"`
	InterestRate    *decimal.Decimal `json:"interest_rate,omitempty" gorm:"type:decimal(5,2)"` // 仅展示，不参与计算
	StartDate       time.Time        `json:"start_date" gorm:"not null;index"`
	RepaymentDay    int              `json:"repayment_day" gorm:"not null"` // 1-31，短月按月末计
	PaymentInterval int              `json:"payment_interval" gorm:"not null;default:15"`
	Installments    int              `json:"installments" gorm:"not null;default:4"`
	Notes           string           `json:"notes" gorm:"size:240"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Payments        []LoanPayment    `json:"payments,omitempty" gorm:"foreignKey:LoanID"`
	User            User             `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Loan) TableName() string {
	return "loans"
}

// LoanPayment 还款记录模型
type LoanPayment struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	LoanID    uint            `json:"loan_id" gorm:"index;not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`
	PaidAt    time.Time       `json:"paid_at" gorm:"not null"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName 设置表名
func (LoanPayment) TableName() string {
	return "loan_payments"
}

// PaymentAmounts 返回所有还款金额
func (l Loan) PaymentAmounts() []decimal.Decimal {
	amounts := make([]decimal.Decimal, 0, len(l.Payments))
	for _, p := range l.Payments {
		amounts = append(amounts, p.Amount)
	}
	return amounts
}
