package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction 收支记录模型
type Transaction struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"index;not null"`
	LoanID     *uint           `json:"loan_id,omitempty" gorm:"index"` // 弱关联，仅用于展示
	Type       string          `json:"type" gorm:"size:10;not null;index"`
	Category   string          `json:"category" gorm:"size:20;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`
	Note       string          `json:"note" gorm:"size:200"`
	OccurredAt time.Time       `json:"occurred_at" gorm:"not null;index"`
	// PostingKey 仅系统生成的记录填写，唯一索引防止同一发薪日重复入账
	PostingKey *string   `json:"-" gorm:"size:64;uniqueIndex"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// 收支类型
const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"
)

// 收支类别
const (
	CategorySalary        = "SALARY"
	CategoryHousing       = "HOUSING"
	CategoryGroceries     = "GROCERIES"
	CategoryTransport     = "TRANSPORT"
	CategoryUtilities     = "UTILITIES"
	CategoryEntertainment = "ENTERTAINMENT"
	CategoryLoanPayment   = "LOAN_PAYMENT"
	CategoryOther         = "OTHER"
)

var categoryLabels = map[string]string{
	CategorySalary:        "工资",
	CategoryHousing:       "住房",
	CategoryGroceries:     "食品杂货",
	CategoryTransport:     "交通",
	CategoryUtilities:     "水电燃气",
	CategoryEntertainment: "娱乐",
	CategoryLoanPayment:   "还款",
	CategoryOther:         "其他",
}

// GetCategories 获取所有收支类别（有序）
func GetCategories() []string {
	return []string{
		CategorySalary,
		CategoryHousing,
		CategoryGroceries,
		CategoryTransport,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryLoanPayment,
		CategoryOther,
	}
}

// IsValidCategory 判断类别是否合法
func IsValidCategory(category string) bool {
	_, ok := categoryLabels[category]
	return ok
}

// IsValidTransactionType 判断收支类型是否合法
func IsValidTransactionType(t string) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// CategoryLabel 返回类别的显示名称，未知类别原样返回
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}
