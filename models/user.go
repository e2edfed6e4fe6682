package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency 注册时未指定币种时使用
const DefaultCurrency = "MNT"

// User 用户模型
type User struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"size:100;not null"`
	Email        string          `json:"email" gorm:"uniqueIndex;size:191;not null"`
	PasswordHash string          `json:"-" gorm:"size:255;not null"`
	Currency     string          `json:"currency" gorm:"size:5;not null;default:MNT"`
	SalaryAmount decimal.Decimal `json:"salary_amount" gorm:"type:decimal(14,2);not null;default:0"`
	Payday15     bool            `json:"payday15" gorm:"default:false"` // 每月15日发薪
	Payday30     bool            `json:"payday30" gorm:"default:false"` // 每月30日发薪（短月取月末）
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}

// CurrencyOrDefault 返回用户币种，为空时返回默认币种
func (u User) CurrencyOrDefault() string {
	if u.Currency == "" {
		return DefaultCurrency
	}
	return u.Currency
}
