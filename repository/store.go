// Package repository 基于 gorm 实现 service 层的记录访问接口
package repository

import (
	"errors"

	"budgetbook/service"

	"gorm.io/gorm"
)

// Store 实现 service.UserStore、service.TransactionStore、service.LoanStore
type Store struct {
	db *gorm.DB
}

var (
	_ service.UserStore        = (*Store)(nil)
	_ service.TransactionStore = (*Store)(nil)
	_ service.LoanStore        = (*Store)(nil)
)

// New 创建存储实例。db 需开启 TranslateError 才能识别唯一索引冲突
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrRecordNotFound
	}
	return err
}
