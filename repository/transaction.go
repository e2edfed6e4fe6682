package repository

import (
	"context"
	"errors"
	"time"

	"budgetbook/models"
	"budgetbook/service"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	return s.db.WithContext(ctx).Create(tx).Error
}

func (s *Store) CreatePosting(ctx context.Context, tx *models.Transaction) error {
	err := s.db.WithContext(ctx).Create(tx).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return service.ErrDuplicatePosting
	}
	return err
}

func (s *Store) HasSalaryPosting(ctx context.Context, userID uint, from, to time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("user_id = ? AND type = ? AND category = ?", userID, models.TransactionTypeIncome, models.CategorySalary).
		Where("occurred_at >= ? AND occurred_at < ?", from, to).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) SumTransactions(ctx context.Context, userID uint, txType string, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ?", userID, txType).
		Where("occurred_at >= ? AND occurred_at < ?", from, to).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (s *Store) ListTransactions(ctx context.Context, q service.TransactionQuery) ([]models.Transaction, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", q.UserID)
	if q.Type != "" {
		query = query.Where("type = ?", q.Type)
	}
	if !q.From.IsZero() {
		query = query.Where("occurred_at >= ?", q.From)
	}
	if !q.To.IsZero() {
		query = query.Where("occurred_at < ?", q.To)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var list []models.Transaction
	if err := query.Order("occurred_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
