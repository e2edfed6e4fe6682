package repository

import (
	"context"
	"time"

	"budgetbook/models"

	"gorm.io/gorm"
)

func paymentsNewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("paid_at DESC, id DESC")
}

func (s *Store) CreateLoan(ctx context.Context, loan *models.Loan) error {
	return s.db.WithContext(ctx).Create(loan).Error
}

func (s *Store) GetLoan(ctx context.Context, userID, loanID uint) (*models.Loan, error) {
	var loan models.Loan
	err := s.db.WithContext(ctx).
		Preload("Payments", paymentsNewestFirst).
		Where("id = ? AND user_id = ?", loanID, userID).
		First(&loan).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &loan, nil
}

func (s *Store) ListLoans(ctx context.Context, userID uint) ([]models.Loan, error) {
	var loans []models.Loan
	err := s.db.WithContext(ctx).
		Preload("Payments", paymentsNewestFirst).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&loans).Error
	return loans, err
}

// ListStartedLoans 全量扫描，用于每日还款提醒
func (s *Store) ListStartedLoans(ctx context.Context, asOf time.Time) ([]models.Loan, error) {
	var loans []models.Loan
	err := s.db.WithContext(ctx).
		Preload("Payments").
		Preload("User").
		Where("start_date <= ?", asOf).
		Order("id").
		Find(&loans).Error
	return loans, err
}

func (s *Store) RecordPayment(ctx context.Context, payment *models.LoanPayment, mirror *models.Transaction) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Create(mirror).Error
	})
}
