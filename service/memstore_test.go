package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"budgetbook/models"

	"github.com/shopspring/decimal"
)

// memStore 内存版存储，实现 UserStore、TransactionStore、LoanStore
type memStore struct {
	mu       sync.Mutex
	users    map[uint]*models.User
	txs      []models.Transaction
	loans    []models.Loan
	payments []models.LoanPayment
	nextID   uint

	failWith     error // 非 nil 时所有读操作返回该错误
	failPayment  bool  // 模拟还款写入失败
	forceDupOnce bool  // 下一次 CreatePosting 返回 ErrDuplicatePosting
}

func newMemStore() *memStore {
	return &memStore{users: make(map[uint]*models.User)}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *memStore) addUser(u models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.id()
	}
	s.users[u.ID] = &u
	return &u
}

func (s *memStore) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	u, ok := s.users[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (s *memStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.id()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memStore) UpdateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memStore) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.id()
	tx.CreatedAt = time.Now()
	s.txs = append(s.txs, *tx)
	return nil
}

func (s *memStore) CreatePosting(ctx context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	if s.forceDupOnce {
		s.forceDupOnce = false
		s.mu.Unlock()
		return ErrDuplicatePosting
	}
	for _, existing := range s.txs {
		if existing.PostingKey != nil && tx.PostingKey != nil && *existing.PostingKey == *tx.PostingKey {
			s.mu.Unlock()
			return ErrDuplicatePosting
		}
	}
	s.mu.Unlock()
	return s.CreateTransaction(ctx, tx)
}

func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && !t.Before(to) {
		return false
	}
	return true
}

func (s *memStore) HasSalaryPosting(_ context.Context, userID uint, from, to time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.txs {
		if tx.UserID == userID && tx.Type == models.TransactionTypeIncome &&
			tx.Category == models.CategorySalary && inRange(tx.OccurredAt, from, to) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) SumTransactions(_ context.Context, userID uint, txType string, from, to time.Time) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return decimal.Zero, s.failWith
	}
	sum := decimal.Zero
	for _, tx := range s.txs {
		if tx.UserID == userID && tx.Type == txType && inRange(tx.OccurredAt, from, to) {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum, nil
}

func (s *memStore) ListTransactions(_ context.Context, q TransactionQuery) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []models.Transaction
	for _, tx := range s.txs {
		if tx.UserID != q.UserID || (q.Type != "" && tx.Type != q.Type) || !inRange(tx.OccurredAt, q.From, q.To) {
			continue
		}
		out = append(out, tx)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *memStore) CreateLoan(_ context.Context, loan *models.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	loan.ID = s.id()
	loan.CreatedAt = time.Now()
	s.loans = append(s.loans, *loan)
	return nil
}

func (s *memStore) withPayments(loan models.Loan) models.Loan {
	loan.Payments = nil
	for _, p := range s.payments {
		if p.LoanID == loan.ID {
			loan.Payments = append(loan.Payments, p)
		}
	}
	sort.SliceStable(loan.Payments, func(i, j int) bool { return loan.Payments[i].PaidAt.After(loan.Payments[j].PaidAt) })
	if u, ok := s.users[loan.UserID]; ok {
		loan.User = *u
	}
	return loan
}

func (s *memStore) GetLoan(_ context.Context, userID, loanID uint) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, l := range s.loans {
		if l.ID == loanID && l.UserID == userID {
			loan := s.withPayments(l)
			return &loan, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (s *memStore) ListLoans(_ context.Context, userID uint) ([]models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []models.Loan
	for i := len(s.loans) - 1; i >= 0; i-- {
		if s.loans[i].UserID == userID {
			out = append(out, s.withPayments(s.loans[i]))
		}
	}
	return out, nil
}

func (s *memStore) ListStartedLoans(_ context.Context, asOf time.Time) ([]models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []models.Loan
	for _, l := range s.loans {
		if !l.StartDate.After(asOf) {
			out = append(out, s.withPayments(l))
		}
	}
	return out, nil
}

func (s *memStore) RecordPayment(_ context.Context, payment *models.LoanPayment, mirror *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPayment {
		return errors.New("write failed")
	}
	payment.ID = s.id()
	s.payments = append(s.payments, *payment)
	mirror.ID = s.id()
	s.txs = append(s.txs, *mirror)
	return nil
}

func (s *memStore) salaryPostings(userID uint) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Transaction
	for _, tx := range s.txs {
		if tx.UserID == userID && tx.Category == models.CategorySalary {
			out = append(out, tx)
		}
	}
	return out
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
