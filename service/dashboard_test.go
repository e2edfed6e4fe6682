package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"budgetbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_NoData(t *testing.T) {
	store := newMemStore()
	u := store.addUser(models.User{Email: "a@example.com"})

	d, err := NewAggregator(store, store).Dashboard(context.Background(), u.ID, "", "", day(2024, time.June, 15))
	require.NoError(t, err)
	assert.True(t, d.Totals.Income.IsZero())
	assert.True(t, d.Totals.Expense.IsZero())
	assert.True(t, d.Totals.Balance.IsZero())
	assert.True(t, d.OutstandingTotal.IsZero())
	assert.NotNil(t, d.PeriodTransactions)
	assert.NotNil(t, d.RecentTransactions)
	assert.NotNil(t, d.Loans)
	assert.Empty(t, d.Loans)
	assert.Equal(t, "2024-06", d.Label)
}

func TestDashboard_Totals(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	u := store.addUser(models.User{Email: "a@example.com"})
	other := store.addUser(models.User{Email: "b@example.com"})

	add := func(userID uint, typ, amount string, at time.Time) {
		require.NoError(t, store.CreateTransaction(ctx, &models.Transaction{
			UserID: userID, Type: typ, Category: models.CategoryOther, Amount: dec(amount), OccurredAt: at,
		}))
	}
	add(u.ID, models.TransactionTypeIncome, "1000", day(2024, time.June, 1))
	add(u.ID, models.TransactionTypeExpense, "250.50", day(2024, time.June, 14))
	add(u.ID, models.TransactionTypeExpense, "99", day(2024, time.May, 31))
	add(other.ID, models.TransactionTypeIncome, "5000", day(2024, time.June, 2))

	require.NoError(t, store.CreateLoan(ctx, &models.Loan{UserID: u.ID, Name: "车贷", Principal: dec("800")}))
	require.NoError(t, store.CreateLoan(ctx, &models.Loan{UserID: u.ID, Name: "借款", Principal: dec("200")}))

	d, err := NewAggregator(store, store).Dashboard(ctx, u.ID, "2024-06", "", day(2024, time.June, 15))
	require.NoError(t, err)
	assert.Equal(t, "1000.00", d.Totals.Income.StringFixed(2))
	assert.Equal(t, "250.50", d.Totals.Expense.StringFixed(2))
	assert.Equal(t, "749.50", d.Totals.Balance.StringFixed(2))
	assert.Len(t, d.PeriodTransactions, 2)
	assert.Len(t, d.RecentTransactions, 3)
	assert.Len(t, d.Loans, 2)
	assert.Equal(t, "1000.00", d.OutstandingTotal.StringFixed(2))
}

func TestDashboard_RecentLimit(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	u := store.addUser(models.User{Email: "a@example.com"})
	for i := 1; i <= 8; i++ {
		require.NoError(t, store.CreateTransaction(ctx, &models.Transaction{
			UserID: u.ID, Type: models.TransactionTypeExpense, Category: models.CategoryOther,
			Amount: dec("1"), OccurredAt: day(2024, time.June, i),
		}))
	}

	d, err := NewAggregator(store, store).Dashboard(ctx, u.ID, "", PeriodToday, day(2024, time.June, 8))
	require.NoError(t, err)
	assert.Len(t, d.RecentTransactions, RecentTransactionLimit)
	assert.Equal(t, day(2024, time.June, 8), d.RecentTransactions[0].OccurredAt)
	assert.Len(t, d.PeriodTransactions, 1)
}

func TestDashboard_StoreError(t *testing.T) {
	store := newMemStore()
	store.failWith = errors.New("db down")

	_, err := NewAggregator(store, store).Dashboard(context.Background(), 1, "", "", day(2024, time.June, 15))
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestTransactions_TypeFilter(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	u := store.addUser(models.User{Email: "a@example.com"})
	require.NoError(t, store.CreateTransaction(ctx, &models.Transaction{
		UserID: u.ID, Type: models.TransactionTypeIncome, Category: models.CategoryOther, Amount: dec("1"), OccurredAt: day(2024, time.June, 3),
	}))
	require.NoError(t, store.CreateTransaction(ctx, &models.Transaction{
		UserID: u.ID, Type: models.TransactionTypeExpense, Category: models.CategoryOther, Amount: dec("2"), OccurredAt: day(2024, time.June, 4),
	}))

	agg := NewAggregator(store, store)
	page, err := agg.Transactions(ctx, u.ID, "2024-06", "", models.TransactionTypeExpense, day(2024, time.June, 15))
	require.NoError(t, err)
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, models.TransactionTypeExpense, page.Transactions[0].Type)

	page, err = agg.Transactions(ctx, u.ID, "2024-05", "", "", day(2024, time.June, 15))
	require.NoError(t, err)
	assert.NotNil(t, page.Transactions)
	assert.Empty(t, page.Transactions)

	_, err = agg.Transactions(ctx, u.ID, "", "", "BOTH", day(2024, time.June, 15))
	assert.Equal(t, KindValidation, KindOf(err))
}
