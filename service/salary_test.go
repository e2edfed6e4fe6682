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

func newSalaryFixture(salary string, p15, p30 bool) (*memStore, *SalaryPoster, uint) {
	store := newMemStore()
	u := store.addUser(models.User{Name: "张三", Email: "a@example.com", SalaryAmount: dec(salary), Payday15: p15, Payday30: p30})
	return store, NewSalaryPoster(store, store, ""), u.ID
}

func TestPlanPaydays_Split(t *testing.T) {
	days, err := PlanPaydays(SalarySettings{Amount: dec("1000000"), Payday15: true, Payday30: true}, day(2024, time.June, 1))
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "600000.00", days[0].Amount.StringFixed(2))
	assert.Equal(t, "400000.00", days[1].Amount.StringFixed(2))
	assert.True(t, days[0].Amount.Add(days[1].Amount).Equal(dec("1000000")))
}

func TestPlanPaydays_SplitRounding(t *testing.T) {
	days, err := PlanPaydays(SalarySettings{Amount: dec("100.05"), Payday15: true, Payday30: true}, day(2024, time.June, 1))
	require.NoError(t, err)
	assert.Equal(t, "60.03", days[0].Amount.StringFixed(2))
	assert.Equal(t, "40.02", days[1].Amount.StringFixed(2))
}

func TestPlanPaydays_FebruaryClamp(t *testing.T) {
	days, err := PlanPaydays(SalarySettings{Amount: dec("500"), Payday30: true}, day(2023, time.February, 5))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, day(2023, time.February, 28), days[0].Date)
	assert.True(t, days[0].Amount.Equal(dec("500")))
}

func TestPlanPaydays_Errors(t *testing.T) {
	_, err := PlanPaydays(SalarySettings{Amount: dec("500")}, day(2024, time.June, 1))
	assert.ErrorIs(t, err, ErrNoPaydaySelected)
	assert.Equal(t, KindPrecondition, KindOf(err))

	_, err = PlanPaydays(SalarySettings{Amount: dec("0"), Payday15: true}, day(2024, time.June, 1))
	assert.ErrorIs(t, err, ErrSalaryNotConfigured)
}

func TestEnsureForMonth_Idempotent(t *testing.T) {
	store, poster, uid := newSalaryFixture("1000000", true, false)
	ref := day(2024, time.June, 20).Add(10 * time.Hour)

	first, err := poster.EnsureForMonth(context.Background(), uid, ref)
	require.NoError(t, err)
	assert.Equal(t, []int{15}, first.Created)

	second, err := poster.EnsureForMonth(context.Background(), uid, ref)
	require.NoError(t, err)
	assert.Empty(t, second.Created)
	assert.Equal(t, []int{15}, second.AlreadyPosted)
	assert.Equal(t, "本月工资已入账", second.Message)

	postings := store.salaryPostings(uid)
	require.Len(t, postings, 1)
	assert.Equal(t, day(2024, time.June, 15), postings[0].OccurredAt)
	assert.True(t, postings[0].Amount.Equal(dec("1000000")))
	assert.Equal(t, models.TransactionTypeIncome, postings[0].Type)
	assert.Equal(t, DefaultSalaryNote, postings[0].Note)
	require.NotNil(t, postings[0].PostingKey)
	assert.Equal(t, "salary:1:2024-06-15", *postings[0].PostingKey)
}

func TestEnsureForMonth_Pending(t *testing.T) {
	store, poster, uid := newSalaryFixture("1000000", true, true)

	res, err := poster.EnsureForMonth(context.Background(), uid, day(2024, time.June, 10))
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.Equal(t, []int{15, 30}, res.Pending)
	assert.Equal(t, "工资将于 15, 30 日入账", res.Message)
	assert.Empty(t, store.salaryPostings(uid))

	res, err = poster.EnsureForMonth(context.Background(), uid, day(2024, time.June, 15))
	require.NoError(t, err)
	assert.Equal(t, []int{15}, res.Created)
	assert.Equal(t, []int{30}, res.Pending)
	assert.Equal(t, "工资已入账（日期: 15）", res.Message)

	res, err = poster.EnsureForMonth(context.Background(), uid, day(2024, time.June, 30))
	require.NoError(t, err)
	assert.Equal(t, []int{30}, res.Created)
	assert.Equal(t, []int{15}, res.AlreadyPosted)

	postings := store.salaryPostings(uid)
	require.Len(t, postings, 2)
	assert.Equal(t, "600000.00", postings[0].Amount.StringFixed(2))
	assert.Equal(t, "400000.00", postings[1].Amount.StringFixed(2))
}

func TestEnsureForMonth_ManualSalaryCountsAsPosted(t *testing.T) {
	store, poster, uid := newSalaryFixture("800", true, false)
	require.NoError(t, store.CreateTransaction(context.Background(), &models.Transaction{
		UserID: uid, Type: models.TransactionTypeIncome, Category: models.CategorySalary,
		Amount: dec("800"), OccurredAt: day(2024, time.June, 15).Add(8 * time.Hour),
	}))

	res, err := poster.EnsureForMonth(context.Background(), uid, day(2024, time.June, 20))
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.Equal(t, []int{15}, res.AlreadyPosted)
	assert.Len(t, store.salaryPostings(uid), 1)
}

func TestEnsureForMonth_DuplicateKeyIsAlreadyPosted(t *testing.T) {
	store, poster, uid := newSalaryFixture("800", true, false)
	store.forceDupOnce = true

	res, err := poster.EnsureForMonth(context.Background(), uid, day(2024, time.June, 20))
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.Equal(t, []int{15}, res.AlreadyPosted)
}

func TestEnsureForMonth_Errors(t *testing.T) {
	_, poster, uid := newSalaryFixture("0", true, false)
	_, err := poster.EnsureForMonth(context.Background(), uid, day(2024, time.June, 20))
	assert.ErrorIs(t, err, ErrSalaryNotConfigured)

	_, poster, uid = newSalaryFixture("100", false, false)
	_, err = poster.EnsureForMonth(context.Background(), uid, day(2024, time.June, 20))
	assert.ErrorIs(t, err, ErrNoPaydaySelected)

	_, err = poster.EnsureForMonth(context.Background(), 999, day(2024, time.June, 20))
	assert.ErrorIs(t, err, ErrUserNotFound)

	store, poster, uid := newSalaryFixture("100", true, false)
	store.failWith = errors.New("connection refused")
	_, err = poster.EnsureForMonth(context.Background(), uid, day(2024, time.June, 20))
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestNewSalaryPoster_CustomNote(t *testing.T) {
	store := newMemStore()
	u := store.addUser(models.User{SalaryAmount: dec("100"), Payday15: true})
	poster := NewSalaryPoster(store, store, "月薪")

	_, err := poster.EnsureForMonth(context.Background(), u.ID, day(2024, time.June, 16))
	require.NoError(t, err)
	assert.Equal(t, "月薪", store.salaryPostings(u.ID)[0].Note)
}
