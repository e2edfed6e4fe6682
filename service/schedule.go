package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment 还款计划中的一期
type Installment struct {
	Index   int             `json:"index"`
	DueDate time.Time       `json:"due_date"`
	Amount  decimal.Decimal `json:"amount"`
}

// BuildSchedule 将未还金额平均拆分为 count 期，每期间隔 intervalDays 天，第一期在 start 当天。
// 每期金额保留两位小数，舍入差额计入最后一期，保证各期之和等于未还金额。
// 金额不足以拆成 count 期时返回的期数会少于 count，各期金额均不为负。
func BuildSchedule(start time.Time, outstanding decimal.Decimal, count, intervalDays int) ([]Installment, error) {
	if count < 1 {
		return nil, validationError("分期数必须大于0")
	}
	if intervalDays < 1 {
		return nil, validationError("还款间隔必须大于0天")
	}

	total := outstanding.Round(2)
	if total.IsPositive() {
		// 每期至少 0.01
		if cents := total.Shift(2).IntPart(); cents < int64(count) {
			count = int(cents)
		}
	}
	per := total.Div(decimal.NewFromInt(int64(count))).Round(2)
	// 进位累计超过一期时最后一期会变成负数，此时减少期数
	for count > 1 && total.IsPositive() && per.Mul(decimal.NewFromInt(int64(count-1))).GreaterThan(total) {
		count--
		per = total.Div(decimal.NewFromInt(int64(count))).Round(2)
	}

	items := make([]Installment, count)
	planned := decimal.Zero
	for i := 0; i < count; i++ {
		items[i] = Installment{
			Index:   i + 1,
			DueDate: start.AddDate(0, 0, i*intervalDays),
			Amount:  per,
		}
		planned = planned.Add(per)
	}

	if delta := total.Sub(planned).Round(2); !delta.IsZero() {
		last := &items[count-1]
		last.Amount = last.Amount.Add(delta)
	}
	return items, nil
}
