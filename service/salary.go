package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"budgetbook/models"

	"github.com/shopspring/decimal"
)

// DefaultSalaryNote 工资入账记录的备注
const DefaultSalaryNote = "工资入账"

var firstPaydayShare = decimal.RequireFromString("0.6")

// SalarySettings 用户的工资配置
type SalarySettings struct {
	Amount   decimal.Decimal
	Payday15 bool
	Payday30 bool
}

// Payday 本月的一个发薪日
type Payday struct {
	Date   time.Time
	Amount decimal.Decimal
}

// SalaryResult 工资入账结果
type SalaryResult struct {
	Created       []int  `json:"created_days"`
	Pending       []int  `json:"pending_days"`
	AlreadyPosted []int  `json:"already_posted_days"`
	Message       string `json:"message"`
}

// PlanPaydays 计算 ref 所在月份的发薪日及金额。
// 同时启用两个发薪日时，15日发放 60%（保留两位小数），月末发放剩余部分；只启用一个时全额发放。
// 30日在短月取当月最后一天。
func PlanPaydays(s SalarySettings, ref time.Time) ([]Payday, error) {
	if !s.Payday15 && !s.Payday30 {
		return nil, ErrNoPaydaySelected
	}
	if !s.Amount.IsPositive() {
		return nil, ErrSalaryNotConfigured
	}

	y, m, _ := ref.Date()
	loc := ref.Location()
	day30 := 30
	if last := LastDayOfMonth(ref); last < day30 {
		day30 = last
	}

	amount15, amount30 := s.Amount, s.Amount
	if s.Payday15 && s.Payday30 {
		amount15 = s.Amount.Mul(firstPaydayShare).Round(2)
		amount30 = s.Amount.Sub(amount15)
	}

	var days []Payday
	if s.Payday15 {
		days = append(days, Payday{Date: time.Date(y, m, 15, 0, 0, 0, 0, loc), Amount: amount15})
	}
	if s.Payday30 {
		days = append(days, Payday{Date: time.Date(y, m, day30, 0, 0, 0, 0, loc), Amount: amount30})
	}
	return days, nil
}

// SalaryPoster 工资自动入账，重复调用不会重复入账
type SalaryPoster struct {
	users UserStore
	txs   TransactionStore
	note  string
}

// NewSalaryPoster 创建工资入账服务，note 为空时使用默认备注
func NewSalaryPoster(users UserStore, txs TransactionStore, note string) *SalaryPoster {
	if note == "" {
		note = DefaultSalaryNote
	}
	return &SalaryPoster{users: users, txs: txs, note: note}
}

// EnsureForMonth 为 ref 所在月份已到期的发薪日补齐工资收入记录。
// 是否已入账通过查询当天的工资收入判断；并发重复请求由 posting_key 唯一索引兜底。
func (p *SalaryPoster) EnsureForMonth(ctx context.Context, userID uint, ref time.Time) (*SalaryResult, error) {
	user, err := p.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	paydays, err := PlanPaydays(SalarySettings{
		Amount:   user.SalaryAmount,
		Payday15: user.Payday15,
		Payday30: user.Payday30,
	}, ref)
	if err != nil {
		return nil, err
	}

	today := StartOfDay(ref)
	result := &SalaryResult{Created: []int{}, Pending: []int{}, AlreadyPosted: []int{}}

	for _, pd := range paydays {
		day := pd.Date.Day()
		if pd.Date.After(today) {
			result.Pending = append(result.Pending, day)
			continue
		}

		exists, err := p.txs.HasSalaryPosting(ctx, userID, pd.Date, pd.Date.AddDate(0, 0, 1))
		if err != nil {
			return nil, fmt.Errorf("查询工资记录失败: %w", err)
		}
		if exists {
			result.AlreadyPosted = append(result.AlreadyPosted, day)
			continue
		}

		key := salaryPostingKey(userID, pd.Date)
		tx := &models.Transaction{
			UserID:     userID,
			Type:       models.TransactionTypeIncome,
			Category:   models.CategorySalary,
			Amount:     pd.Amount,
			Note:       p.note,
			OccurredAt: pd.Date,
			PostingKey: &key,
		}
		if err := p.txs.CreatePosting(ctx, tx); err != nil {
			if errors.Is(err, ErrDuplicatePosting) {
				result.AlreadyPosted = append(result.AlreadyPosted, day)
				continue
			}
			return nil, fmt.Errorf("写入工资记录失败: %w", err)
		}
		log.Printf("工资入账: user=%d date=%s amount=%s", userID, pd.Date.Format("2006-01-02"), pd.Amount.StringFixed(2))
		result.Created = append(result.Created, day)
	}

	result.Message = salaryMessage(result)
	return result, nil
}

func salaryPostingKey(userID uint, date time.Time) string {
	return fmt.Sprintf("salary:%d:%s", userID, date.Format("2006-01-02"))
}

func salaryMessage(r *SalaryResult) string {
	switch {
	case len(r.Created) > 0:
		return fmt.Sprintf("工资已入账（日期: %s）", joinDays(r.Created))
	case len(r.Pending) > 0:
		return fmt.Sprintf("工资将于 %s 日入账", joinDays(r.Pending))
	default:
		return "本月工资已入账"
	}
}

func joinDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}
