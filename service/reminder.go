package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"budgetbook/models"

	"github.com/shopspring/decimal"
)

// DueLoan 今天到期的一笔借款
type DueLoan struct {
	Name        string          `json:"name"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// ReminderEntry 同一邮箱下今天到期的借款
type ReminderEntry struct {
	Email    string
	Name     string
	Currency string
	Loans    []DueLoan
}

// ReminderRecipient 提醒结果中的一个收件人
type ReminderRecipient struct {
	Email   string `json:"email"`
	Count   int    `json:"count"`
	Preview string `json:"preview"`
}

// ReminderReport 提醒任务的输出，供外部投递使用
type ReminderReport struct {
	Date       string              `json:"date"`
	Sent       int                 `json:"sent"`
	Recipients []ReminderRecipient `json:"recipients"`
}

// DueDay 借款在 ref 所在月份的还款日，超过月末时取月末
func DueDay(repaymentDay int, ref time.Time) int {
	if last := LastDayOfMonth(ref); repaymentDay > last {
		return last
	}
	return repaymentDay
}

// CollectDueReminders 找出还款日为 ref 当天的借款并按用户邮箱分组，保持首次出现的顺序。
// loans 需预加载 Payments 与 User；start_date 晚于 ref 的借款不参与。
func CollectDueReminders(loans []models.Loan, ref time.Time) []ReminderEntry {
	today := ref.Day()
	index := make(map[string]int)
	var entries []ReminderEntry

	for _, loan := range loans {
		if loan.StartDate.After(ref) {
			continue
		}
		if DueDay(loan.RepaymentDay, ref) != today {
			continue
		}

		balance := LoanBalance(loan.Principal, loan.PaymentAmounts())
		email := loan.User.Email

		i, ok := index[email]
		if !ok {
			entries = append(entries, ReminderEntry{
				Email:    email,
				Name:     loan.User.Name,
				Currency: loan.User.CurrencyOrDefault(),
			})
			i = len(entries) - 1
			index[email] = i
		}
		entries[i].Loans = append(entries[i].Loans, DueLoan{Name: loan.Name, Outstanding: balance.Outstanding})
	}
	return entries
}

// ReminderPreview 生成提醒文本：问候语 + 每笔借款一行
func ReminderPreview(e ReminderEntry) string {
	var b strings.Builder
	b.WriteString("您好")
	if e.Name != "" {
		b.WriteString("，" + e.Name)
	}
	b.WriteString("！\n\n")

	lines := make([]string, 0, len(e.Loans))
	for _, l := range e.Loans {
		if !l.Outstanding.IsPositive() {
			lines = append(lines, fmt.Sprintf("• %s: 已全部还清 🎉", l.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("• %s: 今天是还款日，待还 %s", l.Name, FormatMoney(l.Outstanding, e.Currency)))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// BuildReminderReport 汇总提醒结果，Sent 为全部收件人的借款数之和
func BuildReminderReport(entries []ReminderEntry, ref time.Time) ReminderReport {
	report := ReminderReport{
		Date:       ref.Format("2006-01-02"),
		Recipients: make([]ReminderRecipient, 0, len(entries)),
	}
	for _, e := range entries {
		report.Recipients = append(report.Recipients, ReminderRecipient{
			Email:   e.Email,
			Count:   len(e.Loans),
			Preview: ReminderPreview(e),
		})
		report.Sent += len(e.Loans)
	}
	return report
}

// ReminderJob 还款日提醒任务，只生成文本不负责投递
type ReminderJob struct {
	loans LoanStore
}

// NewReminderJob 创建提醒任务
func NewReminderJob(loans LoanStore) *ReminderJob {
	return &ReminderJob{loans: loans}
}

// Run 扫描全部已开始的借款，生成 ref 当天的提醒
func (j *ReminderJob) Run(ctx context.Context, ref time.Time) (*ReminderReport, error) {
	loans, err := j.loans.ListStartedLoans(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("查询借款失败: %w", err)
	}
	report := BuildReminderReport(CollectDueReminders(loans, ref), ref)
	log.Printf("还款提醒: date=%s loans=%d recipients=%d", report.Date, report.Sent, len(report.Recipients))
	return &report, nil
}
