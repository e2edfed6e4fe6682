package service

import (
	"regexp"
	"strconv"
	"time"
)

// 快捷时间段
const (
	PeriodToday     = "today"
	Period3Days     = "3days"
	Period7Days     = "7days"
	Period1Month    = "1month"
	Period3Months   = "3months"
	monthParamStyle = "2006-01"
)

var monthParamPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

type periodWindow struct {
	days  int
	label string
}

var periodWindows = map[string]periodWindow{
	PeriodToday:   {1, "今天"},
	Period3Days:   {3, "最近3天"},
	Period7Days:   {7, "最近7天"},
	Period1Month:  {30, "最近30天"},
	Period3Months: {90, "最近3个月"},
}

// Period 查询时间范围。查询条件使用 [Start, NextBoundary)，End 为最后一天的零点，仅用于展示
type Period struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	NextBoundary time.Time `json:"next_boundary"`
	Label        string    `json:"label"`
	Key          string    `json:"key"` // 快捷时间段标识，按月查询时为空
}

// StartOfDay 返回 t 所在时区当天零点
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// LastDayOfMonth 返回 t 所在月份的天数
func LastDayOfMonth(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// IsValidPeriod 判断是否为支持的快捷时间段
func IsValidPeriod(period string) bool {
	_, ok := periodWindows[period]
	return ok
}

// ResolvePeriod 将月份参数（YYYY-MM）或快捷时间段解析为具体的时间范围。
// 快捷时间段优先；月份参数缺失或格式错误时使用 ref 所在月份。
func ResolvePeriod(monthParam, periodParam string, ref time.Time) Period {
	today := StartOfDay(ref)

	if w, ok := periodWindows[periodParam]; ok {
		return Period{
			Start:        today.AddDate(0, 0, -(w.days - 1)),
			End:          today,
			NextBoundary: today.AddDate(0, 0, 1),
			Label:        w.label,
			Key:          periodParam,
		}
	}

	year, month := today.Year(), today.Month()
	if y, m, ok := parseMonthParam(monthParam); ok {
		year, month = y, m
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	next := start.AddDate(0, 1, 0)
	return Period{
		Start:        start,
		End:          next.AddDate(0, 0, -1),
		NextBoundary: next,
		Label:        start.Format(monthParamStyle),
	}
}

func parseMonthParam(raw string) (int, time.Month, bool) {
	if !monthParamPattern.MatchString(raw) {
		return 0, 0, false
	}
	y, err := strconv.Atoi(raw[:4])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(raw[5:])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return y, time.Month(m), true
}

