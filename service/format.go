package service

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney 按千分位、两位小数格式化金额并附加币种代码，如 "1,234.50 MNT"
func FormatMoney(amount decimal.Decimal, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "MNT"
	}

	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	whole, frac, _ := strings.Cut(amount.Abs().StringFixed(2), ".")
	return sign + groupThousands(whole) + "." + frac + " " + currency
}

// groupThousands 给整数部分加千分位，超出 int64 的按字符分组
func groupThousands(whole string) string {
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		return moneyPrinter.Sprintf("%d", n)
	}
	var b strings.Builder
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(whole[i])
	}
	return b.String()
}
