package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount as "$1,234.56". Negative amounts keep the
// sign ahead of the currency symbol, e.g. "-$50.00".
func FormatMoney(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	return sign + "$" + groupThousands(fixed[:dot]) + fixed[dot:]
}

// FormatPercent renders a percentage value as "37.7%".
func FormatPercent(pct decimal.Decimal) string {
	return pct.Round(1).String() + "%"
}

// FormatPercentDelta renders a month-over-month change with an explicit sign,
// e.g. "+12.5%" or "-3.0%".
func FormatPercentDelta(pct decimal.Decimal) string {
	if pct.IsNegative() {
		return FormatPercent(pct)
	}
	return "+" + FormatPercent(pct)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
