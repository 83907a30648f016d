package pricing

import (
	"fmt"
	"strconv"
)

// Format renders an amount for display: two-decimal dollars for USD
// ("$35.00"), dot-grouped dong for VND ("850.000₫"). The amount is cents for
// USD and whole dong for VND.
func Format(amount int64, currency string) string {
	if currency == "VND" {
		return groupThousands(amount) + "₫"
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s$%d.%02d", sign, amount/100, amount%100)
}

// groupThousands inserts dots between thousands groups, vi-VN style.
func groupThousands(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return sign + s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, s[i:i+3]...)
	}
	return sign + string(out)
}
