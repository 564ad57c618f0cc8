package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatAmount renders an amount with thousand separators and currency
// code, e.g. "RWF 150,000".
func FormatAmount(amount float64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	// round to cents first so a fraction like .999 carries into the whole part
	cents := int64(math.Round(amount * 100))
	out := sign + formatThousand(cents/100)
	if rem := cents % 100; rem != 0 {
		out += fmt.Sprintf(".%02d", rem)
	}
	if currency == "" {
		return out
	}
	return currency + " " + out
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
