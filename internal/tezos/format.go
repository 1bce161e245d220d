package tezos

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// tezDecimals is the number of decimal places in one tez (1 tez = 10^6 mutez).
const tezDecimals = 6

// FormatTez renders a mutez amount as tez with six decimal places and
// thousands separators, e.g. 1234567890 -> "1,234.567890 XTZ".
func FormatTez(mutez int64) string {
	d := decimal.New(mutez, -tezDecimals)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	_, frac, _ := strings.Cut(d.StringFixed(tezDecimals), ".")
	return sign + humanize.Comma(d.IntPart()) + "." + frac + " XTZ"
}
