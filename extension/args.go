// args.go converts raw arguments into the values the validators expect.
//
// Design: encoding/json decodes every JSON number as float64, so a
// whole-number float64 is turned back into the json.Number literal the
// client sent. Fractional, infinite and non-number values pass through
// unchanged and fail integer validation with a message naming their type.
// So do floats of magnitude 2^53 or more, which json may already have
// rounded to a neighbouring integer.
// CLI arguments are read the way a JSON client's would be, so the CLI and
// the MCP server accept and reject the same inputs.

package extension

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// maxExact is the magnitude from which float64 no longer holds every
// integer exactly.
const maxExact = 1 << 53

// Integral restores the literal of a whole-number float64 below 2^53. Any
// other value is returned unchanged.
func Integral(v any) any {
	f, ok := v.(float64)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) || math.Abs(f) >= maxExact {
		return v
	}
	return json.Number(strconv.FormatFloat(f, 'f', -1, 64))
}

// Number returns a command-line argument as the value a JSON client would
// have sent: an integer literal, a float64, or the string itself.
func Number(arg string) any {
	if !json.Valid([]byte(arg)) {
		return arg
	}
	if _, err := strconv.ParseInt(arg, 10, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return json.Number(arg)
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return Integral(f)
	}
	return arg
}
