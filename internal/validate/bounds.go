// bounds.go implements integer parameter validation against range policies.
//
// Separated because integers come from JSON, where every number is a
// float64 and strings that look numeric are common in LLM output. Both
// shapes are rejected here rather than converted: a rounded monetary
// amount is a different amount.
//
// Design: Policies are plain values (Bounds). The call sites pick a policy
// (LimitBounds, AmountBounds, LevelBounds) and may lower Max from
// configuration; nothing is clamped into range.

package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Policy defaults.
const (
	DefaultMaxLimit  int64 = 100
	DefaultMaxAmount int64 = 1_000_000_000_000 // 1M XTZ in mutez
	MutezPerTez      int64 = 1_000_000
)

// Bounds is an inclusive integer range policy for one parameter.
type Bounds struct {
	Name string // parameter name used in error messages
	Min  int64
	Max  int64
	Unit string // optional unit appended to the maximum ("mutez")

	// Quiet suppresses echoing the rejected value in errors. Set for
	// monetary amounts.
	Quiet bool
}

var (
	LimitBounds  = Bounds{Name: "limit", Min: 1, Max: DefaultMaxLimit}
	AmountBounds = Bounds{Name: "amount", Min: 0, Max: DefaultMaxAmount, Unit: "mutez", Quiet: true}
	LevelBounds  = Bounds{Name: "level", Min: 0, Max: math.MaxInt64}
)

// BoundedInteger validates that value is an exact integer within
// [minimum, maximum].
func BoundedInteger(value any, minimum, maximum int64) (int64, error) {
	return Bounds{Name: "value", Min: minimum, Max: maximum}.Check(value)
}

// Limit validates a pagination limit (1..maxLimit).
func Limit(value any, maxLimit int64) (int64, error) {
	b := LimitBounds
	b.Max = maxLimit
	return b.Check(value)
}

// Amount validates a mutez amount (0..maxAmount). The rejected amount is
// never echoed.
func Amount(value any, maxAmount int64) (int64, error) {
	b := AmountBounds
	b.Max = maxAmount
	return b.Check(value)
}

// Level validates a block level (>= 0).
func Level(value any) (int64, error) {
	return LevelBounds.Check(value)
}

// Check validates value against the policy.
//
// Validation rules:
//   - Go integer kinds and integral json.Number literals accepted
//   - Floats, strings, booleans and nil rejected regardless of value
//   - value < Min and value > Max rejected with distinct messages
func (b Bounds) Check(value any) (int64, error) {
	n, out, ok := integer(value)
	if !ok {
		if _, isNum := value.(json.Number); isNum {
			return 0, newError(b.Name, ErrNotInteger, fmt.Sprintf("%s must be an integer, got: non-integer number", b.Name))
		}
		return 0, newError(b.Name, ErrNotInteger, fmt.Sprintf("%s must be an integer, got type: %s", b.Name, typeName(value)))
	}
	if out < 0 || (out == 0 && n < b.Min) {
		return 0, b.tooSmall(n, out)
	}
	if out > 0 || n > b.Max {
		return 0, b.tooLarge(n, out)
	}
	return n, nil
}

func (b Bounds) tooSmall(n int64, out int) error {
	var reason string
	switch b.Min {
	case 0:
		reason = b.Name + " cannot be negative"
	case 1:
		reason = b.Name + " must be positive"
	default:
		reason = fmt.Sprintf("%s must be at least %d", b.Name, b.Min)
	}
	if !b.Quiet && out == 0 {
		reason += fmt.Sprintf(", got: %d", n)
	}
	return newError(b.Name, ErrTooSmall, reason)
}

func (b Bounds) tooLarge(n int64, out int) error {
	reason := fmt.Sprintf("%s too large: maximum %d", b.Name, b.Max)
	if b.Unit == "mutez" {
		reason += fmt.Sprintf(" mutez (%s XTZ)", decimal.New(b.Max, -6).String())
	} else if b.Unit != "" {
		reason += " " + b.Unit
	}
	if !b.Quiet && out == 0 {
		reason += fmt.Sprintf(", got: %d", n)
	}
	return newError(b.Name, ErrTooLarge, reason)
}

// integer extracts an int64 from the exact integer kinds. out is -1 or +1
// when v is an integer outside the int64 range.
func integer(v any) (n int64, out int, ok bool) {
	switch x := v.(type) {
	case int:
		return int64(x), 0, true
	case int8:
		return int64(x), 0, true
	case int16:
		return int64(x), 0, true
	case int32:
		return int64(x), 0, true
	case int64:
		return x, 0, true
	case uint:
		return unsigned(uint64(x))
	case uint8:
		return int64(x), 0, true
	case uint16:
		return int64(x), 0, true
	case uint32:
		return int64(x), 0, true
	case uint64:
		return unsigned(x)
	case json.Number:
		s := string(x)
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return i, 0, true
		}
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(s, "-") {
				return 0, -1, true
			}
			return 0, 1, true
		}
		return 0, 0, false
	default:
		return 0, 0, false
	}
}

func unsigned(u uint64) (int64, int, bool) {
	if u > math.MaxInt64 {
		return 0, 1, true
	}
	return int64(u), 0, true
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
