package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Float coerces an arbitrary JSON value into a float64. Strings are trimmed
// and parsed; nil, missing and unparsable values become 0. It never fails:
// payloads from the field teams routinely carry numbers as strings or leave
// fields out entirely, and a half-filled report must still normalize.
func Float(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(fmt.Sprint(v)), 64)
		if err != nil {
			return 0
		}
		return parsed
	}
}

// Int coerces an arbitrary JSON value into an int, truncating fractional
// parts. Unparsable values become 0.
func Int(value any) int {
	return int(Float(value))
}

// Text coerces a value into a trimmed string; nil becomes "".
func Text(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(value))
}

// Money coerces a value into a decimal amount. Monetary figures arrive both
// as JSON numbers and as strings like "50.00"; unparsable values become 0.
func Money(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return parsed
	default:
		parsed, err := decimal.NewFromString(strings.TrimSpace(fmt.Sprint(v)))
		if err != nil {
			return decimal.Zero
		}
		return parsed
	}
}

// Round rounds half away from zero to the given number of decimal places.
func Round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// Round2 rounds to 2 decimals, the precision used for currency amounts.
func Round2(value float64) float64 { return Round(value, 2) }

// Round3 rounds to 3 decimals, the precision used for per-kg rates.
func Round3(value float64) float64 { return Round(value, 3) }
