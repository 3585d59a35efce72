package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Money passes through this package as integer cents so financial amounts
// never pick up binary-float drift. Canonical form is a two-decimal string
// with '.' as the separator ("6013.10").

var reCanonical = strings.NewReplacer(" ", "", " ", "", "€", "", "$", "", "£", "")

// ParseCents coerces a loosely-typed value from the model into cents.
// Accepted inputs: JSON numbers, "6013.10", "6013,10" (comma decimal),
// "6.013,10" / "1,234.56" (grouped), with optional currency symbol noise.
func ParseCents(v any) (int64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		// JSON numbers arrive as float64; model amounts carry at most two
		// decimals, so rounding here is exact for anything representable.
		return int64(math.Round(t * 100)), true
	case int:
		return int64(t) * 100, true
	case int64:
		return t * 100, true
	case string:
		return parseCentsString(t)
	default:
		return 0, false
	}
}

func parseCentsString(s string) (int64, bool) {
	s = strings.TrimSpace(reCanonical.Replace(s))
	// alphabetic currency codes ("EUR 21.00") ride along on the edges
	s = strings.TrimFunc(s, unicode.IsLetter)
	if s == "" {
		return 0, false
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	lastDot := strings.LastIndexByte(s, '.')
	lastComma := strings.LastIndexByte(s, ',')
	switch {
	case lastDot >= 0 && lastComma >= 0:
		// both present: the rightmost one is the decimal separator
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		// lone comma: decimal separator unless it reads like a thousands
		// group ("1,234")
		if len(s)-lastComma-1 == 3 && lastComma > 0 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, false
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, false
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, false
	}

	cents := whole*100 + frac
	if neg {
		cents = -cents
	}
	return cents, true
}

// FormatCents renders cents in canonical two-decimal form.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// CanonicalAmount coerces a loose value to its canonical decimal string, or
// nil when the value cannot be parsed.
func CanonicalAmount(v any) *string {
	cents, ok := ParseCents(v)
	if !ok {
		return nil
	}
	s := FormatCents(cents)
	return &s
}
