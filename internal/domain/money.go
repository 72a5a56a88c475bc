package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrNotANumber = errors.New("amount is not a number")

// maxUnits bounds the whole-dollar accumulation so that units*100+99 cannot
// exceed int64.
const maxUnits = (math.MaxInt64 - 99) / 100

// ParseCents converts a decimal amount stated in major units ("10.50") into
// integer minor units (1050). The conversion is pure integer arithmetic; the
// input never passes through a float, so there is no binary-fraction drift.
//
// Digits beyond the second decimal place are rounded half-up on the third
// digit: "1.005" -> 101, "1.0049" -> 100.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNotANumber
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, ErrNotANumber
	}

	var units int64
	for _, r := range whole {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
		}
		if units > (math.MaxInt64-9)/10 {
			return 0, fmt.Errorf("amount out of range: %q", s)
		}
		units = units*10 + int64(r-'0')
	}
	if units > maxUnits {
		return 0, fmt.Errorf("amount out of range: %q", s)
	}

	var fracCents int64
	for i, r := range frac {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
		}
		d := int64(r - '0')
		switch i {
		case 0:
			fracCents += d * 10
		case 1:
			fracCents += d
		case 2:
			if d >= 5 {
				fracCents++
			}
		default:
			// past the rounding digit, ignored
		}
	}

	cents := units*100 + fracCents
	if neg {
		cents = -cents
	}
	return cents, nil
}

// FormatUSD renders minor units as a grouped dollar string for list views:
// 1050 -> "$10.50", 123456 -> "$1,234.56".
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(cents/100), cents%100)
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
