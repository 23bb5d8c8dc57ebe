// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatValue renders v in the given radix for display. Radixes up to
// 36 use digit characters; larger radixes fall back to colon-separated
// decimal digits (most significant first).
func FormatValue(v, radix uint64) string {
	if radix >= 2 && radix <= 36 {
		return strings.ToUpper(strconv.FormatUint(v, int(radix)))
	}

	if v == 0 {
		return "0"
	}
	var digits []string
	for v > 0 {
		digits = append(digits, strconv.FormatUint(v%radix, 10))
		v /= radix
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return strings.Join(digits, ":")
}

// ParseValue parses a value formatted by FormatValue back into a
// uint64.
func ParseValue(s string, radix uint64) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}

	if radix >= 2 && radix <= 36 {
		v, err := strconv.ParseUint(strings.ToLower(s), int(radix), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid base-%d value %q", radix, s)
		}
		return v, nil
	}

	var v uint64
	for _, part := range strings.Split(s, ":") {
		d, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil || d >= radix {
			return 0, fmt.Errorf("invalid base-%d digit %q", radix, part)
		}
		if v > (^uint64(0)-d)/radix {
			return 0, fmt.Errorf("base-%d value %q overflows", radix, s)
		}
		v = v*radix + d
	}
	return v, nil
}
