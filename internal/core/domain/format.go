package domain

import (
	"math"
	"strconv"
	"strings"
)

// formatFloat renders f in its shortest round-trip form, always keeping a
// fractional part for finite values in positional notation: 3 becomes "3.0",
// 1e-5 becomes "1e-05" and 1e16 becomes "1e+16".
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	exp := 0
	if f != 0 {
		sci := strconv.FormatFloat(f, 'e', -1, 64)
		e, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
		if err == nil {
			exp = e
		}
	}
	if exp < -4 || exp >= 16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
