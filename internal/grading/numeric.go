package grading

import (
	"regexp"
	"strconv"
	"strings"
)

// numericLiteral accepts plain decimal numbers with an optional sign,
// fraction and exponent. Hex, octal, binary, Inf, NaN and digit separators
// are not numbers here.
var numericLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber converts s to a float64 when it is a decimal literal after
// trimming surrounding whitespace. The empty string is not a number.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !numericLiteral.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range literals such as 1e400.
		return 0, false
	}
	return f, true
}
