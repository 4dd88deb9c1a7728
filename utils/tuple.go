package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFieldCount is returned when a tuple does not have
// the expected number of fields.
var ErrFieldCount = errors.New("invalid number of fields")

// ParseTuple parses exactly `n` numbers, separated by commas and/or spaces.
// The list may be enclosed in parentheses or brackets, like
//
//	(1, 0, 0, 1, 20, 30)
func ParseTuple(s string, n int) ([]Fl, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '(' && s[len(s)-1] == ')' || s[0] == '[' && s[len(s)-1] == ']') {
		s = s[1 : len(s)-1]
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != n {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrFieldCount, n, len(fields))
	}

	out := make([]Fl, n)
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid field %d: %s", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// FormatTuple returns the values separated by commas and
// enclosed in parentheses, rounding them with 9 digits precision.
func FormatTuple(values ...Fl) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range values {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(Round(v)+0, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}
