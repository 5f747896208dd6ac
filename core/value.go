package core

import (
	"strings"
)

// Value is a script value as seen by the console. Hosts adapt their own
// value representation to it.
type Value interface {
	// ToString converts the value to a string. Conversion may run user code
	// and therefore fail.
	ToString() (string, error)
	// ToBoolean reports whether the value is truthy.
	ToBoolean() bool
	// IsString reports whether the value is a string primitive.
	IsString() bool
}

// ToStrings stringifies every value, stopping at the first failure.
func ToStrings(values []Value) ([]string, error) {
	out := make([]string, len(values))
	for i, v := range values {
		s, err := v.ToString()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// Join stringifies the values and joins them with single spaces.
func Join(values []Value) (string, error) {
	if len(values) == 1 {
		return values[0].ToString()
	}
	var b strings.Builder
	for i, v := range values {
		s, err := v.ToString()
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
