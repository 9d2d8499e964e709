package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Request scalars. Clients post form values as strings ("1", "true") as
// often as native JSON numbers and booleans. These types accept whatever
// Postgres itself would cast to the target column type and reject the rest,
// so a bad value fails the same way it would at the store.

// Integer accepts a JSON number or a string holding an integer.
type Integer int64

// Boolean accepts a JSON boolean, or a string or number Postgres reads as a boolean.
type Boolean bool

// Text accepts a JSON string; numbers and booleans are taken as their literal text.
type Text string

func NewInteger(i int64) *Integer {
	v := Integer(i)
	return &v
}

func NewBoolean(b bool) *Boolean {
	v := Boolean(b)
	return &v
}

func NewText(s string) *Text {
	v := Text(s)
	return &v
}

func (i *Integer) UnmarshalJSON(data []byte) error {
	n, err := parseIntegerJSON(data)
	if err != nil {
		return err
	}
	*i = Integer(n)
	return nil
}

// Int64Ptr returns the value as *int64, nil when i is nil.
func (i *Integer) Int64Ptr() *int64 {
	if i == nil {
		return nil
	}
	v := int64(*i)
	return &v
}

func (b *Boolean) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = Boolean(v)
		return nil
	}

	s, err := scalarText(data)
	if err != nil {
		return err
	}
	v, err = ParseBoolean(s)
	if err != nil {
		return err
	}
	*b = Boolean(v)
	return nil
}

func (t *Text) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

// StringPtr returns the value as *string, nil when t is nil.
func (t *Text) StringPtr() *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

func (p *PayeeType) UnmarshalJSON(data []byte) error {
	n, err := parseIntegerJSON(data)
	if err != nil {
		return err
	}
	*p = PayeeType(n)
	return nil
}

func (e *ExpenseType) UnmarshalJSON(data []byte) error {
	n, err := parseIntegerJSON(data)
	if err != nil {
		return err
	}
	*e = ExpenseType(n)
	return nil
}

// ParseInteger reads s the way Postgres reads an integer literal:
// surrounding blanks are ignored, an optional sign, then digits only.
func ParseInteger(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid input syntax for type integer: %q", s)
	}
	return n, nil
}

// ParseBoolean reads s the way Postgres reads a boolean literal: t, true,
// y, yes, on, 1 and f, false, n, no, off, 0, case-insensitive, with any
// unambiguous prefix of the words.
func ParseBoolean(s string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v != "" {
		switch v[0] {
		case 't':
			if strings.HasPrefix("true", v) {
				return true, nil
			}
		case 'f':
			if strings.HasPrefix("false", v) {
				return false, nil
			}
		case 'y':
			if strings.HasPrefix("yes", v) {
				return true, nil
			}
		case 'n':
			if strings.HasPrefix("no", v) {
				return false, nil
			}
		case 'o':
			if v == "on" {
				return true, nil
			}
			if len(v) >= 2 && strings.HasPrefix("off", v) {
				return false, nil
			}
		case '1':
			if v == "1" {
				return true, nil
			}
		case '0':
			if v == "0" {
				return false, nil
			}
		}
	}
	return false, fmt.Errorf("invalid input syntax for type boolean: %q", s)
}

func parseIntegerJSON(data []byte) (int64, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		return ParseInteger(s)
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return 0, fmt.Errorf("invalid input syntax for type integer: %s", data)
	}
	if n, err := num.Int64(); err == nil {
		return n, nil
	}
	// 1.0 and 1e3 are whole numbers written as floats.
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
		return 0, fmt.Errorf("invalid input syntax for type integer: %s", data)
	}
	return int64(f), nil
}

// scalarText returns a JSON string's contents, or the literal text of a
// number or boolean.
func scalarText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", fmt.Errorf("empty value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("cannot use %s as a scalar value", data)
	default:
		return string(data), nil
	}
}
