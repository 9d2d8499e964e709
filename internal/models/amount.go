package models

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
)

// Amount is a currency value that keeps the scale it was written with, the
// way a NUMERIC column does: 12.50 stays "12.50" in JSON, in SQL arguments
// and in due lists.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d as an Amount
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// RequireAmount parses s and panics when it is not a number. Meant for
// constants and tests.
func RequireAmount(s string) Amount {
	return Amount{Decimal: decimal.RequireFromString(s)}
}

// FormatAmount renders d with its own scale instead of trimming trailing zeros.
func FormatAmount(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

func (a Amount) String() string {
	return FormatAmount(a.Decimal)
}

func (a Amount) Add(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Add(b.Decimal)}
}

func (a Amount) Neg() Amount {
	return Amount{Decimal: a.Decimal.Neg()}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// Value hands the amount to the driver as text so the column keeps its scale.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// NullAmount is an Amount that may be SQL NULL / JSON null.
type NullAmount struct {
	decimal.NullDecimal
}

// NewNullAmount wraps a as a valid NullAmount
func NewNullAmount(a Amount) NullAmount {
	return NullAmount{NullDecimal: decimal.NewNullDecimal(a.Decimal)}
}

// Amount returns the value, or zero when it is null.
func (n NullAmount) Amount() Amount {
	return Amount{Decimal: n.Decimal}
}

func (n NullAmount) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Amount().MarshalJSON()
}

func (n NullAmount) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Amount().Value()
}
