// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces is the number of fractional digits a stored amount carries.
const MaxDecimalPlaces = 2

// ErrInvalidMoney is returned when a value cannot be read as a decimal amount.
var ErrInvalidMoney = errors.New("invalid money amount")

// Money is a currency-agnostic exact decimal amount: 99.90 written to the
// store reads back as 99.90, never 99.8999.
//
// Amounts that fit into whole cents are kept at exactly two fractional
// digits, so equal amounts are also deeply equal. Finer amounts are kept
// as given and rejected by validation before they reach the store. The zero
// value is 0.00.
//
// Money serializes to JSON as a bare decimal number (99.90) and to SQL as
// the same decimal text, which PostgreSQL casts into NUMERIC.
type Money struct {
	amount decimal.Decimal
}

// NewMoney builds Money from whole units and cents, e.g. NewMoney(99, 90).
// A negative units value makes the whole amount negative.
func NewMoney(units, cents int64) Money {
	if units < 0 {
		cents = -cents
	}
	return MoneyFromDecimal(decimal.New(units*100+cents, -MaxDecimalPlaces))
}

// MoneyFromDecimal wraps d.
func MoneyFromDecimal(d decimal.Decimal) Money {
	if d.IsZero() {
		return Money{}
	}
	rounded := d.Round(MaxDecimalPlaces)
	if !rounded.Equal(d) {
		return Money{amount: d}
	}
	return Money{amount: decimal.NewFromBigInt(rounded.Coefficient(), -MaxDecimalPlaces)}
}

// ParseMoney reads a decimal string ("12", "12.3", "-5.00", "1e3").
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrInvalidMoney, err)
	}
	return MoneyFromDecimal(d), nil
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return MoneyFromDecimal(m.amount.Add(other.amount))
}

func (m Money) Sub(other Money) Money {
	return MoneyFromDecimal(m.amount.Sub(other.amount))
}

// Cmp returns -1, 0 or +1 as m is less than, equal to or greater than other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// WholeCents reports whether m has at most [MaxDecimalPlaces] fractional
// digits.
func (m Money) WholeCents() bool {
	return m.amount.Equal(m.amount.Round(MaxDecimalPlaces))
}

// String formats whole-cent amounts with exactly two fractional digits and
// finer ones with all of their digits.
func (m Money) String() string {
	if m.WholeCents() {
		return m.amount.StringFixed(MaxDecimalPlaces)
	}
	return m.amount.String()
}

// MarshalJSON writes Money as a JSON number, e.g. 99.90.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both a JSON number (99.9) and a JSON string ("99.90").
func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	parsed, err := ParseMoney(string(bytes.Trim(b, `"`)))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value implements [driver.Valuer]. The decimal text is cast by PostgreSQL
// into the NUMERIC column type.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan implements [sql.Scanner] for NUMERIC columns, which the pgx stdlib
// driver returns as text. Floats are rounded to cents.
func (m *Money) Scan(src any) error {
	var d decimal.Decimal

	switch v := src.(type) {
	case nil:
		*m = Money{}
		return nil
	case float64:
		d = decimal.NewFromFloat(v).Round(MaxDecimalPlaces)
	default:
		if err := d.Scan(src); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidMoney, err)
		}
	}

	*m = MoneyFromDecimal(d)
	return nil
}
