package domain

import "github.com/shopspring/decimal"

// Money represents a non-negative amount in currency subunits (e.g. cents).
// Money is immutable.
type Money struct {
	subunits int64
}

// NewMoney creates Money from a subunit amount.
// For example: NewMoney(14800) represents $148.00
func NewMoney(subunits int64) (*Money, error) {
	if subunits < 0 {
		return nil, ErrNegativePrice
	}
	return &Money{subunits: subunits}, nil
}

// MustMoney is like NewMoney but panics on a negative amount.
// Intended for fixtures and constants.
func MustMoney(subunits int64) *Money {
	m, err := NewMoney(subunits)
	if err != nil {
		panic("money: " + err.Error())
	}
	return m
}

// Subunits returns the raw subunit amount.
func (m *Money) Subunits() int64 {
	return m.subunits
}

// Decimal returns the amount in whole currency units for a currency whose
// minor unit has the given scale (2 for USD, 0 for JPY).
func (m *Money) Decimal(scale int32) decimal.Decimal {
	return decimal.New(m.subunits, -scale)
}
