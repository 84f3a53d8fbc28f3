package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedPrice is returned when display text holds no parsable amount
var ErrMalformedPrice = errors.New("malformed price")

// Price represents an amount scraped from the page
type Price struct {
	Amount decimal.Decimal
}

// ParsePrice - parses display text like "Total: $14.75".
// Everything except ASCII digits and '.' is dropped before parsing.
func ParsePrice(text string) (Price, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, text)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q", ErrMalformedPrice, text)
	}

	return Price{Amount: amount}, nil
}

// Add - returns the sum of two prices
func (p Price) Add(other Price) Price {
	return Price{Amount: p.Amount.Add(other.Amount)}
}

// Float64 - returns the amount as float64
func (p Price) Float64() float64 {
	return p.Amount.InexactFloat64()
}

func (p Price) String() string {
	return p.Amount.StringFixed(2)
}

// SumPrices - parses and sums display texts, zero for an empty list
func SumPrices(texts []string) (Price, error) {
	total := Price{Amount: decimal.Zero}
	for _, text := range texts {
		price, err := ParsePrice(text)
		if err != nil {
			return Price{}, err
		}
		total = total.Add(price)
	}
	return total, nil
}
