package domain

import (
	"fmt"
	"math"
	"math/big"
)

// Repricer is the domain service for bulk price computations. It is pure:
// it turns a catalog snapshot and a parameter into the entries a batch
// would contain, without touching any store.
//
// All results are clamped at zero and rounded to two decimal places
// (half-up), so a percentage at or below -100 degenerates to a price of
// zero instead of being rejected.
type Repricer struct{}

// NewRepricer creates a new Repricer.
func NewRepricer() *Repricer {
	return &Repricer{}
}

// Percentage computes entries for newPrice = round2(max(current * (1 + percent/100), 0)).
// Products whose price does not change produce no entry.
func (r *Repricer) Percentage(products []*Product, percent float64) ([]PriceChangeEntry, error) {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return nil, fmt.Errorf("%w: percent must be a finite number", ErrInvalidParameter)
	}

	factor := new(big.Rat).Add(big.NewRat(1, 1), new(big.Rat).SetFloat64(percent/100))
	entries := make([]PriceChangeEntry, 0, len(products))
	for _, p := range products {
		old := p.CurrentPrice()
		next := old.MultiplyByRat(factor).ClampZero().Round2()
		if next.Equals(old) {
			continue
		}
		entries = append(entries, PriceChangeEntry{ProductID: p.ID(), OldPrice: old, NewPrice: next})
	}
	return entries, nil
}

// Discount computes entries for newPrice = round2(max(current - amount, 0)).
func (r *Repricer) Discount(products []*Product, amount float64) ([]PriceChangeEntry, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return nil, fmt.Errorf("%w: discount amount must be a non-negative finite number", ErrInvalidParameter)
	}

	deduction, err := NewMoneyFromFloat(amount)
	if err != nil {
		return nil, err
	}
	entries := make([]PriceChangeEntry, 0, len(products))
	for _, p := range products {
		old := p.CurrentPrice()
		next := old.Subtract(deduction).ClampZero().Round2()
		if next.Equals(old) {
			continue
		}
		entries = append(entries, PriceChangeEntry{ProductID: p.ID(), OldPrice: old, NewPrice: next})
	}
	return entries, nil
}

// Reset computes entries restoring every drifted product to its baseline price.
func (r *Repricer) Reset(products []*Product) []PriceChangeEntry {
	entries := make([]PriceChangeEntry, 0, len(products))
	for _, p := range products {
		if p.AtBaseline() {
			continue
		}
		entries = append(entries, PriceChangeEntry{
			ProductID: p.ID(),
			OldPrice:  p.CurrentPrice(),
			NewPrice:  p.BaselinePrice().Round2(),
		})
	}
	return entries
}
