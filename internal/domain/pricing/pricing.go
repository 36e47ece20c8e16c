// Package pricing derives estimate amounts from line items.
//
// Arithmetic runs on decimals and is converted to float64 only at the
// boundary, so 25 * 0.08 is 2 and not 2.0000000000000004.
package pricing

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"contractor_pro/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRate is the fixed sales tax applied to every estimate subtotal.
const TaxRate = 0.08

var (
	ErrInvalidLineItemDescription = errors.New("invalid line item description")
	ErrInvalidLineItemPrice       = errors.New("invalid line item unit price")
)

var taxRate = decimal.NewFromFloat(TaxRate)

// Totals is the derived money summary of a set of line items.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// LineTotal returns quantity x unitPrice.
func LineTotal(quantity, unitPrice float64) float64 {
	return decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice)).InexactFloat64()
}

// ComputeTotals sums the line totals and applies TaxRate.
func ComputeTotals(items []entities.EstimateLineItem) Totals {
	subtotal := decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(li.Total))
	}
	tax := subtotal.Mul(taxRate)
	return Totals{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    subtotal.Add(tax).InexactFloat64(),
	}
}

// NewLineItem validates and prices a line item.
//
// The description must be non-blank and the unit price finite and strictly
// positive. A non-finite or non-positive quantity falls back to 1.
func NewLineItem(description string, quantity, unitPrice float64) (entities.EstimateLineItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.EstimateLineItem{}, ErrInvalidLineItemDescription
	}
	if !isFinite(unitPrice) || unitPrice <= 0 {
		return entities.EstimateLineItem{}, ErrInvalidLineItemPrice
	}
	if !isFinite(quantity) || quantity <= 0 {
		quantity = 1
	}
	return entities.EstimateLineItem{
		ID:          uuid.NewString(),
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       LineTotal(quantity, unitPrice),
	}, nil
}

// ParseLineItem is NewLineItem for raw form input. Amounts are read from
// their leading number, so "10abc" is 10. An unparsable quantity means 1,
// an unparsable price means 0 and is rejected.
func ParseLineItem(description, quantityText, unitPriceText string) (entities.EstimateLineItem, error) {
	qty := parseAmount(quantityText)
	if qty <= 0 {
		qty = 1
	}
	return NewLineItem(description, qty, parseAmount(unitPriceText))
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseAmount returns the leading decimal number of s, or 0 when there is
// none or it is not finite. NaN and Infinity spellings never match.
func parseAmount(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
