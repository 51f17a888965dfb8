// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Profit is the margin of an order: client rate minus carrier rate.
// A missing, empty or non-numeric rate counts as zero.
func Profit(clientRate, carrierRate any) float64 {
	return toDecimal(clientRate).Sub(toDecimal(carrierRate)).InexactFloat64()
}

// NumberOrZero converts a raw rate to a number, zero when it is not one
func NumberOrZero(v any) float64 {
	return toDecimal(v).InexactFloat64()
}

func toDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case string:
		d, _ := parseDecimal(x)
		return d
	case *string:
		if x == nil {
			return decimal.Zero
		}
		d, _ := parseDecimal(*x)
		return d
	case float64:
		return fromFloat(x)
	case *float64:
		if x == nil {
			return decimal.Zero
		}
		return fromFloat(*x)
	case float32:
		return fromFloat(float64(x))
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case json.Number:
		d, _ := parseDecimal(x.String())
		return d
	case decimal.Decimal:
		return x
	}
	return decimal.Zero
}

// fromFloat maps NaN, infinities and out of range values to zero
func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	d := decimal.NewFromFloat(f)
	if d.Abs().GreaterThan(maxAmount) {
		return decimal.Zero
	}
	return d
}

// maxAmount bounds accepted rates and weights. Larger inputs are treated as
// non-numeric so every margin stays a finite float.
var maxAmount = decimal.New(1, 15)

// parseDecimal accepts "50000.50", "50 000,50", "50,000.50" and "100,000".
// Without a dot, a single comma followed by one or two digits is the
// decimal separator; any other comma groups thousands.
func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if !strings.Contains(s, ".") && decimalComma(s) {
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.Abs().GreaterThan(maxAmount) {
		return decimal.Zero, false
	}
	return d, true
}

func decimalComma(s string) bool {
	if strings.Count(s, ",") != 1 {
		return false
	}
	_, frac, _ := strings.Cut(s, ",")
	return len(frac) == 1 || len(frac) == 2
}

// parseNumber returns nil for empty or non-numeric input
func parseNumber(s string) *float64 {
	d, ok := parseDecimal(s)
	if !ok {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

// Margin is the rendered margin display
type Margin struct {
	Value    float64 `json:"value"`
	Text     string  `json:"text"`
	Negative bool    `json:"negative"`
}

// MarginOf computes the live margin display for the finance section.
// Negative only affects presentation; Value keeps its sign.
func MarginOf(d Data) Margin {
	return FormatMargin(Profit(d.ClientRate, d.CarrierRate))
}

// FormatMargin renders a margin value with thousands separators
func FormatMargin(v float64) Margin {
	return Margin{
		Value:    v,
		Text:     humanize.CommafWithDigits(v, 2),
		Negative: v < 0,
	}
}
