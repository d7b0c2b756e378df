// Package units handles the native measurement units and their display
// conversions. All storage stays in native units; conversion happens only
// when formatting for humans.
package units

import (
	"fmt"
	"math"

	"pantry/pkg/apperr"
)

const (
	Gram  = "g"
	Milli = "ml"
	Piece = "piece"
)

// Valid reports whether u is one of the supported native units.
func Valid(u string) bool {
	switch u {
	case Gram, Milli, Piece:
		return true
	}
	return false
}

// Validate returns an InvalidInput error for unknown units.
func Validate(u string) error {
	if !Valid(u) {
		return apperr.Invalidf("unknown unit %q, want g, ml or piece", u)
	}
	return nil
}

// Display converts a native quantity to a human readable value and unit.
// Grams scale to kilograms and millilitres to litres above 1000; pieces
// never convert.
func Display(quantity float64, unit string) (float64, string) {
	switch unit {
	case Gram:
		if quantity >= 1000 {
			return round1(quantity / 1000), "kg"
		}
	case Milli:
		if quantity >= 1000 {
			return round1(quantity / 1000), "L"
		}
	}
	return round1(quantity), unit
}

// Format renders a display quantity like "1.5 kg" or "3 piece".
func Format(quantity float64, unit string) string {
	v, u := Display(quantity, unit)
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f %s", v, u)
	}
	return fmt.Sprintf("%.1f %s", v, u)
}

// ToBase converts a quantity to its base unit, grams or millilitres.
// Pieces multiply by the per-piece weight when one is known; without a
// weight the raw count passes through, a degraded mode rather than an
// error.
func ToBase(quantity float64, unit string, pieceWeightG *float64) (float64, string) {
	if unit == Piece && pieceWeightG != nil && *pieceWeightG > 0 {
		return quantity * *pieceWeightG, Gram
	}
	return quantity, unit
}

// PiecePrice converts a per-gram price into a per-piece price using the
// piece weight. Returns the per-unit price unchanged when no weight is
// known.
func PiecePrice(pricePerUnit float64, pieceWeightG *float64) float64 {
	if pieceWeightG == nil || *pieceWeightG <= 0 {
		return pricePerUnit
	}
	return pricePerUnit * *pieceWeightG
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
