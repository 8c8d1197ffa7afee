// Package symbol defines the closed alphabet of breach-protocol codes.
//
// A Symbol is a single cell value: one of the eleven game codes, the Blank
// placeholder, or the Stop padding marker. The int8 backing keeps the whole
// alphabet inside a signed byte; codes are positive, control values are ≤ 0,
// so Stop can never collide with a real grid code.
//
// Labels are the two-character on-screen strings ("1C", "BD", "XR", …).
// Parse and String convert between labels and Symbol values; both directions
// are total over the alphabet and deterministic.
package symbol

import "errors"

// ErrUnknownLabel is returned by Parse for a label outside the alphabet.
var ErrUnknownLabel = errors.New("symbol: unknown symbol label")

// Symbol is one element of the breach-protocol alphabet.
type Symbol int8

const (
	// Stop is the end-of-sequence padding marker used to align daemon
	// sequences to a common length. It never appears in a grid.
	Stop Symbol = -1

	// Blank is the empty-cell placeholder used by displays and buffers.
	Blank Symbol = 0

	// Base-game codes.
	Hex1C Symbol = 1
	Hex55 Symbol = 2
	HexBD Symbol = 3
	HexE9 Symbol = 4
	Hex7A Symbol = 5
	HexFF Symbol = 6

	// DLC codes.
	HexX9 Symbol = 7
	HexXX Symbol = 8
	HexXH Symbol = 9
	HexIX Symbol = 10
	HexXR Symbol = 11
)

// MaxCode is the highest real code value; anything above it is invalid.
const MaxCode = HexXR

// displayMap holds the canonical on-screen label for every Symbol.
var displayMap = map[Symbol]string{
	Stop:  "??",
	Blank: "▧",
	Hex1C: "1C",
	Hex55: "55",
	HexBD: "BD",
	HexE9: "E9",
	Hex7A: "7A",
	HexFF: "FF",
	HexX9: "X9",
	HexXX: "XX",
	HexXH: "XH",
	HexIX: "IX",
	HexXR: "XR",
}

// labelMap is the inverse of displayMap, built once at init.
var labelMap = func() map[string]Symbol {
	m := make(map[string]Symbol, len(displayMap))
	for s, l := range displayMap {
		m[l] = s
	}

	return m
}()

// Parse converts a display label into its Symbol.
// Returns ErrUnknownLabel when the label is not part of the alphabet.
//
// Complexity: O(1).
func Parse(label string) (Symbol, error) {
	s, ok := labelMap[label]
	if !ok {
		return Blank, ErrUnknownLabel
	}

	return s, nil
}

// String returns the canonical display label of s, or "??" for any value
// outside the alphabet (indistinguishable from Stop on purpose: both render
// as "unknown" in game terms).
func (s Symbol) String() string {
	if l, ok := displayMap[s]; ok {
		return l
	}

	return displayMap[Stop]
}

// Valid reports whether s belongs to the alphabet (codes or control values).
func (s Symbol) Valid() bool {
	return s >= Stop && s <= MaxCode
}

// IsCode reports whether s is a real game code (not Blank, not Stop).
func (s Symbol) IsCode() bool {
	return s > Blank && s <= MaxCode
}
