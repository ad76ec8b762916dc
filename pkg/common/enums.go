package common

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownEnumValue is returned when a value is not part of a closed
// enumeration.
var ErrUnknownEnumValue = errors.New("unknown enumeration value")

// UnitMultiplier is the CIM unit multiplier (k, M, none, ...). The multiplier
// applies to the unit symbol as a whole.
type UnitMultiplier string

// UnitSymbol is the CIM derived unit symbol (W, Wh, V, ...).
type UnitSymbol string

const (
	UnitMultiplierNone UnitMultiplier = "none"
	UnitMultiplierKilo UnitMultiplier = "k"
	UnitMultiplierMega UnitMultiplier = "M"

	UnitSymbolNone UnitSymbol = "none"
	UnitSymbolW    UnitSymbol = "W"
	UnitSymbolWh   UnitSymbol = "Wh"
	UnitSymbolVA   UnitSymbol = "VA"
	UnitSymbolA    UnitSymbol = "A"
	UnitSymbolV    UnitSymbol = "V"
)

var unitMultipliers = newEnumSet(
	"a", "c", "d", "da", "E", "f", "G", "h", "k", "m", "M",
	"micro", "n", "none", "p", "P", "T", "y", "Y", "z", "Z",
)

var unitSymbols = newEnumSet(
	"A", "A2", "A2h", "A2s", "Ah", "anglemin", "anglesec", "APerA",
	"APerm", "As", "bar", "Bq", "Btu", "C", "cd", "character",
	"charPers", "cosPhi", "count", "CPerkg", "CPerm2", "CPerm3", "d", "dB",
	"dBm", "deg", "degC", "F", "FPerm", "ft3", "G", "gal",
	"gPerg", "Gy", "GyPers", "H", "h", "ha", "HPerm", "Hz",
	"HzPerHz", "HzPers", "J", "JPerK", "JPerkg", "JPerkgK", "JPerm2", "JPerm3",
	"JPermol", "JPermolK", "JPers", "K", "kat", "katPerm3", "kg", "kgm",
	"kgm2", "kgPerJ", "kgPerm3", "kn", "KPers", "l", "lm", "lPerh",
	"lPerl", "lPers", "lx", "m", "M", "m2", "m2Pers", "m3",
	"m3Compensated", "m3Perh", "m3Perkg", "m3Pers", "m3Uncompensated", "min", "mmHg", "mol",
	"molPerkg", "molPerm3", "molPermol", "mPerm3", "mPers", "mPers2", "Mx", "N",
	"Nm", "none", "NPerm", "Oe", "ohm", "ohmm", "ohmPerm", "onePerHz",
	"onePerm", "Pa", "PaPers", "Pas", "ppm", "Q", "Qh", "rad",
	"radPers", "radPers2", "rev", "rotPers", "s", "S", "SPerm", "sPers",
	"sr", "Sv", "T", "therm", "tonne", "V", "V2", "V2h",
	"VA", "VAh", "VAr", "VArh", "Vh", "VPerHz", "VPerm", "VPerV",
	"VPerVA", "VPerVAr", "Vs", "W", "Wb", "Wh", "WPerA", "WPerm2",
	"WPerm2sr", "WPermK", "WPers", "WPersr", "WPerW",
)

func newEnumSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// ParseUnitMultiplier validates s against the closed set of multipliers.
// Matching is exact: "k" and "K" are different values.
func ParseUnitMultiplier(s string) (UnitMultiplier, error) {
	if _, ok := unitMultipliers[s]; !ok {
		return "", fmt.Errorf("unit multiplier %q: %w", s, ErrUnknownEnumValue)
	}
	return UnitMultiplier(s), nil
}

// ParseUnitSymbol validates s against the closed set of unit symbols.
func ParseUnitSymbol(s string) (UnitSymbol, error) {
	if _, ok := unitSymbols[s]; !ok {
		return "", fmt.Errorf("unit symbol %q: %w", s, ErrUnknownEnumValue)
	}
	return UnitSymbol(s), nil
}

// IsUnitMultiplier reports whether s is a known unit multiplier.
func IsUnitMultiplier(s string) bool {
	_, ok := unitMultipliers[s]
	return ok
}

// IsUnitSymbol reports whether s is a known unit symbol.
func IsUnitSymbol(s string) bool {
	_, ok := unitSymbols[s]
	return ok
}

// UnitMultipliers lists all multipliers in sorted order.
func UnitMultipliers() []string {
	return sortedKeys(unitMultipliers)
}

// UnitSymbols lists all unit symbols in sorted order.
func UnitSymbols() []string {
	return sortedKeys(unitSymbols)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
