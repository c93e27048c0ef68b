package tools

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Quantity is the physical dimension a unit measures.
type Quantity string

const (
	Length      Quantity = "length"
	Mass        Quantity = "mass"
	Temperature Quantity = "temperature"
	Volume      Quantity = "volume"
	Speed       Quantity = "speed"
)

type unit struct {
	quantity Quantity
	// factor converts one unit into the base unit of its quantity
	// (metre, kilogram, litre, metre per second). Unused for temperature.
	factor float64
}

var units = map[string]unit{
	"mm": {Length, 0.001},
	"cm": {Length, 0.01},
	"m":  {Length, 1},
	"km": {Length, 1000},
	"in": {Length, 0.0254},
	"ft": {Length, 0.3048},
	"yd": {Length, 0.9144},
	"mi": {Length, 1609.344},

	"mg": {Mass, 1e-6},
	"g":  {Mass, 0.001},
	"kg": {Mass, 1},
	"t":  {Mass, 1000},
	"oz": {Mass, 0.028349523125},
	"lb": {Mass, 0.45359237},
	"st": {Mass, 6.35029318},

	"ml":   {Volume, 0.001},
	"cl":   {Volume, 0.01},
	"l":    {Volume, 1},
	"m3":   {Volume, 1000},
	"tsp":  {Volume, 0.00492892159375},
	"tbsp": {Volume, 0.01478676478125},
	"cup":  {Volume, 0.2365882365},
	"pt":   {Volume, 0.473176473},
	"qt":   {Volume, 0.946352946},
	"gal":  {Volume, 3.785411784},

	"m/s":  {Speed, 1},
	"km/h": {Speed, 1 / 3.6},
	"mph":  {Speed, 0.44704},
	"kn":   {Speed, 1852.0 / 3600},
	"ft/s": {Speed, 0.3048},

	"c": {Temperature, 0},
	"f": {Temperature, 0},
	"k": {Temperature, 0},
}

// Convert converts value between two unit symbols of the same quantity.
// Symbols are case-insensitive ("km", "KM"); temperatures use C, F and K.
func Convert(value float64, from, to string) (float64, error) {
	fu, err := lookupUnit(from)
	if err != nil {
		return 0, err
	}
	tu, err := lookupUnit(to)
	if err != nil {
		return 0, err
	}
	if fu.quantity != tu.quantity {
		return 0, fmt.Errorf("%w: %s is %s, %s is %s", ErrUnitMismatch, from, fu.quantity, to, tu.quantity)
	}

	if fu.quantity == Temperature {
		return fromKelvin(toKelvin(value, normalizeUnit(from)), normalizeUnit(to)), nil
	}
	return value * fu.factor / tu.factor, nil
}

// Units lists the symbols of q in alphabetical order.
func Units(q Quantity) []string {
	var out []string
	for sym, u := range units {
		if u.quantity == q {
			out = append(out, sym)
		}
	}
	sort.Strings(out)
	return out
}

// QuantityOf reports the quantity a symbol measures.
func QuantityOf(symbol string) (Quantity, error) {
	u, err := lookupUnit(symbol)
	return u.quantity, err
}

func normalizeUnit(s string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "°")
}

func lookupUnit(symbol string) (unit, error) {
	u, ok := units[normalizeUnit(symbol)]
	if !ok {
		return unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	return u, nil
}

func toKelvin(v float64, sym string) float64 {
	switch sym {
	case "c":
		return v + 273.15
	case "f":
		return (v-32)*5/9 + 273.15
	default:
		return v
	}
}

func fromKelvin(v float64, sym string) float64 {
	var out float64
	switch sym {
	case "c":
		out = v - 273.15
	case "f":
		out = (v-273.15)*9/5 + 32
	default:
		out = v
	}
	// Strip float noise such as 99.99999999999997.
	return math.Round(out*1e9) / 1e9
}
