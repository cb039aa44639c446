// Package style resolves presentation settings for rendered CVs: fonts, spacing,
// margins and bullet geometry, each carrying an explicit measurement unit.
package style

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit is the measurement domain of a Length
type Unit string

const (
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Point      Unit = "pt"
	Inch       Unit = "in"
)

const (
	pointsPerInch = 72.0
	mmPerInch     = 25.4
	cmPerInch     = 2.54
)

// lengthPattern must stay in sync with the pattern in style.schema.json
var lengthPattern = regexp.MustCompile(`^\s*(-?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+))\s*(mm|cm|pt|in)\s*$`)

// Length is a physical length tagged with its unit
type Length struct {
	Value float64
	Unit  Unit
}

// Mm returns a length in millimeters
func Mm(v float64) Length { return Length{Value: v, Unit: Millimeter} }

// Cm returns a length in centimeters
func Cm(v float64) Length { return Length{Value: v, Unit: Centimeter} }

// Pt returns a type-size length in points
func Pt(v float64) Length { return Length{Value: v, Unit: Point} }

// In returns a length in inches
func In(v float64) Length { return Length{Value: v, Unit: Inch} }

// ParseLength parses strings such as "15mm", "0.5 cm", "-0.25cm" or "3pt"
func ParseLength(s string) (Length, error) {
	m := lengthPattern.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return Length{}, fmt.Errorf("invalid length %q: expected a number followed by mm, cm, pt or in", s)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q: %w", s, err)
	}
	return Length{Value: v, Unit: Unit(m[2])}, nil
}

// Points converts the length to typographic points
func (l Length) Points() float64 {
	switch l.Unit {
	case Millimeter:
		return l.Value * pointsPerInch / mmPerInch
	case Centimeter:
		return l.Value * pointsPerInch / cmPerInch
	case Inch:
		return l.Value * pointsPerInch
	default:
		return l.Value
	}
}

// Twips converts to twentieths of a point, rounded
func (l Length) Twips() int {
	return int(math.Round(l.Points() * 20))
}

// HalfPoints converts to half points, rounded; font sizes use this unit in DOCX
func (l Length) HalfPoints() int {
	return int(math.Round(l.Points() * 2))
}

// IsZero reports whether the length is unset
func (l Length) IsZero() bool {
	return l == Length{}
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + string(l.Unit)
}

// MarshalJSON encodes the length as its string form, e.g. "15mm"
func (l Length) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// Ratio is a unitless multiplier such as line spacing
type Ratio float64
