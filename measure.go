// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cts

import "math"

// Unit tags a Measure's quantity kind so it can be canonicalized to SI
// (radians for angles, meters for lengths) before being stored in a
// projection or ellipsoid.
type Unit int

// Recognized units, per spec.md §6.
const (
	Meter Unit = iota
	Degree
	Grad
	Radian
	Scale // a dimensionless multiplier, e.g. a to_meter conversion factor
)

// Measure is a typed scalar: a value tagged with the unit it was
// expressed in. External parsers (out of scope for this library)
// produce Measures; the core only ever consumes and canonicalizes them.
type Measure struct {
	Value float64
	Unit  Unit
}

// Radians returns m canonicalized to radians. It panics if m is not an
// angular unit; callers are expected to know which parameter keys carry
// angles (spec.md §4.4's parameter table).
func (m Measure) Radians() float64 {
	switch m.Unit {
	case Radian:
		return m.Value
	case Degree:
		return m.Value * d2r
	case Grad:
		return m.Value * (math.Pi / 200)
	default:
		panic("cts: Measure.Radians called on a non-angular unit")
	}
}

// Meters returns m.Value unchanged for every unit, Scale included; no
// unit conversion is applied.
func (m Measure) Meters() float64 {
	if m.Unit == Scale {
		return m.Value
	}
	return m.Value
}

// NamedUnit describes one of the recognized linear units of spec.md §6
// (e.g. "km", "us-ft"), carrying its conversion factor to meters.
type NamedUnit struct {
	ID      string
	ToMeter float64
	Name    string
}

// namedUnits is the linear-unit table, ported from
// samlecuyer-projectron/defs.go's units_list and generalized into
// NamedUnit so external parsers can resolve a unit name to a Measure
// scale factor without the core depending on a parsing layer.
var namedUnits = map[string]NamedUnit{
	"km":     {"km", 1000, "Kilometer"},
	"m":      {"m", 1.0, "Meter"},
	"dm":     {"dm", 0.1, "Decimeter"},
	"cm":     {"cm", 0.01, "Centimeter"},
	"mm":     {"mm", 0.001, "Millimeter"},
	"kmi":    {"kmi", 1852.0, "International Nautical Mile"},
	"in":     {"in", 0.0254, "International Inch"},
	"ft":     {"ft", 0.3048, "International Foot"},
	"yd":     {"yd", 0.9144, "International Yard"},
	"mi":     {"mi", 1609.344, "International Statute Mile"},
	"fath":   {"fath", 1.8288, "International Fathom"},
	"ch":     {"ch", 20.1168, "International Chain"},
	"link":   {"link", 0.201168, "International Link"},
	"us-in":  {"us-in", 0.0254000508, "U.S. Surveyor's Inch"},
	"us-ft":  {"us-ft", 0.304800609601219, "U.S. Surveyor's Foot"},
	"us-yd":  {"us-yd", 0.914401828803658, "U.S. Surveyor's Yard"},
	"us-ch":  {"us-ch", 20.11684023368047, "U.S. Surveyor's Chain"},
	"us-mi":  {"us-mi", 1609.347218694437, "U.S. Surveyor's Statute Mile"},
	"ind-yd": {"ind-yd", 0.91439523, "Indian Yard"},
	"ind-ft": {"ind-ft", 0.30479841, "Indian Foot"},
	"ind-ch": {"ind-ch", 20.11669506, "Indian Chain"},
}

// NamedUnitByID looks up a linear unit by its PROJ-style short name.
func NamedUnitByID(id string) (NamedUnit, bool) {
	u, ok := namedUnits[id]
	return u, ok
}
