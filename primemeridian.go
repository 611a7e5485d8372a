// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cts

import "math"

// PrimeMeridian is a signed angular offset from Greenwich, stored
// canonically in radians (spec.md §3).
type PrimeMeridian struct {
	Name          string
	id            Identifier
	LongitudeRad  float64
}

// NewPrimeMeridian builds a PrimeMeridian from a longitude already in
// radians.
func NewPrimeMeridian(name string, id Identifier, longitudeRad float64) PrimeMeridian {
	return PrimeMeridian{Name: name, id: id, LongitudeRad: longitudeRad}
}

// Identifier returns pm's opaque authority+code key.
func (pm PrimeMeridian) Identifier() Identifier { return pm.id }

// Equal implements spec.md §3's equality rule: same authority code, same
// name, or longitude within 1e-11 rad.
func (pm PrimeMeridian) Equal(other PrimeMeridian) bool {
	if pm.id.Authority != "" && pm.id.Equal(other.id) {
		return true
	}
	if pm.Name != "" && pm.Name == other.Name {
		return true
	}
	return math.Abs(pm.LongitudeRad-other.LongitudeRad) < 1e-11
}

// Named prime meridian constants, ported from
// samlecuyer-projectron/defs.go's pm_list table (degree-minute-second
// strings) parsed once into radians here.
var (
	Greenwich = NewPrimeMeridian("Greenwich", NewIdentifier("EPSG", "8901"), 0)
	Paris     = NewPrimeMeridian("Paris", NewIdentifier("EPSG", "8903"), parseDegreeString("2d20'14.025\"E")*d2r)
	Lisbon    = NewPrimeMeridian("Lisbon", NewIdentifier("EPSG", "8902"), parseDegreeString("9d07'54.862\"W")*d2r)
	Bogota    = NewPrimeMeridian("Bogota", NewIdentifier("EPSG", "8904"), parseDegreeString("74d04'51.3\"W")*d2r)
	Madrid    = NewPrimeMeridian("Madrid", NewIdentifier("EPSG", "8905"), parseDegreeString("3d41'16.58\"W")*d2r)
	Rome      = NewPrimeMeridian("Rome", NewIdentifier("EPSG", "8906"), parseDegreeString("12d27'8.4\"E")*d2r)
	Bern      = NewPrimeMeridian("Bern", NewIdentifier("EPSG", "8907"), parseDegreeString("7d26'22.5\"E")*d2r)
	Jakarta   = NewPrimeMeridian("Jakarta", NewIdentifier("EPSG", "8908"), parseDegreeString("106d48'27.79\"E")*d2r)
	Ferro     = NewPrimeMeridian("Ferro", NewIdentifier("EPSG", "8909"), parseDegreeString("17d40'W")*d2r)
	Brussels  = NewPrimeMeridian("Brussels", NewIdentifier("EPSG", "8910"), parseDegreeString("4d22'4.71\"E")*d2r)
	Stockholm = NewPrimeMeridian("Stockholm", NewIdentifier("EPSG", "8911"), parseDegreeString("18d3'29.8\"E")*d2r)
	Athens    = NewPrimeMeridian("Athens", NewIdentifier("EPSG", "8912"), parseDegreeString("23d42'58.815\"E")*d2r)
	Oslo      = NewPrimeMeridian("Oslo", NewIdentifier("EPSG", "8913"), parseDegreeString("10d43'22.5\"E")*d2r)
	ParisRGS  = NewPrimeMeridian("Paris RGS", NewIdentifier("EPSG", "8914"), parseDegreeString("2d20'13.95\"E")*d2r)
)
