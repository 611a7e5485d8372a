package cts

import (
	"fmt"
	"math"
	"sort"
)

// projConstructor builds a Projection Operation from an ellipsoid and a
// parameter map.
type projConstructor func(ell *Ellipsoid, p *ParamMap) Operation

// projRegistry maps the proj-string/EPSG method keys this library
// recognizes to their constructors, generalizing
// samlecuyer-projectron/projections.go's lookupImpl switch into a
// table so new projections register by addition, not by editing a
// growing switch statement.
var projRegistry = map[string]projConstructor{
	"merc":    NewMercator1SP,
	"tmerc":   NewTransverseMercator,
	"utm":     nil, // constructed via NewUTMProjection, not the generic table (needs a zone)
	"lcc":     newLCCDispatch,
	"eqc":     NewEquidistantCylindrical,
	"mill":    NewMillerCylindrical,
	"cea":     NewCylindricalEqualArea,
	"aea":     NewAlbersEqualArea,
	"poly":    NewPolyconic,
	"cass":    NewCassiniSoldner,
	"stere":   newStereoDispatch,
	"sterea":  NewObliqueStereographicAlternative,
	"somerc":  NewSwissObliqueMercator,
	"gstmerc": NewGaussSchreiberTransverseMercator,
	"omerc":   NewObliqueMercator,
	"krovak":  NewKrovakNorthOrientated,
	"nzmg":    NewNZMG,
	"laea":    NewLambertAzimuthalEqualArea,
}

// newLCCDispatch picks the 1SP or 2SP form of Lambert Conic Conformal
// depending on whether a second standard parallel is present, mirroring
// EPSG's split between methods 9801 (1SP) and 9802 (2SP).
func newLCCDispatch(ell *Ellipsoid, p *ParamMap) Operation {
	if _, has2 := p.Degrees(ParamStandardParallel2); has2 {
		return NewLambertConicConformal2SP(ell, p)
	}
	return NewLambertConicConformal1SP(ell, p)
}

// newStereoDispatch picks the polar or oblique-alternative Stereographic
// form depending on how close latitude_of_origin sits to a pole; EPSG
// treats the polar case (method 9810) and the general oblique case
// (method 9809, "Oblique Stereographic Alternative") as separate
// methods, so the split happens here rather than inside one formula set.
func newStereoDispatch(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	if halfPi-math.Abs(pp.Phi0) < 1e-9 {
		return NewPolarStereographic(ell, p)
	}
	return NewObliqueStereographicAlternative(ell, p)
}

// NewProjection builds the named projection, or reports
// UnsupportedOperationError if key names no known method. UTM is not
// reachable through this table: build it with NewUTMProjection, which
// additionally needs a zone number and hemisphere.
func NewProjection(key string, ell *Ellipsoid, p *ParamMap) (Operation, error) {
	ctor, ok := projRegistry[key]
	if !ok || ctor == nil {
		return nil, NewUnsupportedOperationError(key)
	}
	op := ctor(ell, p)
	for _, k := range p.Unrecognized() {
		defaultLogger.Printf("cts: %s: ignoring unrecognized parameter %q", key, k)
	}
	return op, nil
}

// NewUTMProjection builds a Universal Transverse Mercator projection for
// the given zone (1-60) and hemisphere.
func NewUTMProjection(ell *Ellipsoid, zone int, south bool) (Operation, error) {
	if zone < 1 || zone > 60 {
		return nil, fmt.Errorf("cts: UTM zone %d out of range [1,60]", zone)
	}
	return NewUTM(ell, zone, south), nil
}

// KnownProjections returns the sorted set of proj-key strings
// NewProjection recognizes, for diagnostics and tests.
func KnownProjections() []string {
	out := make([]string, 0, len(projRegistry))
	for k, ctor := range projRegistry {
		if ctor != nil {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
