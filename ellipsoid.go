// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cts

import (
	"math"
	"sync"
)

// Ellipsoid represents a reference sphere/spheroid: semi-major axis a
// (meters) and the derived flattening/eccentricity quantities of
// spec.md §3/§4.1. It is immutable after construction; its two lazy
// coefficient caches (meridian-arc series, inverse-Mercator
// coefficients) are computed at most once, safely from multiple
// goroutines, via sync.Once — spec.md §5's "double-checked
// publication or once-init primitive" — grounded in the cached-constant
// pattern of ctessum-geom-proj's DeriveConstants (reference only; the
// teacher has no caching at all, each projection re-derives its own
// scalars inline).
type Ellipsoid struct {
	name string
	a    float64 // semi-major axis, meters
	b    float64 // semi-minor axis, meters
	f    float64 // flattening
	e    float64 // first eccentricity
	e2   float64 // first eccentricity squared
	ep2  float64 // second eccentricity squared e'^2 = e^2/(1-e^2)

	arcOnce  sync.Once
	arcCoefs [5]float64 // 5-term truncated meridian-arc series in e^2

	invMercOnce  sync.Once
	invMercCoefs [5]float64 // inverse-Mercator (isometric latitude inversion) series
}

// NewEllipsoidFromAAndInverseFlattening builds an Ellipsoid from a
// semi-major axis and inverse flattening 1/f, per spec.md §3.
func NewEllipsoidFromAAndInverseFlattening(name string, a, invF float64) *Ellipsoid {
	if invF == 0 {
		return newSphere(name, a)
	}
	f := 1 / invF
	return newEllipsoidFromAAndF(name, a, f)
}

// NewEllipsoidFromAAndB builds an Ellipsoid from a semi-major and
// semi-minor axis.
func NewEllipsoidFromAAndB(name string, a, b float64) *Ellipsoid {
	if a == b {
		return newSphere(name, a)
	}
	f := 1 - b/a
	return newEllipsoidFromAAndF(name, a, f)
}

// NewEllipsoidFromAAndEccentricity builds an Ellipsoid from a semi-major
// axis and first eccentricity e.
func NewEllipsoidFromAAndEccentricity(name string, a, e float64) *Ellipsoid {
	if e == 0 {
		return newSphere(name, a)
	}
	e2 := e * e
	f := 1 - math.Sqrt(1-e2)
	return newEllipsoidFromAAndF(name, a, f)
}

func newEllipsoidFromAAndF(name string, a, f float64) *Ellipsoid {
	b := a * (1 - f)
	e2 := 2*f - f*f
	e := math.Sqrt(e2)
	ep2 := e2 / (1 - e2)
	return &Ellipsoid{name: name, a: a, b: b, f: f, e: e, e2: e2, ep2: ep2}
}

func newSphere(name string, a float64) *Ellipsoid {
	return &Ellipsoid{name: name, a: a, b: a, f: 0, e: 0, e2: 0, ep2: 0}
}

// Name returns the human-readable name this ellipsoid was constructed
// with, if any.
func (e *Ellipsoid) Name() string { return e.name }

// A returns the semi-major axis in meters.
func (e *Ellipsoid) A() float64 { return e.a }

// B returns the semi-minor axis in meters.
func (e *Ellipsoid) B() float64 { return e.b }

// F returns the flattening.
func (e *Ellipsoid) F() float64 { return e.f }

// InverseFlattening returns 1/f, or +Inf for a perfect sphere.
func (e *Ellipsoid) InverseFlattening() float64 {
	if e.f == 0 {
		return math.Inf(1)
	}
	return 1 / e.f
}

// E returns the first eccentricity.
func (e *Ellipsoid) E() float64 { return e.e }

// E2 returns the first eccentricity squared.
func (e *Ellipsoid) E2() float64 { return e.e2 }

// SecondEccentricitySquared returns e'^2 = e^2/(1-e^2).
func (e *Ellipsoid) SecondEccentricitySquared() float64 { return e.ep2 }

// IsSphere reports whether this ellipsoid is a perfect sphere (a == b).
func (e *Ellipsoid) IsSphere() bool { return e.e2 == 0 }

// Equal implements the identity rule of spec.md §3: two ellipsoids are
// equal iff their a and b agree to 0.1 mm.
func (e *Ellipsoid) Equal(other *Ellipsoid) bool {
	if e == other {
		return true
	}
	if other == nil {
		return false
	}
	const tol = 1e-4
	return math.Abs(e.a-other.a) < tol && math.Abs(e.b-other.b) < tol
}

// MeridionalRadiusOfCurvature returns a(1-e^2)/(1-e^2 sin^2(phi))^(3/2),
// spec.md §4.1.
func (e *Ellipsoid) MeridionalRadiusOfCurvature(phi float64) float64 {
	sp := math.Sin(phi)
	return e.a * (1 - e.e2) / math.Pow(1-e.e2*sp*sp, 1.5)
}

// TransverseRadiusOfCurvature returns a/sqrt(1-e^2 sin^2(phi)), spec.md
// §4.1 (also called nu or N in the geographic<->geocentric formulas).
func (e *Ellipsoid) TransverseRadiusOfCurvature(phi float64) float64 {
	sp := math.Sin(phi)
	return e.a / math.Sqrt(1-e.e2*sp*sp)
}

// arcCoefficients lazily derives the 5-term truncated meridian-arc
// series in e^2 (Snyder 1987 eq. 3-21), cached per ellipsoid.
func (e *Ellipsoid) arcCoefficients() [5]float64 {
	e.arcOnce.Do(func() {
		es := e.e2
		e.arcCoefs = [5]float64{
			1 - es*(1.0/4+es*(3.0/64+es*(5.0/256+es*(175.0/16384)))),
			es * (3.0/8 + es*(3.0/32+es*(45.0/1024+es*(105.0/4096)))),
			es * es * (15.0/256 + es*(45.0/1024+es*(525.0/16384))),
			es * es * es * (35.0/3072 + es*(175.0/12288)),
			es * es * es * es * (315.0 / 131072),
		}
	})
	return e.arcCoefs
}

// ArcFromLat returns the meridian arc length from the equator to
// geodetic latitude phi (radians), in meters, using the 5-term series
// (default method of spec.md §4.1, precision ~1e-6 m).
func (e *Ellipsoid) ArcFromLat(phi float64) float64 {
	c := e.arcCoefficients()
	return e.a * (c[0]*phi - c[1]*math.Sin(2*phi) + c[2]*math.Sin(4*phi) - c[3]*math.Sin(6*phi) + c[4]*math.Sin(8*phi))
}

// CurvilinearAbscissa returns the normalized meridian arc (arc/a) using
// the same 5-term series, per spec.md §4.1.
func (e *Ellipsoid) CurvilinearAbscissa(phi float64) float64 {
	return e.ArcFromLat(phi) / e.a
}

// kCoefficients derives the Hehl k-coefficients used by the footpoint-
// latitude series (spec.md §4.1: "configurable term count m in [1,8]"),
// truncated to m terms; they are recomputed on every call. coefs[0] is
// the rectifying-radius factor, coefs[1..4] the footpoint series in the
// third flattening n (Snyder 1987 eq. 3-26), and coefficients beyond
// the 4th harmonic are set to zero.
func (e *Ellipsoid) kCoefficients(m int) []float64 {
	n := e.f / (2 - e.f) // third flattening
	coefs := make([]float64, m)
	coefs[0] = (1 + n*n/4 + n*n*n*n/64) / (1 + n)
	if m > 1 {
		coefs[1] = 1.5*n - 27.0/32*n*n*n
	}
	if m > 2 {
		coefs[2] = 21.0/16*n*n - 55.0/32*n*n*n*n
	}
	if m > 3 {
		coefs[3] = 151.0 / 96 * n * n * n
	}
	if m > 4 {
		coefs[4] = 1097.0 / 512 * n * n * n * n
	}
	for i := 5; i < m; i++ {
		coefs[i] = 0
	}
	return coefs
}

// LatFromArcSeries inverts ArcFromLat via the direct (non-Newton) Hehl
// footpoint-latitude series, summing m terms (spec.md §4.1's
// "configurable term count m in [1,8]"). It is the closed-form
// alternative to LatFromArc's Newton iteration, and also seeds that
// iteration's first guess.
func (e *Ellipsoid) LatFromArcSeries(s float64, m int) (float64, error) {
	if m < 1 || m > 8 {
		return 0, NewArithmeticDivergenceError("Ellipsoid.LatFromArcSeries: m out of [1,8]")
	}
	c := e.kCoefficients(m)
	mu := s / (e.a * c[0])
	phi := mu
	for i := 1; i < len(c); i++ {
		phi += c[i] * math.Sin(float64(2*i)*mu)
	}
	return phi, nil
}

// LatFromArc inverts ArcFromLat by fixed-point iteration, per spec.md
// §4.1: tolerance 1e-15 rad, hard cap 10 iterations; divergence is an
// arithmetic failure.
func (e *Ellipsoid) LatFromArc(s float64) (float64, error) {
	// seed the Newton iteration with the closed-form Hehl series rather
	// than the flat s/a guess; with m=6 the loop below converges in one
	// or two steps.
	phi, err := e.LatFromArcSeries(s, 6)
	if err != nil {
		return 0, err
	}
	for i := 0; i < 10; i++ {
		f := e.ArcFromLat(phi) - s
		// derivative d(arc)/d(phi) ~= a * c0 for small corrections; a
		// cheap central difference keeps this generic across the cached
		// coefficient set without hand-deriving a closed-form
		// derivative.
		const h = 1e-6
		df := (e.ArcFromLat(phi+h) - e.ArcFromLat(phi-h)) / (2 * h)
		if df == 0 {
			return 0, NewArithmeticDivergenceError("Ellipsoid.LatFromArc")
		}
		dphi := -f / df
		phi += dphi
		if math.Abs(dphi) < 1e-15 {
			return phi, nil
		}
	}
	return 0, NewArithmeticDivergenceError("Ellipsoid.LatFromArc")
}

// IsometricLatitude computes the auxiliary latitude that makes the
// ellipsoid conformal (spec.md §4.1):
// ln(tan(pi/4+phi/2) * ((1-e sin phi)/(1+e sin phi))^(e/2)).
func (e *Ellipsoid) IsometricLatitude(phi float64) float64 {
	sp := e.e * math.Sin(phi)
	return math.Log(math.Tan(fortPi+phi/2)) + (e.e/2)*math.Log((1-sp)/(1+sp))
}

// Latitude inverts IsometricLatitude by fixed-point iteration to
// tolerance eps (spec.md §4.1 default eps = 1e-11 rad).
func (e *Ellipsoid) Latitude(L, eps float64) (float64, error) {
	if eps <= 0 {
		eps = 1e-11
	}
	// seed with the closed-form inverse-Mercator series rather than the
	// bare spherical conformal latitude; cuts the loop below to a couple
	// of refinement steps for any real-world eccentricity.
	chi := 2*math.Atan(math.Exp(L)) - halfPi
	phi := e.InverseMercatorLatitude(chi)
	for i := 0; i < 15; i++ {
		sp := e.e * math.Sin(phi)
		next := 2*math.Atan(math.Exp(L)*math.Pow((1+sp)/(1-sp), e.e/2)) - halfPi
		if math.Abs(next-phi) < eps {
			return next, nil
		}
		phi = next
	}
	return 0, NewArithmeticDivergenceError("Ellipsoid.Latitude")
}

// invMercCoefficients lazily derives the series used by
// InverseMercatorLatitude, the closed-form (non-iterative) alternative
// to Latitude used internally by several conformal projections'
// inverses for a fast first approximation.
func (e *Ellipsoid) invMercCoefficients() [5]float64 {
	e.invMercOnce.Do(func() {
		es := e.e2
		e.invMercCoefs = [5]float64{
			es/2 + 5*es*es/24 + es*es*es/12 + 13*es*es*es*es/360,
			7*es*es/48 + 29*es*es*es/240 + 811*es*es*es*es/11520,
			7*es*es*es/120 + 81*es*es*es*es/1120,
			4279 * es * es * es * es / 161280,
			0,
		}
	})
	return e.invMercCoefs
}

// InverseMercatorLatitude returns the conformal-latitude correction
// series for the isometric-latitude inverse (Snyder 1987 eq. 3-5),
// given chi = 2*atan(exp(L)) - pi/2 (the spherical approximation).
func (e *Ellipsoid) InverseMercatorLatitude(chi float64) float64 {
	c := e.invMercCoefficients()
	return chi +
		c[0]*math.Sin(2*chi) +
		c[1]*math.Sin(4*chi) +
		c[2]*math.Sin(6*chi) +
		c[3]*math.Sin(8*chi)
}

// Named ellipsoid constants, per spec.md §3. Values from EPSG / Snyder
// and grounded in samlecuyer-projectron/defs.go's ellipse_list table
// (names and a/b/rf values), expanded here into typed Ellipsoid values.
var (
	Sphere           = newSphere("Sphere", 6370997.0)
	GRS80            = NewEllipsoidFromAAndInverseFlattening("GRS 1980(IUGG, 1980)", 6378137.0, 298.257222101)
	WGS84Ellipsoid   = NewEllipsoidFromAAndInverseFlattening("WGS 84", 6378137.0, 298.257223563)
	International1924 = NewEllipsoidFromAAndInverseFlattening("International 1909 (Hayford)", 6378388.0, 297.0)
	Bessel1841       = NewEllipsoidFromAAndInverseFlattening("Bessel 1841", 6377397.155, 299.1528128)
	Clarke1866       = NewEllipsoidFromAAndB("Clarke 1866", 6378206.4, 6356583.8)
	Clarke1880IGN    = NewEllipsoidFromAAndInverseFlattening("Clarke 1880 (IGN)", 6378249.2, 293.4660212936269)
	Clarke1880Mod    = NewEllipsoidFromAAndInverseFlattening("Clarke 1880 mod.", 6378249.145, 293.4663)
	Krassowski1942   = NewEllipsoidFromAAndInverseFlattening("Krassovsky, 1942", 6378245.0, 298.3)
	Airy1830         = NewEllipsoidFromAAndB("Airy 1830", 6377563.396, 6356256.910)
	AiryModified     = NewEllipsoidFromAAndB("Modified Airy", 6377340.189, 6356034.446)
	Helmert1906      = NewEllipsoidFromAAndInverseFlattening("Helmert 1906", 6378200.0, 298.3)
	WGS66            = NewEllipsoidFromAAndInverseFlattening("WGS 66", 6378145.0, 298.25)
	WGS72            = NewEllipsoidFromAAndInverseFlattening("WGS 72", 6378135.0, 298.26)
	GRS67            = NewEllipsoidFromAAndInverseFlattening("GRS 67(IUGG 1967)", 6378160.0, 298.2471674270)
	Everest1830      = NewEllipsoidFromAAndInverseFlattening("Everest 1830", 6377276.345, 300.8017)
	AustSA           = NewEllipsoidFromAAndInverseFlattening("Australian Natl & S. Amer. 1969", 6378160.0, 298.25)
	BesselNamibia    = NewEllipsoidFromAAndInverseFlattening("Bessel 1841 (Namibia)", 6377483.865, 299.1528128)
)
