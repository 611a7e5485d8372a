package cts

import (
	"math"
	"strconv"
)

// NewTransverseMercator builds the Transverse Mercator projection using
// the classic 5/6-term series in the ellipsoid's second eccentricity
// squared (Snyder 1987, eq. 8-9..8-11 forward / 8-17..8-22 inverse),
// reusing Ellipsoid.ArcFromLat/LatFromArc for the meridional-arc and
// footpoint-latitude terms (spec.md §4.4).
func NewTransverseMercator(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	m0 := ell.ArcFromLat(pp.Phi0)
	ep2 := ell.ep2
	e2 := ell.e2
	a := ell.a

	fwd := func(phi, lam float64) (float64, float64, error) {
		sp, cp := math.Sin(phi), math.Cos(phi)
		t := sp / cp
		t2 := t * t
		c := ep2 * cp * cp
		n := a / math.Sqrt(1-e2*sp*sp)
		aCoef := (lam - pp.Lam0) * cp
		a2 := aCoef * aCoef
		a3 := a2 * aCoef
		a4 := a3 * aCoef
		a5 := a4 * aCoef
		a6 := a5 * aCoef

		// scale_factor is applied once, uniformly, by the pointProjection
		// wrapper around this closure; (x,y) here are the k0=1 coordinates.
		x := n * (aCoef + (1-t2+c)*a3/6 +
			(5-18*t2+t2*t2+72*c-58*ep2)*a5/120)
		m := ell.ArcFromLat(phi)
		y := m - m0 + n*t*(a2/2+(5-t2+9*c+4*c*c)*a4/24+
			(61-58*t2+t2*t2+600*c-330*ep2)*a6/720)
		return x, y, nil
	}

	inv := func(x, y float64) (float64, float64, error) {
		// the wrapper has already divided (x,y) by scale_factor before
		// calling this closure.
		m := m0 + y
		phi1, err := ell.LatFromArc(m)
		if err != nil {
			return 0, 0, err
		}
		sp1, cp1 := math.Sin(phi1), math.Cos(phi1)
		t1 := sp1 / cp1
		t1sq := t1 * t1
		c1 := ep2 * cp1 * cp1
		n1 := a / math.Sqrt(1-e2*sp1*sp1)
		r1 := a * (1 - e2) / math.Pow(1-e2*sp1*sp1, 1.5)
		d := x / n1
		d2 := d * d
		d3 := d2 * d
		d4 := d3 * d
		d5 := d4 * d
		d6 := d5 * d

		phi := phi1 - (n1*t1/r1)*(d2/2-(5+3*t1sq+10*c1-4*c1*c1-9*ep2)*d4/24+
			(61+90*t1sq+298*c1+45*t1sq*t1sq-252*ep2-3*c1*c1)*d6/720)
		lam := pp.Lam0 + (d-(1+2*t1sq+c1)*d3/6+
			(5-2*c1+28*t1sq-3*c1*c1+8*ep2+24*t1sq*t1sq)*d5/120)/cp1
		return phi, lam, nil
	}

	class := Classification{Surface: Cylindrical, Property: Conformal, Orientation: Transverse}
	return newPointProjection("transverse_mercator", pp, class, fwd, inv)
}

// UTMZone returns the standard UTM zone number (1-60) for longitude lam
// (radians), per spec.md §4.4's "zoned TM" helper.
func UTMZone(lam float64) int {
	deg := lam * r2d
	zone := int(math.Floor((deg+180)/6)) + 1
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}
	return zone
}

// NewUTM builds the zoned Transverse Mercator used for UTM: k0=0.9996,
// false easting 500000, false northing 0 in the north hemisphere or
// 10,000,000 in the south (spec.md §4.4). The zone's central meridian
// and the UTM constants are fed through the same ParamMap path every
// other projection uses, rather than patched onto an already-built
// projection, so the closures capturing those parameters see the real
// values.
func NewUTM(ell *Ellipsoid, zone int, south bool) Operation {
	lam0Deg := float64(zone)*6 - 183
	p := NewParamMap()
	p.Set(ParamCentralMeridian, strconv.FormatFloat(lam0Deg, 'f', -1, 64))
	p.Set(ParamScaleFactor, "0.9996")
	p.Set(ParamFalseEasting, "500000")
	if south {
		p.Set(ParamFalseNorthing, "10000000")
	} else {
		p.Set(ParamFalseNorthing, "0")
	}
	return NewTransverseMercator(ell, p)
}
