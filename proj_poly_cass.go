package cts

import "math"

// NewPolyconic builds the American Polyconic projection (POLY): each
// parallel is projected as if it were the standard parallel of its own
// tangent cone (Snyder 1987 §18). Its inverse deviates from Snyder's
// closed-form iteration: it Newton-solves the forward equations
// directly with a numerical Jacobian, documented here since spec.md
// §4.4 requires deviations from EPSG/USGS to be called out.
func NewPolyconic(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	m0 := ell.ArcFromLat(pp.Phi0)
	e2 := ell.e2
	a := ell.a

	polyForward := func(phi, lam float64) (float64, float64) {
		if math.Abs(phi) < 1e-10 {
			return a * (lam - pp.Lam0), -m0
		}
		sp, cp := math.Sin(phi), math.Cos(phi)
		cotPhi := cp / sp
		m := ell.ArcFromLat(phi)
		e := (lam - pp.Lam0) * sp
		x := cotPhi * math.Sin(e) / math.Sqrt(1-e2*sp*sp) * a
		y := a*(m/a-m0/a) + cotPhi*(1-math.Cos(e))/math.Sqrt(1-e2*sp*sp)*a
		return x, y
	}

	fwd := func(phi, lam float64) (float64, float64, error) {
		x, y := polyForward(phi, lam)
		return x, y, nil
	}

	inv := func(x, y float64) (float64, float64, error) {
		// footpoint latitude as the Newton seed.
		phi, err := ell.LatFromArc(m0 + y)
		if err != nil {
			return 0, 0, err
		}
		lam := pp.Lam0
		const h = 1e-6
		for i := 0; i < 15; i++ {
			fx, fy := polyForward(phi, lam)
			fxPhi, fyPhi := polyForward(phi+h, lam)
			fxLam, fyLam := polyForward(phi, lam+h)
			j11, j21 := (fxPhi-fx)/h, (fyPhi-fy)/h
			j12, j22 := (fxLam-fx)/h, (fyLam-fy)/h
			det := j11*j22 - j12*j21
			if math.Abs(det) < 1e-20 {
				return 0, 0, NewArithmeticDivergenceError("polyconic_inverse")
			}
			rx, ry := x-fx, y-fy
			dPhi := (j22*rx - j12*ry) / det
			dLam := (j11*ry - j21*rx) / det
			phi += dPhi
			lam += dLam
			if math.Abs(dPhi) < 1e-15 && math.Abs(dLam) < 1e-15 {
				return phi, lam, nil
			}
		}
		return 0, 0, NewArithmeticDivergenceError("polyconic_inverse")
	}

	class := Classification{Surface: Polyconical, Property: Aphylactic, Orientation: Tangent}
	return newPointProjection("polyconic", pp, class, fwd, inv)
}

// NewCassiniSoldner builds the Cassini-Soldner projection (CASS), the
// transverse-aspect equidistant cylindrical (Snyder 1987 §19, EPSG
// Guidance Note 7-2 §1.3.13 ellipsoidal series form).
func NewCassiniSoldner(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	m0 := ell.ArcFromLat(pp.Phi0)
	e2 := ell.e2
	ep2 := ell.ep2
	a := ell.a

	fwd := func(phi, lam float64) (float64, float64, error) {
		sp, cp := math.Sin(phi), math.Cos(phi)
		t := sp / cp
		nu := a / math.Sqrt(1-e2*sp*sp)
		aCoef := (lam - pp.Lam0) * cp
		a2 := aCoef * aCoef
		a3 := a2 * aCoef
		a4 := a3 * aCoef
		a5 := a4 * aCoef
		c := ep2 * cp * cp
		m := ell.ArcFromLat(phi)
		x := nu * (aCoef - t*t*a3/6 - (8-t*t+8*c)*t*a5/120)
		y := m - m0 + nu*t*(a2/2+(5-t*t+6*c)*a4/24)
		return x, y, nil
	}

	inv := func(x, y float64) (float64, float64, error) {
		m1 := m0 + y
		phi1, err := ell.LatFromArc(m1)
		if err != nil {
			return 0, 0, err
		}
		sp1, cp1 := math.Sin(phi1), math.Cos(phi1)
		t1 := sp1 / cp1
		n1 := a / math.Sqrt(1-e2*sp1*sp1)
		r1 := a * (1 - e2) / math.Pow(1-e2*sp1*sp1, 1.5)
		d := x / n1
		d2 := d * d
		d3 := d2 * d
		d4 := d3 * d

		phi := phi1 - (n1*t1/r1)*(d2/2-(1+3*t1*t1)*d4/24)
		lam := pp.Lam0 + (d-t1*t1*d3/3+(1+3*t1*t1)*t1*d4*d/15)/cp1
		return phi, lam, nil
	}

	class := Classification{Surface: Cylindrical, Property: Equidistant, Orientation: Transverse}
	return newPointProjection("cassini_soldner", pp, class, fwd, inv)
}
