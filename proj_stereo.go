package cts

import "math"

// gudermannian is gd(x) = 2*atan(exp(x)) - pi/2, the standard bridge
// between an isometric-latitude-like quantity and a conformal latitude,
// shared by the stereographic family below.
func gudermannian(x float64) float64 {
	return 2*math.Atan(math.Exp(x)) - halfPi
}

// NewPolarStereographic builds the polar-aspect Stereographic
// projection (STERE), EPSG Guidance Note 7-2 §1.3.7.1. The south-polar
// case is handled by mirroring phi and lambda, per spec.md §4.4's note
// that sign conventions flip between hemispheres.
func NewPolarStereographic(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	e := ell.e
	a := ell.a
	north := pp.Phi0 >= 0

	if _, hasK0 := p.Float(ParamScaleFactor); !hasK0 {
		if latTS, hasLatTS := p.Degrees(ParamLatitudeOfTrueScale); hasLatTS {
			abs := math.Abs(latTS)
			sp := math.Sin(abs)
			m := msfn(sp, math.Cos(abs), ell.e2)
			t := tsfn(abs, sp, e)
			pp.K0 = m / (2 * t / math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e)))
		}
	}

	fwd := func(phi, lam float64) (float64, float64, error) {
		phiF, lamF := phi, lam-pp.Lam0
		if !north {
			phiF, lamF = -phi, -(lam - pp.Lam0)
		}
		t := tsfn(phiF, math.Sin(phiF), e)
		rho := 2 * a * t / math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e))
		x, y := rho*math.Sin(lamF), -rho*math.Cos(lamF)
		if !north {
			x, y = -x, -y
		}
		return x, y, nil
	}

	inv := func(x, y float64) (float64, float64, error) {
		xF, yF := x, y
		if !north {
			xF, yF = -x, -y
		}
		rho := math.Sqrt(xF*xF + yF*yF)
		t := rho * math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e)) / (2 * a)
		phiF, err := phi2(e, t)
		if err != nil {
			return 0, 0, err
		}
		lamF := math.Atan2(xF, -yF)
		phi, lam := phiF, lamF
		if !north {
			phi, lam = -phiF, -lamF
		}
		return phi, pp.Lam0 + lam, nil
	}

	class := Classification{Surface: Azimuthal, Property: Conformal, Orientation: Oblique}
	return newPointProjection("polar_stereographic", pp, class, fwd, inv)
}

// NewObliqueStereographicAlternative builds the "Oblique Stereographic
// Alternative" (STEREA), the Gauss conformal double-projection used
// e.g. by RD New and CH1903 (EPSG Guidance Note 7-2 §1.3.7.3). It
// reuses Ellipsoid.IsometricLatitude/Latitude for the conformal-sphere
// mapping rather than reimplementing the isometric series locally.
func NewObliqueStereographicAlternative(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	e := ell.e
	e2 := ell.e2
	a := ell.a

	sp0 := math.Sin(pp.Phi0)
	cp0 := math.Cos(pp.Phi0)
	rho0 := a * (1 - e2) / math.Pow(1-e2*sp0*sp0, 1.5)
	nu0 := a / math.Sqrt(1-e2*sp0*sp0)
	r := math.Sqrt(rho0 * nu0)
	n := math.Sqrt(1 + e2*cp0*cp0*cp0*cp0/(1-e2))

	s1 := (1 + sp0) / (1 - sp0)
	s2 := (1 - e*sp0) / (1 + e*sp0)
	w1 := math.Pow(s1*math.Pow(s2, e), n)
	sinChi0 := (w1 - 1) / (w1 + 1)
	epsgC := (n + sp0) * (1 - sinChi0) / ((n - sp0) * (1 + sinChi0))
	cConst := math.Log(epsgC) / 2
	chi0 := gudermannian(cConst + n*ell.IsometricLatitude(pp.Phi0))
	sinChi0v, cosChi0v := math.Sin(chi0), math.Cos(chi0)

	fwd := func(phi, lam float64) (float64, float64, error) {
		chi := gudermannian(cConst + n*ell.IsometricLatitude(phi))
		sinChi, cosChi := math.Sin(chi), math.Cos(chi)
		lamP := n * (lam - pp.Lam0)
		b := 1 + sinChi*sinChi0v + cosChi*cosChi0v*math.Cos(lamP)
		x := 2 * r * cosChi * math.Sin(lamP) / b
		y := 2 * r * (sinChi*cosChi0v - cosChi*sinChi0v*math.Cos(lamP)) / b
		return x, y, nil
	}

	inv := func(x, y float64) (float64, float64, error) {
		g := 2 * r * math.Tan(fortPi-chi0/2)
		h := 4*r*math.Tan(chi0) + g
		i := math.Atan2(x, h+y)
		j := math.Atan2(x, g-y) - i
		lamP := j + 2*i
		chi := chi0 + 2*math.Atan((y-x*math.Tan(j/2))/(2*r))
		lam := pp.Lam0 + lamP/n

		psi := math.Log(math.Tan(fortPi + chi/2))
		l := (psi - cConst) / n
		phi, err := ell.Latitude(l, 1e-11)
		if err != nil {
			return 0, 0, err
		}
		return phi, lam, nil
	}

	class := Classification{Surface: Azimuthal, Property: Conformal, Orientation: Oblique}
	return newPointProjection("oblique_stereographic_alternative", pp, class, fwd, inv)
}
