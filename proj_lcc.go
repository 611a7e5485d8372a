package cts

import "math"

// NewLambertConicConformal2SP builds the two-standard-parallel Lambert
// Conic Conformal projection (EPSG Guidance Note 7-2 §1.3.2), grounded
// in oahumap-proj's operations-Lambert.go lccSetup/Forward/Inverse, but
// driven off this library's ParamMap/Ellipsoid rather than a PROJ
// core.System.
func NewLambertConicConformal2SP(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	if pp.Phi2 == 0 && pp.Phi1 != 0 {
		pp.Phi2 = pp.Phi1
	}
	e := ell.e
	es := ell.e2

	m1 := msfn(math.Sin(pp.Phi1), math.Cos(pp.Phi1), es)
	t1 := tsfn(pp.Phi1, math.Sin(pp.Phi1), e)
	m2 := msfn(math.Sin(pp.Phi2), math.Cos(pp.Phi2), es)
	t2 := tsfn(pp.Phi2, math.Sin(pp.Phi2), e)

	var n float64
	if pp.Phi1 == pp.Phi2 {
		n = math.Sin(pp.Phi1)
	} else {
		n = math.Log(m1/m2) / math.Log(t1/t2)
	}
	f := m1 / (n * math.Pow(t1, n))
	t0 := tsfn(pp.Phi0, math.Sin(pp.Phi0), e)
	rho0 := ell.a * f * math.Pow(t0, n)

	fwd := func(phi, lam float64) (float64, float64, error) {
		t := tsfn(phi, math.Sin(phi), e)
		rho := ell.a * f * math.Pow(t, n)
		theta := n * (lam - pp.Lam0)
		x := rho * math.Sin(theta)
		y := rho0 - rho*math.Cos(theta)
		return x, y, nil
	}

	inv := func(x, y float64) (float64, float64, error) {
		dx := x
		dy := rho0 - y
		rhoP := math.Sqrt(dx*dx + dy*dy)
		if n < 0 {
			rhoP = -rhoP
		}
		tP := math.Pow(rhoP/(ell.a*f), 1/n)
		thetaP := math.Atan2(dx, dy)
		lam := thetaP/n + pp.Lam0
		phi, err := phi2(e, tP)
		if err != nil {
			return 0, 0, err
		}
		return phi, lam, nil
	}

	class := Classification{Surface: Conical, Property: Conformal, Orientation: Secant}
	if pp.Phi1 == pp.Phi2 {
		class.Orientation = Tangent
	}
	return newPointProjection("lambert_conic_conformal_2sp", pp, class, fwd, inv)
}

// NewLambertConicConformal1SP builds the single-standard-parallel
// variant: the cone touches at latitude_of_origin, and scale_factor
// (default 1) plays the role 2SP's two parallels otherwise fix (EPSG
// Guidance Note 7-2 §1.3.1).
func NewLambertConicConformal1SP(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	e := ell.e
	es := ell.e2

	m0 := msfn(math.Sin(pp.Phi0), math.Cos(pp.Phi0), es)
	t0 := tsfn(pp.Phi0, math.Sin(pp.Phi0), e)
	n := math.Sin(pp.Phi0)
	f := m0 / (n * math.Pow(t0, n))
	// rho/rho0 omit scale_factor: the pointProjection wrapper applies it
	// uniformly to (x,y) before false easting/northing.
	rho0 := f * ell.a * math.Pow(t0, n)

	fwd := func(phi, lam float64) (float64, float64, error) {
		t := tsfn(phi, math.Sin(phi), e)
		rho := ell.a * f * math.Pow(t, n)
		theta := n * (lam - pp.Lam0)
		x := rho * math.Sin(theta)
		y := rho0 - rho*math.Cos(theta)
		return x, y, nil
	}

	inv := func(x, y float64) (float64, float64, error) {
		dx := x
		dy := rho0 - y
		rhoP := math.Sqrt(dx*dx + dy*dy)
		if n < 0 {
			rhoP = -rhoP
		}
		tP := math.Pow(rhoP/(ell.a*f), 1/n)
		thetaP := math.Atan2(dx, dy)
		lam := thetaP/n + pp.Lam0
		phi, err := phi2(e, tP)
		if err != nil {
			return 0, 0, err
		}
		return phi, lam, nil
	}

	class := Classification{Surface: Conical, Property: Conformal, Orientation: Tangent}
	return newPointProjection("lambert_conic_conformal_1sp", pp, class, fwd, inv)
}
