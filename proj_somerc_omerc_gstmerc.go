package cts

import "math"

// conformalSphereParams computes the Gauss conformal-sphere constants
// (radius, latitude scale factor n, additive constant, and the
// conformal latitude of the tangent point) used by the Swiss Oblique
// Mercator; the Oblique Stereographic Alternative computes the same
// constants inline. Grounded in EPSG Guidance Note 7-2 §1.3.7.3/1.3.11.
type conformalSphereParams struct {
	r      float64
	n      float64
	c      float64
	chi0   float64
}

func newConformalSphereParams(ell *Ellipsoid, phi0 float64, n float64) conformalSphereParams {
	e2 := ell.e2
	sp0 := math.Sin(phi0)
	rho0 := ell.a * (1 - e2) / math.Pow(1-e2*sp0*sp0, 1.5)
	nu0 := ell.a / math.Sqrt(1-e2*sp0*sp0)
	r := math.Sqrt(rho0 * nu0)

	e := ell.e
	cp0 := math.Cos(phi0)
	if n <= 0 {
		n = math.Sqrt(1 + e2*cp0*cp0*cp0*cp0/(1-e2))
	}
	s1 := (1 + sp0) / (1 - sp0)
	s2 := (1 - e*sp0) / (1 + e*sp0)
	w1 := math.Pow(s1*math.Pow(s2, e), n)
	sinChi0 := (w1 - 1) / (w1 + 1)
	epsgC := (n + sp0) * (1 - sinChi0) / ((n - sp0) * (1 + sinChi0))
	c := math.Log(epsgC) / 2
	chi0 := gudermannian(c + n*ell.IsometricLatitude(phi0))
	return conformalSphereParams{r: r, n: n, c: c, chi0: chi0}
}

func (cs conformalSphereParams) toConformalLatitude(ell *Ellipsoid, phi float64) float64 {
	return gudermannian(cs.c + cs.n*ell.IsometricLatitude(phi))
}

func (cs conformalSphereParams) fromConformalLatitude(ell *Ellipsoid, chi float64) (float64, error) {
	psi := math.Log(math.Tan(fortPi + chi/2))
	l := (psi - cs.c) / cs.n
	return ell.Latitude(l, 1e-11)
}

// NewSwissObliqueMercator builds the Swiss Oblique Mercator projection
// (SOMERC) used by the Swiss national grids: the ellipsoid is mapped
// conformally to a sphere tangent at latitude_of_origin (the same
// construction as the Oblique Stereographic Alternative), then that
// sphere is projected with a spherical oblique Mercator whose equator
// passes through the tangent point.
func NewSwissObliqueMercator(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	cs := newConformalSphereParams(ell, pp.Phi0, 0)
	sinChi0, cosChi0 := math.Sin(cs.chi0), math.Cos(cs.chi0)

	fwd := func(phi, lam float64) (float64, float64, error) {
		chi := cs.toConformalLatitude(ell, phi)
		sinChi, cosChi := math.Sin(chi), math.Cos(chi)
		lamP := lam - pp.Lam0

		latRot := math.Asin(sphericalAzimuthalClamp(sinChi*sinChi0 + cosChi*cosChi0*math.Cos(lamP)))
		lonRot := math.Atan2(cosChi*math.Sin(lamP), cosChi0*sinChi-sinChi0*cosChi*math.Cos(lamP))

		x := cs.r * lonRot
		y := cs.r * math.Log(math.Tan(fortPi+latRot/2))
		return x, y, nil
	}

	inv := func(x, y float64) (float64, float64, error) {
		latRot := 2*math.Atan(math.Exp(y/cs.r)) - halfPi
		lonRot := x / cs.r
		sinLatRot, cosLatRot := math.Sin(latRot), math.Cos(latRot)

		sinChi := sphericalAzimuthalClamp(sinLatRot*sinChi0 + cosLatRot*cosChi0*math.Cos(lonRot))
		chi := math.Asin(sinChi)
		lamP := math.Atan2(cosLatRot*math.Sin(lonRot), cosChi0*sinLatRot-sinChi0*cosLatRot*math.Cos(lonRot))

		phi, err := cs.fromConformalLatitude(ell, chi)
		if err != nil {
			return 0, 0, err
		}
		return phi, pp.Lam0 + lamP, nil
	}

	class := Classification{Surface: Cylindrical, Property: Conformal, Orientation: Oblique}
	return newPointProjection("swiss_oblique_mercator", pp, class, fwd, inv)
}

// NewGaussSchreiberTransverseMercator builds the spherical-then-mapped
// Gauss-Schreiber Transverse Mercator (GSTMERC): the ellipsoid is
// conformally mapped to a sphere via the isometric latitude (n=1, no
// tangent-point rescale), then a spherical transverse Mercator is
// applied (Snyder 1987 §8, spherical form).
func NewGaussSchreiberTransverseMercator(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	r := math.Sqrt(ell.MeridionalRadiusOfCurvature(pp.Phi0) * ell.TransverseRadiusOfCurvature(pp.Phi0))
	chi0 := gudermannian(ell.IsometricLatitude(pp.Phi0))

	fwd := func(phi, lam float64) (float64, float64, error) {
		chi := gudermannian(ell.IsometricLatitude(phi))
		b := math.Cos(chi) * math.Sin(lam-pp.Lam0)
		x := r * 0.5 * math.Log((1+b)/(1-b))
		y := r * (math.Atan2(math.Tan(chi), math.Cos(lam-pp.Lam0)) - chi0)
		return x, y, nil
	}

	inv := func(x, y float64) (float64, float64, error) {
		d := y/r + chi0
		chi := math.Asin(sphericalAzimuthalClamp(math.Sin(d) / math.Cosh(x/r)))
		lam := pp.Lam0 + math.Atan2(math.Sinh(x/r), math.Cos(d))
		l := math.Log(math.Tan(fortPi + chi/2))
		phi, err := ell.Latitude(l, 1e-11)
		if err != nil {
			return 0, 0, err
		}
		return phi, lam, nil
	}

	class := Classification{Surface: Cylindrical, Property: Conformal, Orientation: Transverse}
	return newPointProjection("gauss_schreiber_transverse_mercator", pp, class, fwd, inv)
}

// NewObliqueMercator builds the Hotine Oblique Mercator (EPSG Guidance
// Note 7-2 §1.3.8 — rectified skew orthomorphic), using
// azimuth_of_initial_line and angle_rectified_to_oblique. No (uc, vc)
// offset to the projection centre is applied: (u, v) are measured from
// the natural origin of the initial line, as in EPSG's Variant A, and
// only the false easting/northing are added.
func NewObliqueMercator(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	if pp.GammaC == 0 {
		pp.GammaC = pp.Azimuth
	}
	e := ell.e
	e2 := ell.e2
	a := ell.a

	sp0, cp0 := math.Sin(pp.Phi0), math.Cos(pp.Phi0)
	b := math.Sqrt(1 + e2*cp0*cp0*cp0*cp0/(1-e2))
	bigA := a * b * math.Sqrt(1-e2) / (1 - e2*sp0*sp0)
	t0 := tsfn(pp.Phi0, sp0, e)
	d := b * math.Sqrt(1-e2) / (cp0 * math.Sqrt(1-e2*sp0*sp0))
	dSign := 1.0
	if pp.Phi0 < 0 {
		dSign = -1.0
	}
	f := d + dSign*math.Sqrt(math.Max(d*d-1, 0))
	bigE := f * math.Pow(t0, b)
	gamma0 := math.Asin(sphericalAzimuthalClamp(math.Sin(pp.Azimuth) / d))
	g := (f - 1/f) / 2
	lam0Line := pp.Lam0 - math.Asin(sphericalAzimuthalClamp(g*math.Tan(gamma0)))/b

	fwd := func(phi, lam float64) (float64, float64, error) {
		t := tsfn(phi, math.Sin(phi), e)
		q := bigE / math.Pow(t, b)
		s := (q - 1/q) / 2
		tt := (q + 1/q) / 2
		v := math.Sin(b * (lam - lam0Line))
		u := (-v*math.Cos(gamma0) + s*math.Sin(gamma0)) / tt

		vv := bigA * math.Log((1-u)/(1+u)) / (2 * b)
		uu := bigA * math.Atan2(s*math.Cos(gamma0)+v*math.Sin(gamma0), math.Cos(b*(lam-lam0Line))) / b

		x := vv*math.Cos(pp.GammaC) + uu*math.Sin(pp.GammaC)
		y := uu*math.Cos(pp.GammaC) - vv*math.Sin(pp.GammaC)
		return x, y, nil
	}

	inv := func(x, y float64) (float64, float64, error) {
		vv := x*math.Cos(pp.GammaC) - y*math.Sin(pp.GammaC)
		uu := x*math.Sin(pp.GammaC) + y*math.Cos(pp.GammaC)

		qP := math.Exp(-b * vv / bigA)
		sP := (qP - 1/qP) / 2
		tP := (qP + 1/qP) / 2
		vP := math.Sin(b * uu / bigA)
		uP := (vP*math.Cos(gamma0) + sP*math.Sin(gamma0)) / tP

		tVal := math.Pow(bigE/math.Sqrt((1+uP)/(1-uP)), 1/b)
		phi, err := phi2(e, tVal)
		if err != nil {
			return 0, 0, err
		}
		lam := lam0Line - math.Atan2(sP*math.Cos(gamma0)-vP*math.Sin(gamma0), math.Cos(b*uu/bigA))/b
		return phi, lam, nil
	}

	class := Classification{Surface: Cylindrical, Property: Conformal, Orientation: Oblique}
	return newPointProjection("oblique_mercator", pp, class, fwd, inv)
}
