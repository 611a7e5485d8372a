package cts

import "math"

// NewEquidistantCylindrical builds Equidistant Cylindrical / Plate
// Carrée (EQC): parallels and meridians are equally spaced straight
// lines, scale true along latitude_of_true_scale (EPSG Guidance Note
// 7-2 §1.3.12), grounded in samlecuyer-projectron/projections.go's
// Equirectangular.
func NewEquidistantCylindrical(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	cosLatTS := math.Cos(pp.LatTS)
	if pp.LatTS == 0 {
		cosLatTS = 1
	}

	fwd := func(phi, lam float64) (float64, float64, error) {
		phi = clampNearPole(phi)
		x := ell.a * cosLatTS * (lam - pp.Lam0)
		y := ell.a * phi
		return x, y, nil
	}
	inv := func(x, y float64) (float64, float64, error) {
		phi := y / ell.a
		lam := x/(ell.a*cosLatTS) + pp.Lam0
		return phi, lam, nil
	}
	class := Classification{Surface: Cylindrical, Property: Equidistant, Orientation: Tangent}
	if pp.LatTS != 0 {
		class.Orientation = Secant
	}
	return newPointProjection("equidistant_cylindrical", pp, class, fwd, inv)
}

// NewMillerCylindrical builds the Miller Cylindrical projection (MILL),
// a compromise (aphylactic) rescaling of the Mercator y ordinate
// (Snyder 1987 §11).
func NewMillerCylindrical(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)

	fwd := func(phi, lam float64) (float64, float64, error) {
		phi = clampNearPole(phi)
		x := ell.a * (lam - pp.Lam0)
		y := ell.a * 1.25 * math.Log(math.Tan(fortPi+0.4*phi))
		return x, y, nil
	}
	inv := func(x, y float64) (float64, float64, error) {
		phi := 2.5*math.Atan(math.Exp(0.8*y/ell.a)) - 2.5*halfPi/2
		lam := x/ell.a + pp.Lam0
		return phi, lam, nil
	}
	class := Classification{Surface: Cylindrical, Property: Aphylactic, Orientation: Tangent}
	return newPointProjection("miller_cylindrical", pp, class, fwd, inv)
}

// NewCylindricalEqualArea builds the (Lambert/normal) Cylindrical Equal
// Area projection (CEA), scale true along latitude_of_true_scale
// (Snyder 1987 §10, spherical authalic-latitude form extended with the
// ellipsoid's authalic series via the isometric-latitude machinery).
func NewCylindricalEqualArea(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	e2 := ell.e2
	e := ell.e
	k0 := math.Cos(pp.LatTS) / math.Sqrt(1-e2*math.Sin(pp.LatTS)*math.Sin(pp.LatTS))

	qp := qFunc(1, e)

	fwd := func(phi, lam float64) (float64, float64, error) {
		sp := math.Sin(phi)
		if math.Abs(math.Abs(phi)-halfPi) < 1e-10 {
			sp = sign(phi)
		}
		q := qFunc(sp, e)
		x := ell.a * k0 * (lam - pp.Lam0)
		y := ell.a * q / (2 * k0)
		return x, y, nil
	}
	inv := func(x, y float64) (float64, float64, error) {
		// beta short-circuits at the poles, spec.md §4.4 "CEA inverse
		// short-circuits when |beta| = pi/2".
		beta := math.Asin(sphericalAzimuthalClamp(2 * y * k0 / (ell.a * qp)))
		if math.Abs(math.Abs(beta)-halfPi) < 1e-10 {
			phi := sign(beta) * halfPi
			lam := x/(ell.a*k0) + pp.Lam0
			return phi, lam, nil
		}
		phi := beta + (e2/3+31*e2*e2/180+517*e2*e2*e2/5040)*math.Sin(2*beta) +
			(23*e2*e2/360+251*e2*e2*e2/3780)*math.Sin(4*beta) +
			(761*e2*e2*e2/45360)*math.Sin(6*beta)
		lam := x/(ell.a*k0) + pp.Lam0
		return phi, lam, nil
	}
	class := Classification{Surface: Cylindrical, Property: EqualArea, Orientation: Tangent}
	if pp.LatTS != 0 {
		class.Orientation = Secant
	}
	return newPointProjection("cylindrical_equal_area", pp, class, fwd, inv)
}
