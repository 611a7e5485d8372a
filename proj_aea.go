package cts

import "math"

// qFunc is Snyder's q(phi) authalic-latitude auxiliary (1987 eq. 3-12),
// shared by Albers Equal Area and Lambert Azimuthal Equal Area.
func qFunc(sp, e float64) float64 {
	if e == 0 {
		return 2 * sp
	}
	return (1 - e*e) * (sp/(1-e*e*sp*sp) - (1/(2*e))*math.Log((1-e*sp)/(1+e*sp)))
}

// NewAlbersEqualArea builds the Albers Equal Area Conic projection
// (AEA), EPSG Guidance Note 7-2 §1.3.9 / Snyder 1987 §14.
func NewAlbersEqualArea(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	if pp.Phi2 == 0 && pp.Phi1 != 0 {
		pp.Phi2 = pp.Phi1
	}
	e := ell.e
	e2 := ell.e2
	a := ell.a

	m1 := math.Cos(pp.Phi1) / math.Sqrt(1-e2*math.Sin(pp.Phi1)*math.Sin(pp.Phi1))
	m2 := math.Cos(pp.Phi2) / math.Sqrt(1-e2*math.Sin(pp.Phi2)*math.Sin(pp.Phi2))
	q0 := qFunc(math.Sin(pp.Phi0), e)
	q1 := qFunc(math.Sin(pp.Phi1), e)
	q2 := qFunc(math.Sin(pp.Phi2), e)

	var n float64
	if pp.Phi1 == pp.Phi2 {
		n = math.Sin(pp.Phi1)
	} else {
		n = (m1*m1 - m2*m2) / (q2 - q1)
	}
	c := m1*m1 + n*q1
	rho0 := a * math.Sqrt(c-n*q0) / n

	fwd := func(phi, lam float64) (float64, float64, error) {
		q := qFunc(math.Sin(phi), e)
		rho := a * math.Sqrt(c-n*q) / n
		theta := n * (lam - pp.Lam0)
		x := rho * math.Sin(theta)
		y := rho0 - rho*math.Cos(theta)
		return x, y, nil
	}

	inv := func(x, y float64) (float64, float64, error) {
		dy := rho0 - y
		rho := math.Sqrt(x*x + dy*dy)
		theta := math.Atan2(x, dy)
		q := (c - (rho*n/a)*(rho*n/a)) / n
		lam := theta/n + pp.Lam0

		phi := math.Asin(sphericalAzimuthalClamp(q / 2))
		for i := 0; i < 10; i++ {
			spi := math.Sin(phi)
			cpi := math.Cos(phi)
			denom := (1 - e2*spi*spi)
			dphi := (denom * denom) / (2 * cpi) * (q/(1-e2) - spi/denom + (1/(2*e))*math.Log((1-e*spi)/(1+e*spi)))
			phi += dphi
			if math.Abs(dphi) < 1e-15 {
				break
			}
			if i == 9 {
				return 0, 0, NewArithmeticDivergenceError("albers_equal_area_inverse")
			}
		}
		return phi, lam, nil
	}

	class := Classification{Surface: Conical, Property: EqualArea, Orientation: Secant}
	if pp.Phi1 == pp.Phi2 {
		class.Orientation = Tangent
	}
	return newPointProjection("albers_equal_area", pp, class, fwd, inv)
}
