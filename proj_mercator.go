package cts

import "math"

// NewMercator1SP builds the Mercator 1SP / World Mercator projection
// (EPSG Guidance Note 7-2 §1.3.1). When latitude_of_true_scale is
// supplied instead of scale_factor, k0 is derived from it so that
// scale equals 1 along that parallel, grounded in
// samlecuyer-projectron/projections.go's Mercator (mathutil.go's msfn).
func NewMercator1SP(ell *Ellipsoid, p *ParamMap) Operation {
	pp := parseProjectionParams(ell, p)
	if _, hasK0 := p.Float(ParamScaleFactor); !hasK0 {
		if _, hasLatTS := p.Degrees(ParamLatitudeOfTrueScale); hasLatTS {
			sp := math.Sin(pp.LatTS)
			cp := math.Cos(pp.LatTS)
			pp.K0 = msfn(sp, cp, ell.e2)
		}
	}
	e := ell.e

	fwd := func(phi, lam float64) (float64, float64, error) {
		phi = clampNearPole(phi)
		x := ell.a * (lam - pp.Lam0)
		y := ell.a * tsfnToY(phi, e)
		return x, y, nil
	}
	inv := func(x, y float64) (float64, float64, error) {
		ts := math.Exp(-y / ell.a)
		phi, err := phi2(e, ts)
		if err != nil {
			return 0, 0, err
		}
		lam := x/ell.a + pp.Lam0
		return phi, lam, nil
	}
	class := Classification{Surface: Cylindrical, Property: Conformal, Orientation: Tangent}
	if pp.LatTS != 0 {
		class.Orientation = Secant
	}
	return newPointProjection("mercator_1sp", pp, class, fwd, inv)
}

// tsfnToY converts a geodetic latitude to the Mercator y/a ordinate via
// the isometric-latitude relation ln(1/tsfn).
func tsfnToY(phi, e float64) float64 {
	sp := math.Sin(phi)
	ts := tsfn(phi, sp, e)
	return -math.Log(ts)
}
