package cts

import "math"

// --- Longitude rotation ----------------------------------------------------

// longitudeRotation subtracts delta (radians) from the longitude
// component (index 1, i.e. lambda in a (phi, lambda, h) tuple), per
// spec.md §4.2.
type longitudeRotation struct {
	delta float64
}

// NewLongitudeRotation returns a longitude-rotation operation by delta
// radians: lambda <- lambda - delta.
func NewLongitudeRotation(delta float64) Operation {
	if delta == 0 {
		return Identity(2)
	}
	return longitudeRotation{delta: delta}
}

func (longitudeRotation) Name() string       { return "longitude_rotation" }
func (longitudeRotation) Arity() int         { return 2 }
func (longitudeRotation) IsIdentity() bool   { return false }

func (o longitudeRotation) Forward(t Tuple) (Tuple, error) {
	out, err := normalizeArity(o.Name(), t, 2)
	if err != nil {
		return nil, err
	}
	out[1] -= o.delta
	return out, nil
}

func (o longitudeRotation) Inverse() (Operation, error) {
	return NewLongitudeRotation(-o.delta), nil
}

// --- Axis swap --------------------------------------------------------------

// axisSwap swaps the first two components of a tuple.
type axisSwap struct{}

// NewAxisSwap returns an operation that swaps the 2D prefix of a tuple.
func NewAxisSwap() Operation { return axisSwap{} }

func (axisSwap) Name() string     { return "axis_swap" }
func (axisSwap) Arity() int       { return 2 }
func (axisSwap) IsIdentity() bool { return false }

func (o axisSwap) Forward(t Tuple) (Tuple, error) {
	out, err := normalizeArity(o.Name(), t, 2)
	if err != nil {
		return nil, err
	}
	out[0], out[1] = out[1], out[0]
	return out, nil
}

func (o axisSwap) Inverse() (Operation, error) { return o, nil }

// --- Unit scale ---------------------------------------------------------

// unitScale multiplies component index by factor.
type unitScale struct {
	component int
	factor    float64
}

// NewUnitScale scales tuple component index by factor.
func NewUnitScale(component int, factor float64) Operation {
	if factor == 1 {
		return Identity(component + 1)
	}
	return unitScale{component: component, factor: factor}
}

func (o unitScale) Name() string     { return "unit_scale" }
func (o unitScale) Arity() int       { return o.component + 1 }
func (o unitScale) IsIdentity() bool { return false }

func (o unitScale) Forward(t Tuple) (Tuple, error) {
	out, err := normalizeArity(o.Name(), t, o.component+1)
	if err != nil {
		return nil, err
	}
	out[o.component] *= o.factor
	return out, nil
}

func (o unitScale) Inverse() (Operation, error) {
	return NewUnitScale(o.component, 1/o.factor), nil
}

// --- Geocentric translation (3-parameter) -----------------------------------

// geocentricTranslation is the pure-translation special case of
// Bursa-Wolf: (X,Y,Z) <- (X+tx, Y+ty, Z+tz), spec.md §4.2/Glossary.
type geocentricTranslation struct {
	tx, ty, tz float64
}

// NewGeocentricTranslation returns a 3-parameter geocentric shift.
func NewGeocentricTranslation(tx, ty, tz float64) Operation {
	if tx == 0 && ty == 0 && tz == 0 {
		return Identity(3)
	}
	return geocentricTranslation{tx: tx, ty: ty, tz: tz}
}

func (geocentricTranslation) Name() string     { return "geocentric_translation" }
func (geocentricTranslation) Arity() int       { return 3 }
func (geocentricTranslation) IsIdentity() bool { return false }

func (o geocentricTranslation) Forward(t Tuple) (Tuple, error) {
	out, err := normalizeArity(o.Name(), t, 3)
	if err != nil {
		return nil, err
	}
	out[0] += o.tx
	out[1] += o.ty
	out[2] += o.tz
	return out, nil
}

func (o geocentricTranslation) Inverse() (Operation, error) {
	return NewGeocentricTranslation(-o.tx, -o.ty, -o.tz), nil
}

// --- 7-parameter Helmert (Bursa-Wolf, position-vector convention) ----------

// Helmert7 is the 7-parameter Bursa-Wolf transform: 3 translations
// (meters), 3 small rotations (radians) and 1 scale (ppm), using the
// position-vector sign convention, grounded in
// paulcager-osgridref/latlon-ellipsoidal-datum.go's applyTransform and
// the ctessum-geom-proj vendor datum.go geocentric_to_wgs84/
// geocentric_from_wgs84 pair.
type Helmert7 struct {
	Tx, Ty, Tz    float64 // meters
	Rx, Ry, Rz    float64 // radians
	ScalePPM      float64 // parts-per-million
}

// NewHelmert7 builds a 7-parameter Helmert transform from translations
// in meters, rotations in radians, and scale in ppm.
func NewHelmert7(tx, ty, tz, rx, ry, rz, scalePPM float64) Operation {
	return Helmert7{Tx: tx, Ty: ty, Tz: tz, Rx: rx, Ry: ry, Rz: rz, ScalePPM: scalePPM}
}

func (Helmert7) Name() string { return "helmert_7param" }
func (Helmert7) Arity() int   { return 3 }
func (h Helmert7) IsIdentity() bool {
	return h.Tx == 0 && h.Ty == 0 && h.Tz == 0 && h.Rx == 0 && h.Ry == 0 && h.Rz == 0 && h.ScalePPM == 0
}

func (h Helmert7) Forward(t Tuple) (Tuple, error) {
	out, err := normalizeArity(h.Name(), t, 3)
	if err != nil {
		return nil, err
	}
	x1, y1, z1 := out[0], out[1], out[2]
	s := h.ScalePPM/1e6 + 1
	out[0] = h.Tx + x1*s - y1*h.Rz + z1*h.Ry
	out[1] = h.Ty + x1*h.Rz + y1*s - z1*h.Rx
	out[2] = h.Tz - x1*h.Ry + y1*h.Rx + z1*s
	return out, nil
}

// Inverse returns the Helmert7 obtained by negating all seven
// parameters. This is exact only to first order in the rotations and
// scale; for large rotations it is not the true algebraic inverse
// (spec.md §9 Open Question — documented here rather than silently
// assumed exact).
func (h Helmert7) Inverse() (Operation, error) {
	return Helmert7{Tx: -h.Tx, Ty: -h.Ty, Tz: -h.Tz, Rx: -h.Rx, Ry: -h.Ry, Rz: -h.Rz, ScalePPM: -h.ScalePPM}, nil
}

// --- Geographic <-> Geocentric ----------------------------------------------

// geographic2Geocentric converts (phi, lambda, h) to (X, Y, Z) for a
// given ellipsoid, spec.md §4.2.
type geographic2Geocentric struct {
	ell *Ellipsoid
}

// NewGeographic2Geocentric returns the forward geographic->geocentric
// conversion for ell.
func NewGeographic2Geocentric(ell *Ellipsoid) Operation {
	return geographic2Geocentric{ell: ell}
}

func (geographic2Geocentric) Name() string     { return "geographic_to_geocentric" }
func (geographic2Geocentric) Arity() int       { return 3 }
func (geographic2Geocentric) IsIdentity() bool { return false }

func (o geographic2Geocentric) Forward(t Tuple) (Tuple, error) {
	out, err := normalizeArity(o.Name(), t, 3)
	if err != nil {
		return nil, err
	}
	phi, lam, h := out[0], out[1], out[2]
	n := o.ell.TransverseRadiusOfCurvature(phi)
	cp, sp := math.Cos(phi), math.Sin(phi)
	cl, sl := math.Cos(lam), math.Sin(lam)
	x := (n + h) * cp * cl
	y := (n + h) * cp * sl
	z := (n*(1-o.ell.e2) + h) * sp
	return Tuple{x, y, z}, nil
}

func (o geographic2Geocentric) Inverse() (Operation, error) {
	return geocentric2Geographic{ell: o.ell}, nil
}

// geocentric2Geographic is the inverse of geographic2Geocentric: given
// (X,Y,Z), recovers (phi, lambda, h) by fixed-point iteration to
// tolerance 1e-11 rad (spec.md §4.2).
type geocentric2Geographic struct {
	ell *Ellipsoid
}

// NewGeocentric2Geographic returns the inverse geocentric->geographic
// conversion for ell.
func NewGeocentric2Geographic(ell *Ellipsoid) Operation {
	return geocentric2Geographic{ell: ell}
}

func (geocentric2Geographic) Name() string     { return "geocentric_to_geographic" }
func (geocentric2Geographic) Arity() int       { return 3 }
func (geocentric2Geographic) IsIdentity() bool { return false }

func (o geocentric2Geographic) Forward(t Tuple) (Tuple, error) {
	out, err := normalizeArity(o.Name(), t, 3)
	if err != nil {
		return nil, err
	}
	x, y, z := out[0], out[1], out[2]
	e2 := o.ell.e2

	p := math.Sqrt(x*x + y*y)
	lam := math.Atan2(y, x)

	// initial estimate, then Hannover/Bowring-style fixed-point
	// iteration on the geodetic latitude, grounded in ctessum-geom-proj
	// vendor datum.go's geocentric_to_geodetic.
	phi := math.Atan2(z, p*(1-e2))
	for i := 0; i < 20; i++ {
		n := o.ell.TransverseRadiusOfCurvature(phi)
		h := p/math.Cos(phi) - n
		nextPhi := math.Atan2(z, p*(1-e2*n/(n+h)))
		if math.Abs(nextPhi-phi) < 1e-11 {
			phi = nextPhi
			break
		}
		phi = nextPhi
		if i == 19 {
			return nil, NewArithmeticDivergenceError("geocentric_to_geographic")
		}
	}
	n := o.ell.TransverseRadiusOfCurvature(phi)
	h := p/math.Cos(phi) - n

	return Tuple{phi, lam, h}, nil
}

func (o geocentric2Geographic) Inverse() (Operation, error) {
	return geographic2Geocentric{ell: o.ell}, nil
}

// --- Grid-based shift --------------------------------------------------

// GridInterpolator is the abstract collaborator a grid-file reader (out
// of scope, spec.md §1/§6) implements: given a location, return a shift
// vector, or report the location is outside the grid's domain.
type GridInterpolator interface {
	Lookup(lat, lon float64) (dlat, dlon, dh float64, err error)
}

// gridShift applies a GridInterpolator's shift vector to a geographic
// tuple. A failing lookup (e.g. OutOfDomain) is returned wrapped in a
// DomainError; Inverse reports NonInvertible when no reverse grid is
// supplied, per spec.md §4.5.
type gridShift struct {
	grid    GridInterpolator
	inverse GridInterpolator // may be nil
}

// NewGridShift wraps grid (and optionally its inverse) as an Operation.
func NewGridShift(grid, inverseGrid GridInterpolator) Operation {
	return gridShift{grid: grid, inverse: inverseGrid}
}

func (gridShift) Name() string     { return "grid_shift" }
func (gridShift) Arity() int       { return 2 }
func (gridShift) IsIdentity() bool { return false }

func (o gridShift) Forward(t Tuple) (Tuple, error) {
	out, err := normalizeArity(o.Name(), t, 2)
	if err != nil {
		return nil, err
	}
	dlat, dlon, _, err := o.grid.Lookup(out[0], out[1])
	if err != nil {
		return nil, NewDomainError(o.Name(), out[1], out[0], err)
	}
	out[0] += dlat
	out[1] += dlon
	return out, nil
}

func (o gridShift) Inverse() (Operation, error) {
	if o.inverse == nil {
		return nil, NewNonInvertibleError(o.Name(), "no inverse grid supplied")
	}
	return gridShift{grid: o.inverse, inverse: o.grid}, nil
}
