package cts

// Surface classifies the developable surface a projection conceptually
// unrolls the ellipsoid onto (spec.md §3).
type Surface int

const (
	Azimuthal Surface = iota
	Conical
	Cylindrical
	Pseudocylindrical
	Pseudoconical
	Polyconical
	Hybrid
	Miscellaneous
	Retroazimuthal
)

// Property classifies what a projection preserves (spec.md §3).
type Property int

const (
	Conformal Property = iota
	EqualArea
	Equidistant
	Aphylactic
	Gnomonic
)

// Orientation classifies how the developable surface is placed against
// the ellipsoid (spec.md §3).
type Orientation int

const (
	Oblique Orientation = iota
	Secant
	Tangent
	Transverse
)

// Classification is a projection's self-reported (surface, property,
// orientation) triple.
type Classification struct {
	Surface     Surface
	Property    Property
	Orientation Orientation
}

// Recognized projection parameter keys (spec.md §4.4 table).
const (
	ParamCentralMeridian          = "central_meridian"
	ParamLatitudeOfOrigin         = "latitude_of_origin"
	ParamStandardParallel1        = "standard_parallel_1"
	ParamStandardParallel2        = "standard_parallel_2"
	ParamLatitudeOfTrueScale      = "latitude_of_true_scale"
	ParamAzimuthOfInitialLine     = "azimuth_of_initial_line"
	ParamAngleRectifiedToOblique  = "angle_rectified_to_oblique"
	ParamScaleFactor              = "scale_factor"
	ParamFalseEasting             = "false_easting"
	ParamFalseNorthing            = "false_northing"
)

// ProjectionParams holds the common subset of a projection's named
// parameters, already canonicalized to radians/meters, plus the
// ellipsoid it is defined against (spec.md §3: "A coordinate operation
// specialized by (ellipsoid, named-parameter map)").
type ProjectionParams struct {
	Ellipsoid      *Ellipsoid
	Lam0           float64 // central_meridian
	Phi0           float64 // latitude_of_origin
	Phi1           float64 // standard_parallel_1
	Phi2           float64 // standard_parallel_2
	LatTS          float64 // latitude_of_true_scale
	Azimuth        float64 // azimuth_of_initial_line
	GammaC         float64 // angle_rectified_to_oblique
	K0             float64 // scale_factor, default 1
	FalseEasting   float64
	FalseNorthing  float64
}

// parseProjectionParams reads the common parameter keys from p, leaving
// fields at their zero value (or K0=1) when absent, per spec.md §4.4.
func parseProjectionParams(ell *Ellipsoid, p *ParamMap) ProjectionParams {
	pp := ProjectionParams{Ellipsoid: ell, K0: 1}
	if v, ok := p.Degrees(ParamCentralMeridian); ok {
		pp.Lam0 = v
	}
	if v, ok := p.Degrees(ParamLatitudeOfOrigin); ok {
		pp.Phi0 = v
	}
	if v, ok := p.Degrees(ParamStandardParallel1); ok {
		pp.Phi1 = v
	}
	if v, ok := p.Degrees(ParamStandardParallel2); ok {
		pp.Phi2 = v
	}
	if v, ok := p.Degrees(ParamLatitudeOfTrueScale); ok {
		pp.LatTS = v
	}
	if v, ok := p.Degrees(ParamAzimuthOfInitialLine); ok {
		pp.Azimuth = v
	}
	if v, ok := p.Degrees(ParamAngleRectifiedToOblique); ok {
		pp.GammaC = v
	}
	if v, ok := p.Float(ParamScaleFactor); ok {
		pp.K0 = v
	}
	if v, ok := p.Float(ParamFalseEasting); ok {
		pp.FalseEasting = v
	}
	if v, ok := p.Float(ParamFalseNorthing); ok {
		pp.FalseNorthing = v
	}
	return pp
}

// Projection is a coordinate operation specialized by an ellipsoid and
// a named parameter set, additionally able to classify itself (spec.md
// §3/§4.4). Every concrete projection in proj_*.go implements this in
// addition to Operation.
type Projection interface {
	Operation
	Params() ProjectionParams
	Classify() Classification
}

// clampNearPole clamps |phi| to at most 85 degrees from the equator
// where several cylindrical projections' formulas diverge at the pole
// (spec.md §4.4 "Edge cases").
func clampNearPole(phi float64) float64 {
	const limit = 85 * d2r
	if phi > limit {
		return limit
	}
	if phi < -limit {
		return -limit
	}
	return phi
}

// forwardPoint and inversePoint are the 2D (phi,lambda)<->(E,N) shape
// most projections implement; pointProjection adapts that shape, plus a
// common scale-factor, false-easting/northing and Arity()==2 contract, to the
// Operation interface so every proj_*.go file only has to write the
// mathematically interesting part.
type forwardPoint func(phi, lam float64) (e, n float64, err error)
type inversePoint func(e, n float64) (phi, lam float64, err error)

type pointProjection struct {
	name    string
	params  ProjectionParams
	class   Classification
	fwd     forwardPoint
	inv     inversePoint
}

func newPointProjection(name string, params ProjectionParams, class Classification, fwd forwardPoint, inv inversePoint) *pointProjection {
	return &pointProjection{name: name, params: params, class: class, fwd: fwd, inv: inv}
}

func (p *pointProjection) Name() string               { return p.name }
func (p *pointProjection) Arity() int                 { return 2 }
func (p *pointProjection) IsIdentity() bool           { return false }
func (p *pointProjection) Params() ProjectionParams   { return p.params }
func (p *pointProjection) Classify() Classification   { return p.class }

func (p *pointProjection) Forward(t Tuple) (Tuple, error) {
	out, err := normalizeArity(p.name, t, 2)
	if err != nil {
		return nil, err
	}
	e, n, err := p.fwd(out[0], out[1])
	if err != nil {
		return nil, err
	}
	e = e*p.params.K0 + p.params.FalseEasting
	n = n*p.params.K0 + p.params.FalseNorthing
	result := out.Clone()
	result[0], result[1] = e, n
	return result, nil
}

func (p *pointProjection) Inverse() (Operation, error) {
	if p.inv == nil {
		return nil, NewNonInvertibleError(p.name, "no inverse defined")
	}
	return &inversePointProjection{forward: p}, nil
}

// inversePointProjection is the sibling value object referencing the
// same parameter set as its forward projection, satisfying spec.md
// §4.4's "inverse().inverse() == self" requirement without a class
// hierarchy (spec.md §9's anti-pattern note).
type inversePointProjection struct {
	forward *pointProjection
}

func (p *inversePointProjection) Name() string             { return p.forward.name + ".inverse" }
func (p *inversePointProjection) Arity() int               { return 2 }
func (p *inversePointProjection) IsIdentity() bool         { return false }
func (p *inversePointProjection) Params() ProjectionParams { return p.forward.params }
func (p *inversePointProjection) Classify() Classification { return p.forward.class }

func (p *inversePointProjection) Forward(t Tuple) (Tuple, error) {
	out, err := normalizeArity(p.Name(), t, 2)
	if err != nil {
		return nil, err
	}
	e := (out[0] - p.forward.params.FalseEasting) / p.forward.params.K0
	n := (out[1] - p.forward.params.FalseNorthing) / p.forward.params.K0
	phi, lam, err := p.forward.inv(e, n)
	if err != nil {
		return nil, err
	}
	result := out.Clone()
	result[0], result[1] = phi, lam
	return result, nil
}

func (p *inversePointProjection) Inverse() (Operation, error) { return p.forward, nil }

// computeM is the meridional-distance integral (EPSG Guidance Note 7-2
// eq. for M). It has no callers: the projections call
// Ellipsoid.ArcFromLat directly.
func computeM(ell *Ellipsoid, phi float64) float64 {
	return ell.ArcFromLat(phi)
}

// sphericalAzimuthalClamp guards asin domain errors caused by
// floating-point overshoot at exactly +-1, used by several azimuthal
// and oblique projections.
func sphericalAzimuthalClamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
