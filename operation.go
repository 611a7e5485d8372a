package cts

// Tuple is a coordinate tuple, always addressed in (x1, x2, x3, ...)
// order; which axis each slot denotes (longitude/latitude/height,
// easting/northing, X/Y/Z) depends on the operation. Operations read and
// return Tuples rather than mutating shared arrays, per spec.md §9's
// redesign note ("eliminate in-place writes through shared arrays").
type Tuple []float64

// Clone returns an independent copy of t.
func (t Tuple) Clone() Tuple {
	out := make(Tuple, len(t))
	copy(out, t)
	return out
}

// Operation is a coordinate operation: a value object with an input
// arity, a forward transform, and an inverse, per spec.md §3/§4.2.
type Operation interface {
	// Name identifies the operation for diagnostics and equality.
	Name() string
	// Arity is the minimum tuple length this operation requires.
	Arity() int
	// Forward transforms t and returns a new tuple of the same or a
	// different arity. A 3D operation given a 2D tuple treats the
	// missing third component as 0.0; a NaN third component is also
	// treated as 0.0 (spec.md §4.2).
	Forward(t Tuple) (Tuple, error)
	// Inverse returns the operation's algebraic inverse, or a
	// NonInvertibleError when none exists.
	Inverse() (Operation, error)
	// IsIdentity reports whether this operation is the identity,
	// allowing sequences to collapse it away.
	IsIdentity() bool
}

// normalizeArity pads t with zeros (or replaces a NaN third component
// with 0.0) up to n components, failing with CoordinateDimensionError if
// t is shorter than n-1 (i.e. missing more than the allowed-to-default
// height component), per spec.md §4.2.
func normalizeArity(name string, t Tuple, n int) (Tuple, error) {
	if len(t) >= n {
		out := t.Clone()
		if n == 3 && len(out) >= 3 {
			if out[2] != out[2] { // NaN
				out[2] = 0
			}
		}
		return out, nil
	}
	if n-len(t) > 1 {
		return nil, NewCoordinateDimensionError(name, n, len(t))
	}
	out := make(Tuple, n)
	copy(out, t)
	return out, nil
}

// identityOp is the identity operation: idempotent, self-inverse, and
// observationally a no-op under composition (spec.md §4.2).
type identityOp struct {
	arity int
}

// Identity returns the identity operation of the given arity.
func Identity(arity int) Operation {
	if arity <= 0 {
		arity = 2
	}
	return identityOp{arity: arity}
}

func (identityOp) Name() string      { return "identity" }
func (o identityOp) Arity() int      { return o.arity }
func (o identityOp) IsIdentity() bool { return true }

func (o identityOp) Forward(t Tuple) (Tuple, error) {
	out, err := normalizeArity(o.Name(), t, o.arity)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (o identityOp) Inverse() (Operation, error) { return o, nil }
