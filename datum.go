package cts

import (
	"reflect"
	"sync"
)

// WGS84Datum is the pivot datum used by the resolver whenever no direct
// edge exists between two other datums (spec.md §4.3).
var WGS84Datum = &GeodeticDatum{
	Name:          "WGS84",
	id:            NewIdentifier("EPSG", "6326"),
	Ellipsoid:     WGS84Ellipsoid,
	PrimeMeridian: Greenwich,
	Extent:        "World",
	Origin:        "World Geodetic System 1984",
	geocentric:    make(map[string]geocentricEdge),
	geographic:    make(map[string]Operation),
}

// GeodeticDatum ties an ellipsoid and prime meridian to a named origin,
// and owns the two transformation-graph maps (geocentric edges and
// their derived geographic sequences) described in spec.md §4.3. The
// graph is the only mutable shared state in the library (spec.md §5),
// guarded by a single coarse per-datum lock, grounded in
// paulcager-osgridref/latlon-ellipsoidal-datum.go's Datum/ConvertDatum
// pivot-through-WGS84 pattern.
type GeodeticDatum struct {
	Name          string
	id            Identifier
	Ellipsoid     *Ellipsoid
	PrimeMeridian PrimeMeridian
	Extent        string
	Origin        string
	Epoch         string

	// ToWGS84 is the static seed edge recorded at construction, if any.
	ToWGS84 Operation

	mu         sync.RWMutex
	geocentric map[string]geocentricEdge
	geographic map[string]Operation
}

type geocentricEdge struct {
	target *GeodeticDatum
	op     Operation
}

// NewGeodeticDatum builds a datum and, if toWGS84 is non-nil, seeds the
// bidirectional geocentric/geographic edge to WGS84 (spec.md §4.3:
// "initial edges are seeded from the static toWGS84 attached to each
// well-known datum").
func NewGeodeticDatum(name string, id Identifier, ell *Ellipsoid, pm PrimeMeridian, extent, origin, epoch string, toWGS84 Operation) *GeodeticDatum {
	d := &GeodeticDatum{
		Name:          name,
		id:            id,
		Ellipsoid:     ell,
		PrimeMeridian: pm,
		Extent:        extent,
		Origin:        origin,
		Epoch:         epoch,
		ToWGS84:       toWGS84,
		geocentric:    make(map[string]geocentricEdge),
		geographic:    make(map[string]Operation),
	}
	if toWGS84 != nil && d != WGS84Datum {
		_ = d.AddGeocentricEdge(WGS84Datum, toWGS84, true)
	}
	return d
}

// Identifier returns d's opaque authority+code key.
func (d *GeodeticDatum) Identifier() Identifier { return d.id }

// Equal implements spec.md §3's datum equality: equal identifiers, or
// equal ellipsoid + equal prime meridian + equal-or-identity-equivalent
// toWGS84 + equal extent.
func (d *GeodeticDatum) Equal(other *GeodeticDatum) bool {
	if d == other {
		return true
	}
	if d.id.Authority != "" && d.id.Equal(other.id) {
		return true
	}
	if !d.Ellipsoid.Equal(other.Ellipsoid) || !d.PrimeMeridian.Equal(other.PrimeMeridian) {
		return false
	}
	if d.Extent != other.Extent {
		return false
	}
	return operationsEquivalent(d.ToWGS84, other.ToWGS84)
}

func operationsEquivalent(a, b Operation) bool {
	aID := a == nil || a.IsIdentity()
	bID := b == nil || b.IsIdentity()
	if aID || bID {
		return aID == bID
	}
	return reflect.DeepEqual(a, b)
}

// AddGeocentricEdge implements the add-edge protocol of spec.md §4.3:
//
//  1. insert op into this.geocentric[target], no-op if already present;
//  2. mirror op's inverse onto target.geocentric[this] unless mirror is
//     false (the caller is itself the recursive mirroring call, which
//     prevents infinite recursion);
//  3. for a newly inserted op, derive and store the corresponding
//     geographic sequence on both datums.
func (d *GeodeticDatum) AddGeocentricEdge(target *GeodeticDatum, op Operation, mirror bool) error {
	key := target.id.Key()
	d.mu.Lock()
	_, exists := d.geocentric[key]
	if !exists {
		d.geocentric[key] = geocentricEdge{target: target, op: op}
	}
	d.mu.Unlock()

	if !exists {
		d.storeGeographic(target, op)
	}

	if mirror {
		if _, hasReverse := target.geocentricEdge(d); !hasReverse {
			inv, err := op.Inverse()
			if err == nil {
				_ = target.AddGeocentricEdge(d, inv, false)
			} else {
				defaultLogger.Printf("cts: no inverse edge from %s to %s: %v", target.Name, d.Name, err)
			}
			// a missing inverse is not an error here: it is logged and the
			// edge simply not added.
		}
	}
	return nil
}

func (d *GeodeticDatum) geocentricEdge(target *GeodeticDatum) (geocentricEdge, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.geocentric[target.id.Key()]
	return e, ok
}

func (d *GeodeticDatum) storeGeographic(target *GeodeticDatum, op Operation) {
	seq := d.deriveGeographic(target, op)
	d.mu.Lock()
	d.geographic[target.id.Key()] = seq
	d.mu.Unlock()

	invSeq, err := seq.Inverse()
	if err == nil {
		target.mu.Lock()
		target.geographic[d.id.Key()] = invSeq
		target.mu.Unlock()
	}
}

func (d *GeodeticDatum) deriveGeographic(target *GeodeticDatum, op Operation) Operation {
	if op.IsIdentity() && d.Ellipsoid.Equal(target.Ellipsoid) {
		tgtRot, _ := NewLongitudeRotation(target.PrimeMeridian.LongitudeRad).Inverse()
		return NewSequence(NewLongitudeRotation(d.PrimeMeridian.LongitudeRad), tgtRot)
	}
	tgtRot, _ := NewLongitudeRotation(target.PrimeMeridian.LongitudeRad).Inverse()
	return NewSequence(
		NewLongitudeRotation(d.PrimeMeridian.LongitudeRad),
		NewGeographic2Geocentric(d.Ellipsoid),
		op,
		NewGeocentric2Geographic(target.Ellipsoid),
		tgtRot,
	)
}

// GeocentricTransformations implements the resolve protocol of
// spec.md §4.3: a direct edge if one exists, else a WGS84-pivoted set
// of op1 . op2.inverse() candidates (collapsing identity shortcuts),
// else NoPathError.
func (d *GeodeticDatum) GeocentricTransformations(target *GeodeticDatum) ([]Operation, error) {
	if d.Equal(target) {
		return []Operation{Identity(3)}, nil
	}
	if e, ok := d.geocentricEdge(target); ok {
		return []Operation{e.op}, nil
	}

	op1, ok1 := d.geocentricEdge(WGS84Datum)
	op2, ok2 := target.geocentricEdge(WGS84Datum)
	if !ok1 || !ok2 {
		return nil, NewNoPathError(d.Name, target.Name)
	}

	switch {
	case op1.op.IsIdentity() && op2.op.IsIdentity():
		return []Operation{Identity(3)}, nil
	case op1.op.IsIdentity():
		inv, err := op2.op.Inverse()
		if err != nil {
			return nil, NewNoPathError(d.Name, target.Name)
		}
		return []Operation{inv}, nil
	case op2.op.IsIdentity():
		return []Operation{op1.op}, nil
	}

	inv2, err := op2.op.Inverse()
	if err != nil {
		return nil, NewNoPathError(d.Name, target.Name)
	}
	combined := NewSequence(op1.op, inv2)
	return []Operation{combined}, nil
}

// GeographicTransformations resolves a geographic-to-geographic path
// by the same protocol, preferring a stored derived sequence when
// present.
func (d *GeodeticDatum) GeographicTransformations(target *GeodeticDatum) ([]Operation, error) {
	if d.Equal(target) {
		return []Operation{Identity(2)}, nil
	}
	d.mu.RLock()
	seq, ok := d.geographic[target.id.Key()]
	d.mu.RUnlock()
	if ok {
		return []Operation{seq}, nil
	}
	geo, err := d.GeocentricTransformations(target)
	if err != nil {
		return nil, err
	}
	out := make([]Operation, len(geo))
	for i, op := range geo {
		out[i] = d.deriveGeographic(target, op)
	}
	return out, nil
}

// VerticalDatumType classifies a VerticalDatum (spec.md §3).
type VerticalDatumType int

const (
	OtherSurfaceVertical VerticalDatumType = iota
	OrthometricVertical
	EllipsoidalVertical
	BarometricVertical
	GeoidalVertical
	DepthVertical
)

// wkt2005Code maps a VerticalDatumType to the ISO 19111 / WKT vertical
// datum type code (spec.md §6).
func (t VerticalDatumType) wkt2005Code() int {
	switch t {
	case OtherSurfaceVertical:
		return 2000
	case OrthometricVertical:
		return 2001
	case EllipsoidalVertical:
		return 2002
	case BarometricVertical:
		return 2003
	case GeoidalVertical:
		return 2005
	case DepthVertical:
		return 2006
	default:
		return 2000
	}
}

// VerticalDatum is a height reference (spec.md §3). Its toWGS84 and
// prime meridian are delegated to AssociatedDatum when GridOp is set,
// modeling a vertical datum bound to a geographic one through a grid.
type VerticalDatum struct {
	Name            string
	Type            VerticalDatumType
	GridOp          Operation // altitude -> ellipsoidal height, optional
	AssociatedDatum *GeodeticDatum
	Ellipsoid       *Ellipsoid
}

// NewVerticalDatum builds a VerticalDatum.
func NewVerticalDatum(name string, t VerticalDatumType, gridOp Operation, associated *GeodeticDatum, ell *Ellipsoid) *VerticalDatum {
	return &VerticalDatum{Name: name, Type: t, GridOp: gridOp, AssociatedDatum: associated, Ellipsoid: ell}
}

// ToWGS84 delegates to the associated geodetic datum when a grid
// binding exists (spec.md §3), else reports NonInvertible.
func (v *VerticalDatum) ToWGS84() (Operation, error) {
	if v.GridOp == nil || v.AssociatedDatum == nil {
		return nil, NewNonInvertibleError("vertical_datum_to_wgs84", "no associated geodetic datum grid binding")
	}
	return v.AssociatedDatum.ToWGS84, nil
}

// PrimeMeridian delegates to the associated geodetic datum when a grid
// binding exists.
func (v *VerticalDatum) PrimeMeridian() (PrimeMeridian, bool) {
	if v.GridOp == nil || v.AssociatedDatum == nil {
		return PrimeMeridian{}, false
	}
	return v.AssociatedDatum.PrimeMeridian, true
}
