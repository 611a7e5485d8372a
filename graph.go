package cts

// Resolve is the public entry point to the transformation graph
// resolver (spec.md §4.3/"Transformation Graph Resolver" component): it
// returns a single best operation transforming geocentric coordinates
// from source to target, selecting the first candidate
// GeocentricTransformations reports (a direct edge when one exists,
// otherwise the WGS84-pivoted composition).
func Resolve(source, target *GeodeticDatum) (Operation, error) {
	ops, err := source.GeocentricTransformations(target)
	if err != nil {
		return nil, err
	}
	if len(ops) == 0 {
		return nil, NewNoPathError(source.Name, target.Name)
	}
	return ops[0], nil
}

// ResolveGeographic is Resolve's geographic-coordinate counterpart,
// operating on (phi, lambda[, h]) tuples rather than (X, Y, Z).
func ResolveGeographic(source, target *GeodeticDatum) (Operation, error) {
	ops, err := source.GeographicTransformations(target)
	if err != nil {
		return nil, err
	}
	if len(ops) == 0 {
		return nil, NewNoPathError(source.Name, target.Name)
	}
	return ops[0], nil
}
