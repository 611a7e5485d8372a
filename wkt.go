package cts

import "fmt"

// AsSpheroidWKT renders e in the WKT SPHEROID[...] grammar of spec.md
// §6: name, semi-major axis and inverse flattening. No AUTHORITY
// clause is emitted: an Ellipsoid carries no identifier.
func (e *Ellipsoid) AsSpheroidWKT() string {
	return fmt.Sprintf("SPHEROID[%q,%.12g,%.12g]", e.Name(), e.A(), e.InverseFlattening())
}

// AsWKT renders pm in the WKT PRIMEM[...] grammar: name and longitude
// in degrees east of Greenwich.
func (pm PrimeMeridian) AsWKT() string {
	return fmt.Sprintf("PRIMEM[%q,%.12g]", pm.Name, pm.LongitudeRad*r2d)
}

// AsDatumWKT renders d in the WKT DATUM[...] grammar, including a
// TOWGS84[...] clause when d carries a static Helmert7 seed edge and an
// AUTHORITY clause when d's identifier is known.
func (d *GeodeticDatum) AsDatumWKT() string {
	s := fmt.Sprintf("DATUM[%q,%s", d.Name, d.Ellipsoid.AsSpheroidWKT())
	if h, ok := d.ToWGS84.(Helmert7); ok {
		s += fmt.Sprintf(",TOWGS84[%.8g,%.8g,%.8g,%.8g,%.8g,%.8g,%.8g]",
			h.Tx, h.Ty, h.Tz, h.Rx*r2d*3600, h.Ry*r2d*3600, h.Rz*r2d*3600, h.ScalePPM)
	}
	if id := d.Identifier(); id.Authority != "" {
		s += fmt.Sprintf(",AUTHORITY[%q,%q]", id.Authority, id.Code)
	}
	return s + "]"
}

// AsWKT renders v in the WKT VERT_DATUM[...] grammar: name and its
// ISO 19111 vertical datum type code (spec.md §6).
func (v *VerticalDatum) AsWKT() string {
	return fmt.Sprintf("VERT_DATUM[%q,%d]", v.Name, v.Type.wkt2005Code())
}
