// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cts

import (
	"strconv"
	"strings"
)

// ParamMap is the canonical configuration carrier consumed by this
// library: a mapping parameter-name -> raw string value, exactly the
// shape an external PROJ-string/WKT/EPSG-registry parser (out of scope,
// spec.md §6) would hand the core. It generalizes the teacher's
// unexported paramset into the public surface SPEC_FULL.md §2.3
// describes, tracking which keys were actually consulted so unrecognized
// ones can be reported instead of silently vanishing.
type ParamMap struct {
	values    map[string]string
	consulted map[string]bool
}

// NewParamMap builds an empty ParamMap.
func NewParamMap() *ParamMap {
	return &ParamMap{values: map[string]string{}, consulted: map[string]bool{}}
}

// ParseProjString parses a "+key=val +key2=val2" PROJ-string-like blob
// into a ParamMap. This is a convenience for tests and callers who don't
// have a real parser handy; production parsing is out of scope
// (spec.md §1).
func ParseProjString(s string) *ParamMap {
	pm := NewParamMap()
	for _, part := range strings.Split(s, "+") {
		param := strings.TrimSpace(part)
		if param == "" {
			continue
		}
		key, val := keyVal(param)
		pm.values[key] = val
	}
	return pm
}

// Set stores a raw key/value pair.
func (p *ParamMap) Set(key, val string) { p.values[key] = val }

func (p *ParamMap) mark(key string) {
	if p.consulted == nil {
		p.consulted = map[string]bool{}
	}
	p.consulted[key] = true
}

// String returns the raw string value for key.
func (p *ParamMap) String(key string) (string, bool) {
	p.mark(key)
	v, ok := p.values[key]
	return v, ok
}

// Bool returns key parsed as a boolean; a bare "+key" with no "=value"
// is treated as true.
func (p *ParamMap) Bool(key string) (bool, bool) {
	p.mark(key)
	v, ok := p.values[key]
	if !ok {
		return false, false
	}
	if v == "" {
		return true, true
	}
	b, err := strconv.ParseBool(v)
	return b, err == nil
}

// Float returns key parsed as a float64.
func (p *ParamMap) Float(key string) (float64, bool) {
	p.mark(key)
	v, ok := p.values[key]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	return f, err == nil
}

// Degrees returns key's value converted to radians, parsing either a
// decimal degree string or a "DdM'S\"" hexagesimal string; the value is
// always read as degrees.
func (p *ParamMap) Degrees(key string) (float64, bool) {
	p.mark(key)
	v, ok := p.values[key]
	if !ok {
		return 0, false
	}
	return parseDegreeString(v) * d2r, true
}

// Unrecognized returns the keys present in the map that were never
// consulted via String/Bool/Float/Degrees, for the "log & ignore"
// policy of spec.md §7.
func (p *ParamMap) Unrecognized() []string {
	var out []string
	for k := range p.values {
		if !p.consulted[k] {
			out = append(out, k)
		}
	}
	return out
}

func parseDegreeString(ds string) float64 {
	var res float64
	idx := strings.Index(ds, "d")
	if idx >= 0 {
		f, _ := strconv.ParseFloat(ds[0:idx], 64)
		res += f
		ds = ds[idx+1:]
	} else {
		res, _ = strconv.ParseFloat(ds, 64)
	}
	idx = strings.Index(ds, "'")
	if idx >= 0 {
		f, _ := strconv.ParseFloat(ds[0:idx], 64)
		res += f / 60
		ds = ds[idx+1:]
	}
	idx = strings.Index(ds, "\"")
	if idx >= 0 {
		f, _ := strconv.ParseFloat(ds[0:idx], 64)
		res += f / 3600
		ds = ds[idx+1:]
	}
	if strings.HasSuffix(ds, "W") || strings.HasSuffix(ds, "S") {
		res *= -1
	}
	return res
}

func keyVal(s string) (key string, val string) {
	defs := strings.SplitN(s, "=", 2)
	key = defs[0]
	if len(defs) == 2 {
		val = defs[1]
	}
	return
}
