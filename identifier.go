package cts

import (
	"hash/fnv"
	"strings"
)

// Identifier is an opaque authority+code+aliases key used for equality
// and lookup, per spec.md §3/§9: "unify identifiers and names behind a
// single canonical key (authority + code + normalized short name) and a
// single read-only map from key to object." Identifier bookkeeping
// beyond this is explicitly out of scope (spec.md §1).
type Identifier struct {
	Authority string
	Code      string
	Aliases   []string
}

// NewIdentifier builds an Identifier from an authority and code, e.g.
// NewIdentifier("EPSG", "4326").
func NewIdentifier(authority, code string, aliases ...string) Identifier {
	return Identifier{Authority: authority, Code: code, Aliases: aliases}
}

// String renders the canonical "AUTHORITY:CODE" form.
func (id Identifier) String() string {
	if id.Authority == "" && id.Code == "" {
		return ""
	}
	return id.Authority + ":" + id.Code
}

// Equal reports whether id and other denote the same object: same
// authority+code, or a shared normalized alias.
func (id Identifier) Equal(other Identifier) bool {
	if id.Authority != "" && id.Code != "" &&
		strings.EqualFold(id.Authority, other.Authority) && strings.EqualFold(id.Code, other.Code) {
		return true
	}
	for _, a := range id.Aliases {
		for _, b := range other.Aliases {
			if strings.EqualFold(normalizeAlias(a), normalizeAlias(b)) {
				return true
			}
		}
	}
	return false
}

// Hash returns a stable FNV-1a hash over the canonical key, suitable for
// use when Identifier is embedded in a map key or a hash-based set.
func (id Identifier) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToUpper(id.Authority)))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strings.ToUpper(id.Code)))
	return h.Sum64()
}

// Key returns a string usable as a Go map key, combining authority and
// code into the single canonical lookup key spec.md §9 calls for.
func (id Identifier) Key() string {
	return strings.ToUpper(id.Authority) + ":" + strings.ToUpper(id.Code)
}

func normalizeAlias(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
