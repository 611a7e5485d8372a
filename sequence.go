package cts

import "strings"

// Sequence is an ordered list of operations whose output arity of step i
// equals the input arity of step i+1 (spec.md §3). Redundant identity
// steps are collapsed away at construction time so a Sequence never
// carries dead weight through a transform call.
type Sequence struct {
	steps []Operation
}

// NewSequence builds a Sequence from steps, dropping any identity steps
// (spec.md §4.2: "A sequence may short-circuit identity steps").
func NewSequence(steps ...Operation) *Sequence {
	out := make([]Operation, 0, len(steps))
	for _, s := range steps {
		if s == nil || s.IsIdentity() {
			continue
		}
		out = append(out, s)
	}
	return &Sequence{steps: out}
}

// Steps returns the (already identity-collapsed) steps making up s.
func (s *Sequence) Steps() []Operation { return s.steps }

func (s *Sequence) Name() string {
	if len(s.steps) == 0 {
		return "identity"
	}
	names := make([]string, len(s.steps))
	for i, st := range s.steps {
		names[i] = st.Name()
	}
	return strings.Join(names, " . ")
}

// Arity is the input arity of the first step, or 2 for an empty
// (fully-collapsed-to-identity) sequence.
func (s *Sequence) Arity() int {
	if len(s.steps) == 0 {
		return 2
	}
	return s.steps[0].Arity()
}

// IsIdentity reports whether s has no remaining steps after collapsing.
func (s *Sequence) IsIdentity() bool { return len(s.steps) == 0 }

// Forward applies each step in declared order (spec.md §5: "within a
// single transform call, component operations execute in declared
// sequence order; there is no reordering").
func (s *Sequence) Forward(t Tuple) (Tuple, error) {
	cur := t
	for _, step := range s.steps {
		next, err := step.Forward(cur)
		if err != nil {
			var phi, lam float64
			if len(cur) > 1 {
				phi, lam = cur[0], cur[1]
			}
			return nil, NewDomainError(step.Name(), lam, phi, err)
		}
		cur = next
	}
	return cur, nil
}

// Inverse returns the reversed sequence of each step's inverse (spec.md
// §3: "Its inverse is the reversed list of inverses").
func (s *Sequence) Inverse() (Operation, error) {
	inv := make([]Operation, len(s.steps))
	for i, step := range s.steps {
		stepInv, err := step.Inverse()
		if err != nil {
			return nil, err
		}
		inv[len(s.steps)-1-i] = stepInv
	}
	return &Sequence{steps: inv}, nil
}
