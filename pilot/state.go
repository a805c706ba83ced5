package pilot

import (
	"fmt"
	"sort"
	"strings"
)

// PilotTransition is an outgoing edge of a pilot state (spec.md §3).
// Multiplicity is the number of seed candidates that shifted on
// Character before deduplication; it is greater than the destination
// state's seed count exactly when that shift is a convergence conflict.
type PilotTransition struct {
	Character    rune
	Dest         int
	Multiplicity int
}

// PilotState is one state of the pilot automaton: an item set together
// with its outgoing transitions (spec.md §3).
type PilotState struct {
	ID          int
	Candidates  []Candidate
	Transitions []PilotTransition
}

// hasCandidate reports whether c is already present, by full structural
// equality (spec.md §4.2: closure never appends a duplicate).
func (p *PilotState) hasCandidate(c Candidate) bool {
	for _, existing := range p.Candidates {
		if existing == c {
			return true
		}
	}
	return false
}

// seeds returns the seed candidates of p, sorted; it does not
// deduplicate them (shift already emits each seed once). Two
// pilot states are equivalent iff this set is equal (spec.md §3) —
// non-seed candidates never participate in equivalence since closure is
// deterministic over seeds.
func (p *PilotState) seeds() []Candidate {
	out := make([]Candidate, 0, len(p.Candidates))
	for _, c := range p.Candidates {
		if c.IsSeed {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// seedKey canonicalises p's seed set into a string suitable as a map key,
// so state interning (spec.md §4.4's insert) is an O(1) lookup instead of
// the source's O(n) linear scan over already-inserted states (spec.md
// §9's "canonicalised sorted sequence... to make equivalence checks O(k)
// instead of quadratic").
func (p *PilotState) seedKey() string {
	var b strings.Builder
	for _, c := range p.seeds() {
		fmt.Fprintf(&b, "%c,%d,%c,%t;", c.Machine, c.State, c.Lookahead, c.IsFinal)
	}
	return b.String()
}

// SeedCount returns the number of seed candidates, used by the
// convergence check (spec.md §4.5).
func (p *PilotState) SeedCount() int {
	n := 0
	for _, c := range p.Candidates {
		if c.IsSeed {
			n++
		}
	}
	return n
}

// Pilot is the completed pilot automaton: an ordered sequence of states,
// state 0 being the initial state (spec.md §3).
type Pilot struct {
	States []PilotState
}

// LookupState returns the state with the given id.
//
// Pilot ids are assigned 0..len(States)-1 at insertion time and never
// retracted (spec.md §3 lifecycle), so an out-of-range id here is an
// internal invariant violation — it panics, matching the source's
// lookup_state.
func (p *Pilot) LookupState(id int) *PilotState {
	if id < 0 || id >= len(p.States) {
		panic(fmt.Sprintf("pilot state %d does not exist", id))
	}
	return &p.States[id]
}
