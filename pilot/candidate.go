// Package pilot implements the ELR pilot automaton: the item-set closure
// and subset-construction algorithms that turn a validated fsm.MachineNet
// into the pilot automaton, plus the conflict analyser that diagnoses why
// the resulting automaton is not deterministic (spec.md §4.2–§4.5).
package pilot

import "github.com/elrforge/pilot/fsm"

// Candidate is an LR-style item enriched with a single-terminal lookahead
// (spec.md §3). It is comparable by every field, matching the Rust
// source's derive(Eq, Hash) Candidate and letting Go's built-in map/slice
// equality stand in for that structural comparison.
type Candidate struct {
	Machine   rune
	State     int
	Lookahead rune
	IsSeed    bool
	IsFinal   bool
}

// less gives candidates a total, deterministic order, used to keep
// closure/shift output reproducible (spec.md §5) and to canonicalise a
// seed set for equivalence hashing.
func less(a, b Candidate) bool {
	if a.Machine != b.Machine {
		return a.Machine < b.Machine
	}
	if a.State != b.State {
		return a.State < b.State
	}
	if a.Lookahead != b.Lookahead {
		return a.Lookahead < b.Lookahead
	}
	if a.IsSeed != b.IsSeed {
		return !a.IsSeed
	}
	return !a.IsFinal && b.IsFinal
}

// initialCandidate builds the non-seed candidate that seeds the whole
// pilot: (S, 0, $, seed=false, final=S.0.is_final) (spec.md §4.4 step 1).
func initialCandidate(net *fsm.MachineNet) Candidate {
	s0 := net.MustLookupState('S', 0)
	return Candidate{Machine: 'S', State: 0, Lookahead: fsm.EndOfInput, IsSeed: false, IsFinal: s0.Final}
}
