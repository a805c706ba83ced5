package pilot

import (
	"sort"

	"github.com/elrforge/pilot/fsm"
)

// shift advances every candidate of state whose current position has an
// outgoing transition on x, producing the (not yet closed) successor
// item set of seed candidates plus the pre-dedup multiplicity (spec.md
// §4.3).
func shift(state *PilotState, net *fsm.MachineNet, x rune) (*PilotState, int) {
	var shifted []Candidate
	for _, c := range state.Candidates {
		mstate := net.MustLookupState(c.Machine, c.State)
		for _, t := range mstate.Transitions {
			if t.Character != x {
				continue
			}
			dest := net.MustLookupState(c.Machine, t.Dest)
			shifted = append(shifted, Candidate{
				Machine: c.Machine, State: t.Dest, Lookahead: c.Lookahead,
				IsSeed: true, IsFinal: dest.Final,
			})
			break
		}
	}

	mult := len(shifted)
	sort.Slice(shifted, func(i, j int) bool { return less(shifted[i], shifted[j]) })
	deduped := shifted[:0]
	for i, c := range shifted {
		if i == 0 || c != shifted[i-1] {
			deduped = append(deduped, c)
		}
	}

	return &PilotState{Candidates: deduped}, mult
}

// outgoingSymbols returns the sorted, deduplicated set of characters on
// outgoing transitions of the underlying machine states of every
// candidate (seed and non-seed) in state (spec.md §4.4).
func outgoingSymbols(state *PilotState, net *fsm.MachineNet) []rune {
	seen := make(map[rune]struct{})
	for _, c := range state.Candidates {
		mstate := net.MustLookupState(c.Machine, c.State)
		for _, t := range mstate.Transitions {
			seen[t.Character] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
