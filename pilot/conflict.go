package pilot

import (
	"fmt"
	"io"
)

// ConflictKind tags the three independent diagnostics of spec.md §4.5.
// A flat tagged union, per spec.md §9's "no dynamic dispatch is needed"
// design note.
type ConflictKind uint8

const (
	ShiftReduce ConflictKind = iota
	ReduceReduce
	Convergence
)

// Conflict is one diagnosed non-determinism. Only the fields relevant to
// Kind are meaningful; see spec.md §4.5 and §6.3 for the exact shapes
// each kind prints.
type Conflict struct {
	Kind ConflictKind

	// ShiftReduce (StateID is also set for ReduceReduce)
	StateID      int
	CandidateIdx int

	// ReduceReduce
	Candidate1Idx int
	Candidate2Idx int

	// Convergence
	SourceID  int
	Character rune
	DestID    int
}

// Conflicts runs all three diagnostics over the completed pilot and
// returns every finding, in the order spec.md §4.5 lists them: per-state
// shift-reduce and reduce-reduce (in pilot state order), then
// across-pilot convergence.
func Conflicts(p *Pilot) []Conflict {
	var res []Conflict
	for _, state := range p.States {
		res = append(res, shiftReduceConflicts(&state)...)
		res = append(res, reduceReduceConflicts(&state)...)
	}
	res = append(res, convergenceConflicts(p)...)
	return res
}

func shiftReduceConflicts(state *PilotState) []Conflict {
	outgoing := make(map[rune]struct{}, len(state.Transitions))
	for _, t := range state.Transitions {
		outgoing[t.Character] = struct{}{}
	}
	var res []Conflict
	for i, cand := range state.Candidates {
		if _, shifted := outgoing[cand.Lookahead]; cand.IsFinal && shifted {
			res = append(res, Conflict{Kind: ShiftReduce, StateID: state.ID, CandidateIdx: i})
		}
	}
	return res
}

func reduceReduceConflicts(state *PilotState) []Conflict {
	var res []Conflict
	for i := 0; i < len(state.Candidates); i++ {
		for j := i + 1; j < len(state.Candidates); j++ {
			ci, cj := state.Candidates[i], state.Candidates[j]
			if ci.IsFinal && cj.IsFinal && ci.Lookahead == cj.Lookahead {
				res = append(res, Conflict{Kind: ReduceReduce, StateID: state.ID, Candidate1Idx: i, Candidate2Idx: j})
			}
		}
	}
	return res
}

func convergenceConflicts(p *Pilot) []Conflict {
	var res []Conflict
	for _, state := range p.States {
		for _, t := range state.Transitions {
			dest := p.LookupState(t.Dest)
			if dest.SeedCount() != t.Multiplicity {
				res = append(res, Conflict{Kind: Convergence, SourceID: state.ID, Character: t.Character, DestID: t.Dest})
			}
		}
	}
	return res
}

// Report prints conflicts in the fixed shapes of spec.md §6.3, or
// "no conflicts" if the slice is empty.
func Report(w io.Writer, conflicts []Conflict) {
	if len(conflicts) == 0 {
		fmt.Fprintln(w, "no conflicts")
		return
	}
	for _, c := range conflicts {
		switch c.Kind {
		case ShiftReduce:
			fmt.Fprintf(w, "shift-reduce conflict in state %d, candidate %d is final\n", c.StateID, c.CandidateIdx)
		case ReduceReduce:
			fmt.Fprintf(w, "reduce-reduce conflict in state %d, candidates %d and %d\n", c.StateID, c.Candidate1Idx, c.Candidate2Idx)
		case Convergence:
			fmt.Fprintf(w, "convergence conflict: multiple transition from state %d character %c leads to merged base set in state %d\n",
				c.SourceID, c.Character, c.DestID)
		}
	}
}
