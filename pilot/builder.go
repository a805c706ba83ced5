package pilot

import "github.com/elrforge/pilot/fsm"

// Build performs the worklist-driven subset construction of spec.md
// §4.4, assuming net has already passed fsm.Validate (an unvalidated net
// may cause MustLookupState to panic — spec.md §7's internal invariant
// class of error).
//
// Build runs to completion synchronously; it never blocks, suspends, or
// shares mutable state with a caller (spec.md §5).
func Build(net *fsm.MachineNet, cfg Config) (*Pilot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	states := make([]PilotState, 0, 16)
	c := newCache()

	init := &PilotState{Candidates: []Candidate{initialCandidate(net)}}
	worklist := []int{c.insert(&states, init, net)}

	visited := make(map[int]struct{})
	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]
		if _, done := visited[id]; done {
			continue
		}
		visited[id] = struct{}{}

		symbols := outgoingSymbols(&states[id], net)
		transitions := make([]PilotTransition, 0, len(symbols))
		for _, x := range symbols {
			succ, mult := shift(&states[id], net, x)
			if len(succ.Candidates) == 0 {
				continue
			}
			if _, known := c.byKey[succ.seedKey()]; !known && len(states) >= cfg.MaxStates {
				return nil, &BuildError{
					Kind:    StateLimitExceeded,
					Message: "pilot construction exceeded the configured MaxStates bound",
				}
			}
			destID := c.insert(&states, succ, net)
			transitions = append(transitions, PilotTransition{Character: x, Dest: destID, Multiplicity: mult})
			worklist = append(worklist, destID)
		}
		states[id].Transitions = transitions
	}

	return &Pilot{States: states}, nil
}
