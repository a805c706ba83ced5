package pilot

import (
	"sort"

	"github.com/elrforge/pilot/fsm"
)

// closure grows state's candidate sequence to a fixed point (spec.md
// §4.2). Seeds are never touched; every appended candidate is non-seed.
// The loop indexes into state.Candidates as it grows, so candidates
// appended during the walk are themselves expanded before the loop ends
// — i reaching len(Candidates) is the fixed point.
func closure(state *PilotState, net *fsm.MachineNet) {
	for i := 0; i < len(state.Candidates); i++ {
		c := state.Candidates[i]
		mstate := net.MustLookupState(c.Machine, c.State)
		for _, t := range mstate.Transitions {
			if !t.IsNonterminal() {
				continue
			}
			lookaheadSet := fsm.Followers(net, c.Machine, t.Dest, map[rune]struct{}{c.Lookahead: {}})
			lookaheads := make([]rune, 0, len(lookaheadSet))
			for l := range lookaheadSet {
				lookaheads = append(lookaheads, l)
			}
			sort.Slice(lookaheads, func(i, j int) bool { return lookaheads[i] < lookaheads[j] })

			dest := net.MustLookupState(t.Character, 0)
			for _, l := range lookaheads {
				c2 := Candidate{Machine: t.Character, State: 0, Lookahead: l, IsSeed: false, IsFinal: dest.Final}
				if !state.hasCandidate(c2) {
					state.Candidates = append(state.Candidates, c2)
				}
			}
		}
	}
}
