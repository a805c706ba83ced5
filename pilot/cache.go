package pilot

import "github.com/elrforge/pilot/fsm"

// cache interns pilot states by seed-equivalence (spec.md §3, §4.4
// "insert"). Modeled on the teacher's dfa/lazy.Cache, which maps a
// canonical state key to the interned state id — but unlike that cache,
// this one carries no mutex: pilot construction is single-threaded and
// runs exactly once to completion (spec.md §5), so guarding it would
// only add dead weight.
type cache struct {
	byKey map[string]int
	next  int
}

func newCache() *cache {
	return &cache{byKey: make(map[string]int)}
}

// insert interns candidate under its seed key into states. If an
// equivalent state was already interned, its id is returned and
// candidate is discarded. Otherwise candidate is assigned the next id,
// closed over net exactly once, and appended (spec.md §4.4's insert
// contract and "closure applied exactly once per pilot state"
// invariant).
func (c *cache) insert(states *[]PilotState, candidate *PilotState, net *fsm.MachineNet) int {
	key := candidate.seedKey()
	if id, ok := c.byKey[key]; ok {
		return id
	}
	id := c.next
	c.next++
	candidate.ID = id
	closure(candidate, net)
	c.byKey[key] = id
	*states = append(*states, *candidate)
	return id
}
