package fsm

import "github.com/elrforge/pilot/internal/sparse"

// Followers returns every terminal that may appear immediately after a
// recognition starting at position (machine, state), given that next is
// the set of terminals allowed to follow the whole machine once its
// recognition completes (spec.md §4.1).
//
// Each call gets its own visited set: the pilot's closure engine invokes
// Followers once per candidate it closes, so no lookahead is lost across
// top-level calls even though a single call's walk never revisits a
// transition (spec.md §9's resolution of the open question: visited is
// keyed per call, not shared across the whole pilot construction).
func Followers(net *MachineNet, machine rune, state int, next map[rune]struct{}) map[rune]struct{} {
	visited := sparse.New(net.TransitionCount())
	res := make(map[rune]struct{})
	followersWalk(net, machine, state, visited, next, res)
	return res
}

func followersWalk(net *MachineNet, machine rune, state int, visited *sparse.Set, next map[rune]struct{}, res map[rune]struct{}) {
	s := net.MustLookupState(machine, state)
	if s.Final {
		for c := range next {
			res[c] = struct{}{}
		}
	}
	for _, t := range s.Transitions {
		if visited.Contains(t.id) {
			continue
		}
		visited.Insert(t.id)
		if !t.IsNonterminal() {
			res[t.Character] = struct{}{}
			continue
		}
		nextnext := make(map[rune]struct{})
		followersWalk(net, machine, t.Dest, visited, next, nextnext)
		followersWalk(net, t.Character, 0, visited, nextnext, res)
	}
}
