// Package fsm implements the immutable data model for a network of
// mutually recursive finite-state machines — the extended context-free
// grammar representation the pilot builder operates on — together with
// the structural validator and the follower engine that computes
// lookahead sets across the network.
package fsm

import "fmt"

// EndOfInput is the internal end-of-input sentinel lookahead rune.
// Only the dot package renders it as '⊣'; everywhere else it is '$'.
const EndOfInput = '$'

// Transition is a single edge out of a state: on Character, move to Dest
// (a state id within the same machine). A nonterminal Character denotes
// "recognise machine Character, then move to Dest".
//
// id is a stable integer identity assigned once by Build, used by the
// follower engine's cycle-protection visited set (spec.md §9) in place of
// pointer identity.
type Transition struct {
	Character rune
	Dest      int

	id int
}

// IsNonterminal reports whether Character names another machine.
func (t Transition) IsNonterminal() bool {
	return t.Character >= 'A' && t.Character <= 'Z'
}

// State is one position inside a Machine.
type State struct {
	ID          int
	Transitions []Transition
	Initial     bool
	Final       bool
}

// Machine is a single named finite-state automaton.
type Machine struct {
	Name   rune
	States []State
}

// LookupState returns the state with the given id, or false if absent.
func (m *Machine) LookupState(id int) (*State, bool) {
	for i := range m.States {
		if m.States[i].ID == id {
			return &m.States[i], true
		}
	}
	return nil, false
}

// MachineNet is an ordered network of machines, mutually recursive
// through nonterminal-labelled transitions.
type MachineNet struct {
	Machines []Machine

	transitionCount int
}

// TransitionCount returns the number of transitions assigned an id by
// Build — the universe size the follower engine's visited-transitions
// sparse set must cover (spec.md §9).
func (n *MachineNet) TransitionCount() int {
	return n.transitionCount
}

// Build assigns stable transition ids and returns the finished,
// immutable network. Callers (the grammar front-end, tests, and
// hand-built fixtures) construct the machine slice and call Build
// exactly once; the result is never mutated afterwards (spec.md §3
// lifecycle).
func Build(machines []Machine) *MachineNet {
	net := &MachineNet{Machines: machines}
	next := 0
	for mi := range net.Machines {
		for si := range net.Machines[mi].States {
			ts := net.Machines[mi].States[si].Transitions
			for ti := range ts {
				ts[ti].id = next
				next++
			}
		}
	}
	net.transitionCount = next
	return net
}

// LookupMachine returns the machine named by the given rune, or false.
func (n *MachineNet) LookupMachine(name rune) (*Machine, bool) {
	for i := range n.Machines {
		if n.Machines[i].Name == name {
			return &n.Machines[i], true
		}
	}
	return nil, false
}

// LookupState returns the state identified by (machine, id), or false.
func (n *MachineNet) LookupState(machine rune, id int) (*State, bool) {
	m, ok := n.LookupMachine(machine)
	if !ok {
		return nil, false
	}
	return m.LookupState(id)
}

// MustLookupMachine returns the named machine or panics.
//
// Only called after Validate has passed: a lookup miss at that point is
// an internal invariant violation (spec.md §7), not a user-facing error.
func (n *MachineNet) MustLookupMachine(name rune) *Machine {
	m, ok := n.LookupMachine(name)
	if !ok {
		panic(fmt.Sprintf("machine %c does not exist", name))
	}
	return m
}

// MustLookupState returns the identified state or panics; see
// MustLookupMachine.
func (n *MachineNet) MustLookupState(machine rune, id int) *State {
	s, ok := n.LookupState(machine, id)
	if !ok {
		panic(fmt.Sprintf("state %c%d does not exist", machine, id))
	}
	return s
}
