package fsm

import "fmt"

// ValidationErrors accumulates every structural check that failed so a
// caller can report all of them at once instead of bailing at the first
// one (spec.md §4.6: "Checks are independent; all run even if earlier
// ones fail"). Modeled on the pack's fsm-generator accumulate-all-errors
// pattern (pkg/fsm/errors.go's ValidationErrors/Append/AsError).
type ValidationErrors struct {
	errs []error
}

func (ve *ValidationErrors) append(format string, args ...any) {
	ve.errs = append(ve.errs, fmt.Errorf(format, args...))
}

// Error implements the error interface, joining every accumulated
// message on its own line.
func (ve *ValidationErrors) Error() string {
	if len(ve.errs) == 1 {
		return ve.errs[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:", len(ve.errs))
	for _, e := range ve.errs {
		msg += "\n  " + e.Error()
	}
	return msg
}

// Errors returns the individual accumulated errors, in check order.
func (ve *ValidationErrors) Errors() []error {
	return ve.errs
}

// Validate runs every structural invariant of spec.md §3 against net and
// returns nil iff all of them hold. Every check always runs, regardless
// of earlier failures, so a caller sees the complete diagnosis in one
// pass.
func Validate(net *MachineNet) error {
	ve := &ValidationErrors{}
	validateMachineCount(net, ve)
	validateAxiom(net, ve)
	validateStateCount(net, ve)
	validateInitialStates(net, ve)
	validateFinalStates(net, ve)
	validateTransitionTargets(net, ve)
	if len(ve.errs) == 0 {
		return nil
	}
	return ve
}

func validateMachineCount(net *MachineNet, ve *ValidationErrors) {
	if len(net.Machines) == 0 {
		ve.append("no machines in the machine net")
	}
}

func validateAxiom(net *MachineNet, ve *ValidationErrors) {
	if _, ok := net.LookupMachine('S'); !ok {
		ve.append("axiom (machine named S) missing")
	}
}

func validateStateCount(net *MachineNet, ve *ValidationErrors) {
	for _, m := range net.Machines {
		if len(m.States) == 0 {
			ve.append("machine %c has zero states", m.Name)
		}
	}
}

func validateInitialStates(net *MachineNet, ve *ValidationErrors) {
	for _, m := range net.Machines {
		hasZero := false
		for _, s := range m.States {
			switch {
			case s.Initial && s.ID != 0:
				ve.append("state %c%d cannot be initial", m.Name, s.ID)
			case s.ID == 0 && !s.Initial:
				ve.append("state %c%d must be initial", m.Name, s.ID)
			}
			if s.ID == 0 {
				hasZero = true
			}
		}
		if !hasZero {
			ve.append("machine %c has no state 0", m.Name)
		}
	}
}

func validateFinalStates(net *MachineNet, ve *ValidationErrors) {
	for _, m := range net.Machines {
		any := false
		for _, s := range m.States {
			if s.Final {
				any = true
				break
			}
		}
		if !any {
			ve.append("no final state in machine %c", m.Name)
		}
	}
}

// validateTransitionTargets checks the two lookup-miss invariants that
// spec.md §3 calls "implicit" (nonterminal names an existing machine,
// dest_id references an existing state in the same machine) so that
// MustLookupState/MustLookupMachine are guaranteed never to panic once
// Validate has passed.
func validateTransitionTargets(net *MachineNet, ve *ValidationErrors) {
	for _, m := range net.Machines {
		for _, s := range m.States {
			for _, t := range s.Transitions {
				if t.IsNonterminal() {
					if _, ok := net.LookupMachine(t.Character); !ok {
						ve.append("machine %c, state %d: transition %c -> %d names unknown machine %c",
							m.Name, s.ID, t.Character, t.Dest, t.Character)
					}
				}
				if _, ok := m.LookupState(t.Dest); !ok {
					ve.append("machine %c, state %d: transition %c -> %d has no destination state %d",
						m.Name, s.ID, t.Character, t.Dest, t.Dest)
				}
			}
		}
	}
}
