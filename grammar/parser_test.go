package grammar

import (
	"strings"
	"testing"
)

func TestParseSimpleMachine(t *testing.T) {
	src := `mnet {
		machine S {
			state 0 { initial; final; a -> 0; }
		}
	}`
	net, diags := Parse(strings.NewReader(src))
	if len(diags) != 0 {
		t.Fatalf("Parse diags = %v, want none", diags)
	}
	if net == nil {
		t.Fatal("Parse returned nil net with no diagnostics")
	}
	if len(net.Machines) != 1 {
		t.Fatalf("got %d machines, want 1", len(net.Machines))
	}
	m := net.Machines[0]
	if m.Name != 'S' {
		t.Errorf("machine name = %c, want S", m.Name)
	}
	if len(m.States) != 1 {
		t.Fatalf("got %d states, want 1", len(m.States))
	}
	s := m.States[0]
	if !s.Initial || !s.Final {
		t.Errorf("state = %+v, want Initial and Final", s)
	}
	if len(s.Transitions) != 1 || s.Transitions[0].Character != 'a' || s.Transitions[0].Dest != 0 {
		t.Errorf("transitions = %+v, want one a->0", s.Transitions)
	}
}

// The literal convergence grammar of spec.md §8 scenario 4 parses into
// three machines named S, A and C.
func TestParseConvergenceGrammar(t *testing.T) {
	src := `mnet { machine S { state 0 { initial; A -> 1; } state 1 { final; C -> 1; } }
		machine A { state 0 { initial; final; a -> 1; } state 1 { C -> 2; } state 2 { b -> 3; } state 3 { final; } }
		machine C { state 0 { initial; c -> 1; } state 1 { final; A -> 2; } state 2 { d -> 3; } state 3 { final; } } }`
	net, diags := Parse(strings.NewReader(src))
	if len(diags) != 0 {
		t.Fatalf("Parse diags = %v, want none", diags)
	}
	if len(net.Machines) != 3 {
		t.Fatalf("got %d machines, want 3", len(net.Machines))
	}
	names := map[rune]bool{}
	for _, m := range net.Machines {
		names[m.Name] = true
	}
	for _, want := range []rune{'S', 'A', 'C'} {
		if !names[want] {
			t.Errorf("missing machine %c", want)
		}
	}
}

func TestParseUnmatchedBraceIsSyntaxError(t *testing.T) {
	net, diags := Parse(strings.NewReader(`mnet { machine S { state 0 { initial; final; }`))
	if net != nil {
		t.Errorf("Parse net = %v, want nil on syntax error", net)
	}
	if len(diags) == 0 {
		t.Fatal("Parse diags = none, want at least one")
	}
}

func TestParseLowercaseMachineNameIsError(t *testing.T) {
	net, diags := Parse(strings.NewReader(`mnet { machine s { state 0 { initial; final; } } }`))
	if net != nil {
		t.Errorf("Parse net = %v, want nil", net)
	}
	if len(diags) == 0 {
		t.Fatal("Parse diags = none, want at least one")
	}
	found := false
	for _, d := range diags {
		if strings.Contains(d.Message, "uppercase") {
			found = true
		}
	}
	if !found {
		t.Errorf("diags = %v, want an uppercase-name diagnostic", diags)
	}
}

// An overlong identifier is a lexical error that must still abort parsing
// and surface through Parse's combined diagnostics with its location.
func TestParseOverlongIdentifierAborts(t *testing.T) {
	net, diags := Parse(strings.NewReader(`mnet { machine S { state 0 { initial; foo -> 0; } } }`))
	if net != nil {
		t.Errorf("Parse net = %v, want nil", net)
	}
	if len(diags) == 0 {
		t.Fatal("Parse diags = none, want at least one")
	}
	if !diags[0].HasLoc {
		t.Errorf("diag = %+v, want a location", diags[0])
	}
}

func TestDiagStringFormatting(t *testing.T) {
	located := Diag{Loc: Location{Row: 3, Col: 7}, HasLoc: true, Message: "boom"}
	if got, want := located.String(), "3:7: error: boom"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	unlocated := Diag{Message: "boom"}
	if got, want := unlocated.String(), "error: boom"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
