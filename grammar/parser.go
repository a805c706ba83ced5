package grammar

import (
	"io"

	"github.com/elrforge/pilot/fsm"
)

// Parser is a recursive-descent parser for the mnet DSL of spec.md
// §6.1, one method per production. Grounded on
// original_source/src/parser.rs's expect!/accept! macro shape, expressed
// without macros as explicit expect/accept helper methods returning
// (Token, bool) — idiomatic Go in place of Rust's pattern-match-and-early-
// return.
type Parser struct {
	lex   *Lexer
	look  Token
	diags []Diag
}

// NewParser creates a parser reading tokens from lex.
func NewParser(lex *Lexer) *Parser {
	p := &Parser{lex: lex}
	p.look = lex.Next()
	return p
}

func (p *Parser) advance() Token {
	prev := p.look
	p.look = p.lex.Next()
	return prev
}

func (p *Parser) emitError(msg string) {
	p.diags = append(p.diags, Diag{Loc: p.look.Loc, HasLoc: true, Message: msg})
}

// expect consumes the current token if it has kind; otherwise it emits
// msg located at the current token and reports failure without
// advancing.
func (p *Parser) expect(kind TokenKind, msg string) (Token, bool) {
	if p.look.Kind != kind {
		p.emitError(msg)
		return Token{}, false
	}
	return p.advance(), true
}

// accept consumes the current token iff it has kind.
func (p *Parser) accept(kind TokenKind) (Token, bool) {
	if p.look.Kind != kind {
		return Token{}, false
	}
	return p.advance(), true
}

func (p *Parser) parseState() (fsm.State, bool) {
	if _, ok := p.expect(TokKwState, "expected a state"); !ok {
		return fsm.State{}, false
	}
	idTok, ok := p.expect(TokNumber, "expected the state identifier")
	if !ok {
		return fsm.State{}, false
	}
	state := fsm.State{ID: idTok.Number}

	if _, ok := p.expect(TokLBrace, "expected a state body enclosed in {}"); !ok {
		return fsm.State{}, false
	}
	for {
		if _, ok := p.accept(TokKwInitial); ok {
			if _, ok := p.expect(TokSemi, "expected semicolon"); !ok {
				return fsm.State{}, false
			}
			state.Initial = true
			continue
		}
		if _, ok := p.accept(TokKwFinal); ok {
			if _, ok := p.expect(TokSemi, "expected semicolon"); !ok {
				return fsm.State{}, false
			}
			state.Final = true
			continue
		}
		if p.look.Kind == TokIdent {
			character := p.look.Ident
			p.advance()
			if _, ok := p.expect(TokRArrow, "expected -> after transition character"); !ok {
				return fsm.State{}, false
			}
			destTok, ok := p.expect(TokNumber, "expected transition destination state")
			if !ok {
				return fsm.State{}, false
			}
			state.Transitions = append(state.Transitions, fsm.Transition{Character: character, Dest: destTok.Number})
			if _, ok := p.expect(TokSemi, "expected semicolon"); !ok {
				return fsm.State{}, false
			}
			continue
		}
		break
	}
	if _, ok := p.expect(TokRBrace, "expected a transition or a state property"); !ok {
		return fsm.State{}, false
	}
	return state, true
}

func (p *Parser) parseMachine() (fsm.Machine, bool) {
	if _, ok := p.expect(TokKwMachine, "expected a machine"); !ok {
		return fsm.Machine{}, false
	}
	nameTok, ok := p.expect(TokIdent, "expected a machine name")
	if !ok {
		return fsm.Machine{}, false
	}
	if nameTok.Ident < 'A' || nameTok.Ident > 'Z' {
		p.diags = append(p.diags, Diag{Loc: nameTok.Loc, HasLoc: true, Message: "machine name must be ASCII uppercase"})
		return fsm.Machine{}, false
	}
	machine := fsm.Machine{Name: nameTok.Ident}

	if _, ok := p.expect(TokLBrace, "expected a machine body enclosed by {}"); !ok {
		return fsm.Machine{}, false
	}
	for p.look.Kind == TokKwState {
		state, ok := p.parseState()
		if !ok {
			return fsm.Machine{}, false
		}
		machine.States = append(machine.States, state)
	}
	if _, ok := p.expect(TokRBrace, "expected a list of states"); !ok {
		return fsm.Machine{}, false
	}
	return machine, true
}

// parseMnet parses the whole mnet { ... } body into a slice of machines.
// It never returns a partially-built network: on any failure it returns
// (nil, false) and the caller discards whatever machines were parsed so
// far (spec.md §4.7).
func (p *Parser) parseMnet() ([]fsm.Machine, bool) {
	var machines []fsm.Machine
	if _, ok := p.expect(TokKwMNet, "expected a machine net"); !ok {
		return nil, false
	}
	if _, ok := p.expect(TokLBrace, "expected a machine net body enclosed by {}"); !ok {
		return nil, false
	}
	for p.look.Kind == TokKwMachine {
		m, ok := p.parseMachine()
		if !ok {
			return nil, false
		}
		machines = append(machines, m)
	}
	if _, ok := p.expect(TokRBrace, "unmatched }"); !ok {
		return nil, false
	}
	return machines, true
}

// Parse reads a whole mnet DSL document from r and returns the machine
// network it describes. If any lexical or syntactic diagnostic was
// emitted, it returns (nil, diags): the pilot stage must then be skipped
// entirely (spec.md §4.7).
func Parse(r io.Reader) (*fsm.MachineNet, []Diag) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, []Diag{{Message: err.Error()}}
	}

	lex := NewLexer(string(data))
	p := NewParser(lex)
	machines, ok := p.parseMnet()

	diags := append(append([]Diag{}, lex.Diags()...), p.diags...)
	if !ok || len(diags) > 0 {
		return nil, diags
	}
	return fsm.Build(machines), nil
}
