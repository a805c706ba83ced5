// Package dot renders a completed pilot automaton as Graphviz DOT source
// (spec.md §4.8), an HTML-labelled node per pilot state with a two-column
// candidate table and one labelled edge per pilot transition.
//
// Ported from original_source/src/elr_pilot/dot_formatter.rs's
// closure-based pipeline into idiomatic Go: strings.Builder in place of
// Vec<String>+join, matching the teacher's general preference for
// strings.Builder-based formatting (seen throughout dfa/lazy's
// String() methods) over repeated string concatenation.
package dot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elrforge/pilot/pilot"
)

// mergedCandidate groups every candidate sharing (machine, state) into
// one table row: their lookaheads are sorted and deduplicated, isSeed is
// their disjunction, and isFinal is common to the group (spec.md §4.8).
type mergedCandidate struct {
	machine    rune
	state      int
	lookaheads []rune
	isSeed     bool
	isFinal    bool
}

func displayLookahead(r rune) rune {
	if r == '$' {
		return '⊣'
	}
	return r
}

func mergeCandidates(candidates []pilot.Candidate) []mergedCandidate {
	type key struct {
		machine rune
		state   int
	}
	order := make([]key, 0)
	byKey := make(map[key][]pilot.Candidate)
	for _, c := range candidates {
		k := key{c.Machine, c.State}
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], c)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].machine != order[j].machine {
			return order[i].machine < order[j].machine
		}
		return order[i].state < order[j].state
	})

	out := make([]mergedCandidate, 0, len(order))
	for _, k := range order {
		raw := byKey[k]
		seen := make(map[rune]struct{})
		var lookaheads []rune
		isSeed := false
		for _, c := range raw {
			isSeed = isSeed || c.IsSeed
			l := displayLookahead(c.Lookahead)
			if _, dup := seen[l]; !dup {
				seen[l] = struct{}{}
				lookaheads = append(lookaheads, l)
			}
		}
		sort.Slice(lookaheads, func(i, j int) bool { return lookaheads[i] < lookaheads[j] })
		out = append(out, mergedCandidate{
			machine: k.machine, state: k.state,
			lookaheads: lookaheads, isSeed: isSeed, isFinal: raw[0].IsFinal,
		})
	}
	return out
}

func (m mergedCandidate) toRow() string {
	looks := make([]string, len(m.lookaheads))
	for i, l := range m.lookaheads {
		looks[i] = string(l)
	}
	lookStr := strings.Join(looks, ", ")
	state := fmt.Sprintf("%d<sub>%c</sub>", m.state, m.machine)
	if m.isFinal {
		state = "(" + state + ")"
	}
	return fmt.Sprintf(`<tr><td sides="ltb">%s</td><td sides="trb">%s</td></tr>`, state, lookStr)
}

func renderState(s *pilot.PilotState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  i%d [label=<\n", s.ID)

	merged := mergeCandidates(s.Candidates)
	var seedRows, otherRows []string
	for _, m := range merged {
		if m.isSeed {
			seedRows = append(seedRows, "    "+m.toRow())
		} else {
			otherRows = append(otherRows, "    "+m.toRow())
		}
	}

	topBorder, botBorder := "", ""
	if len(seedRows) == 0 {
		topBorder = "t"
	}
	if len(otherRows) == 0 {
		botBorder = "b"
	}
	sepAttrs := fmt.Sprintf(`sides="%s%s"`, topBorder, botBorder)
	if topBorder == "" && botBorder == "" {
		sepAttrs = `border="0"`
	}

	b.WriteString(`    <table border="0" cellborder="1" cellspacing="0">` + "\n")
	for _, row := range seedRows {
		b.WriteString(row + "\n")
	}
	fmt.Fprintf(&b, "    <tr><td colspan=\"2\" %s></td></tr>\n", sepAttrs)
	for _, row := range otherRows {
		b.WriteString(row + "\n")
	}
	b.WriteString("    </table>\n")
	fmt.Fprintf(&b, "  >, xlabel=<I<sub>%d</sub>>];", s.ID)

	for _, t := range s.Transitions {
		fmt.Fprintf(&b, "\n  i%d -> i%d [label=\"%c\"];", s.ID, t.Dest, t.Character)
	}
	return b.String()
}

// Render emits complete Graphviz digraph source for p.
func Render(p *pilot.Pilot) string {
	var b strings.Builder
	b.WriteString("digraph {\n  node [shape=\"plain\", forcelabels=true];\n")
	for i := range p.States {
		b.WriteString(renderState(&p.States[i]))
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
