// Command elrpilot reads a grammar file written in the mnet DSL
// (spec.md §6.1), validates it, builds its pilot automaton, and prints
// the DOT rendering followed by the conflict report (spec.md §6.2).
//
// Usage modeled on the pack's single-positional-argument CLI idiom
// (shadowCow-cow-lang-go/lang/main.go), with stderr diagnostic reporting
// grounded on bohdan-natsevych-fsm-generator/cmd/mod3/main.go.
package main

import (
	"fmt"
	"os"

	"github.com/elrforge/pilot/dot"
	"github.com/elrforge/pilot/fsm"
	"github.com/elrforge/pilot/grammar"
	"github.com/elrforge/pilot/pilot"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <grammar-file>\n", os.Args[0])
		os.Exit(1)
	}

	os.Exit(run(os.Args[1]))
}

// run executes the pipeline for a single grammar file. It recovers from
// internal invariant panics (spec.md §7: unreachable once fsm.Validate has
// passed, but never to be allowed to crash the process outright) and
// converts them into the same non-zero-exit, stderr-diagnostic shape as
// every other failure here — it never suppresses the underlying bug, only
// the bare panic output.
func run(path string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "error: internal error: %v\n", r)
			code = 1
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	net, diags := grammar.Parse(f)
	if len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d.String())
		}
		return 1
	}

	if err := fsm.Validate(net); err != nil {
		if ve, ok := err.(*fsm.ValidationErrors); ok {
			for _, e := range ve.Errors() {
				fmt.Fprintln(os.Stderr, "error: "+e.Error())
			}
		} else {
			fmt.Fprintln(os.Stderr, "error: "+err.Error())
		}
		return 1
	}

	p, err := pilot.Build(net, pilot.DefaultConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
		return 1
	}

	fmt.Println(dot.Render(p))
	pilot.Report(os.Stdout, pilot.Conflicts(p))
	return 0
}
