package pilot

// Config configures the bounds of pilot construction.
//
// Modeled on the teacher's dfa/lazy.Config: the source tool's subset
// construction runs to completion unconditionally because a native
// recursive walk over a hand-written grammar simply can't run away
// undetected for long. An idiomatic Go port carries the same defensive
// bound the teacher uses for DFA determinization (DeterminizationLimit),
// so a malformed or pathologically cyclic machine network fails with a
// clear error instead of exhausting memory.
type Config struct {
	// MaxStates bounds the number of pilot states Build will discover
	// before giving up with a StateLimitExceeded error.
	MaxStates int
}

// DefaultConfig returns sensible defaults for textbook-sized grammars.
func DefaultConfig() Config {
	return Config{MaxStates: 100_000}
}

// Validate reports whether c is usable.
func (c Config) Validate() error {
	if c.MaxStates <= 0 {
		return &BuildError{Kind: InvalidConfig, Message: "MaxStates must be > 0"}
	}
	return nil
}

// WithMaxStates returns a copy of c with MaxStates set.
func (c Config) WithMaxStates(n int) Config {
	c.MaxStates = n
	return c
}
