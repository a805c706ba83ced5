package grammar

import "fmt"

// Diag is a single lexical or syntactic diagnostic, formatted per
// spec.md §6.3: "row:col: error: message" when a location is known,
// else "error: message".
type Diag struct {
	Loc     Location
	HasLoc  bool
	Message string
}

func (d Diag) String() string {
	if d.HasLoc {
		return fmt.Sprintf("%s: error: %s", d.Loc, d.Message)
	}
	return "error: " + d.Message
}
