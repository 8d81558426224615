package triple

import "fmt"

// MalformedError is returned for a triple that breaks the object kind invariants.
type MalformedError struct {
	// Index is the position of the triple in its stream, or -1 if unknown.
	Index  int
	Triple Triple
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("malformed triple #%d %v: %s", e.Index, e.Triple, e.Reason)
	}
	return fmt.Sprintf("malformed triple %v: %s", e.Triple, e.Reason)
}
