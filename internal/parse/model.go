package parse

import "time"

// Event is the best-effort event information extracted from an email body.
// Fields stay nil/empty when the text carried no usable information; a
// non-valid Event is expected input for the caller, not an error.
type Event struct {
	Start     *time.Time
	End       *time.Time
	Location  string // "" when no Location: line was found
	HasMarker bool   // whether the "Event Time:" marker appeared at all
}

// Valid reports whether both timestamps were extracted.
func (e Event) Valid() bool {
	return e.Start != nil && e.End != nil
}
