// Package state tracks what the tool believes it has done to the system.
// Applied status reflects the last command's exit code only — the OS is
// never probed, so recorded state can drift from reality if preferences
// change out of band. That approximation is deliberate.
package state

// ActionKind identifies the last action run against a tweak.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionApplied
	ActionReverted
)

// String returns a display label for the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionApplied:
		return "applied"
	case ActionReverted:
		return "reverted"
	default:
		return "none"
	}
}

// Record is the per-tweak run state.
type Record struct {
	Applied     bool
	LastAction  ActionKind
	LastOK      bool
	LastMessage string
}

// Tracker holds a Record per known tweak for the life of the process.
// It is touched only by the controller; there is no concurrent access.
type Tracker struct {
	records map[string]Record
}

// NewTracker creates a tracker with a zero Record for every given name.
// Names outside this set never gain entries.
func NewTracker(names []string) *Tracker {
	records := make(map[string]Record, len(names))
	for _, name := range names {
		records[name] = Record{}
	}
	return &Tracker{records: records}
}

// Get returns a snapshot of the record for name.
func (t *Tracker) Get(name string) (Record, bool) {
	r, ok := t.records[name]
	return r, ok
}

// Set replaces the record for a known name. Unknown names are ignored so
// a lookup race in the caller can never grow the map.
func (t *Tracker) Set(name string, r Record) {
	if _, ok := t.records[name]; !ok {
		return
	}
	t.records[name] = r
}

// Len returns the number of tracked tweaks.
func (t *Tracker) Len() int {
	return len(t.records)
}
