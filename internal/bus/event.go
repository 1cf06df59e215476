package bus

import "time"

// Event is an action outcome broadcast to interested views and loggers.
// Kind is dot-namespaced, e.g. "record.removed" or "guard.state_changed".
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Namespace returns the part of Kind before the first dot.
func (e Event) Namespace() string {
	for i := 0; i < len(e.Kind); i++ {
		if e.Kind[i] == '.' {
			return e.Kind[:i]
		}
	}
	return e.Kind
}
