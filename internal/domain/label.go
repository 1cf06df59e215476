// Package domain holds the business records shown by the application and
// the static tables that turn their enum values into display labels.
package domain

// Label is how an enum value is displayed: French text and a tcell colour
// name used by the list views.
type Label struct {
	Text  string
	Style string
}

// Entry is one row of a LabelTable.
type Entry struct {
	Value string
	Text  string
	Style string
}

// LabelTable maps the values of one enum to their labels, keeping
// declaration order for filter cycling.
type LabelTable struct {
	order  []string
	labels map[string]Label
}

// NewLabelTable builds a table from entries in display order.
func NewLabelTable(entries ...Entry) LabelTable {
	t := LabelTable{labels: make(map[string]Label, len(entries))}
	for _, e := range entries {
		t.order = append(t.order, e.Value)
		t.labels[e.Value] = Label{Text: e.Text, Style: e.Style}
	}
	return t
}

// Lookup returns the label for v. Unknown values render as themselves.
func (t LabelTable) Lookup(v string) Label {
	if l, ok := t.labels[v]; ok {
		return l
	}
	return Label{Text: v, Style: "gray"}
}

// Has reports whether v is a declared value.
func (t LabelTable) Has(v string) bool {
	_, ok := t.labels[v]
	return ok
}

// Values returns the declared values in order.
func (t LabelTable) Values() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Status tables shared by several record kinds.
var (
	PartyStatus = NewLabelTable(
		Entry{"active", "Actif", "green"},
		Entry{"inactive", "Inactif", "gray"},
		Entry{"blocked", "Bloqué", "red"},
	)
	YesNo = NewLabelTable(
		Entry{"yes", "Oui", "green"},
		Entry{"no", "Non", "gray"},
	)
)
