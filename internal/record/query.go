package record

import (
	"strings"

	"golang.org/x/text/cases"
)

// Query selects records by free text and exact enum matches. It is a
// transient value rebuilt on every keystroke or filter change.
type Query struct {
	Term    string
	Filters map[string]string
}

// Match builds a query with a single term and no filters.
func Match(term string) Query {
	return Query{Term: term}
}

// Where returns a copy of q with field constrained to value.
func (q Query) Where(field, value string) Query {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[field] = value
	return Query{Term: q.Term, Filters: filters}
}

// IsZero reports whether q selects every record.
func (q Query) IsZero() bool {
	return strings.TrimSpace(q.Term) == "" && len(q.Filters) == 0
}

// Equal reports whether q and other select the same records.
func (q Query) Equal(other Query) bool {
	if strings.TrimSpace(q.Term) != strings.TrimSpace(other.Term) || len(q.Filters) != len(other.Filters) {
		return false
	}
	for k, v := range q.Filters {
		if ov, ok := other.Filters[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

type constraint[T any] struct {
	field Field[T]
	value string
}

// matcher is a compiled query bound to one schema.
type matcher[T any] struct {
	term        string
	searchable  []Field[T]
	constraints []constraint[T]
	fold        cases.Caser
}

func compile[T any](schema Schema[T], q Query) (*matcher[T], error) {
	m := &matcher[T]{
		searchable: schema.Searchable,
		fold:       cases.Fold(),
	}
	for name, value := range q.Filters {
		f, ok := schema.filterable(name)
		if !ok {
			return nil, &InvalidFilterFieldError{Kind: schema.Kind, Field: name}
		}
		m.constraints = append(m.constraints, constraint[T]{field: f, value: value})
	}
	if term := strings.TrimSpace(q.Term); term != "" {
		m.term = m.fold.String(term)
	}
	return m, nil
}

func (m *matcher[T]) matches(r T) bool {
	for _, c := range m.constraints {
		if c.field.Value(r) != c.value {
			return false
		}
	}
	if m.term == "" {
		return true
	}
	for _, f := range m.searchable {
		if strings.Contains(m.fold.String(f.Value(r)), m.term) {
			return true
		}
	}
	return false
}
