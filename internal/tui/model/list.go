// Package model holds the screen-independent state of the terminal UI.
package model

import (
	"strings"

	"github.com/ohadaerp/erp/internal/catalog"
	"github.com/ohadaerp/erp/internal/expand"
	"github.com/ohadaerp/erp/internal/guard"
	"github.com/ohadaerp/erp/internal/record"
)

// Line is one visible table line: a record row, or the summary line shown
// under an expanded row.
type Line struct {
	Row     catalog.Row
	Summary bool
}

// List is the state of one record list view: the query, the rows it
// produced and which of them are expanded.
type List struct {
	res      catalog.Resource
	query    record.Query
	rows     []catalog.Row
	expanded *expand.Set

	// filterField indexes res.Filters(); filterValue indexes that
	// filter's values, -1 when no value is applied.
	filterField int
	filterValue int
}

// NewList builds the list of res with an empty query.
func NewList(res catalog.Resource) (*List, error) {
	l := &List{
		res:         res,
		expanded:    expand.New(),
		filterValue: -1,
	}
	if err := l.Refresh(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List) Resource() catalog.Resource { return l.res }

func (l *List) Query() record.Query { return l.query }

// Rows returns the rows of the last refresh.
func (l *List) Rows() []catalog.Row { return l.rows }

// Refresh reruns the current query.
func (l *List) Refresh() error {
	rows, err := l.res.Query(l.query)
	if err != nil {
		return err
	}
	l.rows = rows
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	l.expanded.Retain(ids)
	return nil
}

// SetQuery replaces the query. A different query collapses every row.
func (l *List) SetQuery(q record.Query) error {
	if q.Equal(l.query) {
		return nil
	}
	prev := l.query
	l.query = q
	if err := l.Refresh(); err != nil {
		l.query = prev
		return err
	}
	l.expanded.CollapseAll()
	return nil
}

// SetTerm changes the search term and keeps the filters.
func (l *List) SetTerm(term string) error {
	q := l.query
	q.Term = term
	return l.SetQuery(q)
}

// FilterField returns the filter cycled by CycleFilter.
func (l *List) FilterField() (catalog.Filter, bool) {
	filters := l.res.Filters()
	if len(filters) == 0 {
		return catalog.Filter{}, false
	}
	return filters[l.filterField], true
}

// CycleFilter applies the next value of the current filter field, going
// back to no value after the last one.
func (l *List) CycleFilter() error {
	f, ok := l.FilterField()
	if !ok {
		return nil
	}
	values := f.Table.Values()
	next := l.filterValue + 1
	if next >= len(values) {
		next = -1
	}
	q := l.query
	if next < 0 {
		q = withoutFilter(q, f.Field)
	} else {
		q = q.Where(f.Field, values[next])
	}
	if err := l.SetQuery(q); err != nil {
		return err
	}
	l.filterValue = next
	return nil
}

// NextFilterField moves CycleFilter to the next filter field and drops the
// value applied on the current one.
func (l *List) NextFilterField() error {
	filters := l.res.Filters()
	if len(filters) < 2 {
		return nil
	}
	cur := filters[l.filterField]
	if err := l.SetQuery(withoutFilter(l.query, cur.Field)); err != nil {
		return err
	}
	l.filterField = (l.filterField + 1) % len(filters)
	l.filterValue = -1
	return nil
}

// ClearQuery removes the term and every filter.
func (l *List) ClearQuery() error {
	if err := l.SetQuery(record.Query{}); err != nil {
		return err
	}
	l.filterValue = -1
	return nil
}

// FilterText describes the active query for a title bar, e.g.
// `Statut: Actif · "dakar"`.
func (l *List) FilterText() string {
	var parts []string
	for _, f := range l.res.Filters() {
		if v, ok := l.query.Filters[f.Field]; ok {
			parts = append(parts, f.Label+": "+f.Table.Lookup(v).Text)
		}
	}
	if l.query.Term != "" {
		parts = append(parts, `"`+l.query.Term+`"`)
	}
	return strings.Join(parts, " · ")
}

// Toggle flips the expansion of id and reports the new state.
func (l *List) Toggle(id string) bool { return l.expanded.Toggle(id) }

func (l *List) IsExpanded(id string) bool { return l.expanded.IsExpanded(id) }

// Lines flattens rows and expansion into what the table shows.
func (l *List) Lines() []Line {
	lines := make([]Line, 0, len(l.rows)+l.expanded.Len())
	for _, r := range l.rows {
		lines = append(lines, Line{Row: r})
		if l.expanded.IsExpanded(r.ID) {
			lines = append(lines, Line{Row: r, Summary: true})
		}
	}
	return lines
}

// RequestDelete opens the deletion dialog for id.
func (l *List) RequestDelete(id string) (guard.Prompt, error) {
	return l.res.RequestDelete(id)
}

// CancelDelete closes the dialog without deleting.
func (l *List) CancelDelete() error { return l.res.CancelDelete() }

// ConfirmDelete deletes the pending record and refreshes the rows. On
// failure the dialog stays open and the error is returned.
func (l *List) ConfirmDelete() error {
	if err := l.res.ConfirmDelete(); err != nil {
		return err
	}
	return l.Refresh()
}

func withoutFilter(q record.Query, field string) record.Query {
	if _, ok := q.Filters[field]; !ok {
		return q
	}
	out := record.Query{Term: q.Term}
	for k, v := range q.Filters {
		if k != field {
			out = out.Where(k, v)
		}
	}
	return out
}
