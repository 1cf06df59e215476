// Package expand tracks which rows of a list view show their inline detail.
package expand

import "sort"

// Set holds the ids of expanded rows for one list instance. Presence is the
// only state; the zero value is ready to use.
type Set struct {
	ids map[string]struct{}
}

// New returns an empty expansion set.
func New() *Set {
	return &Set{ids: make(map[string]struct{})}
}

// Toggle expands a collapsed row or collapses an expanded one and reports
// the new state.
func (s *Set) Toggle(id string) bool {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// IsExpanded reports whether id is expanded.
func (s *Set) IsExpanded(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// CollapseAll empties the set. Views call it whenever their query changes.
func (s *Set) CollapseAll() {
	clear(s.ids)
}

// Retain drops every expanded id that is not in visible and returns how
// many were dropped.
func (s *Set) Retain(visible []string) int {
	if len(s.ids) == 0 {
		return 0
	}
	keep := make(map[string]struct{}, len(visible))
	for _, id := range visible {
		keep[id] = struct{}{}
	}
	dropped := 0
	for id := range s.ids {
		if _, ok := keep[id]; !ok {
			delete(s.ids, id)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of expanded rows.
func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the expanded ids in lexical order.
func (s *Set) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
