package record

import (
	"errors"
	"testing"
	"time"

	"github.com/ohadaerp/erp/internal/bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	ID     string
	Name   string
	Email  string
	Status string
	City   string
}

var personSchema = Schema[person]{
	Kind: "contact",
	ID:   func(p person) string { return p.ID },
	Searchable: []Field[person]{
		{Name: "name", Value: func(p person) string { return p.Name }},
		{Name: "email", Value: func(p person) string { return p.Email }},
	},
	Filterable: []Field[person]{
		{Name: "status", Value: func(p person) string { return p.Status }},
		{Name: "city", Value: func(p person) string { return p.City }},
	},
}

func newPeople(t *testing.T, people ...person) *Store[person] {
	t.Helper()
	s := NewStore(personSchema)
	for _, p := range people {
		require.NoError(t, s.Upsert(p))
	}
	return s
}

func ids(people []person) []string {
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = p.ID
	}
	return out
}

var (
	jean  = person{ID: "1", Name: "Jean Dupont", Email: "jean@exemple.ci", Status: "active", City: "Abidjan"}
	marie = person{ID: "2", Name: "Marie Martin", Email: "marie@exemple.sn", Status: "inactive", City: "Dakar"}
	aissa = person{ID: "3", Name: "Aïssa Traoré", Email: "aissa@exemple.ml", Status: "active", City: "Bamako"}
)

func TestQueryScenario(t *testing.T) {
	s := newPeople(t, jean, marie)

	got, err := s.Query(Match("marie"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(got))

	got, err = s.Query(Query{}.Where("status", "active"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestEmptyQueryReturnsAllInOrder(t *testing.T) {
	s := newPeople(t, marie, aissa, jean)

	for _, q := range []Query{{}, {Term: "   "}, {Filters: map[string]string{}}} {
		got, err := s.Query(q)
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "3", "1"}, ids(got))
	}
}

func TestQueryIsSoundAndComplete(t *testing.T) {
	people := []person{jean, marie, aissa,
		{ID: "4", Name: "Paul Kouassi", Email: "paul@exemple.ci", Status: "blocked", City: "Abidjan"},
		{ID: "5", Name: "Awa Diallo", Email: "awa.martin@exemple.gn", Status: "active", City: "Conakry"},
	}
	s := newPeople(t, people...)

	queries := []Query{
		Match("martin"),
		Match("EXEMPLE.CI"),
		Query{Term: "a"}.Where("status", "active"),
		Query{}.Where("city", "Abidjan").Where("status", "blocked"),
		Match("nobody"),
	}
	for _, q := range queries {
		got, err := s.Query(q)
		require.NoError(t, err)

		var want []string
		for _, p := range people {
			if referenceMatch(p, q) {
				want = append(want, p.ID)
			}
		}
		if want == nil {
			want = []string{}
		}
		assert.Equal(t, want, ids(got), "query %+v", q)
	}
}

func referenceMatch(p person, q Query) bool {
	for k, v := range q.Filters {
		switch k {
		case "status":
			if p.Status != v {
				return false
			}
		case "city":
			if p.City != v {
				return false
			}
		}
	}
	if q.Term == "" {
		return true
	}
	return containsFoldASCII(p.Name, q.Term) || containsFoldASCII(p.Email, q.Term)
}

func containsFoldASCII(s, sub string) bool {
	lower := func(x string) string {
		b := []byte(x)
		for i, c := range b {
			if c >= 'A' && c <= 'Z' {
				b[i] = c + 'a' - 'A'
			}
		}
		return string(b)
	}
	ls, lsub := lower(s), lower(sub)
	for i := 0; i+len(lsub) <= len(ls); i++ {
		if ls[i:i+len(lsub)] == lsub {
			return true
		}
	}
	return false
}

func TestQueryFoldsUnicode(t *testing.T) {
	s := newPeople(t, aissa, person{ID: "6", Name: "ÉLODIE Ngono", Status: "active"})

	got, err := s.Query(Match("aïssa"))
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(got))

	got, err = s.Query(Match("élodie"))
	require.NoError(t, err)
	assert.Equal(t, []string{"6"}, ids(got))
}

func TestFilterIsExactMatch(t *testing.T) {
	s := newPeople(t, jean, marie)

	got, err := s.Query(Query{}.Where("status", "Active"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQueryRejectsUnknownFilterField(t *testing.T) {
	s := newPeople(t, jean)

	_, err := s.Query(Query{}.Where("statut", "active"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFilterField)

	var fieldErr *InvalidFilterFieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "contact", fieldErr.Kind)
	assert.Equal(t, "statut", fieldErr.Field)
}

func TestQueryRejectsSearchableButNotFilterableField(t *testing.T) {
	s := newPeople(t, jean)

	_, err := s.Query(Query{}.Where("name", "Jean Dupont"))
	assert.ErrorIs(t, err, ErrInvalidFilterField)
}

func TestRemove(t *testing.T) {
	s := newPeople(t, jean, marie, aissa)

	require.NoError(t, s.Remove("2"))

	got, err := s.Query(Query{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ids(got))

	err = s.Remove("2")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Get("2")
	assert.ErrorIs(t, err, ErrNotFound)

	p, err := s.Get("3")
	require.NoError(t, err)
	assert.Equal(t, aissa, p)
}

func TestUpsertReplacesInPlace(t *testing.T) {
	s := newPeople(t, jean, marie, aissa)

	renamed := marie
	renamed.Name = "Marie Martin-Koné"
	require.NoError(t, s.Upsert(renamed))

	all := s.All()
	assert.Equal(t, []string{"1", "2", "3"}, ids(all))
	assert.Equal(t, "Marie Martin-Koné", all[1].Name)
	assert.Equal(t, 3, s.Len())
}

func TestUpsertAppendsNewRecord(t *testing.T) {
	s := newPeople(t, jean)

	require.NoError(t, s.Upsert(marie))
	assert.Equal(t, []string{"1", "2"}, ids(s.All()))
}

func TestUpsertAfterRemoveKeepsIndexConsistent(t *testing.T) {
	s := newPeople(t, jean, marie, aissa)
	require.NoError(t, s.Remove("1"))

	updated := aissa
	updated.Status = "blocked"
	require.NoError(t, s.Upsert(updated))

	all := s.All()
	assert.Equal(t, []string{"2", "3"}, ids(all))
	assert.Equal(t, "blocked", all[1].Status)
}

func TestUpsertRejectsEmptyID(t *testing.T) {
	s := NewStore(personSchema)
	err := s.Upsert(person{Name: "Sans Id"})
	assert.ErrorIs(t, err, ErrEmptyID)
	assert.Equal(t, 0, s.Len())
}

func TestAllReturnsCopy(t *testing.T) {
	s := newPeople(t, jean)
	all := s.All()
	all[0].Name = "mutated"

	p, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Jean Dupont", p.Name)
}

func TestStorePublishesChanges(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe("record.", 8)
	defer unsub()

	s := NewStore(personSchema, WithBus(b))
	require.NoError(t, s.Upsert(jean))
	require.NoError(t, s.Upsert(jean))
	require.NoError(t, s.Remove("1"))

	want := []struct {
		kind   string
		change Change
	}{
		{EventUpserted, Change{Kind: "contact", ID: "1", Inserted: true}},
		{EventUpserted, Change{Kind: "contact", ID: "1", Inserted: false}},
		{EventRemoved, Change{Kind: "contact", ID: "1"}},
	}
	for _, w := range want {
		select {
		case evt := <-ch:
			assert.Equal(t, w.kind, evt.Kind)
			assert.Equal(t, w.change, evt.Payload)
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for %s", w.kind)
		}
	}
}

func TestQueryEqual(t *testing.T) {
	a := Query{Term: "marie"}.Where("status", "active")
	assert.True(t, a.Equal(Query{Term: " marie "}.Where("status", "active")))
	assert.False(t, a.Equal(Query{Term: "marie"}))
	assert.False(t, a.Equal(Query{Term: "marie"}.Where("status", "inactive")))
	assert.True(t, Query{}.IsZero())
	assert.False(t, Match("x").IsZero())
}

func TestWhereDoesNotMutateReceiver(t *testing.T) {
	base := Query{}.Where("status", "active")
	_ = base.Where("city", "Dakar")
	assert.Len(t, base.Filters, 1)
}

func TestFilterNames(t *testing.T) {
	assert.Equal(t, []string{"status", "city"}, personSchema.FilterNames())
}
