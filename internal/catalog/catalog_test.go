package catalog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ohadaerp/erp/internal/bus"
	"github.com/ohadaerp/erp/internal/domain"
	"github.com/ohadaerp/erp/internal/guard"
	"github.com/ohadaerp/erp/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Catalog {
	t.Helper()
	c := New(nil, nil)
	require.NoError(t, c.Customers.Upsert(domain.Customer{
		ID: "cu-1", Name: "Sotrac Abidjan", City: "Abidjan", Segment: "company", Status: "active", Balance: 1250000,
	}))
	require.NoError(t, c.Customers.Upsert(domain.Customer{
		ID: "cu-2", Name: "Ministère de la Santé", City: "Dakar", Segment: "public", Status: "inactive",
	}))
	require.NoError(t, c.Employees.Upsert(domain.Employee{
		ID: "em-1", FirstName: "Awa", LastName: "Diop", Status: "active",
		HireDate: time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
	}))
	return c
}

func TestKindsAreUniqueAndOrdered(t *testing.T) {
	c := New(nil, nil)
	kinds := c.Kinds()
	require.Len(t, kinds, 13)
	assert.Equal(t, "contacts", kinds[0])
	assert.Equal(t, "expenses", kinds[len(kinds)-1])

	seen := map[string]bool{}
	for i, r := range c.Resources() {
		assert.Equal(t, kinds[i], r.Kind())
		assert.False(t, seen[r.Kind()], "duplicate kind %s", r.Kind())
		seen[r.Kind()] = true
		assert.NotEmpty(t, r.Title())
		assert.NotEmpty(t, r.ItemType())
		assert.Contains(t, []string{ModuleCRM, ModuleHR, ModuleFinance}, r.Module())
		assert.NotEmpty(t, r.Columns())
	}
}

func TestKindsReturnsCopy(t *testing.T) {
	c := New(nil, nil)
	kinds := c.Kinds()
	kinds[0] = "mutated"
	assert.Equal(t, "contacts", c.Kinds()[0])
}

func TestLookupUnknownKind(t *testing.T) {
	c := New(nil, nil)
	_, ok := c.Resource("invoices")
	assert.False(t, ok)

	_, err := c.Lookup("invoices")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customers")
}

func TestFiltersAreFilterable(t *testing.T) {
	c := New(nil, nil)
	for _, r := range c.Resources() {
		for _, f := range r.Filters() {
			_, err := r.Query(record.Query{}.Where(f.Field, "x"))
			assert.NoError(t, err, "%s filter %s", r.Kind(), f.Field)
			assert.NotEmpty(t, f.Table.Values())
		}
	}
}

func TestRowsMatchColumns(t *testing.T) {
	c := seeded(t)
	for _, kind := range []string{"customers", "employees"} {
		r, err := c.Lookup(kind)
		require.NoError(t, err)
		rows, err := r.Query(record.Query{})
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		for _, row := range rows {
			assert.Len(t, row.Cells, len(r.Columns()), kind)
		}
	}
}

func TestQueryThroughResource(t *testing.T) {
	c := seeded(t)
	r, _ := c.Resource("customers")

	rows, err := r.Query(record.Match("sotrac"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "cu-1", rows[0].ID)
	assert.Equal(t, "Sotrac Abidjan", rows[0].Name)
	assert.Equal(t, "Entreprise", rows[0].Cells[3].Text)
	assert.Equal(t, "blue", rows[0].Cells[3].Style)

	rows, err = r.Query(record.Query{}.Where("segment", "public"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "cu-2", rows[0].ID)

	_, err = r.Query(record.Query{}.Where("balance", "0"))
	assert.ErrorIs(t, err, record.ErrInvalidFilterField)
}

func TestDetail(t *testing.T) {
	c := seeded(t)
	r, _ := c.Resource("employees")

	fields, err := r.Detail("em-1")
	require.NoError(t, err)
	values := map[string]string{}
	for _, f := range fields {
		values[f.Label] = f.Value
	}
	assert.Equal(t, "01/03/2021", values["Date d'embauche"])
	assert.Equal(t, "En poste", values["Statut"])

	_, err = r.Detail("missing")
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestDeleteWithCascadeMessage(t *testing.T) {
	c := seeded(t)
	r, _ := c.Resource("customers")

	p, err := r.RequestDelete("cu-1")
	require.NoError(t, err)
	assert.Equal(t, "Supprimer le client", p.Title)
	assert.Contains(t, p.Message, "Sotrac Abidjan")
	assert.Contains(t, p.Message, "factures")
	assert.Equal(t, guard.Confirming, r.DeleteState())

	pending, ok := r.PendingDelete()
	require.True(t, ok)
	assert.Equal(t, p, pending)

	require.NoError(t, r.ConfirmDelete())
	assert.Equal(t, guard.Idle, r.DeleteState())
	assert.Equal(t, 1, r.Len())
	_, err = c.Customers.Get("cu-1")
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestDeleteWithDefaultMessage(t *testing.T) {
	c := New(nil, nil)
	require.NoError(t, c.Trainings.Upsert(domain.Training{ID: "tr-1", Title: "Excel avancé"}))
	r, _ := c.Resource("trainings")

	p, err := r.RequestDelete("tr-1")
	require.NoError(t, err)
	assert.Equal(t, guard.DefaultTitle, p.Title)
	assert.Equal(t, guard.DefaultMessage("formation", "Excel avancé"), p.Message)

	require.NoError(t, r.CancelDelete())
	assert.Equal(t, 1, r.Len())
	_, ok := r.PendingDelete()
	assert.False(t, ok)
}

func TestDeleteUnknownRecord(t *testing.T) {
	c := New(nil, nil)
	r, _ := c.Resource("contacts")
	_, err := r.RequestDelete("nope")
	assert.True(t, errors.Is(err, record.ErrNotFound))
	assert.Equal(t, guard.Idle, r.DeleteState())
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 3, seeded(t).Total())
}

func TestBusReceivesStoreEvents(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe("record.", 4)
	defer unsub()

	c := New(b, nil)
	require.NoError(t, c.Loans.Upsert(domain.Loan{ID: "lo-1", Employee: "Awa Diop"}))

	ev := <-ch
	assert.Equal(t, record.EventUpserted, ev.Kind)
	change, ok := ev.Payload.(record.Change)
	require.True(t, ok)
	assert.Equal(t, "loans", change.Kind)
}

func TestNewID(t *testing.T) {
	a, b := NewID("ct"), NewID("ct")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "ct-"))
	assert.Len(t, a, len("ct-")+8)
	assert.Len(t, NewID(""), 8)
}
