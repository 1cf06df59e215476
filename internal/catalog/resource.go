package catalog

import (
	"github.com/ohadaerp/erp/internal/domain"
	"github.com/ohadaerp/erp/internal/guard"
	"github.com/ohadaerp/erp/internal/record"
)

// Column is a list view column header.
type Column struct {
	Title     string
	Expansion int
	AlignEnd  bool
}

// Cell is one rendered value with an optional tcell colour name.
type Cell struct {
	Text  string
	Style string
}

// Row is one record rendered for a list view. Summary is the extra line
// shown when the row is expanded.
type Row struct {
	ID      string
	Name    string
	Cells   []Cell
	Summary string
}

// DetailField is one labelled value of a detail view.
type DetailField struct {
	Label string
	Value string
}

// Filter is an enum field a list view can constrain.
type Filter struct {
	Field string
	Label string
	Table domain.LabelTable
}

// Resource is a record kind as seen by views: rows instead of typed
// records, plus the list's deletion dialog.
type Resource interface {
	Kind() string
	Title() string
	ItemType() string
	Module() string
	Len() int
	Columns() []Column
	Filters() []Filter
	Query(q record.Query) ([]Row, error)
	Row(id string) (Row, error)
	Detail(id string) ([]DetailField, error)

	RequestDelete(id string) (guard.Prompt, error)
	CancelDelete() error
	ConfirmDelete() error
	DeleteState() guard.State
	PendingDelete() (guard.Prompt, bool)
	DeleteError() error
}

// Spec declares how records of type T are stored and displayed.
type Spec[T any] struct {
	Schema   record.Schema[T]
	Title    string
	ItemType string
	Module   string
	Columns  []Column
	Filters  []Filter
	Name     func(T) string
	Cells    func(T) []Cell
	Summary  func(T) string
	Detail   func(T) []DetailField

	// DeleteTitle and DeleteMessage override the default dialog copy.
	// DeleteMessage may return "" to fall back to the default.
	DeleteTitle   string
	DeleteMessage func(T) string
}

type resource[T any] struct {
	spec  Spec[T]
	store *record.Store[T]
	guard *guard.Guard[T]
}

var _ Resource = (*resource[domain.Contact])(nil)

func (r *resource[T]) Kind() string { return r.spec.Schema.Kind }

func (r *resource[T]) Title() string { return r.spec.Title }

func (r *resource[T]) ItemType() string { return r.spec.ItemType }

func (r *resource[T]) Module() string { return r.spec.Module }

func (r *resource[T]) Len() int { return r.store.Len() }

func (r *resource[T]) Columns() []Column { return r.spec.Columns }

func (r *resource[T]) Filters() []Filter { return r.spec.Filters }

func (r *resource[T]) Query(q record.Query) ([]Row, error) {
	records, err := r.store.Query(q)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = r.row(rec)
	}
	return rows, nil
}

func (r *resource[T]) Row(id string) (Row, error) {
	rec, err := r.store.Get(id)
	if err != nil {
		return Row{}, err
	}
	return r.row(rec), nil
}

func (r *resource[T]) row(rec T) Row {
	row := Row{
		ID:    r.spec.Schema.ID(rec),
		Name:  r.spec.Name(rec),
		Cells: r.spec.Cells(rec),
	}
	if r.spec.Summary != nil {
		row.Summary = r.spec.Summary(rec)
	}
	return row
}

func (r *resource[T]) Detail(id string) ([]DetailField, error) {
	rec, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	return r.spec.Detail(rec), nil
}

func (r *resource[T]) RequestDelete(id string) (guard.Prompt, error) {
	rec, err := r.store.Get(id)
	if err != nil {
		return guard.Prompt{}, err
	}
	req := guard.Request{
		Title:    r.spec.DeleteTitle,
		ItemName: r.spec.Name(rec),
		ItemType: r.spec.ItemType,
	}
	if r.spec.DeleteMessage != nil {
		req.Message = r.spec.DeleteMessage(rec)
	}
	return r.guard.RequestDelete(rec, req)
}

func (r *resource[T]) CancelDelete() error { return r.guard.Cancel() }

func (r *resource[T]) ConfirmDelete() error { return r.guard.Confirm() }

func (r *resource[T]) DeleteState() guard.State { return r.guard.State() }

func (r *resource[T]) PendingDelete() (guard.Prompt, bool) { return r.guard.Pending() }

func (r *resource[T]) DeleteError() error { return r.guard.LastError() }
