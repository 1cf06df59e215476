// Package catalog owns the record stores of the application: one store and
// one deletion guard per record kind, built once at start and shared by
// every view.
package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ohadaerp/erp/internal/bus"
	"github.com/ohadaerp/erp/internal/domain"
	"github.com/ohadaerp/erp/internal/guard"
	"github.com/ohadaerp/erp/internal/record"
	"go.uber.org/zap"
)

// Module names used to group kinds in menus.
const (
	ModuleCRM     = "CRM"
	ModuleHR      = "RH"
	ModuleFinance = "Finance"
)

// Catalog holds every record store.
type Catalog struct {
	Contacts     *record.Store[domain.Contact]
	Customers    *record.Store[domain.Customer]
	Suppliers    *record.Store[domain.Supplier]
	Documents    *record.Store[domain.Document]
	Emails       *record.Store[domain.Email]
	Employees    *record.Store[domain.Employee]
	Contracts    *record.Store[domain.Contract]
	Loans        *record.Store[domain.Loan]
	Payroll      *record.Store[domain.Payroll]
	Disciplinary *record.Store[domain.DisciplinaryCase]
	Evaluations  *record.Store[domain.Evaluation]
	Trainings    *record.Store[domain.Training]
	Expenses     *record.Store[domain.Expense]

	order     []string
	resources map[string]Resource
}

// New builds an empty catalog. Stores and guards publish on b when it is
// not nil.
func New(b *bus.Bus, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Catalog{resources: make(map[string]Resource)}
	c.Contacts = register(c, contactSpec(), b, logger)
	c.Customers = register(c, customerSpec(), b, logger)
	c.Suppliers = register(c, supplierSpec(), b, logger)
	c.Documents = register(c, documentSpec(), b, logger)
	c.Emails = register(c, emailSpec(), b, logger)
	c.Employees = register(c, employeeSpec(), b, logger)
	c.Contracts = register(c, contractSpec(), b, logger)
	c.Loans = register(c, loanSpec(), b, logger)
	c.Payroll = register(c, payrollSpec(), b, logger)
	c.Disciplinary = register(c, disciplinarySpec(), b, logger)
	c.Evaluations = register(c, evaluationSpec(), b, logger)
	c.Trainings = register(c, trainingSpec(), b, logger)
	c.Expenses = register(c, expenseSpec(), b, logger)
	return c
}

func register[T any](c *Catalog, spec Spec[T], b *bus.Bus, logger *zap.Logger) *record.Store[T] {
	store := record.NewStore(spec.Schema, record.WithBus(b), record.WithLogger(logger))
	g := guard.New(store, spec.Schema.ID, guard.WithBus(b), guard.WithLogger(logger))
	kind := spec.Schema.Kind
	if _, dup := c.resources[kind]; dup {
		panic(fmt.Sprintf("catalog: kind %q registered twice", kind))
	}
	c.order = append(c.order, kind)
	c.resources[kind] = &resource[T]{spec: spec, store: store, guard: g}
	return store
}

// Kinds returns every kind in menu order.
func (c *Catalog) Kinds() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Resource returns the view of one kind.
func (c *Catalog) Resource(kind string) (Resource, bool) {
	r, ok := c.resources[kind]
	return r, ok
}

// Lookup is Resource with an error naming the known kinds.
func (c *Catalog) Lookup(kind string) (Resource, error) {
	if r, ok := c.resources[kind]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("unknown kind %q (known: %s)", kind, strings.Join(c.order, ", "))
}

// Resources returns every resource in menu order.
func (c *Catalog) Resources() []Resource {
	out := make([]Resource, len(c.order))
	for i, kind := range c.order {
		out[i] = c.resources[kind]
	}
	return out
}

// Total returns the number of records across all kinds.
func (c *Catalog) Total() int {
	n := 0
	for _, r := range c.resources {
		n += r.Len()
	}
	return n
}

// NewID returns a fresh record id such as "ct-3f2a9c1e".
func NewID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}
