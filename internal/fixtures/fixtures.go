// Package fixtures loads the demo records the application starts with.
// The default set is embedded; a YAML file of the same shape can replace
// it.
package fixtures

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ohadaerp/erp/internal/catalog"
	"github.com/ohadaerp/erp/internal/domain"
	"github.com/ohadaerp/erp/internal/record"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seed []byte

// ErrDuplicateID is matched by DuplicateIDError.
var ErrDuplicateID = errors.New("duplicate record id")

// DuplicateIDError reports an id used twice within one kind.
type DuplicateIDError struct {
	Kind string
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s: duplicate record id %q", e.Kind, e.ID)
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

// Set is the decoded content of a fixtures file.
type Set struct {
	Contacts     []domain.Contact          `yaml:"contacts"`
	Customers    []domain.Customer         `yaml:"customers"`
	Suppliers    []domain.Supplier         `yaml:"suppliers"`
	Documents    []domain.Document         `yaml:"documents"`
	Emails       []domain.Email            `yaml:"emails"`
	Employees    []domain.Employee         `yaml:"employees"`
	Contracts    []domain.Contract         `yaml:"contracts"`
	Loans        []domain.Loan             `yaml:"loans"`
	Payroll      []domain.Payroll          `yaml:"payroll"`
	Disciplinary []domain.DisciplinaryCase `yaml:"disciplinary"`
	Evaluations  []domain.Evaluation       `yaml:"evaluations"`
	Trainings    []domain.Training         `yaml:"trainings"`
	Expenses     []domain.Expense          `yaml:"expenses"`
}

// Parse decodes a fixtures document. Unknown keys are errors.
func Parse(r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Set
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &s, nil
}

// Embedded returns the built-in demo set.
func Embedded() (*Set, error) {
	return Parse(bytes.NewReader(seed))
}

// ReadFile parses the fixtures file at path.
func ReadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Load fills cat from the file at path, or from the embedded set when
// path is empty. It returns the number of records loaded.
func Load(cat *catalog.Catalog, path string) (int, error) {
	var (
		s   *Set
		err error
	)
	if path == "" {
		s, err = Embedded()
	} else {
		s, err = ReadFile(path)
	}
	if err != nil {
		return 0, err
	}
	return s.Apply(cat)
}

// Apply upserts every record of s into cat. Records without an id get a
// generated one. Duplicate ids within a kind abort before anything of
// that kind is stored.
func (s *Set) Apply(cat *catalog.Catalog) (int, error) {
	steps := []func() (int, error){
		func() (int, error) {
			return apply(cat.Contacts, s.Contacts, "ct", func(r *domain.Contact, id string) { r.ID = id })
		},
		func() (int, error) {
			return apply(cat.Customers, s.Customers, "cu", func(r *domain.Customer, id string) { r.ID = id })
		},
		func() (int, error) {
			return apply(cat.Suppliers, s.Suppliers, "su", func(r *domain.Supplier, id string) { r.ID = id })
		},
		func() (int, error) {
			return apply(cat.Documents, s.Documents, "do", func(r *domain.Document, id string) { r.ID = id })
		},
		func() (int, error) {
			return apply(cat.Emails, s.Emails, "ml", func(r *domain.Email, id string) { r.ID = id })
		},
		func() (int, error) {
			return apply(cat.Employees, s.Employees, "em", func(r *domain.Employee, id string) { r.ID = id })
		},
		func() (int, error) {
			return apply(cat.Contracts, s.Contracts, "co", func(r *domain.Contract, id string) { r.ID = id })
		},
		func() (int, error) {
			return apply(cat.Loans, s.Loans, "lo", func(r *domain.Loan, id string) { r.ID = id })
		},
		func() (int, error) {
			return apply(cat.Payroll, s.Payroll, "pa", func(r *domain.Payroll, id string) { r.ID = id })
		},
		func() (int, error) {
			return apply(cat.Disciplinary, s.Disciplinary, "di", func(r *domain.DisciplinaryCase, id string) { r.ID = id })
		},
		func() (int, error) {
			return apply(cat.Evaluations, s.Evaluations, "ev", func(r *domain.Evaluation, id string) { r.ID = id })
		},
		func() (int, error) {
			return apply(cat.Trainings, s.Trainings, "tr", func(r *domain.Training, id string) { r.ID = id })
		},
		func() (int, error) {
			return apply(cat.Expenses, s.Expenses, "ex", func(r *domain.Expense, id string) { r.ID = id })
		},
	}

	total := 0
	for _, step := range steps {
		n, err := step()
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func apply[T any](store *record.Store[T], items []T, prefix string, setID func(*T, string)) (int, error) {
	idOf := store.Schema().ID
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		id := idOf(items[i])
		if id == "" {
			id = catalog.NewID(prefix)
			setID(&items[i], id)
		}
		if _, dup := seen[id]; dup {
			return 0, &DuplicateIDError{Kind: store.Kind(), ID: id}
		}
		seen[id] = struct{}{}
	}
	for _, item := range items {
		if err := store.Upsert(item); err != nil {
			return 0, err
		}
	}
	return len(items), nil
}
