package record

// Field is a named string projection of a record.
type Field[T any] struct {
	Name  string
	Value func(T) string
}

// Schema describes how a Store reads records of type T: the id accessor,
// the free-text fields matched by Query.Term and the enum fields that
// Query.Filters may constrain.
type Schema[T any] struct {
	Kind       string
	ID         func(T) string
	Searchable []Field[T]
	Filterable []Field[T]
}

func (s Schema[T]) filterable(name string) (Field[T], bool) {
	for _, f := range s.Filterable {
		if f.Name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}

// FilterNames returns the filterable field names in declaration order.
func (s Schema[T]) FilterNames() []string {
	names := make([]string, len(s.Filterable))
	for i, f := range s.Filterable {
		names[i] = f.Name
	}
	return names
}
