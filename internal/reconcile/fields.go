package reconcile

import "iter"

// Unresolved is the value of a constant no driver data supplied.
const Unresolved int32 = -1

// Field is a single resolved constant.
type Field struct {
	Name  string
	Value int32
}

// ResolvedFields maps constant names to values. Names are unique and keep
// the order they were first set in, so iteration is stable. A name added with
// SetUnresolved is tracked separately from its value, so a bound -1 still
// counts as resolved.
type ResolvedFields struct {
	fields     []Field
	index      map[string]int
	unresolved map[string]bool
}

// NewResolvedFields creates an empty table.
func NewResolvedFields() *ResolvedFields {
	return &ResolvedFields{index: make(map[string]int), unresolved: make(map[string]bool)}
}

// Set assigns value to name, keeping the position of an existing name.
func (f *ResolvedFields) Set(name string, value int32) {
	f.put(name, value)
	delete(f.unresolved, name)
}

// SetUnresolved assigns Unresolved to name and marks it as having no binding.
func (f *ResolvedFields) SetUnresolved(name string) {
	f.put(name, Unresolved)
	f.unresolved[name] = true
}

func (f *ResolvedFields) put(name string, value int32) {
	if i, ok := f.index[name]; ok {
		f.fields[i].Value = value
		return
	}

	f.index[name] = len(f.fields)
	f.fields = append(f.fields, Field{Name: name, Value: value})
}

// IsResolved reports whether name was given a value by Set.
func (f *ResolvedFields) IsResolved(name string) bool {
	_, ok := f.index[name]
	return ok && !f.unresolved[name]
}

// Unresolved returns the names added with SetUnresolved, in field order.
func (f *ResolvedFields) Unresolved() []string {
	var names []string

	for _, fd := range f.fields {
		if f.unresolved[fd.Name] {
			names = append(names, fd.Name)
		}
	}

	return names
}

// Get returns the value of name.
func (f *ResolvedFields) Get(name string) (int32, bool) {
	i, ok := f.index[name]
	if !ok {
		return 0, false
	}

	return f.fields[i].Value, true
}

// Len returns the number of fields.
func (f *ResolvedFields) Len() int {
	return len(f.fields)
}

// All iterates name/value pairs in order.
func (f *ResolvedFields) All() iter.Seq2[string, int32] {
	return func(yield func(string, int32) bool) {
		for _, fd := range f.fields {
			if !yield(fd.Name, fd.Value) {
				return
			}
		}
	}
}

// Fields returns a copy of the fields in order.
func (f *ResolvedFields) Fields() []Field {
	return append([]Field(nil), f.fields...)
}

// Map returns the fields as a map.
func (f *ResolvedFields) Map() map[string]int32 {
	m := make(map[string]int32, len(f.fields))
	for _, fd := range f.fields {
		m[fd.Name] = fd.Value
	}

	return m
}
