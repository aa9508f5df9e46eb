// Package grid implements the interaction core of the employee table:
// the column schema registry, the sort engine, the inline edit lifecycle
// and the controller that coordinates them.
package grid

import (
	"fmt"

	"staffgrid/internal/fields"
	"staffgrid/internal/validate"
)

// Formatter renders a raw value for display when a record is built. The
// grid treats a panicking formatter as pass-through.
type Formatter interface {
	Format(raw string) string
}

// ColumnSchema describes one column's generation, validation and
// formatting rules. Entries are immutable once handed to a Registry.
type ColumnSchema struct {
	Name      string
	Kind      fields.Kind
	Required  bool
	Options   []string // select kind only
	Validator *validate.Pipeline
	Formatter Formatter
}

// Registry is the ordered column list shared by the creation form and the
// inline editor. Column ordering is significant: a cell's index within a
// row is its schema index.
type Registry struct {
	cols   []ColumnSchema
	byName map[string]int
}

// NewRegistry validates and freezes the column list.
func NewRegistry(cols ...ColumnSchema) (*Registry, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("registry needs at least one column")
	}
	byName := make(map[string]int, len(cols))
	for i, col := range cols {
		if col.Name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if _, dup := byName[col.Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", col.Name)
		}
		switch col.Kind {
		case fields.KindText, fields.KindNumber:
		case fields.KindSelect:
			if len(col.Options) == 0 {
				return nil, fmt.Errorf("select column %q has no options", col.Name)
			}
		default:
			return nil, fmt.Errorf("column %q: unknown control kind %q", col.Name, col.Kind)
		}
		byName[col.Name] = i
	}
	out := make([]ColumnSchema, len(cols))
	copy(out, cols)
	return &Registry{cols: out, byName: byName}, nil
}

// Len returns the number of columns.
func (r *Registry) Len() int { return len(r.cols) }

// Column returns the schema at index i, reporting whether it exists.
func (r *Registry) Column(i int) (ColumnSchema, bool) {
	if i < 0 || i >= len(r.cols) {
		return ColumnSchema{}, false
	}
	return r.cols[i], true
}

// Columns returns a copy of the ordered column list.
func (r *Registry) Columns() []ColumnSchema {
	out := make([]ColumnSchema, len(r.cols))
	copy(out, r.cols)
	return out
}

// Index returns the position of the named column.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.byName[name]
	return i, ok
}
