package grid

import (
	"fmt"

	"golang.org/x/text/language"

	"staffgrid/internal/fields"
	"staffgrid/internal/notify"
	"staffgrid/internal/validate"
)

// Controller owns the presentation grid and coordinates sorting, row
// selection, inline editing and validated record insertion. The row slice
// order is the displayed order; there is no separate view model.
type Controller struct {
	registry    *Registry
	rows        [][]string
	sort        SortState
	comparators map[int]Comparator
	defaultCmp  Comparator
	notifier    notify.Notifier
	selected    int
	editor      *Editor
}

// NewController builds a controller over the given registry and seed
// rows. Misconfiguration (nil collaborators, malformed rows, bad
// comparator overrides) fails construction rather than being deferred to
// runtime.
func NewController(reg *Registry, rows [][]string, overrides []ComparatorOverride, notifier notify.Notifier, tag language.Tag) (*Controller, error) {
	if reg == nil {
		return nil, fmt.Errorf("nil column registry")
	}
	if notifier == nil {
		return nil, fmt.Errorf("nil notifier")
	}
	comparators := make(map[int]Comparator, len(overrides))
	for _, ov := range overrides {
		if ov.Index < 0 || ov.Index >= reg.Len() {
			return nil, fmt.Errorf("comparator override for column %d is out of range", ov.Index)
		}
		if ov.Comparator == nil {
			return nil, fmt.Errorf("comparator override for column %d is nil", ov.Index)
		}
		comparators[ov.Index] = ov.Comparator
	}
	copied := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) != reg.Len() {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), reg.Len())
		}
		copied[i] = append([]string(nil), row...)
	}
	return &Controller{
		registry:    reg,
		rows:        copied,
		sort:        SortState{Column: -1, Direction: DirNone},
		comparators: comparators,
		defaultCmp:  DefaultComparator(tag),
		notifier:    notifier,
		selected:    -1,
	}, nil
}

// Registry returns the column schema registry.
func (c *Controller) Registry() *Registry { return c.registry }

// RowCount returns the number of rows currently in the grid.
func (c *Controller) RowCount() int { return len(c.rows) }

// CellText returns the text of the cell at row, col.
func (c *Controller) CellText(row, col int) string {
	if row < 0 || row >= len(c.rows) || col < 0 || col >= c.registry.Len() {
		return ""
	}
	return c.rows[row][col]
}

// Row returns a copy of the row at index i.
func (c *Controller) Row(i int) []string {
	if i < 0 || i >= len(c.rows) {
		return nil
	}
	return append([]string(nil), c.rows[i]...)
}

// SelectRow marks one row as selected, clearing any previous selection.
func (c *Controller) SelectRow(row int) {
	if row < 0 || row >= len(c.rows) {
		c.selected = -1
		return
	}
	c.selected = row
}

// SelectedRow returns the selected row index, -1 when none.
func (c *Controller) SelectedRow() int { return c.selected }

// FormField pairs a form control with its column's validator, if any.
type FormField struct {
	Control  fields.Control
	Pipeline *validate.Pipeline
}

// ValidateEmployee runs every field's validator against its control's
// current value. All fields are evaluated even after a failure, and each
// failure is reported through the notifier. Returns the aggregate result.
func (c *Controller) ValidateEmployee(form []FormField) bool {
	ok := true
	for _, f := range form {
		if f.Pipeline == nil {
			continue
		}
		if f.Control != nil {
			f.Pipeline.Bind(f.Control)
		}
		out := f.Pipeline.Validate()
		if !out.Success {
			ok = false
			title := "Validation"
			if f.Control != nil {
				title = f.Control.Name()
			}
			c.notifier.Notify(title, out.Message, notify.KindError)
		}
	}
	return ok
}

// SubmitEmployee validates the whole form and, only on full success,
// builds a new row from the control values in schema order, applies each
// column's formatter and appends it, then re-applies the current sort.
// Returns whether the record was inserted.
func (c *Controller) SubmitEmployee(form []FormField) bool {
	if len(form) != c.registry.Len() {
		c.notifier.Notify("Form", fmt.Sprintf("form has %d fields, want %d", len(form), c.registry.Len()), notify.KindError)
		return false
	}
	if !c.ValidateEmployee(form) {
		return false
	}
	values := make([]string, len(form))
	for i, f := range form {
		if f.Control != nil {
			values[i] = f.Control.Value()
		}
	}
	c.AppendRecord(values)
	c.notifier.Notify("Success", "Employee added to the table", notify.KindSuccess)
	return true
}

// AppendRecord formats the raw values and appends them as a new row, then
// re-applies the current sort so the grid order stays consistent.
func (c *Controller) AppendRecord(values []string) {
	row := make([]string, c.registry.Len())
	for i := range row {
		var raw string
		if i < len(values) {
			raw = values[i]
		}
		col, _ := c.registry.Column(i)
		row[i] = safeFormat(col.Formatter, raw)
	}
	c.rows = append(c.rows, row)
	c.Resort()
}

// safeFormat applies a formatter, treating absence or a panic as
// pass-through of the raw value.
func safeFormat(f Formatter, raw string) (out string) {
	out = raw
	if f == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			out = raw
		}
	}()
	out = f.Format(raw)
	return
}
