package grid

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"staffgrid/internal/fields"
	"staffgrid/internal/notify"
	"staffgrid/internal/validate"
)

// Editor is the single transient control replacing a cell while it is
// being edited. It references the origin cell by position; the cell still
// belongs to the grid. At most one editor is live per controller, and its
// absence is the idle state.
type Editor struct {
	Row, Col int
	control  fields.Control
	pipeline *validate.Pipeline
	onDone   func()
}

// Control exposes the replacement control, mainly for rendering.
func (e *Editor) Control() fields.Control { return e.control }

// Editing reports whether an inline editor is currently open.
func (c *Controller) Editing() bool { return c.editor != nil }

// ActiveEditor returns the live editor, nil when idle.
func (c *Controller) ActiveEditor() *Editor { return c.editor }

// EditCell opens an inline editor over the cell at row, col, seeded with
// the cell's current text and sized to the given display width. A column
// index with no schema entry is a configuration mismatch and is silently
// ignored. If another editor is already open its commit path runs first;
// when that commit is rejected the old editor stays open and no new one
// is created.
func (c *Controller) EditCell(row, col, width int) tea.Cmd {
	schema, ok := c.registry.Column(col)
	if !ok || row < 0 || row >= len(c.rows) {
		return nil
	}
	if c.editor != nil {
		// Committing the pending edit can re-sort the grid, so track the
		// target record itself rather than its index across the commit.
		target := c.rows[row]
		if done := c.CompleteEditor(); !done {
			return nil
		}
		row = c.rowIndex(target)
		if row < 0 {
			return nil
		}
	}
	ctrl, err := fields.Generate(false, schema.Required, schema.Kind, schema.Name, schema.Options...)
	if err != nil {
		return nil
	}
	ctrl.SetValue(c.rows[row][col])
	ctrl.SetWidth(width)
	if schema.Validator != nil {
		schema.Validator.Bind(ctrl)
	}
	c.editor = &Editor{
		Row:      row,
		Col:      col,
		control:  ctrl,
		pipeline: schema.Validator,
		onDone: func() {
			if c.sort.Column >= 0 {
				c.applySort()
			}
		},
	}
	return ctrl.Focus()
}

// rowIndex locates a row by identity. Sorting permutes the outer slice
// only, so a row's cell storage pins it across reorders.
func (c *Controller) rowIndex(target []string) int {
	for i, r := range c.rows {
		if len(r) > 0 && len(target) > 0 && &r[0] == &target[0] {
			return i
		}
	}
	return -1
}

// CompleteEditor runs the active editor's commit path: validate, and on
// success copy the control's current value back into the origin cell,
// destroy the control and re-sort if the grid is sorted. On a validation
// failure the editor reports the error and remains open. Returns whether
// the grid is idle afterwards.
func (c *Controller) CompleteEditor() bool {
	e := c.editor
	if e == nil {
		return true
	}
	schema, _ := c.registry.Column(e.Col)
	if e.pipeline != nil {
		out := e.pipeline.Validate()
		if !out.Success {
			c.notifier.Notify(schema.Name, out.Message, notify.KindError)
			return false
		}
	}
	c.notifier.Notify("Success", fmt.Sprintf("%s updated", schema.Name), notify.KindSuccess)
	e.control.Blur()
	c.rows[e.Row][e.Col] = e.control.Value()
	c.editor = nil
	if e.onDone != nil {
		e.onDone()
	}
	return true
}

// UpdateEditor forwards an input event to the active editor's control.
func (c *Controller) UpdateEditor(msg tea.Msg) tea.Cmd {
	if c.editor == nil {
		return nil
	}
	ctrl, cmd := c.editor.control.Update(msg)
	c.editor.control = ctrl
	return cmd
}
