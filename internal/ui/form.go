package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"staffgrid/internal/fields"
	"staffgrid/internal/grid"
)

// SubmitMsg is sent when the user activates the form's submit control.
type SubmitMsg struct{}

// FormModel is the record-creation form: one generated, labeled,
// validator-bound control per schema entry, in schema order, plus a
// submit control at the end.
type FormModel struct {
	registry *grid.Registry
	controls []fields.Control
	focusIdx int // len(controls) == the submit control
	focused  bool
	width    int
	height   int
}

// NewFormModel builds the form from the column registry. Control
// generation only fails on registry misconfiguration, which NewRegistry
// already rejects.
func NewFormModel(reg *grid.Registry) (FormModel, error) {
	m := FormModel{registry: reg}
	if err := m.buildControls(); err != nil {
		return FormModel{}, err
	}
	return m, nil
}

func (m *FormModel) buildControls() error {
	cols := m.registry.Columns()
	controls := make([]fields.Control, 0, len(cols))
	for _, col := range cols {
		ctrl, err := fields.Generate(true, col.Required, col.Kind, col.Name, col.Options...)
		if err != nil {
			return fmt.Errorf("form field %q: %w", col.Name, err)
		}
		controls = append(controls, ctrl)
	}
	m.controls = controls
	m.focusIdx = 0
	return nil
}

// SetFocused sets focus state, focusing the active control.
func (m *FormModel) SetFocused(f bool) tea.Cmd {
	m.focused = f
	if !f {
		m.blurAll()
		return nil
	}
	return m.focusCurrent()
}

// Focused returns focus state.
func (m FormModel) Focused() bool { return m.focused }

// SetSize sets the pane dimensions.
func (m *FormModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	inner := w - 6
	if inner < 10 {
		inner = 10
	}
	for _, c := range m.controls {
		c.SetWidth(inner)
	}
}

// Fields returns the control/validator pairs in schema order, for the
// controller's validation and submission paths.
func (m FormModel) Fields() []grid.FormField {
	out := make([]grid.FormField, len(m.controls))
	for i, ctrl := range m.controls {
		col, _ := m.registry.Column(i)
		out[i] = grid.FormField{Control: ctrl, Pipeline: col.Validator}
	}
	return out
}

// Reset rebuilds every control, clearing all entered values.
func (m *FormModel) Reset() tea.Cmd {
	if err := m.buildControls(); err != nil {
		return nil
	}
	m.SetSize(m.width, m.height)
	if m.focused {
		return m.focusCurrent()
	}
	return nil
}

func (m *FormModel) blurAll() {
	for _, c := range m.controls {
		c.Blur()
	}
}

func (m *FormModel) focusCurrent() tea.Cmd {
	m.blurAll()
	if m.focusIdx < len(m.controls) {
		return m.controls[m.focusIdx].Focus()
	}
	return nil
}

// Init satisfies tea.Model.
func (m FormModel) Init() tea.Cmd { return nil }

// Update handles key events for the form pane.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "shift+tab":
		if m.focusIdx > 0 {
			m.focusIdx--
			return m, m.focusCurrent()
		}
		return m, nil
	case "down":
		if m.focusIdx < len(m.controls) {
			m.focusIdx++
			return m, m.focusCurrent()
		}
		return m, nil
	case "enter":
		if m.focusIdx == len(m.controls) {
			return m, func() tea.Msg { return SubmitMsg{} }
		}
		m.focusIdx++
		return m, m.focusCurrent()
	}

	if m.focusIdx < len(m.controls) {
		ctrl, cmd := m.controls[m.focusIdx].Update(msg)
		m.controls[m.focusIdx] = ctrl
		return m, cmd
	}
	return m, nil
}

// View renders the form pane.
func (m FormModel) View() string {
	borderStyle := UnfocusedBorder
	if m.focused {
		borderStyle = FocusedBorder
	}

	innerW := m.width - 2
	if innerW < 10 {
		innerW = 10
	}
	innerH := m.height - 2
	if innerH < 3 {
		innerH = 3
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("New employee"))
	b.WriteString("\n\n")
	for i, ctrl := range m.controls {
		view := ctrl.View()
		if m.focused && i == m.focusIdx {
			lines := strings.SplitN(view, "\n", 2)
			lines[0] = AccentText.Render(lines[0])
			view = strings.Join(lines, "\n")
		}
		b.WriteString(view)
		b.WriteString("\n\n")
	}

	submit := "[ Add employee ]"
	if m.focused && m.focusIdx == len(m.controls) {
		submit = AccentText.Bold(true).Render(submit)
	} else {
		submit = DimText.Render(submit)
	}
	b.WriteString(submit)

	return borderStyle.Width(innerW).Height(innerH).MaxHeight(innerH + 2).Render(b.String())
}
