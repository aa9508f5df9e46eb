package fields

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Kind selects which builder generates a control.
type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindSelect Kind = "select"
)

// ParseKind maps a configuration string to a control kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindText:
		return KindText, nil
	case KindNumber:
		return KindNumber, nil
	case KindSelect:
		return KindSelect, nil
	}
	return "", fmt.Errorf("unknown control kind %q", s)
}

// ChangedMsg is emitted when a selection-kind control changes its value.
type ChangedMsg struct {
	Name string
}

// Control is a focusable form element whose value is readable and
// writable as a string. Controls satisfy validate.Field.
type Control interface {
	Name() string
	Value() string
	SetValue(string)
	SetWidth(int)
	Focus() tea.Cmd
	Blur()
	Update(tea.Msg) (Control, tea.Cmd)
	View() string
}

// inputControl backs text and number columns with a single-line input.
type inputControl struct {
	name  string
	input textinput.Model
}

func newInputControl(name string, numeric bool) *inputControl {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 20
	ti.Prompt = ""
	if numeric {
		ti.Placeholder = "0"
	}
	return &inputControl{name: name, input: ti}
}

func (c *inputControl) Name() string  { return c.name }
func (c *inputControl) Value() string { return c.input.Value() }

func (c *inputControl) SetValue(v string) { c.input.SetValue(v) }

func (c *inputControl) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	c.input.Width = w
}

func (c *inputControl) Focus() tea.Cmd {
	cmd := c.input.Focus()
	c.input.CursorEnd()
	return cmd
}

func (c *inputControl) Blur() { c.input.Blur() }

func (c *inputControl) Update(msg tea.Msg) (Control, tea.Cmd) {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *inputControl) View() string { return c.input.View() }

// selectControl offers a fixed option list, cycled with the arrow keys.
// Changing the selection announces itself with a ChangedMsg.
type selectControl struct {
	name    string
	options []string
	index   int
	focused bool
	width   int
}

func newSelectControl(name string, options []string) *selectControl {
	return &selectControl{name: name, options: options, width: 20}
}

func (c *selectControl) Name() string { return c.name }

func (c *selectControl) Value() string {
	if len(c.options) == 0 {
		return ""
	}
	return c.options[c.index]
}

func (c *selectControl) SetValue(v string) {
	for i, opt := range c.options {
		if opt == v {
			c.index = i
			return
		}
	}
	c.index = 0
}

func (c *selectControl) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	c.width = w
}

func (c *selectControl) Focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *selectControl) Blur() { c.focused = false }

func (c *selectControl) Update(msg tea.Msg) (Control, tea.Cmd) {
	if !c.focused || len(c.options) == 0 {
		return c, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch key.String() {
	case "left":
		c.index = (c.index + len(c.options) - 1) % len(c.options)
	case "right", " ":
		c.index = (c.index + 1) % len(c.options)
	default:
		return c, nil
	}
	name := c.name
	return c, func() tea.Msg { return ChangedMsg{Name: name} }
}

func (c *selectControl) View() string {
	val := c.Value()
	if runes := []rune(val); len(runes) > c.width {
		val = string(runes[:c.width])
	}
	if c.focused {
		return "‹ " + val + " ›"
	}
	return "  " + val
}
