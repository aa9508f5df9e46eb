package fields

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Builder produces a control for one column kind. Variant builders stand
// in for subclassing: the caller picks one by kind tag.
type Builder interface {
	Generate(name string, required bool, options []string) (Control, error)
}

type textBuilder struct{}

func (textBuilder) Generate(name string, required bool, _ []string) (Control, error) {
	return newInputControl(name, false), nil
}

type numberBuilder struct{}

func (numberBuilder) Generate(name string, required bool, _ []string) (Control, error) {
	return newInputControl(name, true), nil
}

type selectBuilder struct{}

func (selectBuilder) Generate(name string, required bool, options []string) (Control, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("select field %q has no options", name)
	}
	return newSelectControl(name, options), nil
}

var builders = map[Kind]Builder{
	KindText:   textBuilder{},
	KindNumber: numberBuilder{},
	KindSelect: selectBuilder{},
}

// Generate builds a control of the given kind. With labeled set, the
// control renders under a label line derived from its name; required
// fields are marked. Unknown kinds are a configuration error.
func Generate(labeled bool, required bool, kind Kind, name string, options ...string) (Control, error) {
	b, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("unknown control kind %q", kind)
	}
	ctrl, err := b.Generate(name, required, options)
	if err != nil {
		return nil, err
	}
	if labeled {
		return &labeledControl{Control: ctrl, required: required}, nil
	}
	return ctrl, nil
}

// labeledControl decorates a control with a label line for form use.
type labeledControl struct {
	Control
	required bool
}

func (c *labeledControl) Update(msg tea.Msg) (Control, tea.Cmd) {
	inner, cmd := c.Control.Update(msg)
	c.Control = inner
	return c, cmd
}

// Label returns the display label for the wrapped control.
func (c *labeledControl) Label() string {
	label := titleCase(c.Control.Name())
	if c.required {
		label += " *"
	}
	return label
}

func (c *labeledControl) View() string {
	return c.Label() + "\n" + c.Control.View()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
