package validate

import (
	"fmt"
	"strings"
)

// Outcome is the result of running a rule or a whole pipeline. It is a
// value type, produced fresh on every call.
type Outcome struct {
	Success bool
	Message string
}

// Ok returns a passing outcome.
func Ok() Outcome {
	return Outcome{Success: true}
}

// Fail returns a failing outcome with the given message.
func Fail(msg string) Outcome {
	return Outcome{Success: false, Message: msg}
}

// Field is anything whose current value can be read as a string. Controls
// generated by the fields package satisfy it.
type Field interface {
	Value() string
}

// Rule is a single named check over a field value.
type Rule struct {
	Name  string
	Check func(value any) Outcome
}

// Pipeline runs an ordered set of named rules against one bound field.
// A pipeline is bound to at most one field at a time; rebinding replaces
// the prior binding. It holds a reference to the field, never a copy of
// its value.
type Pipeline struct {
	rules []Rule
	field Field
}

// NewPipeline creates a pipeline over the given rules, in order.
func NewPipeline(rules ...Rule) *Pipeline {
	return &Pipeline{rules: rules}
}

// Add appends a rule and returns the pipeline for chaining.
func (p *Pipeline) Add(rule Rule) *Pipeline {
	p.rules = append(p.rules, rule)
	return p
}

// Bind attaches the pipeline to a field. Any previous binding is replaced.
func (p *Pipeline) Bind(f Field) *Pipeline {
	p.field = f
	return p
}

// Bound reports whether a field is currently attached.
func (p *Pipeline) Bound() bool {
	return p.field != nil
}

// Rules returns the rule list in registration order.
func (p *Pipeline) Rules() []Rule {
	out := make([]Rule, len(p.rules))
	copy(out, p.rules)
	return out
}

// Validate reads the bound field's current value, trims surrounding
// whitespace and runs every rule in registration order. There is no
// short-circuit: every failing rule contributes its message, joined with
// "; ". A rule without a predicate fails with a diagnostic, and a
// panicking predicate is converted to a failure rather than propagated.
func (p *Pipeline) Validate() Outcome {
	if p.field == nil {
		return Fail("Field not bound")
	}
	value := strings.TrimSpace(p.field.Value())

	ok := true
	var messages []string
	for _, rule := range p.rules {
		out := runRule(rule, value)
		if !out.Success {
			ok = false
			if out.Message != "" {
				messages = append(messages, out.Message)
			}
		}
	}
	if ok {
		return Ok()
	}
	return Fail(strings.Join(messages, "; "))
}

func runRule(rule Rule, value any) (out Outcome) {
	if rule.Check == nil {
		return Fail(fmt.Sprintf("Validation %s is not defined", rule.Name))
	}
	defer func() {
		if r := recover(); r != nil {
			out = Fail(fmt.Sprint(r))
		}
	}()
	return rule.Check(value)
}
