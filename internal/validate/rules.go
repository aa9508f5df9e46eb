package validate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MinLength returns a pipeline whose single rule fails when the trimmed
// value is shorter than min characters.
func MinLength(min int) *Pipeline {
	return NewPipeline(MinLengthRule(min))
}

// MinLengthRule is the rule behind MinLength, exported so pipelines can
// combine it with other rules.
func MinLengthRule(min int) Rule {
	return Rule{
		Name: "minLength",
		Check: func(value any) Outcome {
			s := strings.TrimSpace(asString(value))
			if utf8.RuneCountInString(s) < min {
				return Fail(fmt.Sprintf("Value must be at least %d characters long", min))
			}
			return Ok()
		},
	}
}

// NumberRange returns a pipeline with two independent rules, one per
// bound. Each rule reports a non-numeric value before checking its bound,
// so a non-numeric input fails both.
func NumberRange(min, max float64) *Pipeline {
	return NewPipeline(RangeRules(min, max)...)
}

// RangeRules builds the min and max rules used by NumberRange. Bounds are
// inclusive.
func RangeRules(min, max float64) []Rule {
	return []Rule{
		{
			Name: "min",
			Check: func(value any) Outcome {
				n, ok := toNumber(value)
				if !ok {
					return Fail("Value must be a number to check the minimum")
				}
				if n < min {
					return Fail(fmt.Sprintf("Value must be at least %s", formatBound(min)))
				}
				return Ok()
			},
		},
		{
			Name: "max",
			Check: func(value any) Outcome {
				n, ok := toNumber(value)
				if !ok {
					return Fail("Value must be a number to check the maximum")
				}
				if n > max {
					return Fail(fmt.Sprintf("Value must be at most %s", formatBound(max)))
				}
				return Ok()
			},
		},
	}
}

// NotEmpty returns a pipeline whose single rule rejects empty values.
func NotEmpty() *Pipeline {
	return NewPipeline(NotEmptyRule())
}

// NotEmptyRule fails for nil, blank strings, empty sequences and keyless
// maps. Numbers always pass: zero is a value, not an absence.
func NotEmptyRule() Rule {
	return Rule{
		Name:  "notEmpty",
		Check: notEmpty,
	}
}

func notEmpty(value any) Outcome {
	if value == nil {
		return Fail("Value is empty")
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Fail("Value is empty")
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		if strings.TrimSpace(rv.String()) == "" {
			return Fail("Value is empty")
		}
	case reflect.Slice, reflect.Array, reflect.Map:
		if rv.Len() == 0 {
			return Fail("Value is empty")
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		// Numeric values are never empty, including zero.
	}
	return Ok()
}

func asString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
