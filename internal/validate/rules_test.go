package validate

import (
	"strings"
	"testing"
)

func TestNotEmptyRule(t *testing.T) {
	check := NotEmptyRule().Check

	failing := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"whitespace string", "   \t "},
		{"empty slice", []string{}},
		{"empty map", map[string]int{}},
	}
	for _, tc := range failing {
		if out := check(tc.value); out.Success {
			t.Errorf("%s: expected failure", tc.name)
		}
	}

	passing := []struct {
		name  string
		value any
	}{
		{"string", "x"},
		{"slice", []int{1}},
		{"map", map[string]int{"a": 1}},
		{"zero int", 0},
		{"zero float", 0.0},
		{"negative", -3},
	}
	for _, tc := range passing {
		if out := check(tc.value); !out.Success {
			t.Errorf("%s: expected pass, got %q", tc.name, out.Message)
		}
	}
}

func TestNumberRangeBounds(t *testing.T) {
	p := NumberRange(18, 90)

	cases := []struct {
		value string
		ok    bool
	}{
		{"17", false},
		{"91", false},
		{"18", true},
		{"90", true},
		{"45", true},
	}
	for _, tc := range cases {
		p.Bind(stubField(tc.value))
		out := p.Validate()
		if out.Success != tc.ok {
			t.Errorf("value %q: success=%v, want %v (%s)", tc.value, out.Success, tc.ok, out.Message)
		}
	}
}

func TestNumberRangeNonNumericFailsBothRules(t *testing.T) {
	p := NumberRange(18, 90)
	p.Bind(stubField("abc"))
	out := p.Validate()
	if out.Success {
		t.Fatal("expected failure for non-numeric value")
	}
	if !strings.Contains(out.Message, "minimum") || !strings.Contains(out.Message, "maximum") {
		t.Fatalf("expected both rules to report, got %q", out.Message)
	}
	if !strings.Contains(out.Message, "; ") {
		t.Fatalf("expected joined messages, got %q", out.Message)
	}
}

func TestNumberRangeBoundMessages(t *testing.T) {
	p := NumberRange(18, 90)

	p.Bind(stubField("17"))
	if out := p.Validate(); out.Message != "Value must be at least 18" {
		t.Fatalf("unexpected min message %q", out.Message)
	}

	p.Bind(stubField("91"))
	if out := p.Validate(); out.Message != "Value must be at most 90" {
		t.Fatalf("unexpected max message %q", out.Message)
	}
}

func TestMinLength(t *testing.T) {
	p := MinLength(4)

	p.Bind(stubField("abc"))
	if out := p.Validate(); out.Success {
		t.Fatal("expected failure for short value")
	}

	p.Bind(stubField("abcd"))
	if out := p.Validate(); !out.Success {
		t.Fatalf("expected pass: %s", out.Message)
	}

	// Surrounding whitespace does not count toward the length.
	p.Bind(stubField("  ab  "))
	if out := p.Validate(); out.Success {
		t.Fatal("expected failure for padded short value")
	}
}
