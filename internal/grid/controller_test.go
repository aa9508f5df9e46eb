package grid

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"staffgrid/internal/fields"
	"staffgrid/internal/notify"
	"staffgrid/internal/validate"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func control(t *testing.T, reg *Registry, col int, value string) fields.Control {
	t.Helper()
	schema, ok := reg.Column(col)
	if !ok {
		t.Fatalf("no column %d", col)
	}
	ctrl, err := fields.Generate(false, schema.Required, schema.Kind, schema.Name, schema.Options...)
	if err != nil {
		t.Fatal(err)
	}
	ctrl.SetValue(value)
	return ctrl
}

func formFor(t *testing.T, reg *Registry, values ...string) []FormField {
	t.Helper()
	form := make([]FormField, len(values))
	for i, v := range values {
		schema, _ := reg.Column(i)
		form[i] = FormField{Control: control(t, reg, i, v), Pipeline: schema.Validator}
	}
	return form
}

func TestNewControllerRejectsNilCollaborators(t *testing.T) {
	reg := validatedRegistry(t)
	if _, err := NewController(nil, nil, nil, notify.NewRecorder(), language.English); err == nil {
		t.Fatal("nil registry must fail construction")
	}
	if _, err := NewController(reg, nil, nil, nil, language.English); err == nil {
		t.Fatal("nil notifier must fail construction")
	}
}

func TestNewControllerRejectsRaggedRows(t *testing.T) {
	reg := validatedRegistry(t)
	_, err := NewController(reg, [][]string{{"only one cell"}}, nil, notify.NewRecorder(), language.English)
	if err == nil {
		t.Fatal("ragged rows must fail construction")
	}
}

func TestNewControllerRejectsBadOverrides(t *testing.T) {
	reg := validatedRegistry(t)
	rec := notify.NewRecorder()
	if _, err := NewController(reg, nil, []ComparatorOverride{{Index: 9, Comparator: LengthComparator}}, rec, language.English); err == nil {
		t.Fatal("out of range override must fail construction")
	}
	if _, err := NewController(reg, nil, []ComparatorOverride{{Index: 0}}, rec, language.English); err == nil {
		t.Fatal("nil override comparator must fail construction")
	}
}

func TestNewControllerCopiesSeedRows(t *testing.T) {
	reg := validatedRegistry(t)
	seed := [][]string{{"Airi Satou", "Tokyo", "33"}}
	ctrl, err := NewController(reg, seed, nil, notify.NewRecorder(), language.English)
	if err != nil {
		t.Fatal(err)
	}
	seed[0][0] = "mutated"
	if got := ctrl.CellText(0, 0); got != "Airi Satou" {
		t.Fatalf("controller shares the caller's row storage: %q", got)
	}
}

func TestValidateEmployeeRunsEveryField(t *testing.T) {
	ctrl, rec := validatedController(t)
	reg := ctrl.Registry()

	// Two invalid fields: both must be reported, not just the first.
	form := formFor(t, reg, "Al", "Tokyo", "7")
	if ctrl.ValidateEmployee(form) {
		t.Fatal("invalid form must not validate")
	}

	notices := rec.All()
	if len(notices) != 2 {
		t.Fatalf("expected a notice per failing field, got %d: %+v", len(notices), notices)
	}
	if notices[0].Title != "name" || notices[1].Title != "age" {
		t.Fatalf("unexpected notice titles: %+v", notices)
	}
	for _, n := range notices {
		if n.Kind != notify.KindError {
			t.Fatalf("expected error kind, got %+v", n)
		}
	}
}

func TestSubmitEmployeeBlockedByInvalidField(t *testing.T) {
	ctrl, rec := validatedController(t)
	before := ctrl.RowCount()

	form := formFor(t, ctrl.Registry(), "Al", "Tokyo", "30")
	if ctrl.SubmitEmployee(form) {
		t.Fatal("submit with an invalid field must be refused")
	}
	if ctrl.RowCount() != before {
		t.Fatal("refused submit must not insert a row")
	}
	for _, n := range rec.All() {
		if n.Kind == notify.KindSuccess {
			t.Fatalf("refused submit must not report success: %+v", n)
		}
	}
}

func TestSubmitEmployeeAppendsAndResorts(t *testing.T) {
	ctrl, rec := validatedController(t)
	ctrl.SortBy(0) // Airi Satou, Cedric Kelly

	form := formFor(t, ctrl.Registry(), "Brielle Williamson", "Singapore", "61")
	if !ctrl.SubmitEmployee(form) {
		t.Fatal("valid form must submit")
	}
	if ctrl.RowCount() != 3 {
		t.Fatalf("expected 3 rows, got %d", ctrl.RowCount())
	}
	if got := ctrl.CellText(1, 0); got != "Brielle Williamson" {
		t.Fatalf("new row not sorted into place, row 1 is %q", got)
	}

	notices := rec.All()
	last := notices[len(notices)-1]
	if last.Kind != notify.KindSuccess || last.Message != "Employee added to the table" {
		t.Fatalf("unexpected submit notice %+v", last)
	}
}

func TestSubmitEmployeeWrongFieldCount(t *testing.T) {
	ctrl, rec := validatedController(t)
	if ctrl.SubmitEmployee(nil) {
		t.Fatal("short form must be refused")
	}
	notices := rec.All()
	if len(notices) != 1 || notices[0].Kind != notify.KindError {
		t.Fatalf("expected a single error notice, got %+v", notices)
	}
}

type upperFormatter struct{}

func (upperFormatter) Format(raw string) string { return strings.ToUpper(raw) }

type panickyFormatter struct{}

func (panickyFormatter) Format(string) string { panic("formatter exploded") }

func TestAppendRecordAppliesFormatter(t *testing.T) {
	reg, err := NewRegistry(
		ColumnSchema{Name: "name", Kind: fields.KindText, Formatter: upperFormatter{}},
	)
	if err != nil {
		t.Fatal(err)
	}
	ctrl, err := NewController(reg, nil, nil, notify.NewRecorder(), language.English)
	if err != nil {
		t.Fatal(err)
	}
	ctrl.AppendRecord([]string{"quinn"})
	if got := ctrl.CellText(0, 0); got != "QUINN" {
		t.Fatalf("formatter not applied, got %q", got)
	}
}

func TestAppendRecordFormatterPanicPassesThrough(t *testing.T) {
	reg, err := NewRegistry(
		ColumnSchema{Name: "name", Kind: fields.KindText, Formatter: panickyFormatter{}},
	)
	if err != nil {
		t.Fatal(err)
	}
	ctrl, err := NewController(reg, nil, nil, notify.NewRecorder(), language.English)
	if err != nil {
		t.Fatal(err)
	}
	ctrl.AppendRecord([]string{"quinn"})
	if got := ctrl.CellText(0, 0); got != "quinn" {
		t.Fatalf("panicking formatter must pass the raw value through, got %q", got)
	}
}

func TestValidateEmployeeRebindsSharedPipeline(t *testing.T) {
	pipeline := validate.MinLength(4)
	reg, err := NewRegistry(
		ColumnSchema{Name: "name", Kind: fields.KindText, Validator: pipeline},
	)
	if err != nil {
		t.Fatal(err)
	}
	ctrl, err := NewController(reg, nil, nil, notify.NewRecorder(), language.English)
	if err != nil {
		t.Fatal(err)
	}

	first := control(t, reg, 0, "long enough")
	if !ctrl.ValidateEmployee([]FormField{{Control: first, Pipeline: pipeline}}) {
		t.Fatal("valid control must pass")
	}

	// The same pipeline instance serves the next control; validation must
	// read the new binding, not the stale one.
	second := control(t, reg, 0, "no")
	if ctrl.ValidateEmployee([]FormField{{Control: second, Pipeline: pipeline}}) {
		t.Fatal("pipeline still bound to the previous control")
	}
}

func TestSelectRowExclusive(t *testing.T) {
	ctrl, _ := validatedController(t)
	ctrl.SelectRow(0)
	ctrl.SelectRow(1)
	if got := ctrl.SelectedRow(); got != 1 {
		t.Fatalf("expected selection to move to row 1, got %d", got)
	}
	ctrl.SelectRow(99)
	if got := ctrl.SelectedRow(); got != -1 {
		t.Fatalf("out of range selection must clear, got %d", got)
	}
}
