package config

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"staffgrid/internal/fields"
	"staffgrid/internal/format"
	"staffgrid/internal/grid"
	"staffgrid/internal/validate"
)

// Dataset is the YAML grid definition: the column schemas, comparator
// overrides and seed rows a grid starts from. Every run rebuilds the grid
// from its dataset; nothing is written back.
type Dataset struct {
	Title   string      `yaml:"title"`
	Columns []ColumnDef `yaml:"columns"`
	Rows    [][]string  `yaml:"rows"`
}

// ColumnDef describes one column in the definition file.
type ColumnDef struct {
	Name       string   `yaml:"name"`
	Kind       string   `yaml:"kind"`
	Required   bool     `yaml:"required,omitempty"`
	Options    []string `yaml:"options,omitempty"`
	Rules      *RuleDef `yaml:"rules,omitempty"`
	Format     string   `yaml:"format,omitempty"`
	Comparator string   `yaml:"comparator,omitempty"`
}

// RuleDef selects the validation rules bound to a column.
type RuleDef struct {
	MinLength int      `yaml:"min_length,omitempty"`
	Min       *float64 `yaml:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty"`
}

// LoadDataset reads and parses a grid definition file.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(ds.Columns) == 0 {
		return nil, fmt.Errorf("dataset %s defines no columns", path)
	}
	return &ds, nil
}

// DefaultDataset returns the built-in employee grid.
func DefaultDataset() *Dataset {
	min, max := 18.0, 90.0
	return &Dataset{
		Title: "Employees",
		Columns: []ColumnDef{
			{Name: "name", Kind: "text", Required: true, Rules: &RuleDef{MinLength: 4}},
			{Name: "position", Kind: "text", Required: true},
			{Name: "office", Kind: "select", Required: true, Options: []string{
				"Tokyo", "Singapore", "London", "New York", "Edinburgh", "San Francisco",
			}},
			{Name: "age", Kind: "number", Required: true, Rules: &RuleDef{Min: &min, Max: &max}},
			{Name: "salary", Kind: "number", Required: true, Format: "currency", Comparator: "numeric"},
		},
		Rows: [][]string{
			{"Tiger Nixon", "System Architect", "Edinburgh", "61", "$320,800"},
			{"Garrett Winters", "Accountant", "Tokyo", "63", "$170,750"},
			{"Ashton Cox", "Junior Technical Author", "San Francisco", "66", "$86,000"},
			{"Cedric Kelly", "Senior Javascript Developer", "Edinburgh", "22", "$433,060"},
			{"Airi Satou", "Accountant", "Tokyo", "33", "$162,700"},
			{"Brielle Williamson", "Integration Specialist", "New York", "61", "$372,000"},
			{"Herrod Chandler", "Sales Assistant", "San Francisco", "59", "$137,500"},
			{"Rhona Davidson", "Integration Specialist", "Tokyo", "55", "$327,900"},
			{"Colleen Hurst", "Javascript Developer", "San Francisco", "39", "$205,500"},
			{"Sonya Frost", "Software Engineer", "Edinburgh", "23", "$103,600"},
		},
	}
}

// Build turns the definition into the grid collaborators: the frozen
// schema registry, a copy of the seed rows and the comparator overrides.
// The locale tag feeds formatting; the symbol feeds currency columns.
func (d *Dataset) Build(tag language.Tag, symbol string) (*grid.Registry, [][]string, []grid.ComparatorOverride, error) {
	cols := make([]grid.ColumnSchema, 0, len(d.Columns))
	var overrides []grid.ComparatorOverride
	for i, def := range d.Columns {
		kind, err := fields.ParseKind(def.Kind)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("column %q: %w", def.Name, err)
		}
		col := grid.ColumnSchema{
			Name:     def.Name,
			Kind:     kind,
			Required: def.Required,
			Options:  def.Options,
		}
		if pipeline := buildPipeline(def); pipeline != nil {
			col.Validator = pipeline
		}
		switch def.Format {
		case "":
		case "currency":
			col.Formatter = format.NewCurrency(symbol, tag)
		default:
			return nil, nil, nil, fmt.Errorf("column %q: unknown format %q", def.Name, def.Format)
		}
		switch def.Comparator {
		case "":
		case "numeric":
			overrides = append(overrides, grid.ComparatorOverride{Index: i, Comparator: grid.NumericComparator})
		case "length":
			overrides = append(overrides, grid.ComparatorOverride{Index: i, Comparator: grid.LengthComparator})
		default:
			return nil, nil, nil, fmt.Errorf("column %q: unknown comparator %q", def.Name, def.Comparator)
		}
		cols = append(cols, col)
	}
	reg, err := grid.NewRegistry(cols...)
	if err != nil {
		return nil, nil, nil, err
	}
	rows := make([][]string, len(d.Rows))
	for i, row := range d.Rows {
		rows[i] = append([]string(nil), row...)
	}
	return reg, rows, overrides, nil
}

func buildPipeline(def ColumnDef) *validate.Pipeline {
	var rules []validate.Rule
	if def.Required {
		rules = append(rules, validate.NotEmptyRule())
	}
	if def.Rules != nil {
		if def.Rules.MinLength > 0 {
			rules = append(rules, validate.MinLengthRule(def.Rules.MinLength))
		}
		if def.Rules.Min != nil && def.Rules.Max != nil {
			rules = append(rules, validate.RangeRules(*def.Rules.Min, *def.Rules.Max)...)
		}
	}
	if len(rules) == 0 {
		return nil
	}
	return validate.NewPipeline(rules...)
}
