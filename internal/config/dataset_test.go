package config

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultDatasetBuilds(t *testing.T) {
	ds := DefaultDataset()
	reg, rows, overrides, err := ds.Build(language.English, "$")
	if err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 5 {
		t.Fatalf("expected 5 columns, got %d", reg.Len())
	}
	if len(rows) != 10 {
		t.Fatalf("expected 10 seed rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != reg.Len() {
			t.Fatalf("seed row %d has %d cells", i, len(row))
		}
	}

	salary, ok := reg.Index("salary")
	if !ok {
		t.Fatal("salary column missing")
	}
	col, _ := reg.Column(salary)
	if col.Formatter == nil {
		t.Fatal("salary column must carry the currency formatter")
	}
	if got := col.Formatter.Format("162700"); got != "$162,700" {
		t.Fatalf("currency formatter misconfigured: %q", got)
	}

	if len(overrides) != 1 || overrides[0].Index != salary {
		t.Fatalf("expected a numeric override on the salary column, got %+v", overrides)
	}

	name, _ := reg.Index("name")
	nameCol, _ := reg.Column(name)
	if nameCol.Validator == nil {
		t.Fatal("name column must carry a validator")
	}
}

func TestBuildRowsAreCopies(t *testing.T) {
	ds := DefaultDataset()
	_, rows, _, err := ds.Build(language.English, "$")
	if err != nil {
		t.Fatal(err)
	}
	rows[0][0] = "mutated"
	if ds.Rows[0][0] == "mutated" {
		t.Fatal("build must not alias the dataset's row storage")
	}
}

func TestLoadDatasetFromYAML(t *testing.T) {
	src := `
title: Contractors
columns:
  - name: name
    kind: text
    required: true
    rules:
      min_length: 2
  - name: rate
    kind: number
    format: currency
    comparator: numeric
rows:
  - ["Ada", "120"]
  - ["Grace", "150"]
`
	path := filepath.Join(t.TempDir(), "grid.yaml")
	if err := os.WriteFile(path, []byte(src), 0600); err != nil {
		t.Fatal(err)
	}

	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Title != "Contractors" || len(ds.Columns) != 2 || len(ds.Rows) != 2 {
		t.Fatalf("unexpected dataset %+v", ds)
	}
	if ds.Columns[0].Rules == nil || ds.Columns[0].Rules.MinLength != 2 {
		t.Fatalf("rules not parsed: %+v", ds.Columns[0].Rules)
	}

	if _, _, _, err := ds.Build(language.English, "€"); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDatasetRejectsEmptyColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	if err := os.WriteFile(path, []byte("title: Empty\nrows: []\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDataset(path); err == nil {
		t.Fatal("a dataset without columns must be rejected")
	}
}

func TestBuildRejectsUnknownKind(t *testing.T) {
	ds := &Dataset{Columns: []ColumnDef{{Name: "x", Kind: "checkbox"}}}
	if _, _, _, err := ds.Build(language.English, "$"); err == nil {
		t.Fatal("unknown kind must fail the build")
	}
}

func TestBuildRejectsUnknownFormatAndComparator(t *testing.T) {
	ds := &Dataset{Columns: []ColumnDef{{Name: "x", Kind: "text", Format: "percent"}}}
	if _, _, _, err := ds.Build(language.English, "$"); err == nil {
		t.Fatal("unknown format must fail the build")
	}
	ds = &Dataset{Columns: []ColumnDef{{Name: "x", Kind: "text", Comparator: "random"}}}
	if _, _, _, err := ds.Build(language.English, "$"); err == nil {
		t.Fatal("unknown comparator must fail the build")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.MouseEnabled() {
		t.Fatal("mouse must default to enabled")
	}

	off := false
	cfg.Locale = "en-GB"
	cfg.Currency = "£"
	cfg.Mouse = &off
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Locale != "en-GB" || loaded.Currency != "£" || loaded.MouseEnabled() {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}
