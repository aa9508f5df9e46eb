package grid

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the sort order applied to the active column.
type Direction int

const (
	DirNone Direction = iota
	DirAscending
	DirDescending
)

func (d Direction) String() string {
	switch d {
	case DirAscending:
		return "ascending"
	case DirDescending:
		return "descending"
	}
	return "none"
}

// SortState holds the active column and direction for one grid. Column -1
// means the grid has never been sorted.
type SortState struct {
	Column    int
	Direction Direction
}

// Comparator orders two trimmed cell values. Negative means a before b.
type Comparator func(a, b string) int

// ComparatorOverride assigns a custom comparator to one column index.
// Columns without an override use the default comparator.
type ComparatorOverride struct {
	Index      int
	Comparator Comparator
}

// Values parse as numbers when, after stripping internal whitespace and
// commas, they match a signed decimal.
var numericValue = regexp.MustCompile(`^-?\d+([.,]\d+)?$`)

// DefaultComparator builds the fallback ordering: empty values sort
// first, fully numeric values compare numerically, anything else falls
// back to a case-insensitive comparison under the given locale.
func DefaultComparator(tag language.Tag) Comparator {
	coll := collate.New(tag, collate.IgnoreCase)
	return func(a, b string) int {
		switch {
		case a == "" && b == "":
			return 0
		case a == "":
			return -1
		case b == "":
			return 1
		}
		na, aNum := parseNumeric(a)
		nb, bNum := parseNumeric(b)
		if aNum && bNum {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			}
			return 0
		}
		return coll.CompareString(a, b)
	}
}

// NumericComparator orders values strictly as numbers, tolerating a
// currency symbol prefix; values that do not parse sort after those that
// do. Available as the "numeric" override in grid definition files.
func NumericComparator(a, b string) int {
	na, aNum := parseNumeric(stripCurrency(a))
	nb, bNum := parseNumeric(stripCurrency(b))
	switch {
	case aNum && bNum:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return strings.Compare(a, b)
}

// LengthComparator orders values by character count. Available as the
// "length" override in grid definition files.
func LengthComparator(a, b string) int {
	return len([]rune(a)) - len([]rune(b))
}

func stripCurrency(s string) string {
	return strings.TrimLeft(s, "$€£¥ ")
}

func parseNumeric(s string) (float64, bool) {
	normalized := strings.NewReplacer(" ", "", "\t", "", ",", "").Replace(s)
	if !numericValue.MatchString(normalized) {
		return 0, false
	}
	normalized = strings.ReplaceAll(normalized, ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Resort re-applies the current sort state. A grid that has never been
// sorted defaults to column 0 ascending. Used after structural changes so
// the row order keeps matching the active header mark.
func (c *Controller) Resort() {
	if c.sort.Column < 0 {
		c.sort = SortState{Column: 0, Direction: DirAscending}
	}
	c.applySort()
}

// SortBy handles a header activation. Re-activating the active column
// flips its direction; any other column becomes active ascending. Once a
// column is active its direction only ever toggles between ascending and
// descending.
func (c *Controller) SortBy(col int) {
	if col < 0 || col >= c.registry.Len() {
		return
	}
	if col == c.sort.Column {
		if c.sort.Direction == DirAscending {
			c.sort.Direction = DirDescending
		} else {
			c.sort.Direction = DirAscending
		}
	} else {
		c.sort = SortState{Column: col, Direction: DirAscending}
	}
	c.applySort()
}

// Sort returns the current sort state.
func (c *Controller) Sort() SortState { return c.sort }

// HeaderMarks returns one direction per column; the active column carries
// the sort direction and every other column carries none.
func (c *Controller) HeaderMarks() []Direction {
	marks := make([]Direction, c.registry.Len())
	if c.sort.Column >= 0 && c.sort.Column < len(marks) {
		marks[c.sort.Column] = c.sort.Direction
	}
	return marks
}

func (c *Controller) applySort() {
	col := c.sort.Column
	sign := 1
	if c.sort.Direction == DirDescending {
		sign = -1
	}
	cmp := c.comparators[col]
	if cmp == nil {
		cmp = c.defaultCmp
	}
	sort.SliceStable(c.rows, func(i, j int) bool {
		a := strings.TrimSpace(c.rows[i][col])
		b := strings.TrimSpace(c.rows[j][col])
		return sign*cmp(a, b) < 0
	})
}
