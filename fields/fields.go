// Package fields holds the ordered name/value rows a capability node
// resolves to, along with how each row is classified.
package fields

import (
	"fmt"
	"strings"
)

// Class says where a row's value came from.
type Class int

const (
	// BaselineRequired is guaranteed by the feature level itself.
	BaselineRequired Class = iota
	// OptionalPresent was reported supported by a live query.
	OptionalPresent
	// OptionalAbsent was queried and is unsupported, or the query failed.
	OptionalAbsent
	// NotApplicable cannot exist on this level or interface.
	NotApplicable
)

var classNames = [...]string{
	BaselineRequired: "baseline",
	OptionalPresent:  "optional-present",
	OptionalAbsent:   "optional-absent",
	NotApplicable:    "not-applicable",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

func (c Class) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Class) UnmarshalText(b []byte) error {
	for i, n := range classNames {
		if n == string(b) {
			*c = Class(i)
			return nil
		}
	}
	return fmt.Errorf("unknown field class %q", b)
}

// View selects which rows a consumer wants.
type View int

const (
	// ViewInteresting hides OptionalAbsent and NotApplicable rows.
	ViewInteresting View = iota
	ViewAll
)

func (v View) String() string {
	if v == ViewAll {
		return "all"
	}
	return "interesting"
}

// ParseView accepts "all" and "interesting"; anything else is interesting.
func ParseView(s string) View {
	if strings.EqualFold(s, "all") {
		return ViewAll
	}
	return ViewInteresting
}

// Shows reports whether a row of class c belongs in view v.
func (v View) Shows(c Class) bool {
	if v == ViewAll {
		return true
	}
	return c == BaselineRequired || c == OptionalPresent
}

// Common values.
const (
	Yes = "Yes"
	No  = "No"
	NA  = "n/a"
)

// Row is one capability field. Most tables have a single value column.
type Row struct {
	Name   string   `json:"name" yaml:"name" toml:"name"`
	Values []string `json:"values" yaml:"values" toml:"values"`
	Class  Class    `json:"class" yaml:"class" toml:"class"`
}

// Value joins the row's values for single-column consumers.
func (r Row) Value() string { return strings.Join(r.Values, "   ") }

// Table is the resolved content of one node.
type Table struct {
	// Columns names the header, starting with the name column.
	Columns []string `json:"columns" yaml:"columns" toml:"columns"`
	Rows    []Row    `json:"rows" yaml:"rows" toml:"rows"`
	// SeeAlso names a sibling node holding the canonical detail.
	SeeAlso string `json:"see_also,omitempty" yaml:"see_also,omitempty" toml:"see_also,omitempty"`
}

// NameValue is the default two-column header.
var NameValue = []string{"Name", "Value"}

// NewTable returns an empty table with the given header, or
// Name/Value when none is given.
func NewTable(columns ...string) *Table {
	if len(columns) == 0 {
		columns = NameValue
	}
	return &Table{Columns: columns}
}

// Add appends a row.
func (t *Table) Add(name string, class Class, values ...string) {
	t.Rows = append(t.Rows, Row{Name: name, Values: values, Class: class})
}

// Required appends a baseline row.
func (t *Table) Required(name, value string) { t.Add(name, BaselineRequired, value) }

// Flag appends a baseline yes/no. A baseline "no" cannot exist on the
// level, so it is NotApplicable.
func (t *Table) Flag(name string, v bool) {
	if v {
		t.Add(name, BaselineRequired, Yes)
		return
	}
	t.Add(name, NotApplicable, No)
}

// Queried appends a plain Yes/No answer from a live query.
func (t *Table) Queried(name string, v bool) {
	if v {
		t.Add(name, OptionalPresent, Yes)
		return
	}
	t.Add(name, OptionalAbsent, No)
}

// Text appends a query-derived value whose presence the caller decided.
func (t *Table) Text(name, value string, present bool) {
	if present {
		t.Add(name, OptionalPresent, value)
		return
	}
	t.Add(name, OptionalAbsent, value)
}

// NotApplicable appends an "n/a" row.
func (t *Table) NotApplicable(name string) { t.Add(name, NotApplicable, NA) }

// Note appends a free-text note row.
func (t *Table) Note(text string) { t.Add("Note", BaselineRequired, text) }

// Filter returns the rows view v shows, keeping the header.
func (t Table) Filter(v View) Table {
	out := Table{Columns: t.Columns, SeeAlso: t.SeeAlso}
	for _, r := range t.Rows {
		if v.Shows(r.Class) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// Lookup returns the first row named name.
func (t Table) Lookup(name string) (Row, bool) {
	for _, r := range t.Rows {
		if r.Name == name {
			return r, true
		}
	}
	return Row{}, false
}

// Line is a flattened row for print-style consumers.
type Line struct {
	Name  string
	Value string
}

// Lines flattens the table for consumers that print one value per name.
func (t Table) Lines() []Line {
	out := make([]Line, len(t.Rows))
	for i, r := range t.Rows {
		if len(t.Columns) > 2 && len(r.Values) > 1 {
			parts := make([]string, len(r.Values))
			for j, v := range r.Values {
				if j+1 < len(t.Columns) {
					parts[j] = t.Columns[j+1] + ": " + v
				} else {
					parts[j] = v
				}
			}
			out[i] = Line{Name: r.Name, Value: strings.Join(parts, "   ")}
			continue
		}
		out[i] = Line{Name: r.Name, Value: r.Value()}
	}
	return out
}
