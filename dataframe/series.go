package dataframe

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the value kind of a Series.
type Kind int

const (
	// KindString holds arbitrary text cells.
	KindString Kind = iota
	// KindFloat holds float64 cells, with NaN marking missing values.
	KindFloat
)

// Series is a single named column. All cells share the series Kind.
type Series struct {
	name    string
	kind    Kind
	floats  []float64
	strings []string
}

// NewStringSeries creates a string column with the given cells.
func NewStringSeries(name string, values []string) *Series {
	s := &Series{name: name, kind: KindString}
	s.strings = append(s.strings, values...)
	return s
}

// NewFloatSeries creates a float column with the given cells.
func NewFloatSeries(name string, values []float64) *Series {
	s := &Series{name: name, kind: KindFloat}
	s.floats = append(s.floats, values...)
	return s
}

// InferSeries creates a series from raw text cells, choosing KindFloat
// when every non-empty cell parses as a float64. Empty cells in a float
// column become NaN.
func InferSeries(name string, cells []string) *Series {
	numeric := false
	for _, c := range cells {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, err := strconv.ParseFloat(c, 64); err != nil {
			return NewStringSeries(name, cells)
		}
		numeric = true
	}
	if !numeric {
		// All cells empty (or no cells): keep as strings.
		return NewStringSeries(name, cells)
	}
	floats := make([]float64, len(cells))
	for i, c := range cells {
		c = strings.TrimSpace(c)
		if c == "" {
			floats[i] = math.NaN()
			continue
		}
		v, _ := strconv.ParseFloat(c, 64)
		floats[i] = v
	}
	return &Series{name: name, kind: KindFloat, floats: floats}
}

// Name returns the column name.
func (s *Series) Name() string { return s.name }

// Kind returns the value kind of the series.
func (s *Series) Kind() Kind { return s.kind }

// Len returns the number of cells.
func (s *Series) Len() int {
	if s.kind == KindFloat {
		return len(s.floats)
	}
	return len(s.strings)
}

// Float returns cell i as a float64. String cells that do not parse
// return NaN.
func (s *Series) Float(i int) float64 {
	if s.kind == KindFloat {
		return s.floats[i]
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s.strings[i]), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// String returns cell i rendered as text. NaN float cells render as the
// empty string, matching the delimited-output convention.
func (s *Series) String(i int) string {
	if s.kind == KindString {
		return s.strings[i]
	}
	return FormatFloat(s.floats[i])
}

// IsNaN reports whether cell i is a missing float value.
func (s *Series) IsNaN(i int) bool {
	return s.kind == KindFloat && math.IsNaN(s.floats[i])
}

// Floats returns the float backing slice. Only valid for KindFloat.
// The slice is shared, not copied.
func (s *Series) Floats() []float64 { return s.floats }

// Strings returns all cells rendered as text.
func (s *Series) Strings() []string {
	if s.kind == KindString {
		out := make([]string, len(s.strings))
		copy(out, s.strings)
		return out
	}
	out := make([]string, len(s.floats))
	for i := range s.floats {
		out[i] = FormatFloat(s.floats[i])
	}
	return out
}

// appendCell appends one raw text cell, parsed per the series kind.
func (s *Series) appendCell(cell string) error {
	if s.kind == KindString {
		s.strings = append(s.strings, cell)
		return nil
	}
	cell = strings.TrimSpace(cell)
	if cell == "" {
		s.floats = append(s.floats, math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return err
	}
	s.floats = append(s.floats, v)
	return nil
}

// take returns a new series holding the cells at the given indexes.
func (s *Series) take(indexes []int) *Series {
	out := &Series{name: s.name, kind: s.kind}
	if s.kind == KindFloat {
		out.floats = make([]float64, len(indexes))
		for i, idx := range indexes {
			out.floats[i] = s.floats[idx]
		}
		return out
	}
	out.strings = make([]string, len(indexes))
	for i, idx := range indexes {
		out.strings[i] = s.strings[idx]
	}
	return out
}

// clone returns a deep copy of the series.
func (s *Series) clone() *Series {
	out := &Series{name: s.name, kind: s.kind}
	out.floats = append(out.floats, s.floats...)
	out.strings = append(out.strings, s.strings...)
	return out
}

// FormatFloat renders a float cell as text. NaN renders as the empty
// string; other values use the shortest representation that round-trips.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
