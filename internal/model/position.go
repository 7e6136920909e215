package model

import "fmt"

// Pos is a single line/column/byte-offset source location, 1-based for
// line and column, mirroring the teacher's token.Position shape.
type Pos struct {
	Line   int
	Column int
	Offset int
}

// IsValid reports whether p refers to an actual location.
func (p Pos) IsValid() bool { return p.Line > 0 }

// String renders "line:column", or "-" when invalid.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is a [Start,End) source range used for diagnostic primary and
// note locations.
type Range struct {
	Start Pos
	End   Pos
}

// String renders "line:column" using the range's start position, or
// "line:column-line:column" when start and end differ in line or column.
func (r Range) String() string {
	if r.Start.Line == r.End.Line && r.Start.Column == r.End.Column {
		return r.Start.String()
	}
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
