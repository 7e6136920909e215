package diag

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

// Sort orders diagnostics by primary position then code, matching the
// teacher's errors.list.Sort (position first, then a secondary key, then
// message).
func (s *Store) Sort() {
	slices.SortFunc(s.diagnostics, func(a, b *Diagnostic) int {
		if c := comparePos(a.Primary.Start, b.Primary.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Code, b.Code); c != 0 {
			return c
		}
		return cmp.Compare(a.Message, b.Message)
	})
}

func comparePos(a, b model.Pos) int {
	if c := cmp.Compare(a.Line, b.Line); c != 0 {
		return c
	}
	return cmp.Compare(a.Column, b.Column)
}

// RemoveMultiples sorts the store and drops exact (position, code,
// message) duplicates, mirroring the teacher's errors.list.RemoveMultiples.
func (s *Store) RemoveMultiples() {
	s.Sort()
	s.diagnostics = slices.CompactFunc(s.diagnostics, func(a, b *Diagnostic) bool {
		return a.Primary == b.Primary && a.Code == b.Code && a.Message == b.Message
	})
	s.errorCount, s.warningCount = 0, 0
	for _, d := range s.diagnostics {
		switch d.Severity {
		case Error:
			s.errorCount++
		case Warning:
			s.warningCount++
		}
	}
}

// Fprint writes every diagnostic to w, one per line plus its notes and
// help, in the teacher's cue/errors.Print style:
//
//	<severity>: <file>:<line>:<col>: <message>
//	    <note message> (<line>:<col>)
//	  = help: <help text>
//
// The "<file>:" part is omitted when the diagnostic has no SourceFile.
func Fprint(w io.Writer, s *Store) {
	for _, d := range s.diagnostics {
		path := ""
		if d.SourceFile != nil {
			path = d.SourceFile.Path
		}
		loc := d.Primary.String()
		if path != "" {
			fmt.Fprintf(w, "%s: %s:%s: %s\n", d.Severity, path, loc, d.Message)
		} else {
			fmt.Fprintf(w, "%s: %s: %s\n", d.Severity, loc, d.Message)
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "    %s (%s)\n", n.Message, n.Location)
		}
		if d.Help != "" {
			fmt.Fprintf(w, "  = help: %s\n", d.Help)
		}
	}
}
