// Package diag implements the append-only diagnostic store (spec.md
// §4.7), grounded on the teacher's cue/errors package: the Diagnostic
// type mirrors errors.Error's Position and Error methods, and Sort/
// Fprint mirror errors.list.Sort/RemoveMultiples and errors.Print.
package diag

import (
	"fmt"

	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

// Severity is the diagnostic level.
type Severity uint8

const (
	Error Severity = iota
	Warning
	Note
	Help
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// Code is a stable diagnostic identifier (spec.md §6): "E3001"-"E3008",
// or a non-error code such as the abstract-instantiation warning.
type Code string

const (
	CodeUndefinedType             Code = "E3001"
	CodeUndefinedFeature          Code = "E3002"
	CodeUndefinedNamespace        Code = "E3003"
	CodeDuplicateName             Code = "E3004"
	CodeCircularSpecialization    Code = "E3005"
	CodeTypeMismatch              Code = "E3006"
	CodeMultiplicityLaw           Code = "E3007"
	CodeRedefinitionCompatibility Code = "E3008"
	CodeAbstractInstantiation     Code = "W3101"
)

// NoteEntry is a secondary location attached to a Diagnostic, each with
// its own range (spec.md §4.7).
type NoteEntry struct {
	Message  string
	Location model.Range
}

// Diagnostic is one structured finding (spec.md §4.4, §4.7).
type Diagnostic struct {
	Severity   Severity
	Code       Code
	Message    string
	Primary    model.Range
	SourceFile *model.SourceFile
	Help       string
	Notes      []NoteEntry
}

// Position returns the diagnostic's primary location, satisfying the
// shape of the teacher's errors.Error.Position.
func (d *Diagnostic) Position() model.Range { return d.Primary }

// Error renders the diagnostic's message without position information,
// letting a *Diagnostic be used wherever a plain error is expected.
func (d *Diagnostic) Error() string { return d.Message }

// Store is an append-only list of diagnostics with incrementally
// maintained counts (spec.md §4.7). The zero value is ready to use.
type Store struct {
	diagnostics  []*Diagnostic
	errorCount   int
	warningCount int
}

// Add appends d to the store and updates ErrorCount/WarningCount.
func (s *Store) Add(d *Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
	switch d.Severity {
	case Error:
		s.errorCount++
	case Warning:
		s.warningCount++
	}
}

// Addf is a convenience wrapper constructing an Error-severity
// Diagnostic.
func (s *Store) Addf(code Code, primary model.Range, sf *model.SourceFile, format string, args ...interface{}) {
	s.Add(&Diagnostic{
		Severity:   Error,
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		Primary:    primary,
		SourceFile: sf,
	})
}

// Warnf is a convenience wrapper constructing a Warning-severity
// Diagnostic.
func (s *Store) Warnf(code Code, primary model.Range, sf *model.SourceFile, format string, args ...interface{}) {
	s.Add(&Diagnostic{
		Severity:   Warning,
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		Primary:    primary,
		SourceFile: sf,
	})
}

// Diagnostics returns the accumulated diagnostics in append order.
func (s *Store) Diagnostics() []*Diagnostic { return s.diagnostics }

// ErrorCount reports the number of Error-severity diagnostics added.
func (s *Store) ErrorCount() int { return s.errorCount }

// WarningCount reports the number of Warning-severity diagnostics added.
func (s *Store) WarningCount() int { return s.warningCount }

// Len reports the total number of diagnostics, any severity.
func (s *Store) Len() int { return len(s.diagnostics) }
