// Package validate implements the eight-pass semantic validator plus the
// abstract-instantiation warning (spec.md §4.4). Each check is its own
// pass file, following the one-concern-per-file layout the teacher uses
// under internal/core/adt.
package validate

import (
	"github.com/sirupsen/logrus"

	"github.com/zbigniewsobiecki/sysml2/internal/diag"
	"github.com/zbigniewsobiecki/sysml2/internal/model"
	"github.com/zbigniewsobiecki/sysml2/internal/symtab"
)

// Status is the validator's overall verdict for one run.
type Status uint8

const (
	OK Status = iota
	SemanticError
)

// Options enables or disables each of the eight checks plus the
// abstract-instantiation warning, and controls "did you mean" help.
type Options struct {
	EnableUndefinedType             bool `yaml:"undefinedType"`
	EnableUndefinedFeature          bool `yaml:"undefinedFeature"`
	EnableUndefinedNamespace        bool `yaml:"undefinedNamespace"`
	EnableDuplicateName             bool `yaml:"duplicateName"`
	EnableCircularSpecialization    bool `yaml:"circularSpecialization"`
	EnableTypeMismatch              bool `yaml:"typeMismatch"`
	EnableMultiplicityLaw           bool `yaml:"multiplicityLaw"`
	EnableRedefinitionCompatibility bool `yaml:"redefinitionCompatibility"`
	EnableAbstractInstantiation     bool `yaml:"abstractInstantiation"`

	SuggestCorrections bool `yaml:"suggestCorrections"`

	// Logger, when set, receives a Trace-level entry on every pass's
	// entry and exit. It is never used for diagnostic findings, which go
	// through the returned *diag.Store (spec.md §7.2); it is not a YAML
	// config field, set programmatically by the caller.
	Logger *logrus.Logger `yaml:"-"`
}

// DefaultOptions enables every check.
func DefaultOptions() Options {
	return Options{
		EnableUndefinedType:             true,
		EnableUndefinedFeature:          true,
		EnableUndefinedNamespace:        true,
		EnableDuplicateName:             true,
		EnableCircularSpecialization:    true,
		EnableTypeMismatch:              true,
		EnableMultiplicityLaw:           true,
		EnableRedefinitionCompatibility: true,
		EnableAbstractInstantiation:     true,
	}
}

// pass is the shared context every check pass reads from; it is built
// once per Validate call and handed to each pass in the table order of
// spec.md §4.4, which is also the order diagnostics are appended in.
type pass struct {
	model *model.SemanticModel
	table *symtab.Table
	opts  Options
	store *diag.Store
}

// Validate runs every enabled pass over m in the fixed order of spec.md
// §4.4's table and returns the accumulated diagnostics; StatusOf reduces
// them to the overall status. Warnings alone still yield OK (spec.md §7.2).
func Validate(m *model.SemanticModel, opts Options) *diag.Store {
	store := &diag.Store{}
	p := &pass{
		model: m,
		table: symtab.Build(m),
		opts:  opts,
		store: store,
	}

	if opts.EnableUndefinedType {
		p.traced("undefined-type", p.checkUndefinedType)
	}
	if opts.EnableUndefinedFeature {
		p.traced("undefined-feature", p.checkUndefinedFeature)
	}
	if opts.EnableUndefinedNamespace {
		p.traced("undefined-namespace", p.checkUndefinedNamespace)
	}
	if opts.EnableDuplicateName {
		p.traced("duplicate-name", p.checkDuplicateName)
	}
	if opts.EnableCircularSpecialization {
		p.traced("circular-specialization", p.checkCircularSpecialization)
	}
	if opts.EnableTypeMismatch {
		p.traced("type-mismatch", p.checkTypeMismatch)
	}
	if opts.EnableMultiplicityLaw {
		p.traced("multiplicity-law", p.checkMultiplicityLaw)
	}
	if opts.EnableRedefinitionCompatibility {
		p.traced("redefinition-compatibility", p.checkRedefinitionCompatibility)
	}
	if opts.EnableAbstractInstantiation {
		p.traced("abstract-instantiation", p.checkAbstractInstantiation)
	}

	return store
}

// traced runs a pass, logging its entry and exit at Trace level when
// p.opts.Logger is set.
func (p *pass) traced(name string, check func()) {
	if p.opts.Logger != nil {
		p.opts.Logger.Tracef("validate: entering pass %s", name)
	}
	check()
	if p.opts.Logger != nil {
		p.opts.Logger.Tracef("validate: leaving pass %s", name)
	}
}

// StatusOf reduces a diagnostic store to a Status: SemanticError if any
// Error-severity diagnostic was recorded, OK otherwise.
func StatusOf(store *diag.Store) Status {
	if store.ErrorCount() > 0 {
		return SemanticError
	}
	return OK
}

// MultiValidate validates each model in models independently, stamping
// every diagnostic with its originating model's SourceFile so one store
// can span a repository (spec.md §4.4 "Multi-model validation").
func MultiValidate(models []*model.SemanticModel, opts Options) *diag.Store {
	combined := &diag.Store{}
	for _, m := range models {
		sub := Validate(m, opts)
		for _, d := range sub.Diagnostics() {
			if d.SourceFile == nil {
				d.SourceFile = m.SourceFile
			}
			combined.Add(d)
		}
	}
	return combined
}

func (p *pass) helpSuggestion(name string, elem *model.Element) string {
	if !p.opts.SuggestCorrections {
		return ""
	}
	scope := p.table.Scope(elem.ParentID)
	if scope == nil {
		scope = p.table.Scope("")
	}
	suggestions := p.table.Suggest(scope, lastSegment(name), 1)
	if len(suggestions) == 0 {
		return ""
	}
	return "did you mean `" + suggestions[0] + "`?"
}

func lastSegment(name string) string {
	return model.LocalName(name)
}
