package validate

import (
	"github.com/zbigniewsobiecki/sysml2/internal/diag"
	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

// checkUndefinedNamespace reports E3003 for every Import whose target
// (the namespace, sans a "::*"/"::**" suffix already stripped into
// Relationship.Import) does not resolve.
func (p *pass) checkUndefinedNamespace() {
	for _, r := range p.model.Relationships {
		if r.Kind != model.RelImport {
			continue
		}
		scope := p.table.Scope(r.Source)
		if scope == nil {
			scope = p.table.Scope("")
		}
		if _, ok := p.table.Resolve(scope, r.Target); ok {
			continue
		}
		owner := p.model.ElementByID(r.Source)
		var loc model.Range
		if owner != nil {
			loc = owner.Location
		}
		p.store.Add(&diag.Diagnostic{
			Severity:   diag.Error,
			Code:       diag.CodeUndefinedNamespace,
			Message:    "undefined namespace `" + r.Target + "`",
			Primary:    loc,
			SourceFile: p.model.SourceFile,
		})
	}
}
