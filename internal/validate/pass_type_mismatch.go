package validate

import "github.com/zbigniewsobiecki/sysml2/internal/diag"

// checkTypeMismatch reports E3006 when a TypedBy reference resolves but
// the referent's kind is incompatible with the referencer's kind per the
// compatibility table in compat.go.
func (p *pass) checkTypeMismatch() {
	for _, e := range p.model.Elements {
		scope := p.table.Scope(e.ParentID)
		for _, ref := range e.TypedBy {
			sym, ok := p.table.Resolve(scope, ref)
			if !ok || sym.Element == nil {
				continue // reported as E3001, not here.
			}
			if IsCompatible(e.Kind, sym.Element.Kind) {
				continue
			}
			p.store.Add(&diag.Diagnostic{
				Severity:   diag.Error,
				Code:       diag.CodeTypeMismatch,
				Message: "type mismatch: `" + e.ID + "` (" + e.Kind.String() +
					") cannot be typed by `" + ref + "` (" + sym.Element.Kind.String() + ")",
				Primary:    e.Location,
				SourceFile: p.model.SourceFile,
			})
		}
	}
}
