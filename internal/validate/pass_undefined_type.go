package validate

import "github.com/zbigniewsobiecki/sysml2/internal/diag"

// checkUndefinedType reports E3001 for every TypedBy reference that does
// not resolve.
func (p *pass) checkUndefinedType() {
	for _, e := range p.model.Elements {
		scope := p.table.Scope(e.ParentID)
		for _, ref := range e.TypedBy {
			if _, ok := p.table.Resolve(scope, ref); ok {
				continue
			}
			d := &diag.Diagnostic{
				Severity:   diag.Error,
				Code:       diag.CodeUndefinedType,
				Message:    "undefined type `" + ref + "`",
				Primary:    e.Location,
				SourceFile: p.model.SourceFile,
				Help:       p.helpSuggestion(ref, e),
			}
			p.store.Add(d)
		}
	}
}
