package validate

import "github.com/zbigniewsobiecki/sysml2/internal/diag"

// checkAbstractInstantiation warns when a usage is typed by a definition
// marked IsAbstract. When SuggestCorrections is set, the help text
// suggests specializing the usage concretely, matching spec.md §7's
// "suggestions always attached as help" rule.
func (p *pass) checkAbstractInstantiation() {
	for _, e := range p.model.Elements {
		scope := p.table.Scope(e.ParentID)
		for _, ref := range e.TypedBy {
			sym, ok := p.table.Resolve(scope, ref)
			if !ok || sym.Element == nil || !sym.Element.IsAbstract {
				continue
			}
			help := ""
			if p.opts.SuggestCorrections {
				help = "mark `" + e.ID + "` usage with a concrete specialization"
			}
			p.store.Add(&diag.Diagnostic{
				Severity:   diag.Warning,
				Code:       diag.CodeAbstractInstantiation,
				Message:    "`" + e.ID + "` is typed by abstract definition `" + ref + "`",
				Primary:    e.Location,
				SourceFile: p.model.SourceFile,
				Help:       help,
			})
		}
	}
}
