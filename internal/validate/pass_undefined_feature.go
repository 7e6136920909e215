package validate

import (
	"github.com/zbigniewsobiecki/sysml2/internal/diag"
	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

// checkUndefinedFeature reports E3002 for every Redefines target that
// does not exist in any ancestor definition of the redefining element.
func (p *pass) checkUndefinedFeature() {
	for _, e := range p.model.Elements {
		if len(e.Redefines) == 0 {
			continue
		}
		ancestors := p.ancestorDefinitions(e)
		for _, ref := range e.Redefines {
			if p.existsInAnyAncestor(ancestors, ref) {
				continue
			}
			p.store.Add(&diag.Diagnostic{
				Severity:   diag.Error,
				Code:       diag.CodeUndefinedFeature,
				Message:    "undefined feature `" + ref + "`",
				Primary:    e.Location,
				SourceFile: p.model.SourceFile,
				Help:       p.helpSuggestion(ref, e),
			})
		}
	}
}

// ancestorDefinitions returns the set of elements e transitively
// specializes or is typed by, following Specializes and TypedBy edges to
// a fixed point. A visited set guards against specialization cycles
// (reported separately by E3005).
func (p *pass) ancestorDefinitions(e *model.Element) []*model.Element {
	seen := map[string]bool{e.ID: true}
	queue := []*model.Element{e}
	var out []*model.Element
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		scope := p.table.Scope(cur.ParentID)
		for _, ref := range append(append([]string{}, cur.Specializes...), cur.TypedBy...) {
			sym, ok := p.table.Resolve(scope, ref)
			if !ok || sym.Element == nil || seen[sym.Element.ID] {
				continue
			}
			seen[sym.Element.ID] = true
			out = append(out, sym.Element)
			queue = append(queue, sym.Element)
		}
	}
	return out
}

func (p *pass) existsInAnyAncestor(ancestors []*model.Element, ref string) bool {
	for _, a := range ancestors {
		scope := p.table.Scope(a.ID)
		if scope == nil {
			continue
		}
		if _, ok := p.table.Lookup(scope, ref); ok {
			return true
		}
	}
	return false
}
