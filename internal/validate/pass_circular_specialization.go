package validate

import (
	"github.com/zbigniewsobiecki/sysml2/internal/diag"
	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

type color uint8

const (
	white color = iota
	gray
	black
)

// checkCircularSpecialization reports E3005 using a white/gray/black DFS
// over the directed graph of Specializes/TypedBy edges from each
// element: a gray-to-gray back-edge signals a cycle, reported once per
// cycle head (the gray node the back-edge returns to). Nodes already
// marked black are not revisited, but a strongly connected component
// whose cycles close on different heads is reported once per head, not
// once per component.
func (p *pass) checkCircularSpecialization() {
	colors := make(map[string]color, len(p.model.Elements))
	reported := make(map[string]bool)

	var visit func(id string, path []string)
	visit = func(id string, path []string) {
		switch colors[id] {
		case black:
			return
		case gray:
			// Found a cycle; report once, naming the cycle head (the
			// gray node we returned to).
			if !reported[id] {
				reported[id] = true
				elem := p.model.ElementByID(id)
				var loc model.Range
				if elem != nil {
					loc = elem.Location
				}
				p.store.Add(&diag.Diagnostic{
					Severity:   diag.Error,
					Code:       diag.CodeCircularSpecialization,
					Message:    "circular specialization involving `" + id + "`",
					Primary:    loc,
					SourceFile: p.model.SourceFile,
				})
			}
			return
		}
		colors[id] = gray
		elem := p.model.ElementByID(id)
		if elem != nil {
			scope := p.table.Scope(elem.ParentID)
			for _, ref := range append(append([]string{}, elem.Specializes...), elem.TypedBy...) {
				sym, ok := p.table.Resolve(scope, ref)
				if !ok || sym.Element == nil {
					continue
				}
				visit(sym.Element.ID, append(path, id))
			}
		}
		colors[id] = black
	}

	for _, e := range p.model.Elements {
		if colors[e.ID] == white {
			visit(e.ID, nil)
		}
	}
}
