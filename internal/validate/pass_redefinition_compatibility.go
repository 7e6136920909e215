package validate

import (
	"github.com/zbigniewsobiecki/sysml2/internal/diag"
	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

// checkRedefinitionCompatibility reports E3008 when a redefining feature
// widens multiplicity relative to the feature it redefines: either its
// lower bound is less than the parent's, or its upper bound is greater
// than the parent's when both are finite.
func (p *pass) checkRedefinitionCompatibility() {
	for _, e := range p.model.Elements {
		if len(e.Redefines) == 0 {
			continue
		}
		ancestors := p.ancestorDefinitions(e)
		for _, ref := range e.Redefines {
			parent := p.findInAnyAncestor(ancestors, ref)
			if parent == nil {
				continue // reported as E3002, not here.
			}
			p.checkWidenedMultiplicity(e, parent, ref)
		}
	}
}

func (p *pass) findInAnyAncestor(ancestors []*model.Element, ref string) *model.Element {
	for _, a := range ancestors {
		scope := p.table.Scope(a.ID)
		if scope == nil {
			continue
		}
		if sym, ok := p.table.Lookup(scope, ref); ok {
			return sym.Element
		}
	}
	return nil
}

func (p *pass) checkWidenedMultiplicity(e, parent *model.Element, ref string) {
	childLower, err := model.ParseBound(e.MultiplicityLower)
	if err == nil && childLower != nil {
		if parentLower, err := model.ParseBound(parent.MultiplicityLower); err == nil && parentLower != nil {
			if model.CompareBounds(childLower, parentLower) < 0 {
				p.addRedefinitionError(e, ref, "widens lower bound below `"+parent.MultiplicityLower+"`")
				return
			}
		}
	}
	childUpper, childUnbounded, err := model.UpperBound(e.MultiplicityUpper)
	if err == nil && !childUnbounded && childUpper != nil {
		parentUpper, parentUnbounded, err := model.UpperBound(parent.MultiplicityUpper)
		if err == nil && !parentUnbounded && parentUpper != nil {
			if model.CompareBounds(childUpper, parentUpper) > 0 {
				p.addRedefinitionError(e, ref, "widens upper bound above `"+parent.MultiplicityUpper+"`")
			}
		}
	}
}

func (p *pass) addRedefinitionError(e *model.Element, ref, msg string) {
	p.store.Add(&diag.Diagnostic{
		Severity:   diag.Error,
		Code:       diag.CodeRedefinitionCompatibility,
		Message:    "redefinition of `" + ref + "` " + msg,
		Primary:    e.Location,
		SourceFile: p.model.SourceFile,
	})
}
