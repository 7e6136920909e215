package validate

import (
	"github.com/zbigniewsobiecki/sysml2/internal/diag"
	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

// checkMultiplicityLaw reports E3007 when lower > upper (both numeric),
// or either bound is negative. "*" on upper is the unbounded sentinel and
// is never in conflict with a lower bound.
func (p *pass) checkMultiplicityLaw() {
	for _, e := range p.model.Elements {
		lower, lowerErr := model.ParseBound(e.MultiplicityLower)
		lowerNegative := lowerErr == nil && lower != nil && model.IsNegative(lower)
		if lowerNegative {
			p.addMultiplicityError(e, "lower bound `"+e.MultiplicityLower+"` is negative")
		}

		// Upper-bound negativity is an independent trigger (spec.md
		// §4.4) and must be checked regardless of whether the lower
		// bound is set, negative, or unparseable.
		upper, unbounded, upperErr := model.UpperBound(e.MultiplicityUpper)
		upperNegative := upperErr == nil && !unbounded && upper != nil && model.IsNegative(upper)
		if upperNegative {
			p.addMultiplicityError(e, "upper bound `"+e.MultiplicityUpper+"` is negative")
		}

		if lowerErr != nil || lower == nil || lowerNegative ||
			upperErr != nil || unbounded || upper == nil || upperNegative {
			continue
		}
		if model.CompareBounds(lower, upper) > 0 {
			p.addMultiplicityError(e, "lower bound `"+e.MultiplicityLower+"` exceeds upper bound `"+e.MultiplicityUpper+"`")
		}
	}
}

func (p *pass) addMultiplicityError(e *model.Element, msg string) {
	p.store.Add(&diag.Diagnostic{
		Severity:   diag.Error,
		Code:       diag.CodeMultiplicityLaw,
		Message:    "invalid multiplicity: " + msg,
		Primary:    e.Location,
		SourceFile: p.model.SourceFile,
	})
}
