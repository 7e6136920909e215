package validate

import (
	"github.com/zbigniewsobiecki/sysml2/internal/diag"
	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

// checkDuplicateName reports E3004 when two elements share
// (ParentID, Name); the primary diagnostic points at the later element
// in authoring order, with a note at the earlier one.
func (p *pass) checkDuplicateName() {
	type key struct{ parent, name string }
	first := make(map[key]*model.Element)
	for _, e := range p.model.Elements {
		if e.Name == "" {
			continue
		}
		k := key{e.ParentID, e.Name}
		prior, ok := first[k]
		if !ok {
			first[k] = e
			continue
		}
		p.store.Add(&diag.Diagnostic{
			Severity:   diag.Error,
			Code:       diag.CodeDuplicateName,
			Message:    "duplicate name `" + e.Name + "`",
			Primary:    e.Location,
			SourceFile: p.model.SourceFile,
			Notes: []diag.NoteEntry{
				{Message: "first declared here", Location: prior.Location},
			},
		})
	}
}
