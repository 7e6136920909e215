package symtab

import "github.com/zbigniewsobiecki/sysml2/internal/model"

// Build constructs a Table from m: every element gets (or reuses) a
// scope for its own id, and is added as a symbol under its parent's
// scope using its local name. Elements without a Name are not added as
// symbols (they cannot be referenced by name) but still get a scope so
// their own children can resolve.
func Build(m *model.SemanticModel) *Table {
	t := New()
	for _, e := range m.Elements {
		t.GetOrCreateScope(e.ID)
	}
	for _, e := range m.Elements {
		if e.Name == "" {
			continue
		}
		parentScope := t.GetOrCreateScope(e.ParentID)
		t.Add(parentScope, e.Name, e)
	}
	return t
}
