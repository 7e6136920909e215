// Package modify implements the two structural modifiers: pattern-based
// delete with cascade and relationship sweep, and fragment merge/UPSERT
// with ID remap and target-scope reset (spec.md §4.5, §4.6). Neither
// operation mutates its input model; both return a new SemanticModel
// sharing the input's arena (spec.md §2, §5).
package modify

import (
	"github.com/zbigniewsobiecki/sysml2/internal/model"
	"github.com/zbigniewsobiecki/sysml2/internal/pattern"
)

// DeleteResult reports how many distinct elements were removed
// (overlapping patterns are counted once, spec.md §4.5 step 5).
type DeleteResult struct {
	DeletedCount int
}

// Delete returns a new model with every element matched by patterns (and
// its ownership-cascade descendants) removed, along with every
// relationship whose source or target referenced a removed id, and every
// Import whose owner (source) was removed (spec.md §4.5).
func Delete(m *model.SemanticModel, patterns *pattern.Pattern) (*model.SemanticModel, *DeleteResult) {
	deleted := computeDeletedSet(m, patterns)

	out := model.NewSharingArena(m)
	out.SourceFile = m.SourceFile
	for _, e := range m.Elements {
		if !deleted[e.ID] {
			out.AddElement(e)
		}
	}
	for _, r := range m.Relationships {
		if deleted[r.Source] || deleted[r.Target] {
			continue
		}
		out.AddRelationship(r)
	}

	return out, &DeleteResult{DeletedCount: len(deleted)}
}

// computeDeletedSet builds the set of element ids to remove: direct
// pattern matches plus the ownership-cascade fixed point (spec.md §4.5
// steps 1-2).
func computeDeletedSet(m *model.SemanticModel, patterns *pattern.Pattern) map[string]bool {
	deleted := make(map[string]bool)
	if patterns == nil {
		return deleted
	}

	for p := patterns; p != nil; p = p.Next {
		switch p.Shape {
		case pattern.Recursive:
			for _, e := range m.Descendants(p.Base) {
				deleted[e.ID] = true
			}
		case pattern.Direct:
			for _, e := range m.Children(p.Base) {
				deleted[e.ID] = true
			}
		case pattern.Exact:
			if m.HasElement(p.Base) {
				deleted[p.Base] = true
			}
		}
	}

	// Cascade to a fixed point: any element whose parent is deleted (by
	// id equality or strict-prefix containment) is itself deleted.
	for changed := true; changed; {
		changed = false
		for _, e := range m.Elements {
			if deleted[e.ID] {
				continue
			}
			if deleted[e.ParentID] || hasDeletedAncestor(deleted, e.ID) {
				deleted[e.ID] = true
				changed = true
			}
		}
	}

	return deleted
}

func hasDeletedAncestor(deleted map[string]bool, id string) bool {
	for ancestorID := range deleted {
		if model.IsStrictPrefix(ancestorID, id) {
			return true
		}
	}
	return false
}
