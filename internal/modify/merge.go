package modify

import (
	"fmt"

	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

// MergeOptions controls scope creation and ordering for an UPSERT
// (spec.md §4.6).
type MergeOptions struct {
	// CreateScope, when true, synthesizes any missing ancestor scopes on
	// the target path as Package elements; when false, Merge fails if
	// the target scope does not exist.
	CreateScope bool `yaml:"createScope"`

	// ReplaceScope, when true, drops all direct children of the target
	// scope before inserting the fragment, so the fragment's authoring
	// order becomes the scope's entire new child order.
	ReplaceScope bool `yaml:"replaceScope"`
}

// MergeResult reports how many elements were newly inserted versus
// replaced an existing base element by id (spec.md §4.6).
type MergeResult struct {
	AddedCount    int
	ReplacedCount int
}

// Merge grafts fragment into base under targetScope as if every fragment
// element had been authored there, returning a new model (spec.md §4.6).
// It never mutates base or fragment. If targetScope does not exist in
// base and opts.CreateScope is false, Merge returns a nil model and a
// non-nil error (spec.md §7.1); base is never mutated in that case either.
func Merge(base, fragment *model.SemanticModel, targetScope string, opts MergeOptions) (*model.SemanticModel, *MergeResult, error) {
	missingAncestors, err := resolveScopeCreation(base, targetScope, opts.CreateScope)
	if err != nil {
		return nil, nil, err
	}

	remap := buildRemap(fragment, targetScope)

	droppedChildren := map[string]bool{}
	if opts.ReplaceScope {
		for _, c := range base.Children(targetScope) {
			droppedChildren[c.ID] = true
		}
	}

	replacedIDs := map[string]bool{} // new (remapped) ids that collide with an existing base element.
	for _, e := range fragment.Elements {
		newID := remap[e.ID]
		if base.HasElement(newID) {
			replacedIDs[newID] = true
		}
	}

	out := model.NewSharingArena(base)
	out.SourceFile = base.SourceFile

	// Synthesized ancestors go right after their deepest existing
	// ancestor, or first when the whole chain is missing.
	anchor := ""
	if len(missingAncestors) > 0 {
		anchor = missingAncestors[0].ParentID
	}
	if anchor == "" {
		for _, anc := range missingAncestors {
			out.AddElement(anc)
		}
	}

	for _, e := range base.Elements {
		if out.HasElement(e.ID) {
			continue // already added as a synthesized ancestor.
		}
		if droppedChildren[e.ID] || droppedChildren[e.ParentID] {
			// A dropped child takes its own descendants with it.
			droppedChildren[e.ID] = true
			continue
		}
		if replacedIDs[e.ID] {
			// Superseded by a fragment element below. Remapped ids always
			// sit below targetScope, so the target scope itself is never
			// in replacedIDs.
			continue
		}
		if e.ID == targetScope {
			out.AddElement(resetTargetScope(e))
			continue
		}
		out.AddElement(e.Clone())
		if anchor != "" && e.ID == anchor {
			for _, anc := range missingAncestors {
				out.AddElement(anc)
			}
		}
	}

	result := &MergeResult{}
	for _, fe := range fragment.Elements {
		newID := remap[fe.ID]
		if out.HasElement(newID) {
			continue // never add an id twice.
		}
		clone := remapElement(fe, remap, targetScope)
		out.AddElement(clone)
		if base.HasElement(newID) {
			result.ReplacedCount++
		} else {
			result.AddedCount++
		}
	}

	mergeRelationships(out, base, fragment, remap, droppedChildren)

	return out, result, nil
}

// resolveScopeCreation checks that targetScope exists (or can be
// created) and returns the Package elements that must be synthesized for
// any missing ancestors on its path, outermost first so children follow
// their parents in authoring order (spec.md §4.6 step 1).
func resolveScopeCreation(base *model.SemanticModel, targetScope string, createScope bool) ([]*model.Element, error) {
	if targetScope == "" || base.HasElement(targetScope) {
		return nil, nil
	}
	if !createScope {
		return nil, fmt.Errorf("modify: target scope %q does not exist", targetScope)
	}

	var missing []*model.Element
	segs := model.Segments(targetScope)
	prefix := ""
	for _, seg := range segs {
		id := model.Join(prefix, seg)
		if !base.HasElement(id) {
			missing = append(missing, &model.Element{
				ID:       id,
				Name:     seg,
				Kind:     model.KindPackage,
				ParentID: prefix,
			})
		}
		prefix = id
	}
	return missing, nil
}

// buildRemap maps every fragment element's old id to its id under
// targetScope (spec.md §4.6 step 2).
func buildRemap(fragment *model.SemanticModel, targetScope string) map[string]string {
	remap := make(map[string]string, len(fragment.Elements))
	for _, e := range fragment.Elements {
		remap[e.ID] = model.Join(targetScope, e.ID)
	}
	return remap
}

// resetTargetScope implements the target-scope reset of spec.md §4.6 step
// 3: the target scope's leading/trailing trivia and metadata are cleared
// rather than accumulated across repeated merges. No fragment element
// remaps onto the target scope itself (buildRemap always places fragment
// ids below it), so the target scope's trivia and metadata are always
// cleared here and are never taken from the fragment.
func resetTargetScope(base *model.Element) *model.Element {
	clone := base.Clone()
	clone.LeadingTrivia = nil
	clone.TrailingTrivia = nil
	clone.Metadata = nil
	clone.PrefixMetadata = nil
	return clone
}

func remapElement(e *model.Element, remap map[string]string, targetScope string) *model.Element {
	clone := e.Clone()
	clone.ID = remap[e.ID]
	if e.ParentID == "" {
		clone.ParentID = targetScope
	} else if mapped, ok := remap[e.ParentID]; ok {
		clone.ParentID = mapped
	}
	clone.TypedBy = rewriteRefs(e.TypedBy, remap)
	clone.Specializes = rewriteRefs(e.Specializes, remap)
	clone.Redefines = rewriteRefs(e.Redefines, remap)
	clone.References = rewriteRefs(e.References, remap)
	return clone
}

func rewriteRefs(refs []string, remap map[string]string) []string {
	if refs == nil {
		return nil
	}
	out := make([]string, len(refs))
	for i, r := range refs {
		if mapped, ok := remap[r]; ok {
			out[i] = mapped
		} else {
			out[i] = r
		}
	}
	return out
}

// mergeRelationships copies base relationships whose endpoints survive
// in out, then appends fragment relationships with endpoints rewritten
// through remap, dropping any whose endpoint was a model element in its
// origin model but did not survive into out (spec.md §4.6 step 5).
func mergeRelationships(out, base, fragment *model.SemanticModel, remap map[string]string, droppedChildren map[string]bool) {
	for _, r := range base.Relationships {
		if droppedChildren[r.Source] || droppedChildren[r.Target] {
			continue
		}
		if survivesFrom(base, out, r.Source) && survivesFrom(base, out, r.Target) {
			out.AddRelationship(r.Clone())
		}
	}
	for _, r := range fragment.Relationships {
		newSource := rewriteRef(r.Source, remap)
		newTarget := rewriteRef(r.Target, remap)
		if fragment.HasElement(r.Source) && !out.HasElement(newSource) {
			continue
		}
		if fragment.HasElement(r.Target) && !out.HasElement(newTarget) {
			continue
		}
		clone := r.Clone()
		clone.Source = newSource
		clone.Target = newTarget
		out.AddRelationship(clone)
	}
}

func rewriteRef(s string, remap map[string]string) string {
	if mapped, ok := remap[s]; ok {
		return mapped
	}
	return s
}

// survivesFrom reports whether id, a reference that origin claims to
// model as an element, is still present in out. References to ids that
// origin never modeled (external names) are treated as always surviving.
func survivesFrom(origin, out *model.SemanticModel, id string) bool {
	if !origin.HasElement(id) {
		return true
	}
	return out.HasElement(id)
}
