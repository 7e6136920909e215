// Package model implements the semantic-model engine's data model: the
// arena-backed Element and Relationship records and the SemanticModel
// that owns them in authoring order (spec.md §3).
package model

import "github.com/zbigniewsobiecki/sysml2/internal/arena"

// SemanticModel is an ordered vector of elements and relationships in
// authoring order, which the external writer must preserve (spec.md §3).
// A SemanticModel never mutates after construction; Delete and Merge
// return new SemanticModels (spec.md §2 flow, §5).
type SemanticModel struct {
	Arena    *arena.Arena
	Interner *arena.Interner

	Elements      []*Element
	Relationships []*Relationship

	SourceFile *SourceFile

	byID map[string]*Element
}

// New returns an empty SemanticModel backed by a freshly created arena.
func New() *SemanticModel {
	a := arena.New()
	return &SemanticModel{
		Arena:    a,
		Interner: arena.NewInterner(a),
		byID:     make(map[string]*Element),
	}
}

// NewSharingArena returns an empty SemanticModel backed by the same arena
// and interner as base, per the shared-resource policy of spec.md §5: a
// model derived from base keeps base's arena alive for as long as the
// derived model is used.
func NewSharingArena(base *SemanticModel) *SemanticModel {
	return &SemanticModel{
		Arena:    base.Arena,
		Interner: base.Interner,
		byID:     make(map[string]*Element),
	}
}

// Intern returns the canonical interned copy of s.
func (m *SemanticModel) Intern(s string) string {
	return m.Interner.Intern(s)
}

// AddElement appends e to the model in authoring order and indexes it by
// ID. It panics if e.ID is already present (spec.md §3 invariant 1) —
// callers (the lowerer, or the modifier's own construction code) are
// expected to have checked uniqueness already.
func (m *SemanticModel) AddElement(e *Element) {
	if _, exists := m.byID[e.ID]; exists {
		panic("model: duplicate element id " + e.ID)
	}
	m.Elements = append(m.Elements, e)
	m.byID[e.ID] = e
}

// ElementByID returns the element with the given id, or nil if absent.
func (m *SemanticModel) ElementByID(id string) *Element {
	return m.byID[id]
}

// HasElement reports whether id names an element in this model.
func (m *SemanticModel) HasElement(id string) bool {
	_, ok := m.byID[id]
	return ok
}

// AddRelationship appends r to the model in authoring order.
func (m *SemanticModel) AddRelationship(r *Relationship) {
	m.Relationships = append(m.Relationships, r)
}

// Children returns the elements whose ParentID is exactly id, in
// authoring order.
func (m *SemanticModel) Children(id string) []*Element {
	var out []*Element
	for _, e := range m.Elements {
		if e.ParentID == id {
			out = append(out, e)
		}
	}
	return out
}

// Descendants returns every element whose id is id itself or begins with
// id + "::", in authoring order.
func (m *SemanticModel) Descendants(id string) []*Element {
	var out []*Element
	for _, e := range m.Elements {
		if e.ID == id || IsStrictPrefix(id, e.ID) {
			out = append(out, e)
		}
	}
	return out
}

// Len reports the number of elements in the model.
func (m *SemanticModel) Len() int { return len(m.Elements) }
