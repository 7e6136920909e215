// Package symtab implements the nested-scope symbol table used by the
// validator for qualified/unqualified name resolution (spec.md §4.3).
package symtab

import (
	"sort"
	"strings"

	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

// Symbol binds a local name to the element that declares it.
type Symbol struct {
	Name    string
	Element *model.Element
}

// Scope is one node of the scope tree, keyed by its owning element's
// qualified id ("" is the root).
type Scope struct {
	ID     string
	Parent *Scope
	locals map[string]*Symbol
}

func newScope(id string, parent *Scope) *Scope {
	return &Scope{ID: id, Parent: parent, locals: make(map[string]*Symbol)}
}

// Table is the scope tree rooted at the empty id.
type Table struct {
	root   *Scope
	scopes map[string]*Scope // keyed by scope id, root keyed by "".
}

// New returns an empty Table with just a root scope.
func New() *Table {
	root := newScope("", nil)
	return &Table{root: root, scopes: map[string]*Scope{"": root}}
}

// GetOrCreateScope splits id on "::" and walks from the root, creating
// any missing ancestor scopes along the way (spec.md §4.3).
func (t *Table) GetOrCreateScope(id string) *Scope {
	if s, ok := t.scopes[id]; ok {
		return s
	}
	if id == "" {
		return t.root
	}
	parent := t.GetOrCreateScope(model.ParentID(id))
	s := newScope(id, parent)
	t.scopes[id] = s
	return s
}

// Scope returns the existing scope for id, or nil if it was never
// created.
func (t *Table) Scope(id string) *Scope {
	return t.scopes[id]
}

// Add inserts name -> elem into scope. If name is already bound in scope,
// Add is a no-op and returns the existing symbol: the validator, not the
// resolver, is responsible for detecting and reporting duplicates
// (spec.md §4.3 — this keeps the resolver idempotent under rebuild).
func (t *Table) Add(scope *Scope, name string, elem *model.Element) *Symbol {
	if name == "" {
		return nil
	}
	if existing, ok := scope.locals[name]; ok {
		return existing
	}
	sym := &Symbol{Name: name, Element: elem}
	scope.locals[name] = sym
	return sym
}

// Lookup returns the local name binding directly in scope, ignoring
// ancestors.
func (t *Table) Lookup(scope *Scope, name string) (*Symbol, bool) {
	sym, ok := scope.locals[name]
	return sym, ok
}

// Resolve implements spec.md §4.3's two-case resolution: a qualified
// name walks from the root to the deepest existing prefix scope and
// looks up the remainder there; an unqualified name searches scope, then
// each ancestor up to the root.
func (t *Table) Resolve(scope *Scope, name string) (*Symbol, bool) {
	if strings.Contains(name, model.Sep) {
		return t.resolveQualified(name)
	}
	for s := scope; s != nil; s = s.Parent {
		if sym, ok := s.locals[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

func (t *Table) resolveQualified(name string) (*Symbol, bool) {
	segs := model.Segments(name)
	// Walk from the root, finding the deepest existing prefix scope.
	prefix := ""
	deepest := t.root
	i := 0
	for i < len(segs)-1 {
		candidate := model.Join(prefix, segs[i])
		s, ok := t.scopes[candidate]
		if !ok {
			break
		}
		deepest = s
		prefix = candidate
		i++
	}
	remainder := strings.Join(segs[i:], model.Sep)
	if remainder == "" {
		return nil, false
	}
	if strings.Contains(remainder, model.Sep) {
		// The prefix walk stopped before reaching an existing scope for
		// every intermediate segment, so the qualified name cannot
		// resolve to a local binding.
		return nil, false
	}
	sym, ok := deepest.locals[remainder]
	return sym, ok
}

// AllNames returns every local name visible from scope (scope and its
// ancestors), deduplicated, for use by Suggest.
func (t *Table) AllNames(scope *Scope) []string {
	seen := make(map[string]bool)
	var out []string
	for s := scope; s != nil; s = s.Parent {
		for name := range s.locals {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	sort.Strings(out)
	return out
}
