// Package pattern implements the query pattern language shared by the
// CLI's --select/--delete flags and the modifier's delete operation
// (spec.md §4.2, §6).
package pattern

import (
	"fmt"
	"strings"

	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

// Shape is the matched pattern variant.
type Shape uint8

const (
	// Exact matches only the element with the given id.
	Exact Shape = iota
	// Direct matches elements whose ParentID equals the base id.
	Direct
	// Recursive matches the base id itself and every descendant.
	Recursive
)

// Pattern is one parsed `base`, `base::*`, or `base::**` query, linked to
// the next pattern in a chain so repeated flags (`-d A -d B`) compose
// exactly like a repeated cobra/pflag StringArray flag.
type Pattern struct {
	Base  string
	Shape Shape
	Next  *Pattern
}

// Parse parses one pattern string. Trailing "::*" or "::**" is stripped
// to determine Shape; the path remaining after stripping must be
// non-empty.
func Parse(s string) (*Pattern, error) {
	p := &Pattern{}
	switch {
	case strings.HasSuffix(s, model.Sep+"**"):
		p.Shape = Recursive
		p.Base = strings.TrimSuffix(s, model.Sep+"**")
	case strings.HasSuffix(s, model.Sep+"*"):
		p.Shape = Direct
		p.Base = strings.TrimSuffix(s, model.Sep+"*")
	default:
		p.Shape = Exact
		p.Base = s
	}
	if p.Base == "" {
		return nil, fmt.Errorf("pattern: empty path in %q", s)
	}
	return p, nil
}

// ParseChain parses each of strs in order and links them into one chain,
// the order matching spec.md §4.2's "a pattern is a linked list (multiple
// -d flags compose)".
func ParseChain(strs []string) (*Pattern, error) {
	var head, tail *Pattern
	for _, s := range strs {
		p, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if head == nil {
			head = p
		} else {
			tail.Next = p
		}
		tail = p
	}
	return head, nil
}

// Match reports whether id is matched by this single pattern node (not
// following Next).
func (p *Pattern) Match(id string) bool {
	switch p.Shape {
	case Exact:
		return id == p.Base
	case Direct:
		return model.ParentID(id) == p.Base
	case Recursive:
		return id == p.Base || model.IsStrictPrefix(p.Base, id)
	default:
		return false
	}
}

// MatchAny reports whether id is matched by p or any pattern in its Next
// chain.
func (p *Pattern) MatchAny(id string) bool {
	for q := p; q != nil; q = q.Next {
		if q.Match(id) {
			return true
		}
	}
	return false
}

// String renders the pattern back to its surface syntax, for diagnostics
// and CLI echoing.
func (p *Pattern) String() string {
	switch p.Shape {
	case Direct:
		return p.Base + model.Sep + "*"
	case Recursive:
		return p.Base + model.Sep + "**"
	default:
		return p.Base
	}
}
