package model

import "strings"

// Sep is the qualified-id segment separator (spec.md §3 invariant 4).
const Sep = "::"

// Join appends child onto the qualified id base, or returns child
// unchanged if base is empty (top-level).
func Join(base, child string) string {
	if base == "" {
		return child
	}
	return base + Sep + child
}

// IsStrictPrefix reports whether prefix is a proper ancestor path of id:
// id == prefix + "::" + <something>. A separator must follow the prefix,
// so "A::B" is a strict prefix of "A::BC" is false (spec.md §3 invariant 4).
func IsStrictPrefix(prefix, id string) bool {
	if prefix == "" {
		return id != ""
	}
	return strings.HasPrefix(id, prefix+Sep)
}

// ParentID returns the qualified id of id's lexical parent (everything
// before the last "::" segment), or "" if id is top-level.
func ParentID(id string) string {
	i := strings.LastIndex(id, Sep)
	if i < 0 {
		return ""
	}
	return id[:i]
}

// LocalName returns the last "::"-separated segment of id.
func LocalName(id string) string {
	i := strings.LastIndex(id, Sep)
	if i < 0 {
		return id
	}
	return id[i+len(Sep):]
}

// Segments splits a qualified id into its "::"-separated parts. An empty
// id yields an empty slice.
func Segments(id string) []string {
	if id == "" {
		return nil
	}
	return strings.Split(id, Sep)
}
