package arena

import "unsafe"

// Interner guarantees one backing byte slice per distinct string value,
// permitting pointer-equality comparisons of interned names throughout
// the engine (spec.md §4.1). It borrows its backing memory from an
// Arena, so interned strings live exactly as long as that Arena does.
type Interner struct {
	arena *Arena
	table map[string]string
}

// NewInterner returns an Interner backed by a.
func NewInterner(a *Arena) *Interner {
	return &Interner{arena: a, table: make(map[string]string)}
}

// Intern returns the canonical copy of s: repeated calls with byte-equal
// strings return the exact same string header, so `a == b` and
// `Intern(a) == Intern(b)` agree for interned values.
func (in *Interner) Intern(s string) string {
	if s == "" {
		return ""
	}
	if canon, ok := in.table[s]; ok {
		return canon
	}
	buf := in.arena.Alloc(len(s), 1)
	copy(buf, s)
	canon := unsafe.String(&buf[0], len(buf))
	in.table[canon] = canon
	return canon
}

// Len reports the number of distinct interned strings.
func (in *Interner) Len() int { return len(in.table) }
