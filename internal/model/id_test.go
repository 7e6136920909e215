package model

import "testing"

func TestJoin(t *testing.T) {
	cases := []struct{ base, child, want string }{
		{"", "A", "A"},
		{"A", "B", "A::B"},
		{"A::B", "C", "A::B::C"},
	}
	for _, c := range cases {
		if got := Join(c.base, c.child); got != c.want {
			t.Errorf("Join(%q, %q) = %q, want %q", c.base, c.child, got, c.want)
		}
	}
}

func TestIsStrictPrefix(t *testing.T) {
	cases := []struct {
		prefix, id string
		want       bool
	}{
		{"", "A", true},
		{"", "", false},
		{"A", "A::B", true},
		{"A", "A::B::C", true},
		{"A", "A", false},
		{"A::B", "A::BC", false},
		{"A", "AB", false},
	}
	for _, c := range cases {
		if got := IsStrictPrefix(c.prefix, c.id); got != c.want {
			t.Errorf("IsStrictPrefix(%q, %q) = %v, want %v", c.prefix, c.id, got, c.want)
		}
	}
}

func TestParentID(t *testing.T) {
	cases := []struct{ id, want string }{
		{"A", ""},
		{"A::B", "A"},
		{"A::B::C", "A::B"},
	}
	for _, c := range cases {
		if got := ParentID(c.id); got != c.want {
			t.Errorf("ParentID(%q) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestLocalName(t *testing.T) {
	cases := []struct{ id, want string }{
		{"A", "A"},
		{"A::B", "B"},
		{"A::B::C", "C"},
	}
	for _, c := range cases {
		if got := LocalName(c.id); got != c.want {
			t.Errorf("LocalName(%q) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestSegments(t *testing.T) {
	if got := Segments(""); got != nil {
		t.Errorf("Segments(\"\") = %v, want nil", got)
	}
	got := Segments("A::B::C")
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("Segments(A::B::C) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segments(A::B::C)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
