package model

import "testing"

func TestAddElementAndLookup(t *testing.T) {
	m := New()
	m.AddElement(&Element{ID: "Pkg", Kind: KindPackage})
	m.AddElement(&Element{ID: "Pkg::A", Kind: KindPartDef, ParentID: "Pkg"})

	if !m.HasElement("Pkg::A") {
		t.Fatal("expected Pkg::A to be present")
	}
	if m.ElementByID("Pkg::A").Kind != KindPartDef {
		t.Fatal("ElementByID returned the wrong element")
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
}

func TestAddElementPanicsOnDuplicateID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected AddElement to panic on duplicate id")
		}
	}()
	m := New()
	m.AddElement(&Element{ID: "Pkg"})
	m.AddElement(&Element{ID: "Pkg"})
}

func TestChildrenAndDescendants(t *testing.T) {
	m := New()
	m.AddElement(&Element{ID: "Pkg"})
	m.AddElement(&Element{ID: "Pkg::A", ParentID: "Pkg"})
	m.AddElement(&Element{ID: "Pkg::A::Child", ParentID: "Pkg::A"})
	m.AddElement(&Element{ID: "Pkg::B", ParentID: "Pkg"})

	children := m.Children("Pkg")
	if len(children) != 2 {
		t.Fatalf("Children(Pkg) = %d elements, want 2", len(children))
	}

	desc := m.Descendants("Pkg::A")
	if len(desc) != 2 {
		t.Fatalf("Descendants(Pkg::A) = %d elements, want 2 (self + Child)", len(desc))
	}
	if desc[0].ID != "Pkg::A" {
		t.Errorf("Descendants(Pkg::A)[0] = %q, want self first", desc[0].ID)
	}
}

func TestNewSharingArenaSharesInterner(t *testing.T) {
	base := New()
	a := base.Intern("shared-string")

	derived := NewSharingArena(base)
	b := derived.Intern("shared-string")

	if a != b {
		t.Fatal("expected NewSharingArena to reuse base's interner/arena")
	}
	if derived.Len() != 0 {
		t.Fatalf("derived.Len() = %d, want 0 (no elements added yet)", derived.Len())
	}
}

func TestElementCloneIsIndependent(t *testing.T) {
	e := &Element{
		ID:          "Pkg::A",
		TypedBy:     []string{"T1"},
		Specializes: []string{"S1"},
		Metadata:    []MetadataUsage{{Name: "#Foo"}},
	}
	clone := e.Clone()
	clone.TypedBy[0] = "T2"
	clone.Metadata[0].Name = "#Bar"

	if e.TypedBy[0] != "T1" {
		t.Error("mutating clone.TypedBy mutated the original")
	}
	if e.Metadata[0].Name != "#Foo" {
		t.Error("mutating clone.Metadata mutated the original")
	}
}
