package validate

import (
	"strings"
	"testing"

	"github.com/zbigniewsobiecki/sysml2/internal/diag"
	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

func hasCode(store *diag.Store, code diag.Code) bool {
	for _, d := range store.Diagnostics() {
		if d.Code == code {
			return true
		}
	}
	return false
}

// TestUndefinedTypeWithSuggestion is spec.md §8 scenario (f): PartDef
// Engine, Part engine : Egine.
func TestUndefinedTypeWithSuggestion(t *testing.T) {
	m := model.New()
	m.AddElement(&model.Element{ID: "Engine", Name: "Engine", Kind: model.KindPartDef})
	m.AddElement(&model.Element{ID: "engine", Name: "engine", Kind: model.KindPartUsage, TypedBy: []string{"Egine"}})

	opts := DefaultOptions()
	opts.SuggestCorrections = true
	store := Validate(m, opts)

	if store.ErrorCount() != 1 {
		t.Fatalf("ErrorCount() = %d, want 1", store.ErrorCount())
	}
	d := store.Diagnostics()[0]
	if d.Code != diag.CodeUndefinedType {
		t.Fatalf("Code = %v, want %v", d.Code, diag.CodeUndefinedType)
	}
	if !strings.Contains(d.Help, "Engine") {
		t.Fatalf("Help = %q, want it to mention Engine", d.Help)
	}
	if StatusOf(store) != SemanticError {
		t.Fatal("expected StatusOf to report SemanticError")
	}
}

func TestUndefinedFeature(t *testing.T) {
	m := model.New()
	m.AddElement(&model.Element{ID: "Base", Name: "Base", Kind: model.KindPartDef})
	m.AddElement(&model.Element{ID: "Sub", Name: "Sub", Kind: model.KindPartDef, Specializes: []string{"Base"}, Redefines: []string{"NoSuchFeature"}})

	store := Validate(m, DefaultOptions())
	if !hasCode(store, diag.CodeUndefinedFeature) {
		t.Fatal("expected E3002 for a Redefines target absent from any ancestor")
	}
}

func TestUndefinedNamespace(t *testing.T) {
	m := model.New()
	m.AddElement(&model.Element{ID: "Pkg", Name: "Pkg", Kind: model.KindPackage})
	m.AddRelationship(&model.Relationship{ID: "r1", Kind: model.RelImport, Source: "Pkg", Target: "NoSuchNamespace"})

	store := Validate(m, DefaultOptions())
	if !hasCode(store, diag.CodeUndefinedNamespace) {
		t.Fatal("expected E3003 for an Import whose target does not resolve")
	}
}

func TestDuplicateName(t *testing.T) {
	m := model.New()
	m.AddElement(&model.Element{ID: "Pkg", Name: "Pkg", Kind: model.KindPackage})
	m.AddElement(&model.Element{ID: "Pkg::A", Name: "Dup", Kind: model.KindPartDef, ParentID: "Pkg"})
	m.AddElement(&model.Element{ID: "Pkg::B", Name: "Dup", Kind: model.KindPartDef, ParentID: "Pkg"})

	store := Validate(m, DefaultOptions())
	if store.ErrorCount() != 1 {
		t.Fatalf("ErrorCount() = %d, want exactly 1 duplicate-name diagnostic", store.ErrorCount())
	}
	d := store.Diagnostics()[0]
	if d.Code != diag.CodeDuplicateName || len(d.Notes) != 1 {
		t.Fatalf("diagnostic = %+v, want one E3004 with a note pointing at the first declaration", d)
	}
}

func TestCircularSpecialization(t *testing.T) {
	m := model.New()
	m.AddElement(&model.Element{ID: "A", Name: "A", Kind: model.KindPartDef, Specializes: []string{"B"}})
	m.AddElement(&model.Element{ID: "B", Name: "B", Kind: model.KindPartDef, Specializes: []string{"A"}})

	store := Validate(m, DefaultOptions())
	if !hasCode(store, diag.CodeCircularSpecialization) {
		t.Fatal("expected E3005 for a two-element specialization cycle")
	}
}

func TestTypeMismatch(t *testing.T) {
	m := model.New()
	m.AddElement(&model.Element{ID: "SomeAction", Name: "SomeAction", Kind: model.KindActionDef})
	m.AddElement(&model.Element{ID: "part", Name: "part", Kind: model.KindPartUsage, TypedBy: []string{"SomeAction"}})

	store := Validate(m, DefaultOptions())
	if !hasCode(store, diag.CodeTypeMismatch) {
		t.Fatal("expected E3006 for a PartUsage typed by an ActionDef")
	}
}

func TestMultiplicityLaw(t *testing.T) {
	m := model.New()
	m.AddElement(&model.Element{ID: "bad", Name: "bad", Kind: model.KindAttributeUsage, MultiplicityLower: "5", MultiplicityUpper: "1"})

	store := Validate(m, DefaultOptions())
	if !hasCode(store, diag.CodeMultiplicityLaw) {
		t.Fatal("expected E3007 when lower bound exceeds upper bound")
	}
}

func TestMultiplicityLawAllowsUnboundedUpper(t *testing.T) {
	m := model.New()
	m.AddElement(&model.Element{ID: "ok", Name: "ok", Kind: model.KindAttributeUsage, MultiplicityLower: "5", MultiplicityUpper: model.UnboundedUpper})

	store := Validate(m, DefaultOptions())
	if hasCode(store, diag.CodeMultiplicityLaw) {
		t.Fatal("did not expect E3007 when the upper bound is unbounded")
	}
}

func TestRedefinitionCompatibility(t *testing.T) {
	m := model.New()
	m.AddElement(&model.Element{ID: "Base", Name: "Base", Kind: model.KindPartDef})
	m.AddElement(&model.Element{ID: "Base::feat", Name: "feat", Kind: model.KindAttributeUsage, ParentID: "Base", MultiplicityLower: "1", MultiplicityUpper: "3"})
	m.AddElement(&model.Element{ID: "Sub", Name: "Sub", Kind: model.KindPartDef, Specializes: []string{"Base"}})
	m.AddElement(&model.Element{ID: "Sub::feat", Name: "feat", Kind: model.KindAttributeUsage, ParentID: "Sub", Specializes: []string{"Base"}, Redefines: []string{"feat"}, MultiplicityLower: "1", MultiplicityUpper: "10"})

	store := Validate(m, DefaultOptions())
	if !hasCode(store, diag.CodeRedefinitionCompatibility) {
		t.Fatal("expected E3008 when a redefinition widens the upper bound")
	}
}

func TestAbstractInstantiationWarning(t *testing.T) {
	m := model.New()
	m.AddElement(&model.Element{ID: "AbstractDef", Name: "AbstractDef", Kind: model.KindPartDef, IsAbstract: true})
	m.AddElement(&model.Element{ID: "usage", Name: "usage", Kind: model.KindPartUsage, TypedBy: []string{"AbstractDef"}})

	opts := DefaultOptions()
	opts.SuggestCorrections = true
	store := Validate(m, opts)

	if store.ErrorCount() != 0 {
		t.Fatalf("ErrorCount() = %d, want 0 (abstract instantiation is a warning)", store.ErrorCount())
	}
	if store.WarningCount() != 1 {
		t.Fatalf("WarningCount() = %d, want 1", store.WarningCount())
	}
	if StatusOf(store) != OK {
		t.Fatal("a warning alone should still yield OK (spec.md §7.2)")
	}
}

func TestValidateCleanModelIsOK(t *testing.T) {
	m := model.New()
	m.AddElement(&model.Element{ID: "Pkg", Name: "Pkg", Kind: model.KindPackage})
	m.AddElement(&model.Element{ID: "Pkg::A", Name: "A", Kind: model.KindPartDef, ParentID: "Pkg"})

	store := Validate(m, DefaultOptions())
	if StatusOf(store) != OK {
		t.Fatalf("expected a clean model to validate OK, got %d diagnostics", store.Len())
	}
}

func TestMultiValidateStampsSourceFile(t *testing.T) {
	m1 := model.New()
	m1.SourceFile = &model.SourceFile{Path: "a.sysml"}
	m1.AddElement(&model.Element{ID: "x", Name: "x", Kind: model.KindPartUsage, TypedBy: []string{"Missing"}})

	m2 := model.New()
	m2.SourceFile = &model.SourceFile{Path: "b.sysml"}
	m2.AddElement(&model.Element{ID: "y", Name: "y", Kind: model.KindPartUsage, TypedBy: []string{"AlsoMissing"}})

	store := MultiValidate([]*model.SemanticModel{m1, m2}, DefaultOptions())
	if store.ErrorCount() != 2 {
		t.Fatalf("ErrorCount() = %d, want 2", store.ErrorCount())
	}
	paths := map[string]bool{}
	for _, d := range store.Diagnostics() {
		paths[d.SourceFile.Path] = true
	}
	if !paths["a.sysml"] || !paths["b.sysml"] {
		t.Fatalf("expected diagnostics stamped with both source files, got %v", paths)
	}
}

func TestDisabledCheckIsSkipped(t *testing.T) {
	m := model.New()
	m.AddElement(&model.Element{ID: "x", Name: "x", Kind: model.KindPartUsage, TypedBy: []string{"Missing"}})

	opts := DefaultOptions()
	opts.EnableUndefinedType = false
	store := Validate(m, opts)
	if hasCode(store, diag.CodeUndefinedType) {
		t.Fatal("expected checkUndefinedType to be skipped when disabled")
	}
}
