package modify

import (
	"testing"

	"github.com/zbigniewsobiecki/sysml2/internal/model"
	"github.com/zbigniewsobiecki/sysml2/internal/pattern"
)

func buildDeleteSample() *model.SemanticModel {
	m := model.New()
	m.AddElement(&model.Element{ID: "Pkg", Kind: model.KindPackage})
	m.AddElement(&model.Element{ID: "Pkg::A", Kind: model.KindPartDef, ParentID: "Pkg"})
	m.AddElement(&model.Element{ID: "Pkg::A::Child", Kind: model.KindPartUsage, ParentID: "Pkg::A"})
	m.AddElement(&model.Element{ID: "Pkg::B", Kind: model.KindPartDef, ParentID: "Pkg"})
	m.AddRelationship(&model.Relationship{ID: "r1", Kind: model.RelSpecialization, Source: "Pkg::B", Target: "Pkg::A"})
	m.AddRelationship(&model.Relationship{ID: "r2", Kind: model.RelImport, Source: "Pkg", Target: "Pkg::B"})
	return m
}

// TestDeleteCascadesToDescendants is spec.md §8 scenario (a).
func TestDeleteCascadesToDescendants(t *testing.T) {
	base := buildDeleteSample()
	p, err := pattern.Parse("Pkg::A")
	if err != nil {
		t.Fatal(err)
	}
	out, result := Delete(base, p)

	if out.HasElement("Pkg::A") || out.HasElement("Pkg::A::Child") {
		t.Fatal("expected Pkg::A and its child to be removed")
	}
	if !out.HasElement("Pkg::B") || !out.HasElement("Pkg") {
		t.Fatal("expected unrelated elements to survive")
	}
	if result.DeletedCount != 2 {
		t.Fatalf("DeletedCount = %d, want 2", result.DeletedCount)
	}
}

// TestDeleteSweepsReferencingRelationships is spec.md §4.5 step 4: any
// relationship whose source or target was removed is dropped too.
func TestDeleteSweepsReferencingRelationships(t *testing.T) {
	base := buildDeleteSample()
	p, _ := pattern.Parse("Pkg::A")
	out, _ := Delete(base, p)

	for _, r := range out.Relationships {
		if r.ID == "r1" {
			t.Fatal("expected the specialization relationship targeting Pkg::A to be swept")
		}
	}
}

// TestDeleteRecursivePattern is spec.md §8 scenario (b): a "::**"
// pattern removes the scope itself and every descendant.
func TestDeleteRecursivePattern(t *testing.T) {
	base := buildDeleteSample()
	p, _ := pattern.Parse("Pkg::A::**")
	out, result := Delete(base, p)

	if out.HasElement("Pkg::A") || out.HasElement("Pkg::A::Child") {
		t.Fatal("expected the recursive pattern to remove the scope and its descendant")
	}
	if result.DeletedCount != 2 {
		t.Fatalf("DeletedCount = %d, want 2", result.DeletedCount)
	}
}

// TestDeleteOverlappingPatternsCountOnce covers spec.md §4.5 step 5:
// overlapping patterns must not double-count a removed element.
func TestDeleteOverlappingPatternsCountOnce(t *testing.T) {
	base := buildDeleteSample()
	chain, err := pattern.ParseChain([]string{"Pkg::A", "Pkg::A::Child"})
	if err != nil {
		t.Fatal(err)
	}
	_, result := Delete(base, chain)
	if result.DeletedCount != 2 {
		t.Fatalf("DeletedCount = %d, want 2 (no double count across overlapping patterns)", result.DeletedCount)
	}
}

func TestDeleteDoesNotMutateBase(t *testing.T) {
	base := buildDeleteSample()
	beforeLen := base.Len()

	p, _ := pattern.Parse("Pkg::A::**")
	Delete(base, p)

	if base.Len() != beforeLen {
		t.Fatal("expected Delete to leave the base model untouched")
	}
	if !base.HasElement("Pkg::A") {
		t.Fatal("expected Delete to leave the base model untouched")
	}
}

func TestDeleteNilPatternRemovesNothing(t *testing.T) {
	base := buildDeleteSample()
	out, result := Delete(base, nil)
	if result.DeletedCount != 0 {
		t.Fatalf("DeletedCount = %d, want 0 for a nil pattern", result.DeletedCount)
	}
	if out.Len() != base.Len() {
		t.Fatalf("out.Len() = %d, want %d", out.Len(), base.Len())
	}
}
