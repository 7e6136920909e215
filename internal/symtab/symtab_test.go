package symtab

import (
	"testing"

	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

func buildSample() *model.SemanticModel {
	m := model.New()
	m.AddElement(&model.Element{ID: "Pkg", Name: "Pkg", Kind: model.KindPackage})
	m.AddElement(&model.Element{ID: "Pkg::Engine", Name: "Engine", Kind: model.KindPartDef, ParentID: "Pkg"})
	m.AddElement(&model.Element{ID: "Pkg::engine", Name: "engine", Kind: model.KindPartUsage, ParentID: "Pkg"})
	return m
}

func TestResolveUnqualified(t *testing.T) {
	table := Build(buildSample())
	scope := table.Scope("Pkg")
	sym, ok := table.Resolve(scope, "Engine")
	if !ok || sym.Element.ID != "Pkg::Engine" {
		t.Fatalf("Resolve(Pkg, Engine) = (%v, %v), want Pkg::Engine", sym, ok)
	}
}

func TestResolveQualified(t *testing.T) {
	table := Build(buildSample())
	root := table.Scope("")
	sym, ok := table.Resolve(root, "Pkg::Engine")
	if !ok || sym.Element.ID != "Pkg::Engine" {
		t.Fatalf("Resolve(root, Pkg::Engine) = (%v, %v), want Pkg::Engine", sym, ok)
	}
}

func TestResolveUnqualifiedSearchesAncestors(t *testing.T) {
	m := buildSample()
	m.AddElement(&model.Element{ID: "Pkg::Engine::Part", Kind: model.KindPartUsage, ParentID: "Pkg::Engine"})
	table := Build(m)

	childScope := table.Scope("Pkg::Engine")
	sym, ok := table.Resolve(childScope, "Engine")
	if !ok || sym.Element.ID != "Pkg::Engine" {
		t.Fatalf("expected unqualified lookup from a child scope to find an ancestor's sibling binding")
	}
}

func TestResolveMissingName(t *testing.T) {
	table := Build(buildSample())
	scope := table.Scope("Pkg")
	if _, ok := table.Resolve(scope, "NoSuchName"); ok {
		t.Fatal("expected Resolve to fail for an undefined name")
	}
}

func TestSuggestFindsClosestName(t *testing.T) {
	table := Build(buildSample())
	scope := table.Scope("Pkg")
	got := table.Suggest(scope, "Egine", 1)
	if len(got) != 1 || got[0] != "Engine" {
		t.Fatalf("Suggest(Egine) = %v, want [Engine]", got)
	}
}

func TestSuggestNoCandidateWithinThreshold(t *testing.T) {
	table := Build(buildSample())
	scope := table.Scope("Pkg")
	got := table.Suggest(scope, "CompletelyUnrelatedName", 1)
	if len(got) != 0 {
		t.Fatalf("Suggest(CompletelyUnrelatedName) = %v, want none", got)
	}
}

func TestAllNamesDeduplicatesAcrossScopes(t *testing.T) {
	m := buildSample()
	m.AddElement(&model.Element{ID: "Pkg::Engine::Part", Name: "Part", Kind: model.KindPartUsage, ParentID: "Pkg::Engine"})
	table := Build(m)

	names := table.AllNames(table.Scope("Pkg::Engine"))
	seen := map[string]int{}
	for _, n := range names {
		seen[n]++
	}
	for n, count := range seen {
		if count > 1 {
			t.Errorf("AllNames returned %q %d times, want at most once", n, count)
		}
	}
	if seen["Engine"] == 0 || seen["Part"] == 0 {
		t.Fatalf("AllNames(Pkg::Engine) = %v, want to include Engine and Part", names)
	}
}
