// Package modelio is this module's own minimal JSON interchange format
// for *model.SemanticModel, standing in for the external parser/writer
// named in spec.md §6. Those collaborators round-trip real SysML v2
// text; this package exists only so cmd/sysml2 has something concrete
// to read and write while exercising the delete/merge/validate contract
// end to end.
package modelio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/zbigniewsobiecki/sysml2/internal/model"
)

// doc is the on-disk shape: the subset of SemanticModel fields that
// participate in structural operations. Arena and Interner are rebuilt
// fresh on Load since JSON carries no allocator state.
type doc struct {
	Elements      []*model.Element      `json:"elements"`
	Relationships []*model.Relationship `json:"relationships"`
	SourceFile    *model.SourceFile     `json:"sourceFile,omitempty"`
}

// Load reads a JSON-encoded model from path.
func Load(path string) (*model.SemanticModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a JSON-encoded model from r.
func Decode(r io.Reader) (*model.SemanticModel, error) {
	var d doc
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}

	m := model.New()
	m.SourceFile = d.SourceFile
	for _, e := range d.Elements {
		m.AddElement(e)
	}
	for _, r := range d.Relationships {
		m.AddRelationship(r)
	}
	return m, nil
}

// Save writes m as JSON to path.
func Save(path string, m *model.SemanticModel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(f, m)
}

// Encode writes m as JSON to w.
func Encode(w io.Writer, m *model.SemanticModel) error {
	d := doc{
		Elements:      m.Elements,
		Relationships: m.Relationships,
		SourceFile:    m.SourceFile,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
