package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zbigniewsobiecki/sysml2/internal/model"
	"github.com/zbigniewsobiecki/sysml2/internal/pattern"
)

// listRow is the JSON shape for --list --json, matching spec.md §6's
// `id`, `name`, `kind` fields.
type listRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// runList implements the --list discovery mode: top-level elements by
// default, or every element matching --select.
func runList(c *cobra.Command, f *flags, base *model.SemanticModel) error {
	var elems []*model.Element
	if f.selectPattern != "" {
		p, err := pattern.Parse(f.selectPattern)
		if err != nil {
			return usageErrorf("--select: %w", err)
		}
		for _, e := range base.Elements {
			if p.Match(e.ID) {
				elems = append(elems, e)
			}
		}
	} else {
		elems = base.Children("")
	}

	w := c.OutOrStdout()
	if f.out != "" {
		file, err := openOut(f.out)
		if err != nil {
			return ioErrorf("writing --out: %w", err)
		}
		defer file.Close()
		w = file
	}

	if f.jsonOut {
		return writeListJSON(w, elems)
	}
	return writeListTSV(w, elems)
}

func writeListTSV(w io.Writer, elems []*model.Element) error {
	for _, e := range elems {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.ID, e.Kind); err != nil {
			return ioErrorf("writing list output: %w", err)
		}
	}
	return nil
}

func writeListJSON(w io.Writer, elems []*model.Element) error {
	rows := make([]listRow, len(elems))
	for i, e := range elems {
		rows[i] = listRow{ID: e.ID, Name: e.Name, Kind: e.Kind.String()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return ioErrorf("writing list output: %w", err)
	}
	return nil
}
