package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zbigniewsobiecki/sysml2/internal/diag"
	"github.com/zbigniewsobiecki/sysml2/internal/modelio"
	"github.com/zbigniewsobiecki/sysml2/internal/model"
	"github.com/zbigniewsobiecki/sysml2/internal/validate"
)

// writeResultModel optionally validates out, prints its diagnostics, and
// writes out to --out or stdout as JSON. A SemanticError status after
// --validate is a usage/validation-error exit (spec.md §6/§7.2); I/O
// failures writing the model are an I/O-error exit. opts is the
// project's validate.Options (from .sysml2.yaml, with --suggest and the
// logger already applied by run), so the config's per-check Enable*
// flags and wired Logger reach the validator rather than being
// discarded in favor of a fresh set of defaults.
func writeResultModel(c *cobra.Command, f *flags, out *model.SemanticModel, opts validate.Options) error {
	if f.runValidate {
		store := validate.Validate(out, opts)
		if store.Len() > 0 {
			store.Sort()
			diag.Fprint(c.ErrOrStderr(), store)
		}
		if validate.StatusOf(store) == validate.SemanticError {
			return usageErrorf("validation reported %d error(s)", store.ErrorCount())
		}
	}

	if f.out != "" {
		if err := modelio.Save(f.out, out); err != nil {
			return ioErrorf("writing --out: %w", err)
		}
		return nil
	}
	if err := modelio.Encode(c.OutOrStdout(), out); err != nil {
		return ioErrorf("writing result model: %w", err)
	}
	return nil
}
