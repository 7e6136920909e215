package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zbigniewsobiecki/sysml2/internal/config"
	"github.com/zbigniewsobiecki/sysml2/internal/model"
	"github.com/zbigniewsobiecki/sysml2/internal/modelio"
	"github.com/zbigniewsobiecki/sysml2/internal/modify"
)

// runSet implements --set: load the fragment model from --set's path and
// upsert it into base at --at (spec.md §4.6).
func runSet(c *cobra.Command, f *flags, base *model.SemanticModel, cfg config.File, log *logrus.Logger) error {
	if f.at == "" {
		return usageErrorf("--at is required with --set")
	}

	fragment, err := modelio.Load(f.setFragment)
	if err != nil {
		return ioErrorf("reading --set: %w", err)
	}

	log.Debugf("merge: upserting %d fragment element(s) at %q (create_scope=%v, replace_scope=%v)",
		fragment.Len(), f.at, cfg.Modify.CreateScope, cfg.Modify.ReplaceScope)

	out, result, err := modify.Merge(base, fragment, f.at, cfg.Modify)
	if err != nil {
		return usageErrorf("merge: %w", err)
	}
	log.Debugf("merge: added %d, replaced %d", result.AddedCount, result.ReplacedCount)

	return writeResultModel(c, f, out, cfg.Validate)
}
