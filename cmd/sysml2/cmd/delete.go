package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zbigniewsobiecki/sysml2/internal/config"
	"github.com/zbigniewsobiecki/sysml2/internal/model"
	"github.com/zbigniewsobiecki/sysml2/internal/modify"
	"github.com/zbigniewsobiecki/sysml2/internal/pattern"
)

// runDelete implements --delete: parse the (possibly repeated) pattern
// flag into a chain and run the cascade/sweep deletion (spec.md §4.5).
func runDelete(c *cobra.Command, f *flags, base *model.SemanticModel, cfg config.File, log *logrus.Logger) error {
	chain, err := pattern.ParseChain(f.deletePattern)
	if err != nil {
		return usageErrorf("--delete: %w", err)
	}

	log.Debugf("delete: matching %d pattern(s) against %d elements", len(f.deletePattern), base.Len())
	out, result := modify.Delete(base, chain)
	log.Debugf("delete: removed %d element(s)", result.DeletedCount)

	return writeResultModel(c, f, out, cfg.Validate)
}
