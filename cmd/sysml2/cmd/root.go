// Package cmd wires the CLI contract fixed by spec.md §6 onto cobra: a
// single root command with --list/--delete/--set, mutually exclusive,
// each producing the exit code the contract promises.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zbigniewsobiecki/sysml2/internal/config"
	"github.com/zbigniewsobiecki/sysml2/internal/logging"
	"github.com/zbigniewsobiecki/sysml2/internal/modelio"
)

// Exit codes per spec.md §6: 0 success, 1 usage/validation error, 2 I/O
// error.
const (
	ExitSuccess = 0
	ExitUsage   = 1
	ExitIO      = 2
)

// cliError pairs an error with the exit code it should produce.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &cliError{code: ExitUsage, err: fmt.Errorf(format, args...)}
}

func ioErrorf(format string, args ...any) error {
	return &cliError{code: ExitIO, err: fmt.Errorf(format, args...)}
}

// ExitCodeOf reports the exit code a top-level Execute error should
// produce. Errors not tagged with a cliError default to ExitUsage, since
// every untagged failure so far originates from flag/argument handling.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return ExitUsage
}

type flags struct {
	in            string
	out           string
	configPath    string
	verbosity     int
	list          bool
	selectPattern string
	jsonOut       bool
	deletePattern []string
	setFragment   string
	at            string
	createScope   bool
	replaceScope  bool
	runValidate   bool
	suggest       bool
}

// Main runs the command against os.Args[1:] and returns the process exit
// code, for both cmd/sysml2's own main and testscript's Cmds harness.
func Main() int {
	err := Execute(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return ExitCodeOf(err)
}

// Execute parses args and runs the resulting command, returning a
// cliError carrying the exit code to use on failure.
func Execute(args []string) error {
	f := &flags{}

	root := &cobra.Command{
		Use:           "sysml2",
		Short:         "Query and modify a SysML v2/KerML semantic model",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return run(c, f)
		},
	}

	fl := root.Flags()
	fl.StringVar(&f.in, "in", "", "path to the JSON-encoded input model (required)")
	fl.StringVar(&f.out, "out", "", "path to write the JSON-encoded result model (stdout if unset)")
	fl.StringVar(&f.configPath, "config", "", "path to .sysml2.yaml (defaults to ./.sysml2.yaml if present)")
	fl.CountVarP(&f.verbosity, "verbose", "v", "increase log verbosity (-v debug, -vv trace pass entry/exit)")

	fl.BoolVar(&f.list, "list", false, "discovery mode: list elements as <id>\\t<kind> or JSON")
	fl.StringVar(&f.selectPattern, "select", "", "pattern restricting --list to matching elements")
	fl.BoolVar(&f.jsonOut, "json", false, "emit --list output as JSON instead of tab-separated")

	fl.StringArrayVar(&f.deletePattern, "delete", nil, "pattern of elements to delete (repeatable)")

	fl.StringVar(&f.setFragment, "set", "", "path to a JSON-encoded fragment model to upsert")
	fl.StringVar(&f.at, "at", "", "target scope for --set")
	fl.BoolVar(&f.createScope, "create-scope", false, "synthesize missing ancestor scopes for --at")
	fl.BoolVar(&f.replaceScope, "replace-scope", false, "drop existing children of --at before inserting the fragment")

	fl.BoolVar(&f.runValidate, "validate", false, "validate the resulting model and print diagnostics")
	fl.BoolVar(&f.suggest, "suggest", true, "attach \"did you mean\" help to validator findings")

	root.SetArgs(args)
	return root.Execute()
}

func run(c *cobra.Command, f *flags) error {
	modeCount := 0
	if f.list {
		modeCount++
	}
	if len(f.deletePattern) > 0 {
		modeCount++
	}
	if f.setFragment != "" {
		modeCount++
	}
	if modeCount == 0 {
		return usageErrorf("exactly one of --list, --delete, or --set is required")
	}
	if modeCount > 1 {
		return usageErrorf("--list, --delete, and --set are mutually exclusive")
	}
	if f.in == "" {
		return usageErrorf("--in is required")
	}

	log := logging.New(f.verbosity, c.ErrOrStderr())

	cfgPath := f.configPath
	if cfgPath == "" {
		cfgPath = config.FileName
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return ioErrorf("reading config: %w", err)
	}
	cfg.Validate.Logger = log
	cfg.Validate.SuggestCorrections = f.suggest
	if f.createScope {
		cfg.Modify.CreateScope = true
	}
	if f.replaceScope {
		cfg.Modify.ReplaceScope = true
	}

	base, err := modelio.Load(f.in)
	if err != nil {
		return ioErrorf("reading --in: %w", err)
	}

	switch {
	case f.list:
		return runList(c, f, base)
	case len(f.deletePattern) > 0:
		return runDelete(c, f, base, cfg, log)
	default:
		return runSet(c, f, base, cfg, log)
	}
}
