// Package config loads the optional .sysml2.yaml project file and layers
// it under CLI flag values: struct defaults first, then the file if
// present, then flags, each layer overriding the one before it.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zbigniewsobiecki/sysml2/internal/modify"
	"github.com/zbigniewsobiecki/sysml2/internal/validate"
)

// FileName is the project config file cmd/sysml2 looks for in the
// current directory when no explicit --config path is given.
const FileName = ".sysml2.yaml"

// File is the on-disk shape of .sysml2.yaml. Every field mirrors an
// Options/MergeOptions field one-for-one so flags can override
// individual settings without needing to know the file was even read.
type File struct {
	Validate validate.Options    `yaml:"validate"`
	Modify   modify.MergeOptions `yaml:"modify"`
}

// Default returns the struct-default layer: every check enabled,
// correction suggestions off, scope creation and scope replacement both
// off. (cmd/sysml2 sets suggestions from its --suggest flag, which
// defaults to on.)
func Default() File {
	return File{
		Validate: validate.DefaultOptions(),
		Modify:   modify.MergeOptions{},
	}
}

// Load reads path and unmarshals it over Default(). A missing file is
// not an error: Load returns the defaults unchanged, since
// .sysml2.yaml is optional (spec.md doesn't require a project file to
// exist at all).
func Load(path string) (File, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return File{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, err
	}
	return cfg, nil
}
