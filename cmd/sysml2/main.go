// Command sysml2 is a thin CLI exercising the semantic-model engine's
// delete, merge, and list operations against a JSON-encoded model
// (internal/modelio), per the CLI contract fixed in spec.md §6.
package main

import (
	"os"

	"github.com/zbigniewsobiecki/sysml2/cmd/sysml2/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
