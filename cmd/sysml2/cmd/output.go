package cmd

import "os"

// openOut creates (or truncates) path for writing --out.
func openOut(path string) (*os.File, error) {
	return os.Create(path)
}
