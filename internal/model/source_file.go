package model

// SourceFile carries provenance for diagnostics only; the engine itself
// never parses or re-derives positions from Content (spec.md §3).
type SourceFile struct {
	Path    string
	Content string

	// LineOffsets[i] is the byte offset at which line i+1 (1-based)
	// begins, supplied by the external parser.
	LineOffsets []int
}
