package symtab

import "sort"

// Suggest implements find_similar (spec.md §4.3): up to k names from
// scope's accessible names whose Levenshtein distance to name is at most
// max(2, len(name)/3), sorted by distance then lexicographically.
func (t *Table) Suggest(scope *Scope, name string, k int) []string {
	type cand struct {
		name string
		dist int
	}
	threshold := len(name) / 3
	if threshold < 2 {
		threshold = 2
	}
	var cands []cand
	for _, n := range t.AllNames(scope) {
		if n == name {
			continue
		}
		d := levenshtein(name, n)
		if d <= threshold {
			cands = append(cands, cand{n, d})
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].name < cands[j].name
	})
	if len(cands) > k {
		cands = cands[:k]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.name
	}
	return out
}

// levenshtein computes the classic edit distance between a and b using a
// two-row dynamic-programming table (no retrieved example or teacher file
// implements string edit distance; this is a textbook implementation —
// see DESIGN.md).
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
