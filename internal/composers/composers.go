// Package composers holds the set of composer names known to a library load.
package composers

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Index is an immutable set of composer names.
// It is built once from the whole library before any title is parsed.
type Index struct {
	names  []string // original spelling, sorted, deduplicated
	folded []string // case-folded, same order as names
}

// Build creates an index from raw composer strings. Blank entries are ignored
// and duplicates are collapsed. A nil or empty input yields an empty index.
func Build(names []string) *Index {
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(names))
	idx := &Index{}

	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		idx.names = append(idx.names, n)
	}

	sort.Strings(idx.names)
	idx.folded = make([]string, len(idx.names))
	for i, n := range idx.names {
		idx.folded[i] = fold.String(n)
	}
	return idx
}

// Contains reports whether candidate occurs, case-insensitively, inside at
// least one stored composer name. Containment is one-directional: a stored
// name inside candidate does not count. A blank candidate is never contained.
func (i *Index) Contains(candidate string) bool {
	if i == nil {
		return false
	}
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false
	}
	c := cases.Fold().String(candidate)
	for _, f := range i.folded {
		if strings.Contains(f, c) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct composer names.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.names)
}

// Names returns a copy of the stored names in sorted order.
func (i *Index) Names() []string {
	if i == nil {
		return nil
	}
	out := make([]string, len(i.names))
	copy(out, i.names)
	return out
}
