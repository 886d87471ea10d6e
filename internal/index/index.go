// Package index discovers the executables reachable through the search path.
//
// An Index is built once at startup and never changes afterwards, so it can be
// shared with the UI without locking.
package index

import "sort"

// Index is a read-only set of executable base names. A nil *Index is an
// empty set.
type Index struct {
	names map[string]struct{}
}

// New builds an index holding exactly the supplied names.
func New(names ...string) *Index {
	idx := &Index{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if name == "" {
			continue
		}
		idx.names[name] = struct{}{}
	}
	return idx
}

// Len returns the number of distinct names.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.names)
}

// Contains reports whether name was discovered.
func (i *Index) Contains(name string) bool {
	if i == nil {
		return false
	}
	_, ok := i.names[name]
	return ok
}

// Each calls fn for every name in unspecified order.
func (i *Index) Each(fn func(name string)) {
	if i == nil || fn == nil {
		return
	}
	for name := range i.names {
		fn(name)
	}
}

// Names returns a sorted copy of the set.
func (i *Index) Names() []string {
	if i == nil {
		return nil
	}
	out := make([]string, 0, len(i.names))
	for name := range i.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
