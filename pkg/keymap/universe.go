package keymap

import (
	"maps"
	"slices"
)

// Universe is the sorted set of every symbol used by a run's tables,
// including [Sentinel] exactly once.
type Universe []string

// BuildUniverse collects the symbols of all tables. The result depends only
// on the set of symbols, not on table order.
func BuildUniverse(tables ...*Table) Universe {
	set := map[string]struct{}{Sentinel: {}}
	for _, t := range tables {
		for _, s := range t.Symbols() {
			set[s] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(set))
}

// Index returns the position of symbol in u, or -1.
func (u Universe) Index(symbol string) int {
	i, ok := slices.BinarySearch(u, symbol)
	if !ok {
		return -1
	}

	return i
}
