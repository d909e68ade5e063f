package keymap

import (
	"maps"
	"slices"
)

const (
	// TableSize is the number of slots in every [Table].
	TableSize = 256

	// Sentinel is the symbol held by slots with no explicit mapping.
	Sentinel = "unknown"

	// MaxMask is the widest mask that keeps every slot inside the table.
	MaxMask = TableSize - 1
)

// Entry is one parsed keymap line.
type Entry struct {
	Symbol   string
	RawIndex uint64
}

// Slot returns the table slot for e under mask.
func (e Entry) Slot(mask uint32) int {
	return int(e.RawIndex & uint64(mask))
}

// Table maps masked key codes to symbol names.
type Table struct {
	Name  string
	Slots [TableSize]string
}

// NewTable returns a table with every slot set to [Sentinel].
func NewTable(name string) *Table {
	t := &Table{Name: name}
	for i := range t.Slots {
		t.Slots[i] = Sentinel
	}

	return t
}

// Set stores e.Symbol at its masked slot, replacing any previous symbol.
func (t *Table) Set(e Entry, mask uint32) {
	t.Slots[e.Slot(mask)] = e.Symbol
}

// Symbols returns the distinct non-sentinel symbols in the table, sorted.
func (t *Table) Symbols() []string {
	set := map[string]struct{}{}
	for _, s := range t.Slots {
		if s != Sentinel {
			set[s] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(set))
}
