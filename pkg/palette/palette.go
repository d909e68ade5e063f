package palette

import (
	"maps"
	"slices"

	"github.com/iancoleman/strcase"
)

// ColorEntry is one parsed color declaration.
type ColorEntry struct {
	// Identifier with hyphens stripped.
	Name string
	// Six hex digits, without the leading '#'.
	Hex string
}

// Palette is a named set of colors parsed from one input file. Entries are
// keyed by name; setting an existing name replaces its color.
type Palette struct {
	entries map[string]ColorEntry
	Name    string
}

// New returns an empty [Palette] with the given name.
func New(name string) *Palette {
	return &Palette{
		Name:    name,
		entries: make(map[string]ColorEntry),
	}
}

// StructName converts a caller supplied label such as "Material Design" into
// the identifier used for the palette's struct block.
func StructName(label string) string {
	return strcase.ToSnake(label)
}

// Set adds or replaces the color for e.Name.
func (p *Palette) Set(e ColorEntry) {
	p.entries[e.Name] = e
}

// Get returns the color with the given name.
func (p *Palette) Get(name string) (ColorEntry, bool) {
	e, ok := p.entries[name]

	return e, ok
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Names returns the color names in lexicographic order.
func (p *Palette) Names() []string {
	return slices.Sorted(maps.Keys(p.entries))
}

// Entries returns the colors ordered by name.
func (p *Palette) Entries() []ColorEntry {
	names := p.Names()
	out := make([]ColorEntry, 0, len(names))
	for _, n := range names {
		out = append(out, p.entries[n])
	}

	return out
}
