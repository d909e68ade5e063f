package palette

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MacroPower/tablegen/pkg/render"
)

// Tokens available to the qualified declaration template.
const (
	TokenPaletteName = "palette_name"
	TokenColorName   = "color_name"
)

// DefaultQualifiedDecl is the out-of-class definition emitted for each color
// into the {file_content} token.
const DefaultQualifiedDecl = "constexpr xray::rendering::rgb_color " +
	"xray::rendering::color_palette::{palette_name}::{color_name};"

const declFormat = "static constexpr rgb_color %s = {%.4ff, %.4ff, %.4ff, 1.0f};"

// Declaration returns the in-class constant declaration for one color.
func Declaration(e ColorEntry) (string, error) {
	c, err := HexToRGB(e.Hex)
	if err != nil {
		return "", fmt.Errorf("color %s: %w", e.Name, err)
	}

	return fmt.Sprintf(declFormat, e.Name, c.R, c.G, c.B), nil
}

// StructBlock renders the palette as a struct holding one declaration per
// color. Declarations are sorted by their rendered text.
func StructBlock(p *Palette) (string, error) {
	lines := make([]string, 0, p.Len())
	for _, e := range p.Entries() {
		l, err := Declaration(e)
		if err != nil {
			return "", fmt.Errorf("palette %s: %w", p.Name, err)
		}

		lines = append(lines, l)
	}

	slices.Sort(lines)

	var sb strings.Builder

	sb.WriteString("\tstruct " + p.Name + " {\n")

	for _, l := range lines {
		sb.WriteString("\t\t" + l + "\n")
	}

	sb.WriteString("\n\t};\n")

	return sb.String(), nil
}

// QualifiedDeclarations renders tmpl once per color of each palette, in
// palette order and then by color name, one per line.
func QualifiedDeclarations(tmpl string, palettes ...*Palette) string {
	var sb strings.Builder

	for _, p := range palettes {
		for _, name := range p.Names() {
			sb.WriteString(render.Execute(tmpl, render.Tokens{
				TokenPaletteName: p.Name,
				TokenColorName:   name,
			}))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
