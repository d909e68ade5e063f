package palette

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/MacroPower/tablegen/pkg/generrors"
)

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// HexToRGB converts six hex digits (RRGGBB, no '#') into a color whose
// components are the 8-bit channels divided by 255.
func HexToRGB(hex string) (colorful.Color, error) {
	if !hexColor.MatchString(hex) {
		return colorful.Color{}, fmt.Errorf("%w: hex color %q", generrors.ErrFormat, hex)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: hex color %q: %w", generrors.ErrFormat, hex, err)
	}

	return c, nil
}

// RGBToHex is the inverse of [HexToRGB]: each component is scaled by 255 and
// rounded, and the result is returned as six upper-case hex digits.
func RGBToHex(c colorful.Color) string {
	return strings.ToUpper(strings.TrimPrefix(c.Hex(), "#"))
}
