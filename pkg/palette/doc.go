// Package palette extracts color palettes from CSS-like rule files and
// emits them as constant declarations.
//
// Each meaningful input line declares one color as a single-line class rule:
//
//	.accent-100 { --tmp: #FF8A65; }
//
// The class name (hyphens removed) becomes the color identifier and the
// #RRGGBB value is converted to normalized float components.
package palette
