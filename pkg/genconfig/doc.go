// Package genconfig defines the generation manifest: every input, template
// and output path used by the generators, and the per-table parameters.
//
// Relative paths are resolved against an explicit root directory rather
// than the process working directory.
package genconfig
