// Package cli implements the tablegen command line.
package cli
