// Package enumdef generates enumeration headers and name lookup sources
// from small YAML enum definitions.
package enumdef
