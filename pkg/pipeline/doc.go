// Package pipeline runs the table generators.
//
// Every generator works in two phases: all inputs and templates are read
// and parsed first, then aggregates are built and every output is rendered
// in memory. Files are written only once both phases succeed, so a failing
// run leaves no partial output behind.
package pipeline
