// Package render substitutes named placeholder tokens into template text
// and writes the rendered results to disk.
//
// Tokens have the form {name}. Tokens without a replacement are left in the
// output verbatim, so a template may reference any subset of the tokens a
// pipeline provides.
package render
