// Package generrors defines the error kinds shared by the table generators.
//
// Every fatal condition is a sentinel wrapped with additional context, so
// callers can classify failures with [errors.Is] regardless of which
// pipeline produced them.
package generrors
