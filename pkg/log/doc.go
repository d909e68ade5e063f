// Package log builds the [log/slog] handlers used by the command line.
package log
