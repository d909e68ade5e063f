package generrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound indicates an input or template file is missing or
	// unreadable.
	ErrInputNotFound = errors.New("input not found")

	// ErrEmptyExtraction indicates a color input yielded no entries.
	ErrEmptyExtraction = errors.New("no usable colors extracted")

	// ErrFormat indicates a value could not be converted, such as a hex
	// color or a keymap index.
	ErrFormat = errors.New("invalid format")

	// ErrMalformedLine indicates an input line did not have the expected
	// shape. It is only returned in strict mode.
	ErrMalformedLine = errors.New("malformed line")

	// ErrInvalidConfig indicates the generation manifest is unusable.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)
)

// LineError records a problem with a single input line.
type LineError struct {
	Err  error
	File string
	Text string
	Line int
}

func (e *LineError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
	}

	return fmt.Sprintf("%s:%d: %v: %q", e.File, e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
