package keymap

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/MacroPower/tablegen/pkg/generrors"
)

// ParseOptions configures [Parse].
type ParseOptions struct {
	// Shift is accepted for compatibility with existing keymap
	// descriptions. It is recorded but never applied to the slot index.
	Shift *uint
	// Name is the table name used when emitting the table.
	Name string
	// File is used in diagnostics only.
	File string
	// Mask is applied to every raw index. It must not exceed [MaxMask].
	Mask uint32
	// Strict fails the parse on lines missing a symbol or index field,
	// instead of skipping them.
	Strict bool
}

// Parse reads keymap lines from r into a [Table].
//
// Fields beyond the second are ignored. Later lines overwrite earlier ones
// that mask to the same slot. An index that is not hexadecimal is an error
// wrapping [generrors.ErrFormat].
func Parse(r io.Reader, opts ParseOptions) (*Table, error) {
	if opts.Mask > MaxMask {
		return nil, fmt.Errorf("%w: %s: mask %#x exceeds %#x",
			generrors.ErrInvalidConfig, opts.File, opts.Mask, MaxMask)
	}

	t := NewTable(opts.Name)

	var merr *multierror.Error

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		text := scanner.Text()

		e, ok, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", opts.File, lineNo, err)
		}

		if !ok {
			if opts.Strict {
				merr = multierror.Append(merr, &generrors.LineError{
					Err:  generrors.ErrMalformedLine,
					File: opts.File,
					Line: lineNo,
					Text: text,
				})

				continue
			}

			slog.Debug("skipping line", slog.String("file", opts.File), slog.Int("line", lineNo))

			continue
		}

		t.Set(e, opts.Mask)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.File, err)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", opts.File, err)
	}

	return t, nil
}

func parseLine(line string) (Entry, bool, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return Entry{}, false, nil
	}

	symbol := strings.TrimSpace(fields[0])
	index := strings.TrimSpace(fields[1])

	if symbol == "" || index == "" {
		return Entry{}, false, nil
	}

	raw, err := ParseIndex(index)
	if err != nil {
		return Entry{}, false, fmt.Errorf("symbol %s: %w", symbol, err)
	}

	return Entry{Symbol: symbol, RawIndex: raw}, true, nil
}

// ParseIndex parses a hexadecimal key code, with or without a 0x prefix.
func ParseIndex(s string) (uint64, error) {
	digits := s
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}

	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", generrors.ErrFormat, s)
	}

	return v, nil
}
