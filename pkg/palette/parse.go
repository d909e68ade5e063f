package palette

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/MacroPower/tablegen/pkg/generrors"
)

// candidateLine matches lines that may hold a declaration: after trimming,
// they open with a class selector or close a rule.
var candidateLine = regexp.MustCompile(`^\.|\}$`)

// Field positions after the leading '.' is removed and the line is split on
// single spaces: `<name> { <property>: #RRGGBB; }`.
const (
	nameField = 0
	hexField  = 3
	minFields = hexField + 1
)

// ParseOptions configures [Parse].
type ParseOptions struct {
	// File is used in diagnostics only.
	File string
	// Strict fails the parse when a candidate line is malformed, instead of
	// skipping it.
	Strict bool
}

// Parse reads CSS rule lines from r into a [Palette] named name.
//
// Non-candidate lines are ignored. Malformed candidate lines are skipped
// unless opts.Strict is set, in which case every one of them is reported.
// A palette with no colors is an error wrapping
// [generrors.ErrEmptyExtraction].
func Parse(r io.Reader, name string, opts ParseOptions) (*Palette, error) {
	p := New(name)

	var merr *multierror.Error

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if !candidateLine.MatchString(line) {
			continue
		}

		e, ok := parseLine(line)
		if !ok {
			lerr := &generrors.LineError{
				Err:  generrors.ErrMalformedLine,
				File: opts.File,
				Line: lineNo,
				Text: line,
			}
			if opts.Strict {
				merr = multierror.Append(merr, lerr)

				continue
			}

			slog.Debug("skipping line", slog.String("file", opts.File), slog.Int("line", lineNo))

			continue
		}

		p.Set(e)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.File, err)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", opts.File, err)
	}

	if p.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", opts.File, generrors.ErrEmptyExtraction)
	}

	return p, nil
}

func parseLine(line string) (ColorEntry, bool) {
	fields := strings.Split(strings.TrimLeft(line, "."), " ")
	if len(fields) < minFields {
		return ColorEntry{}, false
	}

	e := ColorEntry{
		Name: strings.ReplaceAll(fields[nameField], "-", ""),
		Hex:  strings.TrimRight(strings.TrimLeft(fields[hexField], "#"), ";"),
	}
	if e.Name == "" || e.Hex == "" {
		return ColorEntry{}, false
	}

	return e, true
}
