package render

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/MacroPower/tablegen/pkg/generrors"
)

// Tokens produced by the color pipeline.
const (
	TokenGenTime            = "gen_time"
	TokenPaletteDefinitions = "pallete_definitions"
	TokenFileContent        = "file_content"
)

// GenTimeLayout is the layout used for the {gen_time} token.
const GenTimeLayout = "2006-01-02 15:04:05.000000"

// Tokens maps token names (without braces) to their replacement text.
type Tokens map[string]string

// Placeholder returns the template placeholder for the named token.
func Placeholder(name string) string {
	return "{" + name + "}"
}

// Execute returns tmpl with every occurrence of each token replaced by its
// text. Replacement is a single pass, so replacement text is never itself
// searched for tokens.
func Execute(tmpl string, tokens Tokens) string {
	if len(tokens) == 0 {
		return tmpl
	}

	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}

	slices.Sort(names)

	oldnew := make([]string, 0, len(names)*2)
	for _, name := range names {
		oldnew = append(oldnew, Placeholder(name), tokens[name])
	}

	return strings.NewReplacer(oldnew...).Replace(tmpl)
}

// GenTime formats t for the {gen_time} token.
func GenTime(t time.Time) string {
	return t.Format(GenTimeLayout)
}

// Clock returns the current time. It is replaced in tests to get
// reproducible output.
type Clock func() time.Time

// LoadTemplate reads the template at path.
func LoadTemplate(path string) (string, error) {
	//nolint:gosec // G304 not relevant for client-side generation.
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: template %s: %w", generrors.ErrInputNotFound, path, err)
	}

	return string(b), nil
}

// Output is a fully rendered file waiting to be written.
type Output struct {
	Path    string
	Content string
}

// Write writes the output, creating parent directories and overwriting any
// existing file.
func (o Output) Write() error {
	if err := os.MkdirAll(filepath.Dir(o.Path), 0o750); err != nil {
		return fmt.Errorf("%w: %s: %w", generrors.ErrWriteFile, o.Path, err)
	}

	//nolint:gosec // G306 generated sources are meant to be world readable.
	if err := os.WriteFile(o.Path, []byte(o.Content), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", generrors.ErrWriteFile, o.Path, err)
	}

	return nil
}

// WriteAll writes outputs in order, stopping at the first failure.
func WriteAll(outputs []Output) error {
	for _, o := range outputs {
		if err := o.Write(); err != nil {
			return err
		}
	}

	return nil
}
