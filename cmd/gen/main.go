package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MacroPower/tablegen/pkg/genconfig"
)

func main() {
	basePath := "schemas"
	if len(os.Args) > 1 {
		basePath = os.Args[1]
	}

	if err := generate(basePath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func generate(path string) error {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := writeFile(filepath.Join(path, "tablegen.schema.json"), writeSchema); err != nil {
		return err
	}

	return writeFile(filepath.Join(path, genconfig.DefaultFile), genconfig.Default().Encode)
}

func writeSchema(w io.Writer) error {
	b, err := genconfig.Schema()
	if err != nil {
		return err
	}

	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}

	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	//nolint:gosec // G304 not relevant for client-side generation.
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	if err := fn(f); err != nil {
		f.Close() //nolint:errcheck // Already failing.

		return fmt.Errorf("failed to generate %s: %w", filepath.Base(path), err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}
