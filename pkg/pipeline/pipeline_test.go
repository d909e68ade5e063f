package pipeline_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/tablegen/pkg/genconfig"
	"github.com/MacroPower/tablegen/pkg/generrors"
	"github.com/MacroPower/tablegen/pkg/keymap"
	"github.com/MacroPower/tablegen/pkg/pipeline"
)

var testDataDir string

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	testDataDir = filepath.Join(dir, "testdata")
}

func fixedClock() time.Time {
	return time.Date(2016, time.February, 5, 14, 33, 2, 496000000, time.UTC)
}

// testConfig reads inputs from testdata/src and writes into out.
func testConfig(out string) *genconfig.Config {
	c := genconfig.Default()
	c.Root = filepath.Join(testDataDir, "src")
	c.Colors.Palettes = []genconfig.PaletteInput{
		{Path: "colordefs/flat.css", Name: "flat"},
		{Path: "colordefs/material.css", Name: "material"},
	}
	c.Colors.HeaderOutput = filepath.Join(out, "color_palettes.hpp")
	c.Colors.SourceOutput = filepath.Join(out, "color_palettes.cc")
	c.Keysyms.TableOutput = filepath.Join(out, "outf{index}")
	c.Keysyms.EnumOutput = filepath.Join(out, "key_sym.generated.hpp")
	c.Enums.OutputDir = filepath.Join(out, "enums")

	return c
}

func newGenerator(c *genconfig.Config) *pipeline.Generator {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	return pipeline.New(c, pipeline.WithClock(fixedClock), pipeline.WithLogger(logger))
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	return b
}

func TestGolden(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	require.NoError(t, newGenerator(testConfig(out)).Run(pipeline.KindColors, pipeline.KindKeysyms))

	tests := map[string]string{
		"header": "color_palettes.hpp",
		"source": "color_palettes.cc",
		"outf1":  "outf1",
		"outf2":  "outf2",
		"enum":   "key_sym.generated.hpp",
	}

	for name, file := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			golden.RequireEqual(t, readFile(t, filepath.Join(out, file)))
		})
	}
}

func TestRunIsReproducible(t *testing.T) {
	t.Parallel()

	first, err := newGenerator(testConfig(t.TempDir())).Plan(pipeline.AllKinds...)
	require.NoError(t, err)

	second, err := newGenerator(testConfig(t.TempDir())).Plan(pipeline.AllKinds...)
	require.NoError(t, err)

	require.Len(t, second, len(first))

	for i := range first {
		assert.Equal(t, first[i].Content, second[i].Content, filepath.Base(first[i].Path))
	}
}

func TestKeysymTables(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	require.NoError(t, newGenerator(testConfig(out)).Run(pipeline.KindKeysyms))

	for _, file := range []string{"outf1", "outf2"} {
		lines := strings.Split(string(readFile(t, filepath.Join(out, file))), "\n")

		entries := 0
		for _, l := range lines {
			if strings.HasPrefix(l, keymap.DefaultQualifier) {
				entries++
			}
		}

		assert.Equal(t, keymap.TableSize, entries, file)
	}
}

func TestTableOutputPattern(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	c := testConfig(out)
	c.Keysyms.TableOutput = filepath.Join(out, "tables", "{table_name}.inl")

	require.NoError(t, newGenerator(c).Run(pipeline.KindKeysyms))

	assert.FileExists(t, filepath.Join(out, "tables", "X11_MISC_FUNCTION_KEYS_MAPPING_TABLE.inl"))
	assert.FileExists(t, filepath.Join(out, "tables", "X11_LATIN1_KEYS_MAPPING_TABLE.inl"))
}

func TestTableOutputCollision(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	c := testConfig(out)
	c.Keysyms.TableOutput = filepath.Join(out, "table.inl")

	err := newGenerator(c).Run(pipeline.KindKeysyms)
	require.ErrorIs(t, err, generrors.ErrInvalidConfig)
	assert.NoFileExists(t, filepath.Join(out, "table.inl"))
}

func TestCustomKeysymTemplates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tableTmpl := filepath.Join(dir, "table.in")
	enumTmpl := filepath.Join(dir, "enum.in")
	require.NoError(t, os.WriteFile(tableTmpl, []byte("{table_name}:{unused}\n"), 0o600))
	require.NoError(t, os.WriteFile(enumTmpl, []byte("{enum_length}\n{lookup_table_entries}"), 0o600))

	c := testConfig(dir)
	c.Keysyms.TableTemplate = tableTmpl
	c.Keysyms.EnumTemplate = enumTmpl
	c.Keysyms.Qualifier = ""
	c.Keysyms.ExternalCode = "KEY_TBD"

	outputs, err := newGenerator(c).Plan(pipeline.KindKeysyms)
	require.NoError(t, err)
	require.Len(t, outputs, 3)

	assert.Equal(t, "X11_MISC_FUNCTION_KEYS_MAPPING_TABLE:{unused}\n", outputs[0].Content)
	assert.True(t, strings.HasPrefix(outputs[2].Content, "6\n\t{ A, KEY_TBD },\n"), outputs[2].Content)
}

func TestEnums(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	require.NoError(t, newGenerator(testConfig(out)).Run(pipeline.KindEnums))

	hpp := string(readFile(t, filepath.Join(out, "enums", "key_modifiers.hpp")))
	assert.Contains(t, hpp, "struct key_modifiers {")
	assert.Contains(t, hpp, "enum class e : uint8_t {")
	assert.Contains(t, hpp, "operator|(const key_modifiers::e a")
	assert.Contains(t, hpp, "2016-02-05 14:33:02.496000")

	cc := string(readFile(t, filepath.Join(out, "enums", "key_modifiers.cc")))
	assert.Contains(t, cc, `#include "key_modifiers.hpp"`)
	assert.Contains(t, cc, "return \"key_modifiers::e::alt\";")

	assert.NoFileExists(t, filepath.Join(out, "enums", "README.hpp"))
}

func TestEnumsEmptyDir(t *testing.T) {
	t.Parallel()

	c := testConfig(t.TempDir())
	c.Enums.DefinitionsDir = t.TempDir()

	outputs, err := newGenerator(c).Plan(pipeline.KindEnums)
	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestFatalErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		modify func(c *genconfig.Config, dir string)
		err    error
		kind   pipeline.Kind
	}{
		"missing palette": {
			kind: pipeline.KindColors,
			modify: func(c *genconfig.Config, _ string) {
				c.Colors.Palettes[1].Path = "colordefs/missing.css"
			},
			err: generrors.ErrInputNotFound,
		},
		"missing template": {
			kind: pipeline.KindColors,
			modify: func(c *genconfig.Config, _ string) {
				c.Colors.SourceTemplate = "colordefs/missing_template"
			},
			err: generrors.ErrInputNotFound,
		},
		"empty palette": {
			kind: pipeline.KindColors,
			modify: func(c *genconfig.Config, dir string) {
				path := filepath.Join(dir, "empty.css")
				must(os.WriteFile(path, []byte("/* nothing here */\n"), 0o600))
				c.Colors.Palettes[1].Path = path
			},
			err: generrors.ErrEmptyExtraction,
		},
		"invalid hex": {
			kind: pipeline.KindColors,
			modify: func(c *genconfig.Config, dir string) {
				path := filepath.Join(dir, "bad.css")
				must(os.WriteFile(path, []byte(".broken { --tmp: #12345G; }\n"), 0o600))
				c.Colors.Palettes[1].Path = path
			},
			err: generrors.ErrFormat,
		},
		"strict malformed line": {
			kind: pipeline.KindColors,
			modify: func(c *genconfig.Config, dir string) {
				path := filepath.Join(dir, "loose.css")
				must(os.WriteFile(path, []byte(".ok { --tmp: #FFFFFF; }\n}\n"), 0o600))
				c.Colors.Palettes[1].Path = path
				c.Strict = true
			},
			err: generrors.ErrMalformedLine,
		},
		"missing keymap": {
			kind: pipeline.KindKeysyms,
			modify: func(c *genconfig.Config, _ string) {
				c.Keysyms.Keymaps[0].Path = "symtables/missing"
			},
			err: generrors.ErrInputNotFound,
		},
		"bad keymap index": {
			kind: pipeline.KindKeysyms,
			modify: func(c *genconfig.Config, dir string) {
				path := filepath.Join(dir, "bad.keymap")
				must(os.WriteFile(path, []byte("Escape, 0xZZ,\n"), 0o600))
				c.Keysyms.Keymaps[1].Path = path
			},
			err: generrors.ErrFormat,
		},
		"invalid config": {
			kind: pipeline.KindKeysyms,
			modify: func(c *genconfig.Config, _ string) {
				c.Keysyms.Keymaps[0].Mask = 0x1FF
			},
			err: generrors.ErrInvalidConfig,
		},
		"missing enum dir": {
			kind: pipeline.KindEnums,
			modify: func(c *genconfig.Config, _ string) {
				c.Enums.DefinitionsDir = "missing"
			},
			err: generrors.ErrInputNotFound,
		},
		"unknown kind": {
			kind:   pipeline.Kind("fonts"),
			modify: func(*genconfig.Config, string) {},
			err:    generrors.ErrInvalidConfig,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			in := t.TempDir()
			out := t.TempDir()
			c := testConfig(out)
			tc.modify(c, in)

			err := newGenerator(c).Run(tc.kind)
			require.ErrorIs(t, err, tc.err)

			entries, err := os.ReadDir(out)
			require.NoError(t, err)
			assert.Empty(t, entries, "no output may be written on failure")
		})
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
