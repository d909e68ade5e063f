package palette_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/tablegen/pkg/generrors"
	"github.com/MacroPower/tablegen/pkg/palette"
)

var testDataDir string

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	testDataDir = filepath.Join(dir, "testdata")
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  map[string]string
	}{
		"single declaration": {
			input: ".accent100 { --tmp: #FF8A65; }",
			want:  map[string]string{"accent100": "FF8A65"},
		},
		"hyphens stripped": {
			input: ".light-blue-50 { --tmp: #E1F5FE; }",
			want:  map[string]string{"lightblue50": "E1F5FE"},
		},
		"last declaration wins": {
			input: ".red { --tmp: #FF0000; }\n.red { --tmp: #AA0000; }\n",
			want:  map[string]string{"red": "AA0000"},
		},
		"surrounding whitespace": {
			input: "\t  .blue { --tmp: #0000FF; }   \n",
			want:  map[string]string{"blue": "0000FF"},
		},
		"non candidate lines ignored": {
			input: "/* header */\n:root {\n.green { --tmp: #00FF00; }\n",
			want:  map[string]string{"green": "00FF00"},
		},
		"malformed candidates skipped": {
			input: "}\n.short {\n.green { --tmp: #00FF00; }\n. { x: #; }\n",
			want:  map[string]string{"green": "00FF00"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p, err := palette.Parse(strings.NewReader(tc.input), "test", palette.ParseOptions{})
			require.NoError(t, err)

			got := map[string]string{}
			for _, e := range p.Entries() {
				got[e.Name] = e.Hex
			}

			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"empty":         "",
		"all malformed": "}\n.x {\n  }\n",
		"no candidates": "/* nothing */\n:root {\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := palette.Parse(strings.NewReader(input), "flat", palette.ParseOptions{File: "flat.css"})
			require.ErrorIs(t, err, generrors.ErrEmptyExtraction)
		})
	}
}

func TestParseStrict(t *testing.T) {
	t.Parallel()

	input := "}\n.green { --tmp: #00FF00; }\n.short {\n"

	_, err := palette.Parse(strings.NewReader(input), "flat", palette.ParseOptions{
		File:   "flat.css",
		Strict: true,
	})
	require.ErrorIs(t, err, generrors.ErrMalformedLine)
	assert.Contains(t, err.Error(), "flat.css:1")
	assert.Contains(t, err.Error(), "flat.css:3")

	p, err := palette.Parse(strings.NewReader(".green { --tmp: #00FF00; }\n"), "flat", palette.ParseOptions{
		Strict: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Len())
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	f, err := os.Open(filepath.Join(testDataDir, "flat.css"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})

	p, err := palette.Parse(f, "flat", palette.ParseOptions{File: "flat.css"})
	require.NoError(t, err)

	assert.Equal(t, "flat", p.Name)
	assert.Equal(t, []string{"alizarin", "alizarin100", "emerald", "turquoise"}, p.Names())

	e, ok := p.Get("alizarin100")
	require.True(t, ok)
	assert.Equal(t, "FADBD8", e.Hex)
}

func TestStructName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "flat", palette.StructName("flat"))
	assert.Equal(t, "material_design", palette.StructName("Material Design"))
}
