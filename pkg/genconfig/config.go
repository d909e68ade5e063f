package genconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/MacroPower/tablegen/pkg/generrors"
	"github.com/MacroPower/tablegen/pkg/keymap"
	"github.com/MacroPower/tablegen/pkg/palette"
)

// DefaultFile is the manifest looked up in the root directory when no
// config path is given.
const DefaultFile = "tablegen.yaml"

// Config is the generation manifest.
type Config struct {
	// Root is the directory relative paths resolve against. It is not part
	// of the manifest.
	Root string `json:"-" yaml:"-"`

	Colors  Colors  `json:"colors" yaml:"colors"`
	Keysyms Keysyms `json:"keysyms" yaml:"keysyms"`
	Enums   Enums   `json:"enums" yaml:"enums"`

	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty" jsonschema_description:"Fail on malformed input lines instead of skipping them."`
}

// PaletteInput names one color definition file.
type PaletteInput struct {
	Path string `json:"path" yaml:"path" jsonschema_description:"CSS rule file holding the palette colors."`
	Name string `json:"name" yaml:"name" jsonschema_description:"Palette label; becomes the struct name."`
}

// Colors configures the color palette generator.
type Colors struct {
	Palettes       []PaletteInput `json:"palettes" yaml:"palettes"`
	HeaderTemplate string         `json:"header_template" yaml:"header_template" jsonschema_description:"Template using {gen_time} and {pallete_definitions}."`
	SourceTemplate string         `json:"source_template" yaml:"source_template" jsonschema_description:"Template using {gen_time} and {file_content}."`
	HeaderOutput   string         `json:"header_output" yaml:"header_output"`
	SourceOutput   string         `json:"source_output" yaml:"source_output"`
	QualifiedDecl  string         `json:"qualified_decl,omitempty" yaml:"qualified_decl,omitempty" jsonschema_description:"Per-color line for {file_content}; uses {palette_name} and {color_name}."`
}

// KeymapInput names one keymap file and its table parameters.
type KeymapInput struct {
	// Shift is kept for compatibility with existing manifests; it does not
	// affect slot placement.
	Shift     *uint  `json:"shift,omitempty" yaml:"shift,omitempty"`
	Path      string `json:"path" yaml:"path"`
	TableName string `json:"table_name,omitempty" yaml:"table_name,omitempty" jsonschema_description:"Defaults to the file name in screaming snake case."`
	Mask      uint32 `json:"mask" yaml:"mask" jsonschema_description:"Mask applied to each raw index; at most 0xFF."`
}

// Name returns the table name, deriving one from the file name when unset.
func (k KeymapInput) Name() string {
	if k.TableName != "" {
		return k.TableName
	}

	return strcase.ToScreamingSnake(filepath.Base(k.Path)) + "_MAPPING_TABLE"
}

// Keysyms configures the key symbol table generator.
type Keysyms struct {
	Keymaps       []KeymapInput `json:"keymaps" yaml:"keymaps"`
	TableTemplate string        `json:"table_template,omitempty" yaml:"table_template,omitempty" jsonschema_description:"Per-table template; the built-in one is used when empty."`
	TableOutput   string        `json:"table_output" yaml:"table_output" jsonschema_description:"Output path pattern; uses {index} and {table_name}."`
	EnumTemplate  string        `json:"enum_template,omitempty" yaml:"enum_template,omitempty" jsonschema_description:"Enumeration template; the built-in one is used when empty."`
	EnumOutput    string        `json:"enum_output" yaml:"enum_output"`
	Qualifier     string        `json:"qualifier" yaml:"qualifier"`
	ExternalCode  string        `json:"external_code" yaml:"external_code" jsonschema_description:"Placeholder for the external key code column."`
}

// Enums configures the enum definition generator.
type Enums struct {
	DefinitionsDir string `json:"definitions_dir" yaml:"definitions_dir"`
	HeaderTemplate string `json:"header_template,omitempty" yaml:"header_template,omitempty"`
	SourceTemplate string `json:"source_template,omitempty" yaml:"source_template,omitempty"`
	OutputDir      string `json:"output_dir" yaml:"output_dir"`
}

// Default returns the manifest used when no config file exists.
func Default() *Config {
	latinShift := uint(8)

	return &Config{
		Root: ".",
		Colors: Colors{
			Palettes: []PaletteInput{
				{Path: "colordefs/flat_design_colors_full.css", Name: "flat"},
				{Path: "colordefs/material_design_colors_full.css", Name: "material"},
			},
			HeaderTemplate: "colordefs/output_template_file",
			SourceTemplate: "colordefs/output_templ_cc_file",
			HeaderOutput:   "color_palettes.hpp",
			SourceOutput:   "color_palettes.cc",
			QualifiedDecl:  palette.DefaultQualifiedDecl,
		},
		Keysyms: Keysyms{
			Keymaps: []KeymapInput{
				{Path: "symtables/x11.keymap.1", TableName: "X11_MISC_FUNCTION_KEYS_MAPPING_TABLE", Mask: 0xFF},
				{Path: "symtables/x11.keymap.0", TableName: "X11_LATIN1_KEYS_MAPPING_TABLE", Mask: 0xFF, Shift: &latinShift},
			},
			TableOutput:  "outf{index}",
			EnumOutput:   "key_sym.generated.hpp",
			Qualifier:    keymap.DefaultQualifier,
			ExternalCode: keymap.DefaultExternalCode,
		},
		Enums: Enums{
			DefinitionsDir: "enumdefs",
			OutputDir:      ".",
		},
	}
}

// Load reads the manifest at path on top of [Default]. Its root is the
// directory containing the file. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	//nolint:gosec // G304 not relevant for client-side generation.
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: config %s: %w", generrors.ErrInputNotFound, path, err)
	}

	c, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.Root = filepath.Dir(path)

	return c, nil
}

// Decode reads a manifest from r on top of [Default].
func Decode(r io.Reader) (*Config, error) {
	c := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", generrors.ErrInvalidConfig, err)
	}

	return c, nil
}

// Find loads the manifest at path, or, when path is empty, [DefaultFile]
// in root if it exists, falling back to [Default]. A non-empty root always
// overrides the manifest's own directory.
func Find(path, root string) (*Config, error) {
	var (
		c   *Config
		err error
	)

	switch {
	case path != "":
		c, err = Load(path)
	case fileExists(filepath.Join(rootOrDot(root), DefaultFile)):
		c, err = Load(filepath.Join(rootOrDot(root), DefaultFile))
	default:
		c = Default()
	}

	if err != nil {
		return nil, err
	}

	if root != "" {
		c.Root = root
	}

	return c, nil
}

// Resolve returns p relative to the config root. Absolute paths are
// returned unchanged.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(rootOrDot(c.Root), p)
}

// Encode writes the manifest as YAML.
func (c *Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return nil
}

// Validate reports every problem with the manifest.
func (c *Config) Validate() error {
	var merr *multierror.Error

	for _, err := range []error{c.ValidateColors(), c.ValidateKeysyms(), c.ValidateEnums()} {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return merr.ErrorOrNil()
}

// ValidateColors reports problems with the color section.
func (c *Config) ValidateColors() error {
	var merr *multierror.Error

	if len(c.Colors.Palettes) == 0 {
		merr = multierror.Append(merr, errors.New("colors: no palettes"))
	}

	for i, p := range c.Colors.Palettes {
		if p.Path == "" {
			merr = multierror.Append(merr, fmt.Errorf("colors: palette %d: path is required", i))
		}

		if strings.TrimSpace(p.Name) == "" {
			merr = multierror.Append(merr, fmt.Errorf("colors: palette %d: name is required", i))
		}
	}

	merr = requireFields(merr, "colors", map[string]string{
		"header_template": c.Colors.HeaderTemplate,
		"source_template": c.Colors.SourceTemplate,
		"header_output":   c.Colors.HeaderOutput,
		"source_output":   c.Colors.SourceOutput,
	})

	return wrapInvalid(merr)
}

// ValidateKeysyms reports problems with the keysym section.
func (c *Config) ValidateKeysyms() error {
	var merr *multierror.Error

	if len(c.Keysyms.Keymaps) == 0 {
		merr = multierror.Append(merr, errors.New("keysyms: no keymaps"))
	}

	for i, k := range c.Keysyms.Keymaps {
		if k.Path == "" {
			merr = multierror.Append(merr, fmt.Errorf("keysyms: keymap %d: path is required", i))
		}

		if k.Mask > keymap.MaxMask {
			merr = multierror.Append(merr, fmt.Errorf("keysyms: keymap %d: mask %#x exceeds %#x", i, k.Mask, keymap.MaxMask))
		}
	}

	merr = requireFields(merr, "keysyms", map[string]string{
		"table_output": c.Keysyms.TableOutput,
		"enum_output":  c.Keysyms.EnumOutput,
	})

	return wrapInvalid(merr)
}

// ValidateEnums reports problems with the enum section.
func (c *Config) ValidateEnums() error {
	merr := requireFields(nil, "enums", map[string]string{
		"definitions_dir": c.Enums.DefinitionsDir,
		"output_dir":      c.Enums.OutputDir,
	})

	return wrapInvalid(merr)
}

func requireFields(merr *multierror.Error, section string, fields map[string]string) *multierror.Error {
	for _, name := range sortedKeys(fields) {
		if fields[name] == "" {
			merr = multierror.Append(merr, fmt.Errorf("%s: %s is required", section, name))
		}
	}

	return merr
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}

func wrapInvalid(merr *multierror.Error) error {
	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", generrors.ErrInvalidConfig, err)
	}

	return nil
}

func rootOrDot(root string) string {
	if root == "" {
		return "."
	}

	return root
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)

	return err == nil && !fi.IsDir()
}
