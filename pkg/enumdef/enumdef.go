package enumdef

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/MacroPower/tablegen/pkg/generrors"
	"github.com/MacroPower/tablegen/pkg/render"
)

// Tokens available to the enum templates.
const (
	TokenNamespaceBegin      = "nsbegin"
	TokenNamespaceEnd        = "nsend"
	TokenEnumName            = "enum_name"
	TokenUnderlyingTypeSpec  = "enum_underlying_type_spec"
	TokenUnderlyingType      = "enum_underlying_type"
	TokenTypeTraitsHeader    = "type_traits_hdr"
	TokenMembersAndValues    = "enum_members_and_values"
	TokenLength              = "enum_length"
	TokenMembers             = "enum_members"
	TokenBitwiseAnd          = "bitwise_and"
	TokenBitwiseOr           = "bitwise_or"
	TokenHeaderFile          = "enum_file_hpp"
	TokenQualifiedNameCode   = "qualified_name_code"
	TokenUnqualifiedNameCode = "unqualified_name_code"
)

var (
	//go:embed templates/enum.hpp.tmpl
	DefaultHeaderTemplate string

	//go:embed templates/enum.cc.tmpl
	DefaultSourceTemplate string
)

const (
	bitwiseOrFormat = `constexpr %[1]s::e operator|(const %[1]s::e a, const %[1]s::e b) noexcept {
  return static_cast<%[1]s::e>(static_cast<%[1]s::underlying_type>(a) | static_cast<%[1]s::underlying_type>(b));
}`
	bitwiseAndFormat = `constexpr %[1]s::e operator&(const %[1]s::e a, const %[1]s::e b) noexcept {
  return static_cast<%[1]s::e>(static_cast<%[1]s::underlying_type>(a) & static_cast<%[1]s::underlying_type>(b));
}`
)

// Definition describes one enumeration.
type Definition struct {
	// Enumeration name; also the base name of the generated files.
	Name string `yaml:"name"`
	// Enclosing namespaces, outermost first.
	Namespaces []string `yaml:"namespaces,omitempty"`
	// Underlying integer type. Empty leaves it to the compiler.
	UnderlyingType string `yaml:"underlying_type,omitempty"`
	// Members, each either "name" or "name = value".
	Members []string `yaml:"members"`
	// Emit bitwise operators for the enumeration.
	Bitfield bool `yaml:"is_bitfield,omitempty"`
}

// Load decodes and validates a definition. Unknown keys are rejected.
func Load(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	d := &Definition{}
	if err := dec.Decode(d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode enum definition: %w", generrors.ErrInvalidConfig, err)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate reports every problem with the definition.
func (d *Definition) Validate() error {
	var merr *multierror.Error

	if strings.TrimSpace(d.Name) == "" {
		merr = multierror.Append(merr, errors.New("name is required"))
	}

	if len(d.Members) == 0 {
		merr = multierror.Append(merr, errors.New("at least one member is required"))
	}

	for i, m := range d.Members {
		if memberName(m) == "" {
			merr = multierror.Append(merr, fmt.Errorf("member %d has no name", i))
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: enum %q: %w", generrors.ErrInvalidConfig, d.Name, err)
	}

	return nil
}

// HeaderFile returns the file name of the generated header.
func (d *Definition) HeaderFile() string {
	return d.Name + ".hpp"
}

// SourceFile returns the file name of the generated source.
func (d *Definition) SourceFile() string {
	return d.Name + ".cc"
}

// MemberNames returns the members with any "= value" suffix removed.
func (d *Definition) MemberNames() []string {
	names := make([]string, 0, len(d.Members))
	for _, m := range d.Members {
		names = append(names, memberName(m))
	}

	return names
}

// Tokens returns the replacement text for every enum template token.
func (d *Definition) Tokens() render.Tokens {
	names := d.MemberNames()

	tokens := render.Tokens{
		TokenNamespaceBegin:      d.namespaceBegin(),
		TokenNamespaceEnd:        d.namespaceEnd(),
		TokenEnumName:            d.Name,
		TokenUnderlyingTypeSpec:  "",
		TokenUnderlyingType:      fmt.Sprintf("std::underlying_type<%s::e>::type", d.Name),
		TokenTypeTraitsHeader:    "#include <type_traits>",
		TokenMembersAndValues:    strings.Join(d.Members, ",\n"),
		TokenLength:              strconv.Itoa(len(d.Members)),
		TokenMembers:             "e::" + strings.Join(names, ", e::"),
		TokenBitwiseOr:           "",
		TokenBitwiseAnd:          "",
		TokenHeaderFile:          d.HeaderFile(),
		TokenQualifiedNameCode:   "",
		TokenUnqualifiedNameCode: "",
	}

	if d.UnderlyingType != "" {
		tokens[TokenUnderlyingTypeSpec] = ": " + d.UnderlyingType
		tokens[TokenUnderlyingType] = d.UnderlyingType
		tokens[TokenTypeTraitsHeader] = ""
	}

	if d.Bitfield {
		tokens[TokenBitwiseOr] = fmt.Sprintf(bitwiseOrFormat, d.Name)
		tokens[TokenBitwiseAnd] = fmt.Sprintf(bitwiseAndFormat, d.Name)
	}

	var qualified, unqualified strings.Builder
	for _, n := range names {
		fmt.Fprintf(&qualified, "case %[2]s::e::%[1]s :\n return \"%[2]s::e::%[1]s\";\nbreak;\n", n, d.Name)
		fmt.Fprintf(&unqualified, "case %[2]s::e::%[1]s :\n return \"%[1]s\"; break;\n", n, d.Name)
	}

	tokens[TokenQualifiedNameCode] = qualified.String()
	tokens[TokenUnqualifiedNameCode] = unqualified.String()

	return tokens
}

func (d *Definition) namespaceBegin() string {
	var sb strings.Builder
	for _, ns := range d.Namespaces {
		sb.WriteString("namespace " + ns + " { ")
	}

	return sb.String()
}

func (d *Definition) namespaceEnd() string {
	var sb strings.Builder
	for i := len(d.Namespaces) - 1; i >= 0; i-- {
		sb.WriteString("} // namespace " + d.Namespaces[i] + "\n")
	}

	return sb.String()
}

func memberName(m string) string {
	name, _, _ := strings.Cut(m, "=")

	return strings.TrimSpace(name)
}
