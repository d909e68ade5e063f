package keymap

import (
	_ "embed"
	"strconv"
	"strings"
)

// Tokens produced by the keysym pipeline.
const (
	TokenTableName          = "table_name"
	TokenTableEntries       = "table_entries"
	TokenEnumMembers        = "enum_members"
	TokenEnumLength         = "enum_length"
	TokenLookupTableEntries = "lookup_table_entries"

	// TokenIndex is the 1-based input position, for output path patterns.
	TokenIndex = "index"
)

const (
	// DefaultQualifier prefixes symbols in table slots and lookup rows.
	DefaultQualifier = "key_sym::e::"

	// DefaultExternalCode fills the external code column of lookup rows.
	DefaultExternalCode = "0"
)

var (
	//go:embed templates/table.tmpl
	DefaultTableTemplate string

	//go:embed templates/enum.tmpl
	DefaultEnumTemplate string
)

// TableEntries renders every slot of t as "<qualifier><symbol>,", one per
// line, in slot order.
func TableEntries(t *Table, qualifier string) string {
	var sb strings.Builder
	for _, s := range t.Slots {
		sb.WriteString(qualifier + s + ",\n")
	}

	return sb.String()
}

// EnumMembers renders the bare symbol names of u as enumeration members.
func EnumMembers(u Universe) string {
	var sb strings.Builder
	for _, s := range u {
		sb.WriteString("\t" + s + ",\n")
	}

	return sb.String()
}

// EnumLength returns the member count of u as text.
func EnumLength(u Universe) string {
	return strconv.Itoa(len(u))
}

// LookupTableEntries renders one {symbol, external code} row per member of
// u. The external code column is filled with placeholder; mapping symbols to
// another library's key codes happens downstream.
func LookupTableEntries(u Universe, qualifier, placeholder string) string {
	var sb strings.Builder
	for _, s := range u {
		sb.WriteString("\t{ " + qualifier + s + ", " + placeholder + " },\n")
	}

	return sb.String()
}
